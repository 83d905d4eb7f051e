package egraph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	greedyerrors "greedydag/internal/errors"
)

// wireNode is the JSON shape of a single serialized e-node: a mapping
// from node id to {op, children, eclass}.
type wireNode struct {
	Op       string   `json:"op"`
	Children []string `json:"children"`
	EClass   string   `json:"eclass"`
}

// wireGraph is the on-disk JSON shape of a serialized e-graph.
type wireGraph struct {
	Nodes        map[string]wireNode `json:"nodes"`
	RootEClasses []string            `json:"root_eclasses"`
}

// Decode parses a serialized e-graph from JSON bytes and validates its
// structural invariants: every child reference must resolve to a node
// that exists, every referenced e-class must be non-empty, and the
// document must carry no field outside the known shape.
//
// A malformed e-graph is reported, not panicked — unlike the extractor
// core, this boundary function is allowed to hand back a recoverable
// error since it sits at the edge of the program (reading
// caller-supplied input).
func Decode(data []byte) (*Graph, error) {
	var wg wireGraph
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&wg); err != nil {
		return nil, greedyerrors.Structural(fmt.Sprintf("invalid e-graph JSON: %s", err))
	}

	nodes := make(map[NodeID]*Node, len(wg.Nodes))
	classNodes := make(map[ClassID][]NodeID)

	// Sort node IDs for deterministic class-membership ordering: map
	// iteration order in Go is randomized, and every downstream pass
	// over classes/nodes needs a fixed, repeatable order.
	ids := make([]string, 0, len(wg.Nodes))
	for id := range wg.Nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		wn := wg.Nodes[id]
		if wn.EClass == "" {
			return nil, greedyerrors.Structural(fmt.Sprintf("node %q has no eclass", id))
		}
		children := make([]NodeID, len(wn.Children))
		for i, c := range wn.Children {
			children[i] = NodeID(c)
		}
		nid := NodeID(id)
		nodes[nid] = &Node{Op: wn.Op, Children: children, EClass: ClassID(wn.EClass)}
		classNodes[ClassID(wn.EClass)] = append(classNodes[ClassID(wn.EClass)], nid)
	}

	for _, id := range ids {
		for _, c := range nodes[NodeID(id)].Children {
			if _, ok := nodes[c]; !ok {
				return nil, greedyerrors.Structural(fmt.Sprintf("node %q references unknown child %q", id, c))
			}
		}
	}

	classOrder := make([]ClassID, 0, len(classNodes))
	seen := make(map[ClassID]bool, len(classNodes))
	for _, id := range ids {
		cls := nodes[NodeID(id)].EClass
		if !seen[cls] {
			seen[cls] = true
			classOrder = append(classOrder, cls)
		}
	}

	roots := make([]ClassID, len(wg.RootEClasses))
	for i, r := range wg.RootEClasses {
		roots[i] = ClassID(r)
	}

	return NewGraph(nodes, classOrder, classNodes, roots), nil
}
