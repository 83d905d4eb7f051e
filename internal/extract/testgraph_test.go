package extract

import (
	"sort"

	"greedydag/internal/egraph"
)

// nodeSpec is a terse literal for building test e-graphs: op applied
// to children (by node ID), belonging to eclass.
type nodeSpec struct {
	op       string
	children []string
	eclass   string
}

// buildGraph constructs an egraph.Graph from a map of node ID to spec.
// Class iteration order is fixed to sorted node ID order, so tests are
// deterministic regardless of Go's randomized map iteration.
func buildGraph(specs map[string]nodeSpec, roots ...string) *egraph.Graph {
	ids := make([]string, 0, len(specs))
	for id := range specs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	nodes := make(map[egraph.NodeID]*egraph.Node, len(specs))
	classNodes := make(map[egraph.ClassID][]egraph.NodeID)
	var classOrder []egraph.ClassID
	seen := make(map[egraph.ClassID]bool)

	for _, id := range ids {
		spec := specs[id]
		children := make([]egraph.NodeID, len(spec.children))
		for i, c := range spec.children {
			children[i] = egraph.NodeID(c)
		}
		nid := egraph.NodeID(id)
		cls := egraph.ClassID(spec.eclass)
		nodes[nid] = &egraph.Node{Op: spec.op, Children: children, EClass: cls}
		classNodes[cls] = append(classNodes[cls], nid)
		if !seen[cls] {
			seen[cls] = true
			classOrder = append(classOrder, cls)
		}
	}

	rootClasses := make([]egraph.ClassID, len(roots))
	for i, r := range roots {
		rootClasses[i] = egraph.ClassID(r)
	}

	return egraph.NewGraph(nodes, classOrder, classNodes, rootClasses)
}
