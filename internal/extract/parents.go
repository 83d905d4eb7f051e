package extract

import "greedydag/internal/egraph"

// parentIndex maps each e-class to every e-node that references it as
// a child. Built once in one pass over every child edge; read-only
// thereafter.
type parentIndex map[egraph.ClassID][]egraph.NodeID

// buildParentIndex computes parents[C] for every class C: the list of
// node IDs with at least one child reference into C. A node appears
// once per distinct child reference into C (duplicates are allowed
// here; the uniqueQueue deduplicates on insert).
func buildParentIndex(g *egraph.Graph) parentIndex {
	parents := make(parentIndex, len(g.Classes()))
	for _, cls := range g.Classes() {
		parents[cls] = nil
	}
	for _, id := range g.AllNodeIDs() {
		node := g.Node(id)
		for _, childID := range node.Children {
			childClass := g.ClassOf(childID)
			parents[childClass] = append(parents[childClass], id)
		}
	}
	return parents
}
