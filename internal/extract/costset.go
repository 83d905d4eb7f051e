package extract

import (
	"greedydag/internal/costmodel"
	"greedydag/internal/egraph"
	"greedydag/internal/errors"
	"greedydag/internal/termdag"
)

// CostSet is the per-candidate accounting for one e-class: the chosen
// term, its total cost, and the set of classes "consumed" inside the
// term (and their individual contribution), which is what lets a
// shared subterm be paid for only once.
type CostSet struct {
	Term     *termdag.Term
	Total    costmodel.Cost
	Internal map[egraph.ClassID]costmodel.Cost
}

// cycleCostSet is the sentinel returned when selecting a node would
// create a reference cycle: +Inf total guarantees it loses the
// strict-improvement test in the fixed-point loop, so a cyclic
// candidate can never win. A cycle is only detected for a class that
// already has a cost set (its own entry reached a child's internal
// map), and that class keeps the cost set it already has.
func cycleCostSet(node *egraph.Node, td *termdag.TermDag) CostSet {
	return CostSet{
		Term:     td.Application(node.Op, nil),
		Total:    costmodel.Inf,
		Internal: map[egraph.ClassID]costmodel.Cost{},
	}
}

// buildTerm constructs the term for an application of op to the given
// child cost sets' terms, or lowers op to a literal if it is
// literal-syntax and has no children.
func buildTerm(op string, childSets []*CostSet, td *termdag.TermDag) *termdag.Term {
	if len(childSets) == 0 {
		if lexeme, ok := termdag.LiteralLexeme(op); ok {
			return td.Literal(lexeme)
		}
	}
	children := make([]*termdag.Term, len(childSets))
	for i, cs := range childSets {
		children[i] = cs.Term
	}
	return td.Application(op, children)
}

// calculateCostSet computes the candidate cost set for class of
// nodeID via nodeID, given that every child class already has a cost
// set in st. It panics with a Consistency error if two different costs
// are found for the same class during a merge — this should be
// unreachable given a correct cost model and a correct upstream
// analysis.
func calculateCostSet(g *egraph.Graph, nodeID egraph.NodeID, st *State, model costmodel.Model, td *termdag.TermDag) CostSet {
	node := g.Node(nodeID)
	cid := g.ClassOf(nodeID)

	childClasses := make([]egraph.ClassID, len(node.Children))
	for i, c := range node.Children {
		childClasses[i] = g.ClassOf(c)
	}

	childSets := make([]*CostSet, len(childClasses))
	for i, cc := range childClasses {
		cs, ok := st.Get(cc)
		if !ok {
			panic("extract: calculateCostSet called with uncosted child class " + string(cc))
		}
		childSets[i] = cs
	}

	// Cycle check: if any child's internal set already contains this
	// class, selecting this node would re-admit the class it is itself
	// building.
	for _, cs := range childSets {
		if _, found := cs.Internal[cid]; found {
			return cycleCostSet(node, td)
		}
	}

	total := model.OpCost(node.Op)
	internal := map[egraph.ClassID]costmodel.Cost{cid: total}
	term := buildTerm(node.Op, childSets, td)
	st.Correspondence[term] = nodeID

	if !model.IgnoreChildren(node.Op) {
		unshared := asSet(model.UnsharedChildren(node.Op))
		for i, cs := range childSets {
			if unshared[i] {
				total += cs.Total
				continue
			}
			for childCID, childCost := range cs.Internal {
				if existing, ok := internal[childCID]; ok {
					if existing != childCost {
						errors.PanicFatal(errors.Consistency(
							"two different costs found for class " + string(childCID)))
					}
					continue
				}
				internal[childCID] = childCost
				total += childCost
			}
		}
	}

	return CostSet{Term: term, Total: total, Internal: internal}
}

func asSet(indices []int) map[int]bool {
	s := make(map[int]bool, len(indices))
	for _, i := range indices {
		s[i] = true
	}
	return s
}
