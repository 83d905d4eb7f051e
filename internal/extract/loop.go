// Package extract implements the greedy DAG extractor: the
// worklist-driven fixed-point loop and root selection, built on top
// of the unique worklist, parent index, and cost-set machinery in
// this package.
package extract

import (
	"fmt"

	"greedydag/internal/costmodel"
	"greedydag/internal/effects"
	"greedydag/internal/egraph"
	"greedydag/internal/errors"
	"greedydag/internal/termdag"
)

// programOp is the operator of the distinguished root e-node.
const programOp = "Program"

// Extract runs the greedy fixed-point extraction and returns the cost
// set chosen for the program root's class.
//
// Extract panics on every fatal condition: a malformed root (zero or
// multiple Program nodes), an operator the cost model has no rule for, a
// root class with no extractable term, or a
// merge inconsistency. These are programmer errors with no recoverable
// path; wrap this call with Run if a recoverable error is wanted
// instead.
func Extract(g *egraph.Graph, unextractable map[string]bool, model costmodel.Model, td *termdag.TermDag) CostSet {
	st := runToFixedPoint(g, unextractable, model, td)

	root := findRoot(g)
	rootClass := g.ClassOf(root)
	cs, ok := st.Get(rootClass)
	if !ok {
		errors.PanicFatal(errors.Structural(
			fmt.Sprintf("no extractable term found for root class %q", rootClass)))
	}
	if cs.Total >= costmodel.Inf {
		errors.PanicFatal(errors.Structural(
			fmt.Sprintf("root class %q only reachable through a cycle", rootClass)))
	}

	// Compute effectful regions for diagnostics only; internal/effects
	// never feeds this back into selection.
	_ = effects.FindEffectfulNodes(cs.Term, st.Correspondence, g)

	return *cs
}

// Run wraps Extract, recovering any fatal panic into a regular error
// for callers that sit at a program boundary (CLI, REPL, LSP) rather
// than deep inside the core.
func Run(g *egraph.Graph, unextractable map[string]bool, model costmodel.Model, td *termdag.TermDag) (cs CostSet, err error) {
	defer func() {
		if r := recover(); r != nil {
			if ee, ok := r.(*errors.ExtractError); ok {
				err = ee
				return
			}
			err = fmt.Errorf("extract: %v", r)
		}
	}()
	cs = Extract(g, unextractable, model, td)
	return cs, nil
}

// runToFixedPoint seeds the worklist from every leaf e-node and runs
// the relaxation loop to completion, returning the resulting State.
// Factored out of Extract so tests can inspect any class's cost set,
// not only the program root's.
func runToFixedPoint(g *egraph.Graph, unextractable map[string]bool, model costmodel.Model, td *termdag.TermDag) *State {
	st := newState()
	parents := buildParentIndex(g)
	worklist := newUniqueQueue()

	for _, id := range g.AllNodeIDs() {
		if g.Node(id).IsLeaf() {
			worklist.insert(id)
		}
	}

	for {
		nodeID, ok := worklist.pop()
		if !ok {
			break
		}

		node := g.Node(nodeID)
		if unextractable[node.Op] {
			continue
		}

		cls := g.ClassOf(nodeID)
		if !allChildrenCosted(g, node, st) {
			continue
		}

		candidate := calculateCostSet(g, nodeID, st, model, td)
		if st.tryReplace(cls, candidate) {
			worklist.extend(parents[cls])
		}
	}

	return st
}

func allChildrenCosted(g *egraph.Graph, node *egraph.Node, st *State) bool {
	for _, c := range node.Children {
		if _, ok := st.Get(g.ClassOf(c)); !ok {
			return false
		}
	}
	return true
}

// findRoot scans the e-graph for the unique e-node with operator
// "Program". It is a fatal error if there is zero or more than one
// such node.
func findRoot(g *egraph.Graph) egraph.NodeID {
	var found egraph.NodeID
	count := 0
	for _, id := range g.AllNodeIDs() {
		if g.Node(id).Op == programOp {
			found = id
			count++
		}
	}
	if count == 0 {
		errors.PanicFatal(errors.RootSelection("no Program root e-node found"))
	}
	if count > 1 {
		errors.PanicFatal(errors.RootSelection(fmt.Sprintf("found %d Program root e-nodes, expected exactly 1", count)))
	}
	return found
}
