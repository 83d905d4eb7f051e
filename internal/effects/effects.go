// Package effects computes, after a non-linear greedy extraction, the
// set of e-classes reachable from the chosen term through
// state-carrying (non-pure) operators.
//
// This is diagnostic only: it is wired into extraction purely to
// surface which regions of a chosen term carry effects, and is never
// consulted by cost-set selection. A second extraction pass that
// preserves linearity of effectful operations would consume this
// output, but implementing that pass is out of scope here.
package effects

import (
	"greedydag/internal/egraph"
	"greedydag/internal/termdag"
)

// stateCarryingOps are operators whose evaluation touches memory,
// storage, or control outside the pure expression DAG. Every other
// operator is pure.
var stateCarryingOps = map[string]bool{
	"Write": true, "Load": true, "Print": true,
	"Alloc": true, "Free": true,
	"Call": true,
}

// IsStateCarrying reports whether op has an effect beyond its return
// value.
func IsStateCarrying(op string) bool {
	return stateCarryingOps[op]
}

// Regions is the result of FindEffectfulNodes: the e-classes reachable
// from the chosen root term whose e-node is state-carrying.
type Regions struct {
	Classes map[egraph.ClassID]bool
}

// FindEffectfulNodes walks term (the extractor's chosen term for some
// class) and, via correspondence (State.Correspondence, mapping a
// constructed Term back to the e-node it came from), collects the
// e-classes of every state-carrying e-node reachable from it.
//
// correspondence need not cover every term in the DAG uniformly — a
// term with no recorded correspondence is simply skipped, and its
// children are still walked.
func FindEffectfulNodes(term *termdag.Term, correspondence map[*termdag.Term]egraph.NodeID, g *egraph.Graph) Regions {
	classes := make(map[egraph.ClassID]bool)
	visited := make(map[*termdag.Term]bool)
	var walk func(t *termdag.Term)
	walk = func(t *termdag.Term) {
		if visited[t] {
			return
		}
		visited[t] = true
		if nid, ok := correspondence[t]; ok {
			node := g.Node(nid)
			if IsStateCarrying(node.Op) {
				classes[node.EClass] = true
			}
		}
		for _, c := range t.Children() {
			walk(c)
		}
	}
	walk(term)
	return Regions{Classes: classes}
}
