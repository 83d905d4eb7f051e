package extract

import (
	"greedydag/internal/egraph"
	"greedydag/internal/termdag"
)

// State maps each e-class to its current best CostSet. Initially
// empty; monotonically improves — each slot's Total only decreases on
// replacement.
//
// Correspondence records, for every term built by a cost-set
// computation (including candidates later discarded, but not the
// throwaway term of a cycle sentinel), the e-node it was built from, used downstream by internal/effects to map a chosen
// term back to e-classes without re-walking the e-graph.
type State struct {
	best           map[egraph.ClassID]*CostSet
	Correspondence map[*termdag.Term]egraph.NodeID
}

func newState() *State {
	return &State{
		best:           make(map[egraph.ClassID]*CostSet),
		Correspondence: make(map[*termdag.Term]egraph.NodeID),
	}
}

// Get returns the current best cost set for a class, if any.
func (s *State) Get(cls egraph.ClassID) (*CostSet, bool) {
	cs, ok := s.best[cls]
	return cs, ok
}

// tryReplace installs candidate as cls's best cost set if and only if
// it is strictly cheaper than the current best; a tie does not
// displace the existing entry, so the first candidate to reach a given
// cost keeps it. Returns whether the replacement happened.
func (s *State) tryReplace(cls egraph.ClassID, candidate CostSet) bool {
	prev, ok := s.best[cls]
	if ok && !(candidate.Total < prev.Total) {
		return false
	}
	s.best[cls] = &candidate
	return true
}
