package costmodel

import (
	"strconv"

	"greedydag/grammar"
	greedyerrors "greedydag/internal/errors"
)

// ConfiguredModel overlays DSL-declared overrides on top of
// DefaultModel: a cost, ignore, or unshared declaration for an
// operator replaces the default rule for that operator; operators
// with no override fall back to DefaultModel.
type ConfiguredModel struct {
	costs    map[string]Cost
	ignore   map[string]bool
	unshared map[string][]int
	fallback Model
}

var _ Model = (*ConfiguredModel)(nil)

// NewConfiguredModel builds a ConfiguredModel from a parsed DSL
// program, falling back to DefaultModel for anything not overridden.
func NewConfiguredModel(prog *grammar.Program) (*ConfiguredModel, error) {
	m := &ConfiguredModel{
		costs:    make(map[string]Cost),
		ignore:   make(map[string]bool),
		unshared: make(map[string][]int),
		fallback: DefaultModel{},
	}
	for _, decl := range prog.Declarations {
		switch {
		case decl.Cost != nil:
			v, err := strconv.ParseFloat(decl.Cost.Value, 64)
			if err != nil {
				return nil, greedyerrors.Configuration("bad cost value for " + decl.Cost.Op + ": " + err.Error())
			}
			m.costs[decl.Cost.Op] = v
		case decl.Ignore != nil:
			m.ignore[decl.Ignore.Op] = true
		case decl.Unshared != nil:
			indices := make([]int, len(decl.Unshared.Indices))
			for i, s := range decl.Unshared.Indices {
				n, err := strconv.Atoi(s)
				if err != nil {
					return nil, greedyerrors.Configuration("bad index for " + decl.Unshared.Op + ": " + err.Error())
				}
				indices[i] = n
			}
			m.unshared[decl.Unshared.Op] = indices
		}
	}
	return m, nil
}

// OpCost implements Model.
func (m *ConfiguredModel) OpCost(op string) Cost {
	if c, ok := m.costs[op]; ok {
		return c
	}
	if m.ignore[op] {
		return 0
	}
	return m.fallback.OpCost(op)
}

// IgnoreChildren implements Model.
func (m *ConfiguredModel) IgnoreChildren(op string) bool {
	if m.ignore[op] {
		return true
	}
	return m.fallback.IgnoreChildren(op)
}

// UnsharedChildren implements Model.
func (m *ConfiguredModel) UnsharedChildren(op string) []int {
	if idx, ok := m.unshared[op]; ok {
		return idx
	}
	return m.fallback.UnsharedChildren(op)
}
