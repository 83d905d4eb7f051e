package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greedydag/internal/costmodel"
	"greedydag/internal/egraph"
	"greedydag/internal/termdag"
)

// A single-leaf program has nothing to share: its cost is just the sum
// of each node's own cost along the one path from root to leaf.
func TestExtractSingleLeafProgram(t *testing.T) {
	g := buildGraph(map[string]nodeSpec{
		"p": {op: "Program", children: []string{"c"}, eclass: "P"},
		"c": {op: "Const", children: []string{"i"}, eclass: "C"},
		"i": {op: "5", children: nil, eclass: "I"},
	}, "P")

	td := termdag.New()
	cs := Extract(g, nil, costmodel.DefaultModel{}, td)

	assert.Equal(t, costmodel.Cost(2), cs.Total)
	assert.Equal(t, costmodel.Cost(1), cs.Internal["P"])
	assert.Equal(t, costmodel.Cost(1), cs.Internal["C"])
	assert.Equal(t, costmodel.Cost(0), cs.Internal["I"])
	assert.Equal(t, "Program(Const(5))", termdag.Print(cs.Term))
}

// Add(a,a) (total 20) beats Mul(a,2) (total 40) for the same class,
// because Add references class "a" twice but only pays for it once.
func TestExtractPrefersSharedAddOverDuplicatedMul(t *testing.T) {
	g := buildGraph(map[string]nodeSpec{
		"a":    {op: "Eq", children: nil, eclass: "A"}, // leaf, cost 10
		"two":  {op: "2", children: nil, eclass: "TWO"},
		"add1": {op: "Add", children: []string{"a", "a"}, eclass: "X"},
		"mul1": {op: "Mul", children: []string{"a", "two"}, eclass: "X"},
	})

	td := termdag.New()
	st := runToFixedPoint(g, nil, costmodel.DefaultModel{}, td)

	cs, ok := st.Get("X")
	require.True(t, ok)
	assert.Equal(t, costmodel.Cost(20), cs.Total)
	assert.Equal(t, "Add(Eq, Eq)", termdag.Print(cs.Term))
}

// Unshared children each pay full cost with no sharing credit, even
// when they duplicate a subterm's classes.
func TestExtractUnsharedChildrenDoNotShare(t *testing.T) {
	g := buildGraph(map[string]nodeSpec{
		"pred": {op: "Eq", children: nil, eclass: "PRED"},    // cost 10
		"ins":  {op: "Arg", children: nil, eclass: "INS"},     // cost 0
		"thn":  {op: "Load", children: nil, eclass: "HEAVY1"}, // cost 100... see below
		"els":  {op: "Load", children: nil, eclass: "HEAVY1"},
		"if1":  {op: "If", children: []string{"pred", "ins", "thn", "els"}, eclass: "R"},
	})

	model := testModelWithCost{base: costmodel.DefaultModel{}, overrides: map[string]costmodel.Cost{
		"Load": 100,
	}}

	td := termdag.New()
	st := runToFixedPoint(g, nil, model, td)

	cs, ok := st.Get("R")
	require.True(t, ok)
	// If=50, pred=10, ins=0, thn=100 (unshared), els=100 (unshared)
	assert.Equal(t, costmodel.Cost(260), cs.Total)
}

// A direct reference cycle between two classes leaves both uncosted:
// neither ever produces a finite-cost candidate to seed the other.
func TestExtractDirectCycleLeavesBothClassesUncosted(t *testing.T) {
	g := buildGraph(map[string]nodeSpec{
		"wrapA": {op: "Wrap", children: []string{"wrapB"}, eclass: "A"},
		"wrapB": {op: "Wrap", children: []string{"wrapA"}, eclass: "B"},
	})

	td := termdag.New()
	st := runToFixedPoint(g, nil, costmodel.DefaultModel{}, td)

	_, okA := st.Get("A")
	_, okB := st.Get("B")
	assert.False(t, okA)
	assert.False(t, okB)
}

// An unextractable operator blocks its class from ever being costed
// when it is the class's only e-node, which in turn blocks the root.
func TestExtractUnextractableOperatorBlocksRoot(t *testing.T) {
	g := buildGraph(map[string]nodeSpec{
		"p":  {op: "Program", children: []string{"d"}, eclass: "P"},
		"d":  {op: "DebugOnly", children: []string{"x"}, eclass: "D"},
		"x":  {op: "Arg", children: nil, eclass: "X"},
	}, "P")

	td := termdag.New()
	assert.Panics(t, func() {
		Extract(g, map[string]bool{"DebugOnly": true}, costmodel.DefaultModel{}, td)
	})

	_, err := Run(g, map[string]bool{"DebugOnly": true}, costmodel.DefaultModel{}, td)
	assert.Error(t, err)
}

// An ignore-children operator never consults its (arbitrarily
// expensive) child: its cost set is just its own standalone cost.
func TestExtractIgnoreChildrenOperatorSkipsChildCost(t *testing.T) {
	model := testModelWithCost{base: costmodel.DefaultModel{}, overrides: map[string]costmodel.Cost{
		"Heavy": 999,
	}}

	g := buildGraph(map[string]nodeSpec{
		"heavy": {op: "Heavy", children: nil, eclass: "HEAVY"},
		"loop":  {op: "InLoop", children: []string{"heavy"}, eclass: "L"},
	})

	td := termdag.New()
	st := runToFixedPoint(g, nil, model, td)

	cs, ok := st.Get("L")
	require.True(t, ok)
	assert.Equal(t, costmodel.Cost(0), cs.Total)
	assert.Equal(t, map[egraph.ClassID]costmodel.Cost{"L": 0}, cs.Internal)
}

// Invariant: total always equals the sum of the internal map's values.
func TestInvariantTotalEqualsSumOfInternal(t *testing.T) {
	g := buildGraph(map[string]nodeSpec{
		"p": {op: "Program", children: []string{"c"}, eclass: "P"},
		"c": {op: "Const", children: []string{"i"}, eclass: "C"},
		"i": {op: "5", children: nil, eclass: "I"},
	}, "P")

	td := termdag.New()
	cs := Extract(g, nil, costmodel.DefaultModel{}, td)

	var sum costmodel.Cost
	for _, c := range cs.Internal {
		sum += c
	}
	assert.Equal(t, cs.Total, sum)
}

// Invariant: replacement is strict — an equal-cost candidate never
// displaces the existing assignment (first-wins tie break).
func TestTieBreakIsFirstWins(t *testing.T) {
	st := newState()
	td := termdag.New()
	first := CostSet{Term: td.Literal("1"), Total: 10, Internal: map[egraph.ClassID]costmodel.Cost{"X": 10}}
	second := CostSet{Term: td.Literal("2"), Total: 10, Internal: map[egraph.ClassID]costmodel.Cost{"X": 10}}

	assert.True(t, st.tryReplace("X", first))
	assert.False(t, st.tryReplace("X", second))

	got, ok := st.Get("X")
	require.True(t, ok)
	assert.Same(t, first.Term, got.Term)
}

// Root selection is fatal on zero or multiple Program nodes.
func TestRootSelectionFailsOnZeroRoots(t *testing.T) {
	g := buildGraph(map[string]nodeSpec{
		"x": {op: "Arg", children: nil, eclass: "X"},
	})
	td := termdag.New()
	assert.Panics(t, func() {
		Extract(g, nil, costmodel.DefaultModel{}, td)
	})
}

func TestRootSelectionFailsOnMultipleRoots(t *testing.T) {
	g := buildGraph(map[string]nodeSpec{
		"p1": {op: "Program", children: []string{"x"}, eclass: "P1"},
		"p2": {op: "Program", children: []string{"x"}, eclass: "P2"},
		"x":  {op: "Arg", children: nil, eclass: "X"},
	})
	td := termdag.New()
	assert.Panics(t, func() {
		Extract(g, nil, costmodel.DefaultModel{}, td)
	})
}

// Running extraction twice on the same frozen inputs yields equal
// root cost sets.
func TestIdempotence(t *testing.T) {
	build := func() (*egraph.Graph, *termdag.TermDag) {
		g := buildGraph(map[string]nodeSpec{
			"p": {op: "Program", children: []string{"c"}, eclass: "P"},
			"c": {op: "Const", children: []string{"i"}, eclass: "C"},
			"i": {op: "5", children: nil, eclass: "I"},
		}, "P")
		return g, termdag.New()
	}

	g1, td1 := build()
	cs1 := Extract(g1, nil, costmodel.DefaultModel{}, td1)

	g2, td2 := build()
	cs2 := Extract(g2, nil, costmodel.DefaultModel{}, td2)

	assert.Equal(t, cs1.Total, cs2.Total)
	assert.Equal(t, termdag.Print(cs1.Term), termdag.Print(cs2.Term))
}

// testModelWithCost overrides specific operator costs on top of a base
// model, used to parametrize scenarios that need a cost DefaultModel
// doesn't assign (e.g. giving "Heavy" a steep cost to prove it is
// never consulted under ignore-children).
type testModelWithCost struct {
	base      costmodel.Model
	overrides map[string]costmodel.Cost
}

func (m testModelWithCost) OpCost(op string) costmodel.Cost {
	if c, ok := m.overrides[op]; ok {
		return c
	}
	return m.base.OpCost(op)
}

func (m testModelWithCost) IgnoreChildren(op string) bool {
	return m.base.IgnoreChildren(op)
}

func (m testModelWithCost) UnsharedChildren(op string) []int {
	return m.base.UnsharedChildren(op)
}
