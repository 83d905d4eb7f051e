// Package costmodel defines the three-operation cost-model interface
// the extractor consumes, plus the default cost table.
package costmodel

import (
	"math"

	greedyerrors "greedydag/internal/errors"
)

// Cost is a non-NaN, non-negative scalar; +Inf is the cycle sentinel.
type Cost = float64

// Inf is the cost-set sentinel for "cycle detected; do not select."
var Inf Cost = math.Inf(1)

// Model is the cost model interface the extractor borrows read-only.
type Model interface {
	// OpCost returns the standalone cost charged when op roots a cost
	// set. Unknown operators panic via a Configuration error unless
	// IgnoreChildren(op) is true, in which case the model may return 0.
	OpCost(op string) Cost

	// IgnoreChildren reports whether op's children contribute neither
	// their cost nor their internal sets to a cost set rooted at op.
	IgnoreChildren(op string) bool

	// UnsharedChildren returns the indices into op's child vector whose
	// subtrees sit inside a new region: their cost is added to the
	// parent, but their internal maps are not merged upward.
	UnsharedChildren(op string) []int
}

// DefaultModel is the built-in cost model: literal and type/context
// operators cost 0; arithmetic 10; multiply 30; divide 50; comparisons
// 10; memory ops 50; alloc/free 100; call 1000; Program/Function 1;
// DoWhile 100; If/Switch 50.
type DefaultModel struct{}

var _ Model = DefaultModel{}

var zeroCostOps = map[string]bool{
	"Arg": true, "true": true, "false": true, "()": true,
	"Empty": true, "Single": true, "Concat": true, "Get": true, "Nil": true, "Cons": true,
	"IntT": true, "BoolT": true, "PointerT": true, "StateT": true,
	"Base": true, "TupleT": true, "TNil": true, "TCons": true,
	"Int": true, "Bool": true,
	"HasType": true, "HasArgType": true, "ContextOf": true, "NoContext": true, "ExpectType": true,
	"ExprIsPure": true, "ListExprIsPure": true, "BinaryOpIsPure": true, "UnaryOpIsPure": true,
	"IsLeaf": true, "BodyContainsExpr": true, "ScopeContext": true,
	"Region": true, "Full": true, "IntI": true, "BoolI": true,
	"Bop": true, "Uop": true, "Top": true, "InContext": true,
}

var fixedCostOps = map[string]Cost{
	"Const": 1,
	"Add": 10, "PtrAdd": 10, "Sub": 10, "And": 10, "Or": 10, "Not": 10,
	"Mul": 30,
	"Div": 50,
	"Eq": 10, "LessThan": 10, "GreaterThan": 10, "LessEq": 10, "GreaterEq": 10,
	"Print": 50, "Write": 50, "Load": 50,
	"Alloc": 100, "Free": 100,
	"Call": 1000,
	"Program": 1, "Function": 1,
	"DoWhile": 100,
	"If": 50, "Switch": 50,
}

// OpCost implements Model.
func (DefaultModel) OpCost(op string) Cost {
	if zeroCostOps[op] {
		return 0
	}
	if c, ok := fixedCostOps[op]; ok {
		return c
	}
	if isIntLiteral(op) || isStringLiteral(op) {
		return 0
	}
	if (DefaultModel{}).IgnoreChildren(op) {
		return 0
	}
	greedyerrors.PanicFatal(greedyerrors.Configuration("no cost for operator " + op))
	panic("unreachable")
}

// IgnoreChildren implements Model.
func (DefaultModel) IgnoreChildren(op string) bool {
	switch op {
	case "InLoop", "NoContext", "InSwitch", "InIf":
		return true
	}
	return false
}

// UnsharedChildren implements Model.
func (DefaultModel) UnsharedChildren(op string) []int {
	switch op {
	case "DoWhile":
		return []int{1}
	case "Function":
		return []int{3}
	case "If":
		return []int{2, 3}
	case "Switch":
		return []int{2}
	}
	return nil
}

func isIntLiteral(op string) bool {
	if op == "" {
		return false
	}
	i := 0
	if op[0] == '-' {
		i = 1
		if len(op) == 1 {
			return false
		}
	}
	for ; i < len(op); i++ {
		if op[i] < '0' || op[i] > '9' {
			return false
		}
	}
	return true
}

func isStringLiteral(op string) bool {
	return len(op) >= 2 && op[0] == '"' && op[len(op)-1] == '"'
}
