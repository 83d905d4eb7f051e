package errors

// Error codes for the extractor.
//
// Code ranges:
//
//	X001-X099: Structural errors (malformed e-graph)
//	X100-X199: Configuration errors (cost model gaps)
//	X200-X299: Consistency errors (should be unreachable)

const (
	// X001: malformed e-graph — dangling child reference, empty eclass.
	CodeStructural = "X001"

	// X002: zero or multiple Program root nodes found.
	CodeRootSelection = "X002"

	// X101: cost model has no rule for an encountered operator.
	CodeConfiguration = "X101"

	// X201: merging cost sets produced two different costs for one class.
	CodeConsistency = "X201"
)
