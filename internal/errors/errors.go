// Package errors implements the extractor's error taxonomy: structural,
// configuration and consistency errors are fatal — callers at the
// program boundary (CLI, LSP) convert them to diagnostics or exit
// codes, but the extractor core itself panics on them, since they
// signal a broken invariant rather than a normal control-flow outcome.
package errors

import "fmt"

// Level distinguishes fatal taxonomy entries from informational notes
// surfaced to editors.
type Level string

const (
	Fatal Level = "fatal"
	Note  Level = "note"
)

// ExtractError is a structured, coded error. Structural/Configuration/
// Consistency errors all carry Level == Fatal; they are meant to be
// panicked by the core and recovered only at a program's outermost
// frame.
type ExtractError struct {
	Level   Level
	Code    string
	Message string
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Structural builds a malformed-e-graph error: a dangling child
// reference, an empty e-class, or other violation of the input's
// well-formedness that the extractor cannot recover from.
func Structural(msg string) *ExtractError {
	return &ExtractError{Level: Fatal, Code: CodeStructural, Message: msg}
}

// RootSelection builds a zero-or-multiple-roots error: extraction
// needs exactly one program root to know what to extract.
func RootSelection(msg string) *ExtractError {
	return &ExtractError{Level: Fatal, Code: CodeRootSelection, Message: msg}
}

// Configuration builds a cost-model-gap error: the model has no rule
// for an operator the extractor encountered.
func Configuration(msg string) *ExtractError {
	return &ExtractError{Level: Fatal, Code: CodeConfiguration, Message: msg}
}

// Consistency builds a merge-inconsistency error: two different costs
// were found for the same class while folding a candidate's children.
// This should be unreachable; it signals a bug upstream of the
// extractor (saturation or the cost model), not user-supplied bad
// input.
func Consistency(msg string) *ExtractError {
	return &ExtractError{Level: Fatal, Code: CodeConsistency, Message: msg}
}

// PanicFatal panics with err. Used at every point the core treats as
// an unrecoverable programmer/input error: a missing root, an unknown
// operator, a merge inconsistency.
func PanicFatal(err *ExtractError) {
	panic(err)
}
