package lsp

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"greedydag/grammar"
)

// ConvertParseError converts a cost-model DSL parse failure into a
// single LSP diagnostic, positioned at the offending token when
// participle reports one and at the start of the document otherwise.
func ConvertParseError(err error) []protocol.Diagnostic {
	pe, ok := err.(participle.Error)
	if !ok {
		return []protocol.Diagnostic{{
			Range:    protocol.Range{},
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString("costmodel-dsl"),
			Message:  err.Error(),
		}}
	}

	pos := pe.Position()
	line := uint32(0)
	if pos.Line > 0 {
		line = uint32(pos.Line - 1)
	}
	col := uint32(0)
	if pos.Column > 0 {
		col = uint32(pos.Column - 1)
	}

	return []protocol.Diagnostic{{
		Range: protocol.Range{
			Start: protocol.Position{Line: line, Character: col},
			End:   protocol.Position{Line: line, Character: col + 1},
		},
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Source:   ptrString("costmodel-dsl"),
		Message:  pe.Message(),
	}}
}

// ConvertDuplicateDeclarations reports a Warning-level diagnostic for
// every operator that a single DSL file declares a cost for more than
// once: the last declaration silently wins in NewConfiguredModel, a
// surprise worth surfacing in an editor even though it is not fatal.
func ConvertDuplicateDeclarations(prog *grammar.Program) []protocol.Diagnostic {
	seen := make(map[string]int)
	var diagnostics []protocol.Diagnostic
	for _, decl := range prog.Declarations {
		if decl.Cost == nil {
			continue
		}
		seen[decl.Cost.Op]++
		if seen[decl.Cost.Op] > 1 {
			diagnostics = append(diagnostics, protocol.Diagnostic{
				Range:    protocol.Range{},
				Severity: ptrSeverity(protocol.DiagnosticSeverityWarning),
				Source:   ptrString("costmodel-dsl"),
				Message:  fmt.Sprintf("operator %q has more than one cost declaration; the last one wins", decl.Cost.Op),
			})
		}
	}
	return diagnostics
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
