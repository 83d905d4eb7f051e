package grammar

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/fatih/color"
)

var build = mustBuild()

func mustBuild() *participle.Parser[Program] {
	p, err := participle.Build[Program](
		participle.Lexer(CostLexer),
		participle.Elide("Whitespace"),
	)
	if err != nil {
		panic(fmt.Sprintf("grammar: parser build failed: %s", err))
	}
	return p
}

// ParseFile reads and parses a cost-model DSL file at path.
func ParseFile(path string) (*Program, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return ParseString(path, string(source))
}

// ParseString parses cost-model DSL source, attributing positions to
// filename in error messages.
func ParseString(filename, source string) (*Program, error) {
	program, err := build.ParseString(filename, source)
	if err != nil {
		return nil, err
	}
	return program, nil
}

// ReportParseError renders a DSL parse failure to stdout with a source
// excerpt and a gutter-aligned caret under the offending column. Errors
// that carry no participle position (or point outside src) fall back
// to a one-line message.
func ReportParseError(src string, err error) {
	diag, ok := newParseDiagnostic(src, err)
	if !ok {
		color.Red("error: %s", err)
		return
	}
	diag.render()
}

// parseDiagnostic is a located parse failure together with enough of
// its surrounding source to print a gutter and caret.
type parseDiagnostic struct {
	file    string
	lineNum int
	column  int
	context string
	reason  string
}

func newParseDiagnostic(src string, err error) (parseDiagnostic, bool) {
	pe, ok := err.(participle.Error)
	if !ok {
		return parseDiagnostic{}, false
	}

	pos := pe.Position()
	lines := strings.Split(src, "\n")
	if pos.Line <= 0 || pos.Line > len(lines) {
		return parseDiagnostic{}, false
	}

	return parseDiagnostic{
		file:    pos.Filename,
		lineNum: pos.Line,
		column:  pos.Column,
		context: lines[pos.Line-1],
		reason:  pe.Message(),
	}, true
}

func (d parseDiagnostic) render() {
	gutter := fmt.Sprintf("%d | ", d.lineNum)

	var b strings.Builder
	fmt.Fprintf(&b, "%s:%d:%d: parse error\n", d.file, d.lineNum, d.column)
	fmt.Fprintf(&b, "%s%s\n", gutter, d.context)
	if col := d.column - 1; col >= 0 {
		b.WriteString(strings.Repeat(" ", len(gutter)+col))
		b.WriteString("^")
	}
	color.Red("%s", b.String())
	fmt.Printf("  %s\n", d.reason)
}
