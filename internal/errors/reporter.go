package errors

import (
	"fmt"

	"github.com/fatih/color"
)

// Reporter formats ExtractError values for a terminal with colored,
// coded severity lines.
type Reporter struct {
	source string
}

// NewReporter creates a Reporter for a given input file's contents.
// Format does not read source: ExtractError values carry no source
// position, so no excerpt is printed.
func NewReporter(source string) *Reporter {
	return &Reporter{source: source}
}

// Format renders an ExtractError the way the CLI prints it: a colored
// severity line followed by the coded message.
func (r *Reporter) Format(err *ExtractError) string {
	switch err.Level {
	case Fatal:
		return fmt.Sprintf("%s %s", color.RedString("error[%s]:", err.Code), err.Message)
	default:
		return fmt.Sprintf("%s %s", color.YellowString("note[%s]:", err.Code), err.Message)
	}
}

// Print writes the formatted error to stdout, following color's
// default writer convention (color.*String keeps ANSI codes out of non-TTY
// output automatically).
func (r *Reporter) Print(err *ExtractError) {
	fmt.Println(r.Format(err))
}
