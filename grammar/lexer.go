// Package grammar parses the cost-model configuration DSL: a small
// declarative language for overriding operator costs, ignore-children
// flags and unshared-children indices without editing Go source.
package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// CostLexer tokenizes cost-model DSL source: identifiers, signed
// integers and decimals, the punctuation `=[],`, comments, and
// whitespace.
var CostLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"Comment", `//[^\n]*`, nil},
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_]*`, nil},
		{"Number", `-?[0-9]+(\.[0-9]+)?`, nil},
		{"Punctuation", `[=\[\],]`, nil},
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
