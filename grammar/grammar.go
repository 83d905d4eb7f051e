package grammar

// Program is a cost-model DSL file: a sequence of declarations.
//
//	cost Add = 10
//	ignore InLoop
//	unshared DoWhile = [1]
type Program struct {
	Declarations []*Declaration `@@*`
}

// Declaration is one of the three declaration kinds.
type Declaration struct {
	Comment  string        `  @Comment`
	Cost     *CostDecl     `| @@`
	Ignore   *IgnoreDecl   `| @@`
	Unshared *UnsharedDecl `| @@`
}

// CostDecl declares the standalone cost of an operator.
type CostDecl struct {
	Op    string `"cost" @Ident "="`
	Value string `@Number`
}

// IgnoreDecl declares that an operator ignores its children entirely.
type IgnoreDecl struct {
	Op string `"ignore" @Ident`
}

// UnsharedDecl declares which child indices of an operator are
// unshared (region-introducing).
type UnsharedDecl struct {
	Op      string   `"unshared" @Ident "="`
	Indices []string `"[" [ @Number { "," @Number } ] "]"`
}
