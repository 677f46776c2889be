package lang

import "github.com/alecthomas/participle/v2/lexer"

// This file is the participle struct grammar for the program grammar of
// §6.2, grounded on kanso-lang-kanso's grammar/grammar.go (struct-tag
// alternation, "@@*" repetition, recursive *Expr/*Term fields for
// parenthesized sub-expressions). Every statement carries a Pos field,
// which participle populates automatically, so the semantic checks in
// ast.go can report line/column per §7's propagation policy.

type sourceProgram struct {
	Statements []*sourceStatement `@@*`
}

type sourceStatement struct {
	VarDecl    *sourceVarDecl    `  @@`
	ShowOnes   *sourceShowOnes   `| @@`
	Show       *sourceShow       `| @@`
	Assignment *sourceAssignment `| @@`
}

type sourceVarDecl struct {
	Pos   lexer.Position
	Names []string `"var" @Ident+ ";"`
}

type sourceShow struct {
	Pos   lexer.Position
	Names []string `"show" @Ident+ ";"`
}

// sourceShowOnes is listed before sourceShow in sourceStatement's
// alternation, but the order is not needed to tell them apart: the lexer
// emits "show_ones" as one Ident token (it matches [A-Za-z_][A-Za-z0-9_]*),
// so it never matches the "show" literal.
type sourceShowOnes struct {
	Pos   lexer.Position
	Names []string `"show_ones" @Ident+ ";"`
}

type sourceAssignment struct {
	Pos  lexer.Position
	Name string      `@Ident "="`
	Expr *sourceExpr `@@ ";"`
}

// sourceExpr is a flat "term (op term)*" sequence, not a right- or
// left-nested binary tree: the grammar in §6.2 requires "all ops in one
// parenthesis level are equal", which is far easier to check against a
// flat operator list than against a parsed-associativity tree.
type sourceExpr struct {
	Pos   lexer.Position
	First *sourceTerm     `@@`
	Rest  []*sourceOpTerm `@@*`
}

type sourceOpTerm struct {
	Op   string      `@("and" | "or")`
	Term *sourceTerm `@@`
}

type sourceTerm struct {
	Not   *sourceTerm `  "not" @@`
	Paren *sourceExpr `| "(" @@ ")"`
	Bool  string      `| @("True" | "False")`
	Ident string      `| @Ident`
}
