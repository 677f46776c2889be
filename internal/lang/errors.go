package lang

import "fmt"

// SyntaxError reports a lexical or grammatical violation (§7's SyntaxError
// member), including the mixed-operator rule of §6.2 which participle's
// grammar cannot itself express and is instead checked once parsing
// succeeds.
type SyntaxError struct {
	Line, Column int
	Message      string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %d:%d: %s", e.Line, e.Column, e.Message)
}

// SemanticError reports an undeclared identifier, a redeclaration, or a
// show/show_ones target that names nothing declared (§7's SemanticError
// member).
type SemanticError struct {
	Line, Column int
	Message      string
}

func (e *SemanticError) Error() string {
	return fmt.Sprintf("semantic error at %d:%d: %s", e.Line, e.Column, e.Message)
}
