package lang

import (
	"github.com/alecthomas/participle/v2"
)

var participleParser = participle.MustBuild[sourceProgram](
	participle.Lexer(sourceLexer),
	participle.Elide("Comment", "Whitespace"),
	participle.UseLookahead(2),
)

// Parse lexes, parses, and semantically checks a source program (§6.2),
// returning a Program ready to drive one robdd.Engine.Build per
// show/show_ones target. Grounded on kanso-lang-kanso's grammar.ParseFile,
// split here into Parse (string in, *Program out) and the CLI's own file
// reading, since this package shouldn't own os.ReadFile.
func Parse(filename, source string) (*Program, error) {
	raw, err := participleParser.ParseString(filename, source)
	if err != nil {
		return nil, asSyntaxError(err)
	}
	return checkProgram(raw)
}

// asSyntaxError adapts a participle.Error into this package's positioned
// SyntaxError type, the way kanso-cli's reportParseError extracts
// pe.Position() from the same interface.
func asSyntaxError(err error) error {
	pe, ok := err.(participle.Error)
	if !ok {
		return &SyntaxError{Message: err.Error()}
	}
	pos := pe.Position()
	return &SyntaxError{Line: pos.Line, Column: pos.Column, Message: pe.Message()}
}
