package lang

import "github.com/alecthomas/participle/v2/lexer"

// sourceLexer tokenizes the small program grammar of the specification
// (§6.2): comments, identifiers/keywords, the four punctuation characters
// the grammar needs, and whitespace. Grounded on kanso-lang-kanso's
// grammar/lexer.go KansoLexer, trimmed to this language's much smaller
// token set (no integers, no operator/punctuation soup).
var sourceLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{Name: "Comment", Pattern: `#[^\n]*`, Action: nil},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`, Action: nil},
		{Name: "Punct", Pattern: `[=;()]`, Action: nil},
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`, Action: nil},
	},
})
