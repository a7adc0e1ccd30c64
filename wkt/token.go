package wkt

// TokenType is the kind of a lexical token.
type TokenType int

const (
	// EOF marks the end of the input. The lexer keeps returning it once
	// the input is exhausted.
	EOF TokenType = iota
	// TEXT is a run of ASCII letters, upper-cased by the lexer.
	TEXT
	// NUM is a numeric literal (integer, decimal or scientific notation).
	NUM
	// LPAREN is "(".
	LPAREN
	// RPAREN is ")".
	RPAREN
	// COMMA is ",".
	COMMA
)

func (t TokenType) String() string {
	switch t {
	case EOF:
		return "EOF"
	case TEXT:
		return "TEXT"
	case NUM:
		return "NUM"
	case LPAREN:
		return "("
	case RPAREN:
		return ")"
	case COMMA:
		return ","
	default:
		return "UNKNOWN"
	}
}

// Token is a single lexical unit of a WKT document. Tokens are immutable
// once produced by the lexer.
type Token struct {
	// Lit is the raw lexeme. TEXT lexemes are upper-cased so keyword
	// matching is case-insensitive.
	Lit string
	// Num is the parsed value for NUM tokens.
	Num float64
	// Pos is the byte offset of the token in the input.
	Pos int
	// Type is the token kind.
	Type TokenType
}
