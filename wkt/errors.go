package wkt

import (
	"fmt"
	"strings"
)

// LexError reports an input character that cannot begin or extend any
// valid token.
type LexError struct {
	Input string
	Pos   int
	Char  byte
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error: unexpected character %q at pos %d\n%s\n%s^",
		e.Char, e.Pos, e.Input, strings.Repeat(" ", e.Pos))
}

// ParseError reports a token that violates the grammar at the current
// parse position, including coordinate arity mismatches, missing
// delimiters and truncated input.
type ParseError struct {
	// Tok is the offending lexeme, or "<EOF>" when the input ended
	// before the grammar was complete.
	Tok   string
	Input string
	Pos   int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: unexpected token %q at pos %d\n%s\n%s^",
		e.Tok, e.Pos, e.Input, strings.Repeat(" ", e.Pos))
}

// UnknownTypeError reports a syntactically valid keyword that is not a
// registered geometry type.
type UnknownTypeError struct {
	Keyword string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown geometry type %q", e.Keyword)
}

// DepthError reports input nested deeper than the parser's limit.
type DepthError struct {
	Limit int
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("geometry nesting exceeds depth limit %d", e.Limit)
}
