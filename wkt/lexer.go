// Package wkt reads and writes the Well-Known Text geometry format.
//
// The package converts between WKT strings and the geometry model in
// geometry.go: a hand-written lexer feeds a recursive-descent parser with
// one token of lookahead, and a symmetric encoder renders geometries back
// to canonical text. Both sides dispatch through the same type registry,
// so any geometry kind the parser accepts the encoder can write.
//
// Supported are the seven classic kinds (POINT, LINESTRING, POLYGON,
// MULTIPOINT, MULTILINESTRING, MULTIPOLYGON, GEOMETRYCOLLECTION), the
// Z / M / ZM dimension tags and the EMPTY sentinel. SRID prefixes and
// curved types are not supported.
package wkt

import (
	"strconv"
	"strings"
)

// Lexer splits a WKT input into tokens. A Lexer is single-use: create one
// per input, call Next until it returns an EOF token. After EOF it keeps
// returning EOF.
type Lexer struct {
	src string
	pos int
}

// NewLexer returns a lexer over src.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src}
}

// peek returns the current character without consuming it, or 0 at the
// end of the input.
func (l *Lexer) peek() byte {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

// next consumes and returns the current character, or 0 at the end of the
// input.
func (l *Lexer) next() byte {
	c := l.peek()
	if c != 0 {
		l.pos++
	}
	return c
}

// unread steps the cursor back one character. Multi-character scans use it
// to push back the first character that cannot extend the current token.
func (l *Lexer) unread() {
	if l.pos > 0 {
		l.pos--
	}
}

// Next returns the next token. Whitespace never produces a token; an
// input character that cannot begin a token yields a *LexError.
func (l *Lexer) Next() (Token, error) {
	l.skipSpace()

	start := l.pos
	switch c := l.next(); {
	case c == 0:
		return Token{Type: EOF, Pos: start}, nil
	case c == '(':
		return Token{Type: LPAREN, Lit: "(", Pos: start}, nil
	case c == ')':
		return Token{Type: RPAREN, Lit: ")", Pos: start}, nil
	case c == ',':
		return Token{Type: COMMA, Lit: ",", Pos: start}, nil
	case isNumStart(c):
		l.unread()
		return l.number(start)
	case isLetter(c):
		l.unread()
		return l.text(start), nil
	default:
		return Token{}, &LexError{Char: c, Pos: start, Input: l.src}
	}
}

// number scans a numeric literal: optional leading minus, digits with at
// most one decimal point, and at most one exponent marker optionally
// followed by a sign.
func (l *Lexer) number(start int) (Token, error) {
	var seenDot, seenExp bool

	if l.peek() == '-' {
		l.next()
	}
	for {
		c := l.next()
		if isDigit(c) {
			continue
		}
		if c == '.' && !seenDot && !seenExp {
			seenDot = true
			continue
		}
		if (c == 'e' || c == 'E') && !seenExp {
			seenExp = true
			if s := l.peek(); s == '+' || s == '-' {
				l.next()
			}
			continue
		}
		if c != 0 {
			l.unread()
		}
		break
	}

	lit := l.src[start:l.pos]
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return Token{}, &LexError{Char: l.src[start], Pos: start, Input: l.src}
	}
	return Token{Type: NUM, Lit: lit, Num: f, Pos: start}, nil
}

// text scans a maximal run of ASCII letters and upper-cases it.
func (l *Lexer) text(start int) Token {
	for {
		c := l.next()
		if isLetter(c) {
			continue
		}
		if c != 0 {
			l.unread()
		}
		break
	}
	return Token{Type: TEXT, Lit: strings.ToUpper(l.src[start:l.pos]), Pos: start}
}

func (l *Lexer) skipSpace() {
	for {
		switch l.peek() {
		case ' ', '\t', '\r', '\n':
			l.next()
		default:
			return
		}
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isNumStart(c byte) bool {
	return isDigit(c) || c == '.' || c == '-'
}
