package wkt

// DefaultMaxDepth bounds geometry nesting accepted by Parse. Only
// GEOMETRYCOLLECTION recursion can grow the parse stack with the input,
// so the limit is on collection nesting levels.
const DefaultMaxDepth = 64

// tokens is a token stream with a one-token lookahead buffer. The parser
// never rewinds; it peeks before deciding and advances at most one token
// at a time.
type tokens struct {
	lex      *Lexer
	buf      Token
	buffered bool
}

func (t *tokens) peek() (Token, error) {
	if !t.buffered {
		tok, err := t.lex.Next()
		if err != nil {
			return Token{}, err
		}
		t.buf = tok
		t.buffered = true
	}
	return t.buf, nil
}

func (t *tokens) next() (Token, error) {
	tok, err := t.peek()
	t.buffered = false
	return tok, err
}

type parser struct {
	toks  *tokens
	input string
	depth int
	limit int
}

// Parse reads a single geometry from a WKT string. It returns a
// *LexError, *ParseError, *UnknownTypeError or *DepthError on malformed
// input; trailing content after the geometry is a parse error.
func Parse(s string) (Geometry, error) {
	return ParseWithLimit(s, DefaultMaxDepth)
}

// ParseWithLimit is Parse with an explicit nesting depth limit.
func ParseWithLimit(s string, maxDepth int) (Geometry, error) {
	p := &parser{toks: &tokens{lex: NewLexer(s)}, input: s, limit: maxDepth}

	g, err := p.geometry()
	if err != nil {
		return nil, err
	}

	tok, err := p.toks.next()
	if err != nil {
		return nil, err
	}
	if tok.Type != EOF {
		return nil, p.errAt(tok)
	}
	return g, nil
}

func (p *parser) errAt(tok Token) error {
	lit := tok.Lit
	if tok.Type == EOF {
		lit = "<EOF>"
	}
	return &ParseError{Tok: lit, Pos: tok.Pos, Input: p.input}
}

// expect consumes the next token and fails unless it has the given type.
func (p *parser) expect(tt TokenType) (Token, error) {
	tok, err := p.toks.next()
	if err != nil {
		return Token{}, err
	}
	if tok.Type != tt {
		return Token{}, p.errAt(tok)
	}
	return tok, nil
}

// accept consumes the next token only if it has the given type.
func (p *parser) accept(tt TokenType) (bool, error) {
	tok, err := p.toks.peek()
	if err != nil {
		return false, err
	}
	if tok.Type != tt {
		return false, nil
	}
	_, _ = p.toks.next()
	return true, nil
}

// geometry parses "Keyword DimTag? Body". It is the recursion point for
// collections, so the depth limit is enforced here.
func (p *parser) geometry() (Geometry, error) {
	if p.depth >= p.limit {
		return nil, &DepthError{Limit: p.limit}
	}
	p.depth++
	defer func() { p.depth-- }()

	tok, err := p.toks.next()
	if err != nil {
		return nil, err
	}
	if tok.Type != TEXT {
		return nil, p.errAt(tok)
	}

	ent, ok := lookup(tok.Lit)
	if !ok {
		return nil, &UnknownTypeError{Keyword: tok.Lit}
	}

	layout, err := p.dimTag()
	if err != nil {
		return nil, err
	}
	return p.body(ent, layout)
}

// dimTag consumes an optional Z, M or ZM tag. Absence means XY.
func (p *parser) dimTag() (Layout, error) {
	tok, err := p.toks.peek()
	if err != nil {
		return XY, err
	}
	if tok.Type != TEXT {
		return XY, nil
	}

	var layout Layout
	switch tok.Lit {
	case "Z":
		layout = XYZ
	case "M":
		layout = XYM
	case "ZM":
		layout = XYZM
	default:
		return XY, nil
	}
	_, _ = p.toks.next()
	return layout, nil
}

// body parses either the EMPTY sentinel or a parenthesized body via the
// registry rule for the type.
func (p *parser) body(ent *entry, layout Layout) (Geometry, error) {
	tok, err := p.toks.peek()
	if err != nil {
		return nil, err
	}
	if tok.Type == TEXT && tok.Lit == "EMPTY" {
		_, _ = p.toks.next()
		return ent.empty(layout), nil
	}

	if _, err := p.expect(LPAREN); err != nil {
		return nil, err
	}
	g, err := ent.parse(p, layout)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(RPAREN); err != nil {
		return nil, err
	}
	return g, nil
}

// coord reads exactly one coordinate: stride-many numbers. A non-number
// token inside the run is the arity-mismatch failure position.
func (p *parser) coord(layout Layout) (Coord, error) {
	c := make(Coord, 0, layout.Stride())
	for i := 0; i < layout.Stride(); i++ {
		tok, err := p.toks.next()
		if err != nil {
			return nil, err
		}
		if tok.Type != NUM {
			return nil, p.errAt(tok)
		}
		c = append(c, tok.Num)
	}
	return c, nil
}

// coordList reads one or more comma-separated coordinates.
func (p *parser) coordList(layout Layout) ([]Coord, error) {
	var coords []Coord
	for {
		c, err := p.coord(layout)
		if err != nil {
			return nil, err
		}
		coords = append(coords, c)

		more, err := p.accept(COMMA)
		if err != nil {
			return nil, err
		}
		if !more {
			return coords, nil
		}
	}
}

// ring reads a parenthesized coordinate list.
func (p *parser) ring(layout Layout) ([]Coord, error) {
	if _, err := p.expect(LPAREN); err != nil {
		return nil, err
	}
	coords, err := p.coordList(layout)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(RPAREN); err != nil {
		return nil, err
	}
	return coords, nil
}

// ringList reads one or more comma-separated rings.
func (p *parser) ringList(layout Layout) ([][]Coord, error) {
	var rings [][]Coord
	for {
		r, err := p.ring(layout)
		if err != nil {
			return nil, err
		}
		rings = append(rings, r)

		more, err := p.accept(COMMA)
		if err != nil {
			return nil, err
		}
		if !more {
			return rings, nil
		}
	}
}

func (p *parser) pointBody(layout Layout) (Geometry, error) {
	c, err := p.coord(layout)
	if err != nil {
		return nil, err
	}
	return NewPoint(layout, c), nil
}

func (p *parser) lineStringBody(layout Layout) (Geometry, error) {
	coords, err := p.coordList(layout)
	if err != nil {
		return nil, err
	}
	return NewLineString(layout, coords), nil
}

func (p *parser) polygonBody(layout Layout) (Geometry, error) {
	rings, err := p.ringList(layout)
	if err != nil {
		return nil, err
	}
	return NewPolygon(layout, rings), nil
}

// multiPointBody accepts both MULTIPOINT dialects: a bare coordinate
// list "(10 10,20 20)" and a parenthesized point list "((10 10),(20 20))".
// The token after the opening parenthesis decides which one.
func (p *parser) multiPointBody(layout Layout) (Geometry, error) {
	tok, err := p.toks.peek()
	if err != nil {
		return nil, err
	}

	var coords []Coord
	if tok.Type == LPAREN {
		// Parenthesized dialect: each member holds exactly one coordinate.
		for {
			if _, err := p.expect(LPAREN); err != nil {
				return nil, err
			}
			c, err := p.coord(layout)
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(RPAREN); err != nil {
				return nil, err
			}
			coords = append(coords, c)

			more, err := p.accept(COMMA)
			if err != nil {
				return nil, err
			}
			if !more {
				break
			}
		}
	} else {
		coords, err = p.coordList(layout)
		if err != nil {
			return nil, err
		}
	}

	points := make([]*Point, len(coords))
	for i, c := range coords {
		points[i] = NewPoint(layout, c)
	}
	return NewMultiPoint(layout, points), nil
}

func (p *parser) multiLineStringBody(layout Layout) (Geometry, error) {
	rings, err := p.ringList(layout)
	if err != nil {
		return nil, err
	}
	lines := make([]*LineString, len(rings))
	for i, r := range rings {
		lines[i] = NewLineString(layout, r)
	}
	return NewMultiLineString(layout, lines), nil
}

func (p *parser) multiPolygonBody(layout Layout) (Geometry, error) {
	var polygons []*Polygon
	for {
		if _, err := p.expect(LPAREN); err != nil {
			return nil, err
		}
		rings, err := p.ringList(layout)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(RPAREN); err != nil {
			return nil, err
		}
		polygons = append(polygons, NewPolygon(layout, rings))

		more, err := p.accept(COMMA)
		if err != nil {
			return nil, err
		}
		if !more {
			return NewMultiPolygon(layout, polygons), nil
		}
	}
}

// collectionBody parses comma-separated member geometries. Each member
// declares its own layout; the collection's tag does not constrain them.
func (p *parser) collectionBody(layout Layout) (Geometry, error) {
	var geoms []Geometry
	for {
		g, err := p.geometry()
		if err != nil {
			return nil, err
		}
		geoms = append(geoms, g)

		more, err := p.accept(COMMA)
		if err != nil {
			return nil, err
		}
		if !more {
			return NewGeometryCollection(layout, geoms), nil
		}
	}
}
