package wkt

import (
	"strconv"
	"strings"
)

// Marshal renders a geometry as canonical WKT: upper-case keyword, a
// single space before a non-XY dimension tag, no space after commas, and
// "<TYPE> EMPTY" for geometries with no coordinate data. Marshal is total
// for every value constructible from this package.
func Marshal(g Geometry) string {
	var b strings.Builder
	writeGeometry(&b, g)
	return b.String()
}

func writeGeometry(b *strings.Builder, g Geometry) {
	b.WriteString(g.Kind().String())
	if tag := g.Layout().Tag(); tag != "" {
		b.WriteByte(' ')
		b.WriteString(tag)
	}

	body := byKind(g.Kind()).encode(g)
	if body == "" {
		b.WriteString(" EMPTY")
		return
	}
	b.WriteByte('(')
	b.WriteString(body)
	b.WriteByte(')')
}

// formatNum renders the shortest decimal form that parses back to the
// identical float64, which keeps Marshal output inside the lexer's
// number grammar.
func formatNum(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func formatCoord(c Coord) string {
	parts := make([]string, len(c))
	for i, f := range c {
		parts[i] = formatNum(f)
	}
	return strings.Join(parts, " ")
}

func formatCoords(coords []Coord) string {
	parts := make([]string, len(coords))
	for i, c := range coords {
		parts[i] = formatCoord(c)
	}
	return strings.Join(parts, ",")
}

func formatRings(rings [][]Coord) string {
	parts := make([]string, len(rings))
	for i, r := range rings {
		parts[i] = "(" + formatCoords(r) + ")"
	}
	return strings.Join(parts, ",")
}

func encodePointBody(g Geometry) string {
	p := g.(*Point)
	if p.Empty() {
		return ""
	}
	return formatCoord(p.Coord())
}

func encodeLineStringBody(g Geometry) string {
	return formatCoords(g.(*LineString).Coords())
}

func encodePolygonBody(g Geometry) string {
	return formatRings(g.(*Polygon).Rings())
}

// encodeMultiPointBody writes the bare-coordinate dialect, the canonical
// form for round-tripping.
func encodeMultiPointBody(g Geometry) string {
	m := g.(*MultiPoint)
	parts := make([]string, len(m.Points()))
	for i, p := range m.Points() {
		parts[i] = formatCoord(p.Coord())
	}
	return strings.Join(parts, ",")
}

func encodeMultiLineStringBody(g Geometry) string {
	m := g.(*MultiLineString)
	rings := make([][]Coord, len(m.Lines()))
	for i, l := range m.Lines() {
		rings[i] = l.Coords()
	}
	return formatRings(rings)
}

func encodeMultiPolygonBody(g Geometry) string {
	m := g.(*MultiPolygon)
	parts := make([]string, len(m.Polygons()))
	for i, p := range m.Polygons() {
		parts[i] = "(" + formatRings(p.Rings()) + ")"
	}
	return strings.Join(parts, ",")
}

func encodeCollectionBody(g Geometry) string {
	c := g.(*GeometryCollection)
	parts := make([]string, len(c.Geoms()))
	for i, member := range c.Geoms() {
		parts[i] = Marshal(member)
	}
	return strings.Join(parts, ",")
}
