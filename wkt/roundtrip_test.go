package wkt

import "testing"

// Canonical strings re-encode byte-for-byte after a parse.
func TestRoundTripText(t *testing.T) {
	canonical := []string{
		"POINT(10 20)",
		"POINT Z(10 20 30)",
		"POINT M(10 20 30)",
		"POINT ZM(10 20 30 40)",
		"POINT EMPTY",
		"LINESTRING(10 20,30 40)",
		"LINESTRING Z(1 2 3,4 5 6)",
		"LINESTRING EMPTY",
		"POLYGON((0 0,10 0,10 10,0 10,0 0))",
		"POLYGON((0 0,10 0,10 10,0 0),(2 2,4 2,4 4,2 2))",
		"POLYGON EMPTY",
		"MULTIPOINT(10 10,20 20)",
		"MULTIPOINT EMPTY",
		"MULTILINESTRING((1 2,3 4),(5 6,7 8))",
		"MULTIPOLYGON(((0 0,1 0,1 1,0 0)),((5 5,6 5,6 6,5 5)))",
		"GEOMETRYCOLLECTION(POINT(1 2),LINESTRING(3 4,5 6))",
		"GEOMETRYCOLLECTION(POINT Z(1 2 3),GEOMETRYCOLLECTION(POINT(4 5)))",
		"GEOMETRYCOLLECTION EMPTY",
		"POINT(-3.5 0.5)",
		"POINT(1e+10 1e-10)",
	}

	for _, s := range canonical {
		g, err := Parse(s)
		if err != nil {
			t.Errorf("Parse(%q): %v", s, err)
			continue
		}
		if got := Marshal(g); got != s {
			t.Errorf("Marshal(Parse(%q)) = %q", s, got)
		}
	}
}

// Whitespace and dialect variants normalize to the same canonical text.
func TestRoundTripNormalization(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  point ( 10   20 ) ", "POINT(10 20)"},
		{"LINESTRING(10 20, 30 40)", "LINESTRING(10 20,30 40)"},
		{"MULTIPOINT((10 10),(20 20))", "MULTIPOINT(10 10,20 20)"},
		{"Point Zm(1 2 3 4)", "POINT ZM(1 2 3 4)"},
		{"POINT Z EMPTY", "POINT EMPTY"},
		{"POINT(0.50 10.0)", "POINT(0.5 10)"},
	}

	for _, tt := range tests {
		g, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q): %v", tt.in, err)
			continue
		}
		if got := Marshal(g); got != tt.want {
			t.Errorf("Marshal(Parse(%q)) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// Every constructible value survives Marshal then Parse structurally intact.
func TestRoundTripValues(t *testing.T) {
	values := []Geometry{
		NewPoint(XY, Coord{1.5, -2.25}),
		NewPoint(XYZM, Coord{1, 2, 3, 4}),
		NewEmptyPoint(),
		NewLineString(XYM, []Coord{{1, 2, 3}, {4, 5, 6}}),
		NewLineString(XY, nil),
		NewPolygon(XY, [][]Coord{{{0, 0}, {9, 0}, {9, 9}, {0, 0}}}),
		NewMultiPoint(XYZ, []*Point{NewPoint(XYZ, Coord{1, 2, 3})}),
		NewMultiLineString(XY, []*LineString{NewLineString(XY, []Coord{{1, 1}, {2, 2}})}),
		NewMultiPolygon(XY, []*Polygon{NewPolygon(XY, [][]Coord{{{0, 0}, {1, 0}, {0, 1}, {0, 0}}})}),
		NewGeometryCollection(XY, []Geometry{
			NewPoint(XYZ, Coord{1, 2, 3}),
			NewGeometryCollection(XY, []Geometry{NewLineString(XY, []Coord{{7, 8}, {9, 0}})}),
		}),
		NewGeometryCollection(XY, nil),
	}

	for _, g := range values {
		s := Marshal(g)
		back, err := Parse(s)
		if err != nil {
			t.Errorf("Parse(Marshal) of %q: %v", s, err)
			continue
		}
		if !geomEqual(g, back) {
			t.Errorf("round trip of %q changed value: %#v != %#v", s, g, back)
		}
	}
}

// geomEqual compares geometries structurally, treating NaN ordinates as
// equal so the empty-point sentinel compares to itself.
func geomEqual(a, b Geometry) bool {
	if a.Kind() != b.Kind() || a.Layout() != b.Layout() {
		return false
	}

	switch ag := a.(type) {
	case *Point:
		return coordEqual(ag.Coord(), b.(*Point).Coord())
	case *LineString:
		return coordsEqual(ag.Coords(), b.(*LineString).Coords())
	case *Polygon:
		return ringsEqual(ag.Rings(), b.(*Polygon).Rings())
	case *MultiPoint:
		bp := b.(*MultiPoint).Points()
		if len(ag.Points()) != len(bp) {
			return false
		}
		for i, p := range ag.Points() {
			if !geomEqual(p, bp[i]) {
				return false
			}
		}
		return true
	case *MultiLineString:
		bl := b.(*MultiLineString).Lines()
		if len(ag.Lines()) != len(bl) {
			return false
		}
		for i, l := range ag.Lines() {
			if !geomEqual(l, bl[i]) {
				return false
			}
		}
		return true
	case *MultiPolygon:
		bp := b.(*MultiPolygon).Polygons()
		if len(ag.Polygons()) != len(bp) {
			return false
		}
		for i, p := range ag.Polygons() {
			if !geomEqual(p, bp[i]) {
				return false
			}
		}
		return true
	case *GeometryCollection:
		bg := b.(*GeometryCollection).Geoms()
		if len(ag.Geoms()) != len(bg) {
			return false
		}
		for i, g := range ag.Geoms() {
			if !geomEqual(g, bg[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func coordsEqual(a, b []Coord) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !coordEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

func ringsEqual(a, b [][]Coord) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !coordsEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}
