package wkt

import "testing"

func TestMarshal(t *testing.T) {
	tests := []struct {
		g    Geometry
		want string
	}{
		{NewPoint(XY, Coord{10, 20}), "POINT(10 20)"},
		{NewPoint(XYZ, Coord{10, 20, 30}), "POINT Z(10 20 30)"},
		{NewPoint(XYM, Coord{10, 20, 30}), "POINT M(10 20 30)"},
		{NewPoint(XYZM, Coord{10, 20, 30, 40}), "POINT ZM(10 20 30 40)"},
		{NewEmptyPoint(), "POINT EMPTY"},
		{NewLineString(XY, []Coord{{10, 20}, {30, 40}}), "LINESTRING(10 20,30 40)"},
		{NewLineString(XYZ, nil), "LINESTRING Z EMPTY"},
		{NewPolygon(XY, [][]Coord{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}}), "POLYGON((0 0,1 0,1 1,0 0))"},
		{NewPolygon(XY, nil), "POLYGON EMPTY"},
		{
			NewMultiPoint(XY, []*Point{NewPoint(XY, Coord{10, 10}), NewPoint(XY, Coord{20, 20})}),
			"MULTIPOINT(10 10,20 20)",
		},
		{
			NewMultiLineString(XY, []*LineString{
				NewLineString(XY, []Coord{{1, 2}, {3, 4}}),
				NewLineString(XY, []Coord{{5, 6}, {7, 8}}),
			}),
			"MULTILINESTRING((1 2,3 4),(5 6,7 8))",
		},
		{
			NewMultiPolygon(XY, []*Polygon{
				NewPolygon(XY, [][]Coord{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}}),
			}),
			"MULTIPOLYGON(((0 0,1 0,1 1,0 0)))",
		},
		{
			NewGeometryCollection(XY, []Geometry{
				NewPoint(XY, Coord{1, 2}),
				NewLineString(XY, []Coord{{3, 4}, {5, 6}}),
			}),
			"GEOMETRYCOLLECTION(POINT(1 2),LINESTRING(3 4,5 6))",
		},
		{NewGeometryCollection(XY, nil), "GEOMETRYCOLLECTION EMPTY"},
		{
			NewGeometryCollection(XY, []Geometry{NewEmptyPoint()}),
			"GEOMETRYCOLLECTION(POINT EMPTY)",
		},
	}

	for _, tt := range tests {
		if got := Marshal(tt.g); got != tt.want {
			t.Errorf("Marshal = %q, want %q", got, tt.want)
		}
	}
}

// Marshal output must stay inside the lexer's number grammar for every
// float, including values that format in scientific notation.
func TestMarshalNumberFormatting(t *testing.T) {
	tests := []struct {
		f    float64
		want string
	}{
		{10, "10"},
		{-3.5, "-3.5"},
		{0.5, "0.5"},
		{1e10, "1e+10"},
		{1e-10, "1e-10"},
		{6378137, "6.378137e+06"},
		{0.1, "0.1"},
	}

	for _, tt := range tests {
		got := formatNum(tt.f)
		if got != tt.want {
			t.Errorf("formatNum(%v) = %q, want %q", tt.f, got, tt.want)
		}

		back, err := Parse("POINT(" + got + " 0)")
		if err != nil {
			t.Errorf("re-parse of %q: %v", got, err)
			continue
		}
		if back.(*Point).Coord()[0] != tt.f {
			t.Errorf("round-tripped %q = %v, want %v", got, back.(*Point).Coord()[0], tt.f)
		}
	}
}
