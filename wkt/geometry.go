package wkt

import "math"

// Layout describes the dimensionality of coordinates in a geometry.
type Layout int

const (
	// XY is the default two-dimensional layout.
	XY Layout = iota
	// XYZ adds elevation.
	XYZ
	// XYM adds a measure value.
	XYM
	// XYZM adds elevation and a measure value.
	XYZM
)

// Stride returns the number of ordinates per coordinate for the layout.
func (l Layout) Stride() int {
	switch l {
	case XYZ, XYM:
		return 3
	case XYZM:
		return 4
	default:
		return 2
	}
}

// Tag returns the WKT dimension tag for the layout, empty for XY.
func (l Layout) Tag() string {
	switch l {
	case XYZ:
		return "Z"
	case XYM:
		return "M"
	case XYZM:
		return "ZM"
	default:
		return ""
	}
}

func (l Layout) String() string {
	if l == XY {
		return "XY"
	}
	return "XY" + l.Tag()
}

// Coord is a single position. Its length equals the stride of the layout
// of the geometry holding it.
type Coord []float64

// Kind identifies a geometry type. The set is closed; the registry maps
// each kind to its WKT keyword and grammar rule.
type Kind int

const (
	KindPoint Kind = iota
	KindLineString
	KindPolygon
	KindMultiPoint
	KindMultiLineString
	KindMultiPolygon
	KindGeometryCollection
	numKinds
)

var kindKeywords = [numKinds]string{
	KindPoint:              "POINT",
	KindLineString:         "LINESTRING",
	KindPolygon:            "POLYGON",
	KindMultiPoint:         "MULTIPOINT",
	KindMultiLineString:    "MULTILINESTRING",
	KindMultiPolygon:       "MULTIPOLYGON",
	KindGeometryCollection: "GEOMETRYCOLLECTION",
}

// String returns the upper-case WKT keyword for the kind.
func (k Kind) String() string {
	return kindKeywords[k]
}

// Geometry is a parsed WKT value. The interface is sealed: the seven
// types in this file are the only implementations.
type Geometry interface {
	Kind() Kind
	Layout() Layout
	sealed()
}

// Point holds a single coordinate. A point parsed from "POINT EMPTY" is
// represented as a 2-D coordinate of NaNs with layout XY, regardless of
// any dimension tag on the input.
type Point struct {
	coord  Coord
	layout Layout
}

// NewPoint returns a point with the given layout and coordinate.
func NewPoint(layout Layout, coord Coord) *Point {
	return &Point{coord: coord, layout: layout}
}

// NewEmptyPoint returns the empty-point sentinel.
func NewEmptyPoint() *Point {
	return &Point{coord: Coord{math.NaN(), math.NaN()}, layout: XY}
}

func (p *Point) Kind() Kind     { return KindPoint }
func (p *Point) Layout() Layout { return p.layout }
func (p *Point) Coord() Coord   { return p.coord }

// Empty reports whether p is the empty-point sentinel.
func (p *Point) Empty() bool {
	return len(p.coord) == 0 || math.IsNaN(p.coord[0])
}

func (*Point) sealed() {}

// LineString holds an ordered sequence of coordinates.
type LineString struct {
	coords []Coord
	layout Layout
}

// NewLineString returns a line string with the given layout and coordinates.
func NewLineString(layout Layout, coords []Coord) *LineString {
	return &LineString{coords: coords, layout: layout}
}

func (l *LineString) Kind() Kind      { return KindLineString }
func (l *LineString) Layout() Layout  { return l.layout }
func (l *LineString) Coords() []Coord { return l.coords }
func (l *LineString) Empty() bool     { return len(l.coords) == 0 }

func (*LineString) sealed() {}

// Polygon holds an ordered sequence of linear rings. Ring closure is not
// enforced.
type Polygon struct {
	rings  [][]Coord
	layout Layout
}

// NewPolygon returns a polygon with the given layout and rings.
func NewPolygon(layout Layout, rings [][]Coord) *Polygon {
	return &Polygon{rings: rings, layout: layout}
}

func (p *Polygon) Kind() Kind       { return KindPolygon }
func (p *Polygon) Layout() Layout   { return p.layout }
func (p *Polygon) Rings() [][]Coord { return p.rings }
func (p *Polygon) Empty() bool      { return len(p.rings) == 0 }

func (*Polygon) sealed() {}

// MultiPoint holds an ordered sequence of points.
type MultiPoint struct {
	points []*Point
	layout Layout
}

// NewMultiPoint returns a multi-point with the given layout and members.
func NewMultiPoint(layout Layout, points []*Point) *MultiPoint {
	return &MultiPoint{points: points, layout: layout}
}

func (m *MultiPoint) Kind() Kind       { return KindMultiPoint }
func (m *MultiPoint) Layout() Layout   { return m.layout }
func (m *MultiPoint) Points() []*Point { return m.points }
func (m *MultiPoint) Empty() bool      { return len(m.points) == 0 }

func (*MultiPoint) sealed() {}

// MultiLineString holds an ordered sequence of line strings.
type MultiLineString struct {
	lines  []*LineString
	layout Layout
}

// NewMultiLineString returns a multi-line-string with the given layout
// and members.
func NewMultiLineString(layout Layout, lines []*LineString) *MultiLineString {
	return &MultiLineString{lines: lines, layout: layout}
}

func (m *MultiLineString) Kind() Kind           { return KindMultiLineString }
func (m *MultiLineString) Layout() Layout       { return m.layout }
func (m *MultiLineString) Lines() []*LineString { return m.lines }
func (m *MultiLineString) Empty() bool          { return len(m.lines) == 0 }

func (*MultiLineString) sealed() {}

// MultiPolygon holds an ordered sequence of polygons.
type MultiPolygon struct {
	polygons []*Polygon
	layout   Layout
}

// NewMultiPolygon returns a multi-polygon with the given layout and members.
func NewMultiPolygon(layout Layout, polygons []*Polygon) *MultiPolygon {
	return &MultiPolygon{polygons: polygons, layout: layout}
}

func (m *MultiPolygon) Kind() Kind           { return KindMultiPolygon }
func (m *MultiPolygon) Layout() Layout       { return m.layout }
func (m *MultiPolygon) Polygons() []*Polygon { return m.polygons }
func (m *MultiPolygon) Empty() bool          { return len(m.polygons) == 0 }

func (*MultiPolygon) sealed() {}

// GeometryCollection holds an ordered, heterogeneous sequence of
// geometries. Each member carries its own layout, declared independently
// of the collection's.
type GeometryCollection struct {
	geoms  []Geometry
	layout Layout
}

// NewGeometryCollection returns a collection with the given layout and
// members.
func NewGeometryCollection(layout Layout, geoms []Geometry) *GeometryCollection {
	return &GeometryCollection{geoms: geoms, layout: layout}
}

func (c *GeometryCollection) Kind() Kind     { return KindGeometryCollection }
func (c *GeometryCollection) Layout() Layout { return c.layout }

// Geoms returns the member geometries. Callers that split a collection
// into separate features consume this slice directly; the collection is
// never flattened internally.
func (c *GeometryCollection) Geoms() []Geometry { return c.geoms }

func (c *GeometryCollection) Empty() bool { return len(c.geoms) == 0 }

func (*GeometryCollection) sealed() {}
