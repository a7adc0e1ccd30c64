package geo

import (
	"github.com/woozymasta/geowkt/wkt"
)

// FromGeometry maps a parsed WKT geometry onto its GeoJSON counterpart.
// Extra ordinates beyond X and Y (Z, M) are carried through in the
// coordinate arrays; an empty point becomes a geometry with no
// coordinates, which GeoJSON renders as null.
func FromGeometry(g wkt.Geometry) Geometry {
	switch v := g.(type) {
	case *wkt.Point:
		if v.Empty() {
			return Geometry{Type: "Point"}
		}
		return Geometry{Type: "Point", Coordinates: position(v.Coord())}
	case *wkt.LineString:
		return Geometry{Type: "LineString", Coordinates: line(v.Coords())}
	case *wkt.Polygon:
		return Geometry{Type: "Polygon", Coordinates: rings(v.Rings())}
	case *wkt.MultiPoint:
		coords := make([][]float64, len(v.Points()))
		for i, p := range v.Points() {
			coords[i] = position(p.Coord())
		}
		return Geometry{Type: "MultiPoint", Coordinates: coords}
	case *wkt.MultiLineString:
		coords := make([][][]float64, len(v.Lines()))
		for i, l := range v.Lines() {
			coords[i] = line(l.Coords())
		}
		return Geometry{Type: "MultiLineString", Coordinates: coords}
	case *wkt.MultiPolygon:
		coords := make([][][][]float64, len(v.Polygons()))
		for i, p := range v.Polygons() {
			coords[i] = rings(p.Rings())
		}
		return Geometry{Type: "MultiPolygon", Coordinates: coords}
	case *wkt.GeometryCollection:
		members := make([]Geometry, len(v.Geoms()))
		for i, member := range v.Geoms() {
			members[i] = FromGeometry(member)
		}
		return Geometry{Type: "GeometryCollection", Geometries: members}
	default:
		// The wkt.Geometry variant set is closed.
		panic("geo: unhandled geometry kind")
	}
}

// NewFeature wraps one geometry into a feature with the given properties.
func NewFeature(g wkt.Geometry, props map[string]interface{}) Feature {
	return Feature{
		Type:       "Feature",
		Geometry:   FromGeometry(g),
		Properties: props,
	}
}

// Features wraps a geometry into one or more features. With split set, a
// GeometryCollection contributes one feature per member instead of a
// single feature holding the whole collection; every feature shares the
// same properties.
func Features(g wkt.Geometry, split bool, props map[string]interface{}) []Feature {
	if c, ok := g.(*wkt.GeometryCollection); ok && split {
		features := make([]Feature, len(c.Geoms()))
		for i, member := range c.Geoms() {
			features[i] = NewFeature(member, props)
		}
		return features
	}
	return []Feature{NewFeature(g, props)}
}

// Collection assembles features into a FeatureCollection document.
func Collection(features []Feature) FeatureCollection {
	if features == nil {
		features = []Feature{}
	}
	return FeatureCollection{Type: "FeatureCollection", Features: features}
}

func position(c wkt.Coord) []float64 {
	out := make([]float64, len(c))
	copy(out, c)
	return out
}

func line(coords []wkt.Coord) [][]float64 {
	out := make([][]float64, len(coords))
	for i, c := range coords {
		out[i] = position(c)
	}
	return out
}

func rings(rs [][]wkt.Coord) [][][]float64 {
	out := make([][][]float64, len(rs))
	for i, r := range rs {
		out[i] = line(r)
	}
	return out
}
