// Package projection applies coordinate transforms around the WKT codec:
// forward after parsing, inverse before encoding. The codec itself never
// projects anything.
package projection

import (
	"math"

	"github.com/woozymasta/geowkt/wkt"
)

// MaxLat is the Web Mercator latitude cutoff.
const MaxLat = 85.05112878

// Func transforms a single position. Implementations must return a
// coordinate of the same length; ordinates beyond X and Y pass through.
type Func func(c wkt.Coord) wkt.Coord

// Identity returns its input unchanged.
func Identity(c wkt.Coord) wkt.Coord {
	return c
}

// GameToLonLat converts game coordinates (0..mapSize) to WGS84 Lon/Lat
// using a Mercator projection adapted for the game map size.
//
// It maps the game world (0 to mapSize) to the longitude range [-180, 180]
// and applies an inverse Mercator projection for latitude.
func GameToLonLat(mapSize float64) Func {
	return func(c wkt.Coord) wkt.Coord {
		out := make(wkt.Coord, len(c))
		copy(out, c)
		if len(c) < 2 {
			return out
		}
		x, z := c[0], c[1]

		// x: [0..size] -> lon: [-180..180]
		longitudeScale := 360.0 / mapSize
		lon := x*longitudeScale - 180.0

		// z: [0..size] -> mercatorY: [-PI..PI]
		mercatorScale := (2.0 * math.Pi) / mapSize
		mercatorY := z*mercatorScale - math.Pi

		// Inverse Mercator projection
		latRad := (2.0 * math.Atan(math.Exp(mercatorY))) - (math.Pi * 0.5)
		lat := latRad * (180.0 / math.Pi)

		if lat > MaxLat {
			lat = MaxLat
		} else if lat < -MaxLat {
			lat = -MaxLat
		}

		out[0], out[1] = lon, lat
		return out
	}
}

// LonLatToGame is the inverse of GameToLonLat.
func LonLatToGame(mapSize float64) Func {
	return func(c wkt.Coord) wkt.Coord {
		out := make(wkt.Coord, len(c))
		copy(out, c)
		if len(c) < 2 {
			return out
		}
		lon, lat := c[0], c[1]

		x := (lon + 180.0) * mapSize / 360.0

		latRad := lat * (math.Pi / 180.0)
		mercatorY := math.Log(math.Tan(latRad/2 + math.Pi/4))
		z := (mercatorY + math.Pi) * mapSize / (2.0 * math.Pi)

		out[0], out[1] = x, z
		return out
	}
}

// Hook pairs the forward and inverse transform the way callers use them:
// forward on the read path (after parsing), inverse on the write path
// (before encoding).
type Hook struct {
	Forward Func
	Inverse Func
}

// Game returns the hook for a game map of the given edge size.
func Game(mapSize float64) Hook {
	return Hook{Forward: GameToLonLat(mapSize), Inverse: LonLatToGame(mapSize)}
}

// Transform applies the hook to g. With writing set it uses the inverse
// transform; a nil direction leaves g untouched.
func (h Hook) Transform(g wkt.Geometry, writing bool) wkt.Geometry {
	fn := h.Forward
	if writing {
		fn = h.Inverse
	}
	if fn == nil {
		return g
	}
	return Apply(g, fn)
}

// Apply rebuilds g with fn applied to every coordinate. The structure,
// kinds and layouts are preserved; empty geometries pass through.
func Apply(g wkt.Geometry, fn Func) wkt.Geometry {
	switch v := g.(type) {
	case *wkt.Point:
		if v.Empty() {
			return wkt.NewEmptyPoint()
		}
		return wkt.NewPoint(v.Layout(), fn(v.Coord()))
	case *wkt.LineString:
		return wkt.NewLineString(v.Layout(), applyCoords(v.Coords(), fn))
	case *wkt.Polygon:
		return wkt.NewPolygon(v.Layout(), applyRings(v.Rings(), fn))
	case *wkt.MultiPoint:
		points := make([]*wkt.Point, len(v.Points()))
		for i, p := range v.Points() {
			points[i] = Apply(p, fn).(*wkt.Point)
		}
		return wkt.NewMultiPoint(v.Layout(), points)
	case *wkt.MultiLineString:
		lines := make([]*wkt.LineString, len(v.Lines()))
		for i, l := range v.Lines() {
			lines[i] = Apply(l, fn).(*wkt.LineString)
		}
		return wkt.NewMultiLineString(v.Layout(), lines)
	case *wkt.MultiPolygon:
		polygons := make([]*wkt.Polygon, len(v.Polygons()))
		for i, p := range v.Polygons() {
			polygons[i] = Apply(p, fn).(*wkt.Polygon)
		}
		return wkt.NewMultiPolygon(v.Layout(), polygons)
	case *wkt.GeometryCollection:
		geoms := make([]wkt.Geometry, len(v.Geoms()))
		for i, member := range v.Geoms() {
			geoms[i] = Apply(member, fn)
		}
		return wkt.NewGeometryCollection(v.Layout(), geoms)
	default:
		panic("projection: unhandled geometry kind")
	}
}

func applyCoords(coords []wkt.Coord, fn Func) []wkt.Coord {
	if coords == nil {
		return nil
	}
	out := make([]wkt.Coord, len(coords))
	for i, c := range coords {
		out[i] = fn(c)
	}
	return out
}

func applyRings(rs [][]wkt.Coord, fn Func) [][]wkt.Coord {
	if rs == nil {
		return nil
	}
	out := make([][]wkt.Coord, len(rs))
	for i, r := range rs {
		out[i] = applyCoords(r, fn)
	}
	return out
}
