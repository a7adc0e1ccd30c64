// Package geo wraps parsed geometries into GeoJSON feature documents.
package geo

// FeatureCollection represents a collection of geographic features.
// It follows the standard GeoJSON structure.
type FeatureCollection struct {
	Type     string    `json:"type" yaml:"type"`
	Features []Feature `json:"features" yaml:"features"`
}

// Feature represents a single geographic feature with geometry and properties.
type Feature struct {
	Properties map[string]interface{} `json:"properties" yaml:"properties"`
	Type       string                 `json:"type" yaml:"type"`
	Geometry   Geometry               `json:"geometry" yaml:"geometry"`
}

// Geometry represents the geometry of a feature. Coordinates nests per
// GeoJSON type ([]float64 for Point up to [][][][]float64 for
// MultiPolygon); Geometries is set for GeometryCollection instead.
type Geometry struct {
	Type        string     `json:"type" yaml:"type"`
	Coordinates any        `json:"coordinates,omitempty" yaml:"coordinates,omitempty"`
	Geometries  []Geometry `json:"geometries,omitempty" yaml:"geometries,omitempty"`
}
