package wkt

// entry ties a geometry kind to its body grammar rule and encoder. The
// parser and the encoder consult the same table, so the two stay
// symmetric for every registered type: adding a kind is a table edit, not
// a change to either traversal.
type entry struct {
	kind Kind
	// parse reads the body between the parentheses, using the layout
	// declared by the geometry's dimension tag.
	parse func(*parser, Layout) (Geometry, error)
	// empty constructs the geometry for an EMPTY body.
	empty func(Layout) Geometry
	// encode renders the body text, without the surrounding parentheses.
	// An empty result means the geometry renders as "<TYPE> EMPTY".
	encode func(Geometry) string
}

// registry and kindIndex are populated in init rather than by their
// declarations: the body rules reach back into lookup and byKind for
// collection members, which an initializer expression would turn into an
// initialization cycle.
var (
	registry  map[string]*entry
	kindIndex [numKinds]*entry
)

func init() {
	registry = map[string]*entry{
		"POINT": {
			kind:  KindPoint,
			parse: (*parser).pointBody,
			// An EMPTY point is always the 2-D NaN sentinel, even when a
			// dimension tag was declared before EMPTY.
			empty:  func(Layout) Geometry { return NewEmptyPoint() },
			encode: encodePointBody,
		},
		"LINESTRING": {
			kind:   KindLineString,
			parse:  (*parser).lineStringBody,
			empty:  func(l Layout) Geometry { return NewLineString(l, nil) },
			encode: encodeLineStringBody,
		},
		"POLYGON": {
			kind:   KindPolygon,
			parse:  (*parser).polygonBody,
			empty:  func(l Layout) Geometry { return NewPolygon(l, nil) },
			encode: encodePolygonBody,
		},
		"MULTIPOINT": {
			kind:   KindMultiPoint,
			parse:  (*parser).multiPointBody,
			empty:  func(l Layout) Geometry { return NewMultiPoint(l, nil) },
			encode: encodeMultiPointBody,
		},
		"MULTILINESTRING": {
			kind:   KindMultiLineString,
			parse:  (*parser).multiLineStringBody,
			empty:  func(l Layout) Geometry { return NewMultiLineString(l, nil) },
			encode: encodeMultiLineStringBody,
		},
		"MULTIPOLYGON": {
			kind:   KindMultiPolygon,
			parse:  (*parser).multiPolygonBody,
			empty:  func(l Layout) Geometry { return NewMultiPolygon(l, nil) },
			encode: encodeMultiPolygonBody,
		},
		"GEOMETRYCOLLECTION": {
			kind:   KindGeometryCollection,
			parse:  (*parser).collectionBody,
			empty:  func(l Layout) Geometry { return NewGeometryCollection(l, nil) },
			encode: encodeCollectionBody,
		},
	}

	for _, e := range registry {
		kindIndex[e.kind] = e
	}
}

func lookup(keyword string) (*entry, bool) {
	e, ok := registry[keyword]
	return e, ok
}

func byKind(k Kind) *entry {
	return kindIndex[k]
}
