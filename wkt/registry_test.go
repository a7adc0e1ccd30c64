package wkt

import "testing"

// The table is populated at package init and the collection rules call
// back into it for their members, so every kind must be reachable from
// both directions before any Parse or Marshal runs.
func TestRegistryCoversAllKinds(t *testing.T) {
	for k := Kind(0); k < numKinds; k++ {
		keyword := k.String()

		ent, ok := lookup(keyword)
		if !ok {
			t.Fatalf("lookup(%q) missing", keyword)
		}
		if ent.kind != k {
			t.Errorf("lookup(%q).kind = %v, want %v", keyword, ent.kind, k)
		}
		if ent.parse == nil || ent.empty == nil || ent.encode == nil {
			t.Errorf("entry %q has nil rule", keyword)
		}

		if byKind(k) != ent {
			t.Errorf("byKind(%v) does not match lookup(%q)", k, keyword)
		}
	}
}

func TestRegistryDrivesNestedCollections(t *testing.T) {
	in := "GEOMETRYCOLLECTION(GEOMETRYCOLLECTION(POINT(1 2)),LINESTRING(0 0,1 1))"
	g, err := Parse(in)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := Marshal(g); got != in {
		t.Errorf("Marshal = %q, want %q", got, in)
	}
}
