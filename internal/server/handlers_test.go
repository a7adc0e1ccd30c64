package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/woozymasta/geowkt/internal/config"
	"github.com/woozymasta/geowkt/internal/geo"
	"github.com/woozymasta/geowkt/wkt"
)

func testContext(t *testing.T) *ServerContext {
	t.Helper()

	dir := t.TempDir()
	features := filepath.Join(dir, "features.wkt")
	src := "POINT(10 20)\nGEOMETRYCOLLECTION(POINT(1 2),POINT(3 4))\n"
	if err := os.WriteFile(features, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := &config.Config{
		Maps: []config.Map{
			{Name: "testmap", Features: features, Split: true, Aliases: []string{"tm"}},
		},
		MaxDepth: wkt.DefaultMaxDepth,
		MaxInput: config.DefaultMaxInput,
	}
	return NewServerContext(cfg)
}

func TestHandleConvert(t *testing.T) {
	ctx := testContext(t)

	req := httptest.NewRequest(http.MethodPost, "/api/convert", strings.NewReader("POINT(10 20)"))
	w := httptest.NewRecorder()
	ctx.HandleConvert(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var fc geo.FeatureCollection
	if err := json.Unmarshal(w.Body.Bytes(), &fc); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	if len(fc.Features) != 1 || fc.Features[0].Geometry.Type != "Point" {
		t.Errorf("response = %s", w.Body.String())
	}
}

func TestHandleConvertSplit(t *testing.T) {
	ctx := testContext(t)

	body := "GEOMETRYCOLLECTION(POINT(1 2),POINT(3 4))"
	req := httptest.NewRequest(http.MethodPost, "/api/convert?split=1&minify=1", strings.NewReader(body))
	w := httptest.NewRecorder()
	ctx.HandleConvert(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var fc geo.FeatureCollection
	if err := json.Unmarshal(w.Body.Bytes(), &fc); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	if len(fc.Features) != 2 {
		t.Errorf("features = %d, want 2", len(fc.Features))
	}
}

func TestHandleConvertBadInput(t *testing.T) {
	ctx := testContext(t)

	req := httptest.NewRequest(http.MethodPost, "/api/convert", strings.NewReader("CIRCLE(0 0, 5)"))
	w := httptest.NewRecorder()
	ctx.HandleConvert(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "CIRCLE") {
		t.Errorf("diagnostic missing keyword: %s", w.Body.String())
	}
}

func TestHandleConvertMethod(t *testing.T) {
	ctx := testContext(t)

	req := httptest.NewRequest(http.MethodGet, "/api/convert", nil)
	w := httptest.NewRecorder()
	ctx.HandleConvert(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", w.Code)
	}
}

func TestHandleValidate(t *testing.T) {
	ctx := testContext(t)

	req := httptest.NewRequest(http.MethodPost, "/api/validate", strings.NewReader("  point ( 10  20 ) "))
	w := httptest.NewRecorder()
	ctx.HandleValidate(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if w.Body.String() != "POINT(10 20)" {
		t.Errorf("canonical form = %q", w.Body.String())
	}
}

func TestHandleMapFeatures(t *testing.T) {
	ctx := testContext(t)

	req := httptest.NewRequest(http.MethodGet, "/maps/tm/features.geojson", nil)
	w := httptest.NewRecorder()
	ctx.HandleMapFeatures(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if w.Header().Get("ETag") == "" {
		t.Error("missing ETag")
	}

	var fc geo.FeatureCollection
	if err := json.Unmarshal(w.Body.Bytes(), &fc); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	// Two source lines; the collection splits into two features.
	if len(fc.Features) != 3 {
		t.Errorf("features = %d, want 3", len(fc.Features))
	}

	// Revalidation with the returned ETag short-circuits.
	req = httptest.NewRequest(http.MethodGet, "/maps/tm/features.geojson", nil)
	req.Header.Set("If-None-Match", w.Header().Get("ETag"))
	w2 := httptest.NewRecorder()
	ctx.HandleMapFeatures(w2, req)
	if w2.Code != http.StatusNotModified {
		t.Errorf("revalidation status = %d, want 304", w2.Code)
	}
}

func TestHandleMapFeaturesUnknownMap(t *testing.T) {
	ctx := testContext(t)

	req := httptest.NewRequest(http.MethodGet, "/maps/elsewhere/features.geojson", nil)
	w := httptest.NewRecorder()
	ctx.HandleMapFeatures(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
