// Package server handles HTTP requests and middleware.
package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/woozymasta/geowkt/internal/config"
	"github.com/woozymasta/geowkt/internal/geo"
	"github.com/woozymasta/geowkt/internal/projection"
	"github.com/woozymasta/geowkt/internal/source"
	"github.com/woozymasta/geowkt/wkt"
)

const etagCap = 64

// HandleMapsList serves the JSON configuration of available maps.
func (s *ServerContext) HandleMapsList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	// Ignoring error as we cannot handle client disconnects
	_ = json.NewEncoder(w).Encode(s.Config.Maps)
}

// HandleConvert converts a WKT request body to a GeoJSON
// FeatureCollection. Query parameters: "split" emits one feature per
// collection member, "minify" compacts the JSON output, "map" applies
// the named map's projection settings.
func (s *ServerContext) HandleConvert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	g, ok := s.readGeometry(w, r)
	if !ok {
		return
	}

	if world := s.resolveMap(r.URL.Query().Get("map")); world != nil && world.Project {
		g = projection.Game(float64(world.Size)).Transform(g, false)
	}

	split := queryFlag(r, "split")
	fc := geo.Collection(geo.Features(g, split, nil))

	data, err := json.Marshal(fc)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if queryFlag(r, "minify") {
		min, err := s.Minifier.Bytes("application/json", data)
		if err == nil {
			data = min
		}
	}

	w.Header().Set("Content-Type", "application/geo+json")
	_, _ = w.Write(data)
}

// HandleValidate parses a WKT request body and responds with its
// canonical form, or a diagnostic with status 400.
func (s *ServerContext) HandleValidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	g, ok := s.readGeometry(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, wkt.Marshal(g))
}

// HandleMapFeatures serves /maps/{name}/features.geojson, generated from
// the map's WKT source file with ETag revalidation on the source.
func (s *ServerContext) HandleMapFeatures(w http.ResponseWriter, r *http.Request) {
	// Path: /maps/{mapName}/features.geojson
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) != 3 || parts[2] != "features.geojson" {
		http.NotFound(w, r)
		return
	}

	world := s.resolveMap(parts[1])
	if world == nil || world.Features == "" {
		http.NotFound(w, r)
		return
	}

	info, err := os.Stat(world.Features)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	buf := make([]byte, 0, etagCap)
	buf = append(buf, '"')
	buf = strconv.AppendInt(buf, info.Size(), 16)
	buf = append(buf, '-')
	buf = strconv.AppendInt(buf, info.ModTime().UnixNano(), 16)
	buf = append(buf, '"')
	etag := string(buf)

	// check If-None-Match (client sent ETag)
	if match := r.Header.Get("If-None-Match"); match == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	geoms, err := source.Load(world.Features, s.Config.MaxDepth)
	if err != nil {
		log.Error().Err(err).Str("map", world.Name).Msg("Failed to load features")
		http.Error(w, "invalid feature source", http.StatusInternalServerError)
		return
	}

	var hook projection.Hook
	if world.Project {
		hook = projection.Game(float64(world.Size))
	}

	var features []geo.Feature
	for i, g := range geoms {
		g = hook.Transform(g, false)
		props := map[string]interface{}{"index": i}
		if world.Attribution != "" {
			props["attribution"] = world.Attribution
		}
		features = append(features, geo.Features(g, world.Split, props)...)
	}

	w.Header().Set("Content-Type", "application/geo+json")
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "public, no-cache")
	_ = json.NewEncoder(w).Encode(geo.Collection(features))
}

// readGeometry reads and parses the WKT request body, writing the caret
// diagnostic as a 400 response on failure.
func (s *ServerContext) readGeometry(w http.ResponseWriter, r *http.Request) (wkt.Geometry, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, int64(s.Config.MaxInput)))
	if err != nil {
		http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
		return nil, false
	}

	g, err := wkt.ParseWithLimit(string(bytes.TrimSpace(body)), s.Config.MaxDepth)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}
	return g, true
}

func (s *ServerContext) resolveMap(name string) *config.Map {
	if name == "" {
		return nil
	}
	return s.MapNameResolver[name]
}

func queryFlag(r *http.Request, name string) bool {
	switch r.URL.Query().Get(name) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
