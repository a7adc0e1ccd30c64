package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/woozymasta/geowkt/wkt"
)

const sample = `
attribution: "Example Maps"
max_input: 4096
maps:
  - name: chernarus
    features: maps/chernarus/features.wkt
    size: 15360
    project: true
    split: true
    aliases: [chernarusplus]
  - name: sandbox
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(sample), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Attribution != "Example Maps" {
		t.Errorf("attribution = %q", cfg.Attribution)
	}
	if len(cfg.Maps) != 2 {
		t.Fatalf("maps = %d, want 2", len(cfg.Maps))
	}

	m := cfg.Maps[0]
	if m.Name != "chernarus" || m.Size != 15360 || !m.Project || !m.Split {
		t.Errorf("first map = %+v", m)
	}
	if len(m.Aliases) != 1 || m.Aliases[0] != "chernarusplus" {
		t.Errorf("aliases = %v", m.Aliases)
	}

	// Defaults fill in when the file omits them.
	if cfg.MaxDepth != wkt.DefaultMaxDepth {
		t.Errorf("max_depth = %d, want %d", cfg.MaxDepth, wkt.DefaultMaxDepth)
	}
	if cfg.MaxInput != 4096 {
		t.Errorf("max_input = %d, want 4096", cfg.MaxInput)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
