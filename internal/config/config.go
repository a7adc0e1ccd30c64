// Package config handles configuration loading and shared data structures.
package config

import (
	"os"

	"github.com/woozymasta/geowkt/wkt"

	"gopkg.in/yaml.v3"
)

// DefaultMaxInput bounds the WKT payload size accepted by the API.
const DefaultMaxInput = 1 << 20

// Config represents the root configuration file structure.
type Config struct {
	Attribution string `yaml:"attribution,omitempty" json:"attribution,omitempty"`
	Maps        []Map  `yaml:"maps" json:"maps"`
	MaxDepth    int    `yaml:"max_depth,omitempty" json:"-"`
	MaxInput    int    `yaml:"max_input,omitempty" json:"-"`
}

// Map represents a single game map configuration. Its feature source is
// a WKT file with one geometry per line; the server converts it to
// GeoJSON on request.
type Map struct {
	Index *int `yaml:"index,omitempty" json:"index,omitempty"`

	Name        string   `yaml:"name" json:"name"`
	Features    string   `yaml:"features,omitempty" json:"-"` // path to .wkt source
	Attribution string   `yaml:"attribution,omitempty" json:"attribution,omitempty"`
	Aliases     []string `yaml:"aliases,omitempty" json:"-"`
	Size        int      `yaml:"size,omitempty" json:"size"` // map edge in meters
	Split       bool     `yaml:"split,omitempty" json:"-"`   // split collections into features
	Project     bool     `yaml:"project,omitempty" json:"-"` // game grid -> WGS84
}

// Load reads and parses the YAML configuration file from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = wkt.DefaultMaxDepth
	}
	if cfg.MaxInput <= 0 {
		cfg.MaxInput = DefaultMaxInput
	}

	return &cfg, nil
}
