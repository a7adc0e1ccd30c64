package server

import (
	"os"
	"sort"

	"github.com/rs/zerolog/log"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/json"
	"github.com/woozymasta/geowkt/internal/config"
)

// ServerContext holds dependencies for request handlers.
type ServerContext struct {
	Config          *config.Config
	MapNameResolver map[string]*config.Map
	Minifier        *minify.M
}

// NewServerContext initializes the context and processes the map
// configuration. It filters out maps with missing feature files and sets
// up the name resolver.
func NewServerContext(cfg *config.Config) *ServerContext {
	log.Info().Int("config_maps_count", len(cfg.Maps)).Msg("Initializing server context")

	validMaps := make([]config.Map, 0, len(cfg.Maps))

	// Normalize and Sort
	for i := range cfg.Maps {
		world := &cfg.Maps[i]

		if world.Attribution == "" {
			world.Attribution = cfg.Attribution
		}

		if world.Features != "" {
			if _, err := os.Stat(world.Features); err != nil {
				log.Warn().
					Str("map", world.Name).
					Str("path", world.Features).
					Msg("Skipping map: features file not found")
				continue
			}
		}

		if world.Project && world.Size <= 0 {
			log.Warn().
				Str("map", world.Name).
				Msg("Projection requested without map size, disabling")
			world.Project = false
		}

		log.Debug().
			Str("map", world.Name).
			Bool("project", world.Project).
			Bool("split", world.Split).
			Msg("Map validated and added to context")

		validMaps = append(validMaps, *world)
	}

	cfg.Maps = validMaps

	sort.Slice(cfg.Maps, func(i, j int) bool {
		idxI, idxJ := 999999, 999999
		if cfg.Maps[i].Index != nil {
			idxI = *cfg.Maps[i].Index
		}
		if cfg.Maps[j].Index != nil {
			idxJ = *cfg.Maps[j].Index
		}
		if idxI != idxJ {
			return idxI < idxJ
		}

		return cfg.Maps[i].Name < cfg.Maps[j].Name
	})

	resolver := make(map[string]*config.Map)
	for i := range cfg.Maps {
		world := &cfg.Maps[i]
		resolver[world.Name] = world
		for _, alias := range world.Aliases {
			resolver[alias] = world
		}
	}

	m := minify.New()
	m.AddFunc("application/json", json.Minify)

	log.Info().
		Int("valid_maps_count", len(cfg.Maps)).
		Msg("Server context initialized successfully")

	return &ServerContext{
		Config:          cfg,
		MapNameResolver: resolver,
		Minifier:        m,
	}
}
