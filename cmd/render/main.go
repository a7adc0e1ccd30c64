package main

import (
	"os"

	"github.com/woozymasta/geowkt/internal/logger"
	"github.com/woozymasta/geowkt/internal/render"
	"github.com/woozymasta/geowkt/internal/source"
	"github.com/woozymasta/geowkt/wkt"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	Input     string `short:"i" long:"in" description:"Input WKT file path (one geometry per line)" required:"true"`
	Output    string `short:"o" long:"out" description:"Output path: a .webp file, or a tile directory with --tiles" default:"preview.webp"`
	Tiles     bool   `short:"t" long:"tiles" description:"Render a z/x/y.webp tile pyramid instead of a single image"`
	ZoomLimit int    `short:"z" long:"zoom-limit" env:"ZOOM_LIMIT" description:"Tile pyramid zoom limit" default:"4"`
	TileSize  int    `long:"tile-size" description:"Tile edge in pixels" default:"256"`
	Pixels    int    `short:"p" long:"pixels" description:"Preview image edge in pixels" default:"1024"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	geoms, err := source.Load(opts.Input, wkt.DefaultMaxDepth)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load WKT input")
	}
	if len(geoms) == 0 {
		log.Fatal().Str("path", opts.Input).Msg("No geometries in input")
	}

	log.Info().
		Int("geometries", len(geoms)).
		Bool("tiles", opts.Tiles).
		Msg("Starting render")

	if opts.Tiles {
		if err := render.Tiles(geoms, opts.Output, opts.ZoomLimit, opts.TileSize); err != nil {
			log.Fatal().Err(err).Msg("Failed to render tiles")
		}
	} else {
		if err := render.Preview(geoms, opts.Output, opts.Pixels); err != nil {
			log.Fatal().Err(err).Msg("Failed to render preview")
		}
	}

	log.Info().Str("out", opts.Output).Msg("Render finished successfully")
}
