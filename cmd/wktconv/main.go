package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/woozymasta/geowkt/internal/geo"
	"github.com/woozymasta/geowkt/internal/projection"
	"github.com/woozymasta/geowkt/internal/source"
	"github.com/woozymasta/geowkt/wkt"

	"github.com/jessevdk/go-flags"
	"github.com/tdewolff/minify/v2"
	mjson "github.com/tdewolff/minify/v2/json"
	"gopkg.in/yaml.v3"
)

type Options struct {
	Input    string  `short:"i" long:"in" description:"Input WKT file path (one geometry per line). Reads from stdin if empty"`
	Output   string  `short:"o" long:"out" description:"Output file path. Writes to stdout if empty"`
	Format   string  `short:"f" long:"format" description:"Output format" choice:"json" choice:"yaml" default:"json"`
	Size     float64 `short:"s" long:"size" description:"Map size in meters; projects game coordinates to WGS84 when set"`
	MaxDepth int     `short:"d" long:"max-depth" description:"Geometry nesting depth limit" default:"64"`
	Split    bool    `long:"split" description:"Emit one feature per geometry collection member"`
	Minify   bool    `short:"m" long:"minify" description:"Minify JSON output"`
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

	// Read Input
	var geoms []wkt.Geometry
	var err error

	if opts.Input != "" {
		geoms, err = source.Load(opts.Input, opts.MaxDepth)
	} else {
		geoms, err = source.Parse(os.Stdin, opts.MaxDepth)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}

	var hook projection.Hook
	if opts.Size > 0 {
		hook = projection.Game(opts.Size)
	}

	fc := geo.FeatureCollection{
		Type:     "FeatureCollection",
		Features: make([]geo.Feature, 0, len(geoms)),
	}
	for i, g := range geoms {
		g = hook.Transform(g, false)
		props := map[string]interface{}{"index": i}
		fc.Features = append(fc.Features, geo.Features(g, opts.Split, props)...)
	}

	// marshal
	var outputData []byte
	if opts.Format == "yaml" {
		outputData, err = yaml.Marshal(fc)
	} else if opts.Minify {
		outputData, err = json.Marshal(fc)
		if err == nil {
			m := minify.New()
			m.AddFunc("application/json", mjson.Minify)
			outputData, err = m.Bytes("application/json", outputData)
		}
	} else {
		outputData, err = json.MarshalIndent(fc, "", "  ")
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling data: %v\n", err)
		os.Exit(1)
	}

	if opts.Output != "" {
		err = os.WriteFile(opts.Output, outputData, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Converted %d geometries to %s (format: %s)\n", len(geoms), opts.Output, opts.Format)
	} else {
		if _, err := io.WriteString(os.Stdout, string(outputData)+"\n"); err != nil {
			os.Exit(1)
		}
	}
}
