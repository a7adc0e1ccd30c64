// Package source loads WKT feature files: one geometry per line, with
// blank lines and lines starting with '#' skipped.
package source

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/woozymasta/geowkt/wkt"
)

// Load reads the WKT file at path.
func Load(path string, maxDepth int) ([]wkt.Geometry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	return Parse(f, maxDepth)
}

// Parse reads geometries from r. Parse failures are wrapped with the
// line number; the underlying wkt error stays available for errors.As.
func Parse(r io.Reader, maxDepth int) ([]wkt.Geometry, error) {
	var geoms []wkt.Geometry

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		g, err := wkt.ParseWithLimit(text, maxDepth)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		geoms = append(geoms, g)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return geoms, nil
}
