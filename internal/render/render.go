// Package render rasterizes parsed geometries into WebP preview images
// and map tile pyramids.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"os"
	"path/filepath"
	"sync"

	"github.com/chai2010/webp"
	"github.com/rs/zerolog/log"
	xdraw "golang.org/x/image/draw"

	"github.com/woozymasta/geowkt/wkt"
)

var (
	background = color.RGBA{R: 24, G: 26, B: 32, A: 255}
	stroke     = color.RGBA{R: 102, G: 204, B: 255, A: 255}
)

// bounds is the XY envelope of a set of geometries.
type bounds struct {
	minX, minY, maxX, maxY float64
}

func newBounds() bounds {
	return bounds{
		minX: math.Inf(1), minY: math.Inf(1),
		maxX: math.Inf(-1), maxY: math.Inf(-1),
	}
}

func (b *bounds) extend(c wkt.Coord) {
	if len(c) < 2 || math.IsNaN(c[0]) || math.IsNaN(c[1]) {
		return
	}
	b.minX = math.Min(b.minX, c[0])
	b.minY = math.Min(b.minY, c[1])
	b.maxX = math.Max(b.maxX, c[0])
	b.maxY = math.Max(b.maxY, c[1])
}

func (b *bounds) valid() bool {
	return b.minX <= b.maxX && b.minY <= b.maxY
}

// Extend grows the envelope over every coordinate of g.
func (b *bounds) Extend(g wkt.Geometry) {
	switch v := g.(type) {
	case *wkt.Point:
		if !v.Empty() {
			b.extend(v.Coord())
		}
	case *wkt.LineString:
		for _, c := range v.Coords() {
			b.extend(c)
		}
	case *wkt.Polygon:
		for _, ring := range v.Rings() {
			for _, c := range ring {
				b.extend(c)
			}
		}
	case *wkt.MultiPoint:
		for _, p := range v.Points() {
			b.Extend(p)
		}
	case *wkt.MultiLineString:
		for _, l := range v.Lines() {
			b.Extend(l)
		}
	case *wkt.MultiPolygon:
		for _, p := range v.Polygons() {
			b.Extend(p)
		}
	case *wkt.GeometryCollection:
		for _, member := range v.Geoms() {
			b.Extend(member)
		}
	}
}

// Canvas renders geometries into a square RGBA image of the given pixel
// size. Coordinates are fitted to the canvas with a small margin; the Y
// axis points up.
func Canvas(geoms []wkt.Geometry, px int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, px, px))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: background}, image.Point{}, draw.Src)

	env := newBounds()
	for _, g := range geoms {
		env.Extend(g)
	}
	if !env.valid() {
		return img
	}

	span := math.Max(env.maxX-env.minX, env.maxY-env.minY)
	if span == 0 {
		span = 1
	}
	margin := float64(px) * 0.05
	scale := (float64(px) - 2*margin) / span

	project := func(c wkt.Coord) (int, int) {
		x := margin + (c[0]-env.minX)*scale
		y := float64(px) - margin - (c[1]-env.minY)*scale
		return int(math.Round(x)), int(math.Round(y))
	}

	for _, g := range geoms {
		drawGeometry(img, g, project)
	}
	return img
}

func drawGeometry(img *image.RGBA, g wkt.Geometry, project func(wkt.Coord) (int, int)) {
	switch v := g.(type) {
	case *wkt.Point:
		if v.Empty() {
			return
		}
		x, y := project(v.Coord())
		drawDot(img, x, y)
	case *wkt.LineString:
		drawPath(img, v.Coords(), project)
	case *wkt.Polygon:
		for _, ring := range v.Rings() {
			drawPath(img, ring, project)
		}
	case *wkt.MultiPoint:
		for _, p := range v.Points() {
			drawGeometry(img, p, project)
		}
	case *wkt.MultiLineString:
		for _, l := range v.Lines() {
			drawGeometry(img, l, project)
		}
	case *wkt.MultiPolygon:
		for _, p := range v.Polygons() {
			drawGeometry(img, p, project)
		}
	case *wkt.GeometryCollection:
		for _, member := range v.Geoms() {
			drawGeometry(img, member, project)
		}
	}
}

func drawDot(img *image.RGBA, x, y int) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			img.Set(x+dx, y+dy, stroke)
		}
	}
}

func drawPath(img *image.RGBA, coords []wkt.Coord, project func(wkt.Coord) (int, int)) {
	for i := 1; i < len(coords); i++ {
		x0, y0 := project(coords[i-1])
		x1, y1 := project(coords[i])
		drawLine(img, x0, y0, x1, y1)
	}
}

// drawLine rasterizes a segment with the integer Bresenham walk.
func drawLine(img *image.RGBA, x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		img.Set(x0, y0, stroke)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Preview renders geometries to a single WebP file.
func Preview(geoms []wkt.Geometry, path string, px int) error {
	img := Canvas(geoms, px)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	return webp.Encode(f, img, &webp.Options{Lossless: false, Quality: 85})
}

// Tiles renders geometries once at full resolution and slices a WebP
// tile pyramid (z/x/y.webp) under baseDir, one zoom level at a time.
func Tiles(geoms []wkt.Geometry, baseDir string, zoomLimit, tileSize int) error {
	if tileSize <= 0 {
		tileSize = 256
	}

	maxGrid := 1 << zoomLimit
	srcImg := Canvas(geoms, maxGrid*tileSize)

	log.Info().
		Int("px", maxGrid*tileSize).
		Int("zoom_limit", zoomLimit).
		Msg("Source canvas rendered, starting tiling")

	for z := 0; z <= zoomLimit; z++ {
		gridSize := 1 << z
		totalPixels := gridSize * tileSize

		log.Debug().
			Int("zoom", z).
			Int("grid", gridSize).
			Int("px", totalPixels).
			Msg("Processing zoom level")

		// Downscale from the full-resolution canvas every time so
		// quality is preserved across levels.
		dstImg := image.NewRGBA(image.Rect(0, 0, totalPixels, totalPixels))
		xdraw.CatmullRom.Scale(dstImg, dstImg.Bounds(), srcImg, srcImg.Bounds(), draw.Over, nil)

		var wg sync.WaitGroup
		// Simple semaphore to limit file I/O concurrency
		sem := make(chan struct{}, 20)

		for x := 0; x < gridSize; x++ {
			for y := 0; y < gridSize; y++ {
				wg.Add(1)
				sem <- struct{}{}

				go func(zx, zy int) {
					defer wg.Done()
					defer func() { <-sem }()

					rect := image.Rect(zx*tileSize, zy*tileSize, (zx+1)*tileSize, (zy+1)*tileSize)
					subImg := dstImg.SubImage(rect)

					outPath := filepath.Join(
						baseDir,
						fmt.Sprintf("%d", z),
						fmt.Sprintf("%d", zx),
						fmt.Sprintf("%d", zy)+".webp",
					)

					if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
						log.Error().Err(err).Msg("Failed to create dir")
						return
					}

					f, err := os.Create(outPath)
					if err != nil {
						log.Error().Err(err).Msg("Failed to create file")
						return
					}
					defer func() { _ = f.Close() }()

					if err := webp.Encode(f, subImg, &webp.Options{Lossless: false, Quality: 85}); err != nil {
						log.Error().Err(err).Msg("Failed to encode webp")
					}
				}(x, y)
			}
		}
		wg.Wait()
	}

	return nil
}
