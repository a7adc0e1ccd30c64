package render

import (
	"image/color"
	"testing"

	"github.com/woozymasta/geowkt/wkt"
)

func TestBoundsExtend(t *testing.T) {
	g, err := wkt.Parse("GEOMETRYCOLLECTION(POINT(10 -5),LINESTRING(0 0,100 50),POINT EMPTY)")
	if err != nil {
		t.Fatal(err)
	}

	env := newBounds()
	env.Extend(g)

	if !env.valid() {
		t.Fatal("bounds not valid")
	}
	if env.minX != 0 || env.minY != -5 || env.maxX != 100 || env.maxY != 50 {
		t.Errorf("bounds = %+v", env)
	}
}

func TestCanvasDrawsGeometry(t *testing.T) {
	g, err := wkt.Parse("LINESTRING(0 0,10 10)")
	if err != nil {
		t.Fatal(err)
	}

	img := Canvas([]wkt.Geometry{g}, 64)
	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 64 {
		t.Fatalf("canvas size = %v", img.Bounds())
	}

	painted := 0
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			if img.RGBAAt(x, y) == stroke {
				painted++
			}
		}
	}
	if painted == 0 {
		t.Fatal("no stroke pixels painted")
	}
}

func TestCanvasEmptyInput(t *testing.T) {
	img := Canvas(nil, 32)
	if got := img.RGBAAt(0, 0); got != (color.RGBA{R: 24, G: 26, B: 32, A: 255}) {
		t.Errorf("corner pixel = %v, want background", got)
	}
}
