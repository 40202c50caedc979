package raster

import (
	"bytes"
	"testing"

	"github.com/gogpu/ink"
)

var (
	black = []float64{0, 0, 0}
	white = []float64{1}
)

func newRGBPixmap(t *testing.T, w, h int) *ink.Pixmap {
	t.Helper()
	pm, err := ink.NewPixmap(0, 0, w, h, ink.DeviceRGB(), false)
	if err != nil {
		t.Fatalf("NewPixmap(%d, %d) failed: %v", w, h, err)
	}
	return pm
}

func newGrayPixmap(t *testing.T, w, h int) *ink.Pixmap {
	t.Helper()
	pm, err := ink.NewPixmap(0, 0, w, h, ink.DeviceGray(), false)
	if err != nil {
		t.Fatalf("NewPixmap(%d, %d) failed: %v", w, h, err)
	}
	return pm
}

func squarePath(x0, y0, x1, y1 float64) *ink.Path {
	p := ink.NewPath()
	p.MoveTo(x0, y0)
	p.LineTo(x1, y0)
	p.LineTo(x1, y1)
	p.LineTo(x0, y1)
	p.Close()
	return p
}

func TestFillSquareCoversEveryPixel(t *testing.T) {
	pm := newRGBPixmap(t, 10, 10)
	pm.Clear(255)

	r := New(10, 10, ink.NewRect(0, 0, 10, 10))
	r.FillPath(squarePath(0, 0, 10, 10), false, ink.Identity(), ink.DeviceRGB(), black, 1, pm)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			px := pm.Pixel(x, y)
			if px[0] != 0 || px[1] != 0 || px[2] != 0 {
				t.Fatalf("pixel (%d, %d) = %v, want (0, 0, 0)", x, y, px)
			}
		}
	}
}

func TestFillClippedToLeftHalf(t *testing.T) {
	pm := newRGBPixmap(t, 10, 10)
	pm.Clear(255)

	r := New(10, 10, ink.NewRect(0, 0, 5, 10))
	r.FillPath(squarePath(0, 0, 10, 10), false, ink.Identity(), ink.DeviceRGB(), black, 1, pm)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			px := pm.Pixel(x, y)
			if x < 5 {
				if px[0] != 0 {
					t.Fatalf("pixel (%d, %d) = %v, want filled", x, y, px)
				}
			} else {
				if px[0] != 255 {
					t.Fatalf("pixel (%d, %d) = %v, want untouched 255", x, y, px)
				}
			}
		}
	}
}

func TestFillEmptyPathLeavesDestUnchanged(t *testing.T) {
	pm := newRGBPixmap(t, 8, 8)
	pm.Clear(42)
	before := append([]byte(nil), pm.Samples()...)

	r := New(8, 8, ink.NewRect(0, 0, 8, 8))
	r.FillPath(ink.NewPath(), false, ink.Identity(), ink.DeviceRGB(), black, 1, pm)

	if !bytes.Equal(pm.Samples(), before) {
		t.Error("filling an empty path modified the destination")
	}
}

func TestFillMoveOnlyPathDrawsNothing(t *testing.T) {
	pm := newRGBPixmap(t, 8, 8)
	before := append([]byte(nil), pm.Samples()...)

	path := ink.NewPath()
	path.MoveTo(3, 3)

	r := New(8, 8, ink.NewRect(0, 0, 8, 8))
	r.FillPath(path, false, ink.Identity(), ink.DeviceRGB(), black, 1, pm)

	if !bytes.Equal(pm.Samples(), before) {
		t.Error("a MoveTo-only path modified the destination")
	}
}

// Two overlapping rectangles wound the same way: the non-zero rule
// fills the union, the even-odd rule carves out the winding-2 overlap.
func TestFillRules(t *testing.T) {
	overlapping := func() *ink.Path {
		p := ink.NewPath()
		p.MoveTo(1, 1)
		p.LineTo(6, 1)
		p.LineTo(6, 9)
		p.LineTo(1, 9)
		p.Close()
		p.MoveTo(4, 1)
		p.LineTo(9, 1)
		p.LineTo(9, 9)
		p.LineTo(4, 9)
		p.Close()
		return p
	}

	tests := []struct {
		name        string
		evenOdd     bool
		overlapDark bool
	}{
		{"NonZeroFillsOverlap", false, true},
		{"EvenOddLeavesOverlapEmpty", true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pm := newGrayPixmap(t, 10, 10)
			pm.Clear(255)

			r := New(10, 10, ink.NewRect(0, 0, 10, 10))
			r.FillPath(overlapping(), tt.evenOdd, ink.Identity(), ink.DeviceGray(), []float64{0}, 1, pm)

			// Inside exactly one rectangle: always filled.
			if got := pm.Pixel(2, 5)[0]; got != 0 {
				t.Errorf("pixel (2, 5) = %d, want 0 (left rect)", got)
			}
			if got := pm.Pixel(7, 5)[0]; got != 0 {
				t.Errorf("pixel (7, 5) = %d, want 0 (right rect)", got)
			}
			// Inside both.
			got := pm.Pixel(5, 5)[0]
			if tt.overlapDark && got != 0 {
				t.Errorf("overlap pixel (5, 5) = %d, want 0", got)
			}
			if !tt.overlapDark && got != 255 {
				t.Errorf("overlap pixel (5, 5) = %d, want 255", got)
			}
			// Outside both.
			if got := pm.Pixel(0, 0)[0]; got != 255 {
				t.Errorf("pixel (0, 0) = %d, want 255", got)
			}
		})
	}
}

func TestFillRectElement(t *testing.T) {
	pm := newGrayPixmap(t, 10, 10)
	pm.Clear(255)

	path := ink.NewPath()
	path.RectCoords(2, 3, 7, 8)

	r := New(10, 10, ink.NewRect(0, 0, 10, 10))
	r.FillPath(path, false, ink.Identity(), ink.DeviceGray(), []float64{0}, 1, pm)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			want := byte(255)
			if x >= 2 && x < 7 && y >= 3 && y < 8 {
				want = 0
			}
			if got := pm.Pixel(x, y)[0]; got != want {
				t.Fatalf("pixel (%d, %d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestFillAppliesCTM(t *testing.T) {
	pm := newGrayPixmap(t, 10, 10)
	pm.Clear(255)

	// The unit square scaled by 10 covers the whole buffer.
	r := New(10, 10, ink.NewRect(0, 0, 10, 10))
	r.FillPath(squarePath(0, 0, 1, 1), false, ink.Scale(10, 10), ink.DeviceGray(), []float64{0}, 1, pm)

	if got := pm.Pixel(9, 9)[0]; got != 0 {
		t.Errorf("pixel (9, 9) = %d, want 0 after Scale(10, 10)", got)
	}
}

func TestFillOversizedPathStaysInBounds(t *testing.T) {
	pm := newGrayPixmap(t, 4, 4)

	// Must not panic or write outside the 4x4 buffer.
	r := New(4, 4, ink.NewRect(0, 0, 4, 4))
	r.FillPath(squarePath(-100, -100, 100, 100), false, ink.Identity(), ink.DeviceGray(), white, 1, pm)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := pm.Pixel(x, y)[0]; got != 255 {
				t.Fatalf("pixel (%d, %d) = %d, want 255", x, y, got)
			}
		}
	}
}

func TestFillInfiniteClip(t *testing.T) {
	pm := newGrayPixmap(t, 6, 6)

	r := New(6, 6, ink.InfiniteRect())
	r.FillPath(squarePath(0, 0, 6, 6), false, ink.Identity(), ink.DeviceGray(), white, 1, pm)

	if got := pm.Pixel(5, 5)[0]; got != 255 {
		t.Errorf("pixel (5, 5) = %d, want 255 under infinite clip", got)
	}
}

func TestFillWritesAlphaByte(t *testing.T) {
	pm, err := ink.NewPixmap(0, 0, 4, 4, ink.DeviceRGB(), true)
	if err != nil {
		t.Fatalf("NewPixmap failed: %v", err)
	}

	r := New(4, 4, ink.NewRect(0, 0, 4, 4))
	r.FillPath(squarePath(0, 0, 4, 4), false, ink.Identity(), ink.DeviceRGB(), []float64{1, 0, 0}, 0.5, pm)

	px := pm.Pixel(2, 2)
	if px[0] != 255 || px[1] != 0 || px[2] != 0 {
		t.Errorf("pixel (2, 2) color = %v, want (255, 0, 0, _)", px)
	}
	if px[3] != 127 {
		t.Errorf("pixel (2, 2) alpha = %d, want 127", px[3])
	}
}

func TestFillCurvedPath(t *testing.T) {
	pm := newGrayPixmap(t, 10, 10)
	pm.Clear(255)

	// Circle of radius 4 around (5, 5) from four cubics.
	const k = 0.5523 * 4
	path := ink.NewPath()
	path.MoveTo(9, 5)
	path.CurveTo(9, 5+k, 5+k, 9, 5, 9)
	path.CurveTo(5-k, 9, 1, 5+k, 1, 5)
	path.CurveTo(1, 5-k, 5-k, 1, 5, 1)
	path.CurveTo(5+k, 1, 9, 5-k, 9, 5)
	path.Close()

	r := New(10, 10, ink.NewRect(0, 0, 10, 10))
	r.FillPath(path, false, ink.Identity(), ink.DeviceGray(), []float64{0}, 1, pm)

	if got := pm.Pixel(5, 5)[0]; got != 0 {
		t.Errorf("center pixel = %d, want 0", got)
	}
	if got := pm.Pixel(0, 0)[0]; got != 255 {
		t.Errorf("corner (0, 0) = %d, want 255 outside the circle", got)
	}
	if got := pm.Pixel(9, 9)[0]; got != 255 {
		t.Errorf("corner (9, 9) = %d, want 255 outside the circle", got)
	}
}

// A single stroked segment of length L and width W must cover exactly
// the L x W rectangle centered on it.
func TestStrokeCoversSegmentRectangle(t *testing.T) {
	pm := newGrayPixmap(t, 10, 10)

	path := ink.NewPath()
	path.MoveTo(2, 5)
	path.LineTo(8, 5)

	r := New(10, 10, ink.NewRect(0, 0, 10, 10))
	stroke := ink.NewStrokeState().WithLineWidth(4)
	r.StrokePath(path, stroke, ink.Identity(), ink.DeviceGray(), white, 1, pm)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			want := byte(0)
			if x >= 2 && x < 8 && y >= 3 && y < 7 {
				want = 255
			}
			if got := pm.Pixel(x, y)[0]; got != want {
				t.Fatalf("pixel (%d, %d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestStrokeZeroLengthSegmentDrawsNothing(t *testing.T) {
	pm := newGrayPixmap(t, 8, 8)
	before := append([]byte(nil), pm.Samples()...)

	path := ink.NewPath()
	path.MoveTo(4, 4)
	path.LineTo(4, 4)

	r := New(8, 8, ink.NewRect(0, 0, 8, 8))
	r.StrokePath(path, ink.NewStrokeState().WithLineWidth(2), ink.Identity(), ink.DeviceGray(), white, 1, pm)

	if !bytes.Equal(pm.Samples(), before) {
		t.Error("zero-length stroke segment modified the destination")
	}
}

func TestStrokeNilStrokeStateDrawsNothing(t *testing.T) {
	pm := newGrayPixmap(t, 8, 8)
	before := append([]byte(nil), pm.Samples()...)

	path := ink.NewPath()
	path.MoveTo(1, 4)
	path.LineTo(7, 4)

	r := New(8, 8, ink.NewRect(0, 0, 8, 8))
	r.StrokePath(path, nil, ink.Identity(), ink.DeviceGray(), white, 1, pm)

	if !bytes.Equal(pm.Samples(), before) {
		t.Error("nil stroke state modified the destination")
	}
}

// Overlapping expanded quads of a bent polyline must merge under the
// non-zero rule instead of cancelling at the corner.
func TestStrokeCornerQuadsMerge(t *testing.T) {
	pm := newGrayPixmap(t, 12, 12)

	path := ink.NewPath()
	path.MoveTo(2, 9)
	path.LineTo(9, 9)
	path.LineTo(9, 2)

	r := New(12, 12, ink.NewRect(0, 0, 12, 12))
	r.StrokePath(path, ink.NewStrokeState().WithLineWidth(3), ink.Identity(), ink.DeviceGray(), white, 1, pm)

	// The corner pixel sits inside both expanded quads; same-direction
	// winding must keep it filled.
	if got := pm.Pixel(8, 8)[0]; got != 255 {
		t.Errorf("corner pixel (8, 8) = %d, want 255", got)
	}
	if got := pm.Pixel(4, 9)[0]; got != 255 {
		t.Errorf("horizontal leg pixel (4, 9) = %d, want 255", got)
	}
	if got := pm.Pixel(9, 4)[0]; got != 255 {
		t.Errorf("vertical leg pixel (9, 4) = %d, want 255", got)
	}
	if got := pm.Pixel(2, 2)[0]; got != 0 {
		t.Errorf("pixel (2, 2) = %d, want 0 away from the stroke", got)
	}
}

func TestSetAALevelClamps(t *testing.T) {
	r := New(10, 10, ink.NewRect(0, 0, 10, 10))
	if got := r.AALevel(); got != 8 {
		t.Errorf("default AALevel() = %d, want 8", got)
	}
	r.SetAALevel(0)
	if got := r.AALevel(); got != 1 {
		t.Errorf("AALevel() after SetAALevel(0) = %d, want 1", got)
	}
	r.SetAALevel(99)
	if got := r.AALevel(); got != 8 {
		t.Errorf("AALevel() after SetAALevel(99) = %d, want 8", got)
	}
}

func TestSetClip(t *testing.T) {
	r := New(10, 10, ink.NewRect(0, 0, 10, 10))
	clip := ink.NewRect(1, 2, 3, 4)
	r.SetClip(clip)
	if got := r.Clip(); got != clip {
		t.Errorf("Clip() = %v, want %v", got, clip)
	}
}

func TestEdgeConstruction(t *testing.T) {
	e, ok := newEdge(ink.Pt(0, 0), ink.Pt(10, 10))
	if !ok {
		t.Fatal("newEdge returned ok = false for a diagonal segment")
	}
	if e.y != 0 || e.height != 10 || e.direction != 1 {
		t.Errorf("edge = %+v, want y=0 height=10 direction=1", e)
	}

	if _, ok := newEdge(ink.Pt(0, 5), ink.Pt(10, 5)); ok {
		t.Error("newEdge accepted a horizontal segment")
	}

	up, ok := newEdge(ink.Pt(0, 10), ink.Pt(0, 0))
	if !ok {
		t.Fatal("newEdge returned ok = false for an upward segment")
	}
	if up.direction != -1 {
		t.Errorf("upward edge direction = %d, want -1", up.direction)
	}
}

func TestEdgeStep(t *testing.T) {
	e, _ := newEdge(ink.Pt(0, 0), ink.Pt(10, 10))
	x0 := e.x
	e.step()
	if e.y != 1 || e.height != 9 {
		t.Errorf("after step: y=%d height=%d, want y=1 height=9", e.y, e.height)
	}
	if e.x <= x0 {
		t.Errorf("after step: x = %g, want > %g", e.x, x0)
	}
}
