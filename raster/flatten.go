package raster

import (
	"math"

	"github.com/gogpu/ink"
)

const (
	// maxFlattenDepth caps curve subdivision. Eight halvings bound a
	// curve at 256 segments regardless of shape, which also bounds the
	// work stack.
	maxFlattenDepth = 8

	// flatness is the maximum perpendicular distance, in device-space
	// pixels, either interior control point may sit from the chord for
	// a curve to be accepted as a straight segment.
	flatness = 0.5
)

// quadToCubic converts a quadratic Bezier into the equivalent cubic
// control points, so one flattener serves both curve kinds.
func quadToCubic(p0, p1, p2 ink.Point) (c1, c2 ink.Point) {
	c1 = ink.Point{
		X: p0.X + (2.0/3.0)*(p1.X-p0.X),
		Y: p0.Y + (2.0/3.0)*(p1.Y-p0.Y),
	}
	c2 = ink.Point{
		X: p2.X + (2.0/3.0)*(p1.X-p2.X),
		Y: p2.Y + (2.0/3.0)*(p1.Y-p2.Y),
	}
	return c1, c2
}

type cubicSegment struct {
	p0, p1, p2, p3 ink.Point
	depth          int
}

// flattenCubic approximates the cubic p0..p3 with straight segments and
// calls emit with each successive endpoint; p0 itself is not emitted,
// so the caller chains emitted points onto its current point. The
// subdivision uses an explicit work stack instead of recursion, keeping
// worst-case native stack use flat for adversarial curves.
func flattenCubic(p0, p1, p2, p3 ink.Point, emit func(ink.Point)) {
	stack := make([]cubicSegment, 0, 2*maxFlattenDepth)
	stack = append(stack, cubicSegment{p0, p1, p2, p3, 0})

	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if c.depth >= maxFlattenDepth || isFlat(c.p0, c.p1, c.p2, c.p3) {
			emit(c.p3)
			continue
		}

		// de Casteljau midpoint split.
		p01 := midpoint(c.p0, c.p1)
		p12 := midpoint(c.p1, c.p2)
		p23 := midpoint(c.p2, c.p3)
		p012 := midpoint(p01, p12)
		p123 := midpoint(p12, p23)
		p0123 := midpoint(p012, p123)

		// Second half pushed first so the first half pops next,
		// keeping emitted points in curve order.
		stack = append(stack, cubicSegment{p0123, p123, p23, c.p3, c.depth + 1})
		stack = append(stack, cubicSegment{c.p0, p01, p012, p0123, c.depth + 1})
	}
}

func midpoint(p, q ink.Point) ink.Point {
	return ink.Point{X: (p.X + q.X) * 0.5, Y: (p.Y + q.Y) * 0.5}
}

// isFlat reports whether both interior control points lie within
// flatness of the chord p0-p3. A degenerate chord (length below 1e-3)
// counts as flat, which terminates curves whose handles have collapsed.
func isFlat(p0, p1, p2, p3 ink.Point) bool {
	dx := p3.X - p0.X
	dy := p3.Y - p0.Y
	d := math.Hypot(dx, dy)
	if d < 1e-3 {
		return true
	}

	d1 := math.Abs((p1.X-p0.X)*dy-(p1.Y-p0.Y)*dx) / d
	d2 := math.Abs((p2.X-p0.X)*dy-(p2.Y-p0.Y)*dx) / d
	return math.Max(d1, d2) < flatness
}
