package raster

import (
	"math"

	"github.com/gogpu/ink"
)

// edge is one directed, non-horizontal polyline segment prepared for
// scan conversion: x is the x coordinate on its first scan line, dx the
// x increment per scan line, height the number of scan lines it spans
// and direction +1 for a segment pointing down in device space, -1 for
// one pointing up.
type edge struct {
	x         float64
	y         int
	dx        float64
	height    int
	direction int
}

// newEdge builds the edge between p0 and p1. Horizontal segments, and
// segments whose endpoints floor to the same scan line, contribute no
// winding crossings and are reported as ok == false.
func newEdge(p0, p1 ink.Point) (edge, bool) {
	direction := 1
	switch {
	case p0.Y < p1.Y:
	case p1.Y < p0.Y:
		direction = -1
		p0, p1 = p1, p0
	default:
		return edge{}, false
	}

	y0 := int(math.Floor(p0.Y))
	y1 := int(math.Floor(p1.Y))
	height := y1 - y0
	if height <= 0 {
		return edge{}, false
	}

	dy := p1.Y - p0.Y
	var dx float64
	if math.Abs(dy) > 1e-4 {
		dx = (p1.X - p0.X) / dy
	}

	return edge{
		x:         p0.X,
		y:         y0,
		dx:        dx,
		height:    height,
		direction: direction,
	}, true
}

// step advances the edge to the next scan line.
func (e *edge) step() {
	e.x += e.dx
	e.y++
	e.height--
}

// activeEdge is an edge currently spanning the scan line, annotated
// with the winding count accumulated left to right up to and including
// this edge.
type activeEdge struct {
	edge    edge
	winding int
}
