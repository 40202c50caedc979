package raster

import (
	"math"
	"sort"

	"github.com/gogpu/ink"
)

// Rasterizer scan-converts transformed paths into filled spans on a
// destination pixmap. It holds no reference to any pixmap between
// calls; the destination is borrowed for the duration of one FillPath
// or StrokePath and written with exclusive access assumed.
//
// The clip rectangle bounds every span the rasterizer writes, on top of
// the destination's own bounds. Fill and stroke calls never fail:
// degenerate input draws nothing.
type Rasterizer struct {
	width   int
	height  int
	clip    ink.Rect
	aaLevel int
}

// New creates a rasterizer for a width x height destination, clipped to
// clip.
func New(width, height int, clip ink.Rect) *Rasterizer {
	return &Rasterizer{
		width:   width,
		height:  height,
		clip:    clip,
		aaLevel: 8,
	}
}

// SetAALevel sets the supersampling level, clamped to [1, 8]. The level
// is carried as state for callers that supersample around the
// rasterizer; scan conversion itself stays single-sample.
func (r *Rasterizer) SetAALevel(level int) {
	r.aaLevel = min(max(level, 1), 8)
}

// AALevel returns the configured supersampling level.
func (r *Rasterizer) AALevel() int { return r.aaLevel }

// SetClip replaces the clip rectangle.
func (r *Rasterizer) SetClip(clip ink.Rect) { r.clip = clip }

// Clip returns the clip rectangle.
func (r *Rasterizer) Clip() ink.Rect { return r.clip }

// FillPath fills path, transformed by ctm, into dest. The interior is
// selected by the non-zero winding rule, or by the even-odd rule when
// evenOdd is set. The color components are interpreted in cs and
// converted to dest's colorspace; alpha lands in dest's alpha byte when
// it has one. A path with no scan-crossing edges draws nothing.
func (r *Rasterizer) FillPath(path *ink.Path, evenOdd bool, ctm ink.Matrix, cs *ink.Colorspace, color []float64, alpha float64, dest *ink.Pixmap) {
	edges := buildEdgeList(path.Transform(ctm))
	if len(edges) == 0 {
		ink.Logger().Debug("raster: fill with no edges", "elements", path.Len())
		return
	}

	sort.SliceStable(edges, func(i, j int) bool { return edges[i].y < edges[j].y })

	pixel := convertColor(cs, color, alpha, dest)
	r.scanConvert(edges, evenOdd, pixel, dest)
}

// StrokePath strokes path, transformed by ctm, into dest. The stroke is
// expanded to fill geometry first: each flattened segment becomes a
// quad of LineWidth/2 on either side, and the quads are filled with the
// non-zero rule so overlapping ones merge. Joins and caps are the
// overlap of adjacent quads, not exact join geometry; StrokeState's cap
// and join styles are accepted but do not add geometry here. A nil
// stroke draws nothing.
func (r *Rasterizer) StrokePath(path *ink.Path, stroke *ink.StrokeState, ctm ink.Matrix, cs *ink.Colorspace, color []float64, alpha float64, dest *ink.Pixmap) {
	if stroke == nil {
		ink.Logger().Debug("raster: stroke with nil stroke state", "elements", path.Len())
		return
	}
	expanded := expandStroke(path, stroke, ctm)
	r.FillPath(expanded, false, ink.Identity(), cs, color, alpha, dest)
}

// buildEdgeList flattens a device-space path into scan-conversion
// edges. The pen starts at the origin, so a malformed path that draws
// before any MoveTo draws from (0, 0); Close connects back to the start
// of the current subpath.
func buildEdgeList(path *ink.Path) []edge {
	edges := make([]edge, 0, path.Len())
	var current, subpathStart ink.Point

	addEdge := func(p0, p1 ink.Point) {
		if e, ok := newEdge(p0, p1); ok {
			edges = append(edges, e)
		}
	}
	emitTo := func(p ink.Point) {
		addEdge(current, p)
		current = p
	}

	for _, elem := range path.Elements() {
		switch e := elem.(type) {
		case ink.MoveTo:
			current = e.Point
			subpathStart = e.Point
		case ink.LineTo:
			emitTo(e.Point)
		case ink.QuadTo:
			c1, c2 := quadToCubic(current, e.Control, e.Point)
			flattenCubic(current, c1, c2, e.Point, emitTo)
		case ink.CurveTo:
			flattenCubic(current, e.Control1, e.Control2, e.Point, emitTo)
		case ink.ClosePath:
			addEdge(current, subpathStart)
			current = subpathStart
		case ink.RectTo:
			p0 := ink.Point{X: e.Rect.X0, Y: e.Rect.Y0}
			p1 := ink.Point{X: e.Rect.X1, Y: e.Rect.Y0}
			p2 := ink.Point{X: e.Rect.X1, Y: e.Rect.Y1}
			p3 := ink.Point{X: e.Rect.X0, Y: e.Rect.Y1}
			addEdge(p0, p1)
			addEdge(p1, p2)
			addEdge(p2, p3)
			addEdge(p3, p0)
			current = p2
			subpathStart = p0
		}
	}
	return edges
}

// scanConvert walks the edge list one scan line at a time: edges whose
// first line has arrived are activated, spent edges retire, the active
// set is sorted by current x and annotated with the running winding
// count, spans are filled, and every active edge steps to the next
// line. edges must be sorted by starting scan line.
func (r *Rasterizer) scanConvert(edges []edge, evenOdd bool, pixel []byte, dest *ink.Pixmap) {
	minY := edges[0].y
	maxY := 0
	for _, e := range edges {
		if end := e.y + e.height; end > maxY {
			maxY = end
		}
	}
	// Clamp the scan range to the clip in float space, so an infinite
	// clip never converts to int.
	if r.clip.Y0 > float64(minY) {
		minY = int(math.Floor(r.clip.Y0))
	}
	if r.clip.Y1 < float64(maxY) {
		maxY = int(r.clip.Y1)
	}

	active := make([]activeEdge, 0, 16)
	next := 0

	for y := minY; y < maxY; y++ {
		for next < len(edges) && edges[next].y <= y {
			e := edges[next]
			next++
			// The clip can push minY below an edge's first line;
			// advance such an edge so its x matches this line.
			for e.y < y && e.height > 0 {
				e.step()
			}
			if e.height > 0 {
				active = append(active, activeEdge{edge: e})
			}
		}

		live := active[:0]
		for _, ae := range active {
			if ae.edge.height > 0 {
				live = append(live, ae)
			}
		}
		active = live
		if len(active) == 0 {
			continue
		}

		sort.SliceStable(active, func(i, j int) bool {
			return active[i].edge.x < active[j].edge.x
		})

		winding := 0
		for i := range active {
			winding += active[i].edge.direction
			active[i].winding = winding
		}

		r.fillSpans(active, y, evenOdd, pixel, dest)

		for i := range active {
			active[i].edge.step()
		}
	}
}

// fillSpans fills the inside runs of one scan line. A position is
// inside when the winding count accumulated up to the edge on its left
// is non-zero (or odd under the even-odd rule); spans open on an
// outside-to-inside transition and fill on the transition back out.
func (r *Rasterizer) fillSpans(active []activeEdge, y int, evenOdd bool, pixel []byte, dest *ink.Pixmap) {
	if y < 0 || y >= dest.Height() {
		return
	}

	inside := false
	xStart := 0
	for _, ae := range active {
		nowInside := ae.winding != 0
		if evenOdd {
			nowInside = ae.winding%2 != 0
		}
		if nowInside == inside {
			continue
		}
		if nowInside {
			xStart = int(ae.edge.x)
		} else {
			r.fillSpan(xStart, int(ae.edge.x), y, pixel, dest)
		}
		inside = nowInside
	}
}

// fillSpan writes pixel into dest for x in [x0, x1) on scan line y,
// clamped to the clip rectangle and the destination bounds. This clamp
// is the only out-of-bounds guard on the write path.
func (r *Rasterizer) fillSpan(x0, x1, y int, pixel []byte, dest *ink.Pixmap) {
	if r.clip.X0 > float64(x0) {
		x0 = int(r.clip.X0)
	}
	x0 = max(x0, 0)
	if r.clip.X1 < float64(x1) {
		x1 = int(r.clip.X1)
	}
	x1 = min(x1, dest.Width())
	if x0 >= x1 {
		return
	}

	n := dest.N()
	if len(pixel) < n {
		return
	}
	stride := dest.Stride()
	samples := dest.Samples()
	row := y * stride
	for x := x0; x < x1; x++ {
		copy(samples[row+x*n:row+x*n+n], pixel[:n])
	}
}

// expandStroke converts a stroke into equivalent fill geometry in
// device space: the path is transformed and flattened, and every
// segment of length at least 1e-3 contributes one closed quad offset by
// half the line width. Close and RectTo expand the segments they imply.
func expandStroke(path *ink.Path, stroke *ink.StrokeState, ctm ink.Matrix) *ink.Path {
	result := ink.NewPathCapacity(5 * path.Len())
	halfWidth := stroke.LineWidth * 0.5

	var current, subpathStart ink.Point
	segmentTo := func(p ink.Point) {
		expandSegment(current, p, halfWidth, result)
		current = p
	}

	for _, elem := range path.Transform(ctm).Elements() {
		switch e := elem.(type) {
		case ink.MoveTo:
			current = e.Point
			subpathStart = e.Point
		case ink.LineTo:
			segmentTo(e.Point)
		case ink.QuadTo:
			c1, c2 := quadToCubic(current, e.Control, e.Point)
			flattenCubic(current, c1, c2, e.Point, segmentTo)
		case ink.CurveTo:
			flattenCubic(current, e.Control1, e.Control2, e.Point, segmentTo)
		case ink.ClosePath:
			segmentTo(subpathStart)
		case ink.RectTo:
			p0 := ink.Point{X: e.Rect.X0, Y: e.Rect.Y0}
			p1 := ink.Point{X: e.Rect.X1, Y: e.Rect.Y0}
			p2 := ink.Point{X: e.Rect.X1, Y: e.Rect.Y1}
			p3 := ink.Point{X: e.Rect.X0, Y: e.Rect.Y1}
			current = p0
			subpathStart = p0
			segmentTo(p1)
			segmentTo(p2)
			segmentTo(p3)
			segmentTo(p0)
		}
	}
	return result
}

// expandSegment appends the quad p0+n, p0-n, p1-n, p1+n as its own
// closed subpath, where n is the segment's unit perpendicular scaled by
// halfWidth. Segments shorter than 1e-3 are dropped to avoid dividing
// by a vanishing length.
func expandSegment(p0, p1 ink.Point, halfWidth float64, result *ink.Path) {
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	length := math.Hypot(dx, dy)
	if length < 1e-3 {
		return
	}

	nx := -dy / length * halfWidth
	ny := dx / length * halfWidth

	result.MoveTo(p0.X+nx, p0.Y+ny)
	result.LineTo(p0.X-nx, p0.Y-ny)
	result.LineTo(p1.X-nx, p1.Y-ny)
	result.LineTo(p1.X+nx, p1.Y+ny)
	result.Close()
}
