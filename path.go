package ink

// PathElement is a single element of a vector path. The concrete types
// are MoveTo, LineTo, QuadTo, CurveTo, ClosePath and RectTo.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath at Point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line from the current point to Point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve to Point with one control point.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CurveTo draws a cubic Bezier curve to Point with two control points.
type CurveTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CurveTo) isPathElement() {}

// ClosePath closes the current subpath with a line back to its start.
type ClosePath struct{}

func (ClosePath) isPathElement() {}

// RectTo adds an axis-aligned rectangle as its own closed subpath. It is
// a shortcut for the most common fill shape; consumers that cannot use
// it directly expand it to MoveTo, three LineTos and a ClosePath.
type RectTo struct {
	Rect Rect
}

func (RectTo) isPathElement() {}

// Path is an ordered sequence of path elements describing one or more
// subpaths. The zero value is an empty path ready for use.
//
// Elements record only points; the pen position is implied. A LineTo,
// QuadTo, CurveTo or ClosePath continues from the previous element's
// endpoint, and before any MoveTo that position is the origin, so a
// malformed sequence draws from (0, 0) rather than failing.
type Path struct {
	elements []PathElement
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{elements: make([]PathElement, 0, 16)}
}

// NewPathCapacity creates an empty path with room for n elements.
func NewPathCapacity(n int) *Path {
	return &Path{elements: make([]PathElement, 0, n)}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.elements = append(p.elements, MoveTo{Point: Pt(x, y)})
}

// LineTo draws a line to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.elements = append(p.elements, LineTo{Point: Pt(x, y)})
}

// QuadTo draws a quadratic Bezier curve to (x, y) with control point
// (cx, cy).
func (p *Path) QuadTo(cx, cy, x, y float64) {
	p.elements = append(p.elements, QuadTo{Control: Pt(cx, cy), Point: Pt(x, y)})
}

// CurveTo draws a cubic Bezier curve to (x, y) with control points
// (c1x, c1y) and (c2x, c2y).
func (p *Path) CurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.elements = append(p.elements, CurveTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    Pt(x, y),
	})
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.elements = append(p.elements, ClosePath{})
}

// Rect adds an axis-aligned rectangle as its own subpath.
func (p *Path) Rect(r Rect) {
	p.elements = append(p.elements, RectTo{Rect: r})
}

// RectCoords adds the rectangle (x0, y0)-(x1, y1) as its own subpath.
func (p *Path) RectCoords(x0, y0, x1, y1 float64) {
	p.Rect(NewRect(x0, y0, x1, y1))
}

// Len returns the number of path elements.
func (p *Path) Len() int {
	return len(p.elements)
}

// IsEmpty reports whether the path has no elements.
func (p *Path) IsEmpty() bool {
	return len(p.elements) == 0
}

// Elements returns the path elements. The slice is owned by the path
// and must not be modified.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Clear removes all elements, keeping the allocated capacity.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
}

// CurrentPoint returns the point the next element would continue from,
// found by scanning backwards over the recorded elements. A ClosePath
// resolves to the start of the subpath it closed. The second result is
// false when no element establishes a point.
func (p *Path) CurrentPoint() (Point, bool) {
	for i := len(p.elements) - 1; i >= 0; i-- {
		switch e := p.elements[i].(type) {
		case MoveTo:
			return e.Point, true
		case LineTo:
			return e.Point, true
		case QuadTo:
			return e.Point, true
		case CurveTo:
			return e.Point, true
		case RectTo:
			return Pt(e.Rect.X1, e.Rect.Y1), true
		case ClosePath:
			return p.subpathStart(i), true
		}
	}
	return Point{}, false
}

// subpathStart returns the starting point of the subpath containing
// element i, or the origin when no MoveTo or RectTo precedes it.
func (p *Path) subpathStart(i int) Point {
	for j := i - 1; j >= 0; j-- {
		switch e := p.elements[j].(type) {
		case MoveTo:
			return e.Point
		case RectTo:
			return Pt(e.Rect.X0, e.Rect.Y0)
		}
	}
	return Point{}
}

// Bounds returns the bounding box of every control point in the path.
// Curve control points count as if they were on the curve, so the box
// can be larger than the exact extent but never smaller. An empty path
// returns the empty rectangle.
func (p *Path) Bounds() Rect {
	bbox := EmptyRect()
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			bbox = bbox.IncludePoint(e.Point)
		case LineTo:
			bbox = bbox.IncludePoint(e.Point)
		case QuadTo:
			bbox = bbox.IncludePoint(e.Control)
			bbox = bbox.IncludePoint(e.Point)
		case CurveTo:
			bbox = bbox.IncludePoint(e.Control1)
			bbox = bbox.IncludePoint(e.Control2)
			bbox = bbox.IncludePoint(e.Point)
		case RectTo:
			bbox = bbox.Union(e.Rect)
		}
	}
	return bbox
}

// Transform returns a new path with m applied to every point. A RectTo
// element stays axis-aligned: its rectangle becomes the bounding box of
// the four transformed corners, so rotating a path with RectTo elements
// loosens them to their bounds.
func (p *Path) Transform(m Matrix) *Path {
	result := NewPathCapacity(len(p.elements))
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			result.elements = append(result.elements, MoveTo{Point: e.Point.Transform(m)})
		case LineTo:
			result.elements = append(result.elements, LineTo{Point: e.Point.Transform(m)})
		case QuadTo:
			result.elements = append(result.elements, QuadTo{
				Control: e.Control.Transform(m),
				Point:   e.Point.Transform(m),
			})
		case CurveTo:
			result.elements = append(result.elements, CurveTo{
				Control1: e.Control1.Transform(m),
				Control2: e.Control2.Transform(m),
				Point:    e.Point.Transform(m),
			})
		case ClosePath:
			result.elements = append(result.elements, ClosePath{})
		case RectTo:
			result.elements = append(result.elements, RectTo{Rect: e.Rect.Transform(m)})
		}
	}
	return result
}

// Clone returns a deep copy of the path.
func (p *Path) Clone() *Path {
	result := &Path{elements: make([]PathElement, len(p.elements))}
	copy(result.elements, p.elements)
	return result
}

// Walk calls fn for each element in order.
func (p *Path) Walk(fn func(PathElement)) {
	for _, elem := range p.elements {
		fn(elem)
	}
}

// IsRectOnly reports whether the path consists entirely of RectTo
// elements. Rect-only paths let consumers take axis-aligned shortcuts.
func (p *Path) IsRectOnly() bool {
	for _, elem := range p.elements {
		if _, ok := elem.(RectTo); !ok {
			return false
		}
	}
	return true
}
