package ink

import (
	"fmt"
	"math"
)

// Point represents a point in 2D space.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the point p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns the point p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul returns the point scaled by s.
func (p Point) Mul(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Transform returns the point mapped through m.
func (p Point) Transform(m Matrix) Point {
	return m.TransformPoint(p)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Matrix is a 2x3 affine transformation in the page-description
// convention:
//
//	x' = a*x + c*y + e
//	y' = b*x + d*y + f
//
// The zero value is NOT the identity; use [Identity].
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// Translate returns a translation by (tx, ty).
func Translate(tx, ty float64) Matrix {
	return Matrix{A: 1, D: 1, E: tx, F: ty}
}

// Scale returns a scale by (sx, sy) about the origin.
func Scale(sx, sy float64) Matrix {
	return Matrix{A: sx, D: sy}
}

// Rotate returns a rotation by the given angle in degrees.
// Positive angles rotate from the +X axis toward the +Y axis.
func Rotate(degrees float64) Matrix {
	rad := degrees * math.Pi / 180
	s, c := math.Sincos(rad)
	return Matrix{A: c, B: s, C: -s, D: c}
}

// Concat returns the composition that applies m first, then n.
// This is the order display-list replay uses: a command recorded with
// local transform m replayed under n runs with m.Concat(n).
func (m Matrix) Concat(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.B*n.C,
		B: m.A*n.B + m.B*n.D,
		C: m.C*n.A + m.D*n.C,
		D: m.C*n.B + m.D*n.D,
		E: m.E*n.A + m.F*n.C + n.E,
		F: m.E*n.B + m.F*n.D + n.F,
	}
}

// TransformPoint maps p through m.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: p.X*m.A + p.Y*m.C + m.E,
		Y: p.X*m.B + p.Y*m.D + m.F,
	}
}

// Expansion returns the average scale factor of the matrix, the square
// root of the absolute determinant. Used to scale stroke widths when
// estimating the bounds of stroked geometry.
func (m Matrix) Expansion() float64 {
	return math.Sqrt(math.Abs(m.A*m.D - m.B*m.C))
}

// IsIdentity reports whether m is exactly the identity transform.
func (m Matrix) IsIdentity() bool {
	return m == Matrix{A: 1, D: 1}
}

func (m Matrix) String() string {
	return fmt.Sprintf("[%g %g %g %g %g %g]", m.A, m.B, m.C, m.D, m.E, m.F)
}

// Rect is an axis-aligned rectangle with x0 <= x1 and y0 <= y1 by
// convention. A rectangle with x0 > x1 or y0 > y1 has no area; the
// canonical no-area value is [EmptyRect], whose coordinates are chosen
// so that Union works without special cases.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// NewRect returns the rectangle with the given corners.
func NewRect(x0, y0, x1, y1 float64) Rect {
	return Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// RectWH returns the rectangle at (x, y) with the given width and height.
func RectWH(x, y, w, h float64) Rect {
	return Rect{X0: x, Y0: y, X1: x + w, Y1: y + h}
}

// EmptyRect returns the canonical empty rectangle. Its infinite-inverted
// coordinates make it the identity element of Union: any point or rect
// included into it becomes the result.
func EmptyRect() Rect {
	return Rect{
		X0: math.Inf(1), Y0: math.Inf(1),
		X1: math.Inf(-1), Y1: math.Inf(-1),
	}
}

// InfiniteRect returns the rectangle covering the whole plane.
func InfiniteRect() Rect {
	return Rect{
		X0: math.Inf(-1), Y0: math.Inf(-1),
		X1: math.Inf(1), Y1: math.Inf(1),
	}
}

// UnitRect returns the rectangle from (0,0) to (1,1). Image primitives
// are drawn as this rectangle transformed by their CTM.
func UnitRect() Rect {
	return Rect{X1: 1, Y1: 1}
}

// Width returns x1-x0. Negative for empty rectangles.
func (r Rect) Width() float64 { return r.X1 - r.X0 }

// Height returns y1-y0. Negative for empty rectangles.
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// IsEmpty reports whether the rectangle encloses no area.
func (r Rect) IsEmpty() bool {
	return r.X0 >= r.X1 || r.Y0 >= r.Y1
}

// IsInfinite reports whether the rectangle is the infinite rectangle.
func (r Rect) IsInfinite() bool {
	return math.IsInf(r.X0, -1)
}

// Contains reports whether (x, y) lies inside r. The right and bottom
// boundaries are exclusive, matching pixel coverage semantics.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X0 && x < r.X1 && y >= r.Y0 && y < r.Y1
}

// Union returns the smallest rectangle covering both r and s.
// No empty-rect special case is needed: EmptyRect's coordinates lose
// every min/max comparison.
func (r Rect) Union(s Rect) Rect {
	return Rect{
		X0: math.Min(r.X0, s.X0),
		Y0: math.Min(r.Y0, s.Y0),
		X1: math.Max(r.X1, s.X1),
		Y1: math.Max(r.Y1, s.Y1),
	}
}

// Intersect returns the overlap of r and s. Disjoint rectangles produce
// an inverted (empty) result.
func (r Rect) Intersect(s Rect) Rect {
	return Rect{
		X0: math.Max(r.X0, s.X0),
		Y0: math.Max(r.Y0, s.Y0),
		X1: math.Min(r.X1, s.X1),
		Y1: math.Min(r.Y1, s.Y1),
	}
}

// Intersects reports whether r and s overlap with positive area.
func (r Rect) Intersects(s Rect) bool {
	return r.X0 < s.X1 && r.X1 > s.X0 && r.Y0 < s.Y1 && r.Y1 > s.Y0
}

// IncludePoint returns r grown to cover p.
func (r Rect) IncludePoint(p Point) Rect {
	return Rect{
		X0: math.Min(r.X0, p.X),
		Y0: math.Min(r.Y0, p.Y),
		X1: math.Max(r.X1, p.X),
		Y1: math.Max(r.Y1, p.Y),
	}
}

// Expand returns r grown by amount on all four sides.
func (r Rect) Expand(amount float64) Rect {
	return Rect{
		X0: r.X0 - amount,
		Y0: r.Y0 - amount,
		X1: r.X1 + amount,
		Y1: r.Y1 + amount,
	}
}

// Transform returns the bounding box of r mapped through m. A rotation
// therefore yields the new axis-aligned bounds, not a rotated quad; use
// [Quad.Transform] to keep corners. Empty rectangles pass through
// unchanged.
func (r Rect) Transform(m Matrix) Rect {
	if r.IsEmpty() {
		return r
	}
	out := EmptyRect()
	out = out.IncludePoint(m.TransformPoint(Point{r.X0, r.Y0}))
	out = out.IncludePoint(m.TransformPoint(Point{r.X1, r.Y0}))
	out = out.IncludePoint(m.TransformPoint(Point{r.X0, r.Y1}))
	out = out.IncludePoint(m.TransformPoint(Point{r.X1, r.Y1}))
	return out
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g %g %g %g]", r.X0, r.Y0, r.X1, r.Y1)
}

// IRect is a rectangle on the integer pixel grid.
type IRect struct {
	X0, Y0, X1, Y1 int
}

// IRectFromRect returns the smallest pixel-grid rectangle covering r:
// the min corner is floored, the max corner is ceiled.
func IRectFromRect(r Rect) IRect {
	return IRect{
		X0: int(math.Floor(r.X0)),
		Y0: int(math.Floor(r.Y0)),
		X1: int(math.Ceil(r.X1)),
		Y1: int(math.Ceil(r.Y1)),
	}
}

// Width returns x1-x0.
func (r IRect) Width() int { return r.X1 - r.X0 }

// Height returns y1-y0.
func (r IRect) Height() int { return r.Y1 - r.Y0 }

// IsEmpty reports whether the rectangle encloses no pixels.
func (r IRect) IsEmpty() bool {
	return r.X0 >= r.X1 || r.Y0 >= r.Y1
}

// Intersect returns the overlap of r and s.
func (r IRect) Intersect(s IRect) IRect {
	return IRect{
		X0: max(r.X0, s.X0),
		Y0: max(r.Y0, s.Y0),
		X1: min(r.X1, s.X1),
		Y1: min(r.Y1, s.Y1),
	}
}

// Rect returns r as a float rectangle.
func (r IRect) Rect() Rect {
	return Rect{
		X0: float64(r.X0), Y0: float64(r.Y0),
		X1: float64(r.X1), Y1: float64(r.Y1),
	}
}

// Quad holds the four corners of a transformed rectangle. Unlike
// [Rect.Transform], transforming a Quad keeps the actual corner
// positions instead of collapsing to a bounding box.
type Quad struct {
	UL, UR, LL, LR Point
}

// QuadFromRect returns the corners of r as a quad.
func QuadFromRect(r Rect) Quad {
	return Quad{
		UL: Point{r.X0, r.Y0},
		UR: Point{r.X1, r.Y0},
		LL: Point{r.X0, r.Y1},
		LR: Point{r.X1, r.Y1},
	}
}

// Transform returns the quad with every corner mapped through m.
func (q Quad) Transform(m Matrix) Quad {
	return Quad{
		UL: q.UL.Transform(m),
		UR: q.UR.Transform(m),
		LL: q.LL.Transform(m),
		LR: q.LR.Transform(m),
	}
}

// Bounds returns the axis-aligned bounding box of the quad.
func (q Quad) Bounds() Rect {
	r := EmptyRect()
	r = r.IncludePoint(q.UL)
	r = r.IncludePoint(q.UR)
	r = r.IncludePoint(q.LL)
	r = r.IncludePoint(q.LR)
	return r
}
