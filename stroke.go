package ink

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat cap at the endpoint.
	LineCapButt LineCap = iota
	// LineCapRound specifies a semicircular cap.
	LineCapRound
	// LineCapSquare specifies a square cap extending past the endpoint.
	LineCapSquare
	// LineCapTriangle specifies a triangular cap.
	LineCapTriangle
)

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
	// LineJoinMiterXPS specifies a miter join with XPS clipping behavior.
	LineJoinMiterXPS
)

// StrokeState describes how a path outline is painted: width, caps,
// join style and dashing. Devices take it by pointer and never modify
// it; use the With helpers or Clone to derive variants.
type StrokeState struct {
	// LineWidth is the stroke width. Default: 1.
	LineWidth float64

	// MiterLimit bounds how far a miter join may extend before it is
	// treated as a bevel. Default: 10.
	MiterLimit float64

	// StartCap, DashCap and EndCap select the cap shapes for subpath
	// starts, dash segment ends and subpath ends. Default: LineCapButt.
	StartCap LineCap
	DashCap  LineCap
	EndCap   LineCap

	// LineJoin selects the join shape. Default: LineJoinMiter.
	LineJoin LineJoin

	// DashPhase is the offset into the dash pattern at the start of
	// the path.
	DashPhase float64

	// DashPattern holds alternating on/off lengths. Empty means solid.
	DashPattern []float64
}

// NewStrokeState returns a stroke state with defaults: width 1, miter
// limit 10, butt caps, miter joins, solid line.
func NewStrokeState() *StrokeState {
	return &StrokeState{
		LineWidth:  1,
		MiterLimit: 10,
	}
}

// IsDashed reports whether the stroke has a dash pattern.
func (s *StrokeState) IsDashed() bool {
	return len(s.DashPattern) > 0
}

// WithLineWidth returns a copy with the line width set.
func (s *StrokeState) WithLineWidth(w float64) *StrokeState {
	c := *s
	c.LineWidth = w
	return &c
}

// WithMiterLimit returns a copy with the miter limit set.
func (s *StrokeState) WithMiterLimit(limit float64) *StrokeState {
	c := *s
	c.MiterLimit = limit
	return &c
}

// WithCaps returns a copy with the start, dash and end caps all set to
// cap.
func (s *StrokeState) WithCaps(cap LineCap) *StrokeState {
	c := *s
	c.StartCap = cap
	c.DashCap = cap
	c.EndCap = cap
	return &c
}

// WithLineJoin returns a copy with the join style set.
func (s *StrokeState) WithLineJoin(join LineJoin) *StrokeState {
	c := *s
	c.LineJoin = join
	return &c
}

// WithDash returns a copy with the dash phase and pattern set. An empty
// pattern removes dashing.
func (s *StrokeState) WithDash(phase float64, pattern ...float64) *StrokeState {
	c := *s
	c.DashPhase = phase
	c.DashPattern = append([]float64(nil), pattern...)
	return &c
}

// Clone returns a deep copy of the stroke state, or nil for a nil
// receiver.
func (s *StrokeState) Clone() *StrokeState {
	if s == nil {
		return nil
	}
	c := *s
	if s.DashPattern != nil {
		c.DashPattern = append([]float64(nil), s.DashPattern...)
	}
	return &c
}
