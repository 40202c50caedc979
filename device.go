package ink

// BlendMode selects how a transparency group composites onto its
// backdrop. The numeric values follow the PDF 1.4 order: the twelve
// separable modes first, then the four non-separable ones.
type BlendMode int

const (
	BlendNormal BlendMode = iota
	BlendMultiply
	BlendScreen
	BlendOverlay
	BlendDarken
	BlendLighten
	BlendColorDodge
	BlendColorBurn
	BlendHardLight
	BlendSoftLight
	BlendDifference
	BlendExclusion
	BlendHue
	BlendSaturation
	BlendColor
	BlendLuminosity
)

var blendModeNames = [...]string{
	"Normal", "Multiply", "Screen", "Overlay",
	"Darken", "Lighten", "ColorDodge", "ColorBurn",
	"HardLight", "SoftLight", "Difference", "Exclusion",
	"Hue", "Saturation", "Color", "Luminosity",
}

// String returns the PDF name of the blend mode.
func (b BlendMode) String() string {
	if b < 0 || int(b) >= len(blendModeNames) {
		return "Normal"
	}
	return blendModeNames[b]
}

// BlendModeFromName parses a PDF blend mode name. Unknown names map to
// BlendNormal.
func BlendModeFromName(name string) BlendMode {
	for i, n := range blendModeNames {
		if n == name {
			return BlendMode(i)
		}
	}
	return BlendNormal
}

// Device receives drawing operations. It is the single abstraction
// every rendering backend implements: a rasterizer draws them, a
// display-list recorder stores them, a bounding-box device measures
// them, a null device discards them.
//
// Every call takes its geometry by pointer without taking ownership;
// callers keep their Path/Text/Image values afterwards, and a device
// that outlives the call (such as a recorder) must clone what it keeps.
// Color is a component vector interpreted in the given colorspace, with
// alpha in [0, 1] separate.
//
// Clip, mask, group and tile operations follow stack discipline: each
// ClipPath, ClipStrokePath, ClipText, ClipStrokeText and ClipImageMask
// pushes one clip level that exactly one later PopClip ends, and
// BeginMask/EndMask, BeginGroup/EndGroup, BeginTile/EndTile are
// balanced pairs. Callers invoke the full interface unconditionally, so
// backends implement unneeded operations as no-ops rather than
// rejecting them.
//
// Device calls do not fail and return nothing, except BeginTile, whose
// integer result is an opaque tile-generation token for caching
// backends (0 from everything else).
type Device interface {
	FillPath(path *Path, evenOdd bool, ctm Matrix, cs *Colorspace, color []float64, alpha float64)
	StrokePath(path *Path, stroke *StrokeState, ctm Matrix, cs *Colorspace, color []float64, alpha float64)
	ClipPath(path *Path, evenOdd bool, ctm Matrix, scissor Rect)
	ClipStrokePath(path *Path, stroke *StrokeState, ctm Matrix, scissor Rect)

	FillText(text *Text, ctm Matrix, cs *Colorspace, color []float64, alpha float64)
	StrokeText(text *Text, stroke *StrokeState, ctm Matrix, cs *Colorspace, color []float64, alpha float64)
	ClipText(text *Text, ctm Matrix, scissor Rect)
	ClipStrokeText(text *Text, stroke *StrokeState, ctm Matrix, scissor Rect)
	IgnoreText(text *Text, ctm Matrix)

	FillImage(img *Image, ctm Matrix, alpha float64)
	FillImageMask(img *Image, ctm Matrix, cs *Colorspace, color []float64, alpha float64)
	ClipImageMask(img *Image, ctm Matrix, scissor Rect)

	PopClip()

	BeginMask(area Rect, luminosity bool, cs *Colorspace, color []float64)
	EndMask()

	// BeginGroup opens a transparency group. cs may be nil for a
	// group without its own blending colorspace.
	BeginGroup(area Rect, cs *Colorspace, isolated, knockout bool, blend BlendMode, alpha float64)
	EndGroup()

	BeginTile(area, view Rect, xstep, ystep float64, ctm Matrix) int
	EndTile()

	// Close flushes any pending work. No further calls may follow.
	Close()
}

// NullDevice discards every operation. Embed it to implement Device
// with only the methods a backend cares about.
type NullDevice struct{}

var _ Device = NullDevice{}

func (NullDevice) FillPath(*Path, bool, Matrix, *Colorspace, []float64, float64)           {}
func (NullDevice) StrokePath(*Path, *StrokeState, Matrix, *Colorspace, []float64, float64) {}
func (NullDevice) ClipPath(*Path, bool, Matrix, Rect)                                      {}
func (NullDevice) ClipStrokePath(*Path, *StrokeState, Matrix, Rect)                        {}
func (NullDevice) FillText(*Text, Matrix, *Colorspace, []float64, float64)                 {}
func (NullDevice) StrokeText(*Text, *StrokeState, Matrix, *Colorspace, []float64, float64) {}
func (NullDevice) ClipText(*Text, Matrix, Rect)                                            {}
func (NullDevice) ClipStrokeText(*Text, *StrokeState, Matrix, Rect)                        {}
func (NullDevice) IgnoreText(*Text, Matrix)                                                {}
func (NullDevice) FillImage(*Image, Matrix, float64)                                       {}
func (NullDevice) FillImageMask(*Image, Matrix, *Colorspace, []float64, float64)           {}
func (NullDevice) ClipImageMask(*Image, Matrix, Rect)                                      {}
func (NullDevice) PopClip()                                                                {}
func (NullDevice) BeginMask(Rect, bool, *Colorspace, []float64)                            {}
func (NullDevice) EndMask()                                                                {}
func (NullDevice) BeginGroup(Rect, *Colorspace, bool, bool, BlendMode, float64)            {}
func (NullDevice) EndGroup()                                                               {}
func (NullDevice) BeginTile(Rect, Rect, float64, float64, Matrix) int                      { return 0 }
func (NullDevice) EndTile()                                                                {}
func (NullDevice) Close()                                                                  {}
