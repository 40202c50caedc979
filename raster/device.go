package raster

import (
	"image"
	"math"

	"golang.org/x/image/draw"

	"github.com/gogpu/ink"
)

// Device is the ink.Device that draws. Path operations feed the
// [Rasterizer]; images blit through their scaled pixmap; clips maintain
// a rectangle stack intersected into every draw. Two simplifications
// are deliberate: clip shapes clamp to their transformed bounding
// rectangle (not their exact outline), and text operations draw nothing
// here, since converting glyphs to outlines belongs to the font layer,
// which feeds the resulting paths back through FillPath.
//
// Mask content is suppressed: draws between BeginMask and EndMask do
// not touch the destination, because mask pixels are not page pixels.
// Groups and tiles are balanced counters only; group alpha and blend
// modes are accepted but not composited. Device calls never fail.
type Device struct {
	dest *ink.Pixmap
	ras  *Rasterizer

	// clips[0] is the destination rectangle and is never popped.
	clips      []ink.Rect
	maskDepth  int
	groupDepth int
	tileDepth  int
}

var _ ink.Device = (*Device)(nil)

// Option configures a Device at construction.
type Option func(*Device)

// WithAALevel sets the rasterizer supersampling level, clamped to
// [1, 8].
func WithAALevel(level int) Option {
	return func(d *Device) { d.ras.SetAALevel(level) }
}

// WithClip intersects an initial clip rectangle into the device.
func WithClip(clip ink.Rect) Option {
	return func(d *Device) { d.clips[0] = d.clips[0].Intersect(clip) }
}

// NewDevice creates a device drawing into dest. Coordinates are
// dest-local: the destination covers (0, 0) to (width, height).
func NewDevice(dest *ink.Pixmap, opts ...Option) *Device {
	bounds := ink.RectWH(0, 0, float64(dest.Width()), float64(dest.Height()))
	d := &Device{
		dest:  dest,
		ras:   New(dest.Width(), dest.Height(), bounds),
		clips: []ink.Rect{bounds},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dest returns the destination pixmap.
func (d *Device) Dest() *ink.Pixmap { return d.dest }

func (d *Device) clip() ink.Rect {
	return d.clips[len(d.clips)-1]
}

func (d *Device) pushClip(r ink.Rect) {
	d.clips = append(d.clips, d.clip().Intersect(r))
}

// suppressed reports whether drawing is currently diverted, i.e. inside
// mask content.
func (d *Device) suppressed() bool { return d.maskDepth > 0 }

func (d *Device) FillPath(path *ink.Path, evenOdd bool, ctm ink.Matrix, cs *ink.Colorspace, color []float64, alpha float64) {
	if d.suppressed() {
		return
	}
	d.ras.SetClip(d.clip())
	d.ras.FillPath(path, evenOdd, ctm, cs, color, alpha, d.dest)
}

func (d *Device) StrokePath(path *ink.Path, stroke *ink.StrokeState, ctm ink.Matrix, cs *ink.Colorspace, color []float64, alpha float64) {
	if d.suppressed() {
		return
	}
	d.ras.SetClip(d.clip())
	d.ras.StrokePath(path, stroke, ctm, cs, color, alpha, d.dest)
}

func (d *Device) ClipPath(path *ink.Path, evenOdd bool, ctm ink.Matrix, scissor ink.Rect) {
	d.pushClip(path.Transform(ctm).Bounds().Intersect(scissor))
}

func (d *Device) ClipStrokePath(path *ink.Path, stroke *ink.StrokeState, ctm ink.Matrix, scissor ink.Rect) {
	bounds := path.Transform(ctm).Bounds()
	if stroke != nil {
		bounds = bounds.Expand(stroke.LineWidth / 2 * ctm.Expansion())
	}
	d.pushClip(bounds.Intersect(scissor))
}

func (d *Device) FillText(text *ink.Text, ctm ink.Matrix, cs *ink.Colorspace, color []float64, alpha float64) {
	ink.Logger().Debug("raster: fill_text draws nothing, outlines come from the font layer",
		"spans", text.Len())
}

func (d *Device) StrokeText(text *ink.Text, stroke *ink.StrokeState, ctm ink.Matrix, cs *ink.Colorspace, color []float64, alpha float64) {
	ink.Logger().Debug("raster: stroke_text draws nothing, outlines come from the font layer",
		"spans", text.Len())
}

func (d *Device) ClipText(text *ink.Text, ctm ink.Matrix, scissor ink.Rect) {
	d.pushClip(text.Bounds(nil, ctm).Intersect(scissor))
}

func (d *Device) ClipStrokeText(text *ink.Text, stroke *ink.StrokeState, ctm ink.Matrix, scissor ink.Rect) {
	d.pushClip(text.Bounds(stroke, ctm).Intersect(scissor))
}

func (d *Device) IgnoreText(text *ink.Text, ctm ink.Matrix) {}

// FillImage blits the image, scaled to the size its CTM implies, into
// the rectangle the CTM maps the unit square to. Rotation and skew
// clamp to that rectangle's bounds. The image's own alpha composites
// over the destination; a non-positive alpha scalar skips the blit
// entirely, values in between do not fade it.
func (d *Device) FillImage(img *ink.Image, ctm ink.Matrix, alpha float64) {
	if d.suppressed() || alpha <= 0 {
		return
	}
	area := ink.UnitRect().Transform(ctm)
	visible := area.Intersect(d.clip())
	if visible.IsEmpty() || img.Width() <= 0 || img.Height() <= 0 {
		return
	}

	// The CTM maps the unit square to the display area, so the sample
	// scale is area size over image pixel size.
	scaled, err := img.ScaledPixmap(ink.Scale(
		area.Width()/float64(img.Width()),
		area.Height()/float64(img.Height()),
	), nil)
	if err != nil {
		ink.Logger().Debug("raster: fill_image skipped", "error", err)
		return
	}

	// Pixmap.Set takes Bounds()-space coordinates, which are offset by
	// the destination origin.
	dstR := image.Rect(
		int(math.Floor(visible.X0)), int(math.Floor(visible.Y0)),
		int(math.Ceil(visible.X1)), int(math.Ceil(visible.Y1)),
	).Add(image.Pt(d.dest.X(), d.dest.Y()))
	sp := scaled.Bounds().Min.Add(image.Pt(
		dstR.Min.X-int(math.Floor(area.X0)),
		dstR.Min.Y-int(math.Floor(area.Y0)),
	))
	draw.Draw(d.dest, dstR, scaled, sp, draw.Over)
}

// FillImageMask fills the mask's transformed bounds with the paint
// color, the rectangle approximation of stenciling through the mask
// bits.
func (d *Device) FillImageMask(img *ink.Image, ctm ink.Matrix, cs *ink.Colorspace, color []float64, alpha float64) {
	if d.suppressed() {
		return
	}
	area := ink.UnitRect().Transform(ctm)
	path := ink.NewPathCapacity(1)
	path.Rect(area)
	d.ras.SetClip(d.clip())
	d.ras.FillPath(path, false, ink.Identity(), cs, color, alpha, d.dest)
}

func (d *Device) ClipImageMask(img *ink.Image, ctm ink.Matrix, scissor ink.Rect) {
	d.pushClip(ink.UnitRect().Transform(ctm).Intersect(scissor))
}

func (d *Device) PopClip() {
	if len(d.clips) > 1 {
		d.clips = d.clips[:len(d.clips)-1]
	}
}

func (d *Device) BeginMask(area ink.Rect, luminosity bool, cs *ink.Colorspace, color []float64) {
	d.maskDepth++
}

func (d *Device) EndMask() {
	if d.maskDepth > 0 {
		d.maskDepth--
	}
}

func (d *Device) BeginGroup(area ink.Rect, cs *ink.Colorspace, isolated, knockout bool, blend ink.BlendMode, alpha float64) {
	d.groupDepth++
}

func (d *Device) EndGroup() {
	if d.groupDepth > 0 {
		d.groupDepth--
	}
}

func (d *Device) BeginTile(area, view ink.Rect, xstep, ystep float64, ctm ink.Matrix) int {
	d.tileDepth++
	return 0
}

func (d *Device) EndTile() {
	if d.tileDepth > 0 {
		d.tileDepth--
	}
}

func (d *Device) Close() {}
