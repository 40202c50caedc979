package ink

import (
	"fmt"
	"io"
	"strings"
)

// TraceDevice writes one human-readable line per operation, indenting
// inside clip, mask, group and tile scopes. It is a debugging aid and a
// cheap way to diff two command streams in tests.
type TraceDevice struct {
	w      io.Writer
	indent int
}

// NewTraceDevice returns a device tracing to w.
func NewTraceDevice(w io.Writer) *TraceDevice {
	return &TraceDevice{w: w}
}

var _ Device = (*TraceDevice)(nil)

func (d *TraceDevice) logf(format string, args ...any) {
	fmt.Fprintf(d.w, "%s%s\n", strings.Repeat("  ", d.indent), fmt.Sprintf(format, args...))
}

func (d *TraceDevice) dedent() {
	if d.indent > 0 {
		d.indent--
	}
}

// lineWidth tolerates the nil stroke the interface allows through.
func lineWidth(stroke *StrokeState) float64 {
	if stroke == nil {
		return 0
	}
	return stroke.LineWidth
}

func (d *TraceDevice) FillPath(path *Path, evenOdd bool, ctm Matrix, cs *Colorspace, color []float64, alpha float64) {
	d.logf("fill_path even_odd=%v ctm=%v color=%v alpha=%g", evenOdd, ctm, color, alpha)
}

func (d *TraceDevice) StrokePath(path *Path, stroke *StrokeState, ctm Matrix, cs *Colorspace, color []float64, alpha float64) {
	d.logf("stroke_path width=%g ctm=%v color=%v alpha=%g", lineWidth(stroke), ctm, color, alpha)
}

func (d *TraceDevice) ClipPath(path *Path, evenOdd bool, ctm Matrix, scissor Rect) {
	d.logf("clip_path even_odd=%v ctm=%v scissor=%v", evenOdd, ctm, scissor)
	d.indent++
}

func (d *TraceDevice) ClipStrokePath(path *Path, stroke *StrokeState, ctm Matrix, scissor Rect) {
	d.logf("clip_stroke_path ctm=%v scissor=%v", ctm, scissor)
	d.indent++
}

func (d *TraceDevice) FillText(text *Text, ctm Matrix, cs *Colorspace, color []float64, alpha float64) {
	d.logf("fill_text %q ctm=%v color=%v alpha=%g", text.Content(), ctm, color, alpha)
}

func (d *TraceDevice) StrokeText(text *Text, stroke *StrokeState, ctm Matrix, cs *Colorspace, color []float64, alpha float64) {
	d.logf("stroke_text %q width=%g ctm=%v color=%v alpha=%g", text.Content(), lineWidth(stroke), ctm, color, alpha)
}

func (d *TraceDevice) ClipText(text *Text, ctm Matrix, scissor Rect) {
	d.logf("clip_text %q ctm=%v scissor=%v", text.Content(), ctm, scissor)
	d.indent++
}

func (d *TraceDevice) ClipStrokeText(text *Text, stroke *StrokeState, ctm Matrix, scissor Rect) {
	d.logf("clip_stroke_text %q ctm=%v scissor=%v", text.Content(), ctm, scissor)
	d.indent++
}

func (d *TraceDevice) IgnoreText(text *Text, ctm Matrix) {
	d.logf("ignore_text %q ctm=%v", text.Content(), ctm)
}

func (d *TraceDevice) FillImage(img *Image, ctm Matrix, alpha float64) {
	d.logf("fill_image %dx%d ctm=%v alpha=%g", img.Width(), img.Height(), ctm, alpha)
}

func (d *TraceDevice) FillImageMask(img *Image, ctm Matrix, cs *Colorspace, color []float64, alpha float64) {
	d.logf("fill_image_mask %dx%d ctm=%v color=%v alpha=%g", img.Width(), img.Height(), ctm, color, alpha)
}

func (d *TraceDevice) ClipImageMask(img *Image, ctm Matrix, scissor Rect) {
	d.logf("clip_image_mask %dx%d ctm=%v scissor=%v", img.Width(), img.Height(), ctm, scissor)
	d.indent++
}

func (d *TraceDevice) PopClip() {
	d.dedent()
	d.logf("pop_clip")
}

func (d *TraceDevice) BeginMask(area Rect, luminosity bool, cs *Colorspace, color []float64) {
	d.logf("begin_mask area=%v luminosity=%v", area, luminosity)
	d.indent++
}

func (d *TraceDevice) EndMask() {
	d.dedent()
	d.logf("end_mask")
}

func (d *TraceDevice) BeginGroup(area Rect, cs *Colorspace, isolated, knockout bool, blend BlendMode, alpha float64) {
	d.logf("begin_group area=%v isolated=%v knockout=%v blend=%v alpha=%g", area, isolated, knockout, blend, alpha)
	d.indent++
}

func (d *TraceDevice) EndGroup() {
	d.dedent()
	d.logf("end_group")
}

func (d *TraceDevice) BeginTile(area, view Rect, xstep, ystep float64, ctm Matrix) int {
	d.logf("begin_tile area=%v view=%v step=(%g,%g) ctm=%v", area, view, xstep, ystep, ctm)
	d.indent++
	return 0
}

func (d *TraceDevice) EndTile() {
	d.dedent()
	d.logf("end_tile")
}

func (d *TraceDevice) Close() {
	d.logf("close")
}
