package displaylist

import "github.com/gogpu/ink"

// Device records every operation it receives into a List. It clones
// paths, texts, stroke states and color slices at call time, so the
// caller is free to reuse or mutate its values afterwards; image and
// colorspace handles are captured as-is.
type Device struct {
	list *List
}

// NewDevice returns a recorder appending to list.
func NewDevice(list *List) *Device {
	return &Device{list: list}
}

// List returns the list being recorded into.
func (d *Device) List() *List {
	return d.list
}

var _ ink.Device = (*Device)(nil)

func (d *Device) record(cmd Command) {
	d.list.commands = append(d.list.commands, cmd)
}

func cloneColor(color []float64) []float64 {
	if color == nil {
		return nil
	}
	return append([]float64(nil), color...)
}

func (d *Device) FillPath(path *ink.Path, evenOdd bool, ctm ink.Matrix, cs *ink.Colorspace, color []float64, alpha float64) {
	d.record(FillPath{
		Path:       path.Clone(),
		EvenOdd:    evenOdd,
		CTM:        ctm,
		Colorspace: cs,
		Color:      cloneColor(color),
		Alpha:      alpha,
	})
}

func (d *Device) StrokePath(path *ink.Path, stroke *ink.StrokeState, ctm ink.Matrix, cs *ink.Colorspace, color []float64, alpha float64) {
	d.record(StrokePath{
		Path:       path.Clone(),
		Stroke:     stroke.Clone(),
		CTM:        ctm,
		Colorspace: cs,
		Color:      cloneColor(color),
		Alpha:      alpha,
	})
}

func (d *Device) ClipPath(path *ink.Path, evenOdd bool, ctm ink.Matrix, scissor ink.Rect) {
	d.record(ClipPath{
		Path:    path.Clone(),
		EvenOdd: evenOdd,
		CTM:     ctm,
		Scissor: scissor,
	})
}

func (d *Device) ClipStrokePath(path *ink.Path, stroke *ink.StrokeState, ctm ink.Matrix, scissor ink.Rect) {
	d.record(ClipStrokePath{
		Path:    path.Clone(),
		Stroke:  stroke.Clone(),
		CTM:     ctm,
		Scissor: scissor,
	})
}

func (d *Device) FillText(text *ink.Text, ctm ink.Matrix, cs *ink.Colorspace, color []float64, alpha float64) {
	d.record(FillText{
		Text:       text.Clone(),
		CTM:        ctm,
		Colorspace: cs,
		Color:      cloneColor(color),
		Alpha:      alpha,
	})
}

func (d *Device) StrokeText(text *ink.Text, stroke *ink.StrokeState, ctm ink.Matrix, cs *ink.Colorspace, color []float64, alpha float64) {
	d.record(StrokeText{
		Text:       text.Clone(),
		Stroke:     stroke.Clone(),
		CTM:        ctm,
		Colorspace: cs,
		Color:      cloneColor(color),
		Alpha:      alpha,
	})
}

func (d *Device) ClipText(text *ink.Text, ctm ink.Matrix, scissor ink.Rect) {
	d.record(ClipText{
		Text:    text.Clone(),
		CTM:     ctm,
		Scissor: scissor,
	})
}

func (d *Device) ClipStrokeText(text *ink.Text, stroke *ink.StrokeState, ctm ink.Matrix, scissor ink.Rect) {
	d.record(ClipStrokeText{
		Text:    text.Clone(),
		Stroke:  stroke.Clone(),
		CTM:     ctm,
		Scissor: scissor,
	})
}

func (d *Device) IgnoreText(text *ink.Text, ctm ink.Matrix) {
	d.record(IgnoreText{
		Text: text.Clone(),
		CTM:  ctm,
	})
}

func (d *Device) FillImage(img *ink.Image, ctm ink.Matrix, alpha float64) {
	d.record(FillImage{
		Image: img,
		CTM:   ctm,
		Alpha: alpha,
	})
}

func (d *Device) FillImageMask(img *ink.Image, ctm ink.Matrix, cs *ink.Colorspace, color []float64, alpha float64) {
	d.record(FillImageMask{
		Image:      img,
		CTM:        ctm,
		Colorspace: cs,
		Color:      cloneColor(color),
		Alpha:      alpha,
	})
}

func (d *Device) ClipImageMask(img *ink.Image, ctm ink.Matrix, scissor ink.Rect) {
	d.record(ClipImageMask{
		Image:   img,
		CTM:     ctm,
		Scissor: scissor,
	})
}

func (d *Device) PopClip() {
	d.record(PopClip{})
}

func (d *Device) BeginMask(area ink.Rect, luminosity bool, cs *ink.Colorspace, color []float64) {
	d.record(BeginMask{
		Area:       area,
		Luminosity: luminosity,
		Colorspace: cs,
		Color:      cloneColor(color),
	})
}

func (d *Device) EndMask() {
	d.record(EndMask{})
}

func (d *Device) BeginGroup(area ink.Rect, cs *ink.Colorspace, isolated, knockout bool, blend ink.BlendMode, alpha float64) {
	d.record(BeginGroup{
		Area:       area,
		Colorspace: cs,
		Isolated:   isolated,
		Knockout:   knockout,
		BlendMode:  blend,
		Alpha:      alpha,
	})
}

func (d *Device) EndGroup() {
	d.record(EndGroup{})
}

// BeginTile records the tile and returns 0: the recorder does not
// cache tile content, so it never hands out reuse tokens.
func (d *Device) BeginTile(area, view ink.Rect, xstep, ystep float64, ctm ink.Matrix) int {
	d.record(BeginTile{
		Area:  area,
		View:  view,
		XStep: xstep,
		YStep: ystep,
		CTM:   ctm,
	})
	return 0
}

func (d *Device) EndTile() {
	d.record(EndTile{})
}

// Close is not recorded; closing the recorder is not closing the
// devices that later replay the list.
func (d *Device) Close() {}
