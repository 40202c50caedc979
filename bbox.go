package ink

// BBoxDevice measures the union of everything drawn through it. The
// result is a loose superset of the painted area: clips, masks, groups
// and tiles never shrink it.
type BBoxDevice struct {
	NullDevice
	bbox Rect
}

// NewBBoxDevice returns a device with an empty bounding box.
func NewBBoxDevice() *BBoxDevice {
	return &BBoxDevice{bbox: EmptyRect()}
}

// BBox returns the union of the transformed bounds of every primitive
// drawn so far, or the empty rect when nothing was drawn.
func (d *BBoxDevice) BBox() Rect {
	return d.bbox
}

func (d *BBoxDevice) FillPath(path *Path, evenOdd bool, ctm Matrix, cs *Colorspace, color []float64, alpha float64) {
	d.bbox = d.bbox.Union(path.Bounds().Transform(ctm))
}

func (d *BBoxDevice) StrokePath(path *Path, stroke *StrokeState, ctm Matrix, cs *Colorspace, color []float64, alpha float64) {
	bounds := path.Bounds().Transform(ctm)
	if stroke != nil {
		bounds = bounds.Expand(stroke.LineWidth / 2 * ctm.Expansion())
	}
	d.bbox = d.bbox.Union(bounds)
}

func (d *BBoxDevice) FillText(text *Text, ctm Matrix, cs *Colorspace, color []float64, alpha float64) {
	d.bbox = d.bbox.Union(text.Bounds(nil, ctm))
}

func (d *BBoxDevice) StrokeText(text *Text, stroke *StrokeState, ctm Matrix, cs *Colorspace, color []float64, alpha float64) {
	d.bbox = d.bbox.Union(text.Bounds(stroke, ctm))
}

func (d *BBoxDevice) FillImage(img *Image, ctm Matrix, alpha float64) {
	d.bbox = d.bbox.Union(UnitRect().Transform(ctm))
}

func (d *BBoxDevice) FillImageMask(img *Image, ctm Matrix, cs *Colorspace, color []float64, alpha float64) {
	d.bbox = d.bbox.Union(UnitRect().Transform(ctm))
}
