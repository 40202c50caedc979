package ink

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
)

// Pixmap is a rectangular pixel buffer: h rows of w pixels with n
// bytes each, where n counts the colorspace components plus one alpha
// byte when the pixmap carries alpha. Samples are stored row-major
// with no padding, so stride == w*n.
//
// A pixmap may also be alpha-only (nil colorspace, alpha true, n == 1),
// which is how stencil masks are represented.
type Pixmap struct {
	x, y       int
	w, h       int
	n          int
	alpha      bool
	stride     int
	colorspace *Colorspace
	samples    []byte
}

// NewPixmap creates a zero-filled pixmap at origin (x, y) with the
// given dimensions. It returns an *ArgumentError when w or h is not
// positive, or when cs is nil and alpha is false.
func NewPixmap(x, y, w, h int, cs *Colorspace, alpha bool) (*Pixmap, error) {
	if w <= 0 || h <= 0 {
		return nil, argErrorf("NewPixmap", "invalid dimensions %dx%d", w, h)
	}
	n := 0
	if cs != nil {
		n = cs.N()
	}
	if alpha {
		n++
	}
	if n == 0 {
		return nil, argErrorf("NewPixmap", "pixmap needs a colorspace or alpha")
	}
	stride := w * n
	return &Pixmap{
		x:          x,
		y:          y,
		w:          w,
		h:          h,
		n:          n,
		alpha:      alpha,
		stride:     stride,
		colorspace: cs,
		samples:    make([]byte, stride*h),
	}, nil
}

// X returns the x origin of the pixmap.
func (p *Pixmap) X() int { return p.x }

// Y returns the y origin of the pixmap.
func (p *Pixmap) Y() int { return p.y }

// Width returns the width in pixels.
func (p *Pixmap) Width() int { return p.w }

// Height returns the height in pixels.
func (p *Pixmap) Height() int { return p.h }

// N returns the number of bytes per pixel, including alpha.
func (p *Pixmap) N() int { return p.n }

// HasAlpha reports whether the last byte of each pixel is alpha.
func (p *Pixmap) HasAlpha() bool { return p.alpha }

// Stride returns the number of bytes per row.
func (p *Pixmap) Stride() int { return p.stride }

// Colorspace returns the pixmap's colorspace, or nil for an alpha-only
// pixmap.
func (p *Pixmap) Colorspace() *Colorspace { return p.colorspace }

// Samples returns the raw sample buffer. The rasterizer writes through
// this slice, so the caller must not use the pixmap concurrently while
// a draw call is in flight.
func (p *Pixmap) Samples() []byte { return p.samples }

// Clear sets every sample byte to value.
func (p *Pixmap) Clear(value byte) {
	for i := range p.samples {
		p.samples[i] = value
	}
}

// Pixel returns the n bytes of the pixel at pixmap-local coordinates
// (x, y), or nil when the coordinates are out of bounds. The slice
// aliases the sample buffer.
func (p *Pixmap) Pixel(x, y int) []byte {
	if x < 0 || x >= p.w || y < 0 || y >= p.h {
		return nil
	}
	offset := y*p.stride + x*p.n
	return p.samples[offset : offset+p.n]
}

// Clone returns a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	c := *p
	c.samples = append([]byte(nil), p.samples...)
	return &c
}

// ColorModel implements image.Image.
func (p *Pixmap) ColorModel() color.Model {
	switch {
	case p.colorspace == nil:
		return color.AlphaModel
	case p.colorspace.Type() == ColorTypeGray && !p.alpha:
		return color.GrayModel
	case p.colorspace.Type() == ColorTypeCMYK && !p.alpha:
		return color.CMYKModel
	default:
		return color.NRGBAModel
	}
}

// Bounds implements image.Image. The rectangle is offset by the pixmap
// origin, matching the image package convention.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(p.x, p.y, p.x+p.w, p.y+p.h)
}

// At implements image.Image. Coordinates are in Bounds() space.
func (p *Pixmap) At(x, y int) color.Color {
	px := p.Pixel(x-p.x, y-p.y)
	if px == nil {
		return color.NRGBA{}
	}
	switch {
	case p.colorspace == nil:
		return color.Alpha{A: px[0]}
	case p.colorspace.Type() == ColorTypeGray:
		if !p.alpha {
			return color.Gray{Y: px[0]}
		}
		return color.NRGBA{R: px[0], G: px[0], B: px[0], A: px[1]}
	case p.colorspace.Type() == ColorTypeRGB:
		if !p.alpha {
			return color.NRGBA{R: px[0], G: px[1], B: px[2], A: 255}
		}
		return color.NRGBA{R: px[0], G: px[1], B: px[2], A: px[3]}
	default: // CMYK
		if !p.alpha {
			return color.CMYK{C: px[0], M: px[1], Y: px[2], K: px[3]}
		}
		r, g, b := color.CMYKToRGB(px[0], px[1], px[2], px[3])
		return color.NRGBA{R: r, G: g, B: b, A: px[4]}
	}
}

// Set implements draw.Image, converting c through the pixmap's color
// model. Coordinates are in Bounds() space; writes outside the bounds
// are dropped.
func (p *Pixmap) Set(x, y int, c color.Color) {
	px := p.Pixel(x-p.x, y-p.y)
	if px == nil {
		return
	}
	switch {
	case p.colorspace == nil:
		px[0] = color.AlphaModel.Convert(c).(color.Alpha).A
	case p.colorspace.Type() == ColorTypeGray:
		if !p.alpha {
			px[0] = color.GrayModel.Convert(c).(color.Gray).Y
			return
		}
		nc := color.NRGBAModel.Convert(c).(color.NRGBA)
		px[0] = color.GrayModel.Convert(color.NRGBA{R: nc.R, G: nc.G, B: nc.B, A: 255}).(color.Gray).Y
		px[1] = nc.A
	case p.colorspace.Type() == ColorTypeRGB:
		nc := color.NRGBAModel.Convert(c).(color.NRGBA)
		px[0], px[1], px[2] = nc.R, nc.G, nc.B
		if p.alpha {
			px[3] = nc.A
		}
	default: // CMYK
		nc := color.NRGBAModel.Convert(c).(color.NRGBA)
		cy, m, ye, k := color.RGBToCMYK(nc.R, nc.G, nc.B)
		px[0], px[1], px[2], px[3] = cy, m, ye, k
		if p.alpha {
			px[4] = nc.A
		}
	}
}

// Image converts the pixmap to a native stdlib image, picking the
// closest type for the colorspace so PNG encoding takes a fast path.
func (p *Pixmap) Image() image.Image {
	r := image.Rect(0, 0, p.w, p.h)
	switch {
	case p.colorspace == nil:
		img := image.NewAlpha(r)
		copyRows(img.Pix, img.Stride, p)
		return img
	case p.colorspace.Type() == ColorTypeGray && !p.alpha:
		img := image.NewGray(r)
		copyRows(img.Pix, img.Stride, p)
		return img
	case p.colorspace.Type() == ColorTypeRGB && p.alpha:
		img := image.NewNRGBA(r)
		copyRows(img.Pix, img.Stride, p)
		return img
	case p.colorspace.Type() == ColorTypeCMYK && !p.alpha:
		img := image.NewCMYK(r)
		copyRows(img.Pix, img.Stride, p)
		return img
	default:
		// Gray+alpha, RGB without alpha and CMYK+alpha have no native
		// layout; expand per pixel through At.
		img := image.NewNRGBA(r)
		for y := 0; y < p.h; y++ {
			for x := 0; x < p.w; x++ {
				img.Set(x, y, p.At(p.x+x, p.y+y))
			}
		}
		return img
	}
}

// copyRows copies the sample rows of p into a destination buffer with
// its own stride. Sample layouts must already match byte for byte.
func copyRows(dst []byte, dstStride int, p *Pixmap) {
	for y := 0; y < p.h; y++ {
		copy(dst[y*dstStride:y*dstStride+p.stride], p.samples[y*p.stride:(y+1)*p.stride])
	}
}

// WritePNG encodes the pixmap as PNG.
func (p *Pixmap) WritePNG(w io.Writer) error {
	return png.Encode(w, p.Image())
}

// SavePNG writes the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return p.WritePNG(f)
}
