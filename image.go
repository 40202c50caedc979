package ink

import (
	"bytes"
	"compress/lzw"
	"compress/zlib"
	"fmt"
	"image"
	_ "image/gif" // registered for NewImageFromData sniffing
	"image/jpeg"
	_ "image/png" // registered for NewImageFromData sniffing
	"io"
	"math"

	_ "golang.org/x/image/bmp" // registered for NewImageFromData sniffing
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // registered for NewImageFromData sniffing
	_ "golang.org/x/image/webp" // registered for NewImageFromData sniffing
)

// ImageFormat identifies how image data is compressed.
type ImageFormat int

const (
	// FormatRaw is uncompressed component samples.
	FormatRaw ImageFormat = iota
	// FormatJPEG is DCT-compressed data.
	FormatJPEG
	// FormatJPEG2000 is JPX-compressed data.
	FormatJPEG2000
	// FormatJBIG2 is JBIG2-compressed monochrome data.
	FormatJBIG2
	// FormatCCITT is CCITT fax-compressed data.
	FormatCCITT
	// FormatFlate is zlib-compressed data.
	FormatFlate
	// FormatLZW is LZW-compressed data.
	FormatLZW
	// FormatRunLength is run-length encoded data.
	FormatRunLength
)

var imageFormatNames = [...]string{
	"Raw", "JPEG", "JPEG2000", "JBIG2", "CCITT", "Flate", "LZW", "RunLength",
}

// String returns the format name.
func (f ImageFormat) String() string {
	if int(f) < len(imageFormatNames) {
		return imageFormatNames[f]
	}
	return "Unknown"
}

// MaskType identifies how an image participates in masking.
type MaskType int

const (
	// MaskNone marks a plain image.
	MaskNone MaskType = iota
	// MaskImage marks an image with a binary transparency mask.
	MaskImage
	// MaskSoft marks an image with an alpha soft mask.
	MaskSoft
	// MaskStencil marks a 1-bit on/off stencil.
	MaskStencil
)

var maskTypeNames = [...]string{"None", "ImageMask", "SoftMask", "Stencil"}

// String returns the mask type name.
func (m MaskType) String() string {
	if int(m) < len(maskTypeNames) {
		return maskTypeNames[m]
	}
	return "Unknown"
}

// Image holds possibly-compressed sample data plus the parameters
// needed to decode it into a Pixmap: dimensions, bits per component,
// component count and colorspace. An optional mask image supplies
// transparency.
type Image struct {
	width, height int
	bpc           int
	n             int
	colorspace    *Colorspace
	data          []byte
	format        ImageFormat
	maskType      MaskType
	mask          *Image
	xres, yres    int
	interpolate   bool
	pixmap        *Pixmap
}

// NewImage creates an RGB image shell around an already-decoded
// pixmap. The pixmap may be nil.
func NewImage(width, height int, pixmap *Pixmap) *Image {
	return &Image{
		width:       width,
		height:      height,
		bpc:         8,
		n:           3,
		colorspace:  DeviceRGB(),
		format:      FormatRaw,
		xres:        96,
		yres:        96,
		interpolate: true,
		pixmap:      pixmap,
	}
}

// NewImageFromRaw creates an image from uncompressed component
// samples. It returns an *ArgumentError when the dimensions are not
// positive, cs is nil or data is shorter than width*height*n*bpc/8
// bytes.
func NewImageFromRaw(width, height, bpc int, cs *Colorspace, data []byte) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, argErrorf("NewImageFromRaw", "invalid dimensions %dx%d", width, height)
	}
	if cs == nil {
		return nil, argErrorf("NewImageFromRaw", "nil colorspace")
	}
	n := cs.N()
	expected := width * height * n * bpc / 8
	if len(data) < expected {
		return nil, argErrorf("NewImageFromRaw", "insufficient data: expected %d bytes, got %d",
			expected, len(data))
	}
	return &Image{
		width:       width,
		height:      height,
		bpc:         bpc,
		n:           n,
		colorspace:  cs,
		data:        data,
		format:      FormatRaw,
		xres:        96,
		yres:        96,
		interpolate: true,
	}, nil
}

// NewImageFromCompressed creates an image whose data is decoded
// lazily. cs may be nil for monochrome formats.
func NewImageFromCompressed(width, height, bpc int, cs *Colorspace, format ImageFormat, data []byte) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, argErrorf("NewImageFromCompressed", "invalid dimensions %dx%d", width, height)
	}
	n := 1
	if cs != nil {
		n = cs.N()
	}
	return &Image{
		width:       width,
		height:      height,
		bpc:         bpc,
		n:           n,
		colorspace:  cs,
		data:        data,
		format:      format,
		xres:        96,
		yres:        96,
		interpolate: true,
	}, nil
}

// NewImageMask creates a 1-bit stencil mask from bit-packed data (MSB
// first, rows packed contiguously).
func NewImageMask(width, height int, data []byte) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, argErrorf("NewImageMask", "invalid dimensions %dx%d", width, height)
	}
	return &Image{
		width:    width,
		height:   height,
		bpc:      1,
		n:        1,
		data:     data,
		format:   FormatRaw,
		maskType: MaskStencil,
		xres:     96,
		yres:     96,
	}, nil
}

// NewImageFromData sniffs and decodes a complete image file (PNG,
// JPEG, GIF, BMP, TIFF or WebP) into an RGB image with alpha.
func NewImageFromData(data []byte) (*Image, error) {
	if len(data) == 0 {
		return nil, argErrorf("NewImageFromData", "empty image data")
	}
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("ink: decode image data: %w", err)
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	raw := make([]byte, 0, w*h*4)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := src.At(x, y).RGBA()
			raw = append(raw, byte(r>>8), byte(g>>8), byte(bl>>8), byte(a>>8))
		}
	}
	return &Image{
		width:       w,
		height:      h,
		bpc:         8,
		n:           4, // RGB plus alpha
		colorspace:  DeviceRGB(),
		data:        raw,
		format:      FormatRaw,
		xres:        96,
		yres:        96,
		interpolate: true,
	}, nil
}

// Width returns the image width in pixels.
func (img *Image) Width() int { return img.width }

// Height returns the image height in pixels.
func (img *Image) Height() int { return img.height }

// BPC returns the bits per component.
func (img *Image) BPC() int { return img.bpc }

// N returns the number of components per pixel.
func (img *Image) N() int { return img.n }

// Colorspace returns the image colorspace, or nil for masks.
func (img *Image) Colorspace() *Colorspace { return img.colorspace }

// Format returns the compression format of the current data.
func (img *Image) Format() ImageFormat { return img.format }

// MaskType returns how the image participates in masking.
func (img *Image) MaskType() MaskType { return img.maskType }

// Data returns the raw (possibly compressed) image data.
func (img *Image) Data() []byte { return img.data }

// Resolution returns the x and y resolution in DPI.
func (img *Image) Resolution() (int, int) { return img.xres, img.yres }

// SetResolution sets the x and y resolution in DPI.
func (img *Image) SetResolution(xres, yres int) {
	img.xres = xres
	img.yres = yres
}

// Interpolate reports whether smooth scaling is requested.
func (img *Image) Interpolate() bool { return img.interpolate }

// SetInterpolate sets the smooth-scaling flag.
func (img *Image) SetInterpolate(interpolate bool) { img.interpolate = interpolate }

// Mask returns the attached mask image, if any.
func (img *Image) Mask() *Image { return img.mask }

// SetMask attaches a mask image: a stencil becomes a binary image
// mask, anything else a soft mask. A nil mask detaches.
func (img *Image) SetMask(mask *Image) {
	if mask == nil {
		img.maskType = MaskNone
		img.mask = nil
		return
	}
	if mask.maskType == MaskStencil {
		img.maskType = MaskImage
	} else {
		img.maskType = MaskSoft
	}
	img.mask = mask
	img.pixmap = nil
}

// IsCompressed reports whether the data still needs decoding.
func (img *Image) IsCompressed() bool { return img.format != FormatRaw }

// IsMask reports whether the image is used as a mask.
func (img *Image) IsMask() bool {
	return img.maskType != MaskNone || img.n == 1 && img.bpc == 1
}

// Decode decompresses the image data in place, leaving the image in
// FormatRaw. JPEG2000, JBIG2 and CCITT data is not supported and
// returns an error wrapping ErrUnsupportedFormat.
func (img *Image) Decode() error {
	switch img.format {
	case FormatRaw:
		return nil
	case FormatFlate:
		r, err := zlib.NewReader(bytes.NewReader(img.data))
		if err != nil {
			return fmt.Errorf("ink: flate decode: %w", err)
		}
		defer r.Close()
		decoded, err := io.ReadAll(r)
		if err != nil {
			return fmt.Errorf("ink: flate decode: %w", err)
		}
		img.data = decoded
	case FormatLZW:
		r := lzw.NewReader(bytes.NewReader(img.data), lzw.MSB, 8)
		defer r.Close()
		decoded, err := io.ReadAll(r)
		if err != nil {
			return fmt.Errorf("ink: lzw decode: %w", err)
		}
		img.data = decoded
	case FormatRunLength:
		decoded, err := runLengthDecode(img.data)
		if err != nil {
			return fmt.Errorf("ink: run-length decode: %w", err)
		}
		img.data = decoded
	case FormatJPEG:
		decoded, err := jpegDecode(img.data)
		if err != nil {
			return fmt.Errorf("ink: jpeg decode: %w", err)
		}
		img.data = decoded
	default:
		return fmt.Errorf("ink: decode %s: %w", img.format, ErrUnsupportedFormat)
	}
	img.format = FormatRaw
	return nil
}

// runLengthDecode expands PDF-style run-length data: a length byte
// 0..127 copies the next length+1 bytes, 129..255 repeats the next
// byte 257-length times, 128 ends the stream.
func runLengthDecode(data []byte) ([]byte, error) {
	var out []byte
	i := 0
	for i < len(data) {
		l := int(data[i])
		i++
		switch {
		case l == 128:
			return out, nil
		case l < 128:
			end := i + l + 1
			if end > len(data) {
				return nil, fmt.Errorf("truncated literal run")
			}
			out = append(out, data[i:end]...)
			i = end
		default:
			if i >= len(data) {
				return nil, fmt.Errorf("truncated repeat run")
			}
			for n := 0; n < 257-l; n++ {
				out = append(out, data[i])
			}
			i++
		}
	}
	return out, nil
}

// jpegDecode decodes JPEG data to raw component samples: one byte per
// pixel for grayscale, four for CMYK, three (RGB) for everything else.
func jpegDecode(data []byte) ([]byte, error) {
	src, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	switch m := src.(type) {
	case *image.Gray:
		out := make([]byte, w*h)
		for y := 0; y < h; y++ {
			copy(out[y*w:(y+1)*w], m.Pix[y*m.Stride:y*m.Stride+w])
		}
		return out, nil
	case *image.CMYK:
		out := make([]byte, w*h*4)
		for y := 0; y < h; y++ {
			copy(out[y*w*4:(y+1)*w*4], m.Pix[y*m.Stride:y*m.Stride+w*4])
		}
		return out, nil
	default:
		out := make([]byte, 0, w*h*3)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				r, g, bl, _ := src.At(x, y).RGBA()
				out = append(out, byte(r>>8), byte(g>>8), byte(bl>>8))
			}
		}
		return out, nil
	}
}

// ToPixmap decodes the image into a pixmap and caches the result. The
// pixmap carries alpha when a mask is attached or the component count
// exceeds the colorspace's; a stencil mask clears the alpha of masked
// pixels. The returned pixmap is shared: callers that write to it must
// Clone it first.
func (img *Image) ToPixmap() (*Pixmap, error) {
	if img.pixmap != nil {
		return img.pixmap, nil
	}
	if img.IsCompressed() {
		if err := img.Decode(); err != nil {
			return nil, err
		}
	}

	alpha := img.mask != nil
	if img.colorspace != nil && img.n > img.colorspace.N() {
		alpha = true
	}
	pm, err := NewPixmap(0, 0, img.width, img.height, img.colorspace, alpha)
	if err != nil {
		return nil, err
	}

	if len(img.data) > 0 {
		samples := pm.Samples()
		if alpha && img.n == pm.N()-1 {
			// Component-only data going into an alpha pixmap:
			// interleave and start fully opaque, so an attached mask
			// can carve pixels out.
			pixels := min(len(img.data)/img.n, img.width*img.height)
			for i := 0; i < pixels; i++ {
				copy(samples[i*pm.N():], img.data[i*img.n:(i+1)*img.n])
				samples[i*pm.N()+img.n] = 255
			}
		} else {
			// bpc below 8 is copied as-is; unpacking sub-byte samples
			// is left to the data producer.
			copy(samples, img.data)
		}
	}

	if img.mask != nil {
		if err := img.applyMask(pm); err != nil {
			return nil, err
		}
	}

	img.pixmap = pm
	return pm, nil
}

// applyMask knocks masked-out pixels transparent. Only stencil masks
// are applied; soft masks require per-sample blending that the span
// renderer does not perform.
func (img *Image) applyMask(pm *Pixmap) error {
	mask := img.mask
	if mask.IsCompressed() {
		if err := mask.Decode(); err != nil {
			return err
		}
	}
	if mask.maskType != MaskStencil || !pm.HasAlpha() {
		return nil
	}

	data := mask.data
	w := min(pm.Width(), mask.width)
	h := min(pm.Height(), mask.height)
	n := pm.N()
	stride := pm.Stride()
	samples := pm.Samples()

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			bit := y*mask.width + x
			if bit/8 >= len(data) {
				return nil
			}
			if (data[bit/8]>>(7-bit%8))&1 == 0 {
				samples[y*stride+x*n+n-1] = 0
			}
		}
	}
	return nil
}

// ScaledPixmap returns the decoded pixmap scaled to the size implied
// by ctm: width scaled by hypot(a, b), height by hypot(c, d). Scaling
// within one pixel of the source size returns an unscaled copy. A
// non-nil subarea crops the scaled result to subarea (clipped to the
// scaled bounds), producing a pixmap with a matching origin.
//
// Smooth images scale through Catmull-Rom resampling; images with
// interpolation off use nearest-neighbor.
func (img *Image) ScaledPixmap(ctm Matrix, subarea *IRect) (*Pixmap, error) {
	scaleX := math.Hypot(ctm.A, ctm.B)
	scaleY := math.Hypot(ctm.C, ctm.D)
	targetW := int(float64(img.width) * scaleX)
	targetH := int(float64(img.height) * scaleY)

	base, err := img.ToPixmap()
	if err != nil {
		return nil, err
	}

	if subarea == nil && abs(targetW-img.width) < 2 && abs(targetH-img.height) < 2 {
		return base.Clone(), nil
	}

	scaled, err := NewPixmap(0, 0, targetW, targetH, base.Colorspace(), base.HasAlpha())
	if err != nil {
		return nil, err
	}
	var scaler draw.Interpolator = draw.NearestNeighbor
	if img.interpolate {
		scaler = draw.CatmullRom
	}
	scaler.Scale(scaled, image.Rect(0, 0, targetW, targetH), base, base.Bounds(), draw.Src, nil)

	if subarea == nil {
		return scaled, nil
	}

	area := subarea.Intersect(IRect{X0: 0, Y0: 0, X1: targetW, Y1: targetH})
	if area.IsEmpty() {
		return nil, argErrorf("ScaledPixmap", "subarea %v outside scaled bounds %dx%d",
			*subarea, targetW, targetH)
	}
	crop, err := NewPixmap(area.X0, area.Y0, area.Width(), area.Height(),
		base.Colorspace(), base.HasAlpha())
	if err != nil {
		return nil, err
	}
	n := scaled.N()
	for y := area.Y0; y < area.Y1; y++ {
		srcRow := scaled.Samples()[y*scaled.Stride()+area.X0*n : y*scaled.Stride()+area.X1*n]
		dstRow := crop.Samples()[(y-area.Y0)*crop.Stride() : (y-area.Y0+1)*crop.Stride()]
		copy(dstRow, srcRow)
	}
	return crop, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
