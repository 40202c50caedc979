package ink

// ColorType identifies the component model of a colorspace.
type ColorType int

const (
	// ColorTypeGray is a single luminance component.
	ColorTypeGray ColorType = iota
	// ColorTypeRGB is red, green, blue.
	ColorTypeRGB
	// ColorTypeCMYK is cyan, magenta, yellow and key (black).
	ColorTypeCMYK
)

// String returns the colorspace type name.
func (t ColorType) String() string {
	switch t {
	case ColorTypeGray:
		return "Gray"
	case ColorTypeRGB:
		return "RGB"
	case ColorTypeCMYK:
		return "CMYK"
	}
	return "Unknown"
}

// Colorspace describes how flat color component vectors are
// interpreted. A color is a []float64 of exactly N() components, each
// in [0, 1]. The device colorspaces are immutable package singletons,
// so two colorspaces are the same iff their pointers are equal.
//
// Alpha is not a colorspace property: a Pixmap carries its own alpha
// channel flag on top of whatever colorspace it uses.
type Colorspace struct {
	name string
	typ  ColorType
	n    int
}

var (
	deviceGray = &Colorspace{name: "DeviceGray", typ: ColorTypeGray, n: 1}
	deviceRGB  = &Colorspace{name: "DeviceRGB", typ: ColorTypeRGB, n: 3}
	deviceCMYK = &Colorspace{name: "DeviceCMYK", typ: ColorTypeCMYK, n: 4}
)

// DeviceGray returns the 1-component gray device colorspace.
func DeviceGray() *Colorspace { return deviceGray }

// DeviceRGB returns the 3-component RGB device colorspace.
func DeviceRGB() *Colorspace { return deviceRGB }

// DeviceCMYK returns the 4-component CMYK device colorspace.
func DeviceCMYK() *Colorspace { return deviceCMYK }

// Name returns the colorspace name, such as "DeviceRGB".
func (c *Colorspace) Name() string { return c.name }

// Type returns the component model.
func (c *Colorspace) Type() ColorType { return c.typ }

// N returns the number of color components.
func (c *Colorspace) N() int { return c.n }

// String returns the colorspace name.
func (c *Colorspace) String() string { return c.name }
