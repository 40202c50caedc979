package raster

import "github.com/gogpu/ink"

// convertColor turns a source colorspace component vector plus scalar
// alpha into the exact byte tuple written into dest's pixels: the color
// converts through an RGB intermediate to dest's colorspace, and an
// alpha byte is appended when dest carries alpha. Floats truncate to
// bytes rather than round. An alpha-only destination takes just the
// alpha byte. A color that does not match its colorspace paints black.
func convertColor(cs *ink.Colorspace, color []float64, alpha float64, dest *ink.Pixmap) []byte {
	destCS := dest.Colorspace()
	if destCS == nil {
		return []byte{byte(clamp01(alpha) * 255)}
	}

	r, g, b := toRGB(cs, color)

	out := make([]byte, 0, destCS.N()+1)
	switch destCS.Type() {
	case ink.ColorTypeGray:
		out = append(out, byte((0.299*r+0.587*g+0.114*b)*255))
	case ink.ColorTypeRGB:
		out = append(out, byte(r*255), byte(g*255), byte(b*255))
	case ink.ColorTypeCMYK:
		k := 1 - max(r, max(g, b))
		var c, m, y float64
		if k < 1 {
			c = (1 - r - k) / (1 - k)
			m = (1 - g - k) / (1 - k)
			y = (1 - b - k) / (1 - k)
		}
		out = append(out, byte(c*255), byte(m*255), byte(y*255), byte(k*255))
	}

	if dest.HasAlpha() {
		out = append(out, byte(clamp01(alpha)*255))
	}
	return out
}

// toRGB maps a component vector to the RGB intermediate: gray
// broadcasts, RGB passes through, CMYK converts with the standard
// (1-c)(1-k) products.
func toRGB(cs *ink.Colorspace, color []float64) (r, g, b float64) {
	if cs == nil {
		return 0, 0, 0
	}
	switch {
	case cs.Type() == ink.ColorTypeGray && len(color) >= 1:
		v := clamp01(color[0])
		return v, v, v
	case cs.Type() == ink.ColorTypeRGB && len(color) >= 3:
		return clamp01(color[0]), clamp01(color[1]), clamp01(color[2])
	case cs.Type() == ink.ColorTypeCMYK && len(color) >= 4:
		c := clamp01(color[0])
		m := clamp01(color[1])
		y := clamp01(color[2])
		k := clamp01(color[3])
		return (1 - c) * (1 - k), (1 - m) * (1 - k), (1 - y) * (1 - k)
	default:
		return 0, 0, 0
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
