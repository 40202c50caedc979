package ink

import (
	"bytes"
	"fmt"

	gofont "github.com/go-text/typesetting/font"
)

// FontFlags is the PDF-style font descriptor bitmask.
type FontFlags uint32

const (
	// FlagFixedPitch marks a monospaced font.
	FlagFixedPitch FontFlags = 1 << 0
	// FlagSerif marks a serif font.
	FlagSerif FontFlags = 1 << 1
	// FlagSymbolic marks a font using a non-standard character set.
	FlagSymbolic FontFlags = 1 << 2
	// FlagScript marks a cursive font.
	FlagScript FontFlags = 1 << 3
	// FlagNonsymbolic marks a font using standard Latin characters.
	FlagNonsymbolic FontFlags = 1 << 5
	// FlagItalic marks an italic font.
	FlagItalic FontFlags = 1 << 6
	// FlagAllCap marks a font with no lowercase letters.
	FlagAllCap FontFlags = 1 << 16
	// FlagSmallCap marks a font whose lowercase letters are small caps.
	FlagSmallCap FontFlags = 1 << 17
	// FlagForceBold marks a font that should render bold at small sizes.
	FlagForceBold FontFlags = 1 << 18
)

// Has reports whether every bit of flag is set.
func (f FontFlags) Has(flag FontFlags) bool {
	return f&flag == flag
}

// FontMetrics holds font-wide vertical metrics in em units (so a value
// of 0.8 means 0.8 of the font size).
type FontMetrics struct {
	// Ascender is the extent above the baseline (positive).
	Ascender float64
	// Descender is the extent below the baseline (usually negative).
	Descender float64
	// LineHeight is the default baseline-to-baseline distance.
	LineHeight float64
	// CapHeight is the height of capital letters.
	CapHeight float64
	// XHeight is the height of a lowercase x.
	XHeight float64
	// ItalicAngle is the slant in degrees from vertical.
	ItalicAngle float64
	// UnderlinePosition is the underline offset below the baseline.
	UnderlinePosition float64
	// UnderlineThickness is the underline stroke width.
	UnderlineThickness float64
}

// DefaultFontMetrics returns the metrics used when a font carries no
// embedded data to measure.
func DefaultFontMetrics() FontMetrics {
	return FontMetrics{
		Ascender:           0.8,
		Descender:          -0.2,
		LineHeight:         1.2,
		CapHeight:          0.7,
		XHeight:            0.5,
		UnderlinePosition:  -0.1,
		UnderlineThickness: 0.05,
	}
}

// Font is a font handle: a name, metrics, and optional embedded font
// data. Handle-only fonts answer every metric question with defaults
// (advance 1.0 em), which is enough for layout-free rendering; fonts
// created from data serve real metrics and glyph advances.
//
// Text spans compare fonts by pointer, so a Font should be created
// once and shared.
type Font struct {
	name    string
	flags   FontFlags
	weight  int
	italic  bool
	metrics FontMetrics
	widths  map[uint16]float64
	charmap map[rune]uint16
	data    []byte

	// parsed is the thread-safe core of the embedded font; faces are
	// created per call because they carry per-use caches.
	parsed *gofont.Font
	upem   float64
}

// NewFont creates a handle-only font with default metrics.
func NewFont(name string) *Font {
	return &Font{
		name:    name,
		flags:   FlagNonsymbolic,
		weight:  400,
		metrics: DefaultFontMetrics(),
	}
}

// NewFontWithData creates a font from embedded TTF or OTF data. The
// parsed font replaces the default vertical metrics and serves glyph
// advances; explicit per-glyph widths still take precedence.
func NewFontWithData(name string, data []byte) (*Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	face, err := gofont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("ink: parse font %q: %w", name, err)
	}

	f := NewFont(name)
	f.data = data
	f.parsed = face.Font
	f.upem = float64(face.Upem())
	if f.upem == 0 {
		f.upem = 1000
	}
	if extents, ok := face.FontHExtents(); ok {
		f.metrics.Ascender = float64(extents.Ascender) / f.upem
		f.metrics.Descender = float64(extents.Descender) / f.upem
		f.metrics.LineHeight = float64(extents.Ascender-extents.Descender+extents.LineGap) / f.upem
	}
	return f, nil
}

// Name returns the font name.
func (f *Font) Name() string { return f.name }

// Flags returns the descriptor flags.
func (f *Font) Flags() FontFlags { return f.flags }

// SetFlags replaces the descriptor flags.
func (f *Font) SetFlags(flags FontFlags) { f.flags = flags }

// Weight returns the font weight (100 to 900).
func (f *Font) Weight() int { return f.weight }

// SetWeight sets the font weight, clamped to [100, 900].
func (f *Font) SetWeight(weight int) {
	f.weight = min(max(weight, 100), 900)
}

// IsBold reports whether the font is bold: weight 600 or more, or the
// force-bold flag.
func (f *Font) IsBold() bool {
	return f.weight >= 600 || f.flags.Has(FlagForceBold)
}

// IsItalic reports whether the font is italic.
func (f *Font) IsItalic() bool {
	return f.italic || f.flags.Has(FlagItalic)
}

// SetItalic sets the italic style bit.
func (f *Font) SetItalic(italic bool) { f.italic = italic }

// Metrics returns the font-wide metrics.
func (f *Font) Metrics() FontMetrics { return f.metrics }

// SetMetrics replaces the font-wide metrics.
func (f *Font) SetMetrics(m FontMetrics) { f.metrics = m }

// Ascender returns the em-normalized ascender.
func (f *Font) Ascender() float64 { return f.metrics.Ascender }

// Descender returns the em-normalized descender (usually negative).
func (f *Font) Descender() float64 { return f.metrics.Descender }

// FontData returns the embedded font file data, or nil.
func (f *Font) FontData() []byte { return f.data }

// IsEmbedded reports whether the font carries embedded data.
func (f *Font) IsEmbedded() bool { return f.data != nil }

// SetCharMapping maps a unicode code point to a glyph id, overriding
// the embedded character map.
func (f *Font) SetCharMapping(r rune, gid uint16) {
	if f.charmap == nil {
		f.charmap = make(map[rune]uint16)
	}
	f.charmap[r] = gid
}

// GlyphID resolves a unicode code point to a glyph id, consulting
// explicit mappings first and then the embedded character map.
func (f *Font) GlyphID(r rune) (uint16, bool) {
	if gid, ok := f.charmap[r]; ok {
		return gid, true
	}
	if face := f.newFace(); face != nil {
		if gid, ok := face.NominalGlyph(r); ok {
			return uint16(gid), true
		}
	}
	return 0, false
}

// SetGlyphAdvance sets an explicit advance (in em units) for a glyph,
// overriding the embedded metrics.
func (f *Font) SetGlyphAdvance(gid uint16, advance float64) {
	if f.widths == nil {
		f.widths = make(map[uint16]float64)
	}
	f.widths[gid] = advance
}

// GlyphAdvance returns the em-normalized advance of a glyph: the
// explicit width when set, the embedded metric when the font has data,
// and 1.0 otherwise.
func (f *Font) GlyphAdvance(gid uint16) float64 {
	return f.glyphAdvance(f.newFace(), gid)
}

// CharAdvance returns the advance of the glyph a code point maps to,
// or 1.0 when the point is unmapped.
func (f *Font) CharAdvance(r rune) float64 {
	return f.charAdvance(f.newFace(), r)
}

// MeasureString returns the summed char advances of s in em units.
func (f *Font) MeasureString(s string) float64 {
	face := f.newFace()
	var total float64
	for _, r := range s {
		total += f.charAdvance(face, r)
	}
	return total
}

// newFace wraps the thread-safe parsed font in a fresh face. Faces
// carry mutable caches, so each public call gets its own.
func (f *Font) newFace() *gofont.Face {
	if f.parsed == nil {
		return nil
	}
	return gofont.NewFace(f.parsed)
}

func (f *Font) charAdvance(face *gofont.Face, r rune) float64 {
	if gid, ok := f.charmap[r]; ok {
		return f.glyphAdvance(face, gid)
	}
	if face != nil {
		if gid, ok := face.NominalGlyph(r); ok {
			return f.glyphAdvance(face, uint16(gid))
		}
	}
	return 1.0
}

func (f *Font) glyphAdvance(face *gofont.Face, gid uint16) float64 {
	if w, ok := f.widths[gid]; ok {
		return w
	}
	if face != nil {
		return float64(face.HorizontalAdvance(gofont.GID(gid))) / f.upem
	}
	return 1.0
}
