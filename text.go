package ink

import (
	"math"
	"strings"

	"golang.org/x/text/unicode/bidi"
)

// TextLanguage is an ISO 639 language tag packed into an integer code.
// Only the languages that affect glyph selection or line layout are
// distinguished; everything else is LangUnset.
type TextLanguage uint16

const (
	LangUnset  TextLanguage = 0
	LangUr     TextLanguage = 572
	LangUrd    TextLanguage = 15444
	LangKo     TextLanguage = 299
	LangJa     TextLanguage = 271
	LangZh     TextLanguage = 703
	LangZhHans TextLanguage = 18982
	LangZhHant TextLanguage = 19009
)

// ParseLanguage converts an ISO 639 string to a language code.
// Unrecognized strings parse as LangUnset.
func ParseLanguage(s string) TextLanguage {
	switch strings.ToLower(s) {
	case "ur":
		return LangUr
	case "urd":
		return LangUrd
	case "ko":
		return LangKo
	case "ja":
		return LangJa
	case "zh":
		return LangZh
	case "zh-hans", "zhs":
		return LangZhHans
	case "zh-hant", "zht":
		return LangZhHant
	default:
		return LangUnset
	}
}

// String returns the ISO 639 string for the language code, or "" for
// LangUnset.
func (l TextLanguage) String() string {
	switch l {
	case LangUr:
		return "ur"
	case LangUrd:
		return "urd"
	case LangKo:
		return "ko"
	case LangJa:
		return "ja"
	case LangZh:
		return "zh"
	case LangZhHans:
		return "zh-Hans"
	case LangZhHant:
		return "zh-Hant"
	default:
		return ""
	}
}

// BidiDirection is the markup-level text direction of a span.
type BidiDirection int

const (
	// BidiLTR is left-to-right text.
	BidiLTR BidiDirection = iota
	// BidiRTL is right-to-left text.
	BidiRTL
	// BidiNeutral inherits the direction from context.
	BidiNeutral
)

// String returns "ltr", "rtl" or "neutral".
func (d BidiDirection) String() string {
	switch d {
	case BidiLTR:
		return "ltr"
	case BidiRTL:
		return "rtl"
	default:
		return "neutral"
	}
}

// TextItem is a single positioned glyph.
type TextItem struct {
	// X, Y is the glyph origin on the baseline.
	X, Y float64
	// Advance is the pen advance after this glyph.
	Advance float64
	// Gid is the glyph id, or -1 when one gid maps to many code points.
	Gid int
	// Ucs is the Unicode code point, or -1 when one code point maps to
	// many glyphs.
	Ucs int
	// Cid is the CID for CJK fonts, or the raw character code.
	Cid int
}

// TextSpan is a run of glyphs sharing one font, text-rendering matrix,
// writing mode, bidi level and language.
type TextSpan struct {
	Font *Font
	// Trm is the text-rendering matrix at the start of the span.
	Trm Matrix
	// WMode is true for vertical writing.
	WMode     bool
	BidiLevel uint8
	MarkupDir BidiDirection
	Language  TextLanguage
	Items     []TextItem
}

// NewTextSpan creates an empty horizontal left-to-right span.
func NewTextSpan(font *Font, trm Matrix) *TextSpan {
	return &TextSpan{Font: font, Trm: trm}
}

// AddGlyph appends a glyph to the span.
func (s *TextSpan) AddGlyph(item TextItem) {
	s.Items = append(s.Items, item)
}

// Len returns the number of glyphs in the span.
func (s *TextSpan) Len() int { return len(s.Items) }

// IsEmpty reports whether the span has no glyphs.
func (s *TextSpan) IsEmpty() bool { return len(s.Items) == 0 }

// Bounds returns the bounding box of the span transformed by its
// text-rendering matrix. Glyph boxes extend from descent below to
// ascent above the baseline and one advance along it; a stroke expands
// each box by half the line width.
func (s *TextSpan) Bounds(stroke *StrokeState) Rect {
	if len(s.Items) == 0 {
		return EmptyRect()
	}

	size := math.Hypot(s.Trm.A, s.Trm.B)
	ascent, descent := 0.8, 0.2
	if s.Font != nil {
		ascent = s.Font.Ascender()
		descent = -s.Font.Descender()
	}

	bbox := EmptyRect()
	for _, item := range s.Items {
		box := NewRect(item.X, item.Y-descent*size, item.X+item.Advance, item.Y+ascent*size)
		if stroke != nil {
			box = box.Expand(stroke.LineWidth / 2)
		}
		bbox = bbox.Union(box)
	}
	return bbox.Transform(s.Trm)
}

// Content returns the Unicode content of the span. Glyphs without a
// code point are skipped.
func (s *TextSpan) Content() string {
	var b strings.Builder
	for _, item := range s.Items {
		if item.Ucs >= 0 {
			b.WriteRune(rune(item.Ucs))
		}
	}
	return b.String()
}

// Clone returns a deep copy of the span. The font handle is shared.
func (s *TextSpan) Clone() *TextSpan {
	c := *s
	c.Items = append([]TextItem(nil), s.Items...)
	return &c
}

// stringAdvance is the fixed pen advance ShowString uses per glyph.
// Shaped positioning comes from the caller via ShowGlyphAdvance.
const stringAdvance = 10.0

// Text is an ordered list of text spans, the glyph-level description a
// device consumes.
type Text struct {
	spans []*TextSpan
}

// NewText creates an empty text object.
func NewText() *Text {
	return &Text{}
}

// AddSpan appends a span.
func (t *Text) AddSpan(span *TextSpan) {
	t.spans = append(t.spans, span)
}

// Spans returns the spans in order. The slice aliases the text object.
func (t *Text) Spans() []*TextSpan { return t.spans }

// Len returns the number of spans.
func (t *Text) Len() int { return len(t.spans) }

// IsEmpty reports whether the text has no spans.
func (t *Text) IsEmpty() bool { return len(t.spans) == 0 }

// ItemCount returns the total number of glyphs across all spans.
func (t *Text) ItemCount() int {
	var n int
	for _, s := range t.spans {
		n += len(s.Items)
	}
	return n
}

// ShowGlyph appends one glyph at position (trm.E, trm.F). Consecutive
// calls with the same font handle, matrix, writing mode, bidi level,
// markup direction and language coalesce into one span.
func (t *Text) ShowGlyph(font *Font, trm Matrix, gid, ucs int, wmode bool, bidiLevel uint8, markupDir BidiDirection, lang TextLanguage) {
	t.ShowGlyphAdvance(font, trm, 0, gid, ucs, ucs, wmode, bidiLevel, markupDir, lang)
}

// ShowGlyphAdvance appends one glyph with an explicit advance and CID.
func (t *Text) ShowGlyphAdvance(font *Font, trm Matrix, advance float64, gid, ucs, cid int, wmode bool, bidiLevel uint8, markupDir BidiDirection, lang TextLanguage) {
	item := TextItem{X: trm.E, Y: trm.F, Advance: advance, Gid: gid, Ucs: ucs, Cid: cid}

	if n := len(t.spans); n > 0 {
		last := t.spans[n-1]
		if last.Font == font && last.Trm == trm && last.WMode == wmode &&
			last.BidiLevel == bidiLevel && last.MarkupDir == markupDir && last.Language == lang {
			last.AddGlyph(item)
			return
		}
	}

	span := NewTextSpan(font, trm)
	span.WMode = wmode
	span.BidiLevel = bidiLevel
	span.MarkupDir = markupDir
	span.Language = lang
	span.AddGlyph(item)
	t.spans = append(t.spans, span)
}

// ShowString appends one glyph per rune with gid and code point both
// set to the rune, advancing the pen by a fixed step along the writing
// direction. It returns the matrix left after the last glyph.
func (t *Text) ShowString(font *Font, trm Matrix, s string, wmode bool, bidiLevel uint8, markupDir BidiDirection, lang TextLanguage) Matrix {
	for _, r := range s {
		t.ShowGlyph(font, trm, int(r), int(r), wmode, bidiLevel, markupDir, lang)
		if wmode {
			trm.F += stringAdvance
		} else {
			trm.E += stringAdvance
		}
	}
	return trm
}

// ShowStringBidi appends one glyph per rune like ShowString, but
// resolves the bidirectional embedding level of each rune first, so
// spans split exactly at direction boundaries.
func (t *Text) ShowStringBidi(font *Font, trm Matrix, s string, wmode bool, base BidiDirection, lang TextLanguage) Matrix {
	levels := ResolveBidi(s, base)
	i := 0
	for _, r := range s {
		t.ShowGlyph(font, trm, int(r), int(r), wmode, uint8(levels[i]), base, lang)
		i++
		if wmode {
			trm.F += stringAdvance
		} else {
			trm.E += stringAdvance
		}
	}
	return trm
}

// MeasureString walks the fixed per-glyph advance of ShowString over s
// without recording glyphs, returning the matrix the pen ends at.
func MeasureString(font *Font, trm Matrix, s string, wmode bool) Matrix {
	for range s {
		if wmode {
			trm.F += stringAdvance
		} else {
			trm.E += stringAdvance
		}
	}
	return trm
}

// Bounds returns the union of all span bounds transformed by ctm.
func (t *Text) Bounds(stroke *StrokeState, ctm Matrix) Rect {
	bbox := EmptyRect()
	for _, span := range t.spans {
		bbox = bbox.Union(span.Bounds(stroke).Transform(ctm))
	}
	return bbox
}

// Content returns the Unicode content of all spans in order.
func (t *Text) Content() string {
	var b strings.Builder
	for _, span := range t.spans {
		b.WriteString(span.Content())
	}
	return b.String()
}

// SetLanguage sets the language on every span.
func (t *Text) SetLanguage(lang TextLanguage) {
	for _, span := range t.spans {
		span.Language = lang
	}
}

// Clear removes all spans, keeping allocated capacity.
func (t *Text) Clear() {
	t.spans = t.spans[:0]
}

// Clone returns a deep copy of the text object. Font handles are
// shared; everything else is copied.
func (t *Text) Clone() *Text {
	c := &Text{spans: make([]*TextSpan, len(t.spans))}
	for i, span := range t.spans {
		c.spans[i] = span.Clone()
	}
	return c
}

// ResolveBidi returns the bidirectional embedding level of every rune
// in s under the given base direction: 0 for left-to-right runs, 1 for
// right-to-left runs.
func ResolveBidi(s string, base BidiDirection) []int {
	if s == "" {
		return nil
	}
	levels := make([]int, len([]rune(s)))

	var def bidi.Direction
	switch base {
	case BidiRTL:
		def = bidi.RightToLeft
	case BidiLTR:
		def = bidi.LeftToRight
	default:
		def = bidi.Neutral
	}

	var p bidi.Paragraph
	if _, err := p.SetString(s, bidi.DefaultDirection(def)); err != nil {
		return levels
	}
	ordering, err := p.Order()
	if err != nil {
		return levels
	}

	// Run positions are rune indices, end inclusive.
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		start, end := run.Pos()
		level := 0
		if run.Direction() == bidi.RightToLeft {
			level = 1
		}
		for j := start; j <= end && j < len(levels); j++ {
			levels[j] = level
		}
	}
	return levels
}
