package glyphpack

import (
	"fmt"

	"github.com/gogpu/glyphpack/fontsrc"
	"github.com/gogpu/glyphpack/raster"
)

// Re-exported font types.
type (
	GlyphID  = fontsrc.GlyphID
	Box      = fontsrc.Box
	VMetrics = fontsrc.VMetrics
	HMetrics = fontsrc.HMetrics
)

// FontOffsetForIndex returns the byte offset of font index in a font
// file or collection, or -1 if there is no such font.
func FontOffsetForIndex(data []byte, index int) int {
	return fontsrc.FontOffsetForIndex(data, index)
}

// NumberOfFonts returns the number of fonts in data, 0 if data is not a
// recognized font file.
func NumberOfFonts(data []byte) int {
	return fontsrc.NumberOfFonts(data)
}

// Font is a parsed font. It is immutable and safe for concurrent use.
//
// The font data passed to InitFont is borrowed: it must not be modified
// while the Font is in use.
type Font struct {
	parsed fontsrc.ParsedFont
	offset int
	index  int
	parser string

	vmetrics VMetrics
	upem     int
}

// InitFont parses the font starting at byte offset in data. Use
// FontOffsetForIndex to find the offset of a font in a collection.
//
// On failure InitFont returns a nil Font and an error matching
// ErrInitFailure.
func InitFont(data []byte, offset int, opts ...FontOption) (*Font, error) {
	cfg := defaultFontConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrInitFailure, fontsrc.ErrEmptyFontData)
	}
	index := fontsrc.IndexForOffset(data, offset)
	if index < 0 {
		return nil, fmt.Errorf("%w: no font starts at offset %d", ErrInitFailure, offset)
	}
	parsed, err := fontsrc.Parse(cfg.parserName, data, index)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInitFailure, err)
	}

	upem := parsed.UnitsPerEm()
	vm := parsed.VMetrics()
	if upem <= 0 {
		return nil, fmt.Errorf("%w: invalid units per em %d", ErrInitFailure, upem)
	}
	if vm.Ascent-vm.Descent <= 0 {
		return nil, fmt.Errorf("%w: invalid vertical metrics %+v", ErrInitFailure, vm)
	}

	attrs := []any{"index", index, "glyphs", parsed.NumGlyphs(), "parser", cfg.parserName}
	if cfg.cacheLimit >= 0 {
		limit := cfg.cacheLimit
		if limit == 0 {
			limit = -1
		}
		cf := fontsrc.NewCachedFont(parsed, limit)
		attrs = append(attrs, "outline_cache_limit", cf.CacheLimit())
		parsed = cf
	}

	f := &Font{
		parsed:   parsed,
		offset:   offset,
		index:    index,
		parser:   cfg.parserName,
		vmetrics: vm,
		upem:     upem,
	}
	Logger().Info("font initialized", append([]any{"name", parsed.Name()}, attrs...)...)
	return f, nil
}

// Parsed returns the backend font.
func (f *Font) Parsed() fontsrc.ParsedFont { return f.parsed }

// Name returns the font family name, if the font has one.
func (f *Font) Name() string { return f.parsed.Name() }

// Offset returns the byte offset the font was initialized at.
func (f *Font) Offset() int { return f.offset }

// Index returns the font's index within its file.
func (f *Font) Index() int { return f.index }

// UnitsPerEm returns the size of the em square in font units.
func (f *Font) UnitsPerEm() int { return f.upem }

// NumGlyphs returns the number of glyphs in the font.
func (f *Font) NumGlyphs() int { return f.parsed.NumGlyphs() }

// GlyphIndex returns the glyph for r, 0 if the font has none.
func (f *Font) GlyphIndex(r rune) GlyphID { return f.parsed.GlyphIndex(r) }

// ScaleForPixelHeight returns the scale that makes ascent minus descent
// span px pixels.
func (f *Font) ScaleForPixelHeight(px float32) float32 {
	return px / float32(f.vmetrics.Ascent-f.vmetrics.Descent)
}

// ScaleForEm returns the scale that makes the em square span px pixels.
func (f *Font) ScaleForEm(px float32) float32 {
	return px / float32(f.upem)
}

// VMetrics returns the font's vertical metrics in font units. Descent is
// negative.
func (f *Font) VMetrics() VMetrics { return f.vmetrics }

// ScaledVMetrics returns the vertical metrics in pixels at size.
func (f *Font) ScaledVMetrics(size FontSize) (ascent, descent, lineGap float32) {
	s := size.Scale(f)
	return float32(f.vmetrics.Ascent) * s, float32(f.vmetrics.Descent) * s, float32(f.vmetrics.LineGap) * s
}

// HMetrics returns the advance and left side bearing of g in font units.
func (f *Font) HMetrics(g GlyphID) HMetrics { return f.parsed.HMetrics(g) }

// CodepointHMetrics is HMetrics for the glyph of r.
func (f *Font) CodepointHMetrics(r rune) HMetrics {
	return f.parsed.HMetrics(f.parsed.GlyphIndex(r))
}

// KernAdvance returns the extra advance between g1 and g2 in font units.
func (f *Font) KernAdvance(g1, g2 GlyphID) int { return f.parsed.KernAdvance(g1, g2) }

// CodepointKernAdvance is KernAdvance for the glyphs of r1 and r2.
func (f *Font) CodepointKernAdvance(r1, r2 rune) int {
	return f.parsed.KernAdvance(f.parsed.GlyphIndex(r1), f.parsed.GlyphIndex(r2))
}

// FontBoundingBox returns the box enclosing every glyph, in font units.
func (f *Font) FontBoundingBox() Box { return f.parsed.FontBox() }

// GlyphBox returns the bounding box of g in font units, Y up. It reports
// false for glyphs without contours.
func (f *Font) GlyphBox(g GlyphID) (Box, bool) { return f.parsed.GlyphBox(g) }

// CodepointBox is GlyphBox for the glyph of r.
func (f *Font) CodepointBox(r rune) (Box, bool) {
	return f.parsed.GlyphBox(f.parsed.GlyphIndex(r))
}

// GlyphBitmapBox returns the pixel box, Y down and relative to the
// origin, that g covers when scaled by (sx, sy) and shifted by
// (shiftX, shiftY). Glyphs without contours give an empty box.
func (f *Font) GlyphBitmapBox(g GlyphID, sx, sy, shiftX, shiftY float32) Box {
	b, ok := f.parsed.GlyphBox(g)
	x0, y0, x1, y1 := raster.BitmapBox(b, ok, sx, sy, shiftX, shiftY)
	return Box{X0: x0, Y0: y0, X1: x1, Y1: y1}
}
