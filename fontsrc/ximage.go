package fontsrc

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageParser implements FontParser using golang.org/x/image/font/sfnt.
type ximageParser struct{}

// Parse implements FontParser.Parse.
func (ximageParser) Parse(data []byte, index int) (ParsedFont, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	c, err := sfnt.ParseCollection(data)
	if err != nil {
		return nil, fmt.Errorf("fontsrc: ximage: failed to parse font: %w", err)
	}
	if index < 0 || index >= c.NumFonts() {
		return nil, fmt.Errorf("%w: %d of %d", ErrFontIndex, index, c.NumFonts())
	}
	f, err := c.Font(index)
	if err != nil {
		return nil, fmt.Errorf("fontsrc: ximage: failed to parse font %d: %w", index, err)
	}
	return newXimageFont(f), nil
}

// ximageFont implements ParsedFont using sfnt.Font.
//
// Every query runs at ppem == unitsPerEm in raw 26.6 units, which makes
// sfnt's scaling the identity: the returned fixed.Int26_6 values are font
// units, and sfnt's Y-down results only need their sign flipped.
type ximageFont struct {
	font *sfnt.Font
	ppem fixed.Int26_6

	// sfnt.Buffer is not safe for concurrent use; the font is.
	buffers sync.Pool

	name     string
	vmetrics VMetrics
	box      Box
}

func newXimageFont(f *sfnt.Font) *ximageFont {
	x := &ximageFont{
		font: f,
		ppem: fixed.Int26_6(f.UnitsPerEm()),
	}
	x.buffers.New = func() any { return new(sfnt.Buffer) }

	b := x.buffer()
	defer x.release(b)

	if name, err := f.Name(b, sfnt.NameIDFamily); err == nil {
		x.name = name
	}
	if m, err := f.Metrics(b, x.ppem, font.HintingNone); err == nil {
		// m.Height is ascent + descent + lineGap with sfnt's positive descent.
		x.vmetrics = VMetrics{
			Ascent:  int(m.Ascent),
			Descent: -int(m.Descent),
			LineGap: int(m.Height - m.Ascent - m.Descent),
		}
	}
	if r, err := f.Bounds(b, x.ppem, font.HintingNone); err == nil {
		x.box = flipRect(r)
	}
	return x
}

func (x *ximageFont) buffer() *sfnt.Buffer {
	return x.buffers.Get().(*sfnt.Buffer)
}

func (x *ximageFont) release(b *sfnt.Buffer) {
	x.buffers.Put(b)
}

// flipRect converts a Y-down sfnt rectangle in font units to a Y-up Box.
func flipRect(r fixed.Rectangle26_6) Box {
	return Box{
		X0: int(r.Min.X),
		Y0: -int(r.Max.Y),
		X1: int(r.Max.X),
		Y1: -int(r.Min.Y),
	}
}

// Name implements ParsedFont.Name.
func (x *ximageFont) Name() string { return x.name }

// NumGlyphs implements ParsedFont.NumGlyphs.
func (x *ximageFont) NumGlyphs() int { return x.font.NumGlyphs() }

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (x *ximageFont) UnitsPerEm() int { return int(x.font.UnitsPerEm()) }

// VMetrics implements ParsedFont.VMetrics.
func (x *ximageFont) VMetrics() VMetrics { return x.vmetrics }

// FontBox implements ParsedFont.FontBox.
func (x *ximageFont) FontBox() Box { return x.box }

// GlyphIndex implements ParsedFont.GlyphIndex.
func (x *ximageFont) GlyphIndex(r rune) GlyphID {
	b := x.buffer()
	defer x.release(b)

	idx, err := x.font.GlyphIndex(b, r)
	if err != nil {
		return 0
	}
	return GlyphID(idx)
}

// HMetrics implements ParsedFont.HMetrics.
func (x *ximageFont) HMetrics(g GlyphID) HMetrics {
	m, _, _ := x.glyphInfo(g)
	return m
}

// glyphInfo returns the horizontal metrics and box of g from one outline
// decode. The left side bearing is the box's left edge.
func (x *ximageFont) glyphInfo(g GlyphID) (HMetrics, Box, bool) {
	b := x.buffer()
	defer x.release(b)

	adv, err := x.font.GlyphAdvance(b, sfnt.GlyphIndex(g), x.ppem, font.HintingNone)
	if err != nil {
		return HMetrics{}, Box{}, false
	}
	m := HMetrics{AdvanceWidth: int(adv)}
	segs, err := x.font.LoadGlyph(b, sfnt.GlyphIndex(g), x.ppem, nil)
	if err != nil || len(segs) == 0 {
		return m, Box{}, false
	}
	box := flipRect(segs.Bounds())
	m.LeftSideBearing = box.X0
	return m, box, true
}

// KernAdvance implements ParsedFont.KernAdvance.
func (x *ximageFont) KernAdvance(g1, g2 GlyphID) int {
	b := x.buffer()
	defer x.release(b)

	k, err := x.font.Kern(b, sfnt.GlyphIndex(g1), sfnt.GlyphIndex(g2), x.ppem, font.HintingNone)
	if err != nil {
		// sfnt reports pairs absent from GPOS as ErrNotFound.
		return 0
	}
	return int(k)
}

// GlyphBox implements ParsedFont.GlyphBox.
func (x *ximageFont) GlyphBox(g GlyphID) (Box, bool) {
	_, box, ok := x.glyphInfo(g)
	return box, ok
}

// Outline implements ParsedFont.Outline.
func (x *ximageFont) Outline(g GlyphID) (Outline, error) {
	b := x.buffer()
	defer x.release(b)

	segs, err := x.font.LoadGlyph(b, sfnt.GlyphIndex(g), x.ppem, nil)
	if err != nil {
		if errors.Is(err, sfnt.ErrColoredGlyph) {
			return Outline{}, fmt.Errorf("%w: glyph %d", ErrNoOutline, g)
		}
		return Outline{}, fmt.Errorf("fontsrc: ximage: glyph %d: %w", g, err)
	}

	// segs is only valid until the next call with b.
	out := Outline{Segments: make([]Segment, len(segs))}
	for i, s := range segs {
		seg := Segment{}
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			seg.Op = SegmentOpMoveTo
		case sfnt.SegmentOpLineTo:
			seg.Op = SegmentOpLineTo
		case sfnt.SegmentOpQuadTo:
			seg.Op = SegmentOpQuadTo
		case sfnt.SegmentOpCubeTo:
			seg.Op = SegmentOpCubeTo
		}
		for j := 0; j < seg.Op.NumArgs(); j++ {
			seg.Args[j] = Point{X: float32(s.Args[j].X), Y: -float32(s.Args[j].Y)}
		}
		out.Segments[i] = seg
	}
	return out, nil
}
