package glyphpack

import (
	"fmt"
	"math"
)

// GlyphMetrics holds where a packed glyph sits relative to the pen, in
// pixels with Y down. Oversampling is already divided out.
type GlyphMetrics struct {
	XOff, YOff   float32
	XAdvance     float32
	XOff2, YOff2 float32
}

// Quad is a textured rectangle: screen corners (X0, Y0)-(X1, Y1) and
// texture coordinates (S0, T0)-(S1, T1) normalized to the atlas size.
type Quad struct {
	X0, Y0, S0, T0 float32
	X1, Y1, S1, T1 float32
}

type packedGlyph struct {
	box     Box
	metrics GlyphMetrics
	missing bool
}

// PackedGlyphTable holds the packing results of one PackRange. It is
// immutable and safe to share.
type PackedGlyphTable struct {
	size       FontSize
	first      rune
	codepoints []rune
	glyphs     []packedGlyph
}

func newPackedGlyphTable(r PackRange) *PackedGlyphTable {
	t := &PackedGlyphTable{
		size:   r.Size,
		first:  r.FirstCodepoint,
		glyphs: make([]packedGlyph, r.Len()),
	}
	if r.Codepoints != nil {
		t.codepoints = append([]rune(nil), r.Codepoints...)
		if len(t.codepoints) > 0 {
			t.first = t.codepoints[0]
		}
	}
	return t
}

// Count returns the number of entries.
func (t *PackedGlyphTable) Count() int { return len(t.glyphs) }

// FirstCodepoint returns the codepoint of entry 0.
func (t *PackedGlyphTable) FirstCodepoint() rune { return t.first }

// Size returns the size the table was packed at.
func (t *PackedGlyphTable) Size() FontSize { return t.size }

func (t *PackedGlyphTable) check(op string, i int) error {
	if i < 0 || i >= len(t.glyphs) {
		return &IndexOutOfRangeError{Op: op, Index: i, Count: len(t.glyphs)}
	}
	return nil
}

// Codepoint returns the codepoint of entry i.
func (t *PackedGlyphTable) Codepoint(i int) (rune, error) {
	if err := t.check("Codepoint", i); err != nil {
		return 0, err
	}
	if t.codepoints != nil {
		return t.codepoints[i], nil
	}
	return t.first + rune(i), nil
}

// Box returns the bitmap rectangle entry i was rendered into, in
// oversampled pixels. Empty glyphs and glyphs that did not fit have an
// empty box.
func (t *PackedGlyphTable) Box(i int) (Box, error) {
	if err := t.check("Box", i); err != nil {
		return Box{}, err
	}
	return t.glyphs[i].box, nil
}

// Metrics returns the placement offsets of entry i.
func (t *PackedGlyphTable) Metrics(i int) (GlyphMetrics, error) {
	if err := t.check("Metrics", i); err != nil {
		return GlyphMetrics{}, err
	}
	return t.glyphs[i].metrics, nil
}

// Missing reports whether entry i was skipped because the font has no
// glyph for it.
func (t *PackedGlyphTable) Missing(i int) (bool, error) {
	if err := t.check("Missing", i); err != nil {
		return false, err
	}
	return t.glyphs[i].missing, nil
}

// Quad returns the textured quad for entry i drawn with the pen at
// (penX, penY), and the pen X position after the glyph. bitmapW and
// bitmapH are the atlas dimensions. With alignToInteger the quad's
// top-left corner is rounded to whole pixels.
func (t *PackedGlyphTable) Quad(i, bitmapW, bitmapH int, penX, penY float32, alignToInteger bool) (float32, Quad, error) {
	if err := t.check("Quad", i); err != nil {
		return penX, Quad{}, err
	}
	if bitmapW <= 0 || bitmapH <= 0 {
		return penX, Quad{}, &ConfigError{Field: "bitmap size", Value: [2]int{bitmapW, bitmapH}, Reason: "must be positive", Err: ErrInvalidRange}
	}

	g := &t.glyphs[i]
	m := g.metrics
	var q Quad
	if alignToInteger {
		x := float32(math.Floor(float64(penX + m.XOff + 0.5)))
		y := float32(math.Floor(float64(penY + m.YOff + 0.5)))
		q.X0, q.Y0 = x, y
		q.X1 = x + m.XOff2 - m.XOff
		q.Y1 = y + m.YOff2 - m.YOff
	} else {
		q.X0 = penX + m.XOff
		q.Y0 = penY + m.YOff
		q.X1 = penX + m.XOff2
		q.Y1 = penY + m.YOff2
	}

	iw, ih := 1/float32(bitmapW), 1/float32(bitmapH)
	q.S0 = float32(g.box.X0) * iw
	q.T0 = float32(g.box.Y0) * ih
	q.S1 = float32(g.box.X1) * iw
	q.T1 = float32(g.box.Y1) * ih
	return penX + m.XAdvance, q, nil
}

func (t *PackedGlyphTable) String() string {
	return fmt.Sprintf("PackedGlyphTable{first: %U, count: %d, size: %v}", t.first, len(t.glyphs), t.size)
}
