package fontsrc

import (
	"bytes"
	"fmt"
	"math"
	"sync"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/font/opentype/tables"
)

// gotextParser implements FontParser using github.com/go-text/typesetting.
type gotextParser struct{}

// Parse implements FontParser.Parse.
func (gotextParser) Parse(data []byte, index int) (ParsedFont, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	loaders, err := ot.NewLoaders(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("fontsrc: gotext: failed to parse font: %w", err)
	}
	if index < 0 || index >= len(loaders) {
		return nil, fmt.Errorf("%w: %d of %d", ErrFontIndex, index, len(loaders))
	}
	ld := loaders[index]

	ft, err := font.NewFont(ld)
	if err != nil {
		return nil, fmt.Errorf("fontsrc: gotext: failed to load font %d: %w", index, err)
	}
	head, _, err := font.LoadHeadTable(ld, nil)
	if err != nil {
		return nil, fmt.Errorf("fontsrc: gotext: %w", err)
	}
	numGlyphs := 0
	if raw, err := ld.RawTable(ot.MustNewTag("maxp")); err == nil {
		if maxp, _, err := tables.ParseMaxp(raw); err == nil {
			numGlyphs = int(maxp.NumGlyphs)
		}
	}
	desc, _ := font.Describe(ld, nil)

	g := &gotextFont{
		face:      font.NewFace(ft),
		upem:      int(ft.Upem()),
		numGlyphs: numGlyphs,
		name:      desc.Family,
		box: Box{
			X0: int(head.XMin),
			Y0: int(head.YMin),
			X1: int(head.XMax),
			Y1: int(head.YMax),
		},
	}
	if ext, ok := g.face.FontHExtents(); ok {
		g.vmetrics = VMetrics{
			Ascent:  round(ext.Ascender),
			Descent: round(ext.Descender),
			LineGap: round(ext.LineGap),
		}
	}
	return g, nil
}

// gotextFont implements ParsedFont using font.Face.
type gotextFont struct {
	// font.Face caches glyph extents internally and is not safe for
	// concurrent use.
	mu   sync.Mutex
	face *font.Face

	upem      int
	numGlyphs int
	name      string
	box       Box
	vmetrics  VMetrics
}

func round(v float32) int {
	return int(math.Round(float64(v)))
}

// Name implements ParsedFont.Name.
func (g *gotextFont) Name() string { return g.name }

// NumGlyphs implements ParsedFont.NumGlyphs.
func (g *gotextFont) NumGlyphs() int { return g.numGlyphs }

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (g *gotextFont) UnitsPerEm() int { return g.upem }

// VMetrics implements ParsedFont.VMetrics.
func (g *gotextFont) VMetrics() VMetrics { return g.vmetrics }

// FontBox implements ParsedFont.FontBox.
func (g *gotextFont) FontBox() Box { return g.box }

// GlyphIndex implements ParsedFont.GlyphIndex.
func (g *gotextFont) GlyphIndex(r rune) GlyphID {
	g.mu.Lock()
	defer g.mu.Unlock()

	gid, ok := g.face.NominalGlyph(r)
	if !ok || gid > math.MaxUint16 {
		return 0
	}
	return GlyphID(gid)
}

// HMetrics implements ParsedFont.HMetrics.
func (g *gotextFont) HMetrics(gid GlyphID) HMetrics {
	g.mu.Lock()
	defer g.mu.Unlock()

	m := HMetrics{AdvanceWidth: round(g.face.HorizontalAdvance(font.GID(gid)))}
	if ext, ok := g.face.GlyphExtents(font.GID(gid)); ok {
		m.LeftSideBearing = round(ext.XBearing)
	}
	return m
}

// KernAdvance implements ParsedFont.KernAdvance.
//
// Only 'kern'/'kerx' subtables with direct pair lookups are consulted;
// GPOS pair adjustments need a shaper and are ignored here.
func (g *gotextFont) KernAdvance(g1, g2 GlyphID) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, st := range g.face.Kern {
		if pairs, ok := st.Data.(font.SimpleKerns); ok {
			if v := pairs.KernPair(font.GID(g1), font.GID(g2)); v != 0 {
				return int(v)
			}
		}
	}
	return 0
}

// GlyphBox implements ParsedFont.GlyphBox.
func (g *gotextFont) GlyphBox(gid GlyphID) (Box, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	ext, ok := g.face.GlyphExtents(font.GID(gid))
	if !ok || (ext.Width == 0 && ext.Height == 0) {
		return Box{}, false
	}
	// Height is negative: YBearing is the top edge.
	return Box{
		X0: round(ext.XBearing),
		Y0: round(ext.YBearing + ext.Height),
		X1: round(ext.XBearing + ext.Width),
		Y1: round(ext.YBearing),
	}, true
}

// Outline implements ParsedFont.Outline.
func (g *gotextFont) Outline(gid GlyphID) (Outline, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	data := g.face.GlyphData(font.GID(gid))
	glyph, ok := data.(font.GlyphOutline)
	if !ok {
		if data == nil {
			// Glyphs without contours (space) have no data at all.
			return Outline{}, nil
		}
		return Outline{}, fmt.Errorf("%w: glyph %d", ErrNoOutline, gid)
	}

	out := Outline{Segments: make([]Segment, len(glyph.Segments))}
	for i, s := range glyph.Segments {
		seg := Segment{}
		switch s.Op {
		case ot.SegmentOpMoveTo:
			seg.Op = SegmentOpMoveTo
		case ot.SegmentOpLineTo:
			seg.Op = SegmentOpLineTo
		case ot.SegmentOpQuadTo:
			seg.Op = SegmentOpQuadTo
		case ot.SegmentOpCubeTo:
			seg.Op = SegmentOpCubeTo
		}
		for j := 0; j < seg.Op.NumArgs(); j++ {
			seg.Args[j] = Point{X: s.Args[j].X, Y: s.Args[j].Y}
		}
		out.Segments[i] = seg
	}
	return out, nil
}
