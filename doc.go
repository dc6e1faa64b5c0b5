// Package glyphpack packs rasterized glyphs into a single-channel bitmap
// atlas.
//
// # Overview
//
// A [Font] wraps raw TrueType/OpenType bytes and answers metric queries.
// A [PackSurface] wraps a caller-owned byte buffer and remembers which
// parts of it are taken. [PackSurface.PackFontRanges] rasterizes ranges
// of codepoints into free space and returns one [PackedGlyphTable] per
// range; a text renderer later asks the table for textured quads.
//
// # Quick Start
//
//	font, err := glyphpack.InitFont(ttf, glyphpack.FontOffsetForIndex(ttf, 0))
//	if err != nil {
//	    return err
//	}
//
//	pixels := make([]byte, 512*512)
//	surface, err := glyphpack.PackBegin(pixels, 512, 512, 0, 1)
//	if err != nil {
//	    return err
//	}
//	defer surface.End()
//
//	_ = surface.SetOversampling(2, 2)
//	tables, err := surface.PackFontRanges(font,
//	    glyphpack.PackRange{Size: glyphpack.PixelHeight(24), FirstCodepoint: 32, Count: 95},
//	)
//	if err != nil {
//	    return err
//	}
//
//	penX := float32(10)
//	for _, r := range "Hello" {
//	    var q glyphpack.Quad
//	    penX, q, _ = tables[0].Quad(int(r-32), 512, 512, penX, 40, true)
//	    drawTexturedQuad(q)
//	}
//
// # Sizes
//
// Sizes are given as a [FontSize]: [PixelHeight] scales the font so that
// ascent minus descent spans the given number of pixels, [Points] scales
// it so that one em spans the given number of pixels.
//
// # Oversampling
//
// With oversampling (h, v), glyphs are rendered at h x v times the target
// resolution and box filtered. Reported offsets are already divided back
// down, so layout code never needs the factors.
//
// # Parsers
//
// Font parsing is done by a backend from package fontsrc: "ximage"
// (golang.org/x/image/font/sfnt, the default) or "gotext"
// (github.com/go-text/typesetting). Select one with [WithParser].
//
// # Concurrency
//
// A Font and a PackedGlyphTable are immutable and safe to share. A
// PackSurface must be used by one goroutine at a time.
package glyphpack
