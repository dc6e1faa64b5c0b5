package fontsrc

import "errors"

// Sentinel errors for fontsrc package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("fontsrc: empty font data")

	// ErrFontIndex is returned when a collection has no font at the requested index.
	ErrFontIndex = errors.New("fontsrc: font index out of range")

	// ErrUnknownParser is returned when no parser is registered under a name.
	ErrUnknownParser = errors.New("fontsrc: unknown parser")

	// ErrNoOutline is returned for glyphs without a vector outline
	// (bitmap-only or color glyphs).
	ErrNoOutline = errors.New("fontsrc: glyph has no vector outline")
)
