package fontsrc

import (
	"fmt"
	"sort"
	"sync"
)

// FontParser is an interface for font parsing backends.
// This abstraction allows swapping the font parsing library
// (golang.org/x/image/font/sfnt or github.com/go-text/typesetting).
type FontParser interface {
	// Parse parses the font at collection index in data (TTF, OTF, TTC or
	// OTC). Single-font files only have index 0.
	//
	// The returned font may keep referencing data.
	Parse(data []byte, index int) (ParsedFont, error)
}

// ParsedFont is the query surface the packer needs from a font.
// Every value is in font units with the Y axis pointing up.
//
// Implementations must be safe for concurrent use: a font is shared
// read-only between packing sessions.
type ParsedFont interface {
	// Name returns the font family name, or "" if not available.
	Name() string

	// NumGlyphs returns the number of glyphs in the font.
	NumGlyphs() int

	// UnitsPerEm returns the units per em for the font.
	UnitsPerEm() int

	// GlyphIndex returns the glyph for a rune, or 0 if the font has none.
	GlyphIndex(r rune) GlyphID

	// VMetrics returns the horizontal-layout ascent, descent and line gap.
	VMetrics() VMetrics

	// HMetrics returns the advance width and left side bearing of a glyph.
	HMetrics(g GlyphID) HMetrics

	// KernAdvance returns the kerning adjustment between two glyphs, or 0.
	KernAdvance(g1, g2 GlyphID) int

	// FontBox returns the union of all glyph boxes from the head table.
	FontBox() Box

	// GlyphBox returns the glyph's box. ok is false for glyphs without
	// an outline, such as the space glyph.
	GlyphBox(g GlyphID) (b Box, ok bool)

	// Outline returns the glyph's outline. Glyphs without contours return
	// an empty outline and a nil error.
	Outline(g GlyphID) (Outline, error)
}

// DefaultParser is the name of the parser used when none is requested.
const DefaultParser = "ximage"

// parserRegistry holds registered font parsers.
var (
	parserMu       sync.RWMutex
	parserRegistry = map[string]FontParser{
		"ximage": ximageParser{},
		"gotext": gotextParser{},
	}
)

// RegisterParser registers a custom font parser under name, replacing any
// parser already registered with that name.
func RegisterParser(name string, parser FontParser) {
	parserMu.Lock()
	defer parserMu.Unlock()
	parserRegistry[name] = parser
}

// Parser returns the parser registered under name.
// An empty name selects DefaultParser.
func Parser(name string) (FontParser, error) {
	if name == "" {
		name = DefaultParser
	}
	parserMu.RLock()
	defer parserMu.RUnlock()
	p, ok := parserRegistry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownParser, name)
	}
	return p, nil
}

// Parsers returns the registered parser names in sorted order.
func Parsers() []string {
	parserMu.RLock()
	defer parserMu.RUnlock()
	names := make([]string, 0, len(parserRegistry))
	for name := range parserRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Parse parses font index of data with the named parser.
func Parse(name string, data []byte, index int) (ParsedFont, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	p, err := Parser(name)
	if err != nil {
		return nil, err
	}
	return p.Parse(data, index)
}
