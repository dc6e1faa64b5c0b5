// Package fontsrc is the font capability layer of glyphpack.
//
// The packer never reads font tables itself. It asks a [ParsedFont] for
// glyph indices, metrics, kerning, boxes and outlines, all expressed in
// font units with the Y axis pointing up. Parsing is delegated to a
// [FontParser] chosen by name from a small registry:
//
//   - "ximage" (default) uses golang.org/x/image/font/sfnt
//   - "gotext" uses github.com/go-text/typesetting/font
//
// Both backends understand single fonts and TTC/OTC collections; the
// collection header helpers ([FontOffsetForIndex], [NumberOfFonts]) map
// between byte offsets and collection indices.
package fontsrc
