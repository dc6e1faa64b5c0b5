// Package raster turns glyph outlines into 8-bit coverage bitmaps.
//
// Bitmaps are addressed as a byte slice with an explicit row stride so
// that glyphs can be drawn straight into a sub-rectangle of a larger
// atlas. Coverage is computed by golang.org/x/image/vector with the
// non-zero fill rule.
//
// Oversampled glyphs are rendered at a multiple of the target scale and
// then smoothed with HPrefilter and VPrefilter, box filters whose width
// is the oversampling factor. OversampleShift gives the sub-pixel offset
// that recenters the filtered result.
package raster
