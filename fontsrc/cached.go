package fontsrc

import "github.com/gogpu/glyphpack/internal/cache"

// DefaultOutlineCacheLimit is the outline cache size used by NewCachedFont
// when limit is zero.
const DefaultOutlineCacheLimit = 512

// cachedOutline pairs an outline with the error it was decoded with, so
// failures are memoized too.
type cachedOutline struct {
	outline Outline
	err     error
}

// glyphInfo holds the per-glyph metrics packing asks for more than once.
type glyphInfo struct {
	hmetrics HMetrics
	box      Box
	hasBox   bool
}

// glyphInfoLoader is implemented by backends that can report a glyph's
// horizontal metrics and box from a single decode.
type glyphInfoLoader interface {
	glyphInfo(g GlyphID) (HMetrics, Box, bool)
}

// CachedFont wraps a ParsedFont and memoizes decoded outlines, horizontal
// metrics and glyph boxes. Packing the same font at several sizes decodes
// each glyph once per cache.
type CachedFont struct {
	ParsedFont
	outlines *cache.Cache[GlyphID, cachedOutline]
	glyphs   *cache.Cache[GlyphID, glyphInfo]
}

// NewCachedFont wraps f with caches of about limit glyphs each.
// A zero limit selects DefaultOutlineCacheLimit; a negative limit means
// unlimited.
func NewCachedFont(f ParsedFont, limit int) *CachedFont {
	if limit == 0 {
		limit = DefaultOutlineCacheLimit
	}
	return &CachedFont{
		ParsedFont: f,
		outlines:   cache.New[GlyphID, cachedOutline](limit),
		glyphs:     cache.New[GlyphID, glyphInfo](limit),
	}
}

// Outline implements ParsedFont.Outline.
func (c *CachedFont) Outline(g GlyphID) (Outline, error) {
	v := c.outlines.GetOrCreate(g, func() cachedOutline {
		o, err := c.ParsedFont.Outline(g)
		return cachedOutline{outline: o, err: err}
	})
	return v.outline, v.err
}

// HMetrics implements ParsedFont.HMetrics.
func (c *CachedFont) HMetrics(g GlyphID) HMetrics {
	return c.info(g).hmetrics
}

// GlyphBox implements ParsedFont.GlyphBox.
func (c *CachedFont) GlyphBox(g GlyphID) (Box, bool) {
	v := c.info(g)
	return v.box, v.hasBox
}

// info loads outside the cache lock; concurrent misses on one glyph may
// both decode it and store equal values.
func (c *CachedFont) info(g GlyphID) glyphInfo {
	if v, ok := c.glyphs.Get(g); ok {
		return v
	}
	var v glyphInfo
	if l, ok := c.ParsedFont.(glyphInfoLoader); ok {
		v.hmetrics, v.box, v.hasBox = l.glyphInfo(g)
	} else {
		v.hmetrics = c.ParsedFont.HMetrics(g)
		v.box, v.hasBox = c.ParsedFont.GlyphBox(g)
	}
	c.glyphs.Set(g, v)
	return v
}

// CacheLimit returns the per-cache glyph limit, 0 if unlimited.
func (c *CachedFont) CacheLimit() int {
	return max(c.outlines.Limit(), 0)
}

// CachedOutlines returns how many decoded outlines are held.
func (c *CachedFont) CachedOutlines() int {
	return c.outlines.Len()
}

// CacheStats returns the outline cache hit and miss counters.
func (c *CachedFont) CacheStats() (hits, misses uint64) {
	return c.outlines.Stats()
}
