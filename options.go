package glyphpack

import (
	"github.com/gogpu/glyphpack/fontsrc"
	"github.com/gogpu/glyphpack/rectpack"
)

// FontOption configures InitFont.
type FontOption func(*fontConfig)

type fontConfig struct {
	parserName string
	cacheLimit int
}

func defaultFontConfig() fontConfig {
	return fontConfig{
		parserName: fontsrc.DefaultParser,
		cacheLimit: fontsrc.DefaultOutlineCacheLimit,
	}
}

// WithParser selects the font parser backend by registry name. The
// default is "ximage"; "gotext" is also registered. Custom backends can
// be added with fontsrc.RegisterParser.
func WithParser(name string) FontOption {
	return func(c *fontConfig) {
		c.parserName = name
	}
}

// WithOutlineCacheLimit sets how many decoded glyph outlines a Font keeps.
// A value of 0 disables the limit; a negative value disables caching.
func WithOutlineCacheLimit(n int) FontOption {
	return func(c *fontConfig) {
		c.cacheLimit = n
	}
}

// SurfaceOption configures PackBegin.
type SurfaceOption func(*surfaceConfig)

type surfaceConfig struct {
	heuristic   rectpack.Heuristic
	hOversample int
	vOversample int
	skipMissing bool
}

func defaultSurfaceConfig() surfaceConfig {
	return surfaceConfig{
		heuristic:   rectpack.Skyline,
		hOversample: 1,
		vOversample: 1,
	}
}

// WithHeuristic selects the rectangle allocator. The default is
// rectpack.Skyline.
func WithHeuristic(h rectpack.Heuristic) SurfaceOption {
	return func(c *surfaceConfig) {
		c.heuristic = h
	}
}

// WithOversampling sets the initial oversampling factors, as
// SetOversampling would.
func WithOversampling(h, v int) SurfaceOption {
	return func(c *surfaceConfig) {
		c.hOversample = h
		c.vOversample = v
	}
}

// WithSkipMissingCodepoints makes the surface skip codepoints the font
// has no glyph for, as SetSkipMissingCodepoints(true) would.
func WithSkipMissingCodepoints() SurfaceOption {
	return func(c *surfaceConfig) {
		c.skipMissing = true
	}
}
