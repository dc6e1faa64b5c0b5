package glyphpack

import (
	"image"

	"github.com/gogpu/glyphpack/raster"
	"github.com/gogpu/glyphpack/rectpack"
)

// MaxOversample is the largest oversampling factor per axis.
const MaxOversample = raster.MaxKernel

// PackSurface packs glyphs into a caller-owned bitmap.
//
// A PackSurface is not safe for concurrent use.
type PackSurface struct {
	pixels  []byte
	width   int
	height  int
	stride  int
	padding int

	hOversample int
	vOversample int
	skipMissing bool

	heuristic rectpack.Heuristic
	alloc     rectpack.Allocator
	raster    raster.Rasterizer

	utilization float64
	ended       bool
}

// PackBegin starts packing into pixels, a width x height single-channel
// bitmap whose rows are stride bytes apart. A stride of 0 means width.
// padding is the number of blank pixels kept between glyphs.
//
// The bitmap area of pixels is cleared. The buffer stays owned by the
// caller, who must not modify it until End. On failure PackBegin returns
// a nil surface and an error matching ErrInitFailure.
func PackBegin(pixels []byte, width, height, stride, padding int, opts ...SurfaceOption) (*PackSurface, error) {
	cfg := defaultSurfaceConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if stride == 0 {
		stride = width
	}

	fail := func(field string, value any, reason string) (*PackSurface, error) {
		return nil, &ConfigError{Field: field, Value: value, Reason: reason, Err: ErrInitFailure}
	}
	switch {
	case width <= 0:
		return fail("width", width, "must be positive")
	case height <= 0:
		return fail("height", height, "must be positive")
	case padding < 0:
		return fail("padding", padding, "must be non-negative")
	case width-padding <= 0 || height-padding <= 0:
		return fail("padding", padding, "leaves no usable area")
	case stride < width:
		return fail("stride", stride, "must be at least width")
	case len(pixels) < width,
		height > 1 && stride > (len(pixels)-width)/(height-1):
		return fail("pixels", len(pixels), "buffer too small")
	}
	if err := checkOversampling(cfg.hOversample, cfg.vOversample); err != nil {
		return fail("oversampling", [2]int{cfg.hOversample, cfg.vOversample}, err.Error())
	}

	for y := 0; y < height; y++ {
		clear(pixels[y*stride : y*stride+width])
	}

	s := &PackSurface{
		pixels:      pixels,
		width:       width,
		height:      height,
		stride:      stride,
		padding:     padding,
		hOversample: cfg.hOversample,
		vOversample: cfg.vOversample,
		skipMissing: cfg.skipMissing,
		heuristic:   cfg.heuristic,
		alloc:       rectpack.New(cfg.heuristic, width-padding, height-padding),
	}
	Logger().Info("pack surface begun",
		"width", width,
		"height", height,
		"stride", stride,
		"padding", padding,
		"heuristic", cfg.heuristic)
	return s, nil
}

func checkOversampling(h, v int) error {
	if h < 1 || h > MaxOversample || v < 1 || v > MaxOversample {
		return &ConfigError{Field: "oversampling", Value: [2]int{h, v}, Reason: "each factor must be in 1..8", Err: ErrInvalidOversampling}
	}
	return nil
}

// SetOversampling sets the oversampling factors used by later packs.
// Each factor must be in 1..MaxOversample; otherwise the setting is left
// unchanged and an error matching ErrInvalidOversampling is returned.
func (s *PackSurface) SetOversampling(h, v int) error {
	if err := checkOversampling(h, v); err != nil {
		return err
	}
	s.hOversample, s.vOversample = h, v
	return nil
}

// Oversampling returns the current oversampling factors.
func (s *PackSurface) Oversampling() (h, v int) {
	return s.hOversample, s.vOversample
}

// SetSkipMissingCodepoints controls whether later packs skip codepoints
// that have no glyph in the font. Skipped entries are empty and reported
// by PackedGlyphTable.Missing.
func (s *PackSurface) SetSkipMissingCodepoints(skip bool) {
	s.skipMissing = skip
}

// SkipMissingCodepoints reports whether missing codepoints are skipped.
func (s *PackSurface) SkipMissingCodepoints() bool { return s.skipMissing }

// Width returns the bitmap width in pixels.
func (s *PackSurface) Width() int { return s.width }

// Height returns the bitmap height in pixels.
func (s *PackSurface) Height() int { return s.height }

// Stride returns the distance between bitmap rows in bytes.
func (s *PackSurface) Stride() int { return s.stride }

// Padding returns the spacing kept between glyphs.
func (s *PackSurface) Padding() int { return s.padding }

// Heuristic returns the rectangle allocator in use.
func (s *PackSurface) Heuristic() rectpack.Heuristic { return s.heuristic }

// Bitmap returns an image view over the caller's buffer. The view shares
// memory with the buffer.
func (s *PackSurface) Bitmap() *image.Gray {
	return &image.Gray{
		Pix:    s.pixels[:s.stride*(s.height-1)+s.width],
		Stride: s.stride,
		Rect:   image.Rect(0, 0, s.width, s.height),
	}
}

// Utilization returns the fraction of the usable area covered by packed
// glyph rectangles.
func (s *PackSurface) Utilization() float64 {
	if s.ended {
		return s.utilization
	}
	return s.alloc.Utilization()
}

// End finishes packing and releases the allocator. Later packs fail with
// ErrSurfaceEnded. The bitmap buffer is not touched. End is idempotent.
func (s *PackSurface) End() error {
	if s.ended {
		return nil
	}
	s.utilization = s.alloc.Utilization()
	s.alloc.Reset()
	s.alloc = nil
	s.ended = true
	Logger().Info("pack surface ended", "utilization", s.utilization)
	return nil
}
