package glyphpack

import (
	"fmt"
	"math"
)

// SizeMode tells how a FontSize value is turned into a scale.
type SizeMode int

const (
	// SizePixelHeight scales so that ascent minus descent spans the value
	// in pixels.
	SizePixelHeight SizeMode = iota

	// SizePoints scales so that one em spans the value in pixels.
	SizePoints
)

// String returns the mode name.
func (m SizeMode) String() string {
	switch m {
	case SizePixelHeight:
		return "px"
	case SizePoints:
		return "pt"
	default:
		return fmt.Sprintf("SizeMode(%d)", int(m))
	}
}

// FontSize is a glyph size for packing. Build one with PixelHeight or
// Points.
type FontSize struct {
	mode  SizeMode
	value float32
}

// PixelHeight returns a size whose ascent-to-descent span is px pixels.
func PixelHeight(px float32) FontSize {
	return FontSize{mode: SizePixelHeight, value: px}
}

// Points returns a size whose em square is pt pixels.
func Points(pt float32) FontSize {
	return FontSize{mode: SizePoints, value: pt}
}

// Mode returns how the size is interpreted.
func (s FontSize) Mode() SizeMode { return s.mode }

// Value returns the size in pixels.
func (s FontSize) Value() float32 { return s.value }

// Scale returns the factor from font units to pixels for f.
func (s FontSize) Scale(f *Font) float32 {
	return scaleForEncoded(f, s.encode())
}

func (s FontSize) String() string {
	return fmt.Sprintf("%g%s", s.value, s.mode)
}

func (s FontSize) valid() bool {
	v := float64(s.value)
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// encode returns the signed size used by the packer: positive for a
// pixel height, negated for an em size.
func (s FontSize) encode() float32 {
	if s.mode == SizePoints {
		return -s.value
	}
	return s.value
}

// scaleForEncoded decodes a signed size from encode.
func scaleForEncoded(f *Font, size float32) float32 {
	if size > 0 {
		return f.ScaleForPixelHeight(size)
	}
	return f.ScaleForEm(-size)
}

// PackRange describes a run of codepoints to pack at one size.
//
// When Codepoints is non-nil it lists the codepoints explicitly and
// FirstCodepoint and Count are ignored.
type PackRange struct {
	Size           FontSize
	FirstCodepoint rune
	Count          int
	Codepoints     []rune
}

// Len returns the number of codepoints in the range.
func (r PackRange) Len() int {
	if r.Codepoints != nil {
		return len(r.Codepoints)
	}
	return r.Count
}

// Codepoint returns the i'th codepoint of the range. i must be in
// [0, Len()).
func (r PackRange) Codepoint(i int) rune {
	if r.Codepoints != nil {
		return r.Codepoints[i]
	}
	return r.FirstCodepoint + rune(i)
}

func (r PackRange) validate(index int) error {
	if r.Codepoints == nil && r.Count < 0 {
		return &ConfigError{Field: fmt.Sprintf("range[%d].Count", index), Value: r.Count, Reason: "must be non-negative", Err: ErrInvalidRange}
	}
	if !r.Size.valid() {
		return &ConfigError{Field: fmt.Sprintf("range[%d].Size", index), Value: r.Size.value, Reason: "must be positive and finite", Err: ErrInvalidRange}
	}
	return nil
}
