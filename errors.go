package glyphpack

import (
	"errors"
	"fmt"
)

// Sentinel errors for glyphpack.
var (
	// ErrInitFailure is returned when a font or pack surface cannot be
	// created. No handle is returned alongside it.
	ErrInitFailure = errors.New("glyphpack: initialization failed")

	// ErrPackingExhausted is returned when a pack call ran out of atlas
	// space. The returned tables are still valid for the glyphs that fit.
	ErrPackingExhausted = errors.New("glyphpack: atlas space exhausted")

	// ErrIndexOutOfRange is returned for table queries outside [0, Count()).
	ErrIndexOutOfRange = errors.New("glyphpack: index out of range")

	// ErrInvalidOversampling is returned for oversampling factors outside
	// 1..MaxOversample.
	ErrInvalidOversampling = errors.New("glyphpack: invalid oversampling")

	// ErrInvalidRange is returned for pack ranges with a negative count
	// or a non-positive size.
	ErrInvalidRange = errors.New("glyphpack: invalid pack range")

	// ErrSurfaceEnded is returned when packing into a surface after End.
	ErrSurfaceEnded = errors.New("glyphpack: pack surface ended")

	// ErrNilFont is returned when packing with a nil font.
	ErrNilFont = errors.New("glyphpack: nil font")
)

// IndexOutOfRangeError reports a table query outside [0, Count).
type IndexOutOfRangeError struct {
	Op    string
	Index int
	Count int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("glyphpack: %s: index %d out of range [0, %d)", e.Op, e.Index, e.Count)
}

// Is reports whether target is ErrIndexOutOfRange.
func (e *IndexOutOfRangeError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

// PackingExhaustedError reports how many glyphs of a pack call did not fit.
type PackingExhaustedError struct {
	Failed int
	Total  int
}

func (e *PackingExhaustedError) Error() string {
	return fmt.Sprintf("glyphpack: atlas space exhausted: %d of %d glyphs not packed", e.Failed, e.Total)
}

// Is reports whether target is ErrPackingExhausted.
func (e *PackingExhaustedError) Is(target error) bool {
	return target == ErrPackingExhausted
}

// ConfigError represents an invalid argument. Err is the sentinel the
// error matches with errors.Is.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("glyphpack: invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
