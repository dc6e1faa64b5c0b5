package glyphpack

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/glyphpack/rectpack"
)

func TestPackBeginErrors(t *testing.T) {
	buf := make([]byte, 64*64)
	tests := []struct {
		name                           string
		pixels                         []byte
		width, height, stride, padding int
		opts                           []SurfaceOption
	}{
		{"zero width", buf, 0, 64, 0, 0, nil},
		{"negative height", buf, 64, -1, 0, 0, nil},
		{"negative padding", buf, 64, 64, 0, -1, nil},
		{"padding eats width", buf, 4, 64, 0, 4, nil},
		{"padding eats height", buf, 64, 2, 0, 3, nil},
		{"stride below width", buf, 64, 64, 32, 0, nil},
		{"buffer too small", buf[:64*63], 64, 64, 0, 0, nil},
		{"strided buffer too small", buf[:64*63], 32, 64, 64, 0, nil},
		{"stride overflows", buf[:16], 1, 3, math.MaxInt/2 + 1, 0, nil},
		{"buffer shorter than a row", buf[:3], 4, 1, 0, 0, nil},
		{"bad oversampling", buf, 64, 64, 0, 0, []SurfaceOption{WithOversampling(9, 1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := PackBegin(tt.pixels, tt.width, tt.height, tt.stride, tt.padding, tt.opts...)
			if !errors.Is(err, ErrInitFailure) {
				t.Errorf("PackBegin() error = %v, want ErrInitFailure", err)
			}
			var ce *ConfigError
			if !errors.As(err, &ce) {
				t.Errorf("PackBegin() error %T is not a *ConfigError", err)
			}
			if s != nil {
				t.Error("PackBegin() returned a surface on failure")
			}
		})
	}
}

func TestPackBeginClearsBitmapOnly(t *testing.T) {
	const w, h, stride = 8, 4, 10
	buf := make([]byte, stride*h)
	for i := range buf {
		buf[i] = 0xAA
	}
	s, err := PackBegin(buf, w, h, stride, 0)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < stride; x++ {
			v := buf[y*stride+x]
			if x < w && v != 0 {
				t.Fatalf("pixel (%d,%d) = %#x, want cleared", x, y, v)
			}
			if x >= w && v != 0xAA {
				t.Fatalf("row padding (%d,%d) = %#x, want untouched", x, y, v)
			}
		}
	}
	if s.Stride() != stride || s.Width() != w || s.Height() != h || s.Padding() != 0 {
		t.Errorf("accessors = %d %d %d %d", s.Width(), s.Height(), s.Stride(), s.Padding())
	}
	img := s.Bitmap()
	if img.Bounds().Dx() != w || img.Bounds().Dy() != h || img.Stride != stride {
		t.Errorf("Bitmap() = %v stride %d", img.Bounds(), img.Stride)
	}
	// The view shares memory with the buffer.
	buf[stride+3] = 7
	if img.GrayAt(3, 1).Y != 7 {
		t.Error("Bitmap() does not alias the caller buffer")
	}
}

func TestPackBeginZeroStride(t *testing.T) {
	s, err := PackBegin(make([]byte, 16*8), 16, 8, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if s.Stride() != 16 {
		t.Errorf("Stride() = %d, want width", s.Stride())
	}
}

func TestSetOversampling(t *testing.T) {
	s, err := PackBegin(make([]byte, 16*16), 16, 16, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if h, v := s.Oversampling(); h != 1 || v != 1 {
		t.Errorf("default Oversampling() = %d, %d", h, v)
	}
	if err := s.SetOversampling(3, 2); err != nil {
		t.Fatalf("SetOversampling(3, 2) error = %v", err)
	}
	for _, bad := range [][2]int{{0, 1}, {1, 0}, {9, 1}, {1, 9}, {-2, -2}} {
		if err := s.SetOversampling(bad[0], bad[1]); !errors.Is(err, ErrInvalidOversampling) {
			t.Errorf("SetOversampling(%v) error = %v, want ErrInvalidOversampling", bad, err)
		}
	}
	if h, v := s.Oversampling(); h != 3 || v != 2 {
		t.Errorf("Oversampling() = %d, %d after rejected calls, want 3, 2", h, v)
	}
	if err := s.SetOversampling(MaxOversample, MaxOversample); err != nil {
		t.Errorf("SetOversampling(max) error = %v", err)
	}
}

func TestSurfaceOptions(t *testing.T) {
	s, err := PackBegin(make([]byte, 32*32), 32, 32, 0, 1,
		WithHeuristic(rectpack.Shelf),
		WithOversampling(2, 3),
		WithSkipMissingCodepoints(),
	)
	if err != nil {
		t.Fatal(err)
	}
	if s.Heuristic() != rectpack.Shelf {
		t.Errorf("Heuristic() = %v", s.Heuristic())
	}
	if h, v := s.Oversampling(); h != 2 || v != 3 {
		t.Errorf("Oversampling() = %d, %d", h, v)
	}
	if !s.SkipMissingCodepoints() {
		t.Error("SkipMissingCodepoints() = false")
	}
	s.SetSkipMissingCodepoints(false)
	if s.SkipMissingCodepoints() {
		t.Error("SetSkipMissingCodepoints(false) had no effect")
	}
}

func TestEndIdempotent(t *testing.T) {
	f := testFont(t)
	buf := make([]byte, 128*128)
	s, err := PackBegin(buf, 128, 128, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.PackFontRange(f, PixelHeight(16), 'a', 5); err != nil {
		t.Fatal(err)
	}
	u := s.Utilization()
	if u <= 0 || u > 1 {
		t.Fatalf("Utilization() = %v", u)
	}
	snapshot := append([]byte(nil), buf...)

	if err := s.End(); err != nil {
		t.Fatalf("End() error = %v", err)
	}
	if err := s.End(); err != nil {
		t.Fatalf("second End() error = %v", err)
	}
	if s.Utilization() != u {
		t.Errorf("Utilization() after End = %v, want %v", s.Utilization(), u)
	}
	if _, err := s.PackFontRanges(f, PackRange{Size: PixelHeight(16), FirstCodepoint: 'x', Count: 1}); !errors.Is(err, ErrSurfaceEnded) {
		t.Errorf("pack after End error = %v, want ErrSurfaceEnded", err)
	}
	if string(buf) != string(snapshot) {
		t.Error("End modified the caller buffer")
	}
}
