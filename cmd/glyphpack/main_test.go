package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func writeFont(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "goregular.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun(t *testing.T) {
	font := writeFont(t)
	out := filepath.Join(t.TempDir(), "atlas.png")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-font", font, "-px", "20", "-first", "65", "-count", "3", "-width", "128", "-height", "64", "-oversample", "2x1", "-list", "-out", out}, &stdout, &stderr)
	if code != exitOK {
		t.Fatalf("run() = %d, stderr:\n%s", code, stderr.String())
	}
	for _, want := range []string{"U+0041 LATIN CAPITAL LETTER A", "U+0043 LATIN CAPITAL LETTER C", "3 glyphs"} {
		if !strings.Contains(stdout.String(), want) {
			t.Errorf("stdout missing %q:\n%s", want, stdout.String())
		}
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 128 || b.Dy() != 64 {
		t.Errorf("atlas is %v, want 128x64", b)
	}
}

func TestRunExhausted(t *testing.T) {
	font := writeFont(t)
	out := filepath.Join(t.TempDir(), "small.png")
	var stdout, stderr bytes.Buffer
	code := run([]string{"-font", font, "-px", "40", "-width", "32", "-height", "32", "-out", out}, &stdout, &stderr)
	if code != exitExhausted {
		t.Fatalf("run() = %d, want %d; stderr:\n%s", code, exitExhausted, stderr.String())
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("partial atlas not written: %v", err)
	}
}

func TestRunErrors(t *testing.T) {
	font := writeFont(t)
	tests := []struct {
		name string
		args []string
	}{
		{"no font", []string{}},
		{"both sizes", []string{"-font", font, "-px", "10", "-pt", "10"}},
		{"bad oversample", []string{"-font", font, "-oversample", "2"}},
		{"oversample too large", []string{"-font", font, "-oversample", "9x1", "-out", ""}},
		{"bad heuristic", []string{"-font", font, "-heuristic", "guillotine"}},
		{"bad parser", []string{"-font", font, "-parser", "nope"}},
		{"negative width", []string{"-font", font, "-width", "-8", "-height", "8", "-out", ""}},
		{"zero height", []string{"-font", font, "-height", "0", "-out", ""}},
		{"huge width", []string{"-font", font, "-width", "4611686018427387904", "-out", ""}},
		{"negative padding", []string{"-font", font, "-padding", "-1", "-out", ""}},
		{"bad index", []string{"-font", font, "-index", "3"}},
		{"missing file", []string{"-font", filepath.Join(t.TempDir(), "none.ttf")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(tt.args, &stdout, &stderr); code != exitFailure {
				t.Errorf("run() = %d, want %d", code, exitFailure)
			}
		})
	}
}

func TestParseOversample(t *testing.T) {
	h, v, err := parseOversample("3x2")
	if err != nil || h != 3 || v != 2 {
		t.Errorf("parseOversample(3x2) = %d, %d, %v", h, v, err)
	}
	if _, _, err := parseOversample("x"); err == nil {
		t.Error("parseOversample(x) succeeded")
	}
}
