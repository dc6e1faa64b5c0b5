// Command glyphpack packs a range of glyphs from a font into a PNG atlas.
//
// Usage:
//
//	glyphpack -font DejaVuSans.ttf -px 32 -first 32 -count 95 -out atlas.png
//	glyphpack -font "Go Regular" -pt 14 -oversample 2x2 -list
//
// -font takes a path or a font name looked up in the system font
// directories. The exit status is 1 for bad input and 2 when the atlas is
// too small; in that case the partial atlas is still written.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/flopp/go-findfont"
	"golang.org/x/text/unicode/runenames"

	"github.com/gogpu/glyphpack"
	"github.com/gogpu/glyphpack/fontsrc"
	"github.com/gogpu/glyphpack/rectpack"
)

const (
	exitOK        = 0
	exitFailure   = 1
	exitExhausted = 2
)

// maxDimension bounds -width and -height so the atlas buffer size cannot
// overflow.
const maxDimension = 1 << 14

func main() {
	log.SetFlags(0)
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type config struct {
	font        string
	index       int
	parser      string
	px, pt      float64
	first       int
	count       int
	width       int
	height      int
	padding     int
	oversample  string
	skipMissing bool
	heuristic   string
	out         string
	list        bool
	verbose     bool
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	var c config
	fs := flag.NewFlagSet("glyphpack", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&c.font, "font", "", "font file path or font name")
	fs.IntVar(&c.index, "index", 0, "font index within a collection")
	fs.StringVar(&c.parser, "parser", fontsrc.DefaultParser, "font parser ("+strings.Join(fontsrc.Parsers(), ", ")+")")
	fs.Float64Var(&c.px, "px", 0, "size as pixel height (ascent to descent)")
	fs.Float64Var(&c.pt, "pt", 0, "size as em height in pixels")
	fs.IntVar(&c.first, "first", 32, "first codepoint")
	fs.IntVar(&c.count, "count", 95, "number of codepoints")
	fs.IntVar(&c.width, "width", 512, "atlas width")
	fs.IntVar(&c.height, "height", 512, "atlas height")
	fs.IntVar(&c.padding, "padding", 1, "pixels between glyphs")
	fs.StringVar(&c.oversample, "oversample", "1x1", "oversampling as HxV")
	fs.BoolVar(&c.skipMissing, "skip-missing", false, "skip codepoints the font lacks")
	fs.StringVar(&c.heuristic, "heuristic", "skyline", "rectangle packer (skyline, shelf)")
	fs.StringVar(&c.out, "out", "atlas.png", "output PNG (empty to skip)")
	fs.BoolVar(&c.list, "list", false, "print the packed glyph table")
	fs.BoolVar(&c.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	switch {
	case c.font == "":
		return nil, errors.New("-font is required")
	case c.px > 0 && c.pt > 0:
		return nil, errors.New("-px and -pt are mutually exclusive")
	case c.width <= 0 || c.width > maxDimension:
		return nil, fmt.Errorf("-width %d out of range 1..%d", c.width, maxDimension)
	case c.height <= 0 || c.height > maxDimension:
		return nil, fmt.Errorf("-height %d out of range 1..%d", c.height, maxDimension)
	case c.padding < 0:
		return nil, fmt.Errorf("-padding %d must be non-negative", c.padding)
	case c.px <= 0 && c.pt <= 0:
		c.px = 32
	}
	return &c, nil
}

func (c *config) size() glyphpack.FontSize {
	if c.pt > 0 {
		return glyphpack.Points(float32(c.pt))
	}
	return glyphpack.PixelHeight(float32(c.px))
}

func parseOversample(s string) (h, v int, err error) {
	if _, err := fmt.Sscanf(s, "%dx%d", &h, &v); err != nil {
		return 0, 0, fmt.Errorf("bad -oversample %q: want HxV", s)
	}
	return h, v, nil
}

// resolveFont returns the font file for name: the path itself if it
// exists, otherwise a match from the system font directories.
func resolveFont(name string) (string, error) {
	path, err := findfont.Find(name)
	if err != nil {
		return "", fmt.Errorf("font %q not found: %w", name, err)
	}
	return path, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "glyphpack: ", 0)

	c, err := parseFlags(args, stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			logger.Print(err)
		}
		return exitFailure
	}
	if c.verbose {
		glyphpack.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer glyphpack.SetLogger(nil)
	}

	h, v, err := parseOversample(c.oversample)
	if err != nil {
		logger.Print(err)
		return exitFailure
	}
	heuristic, err := rectpack.ParseHeuristic(c.heuristic)
	if err != nil {
		logger.Print(err)
		return exitFailure
	}

	path, err := resolveFont(c.font)
	if err != nil {
		logger.Print(err)
		return exitFailure
	}
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Print(err)
		return exitFailure
	}
	offset := glyphpack.FontOffsetForIndex(data, c.index)
	font, err := glyphpack.InitFont(data, offset, glyphpack.WithParser(c.parser))
	if err != nil {
		logger.Printf("%s: %v", path, err)
		return exitFailure
	}

	opts := []glyphpack.SurfaceOption{
		glyphpack.WithHeuristic(heuristic),
		glyphpack.WithOversampling(h, v),
	}
	if c.skipMissing {
		opts = append(opts, glyphpack.WithSkipMissingCodepoints())
	}
	pixels := make([]byte, c.width*c.height)
	surface, err := glyphpack.PackBegin(pixels, c.width, c.height, 0, c.padding, opts...)
	if err != nil {
		logger.Print(err)
		return exitFailure
	}
	defer surface.End()

	table, err := surface.PackFontRange(font, c.size(), rune(c.first), c.count)
	status := exitOK
	switch {
	case errors.Is(err, glyphpack.ErrPackingExhausted):
		logger.Print(err)
		status = exitExhausted
	case err != nil:
		logger.Print(err)
		return exitFailure
	}

	if c.list {
		printTable(stdout, table, c.width, c.height)
	}
	if c.out != "" {
		if err := writePNG(c.out, surface); err != nil {
			logger.Print(err)
			return exitFailure
		}
		fmt.Fprintf(stdout, "%s: %d glyphs from %s (%s) at %v, %.0f%% used\n",
			c.out, table.Count(), font.Name(), path, c.size(), 100*surface.Utilization())
	}
	return status
}

func printTable(w io.Writer, t *glyphpack.PackedGlyphTable, bw, bh int) {
	for i := 0; i < t.Count(); i++ {
		r, _ := t.Codepoint(i)
		b, _ := t.Box(i)
		m, _ := t.Metrics(i)
		missing, _ := t.Missing(i)

		name := runenames.Name(r)
		if missing {
			name += " (missing)"
		}
		fmt.Fprintf(w, "%U %-40s box=(%d,%d)-(%d,%d) off=(%.2f,%.2f) adv=%.2f\n",
			r, name, b.X0, b.Y0, b.X1, b.Y1, m.XOff, m.YOff, m.XAdvance)
	}
}

func writePNG(path string, s *glyphpack.PackSurface) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, s.Bitmap()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
