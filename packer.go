package glyphpack

import (
	"github.com/gogpu/glyphpack/fontsrc"
	"github.com/gogpu/glyphpack/raster"
	"github.com/gogpu/glyphpack/rectpack"
)

// packJob is one glyph of a PackFontRanges call.
type packJob struct {
	table *PackedGlyphTable
	slot  int
	glyph GlyphID
	scale float32
	skip  bool

	// Bitmap box at the oversampled scale.
	x0, y0 int
}

// PackFontRange packs count codepoints starting at first. It is
// PackFontRanges with a single range.
func (s *PackSurface) PackFontRange(font *Font, size FontSize, first rune, count int) (*PackedGlyphTable, error) {
	tables, err := s.PackFontRanges(font, PackRange{Size: size, FirstCodepoint: first, Count: count})
	if len(tables) == 0 {
		return nil, err
	}
	return tables[0], err
}

// PackFontRanges rasterizes every codepoint of ranges into the surface
// and returns one table per range, in order.
//
// All glyph rectangles of the call are allocated together, largest
// first. Glyphs without contours (such as spaces) take no space. If any
// glyph does not fit, the tables are still returned with that glyph's
// box empty, together with a *PackingExhaustedError.
//
// Packing is deterministic: the same surface state, font and ranges give
// the same boxes, metrics and pixels.
func (s *PackSurface) PackFontRanges(font *Font, ranges ...PackRange) ([]*PackedGlyphTable, error) {
	if s.ended {
		return nil, ErrSurfaceEnded
	}
	if font == nil {
		return nil, ErrNilFont
	}
	total := 0
	for i, r := range ranges {
		if err := r.validate(i); err != nil {
			return nil, err
		}
		total += r.Len()
	}

	tables := make([]*PackedGlyphTable, len(ranges))
	jobs := make([]packJob, 0, total)
	rects := make([]rectpack.Rect, 0, total)

	jobs, rects = s.gather(font, ranges, tables, jobs, rects)
	s.alloc.Pack(rects)
	failed := s.render(font, jobs, rects)

	attrs := []any{
		"font", font.Name(),
		"ranges", len(ranges),
		"glyphs", total,
		"oversample_h", s.hOversample,
		"oversample_v", s.vOversample,
		"utilization", s.alloc.Utilization(),
	}
	if cf, ok := font.parsed.(*fontsrc.CachedFont); ok {
		attrs = append(attrs, "cached_outlines", cf.CachedOutlines())
	}
	Logger().Debug("packed font ranges", attrs...)

	if failed > 0 {
		Logger().Warn("atlas space exhausted",
			"failed", failed,
			"glyphs", total,
			"width", s.width,
			"height", s.height)
		return tables, &PackingExhaustedError{Failed: failed, Total: total}
	}
	return tables, nil
}

// gather creates the tables and computes one rectangle per glyph.
func (s *PackSurface) gather(font *Font, ranges []PackRange, tables []*PackedGlyphTable, jobs []packJob, rects []rectpack.Rect) ([]packJob, []rectpack.Rect) {
	h, v := s.hOversample, s.vOversample
	for ri, r := range ranges {
		t := newPackedGlyphTable(r)
		tables[ri] = t
		scale := scaleForEncoded(font, r.Size.encode())

		for i := 0; i < r.Len(); i++ {
			job := packJob{
				table: t,
				slot:  i,
				glyph: font.GlyphIndex(r.Codepoint(i)),
				scale: scale,
			}
			rect := rectpack.Rect{ID: len(rects)}

			if job.glyph == 0 && s.skipMissing {
				job.skip = true
			} else {
				b := font.GlyphBitmapBox(job.glyph, scale*float32(h), scale*float32(v), 0, 0)
				job.x0, job.y0 = b.X0, b.Y0
				if !b.Empty() {
					rect.W = b.Width() + s.padding + h - 1
					rect.H = b.Height() + s.padding + v - 1
				}
			}
			jobs = append(jobs, job)
			rects = append(rects, rect)
		}
	}
	return jobs, rects
}

// render draws every placed glyph and fills in the table entries. It
// returns the number of glyphs that needed space but got none.
func (s *PackSurface) render(font *Font, jobs []packJob, rects []rectpack.Rect) (failed int) {
	h, v := s.hOversample, s.vOversample
	subX, subY := raster.OversampleShift(h), raster.OversampleShift(v)

	for k := range jobs {
		job := &jobs[k]
		r := rects[k]
		g := &job.table.glyphs[job.slot]

		if job.skip {
			g.missing = true
			continue
		}
		g.metrics.XAdvance = job.scale * float32(font.HMetrics(job.glyph).AdvanceWidth)

		if r.Empty() {
			g.metrics.XOff = float32(job.x0)/float32(h) + subX
			g.metrics.YOff = float32(job.y0)/float32(v) + subY
			g.metrics.XOff2, g.metrics.YOff2 = g.metrics.XOff, g.metrics.YOff
			continue
		}
		if !r.Packed {
			failed++
			continue
		}

		x, y := r.X+s.padding, r.Y+s.padding
		w, ht := r.W-s.padding, r.H-s.padding
		dst := s.pixels[y*s.stride+x:]

		outline, err := font.parsed.Outline(job.glyph)
		if err != nil {
			Logger().Warn("glyph not rendered", "glyph", job.glyph, "err", err)
		} else {
			s.raster.Rasterize(dst, w-h+1, ht-v+1, s.stride, outline,
				job.scale*float32(h), job.scale*float32(v), 0, 0, job.x0, job.y0)
		}
		raster.HPrefilter(dst, w, ht, s.stride, h)
		raster.VPrefilter(dst, w, ht, s.stride, v)

		g.box = Box{X0: x, Y0: y, X1: x + w, Y1: y + ht}
		g.metrics.XOff = float32(job.x0)/float32(h) + subX
		g.metrics.YOff = float32(job.y0)/float32(v) + subY
		g.metrics.XOff2 = float32(job.x0+w)/float32(h) + subX
		g.metrics.YOff2 = float32(job.y0+ht)/float32(v) + subY
	}
	return failed
}
