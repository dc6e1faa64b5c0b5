package raster

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/glyphpack/fontsrc"
)

// MaxKernel is the widest box filter supported by the prefilters.
const MaxKernel = 8

// Rasterizer renders outlines into strided bitmaps. Its scratch buffers
// are reused between calls. A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	z       vector.Rasterizer
	scratch *image.Alpha
}

// Rasterize renders outline into the w x h region at the start of dst,
// whose rows are stride bytes apart.
//
// Outline points (Y up, font units) map to bitmap pixels as
//
//	px = x*sx + shiftX - offX
//	py = -y*sy + shiftY - offY
//
// so (offX, offY) is the glyph's bitmap box origin as returned by
// BitmapBox. Bytes outside the region are not touched; bytes inside are
// overwritten.
func (r *Rasterizer) Rasterize(dst []byte, w, h, stride int, outline fontsrc.Outline, sx, sy, shiftX, shiftY float32, offX, offY int) {
	if w <= 0 || h <= 0 {
		return
	}

	// vector.Rasterizer writes contiguous rows, so render into a scratch
	// mask and copy it into the strided destination afterwards.
	mask := r.mask(w, h)
	if !outline.IsEmpty() {
		r.z.Reset(w, h)
		r.z.DrawOp = draw.Src

		dx := shiftX - float32(offX)
		dy := shiftY - float32(offY)
		pt := func(p fontsrc.Point) (float32, float32) {
			return p.X*sx + dx, -p.Y*sy + dy
		}

		open := false
		for _, s := range outline.Segments {
			switch s.Op {
			case fontsrc.SegmentOpMoveTo:
				if open {
					r.z.ClosePath()
				}
				r.z.MoveTo(pt(s.Args[0]))
				open = true
			case fontsrc.SegmentOpLineTo:
				r.z.LineTo(pt(s.Args[0]))
			case fontsrc.SegmentOpQuadTo:
				bx, by := pt(s.Args[0])
				cx, cy := pt(s.Args[1])
				r.z.QuadTo(bx, by, cx, cy)
			case fontsrc.SegmentOpCubeTo:
				bx, by := pt(s.Args[0])
				cx, cy := pt(s.Args[1])
				ex, ey := pt(s.Args[2])
				r.z.CubeTo(bx, by, cx, cy, ex, ey)
			}
		}
		if open {
			r.z.ClosePath()
		}
		r.z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	}

	for y := 0; y < h; y++ {
		copy(dst[y*stride:y*stride+w], mask.Pix[y*mask.Stride:y*mask.Stride+w])
	}
}

// mask returns a cleared w x h scratch image.
func (r *Rasterizer) mask(w, h int) *image.Alpha {
	if r.scratch == nil || cap(r.scratch.Pix) < w*h {
		r.scratch = image.NewAlpha(image.Rect(0, 0, w, h))
		return r.scratch
	}
	r.scratch.Pix = r.scratch.Pix[:w*h]
	clear(r.scratch.Pix)
	r.scratch.Stride = w
	r.scratch.Rect = image.Rect(0, 0, w, h)
	return r.scratch
}

// BitmapBox returns the pixel-space bounding box (Y down) that covers box
// once scaled by (sx, sy) and shifted by (shiftX, shiftY). It returns all
// zeros when ok is false, which is how glyphs without contours report.
func BitmapBox(box fontsrc.Box, ok bool, sx, sy, shiftX, shiftY float32) (x0, y0, x1, y1 int) {
	if !ok {
		return 0, 0, 0, 0
	}
	x0 = floor(float32(box.X0)*sx + shiftX)
	y0 = floor(-float32(box.Y1)*sy + shiftY)
	x1 = ceil(float32(box.X1)*sx + shiftX)
	y1 = ceil(-float32(box.Y0)*sy + shiftY)
	return x0, y0, x1, y1
}

// OversampleShift returns the offset, in target pixels, that recenters a
// glyph rendered at n times the target resolution and box filtered with a
// kernel of width n.
func OversampleShift(n int) float32 {
	if n <= 0 {
		return 0
	}
	// The filter spreads each source pixel over n-1 extra samples; move
	// back by half of that, in units of the oversampled grid.
	return -float32(n-1) / (2 * float32(n))
}

func floor(v float32) int { return int(math.Floor(float64(v))) }
func ceil(v float32) int  { return int(math.Ceil(float64(v))) }
