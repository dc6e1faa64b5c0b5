package fontsrc

// GlyphID is a font-internal glyph index. Glyph 0 is .notdef.
type GlyphID uint16

// Box is an integer rectangle. Font-unit boxes have the Y axis pointing up;
// bitmap boxes produced by the packer have it pointing down.
type Box struct {
	X0, Y0, X1, Y1 int
}

// Width returns X1 - X0.
func (b Box) Width() int { return b.X1 - b.X0 }

// Height returns Y1 - Y0.
func (b Box) Height() int { return b.Y1 - b.Y0 }

// Empty reports whether the box has no area.
func (b Box) Empty() bool { return b.X1 <= b.X0 || b.Y1 <= b.Y0 }

// Overlaps reports whether two boxes share any area.
func (b Box) Overlaps(o Box) bool {
	if b.Empty() || o.Empty() {
		return false
	}
	return b.X0 < o.X1 && o.X0 < b.X1 && b.Y0 < o.Y1 && o.Y0 < b.Y1
}

// VMetrics holds the font-wide vertical metrics in font units.
// Descent is typically negative.
type VMetrics struct {
	Ascent, Descent, LineGap int
}

// HMetrics holds a glyph's horizontal metrics in font units.
type HMetrics struct {
	AdvanceWidth, LeftSideBearing int
}

// Point is an outline coordinate in font units.
type Point struct {
	X, Y float32
}

// SegmentOp is the type of path operation.
type SegmentOp uint8

const (
	// SegmentOpMoveTo starts a new contour.
	SegmentOpMoveTo SegmentOp = iota

	// SegmentOpLineTo draws a line to Args[0].
	SegmentOpLineTo

	// SegmentOpQuadTo draws a quadratic Bézier with control Args[0] to Args[1].
	SegmentOpQuadTo

	// SegmentOpCubeTo draws a cubic Bézier with controls Args[0], Args[1] to Args[2].
	SegmentOpCubeTo
)

// String returns a string representation of the operation.
func (op SegmentOp) String() string {
	switch op {
	case SegmentOpMoveTo:
		return "MoveTo"
	case SegmentOpLineTo:
		return "LineTo"
	case SegmentOpQuadTo:
		return "QuadTo"
	case SegmentOpCubeTo:
		return "CubeTo"
	default:
		return "Unknown"
	}
}

// NumArgs returns how many of Args the operation uses.
func (op SegmentOp) NumArgs() int {
	switch op {
	case SegmentOpQuadTo:
		return 2
	case SegmentOpCubeTo:
		return 3
	default:
		return 1
	}
}

// Segment is one path operation of a glyph outline.
type Segment struct {
	Op   SegmentOp
	Args [3]Point
}

// Outline is the vector shape of a glyph in font units, Y up.
// Contours are implicitly closed at each MoveTo and at the end.
type Outline struct {
	Segments []Segment
}

// IsEmpty reports whether the outline has no segments.
func (o Outline) IsEmpty() bool {
	return len(o.Segments) == 0
}

// Bounds returns the box enclosing every point of the outline, control
// points included, rounded outward to integers. ok is false for an empty
// outline.
func (o Outline) Bounds() (b Box, ok bool) {
	if o.IsEmpty() {
		return Box{}, false
	}
	minX, minY := float32(1e9), float32(1e9)
	maxX, maxY := float32(-1e9), float32(-1e9)
	for _, seg := range o.Segments {
		for _, p := range seg.Args[:seg.Op.NumArgs()] {
			minX = min(minX, p.X)
			minY = min(minY, p.Y)
			maxX = max(maxX, p.X)
			maxY = max(maxY, p.Y)
		}
	}
	return Box{
		X0: floorInt(minX),
		Y0: floorInt(minY),
		X1: ceilInt(maxX),
		Y1: ceilInt(maxY),
	}, true
}

func floorInt(v float32) int {
	i := int(v)
	if float32(i) > v {
		i--
	}
	return i
}

func ceilInt(v float32) int {
	i := int(v)
	if float32(i) < v {
		i++
	}
	return i
}
