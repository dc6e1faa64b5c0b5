package rectpack

// SkylineAllocator implements bottom-left skyline packing.
//
// The skyline is a list of horizontal segments sorted by X; each segment
// runs from its X to the next segment's X (or the bin width) at height Y.
// A rectangle is tried at the start of every segment and placed where its
// bottom edge, the highest skyline point under it, is lowest. Ties go to
// the leftmost candidate.
type SkylineAllocator struct {
	width    int
	height   int
	skyline  []segment
	usedArea int
}

type segment struct {
	x, y int
}

// NewSkyline creates a skyline allocator for a width x height bin.
func NewSkyline(width, height int) *SkylineAllocator {
	return &SkylineAllocator{
		width:   width,
		height:  height,
		skyline: make([]segment, 1, 64),
	}
}

// Pack implements Allocator.Pack.
func (a *SkylineAllocator) Pack(rects []Rect) bool {
	used, all := packBatch(rects, a.place)
	a.usedArea += used
	return all
}

// Reset implements Allocator.Reset.
func (a *SkylineAllocator) Reset() {
	a.skyline = append(a.skyline[:0], segment{})
	a.usedArea = 0
}

// Utilization implements Allocator.Utilization.
func (a *SkylineAllocator) Utilization() float64 {
	return utilization(a.usedArea, a.width, a.height)
}

// Segments returns the number of skyline segments.
func (a *SkylineAllocator) Segments() int {
	return len(a.skyline)
}

// restingY returns the Y at which a rectangle of width w starting at
// segment i would rest.
func (a *SkylineAllocator) restingY(i, w int) int {
	x1 := a.skyline[i].x + w
	y := 0
	for j := i; j < len(a.skyline) && a.skyline[j].x < x1; j++ {
		if a.skyline[j].y > y {
			y = a.skyline[j].y
		}
	}
	return y
}

func (a *SkylineAllocator) place(w, h int) (x, y int, ok bool) {
	if w > a.width || h > a.height || a.width <= 0 {
		return -1, -1, false
	}

	best, bestY := -1, a.height
	for i, s := range a.skyline {
		if s.x+w > a.width {
			break
		}
		if y := a.restingY(i, w); y < bestY {
			best, bestY = i, y
		}
	}
	if best < 0 || bestY+h > a.height {
		return -1, -1, false
	}

	x = a.skyline[best].x
	a.raise(best, x, x+w, bestY+h)
	return x, bestY, true
}

// raise sets the skyline over [x0, x1) to y. Segment i starts at x0.
func (a *SkylineAllocator) raise(i, x0, x1, y int) {
	// Height of the skyline just right of x1, kept as a new segment start.
	j := i
	for j+1 < len(a.skyline) && a.skyline[j+1].x < x1 {
		j++
	}
	tailY := a.skyline[j].y

	out := make([]segment, 0, len(a.skyline)+1)
	out = append(out, a.skyline[:i]...)
	out = append(out, segment{x: x0, y: y})
	rest := a.skyline[j+1:]
	if x1 < a.width && (len(rest) == 0 || rest[0].x != x1) {
		out = append(out, segment{x: x1, y: tailY})
	}
	out = append(out, rest...)
	a.skyline = out
}
