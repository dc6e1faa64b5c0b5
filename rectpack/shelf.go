package rectpack

// ShelfAllocator implements shelf-based rectangle packing.
//
// Rectangles are placed left to right on horizontal shelves. A shelf is as
// tall as its first (tallest, given the batch order) rectangle; when no
// shelf has room a new one is opened below the last.
type ShelfAllocator struct {
	width    int
	height   int
	shelves  []shelf
	usedArea int
}

type shelf struct {
	y      int // top edge
	height int
	x      int // next free column
}

// NewShelf creates a shelf allocator for a width x height bin.
func NewShelf(width, height int) *ShelfAllocator {
	return &ShelfAllocator{
		width:   width,
		height:  height,
		shelves: make([]shelf, 0, 16),
	}
}

// Pack implements Allocator.Pack.
func (a *ShelfAllocator) Pack(rects []Rect) bool {
	used, all := packBatch(rects, a.place)
	a.usedArea += used
	return all
}

// Reset implements Allocator.Reset.
func (a *ShelfAllocator) Reset() {
	a.shelves = a.shelves[:0]
	a.usedArea = 0
}

// Utilization implements Allocator.Utilization.
func (a *ShelfAllocator) Utilization() float64 {
	return utilization(a.usedArea, a.width, a.height)
}

// ShelfCount returns the number of shelves opened so far.
func (a *ShelfAllocator) ShelfCount() int {
	return len(a.shelves)
}

func (a *ShelfAllocator) place(w, h int) (x, y int, ok bool) {
	if w > a.width || h > a.height {
		return -1, -1, false
	}

	for i := range a.shelves {
		s := &a.shelves[i]
		if s.x+w > a.width {
			continue
		}
		if h > s.height {
			// Only the last shelf can grow, and only into free space.
			if i != len(a.shelves)-1 || s.y+h > a.height {
				continue
			}
			s.height = h
		}
		x, y = s.x, s.y
		s.x += w
		return x, y, true
	}

	newY := 0
	if n := len(a.shelves); n > 0 {
		last := a.shelves[n-1]
		newY = last.y + last.height
	}
	if newY+h > a.height {
		return -1, -1, false
	}
	a.shelves = append(a.shelves, shelf{y: newY, height: h, x: w})
	return 0, newY, true
}
