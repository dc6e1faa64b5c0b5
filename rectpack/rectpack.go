package rectpack

import (
	"cmp"
	"fmt"
	"slices"
)

// Rect is a rectangle to place. W and H are inputs; X, Y and Packed are
// set by Allocator.Pack. Unplaced rectangles keep Packed false and
// X = Y = -1.
type Rect struct {
	ID   int
	W, H int
	X, Y int

	Packed bool
}

// Empty reports whether r has no area. Empty rectangles are always
// placed at the origin.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Allocator places batches of rectangles into a bin.
type Allocator interface {
	// Pack places as many of rects as fit, updating them in place.
	// It returns true if every rectangle was placed. Space used by
	// earlier calls stays used.
	Pack(rects []Rect) bool

	// Reset forgets all placements.
	Reset()

	// Utilization returns the fraction of the bin covered by placed
	// rectangles, from 0 to 1.
	Utilization() float64
}

// Heuristic selects an allocator.
type Heuristic int

const (
	// Skyline is the bottom-left skyline allocator.
	Skyline Heuristic = iota

	// Shelf is the row-based shelf allocator.
	Shelf
)

// String returns the heuristic name.
func (h Heuristic) String() string {
	switch h {
	case Skyline:
		return "skyline"
	case Shelf:
		return "shelf"
	default:
		return fmt.Sprintf("Heuristic(%d)", int(h))
	}
}

// ParseHeuristic returns the heuristic named s.
func ParseHeuristic(s string) (Heuristic, error) {
	switch s {
	case "skyline", "":
		return Skyline, nil
	case "shelf":
		return Shelf, nil
	}
	return 0, fmt.Errorf("rectpack: unknown heuristic %q", s)
}

// New returns an allocator for a width x height bin. Unknown heuristics
// fall back to Skyline.
func New(h Heuristic, width, height int) Allocator {
	if h == Shelf {
		return NewShelf(width, height)
	}
	return NewSkyline(width, height)
}

// packOrder returns the indices of rects in placement order: height
// descending, then width descending, then index ascending.
func packOrder(rects []Rect) []int {
	order := make([]int, len(rects))
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int {
		ra, rb := rects[a], rects[b]
		if c := cmp.Compare(rb.H, ra.H); c != 0 {
			return c
		}
		if c := cmp.Compare(rb.W, ra.W); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	return order
}

// packBatch runs place over rects in packOrder. place returns the
// position of a non-empty rectangle or ok=false.
func packBatch(rects []Rect, place func(w, h int) (x, y int, ok bool)) (usedArea int, all bool) {
	all = true
	for _, i := range packOrder(rects) {
		r := &rects[i]
		if r.Empty() {
			r.X, r.Y, r.Packed = 0, 0, true
			continue
		}
		x, y, ok := place(r.W, r.H)
		if !ok {
			r.X, r.Y, r.Packed = -1, -1, false
			all = false
			continue
		}
		r.X, r.Y, r.Packed = x, y, true
		usedArea += r.W * r.H
	}
	return usedArea, all
}

func utilization(used, width, height int) float64 {
	if width <= 0 || height <= 0 {
		return 0
	}
	return float64(used) / float64(width*height)
}
