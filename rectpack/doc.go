// Package rectpack places rectangles inside a fixed-size bin.
//
// Two allocators are provided. The skyline allocator keeps the upper
// envelope of everything placed so far and puts each rectangle at the
// bottom-left-most position on it. The shelf allocator fills horizontal
// rows whose height is set by their tallest rectangle.
//
// Both allocators take a whole batch at once, order it by height then
// width (largest first, ties by caller index), and hand results back in
// caller order. The same batch on the same bin always yields the same
// placement.
package rectpack
