package rectpack

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func rects(sizes ...[2]int) []Rect {
	out := make([]Rect, len(sizes))
	for i, s := range sizes {
		out[i] = Rect{ID: i, W: s[0], H: s[1]}
	}
	return out
}

func positions(rs []Rect) [][2]int {
	out := make([][2]int, len(rs))
	for i, r := range rs {
		out[i] = [2]int{r.X, r.Y}
	}
	return out
}

func TestSkyline_BottomLeft(t *testing.T) {
	a := NewSkyline(10, 10)
	rs := rects([2]int{4, 4}, [2]int{6, 4}, [2]int{4, 6})
	if !a.Pack(rs) {
		t.Fatal("Pack() = false, want true")
	}
	want := [][2]int{{4, 4}, {4, 0}, {0, 0}}
	if diff := cmp.Diff(want, positions(rs)); diff != "" {
		t.Errorf("positions mismatch (-want +got):\n%s", diff)
	}
	// Caller order and IDs survive the internal sort.
	for i, r := range rs {
		if r.ID != i || !r.Packed {
			t.Errorf("rect %d = %+v", i, r)
		}
	}
}

func TestShelf_Rows(t *testing.T) {
	a := NewShelf(10, 10)
	rs := rects([2]int{4, 4}, [2]int{6, 4}, [2]int{4, 6})
	if !a.Pack(rs) {
		t.Fatal("Pack() = false, want true")
	}
	want := [][2]int{{0, 6}, {4, 0}, {0, 0}}
	if diff := cmp.Diff(want, positions(rs)); diff != "" {
		t.Errorf("positions mismatch (-want +got):\n%s", diff)
	}
	if a.ShelfCount() != 2 {
		t.Errorf("ShelfCount() = %d, want 2", a.ShelfCount())
	}
}

func TestExhaustion(t *testing.T) {
	for _, h := range []Heuristic{Skyline, Shelf} {
		t.Run(h.String(), func(t *testing.T) {
			a := New(h, 10, 10)
			rs := rects([2]int{5, 5}, [2]int{5, 5}, [2]int{5, 5}, [2]int{5, 5}, [2]int{5, 5})
			if a.Pack(rs) {
				t.Fatal("Pack() = true, want false")
			}
			for i, r := range rs[:4] {
				if !r.Packed {
					t.Errorf("rect %d not packed", i)
				}
			}
			last := rs[4]
			if last.Packed || last.X != -1 || last.Y != -1 {
				t.Errorf("overflow rect = %+v, want unplaced at -1,-1", last)
			}
			if u := a.Utilization(); u != 1 {
				t.Errorf("Utilization() = %v, want 1", u)
			}
		})
	}
}

func TestTooLarge(t *testing.T) {
	for _, h := range []Heuristic{Skyline, Shelf} {
		a := New(h, 8, 8)
		rs := rects([2]int{9, 1}, [2]int{1, 9}, [2]int{8, 8})
		if a.Pack(rs) {
			t.Errorf("%v: Pack() = true, want false", h)
		}
		if rs[0].Packed || rs[1].Packed || !rs[2].Packed {
			t.Errorf("%v: packed = %v %v %v, want false false true", h, rs[0].Packed, rs[1].Packed, rs[2].Packed)
		}
	}
}

func TestEmptyRects(t *testing.T) {
	for _, h := range []Heuristic{Skyline, Shelf} {
		a := New(h, 4, 4)
		rs := rects([2]int{0, 0}, [2]int{0, 7}, [2]int{4, 4}, [2]int{3, 0})
		if !a.Pack(rs) {
			t.Fatalf("%v: Pack() = false, want true", h)
		}
		for _, i := range []int{0, 1, 3} {
			if r := rs[i]; !r.Packed || r.X != 0 || r.Y != 0 {
				t.Errorf("%v: empty rect %d = %+v", h, i, r)
			}
		}
	}
}

func TestNoOverlap(t *testing.T) {
	for _, h := range []Heuristic{Skyline, Shelf} {
		t.Run(h.String(), func(t *testing.T) {
			rng := rand.New(rand.NewPCG(1, 2))
			sizes := make([][2]int, 300)
			for i := range sizes {
				sizes[i] = [2]int{1 + rng.IntN(20), 1 + rng.IntN(20)}
			}
			const w, ht = 200, 150
			a := New(h, w, ht)
			rs := rects(sizes...)
			a.Pack(rs)

			packed := 0
			for i, r := range rs {
				if !r.Packed {
					continue
				}
				packed++
				if r.X < 0 || r.Y < 0 || r.X+r.W > w || r.Y+r.H > ht {
					t.Fatalf("rect %d = %+v outside %dx%d bin", i, r, w, ht)
				}
				for j := i + 1; j < len(rs); j++ {
					o := rs[j]
					if !o.Packed {
						continue
					}
					if r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H {
						t.Fatalf("rect %d %+v overlaps rect %d %+v", i, r, j, o)
					}
				}
			}
			if packed == 0 {
				t.Fatal("nothing packed")
			}
		})
	}
}

func TestDeterministic(t *testing.T) {
	sizes := [][2]int{{3, 7}, {7, 3}, {5, 5}, {5, 5}, {2, 9}, {9, 2}, {1, 1}}
	first := rects(sizes...)
	NewSkyline(16, 16).Pack(first)
	second := rects(sizes...)
	NewSkyline(16, 16).Pack(second)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("placements differ between runs:\n%s", diff)
	}
}

func TestReset(t *testing.T) {
	a := NewSkyline(4, 4)
	if !a.Pack(rects([2]int{4, 4})) {
		t.Fatal("first Pack failed")
	}
	if a.Pack(rects([2]int{1, 1})) {
		t.Fatal("full bin accepted another rect")
	}
	a.Reset()
	if a.Utilization() != 0 || a.Segments() != 1 {
		t.Errorf("after Reset: utilization %v, segments %d", a.Utilization(), a.Segments())
	}
	if !a.Pack(rects([2]int{4, 4})) {
		t.Error("Pack after Reset failed")
	}
}

func TestParseHeuristic(t *testing.T) {
	tests := []struct {
		in      string
		want    Heuristic
		wantErr bool
	}{
		{"skyline", Skyline, false},
		{"", Skyline, false},
		{"shelf", Shelf, false},
		{"maxrects", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseHeuristic(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseHeuristic(%q) = %v, %v", tt.in, got, err)
		}
	}
}

func BenchmarkSkyline_Pack(b *testing.B) {
	rng := rand.New(rand.NewPCG(3, 4))
	sizes := make([][2]int, 256)
	for i := range sizes {
		sizes[i] = [2]int{4 + rng.IntN(16), 8 + rng.IntN(16)}
	}
	a := NewSkyline(512, 512)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Reset()
		a.Pack(rects(sizes...))
	}
}
