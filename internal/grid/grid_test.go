package grid

import "testing"

func TestNew(t *testing.T) {
	g := New(4, 3, 7)

	if g.Width() != 4 || g.Height() != 3 {
		t.Fatalf("expected 4x3, got %dx%d", g.Width(), g.Height())
	}
	if g.Len() != 12 {
		t.Errorf("expected 12 cells, got %d", g.Len())
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if v := g.At(x, y); v != 7 {
				t.Errorf("At(%d, %d) = %d, want 7", x, y, v)
			}
		}
	}
}

func TestNew_InvalidSize(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 3},
		{"zero height", 3, 0},
		{"negative", -1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			New(tt.w, tt.h, 0)
		})
	}
}

func TestSetRowMajor(t *testing.T) {
	g := New(3, 2, 0)
	g.Set(2, 0, 5)
	g.Set(0, 1, 9)

	want := []int{0, 0, 5, 9, 0, 0}
	got := g.Cells()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Cells() = %v, want %v", got, want)
		}
	}
}

func TestOutOfRangePanics(t *testing.T) {
	g := New(3, 3, 0)
	coords := [][2]int{{3, 0}, {0, 3}, {-1, 0}, {0, -1}}

	for _, c := range coords {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("At(%d, %d) did not panic", c[0], c[1])
				}
			}()
			g.At(c[0], c[1])
		}()
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := New(2, 2, 1)
	c := g.Clone()
	c.Set(0, 0, 42)

	if g.At(0, 0) != 1 {
		t.Error("mutating clone changed original")
	}

	cells := g.Cells()
	cells[1] = 99
	if g.At(1, 0) != 1 {
		t.Error("mutating Cells() result changed grid")
	}
}

func TestFromCells(t *testing.T) {
	g, err := FromCells(2, 2, []int{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.At(1, 1) != 4 || g.At(0, 1) != 3 {
		t.Errorf("unexpected layout: %v", g.Cells())
	}

	if _, err := FromCells(2, 2, []int{1, 2, 3}); err == nil {
		t.Error("expected error for short cell slice")
	}
	if _, err := FromCells(0, 2, nil); err == nil {
		t.Error("expected error for zero width")
	}
}
