// Package grid provides dense 2D integer storage addressed by (x, y).
package grid

import "fmt"

// Grid is a fixed-size field of signed counters stored row-major.
type Grid struct {
	w, h  int
	cells []int
}

// New returns a w×h grid with every cell set to init.
// It panics if either dimension is not positive.
func New(w, h, init int) *Grid {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("grid: invalid size %dx%d", w, h))
	}
	g := &Grid{w: w, h: h, cells: make([]int, w*h)}
	if init != 0 {
		for i := range g.cells {
			g.cells[i] = init
		}
	}
	return g
}

// FromCells builds a grid from a row-major slice. The slice is copied.
func FromCells(w, h int, cells []int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("grid: invalid size %dx%d", w, h)
	}
	if len(cells) != w*h {
		return nil, fmt.Errorf("grid: %d cells do not fill %dx%d", len(cells), w, h)
	}
	g := &Grid{w: w, h: h, cells: make([]int, len(cells))}
	copy(g.cells, cells)
	return g, nil
}

func (g *Grid) Width() int  { return g.w }
func (g *Grid) Height() int { return g.h }
func (g *Grid) Len() int    { return len(g.cells) }

func (g *Grid) index(x, y int) int {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		panic(fmt.Sprintf("grid: (%d, %d) out of range %dx%d", x, y, g.w, g.h))
	}
	return y*g.w + x
}

// At returns the value at (x, y). Out-of-range coordinates panic.
func (g *Grid) At(x, y int) int {
	return g.cells[g.index(x, y)]
}

// Set stores v at (x, y). Out-of-range coordinates panic.
func (g *Grid) Set(x, y, v int) {
	g.cells[g.index(x, y)] = v
}

// Cells returns a row-major copy of the grid contents.
func (g *Grid) Cells() []int {
	c := make([]int, len(g.cells))
	copy(c, g.cells)
	return c
}

func (g *Grid) Clone() *Grid {
	return &Grid{w: g.w, h: g.h, cells: g.Cells()}
}
