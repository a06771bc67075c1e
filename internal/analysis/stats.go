package analysis

import (
	"fmt"
	"math"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/bishop/internal/bishop"
)

// HistogramCap is the last histogram bucket; it counts every cell visited
// HistogramCap or more times.
const HistogramCap = 64

type Stats struct {
	Cells int `json:"cells"`
	// Visited counts every non-background cell, markers included.
	Visited  int     `json:"visited"`
	Coverage float64 `json:"coverage"`
	MaxCount int     `json:"max_count"`
	// Histogram[c] is the number of cells visited exactly c times, up to
	// HistogramCap. Start and end cells are not counted.
	Histogram []int   `json:"histogram"`
	Entropy   float64 `json:"entropy"`
	Start     [2]int  `json:"start"`
	End       [2]int  `json:"end"`
	Distance  int     `json:"distance"`
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Compute gathers statistics over res. Entropy is the Shannon entropy in
// bits of the visit distribution over counted cells.
func Compute(res *bishop.Result) Stats {
	s := Stats{Cells: res.Width() * res.Height()}
	s.Start[0], s.Start[1] = res.Start()
	s.End[0], s.End[1] = res.End()
	s.Distance = abs(s.End[0]-s.Start[0]) + abs(s.End[1]-s.Start[1])

	cells := res.Cells()
	total := 0
	for _, v := range cells {
		if v != 0 {
			s.Visited++
		}
		if v > s.MaxCount {
			s.MaxCount = v
		}
		if v > 0 {
			total += v
		}
	}

	s.Histogram = make([]int, min(s.MaxCount, HistogramCap)+1)
	for _, v := range cells {
		if v >= 0 {
			s.Histogram[min(v, HistogramCap)]++
		}
	}

	if total > 0 {
		for _, v := range cells {
			if v <= 0 {
				continue
			}
			p := float64(v) / float64(total)
			s.Entropy -= p * math.Log2(p)
		}
	}

	s.Coverage = float64(s.Visited) / float64(s.Cells)
	return s
}

// Similarity returns the fraction of cells that a and b draw with the
// same char under opts. Fields of different size are never similar.
func Similarity(a, b *bishop.Result, opts bishop.Options) (float64, error) {
	if err := opts.Validate(); err != nil {
		return 0, err
	}
	if a.Size() != b.Size() {
		return 0, nil
	}

	same := 0
	for y := 0; y < a.Height(); y++ {
		for x := 0; x < a.Width(); x++ {
			if opts.Glyph(a.At(x, y)) == opts.Glyph(b.At(x, y)) {
				same++
			}
		}
	}
	return float64(same) / float64(a.Width()*a.Height()), nil
}

// PlotHistogram charts how many cells received each visit count,
// starting at one visit.
func PlotHistogram(s Stats) string {
	data := make([]float64, 0, len(s.Histogram))
	for _, n := range s.Histogram[1:] {
		data = append(data, float64(n))
	}
	for len(data) < 2 {
		data = append(data, 0)
	}

	caption := fmt.Sprintf("cells by visit count (1..%d)", len(data))
	if s.MaxCount > HistogramCap {
		caption = fmt.Sprintf("cells by visit count (1..%d+)", HistogramCap)
	}
	return asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption(caption),
	)
}
