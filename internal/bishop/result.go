package bishop

import (
	"fmt"
	"iter"
	"strings"

	"github.com/san-kum/bishop/internal/grid"
)

// Result is a finalized field. It is never mutated and can be drawn any
// number of times.
type Result struct {
	field *grid.Grid
	size  Size
}

// ResultFromCells rebuilds a Result from row-major cell values, such as a
// stored walk. Exactly one end cell is required; at most one start cell.
func ResultFromCells(w, h int, cells []int) (*Result, error) {
	if err := CheckSize(w, h); err != nil {
		return nil, err
	}
	f, err := grid.FromCells(w, h, cells)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCells, err)
	}
	starts, ends := 0, 0
	for _, v := range cells {
		switch {
		case v == ValueStart:
			starts++
		case v == ValueEnd:
			ends++
		case v < 0:
			return nil, fmt.Errorf("%w: value %d", ErrCells, v)
		}
	}
	if ends != 1 || starts > 1 {
		return nil, fmt.Errorf("%w: %d start and %d end markers", ErrCells, starts, ends)
	}
	return &Result{field: f, size: Size{W: w, H: h}}, nil
}

func (r *Result) Width() int  { return r.size.W }
func (r *Result) Height() int { return r.size.H }
func (r *Result) Size() Size  { return r.size }

// At returns the cell value at (x, y).
func (r *Result) At(x, y int) int { return r.field.At(x, y) }

// Cells returns a row-major copy of the field.
func (r *Result) Cells() []int { return r.field.Cells() }

// Start returns the center cell the walk began on.
func (r *Result) Start() (x, y int) {
	return (r.size.W - 1) / 2, (r.size.H - 1) / 2
}

// End returns the cell holding the end marker.
func (r *Result) End() (x, y int) {
	for y := 0; y < r.size.H; y++ {
		for x := 0; x < r.size.W; x++ {
			if r.field.At(x, y) == ValueEnd {
				return x, y
			}
		}
	}
	return r.Start()
}

// Row validates o and returns the drawn body of row y, without the side
// borders.
func (r *Result) Row(o Options, y int) (string, error) {
	if err := o.Validate(); err != nil {
		return "", err
	}
	return r.row(o, y), nil
}

func (r *Result) row(o Options, y int) string {
	var b strings.Builder
	for x := 0; x < r.size.W; x++ {
		b.WriteRune(o.Glyph(r.field.At(x, y)))
	}
	return b.String()
}

// Lines validates o and returns the drawn lines, top border first, with
// no line terminators.
func (r *Result) Lines(o Options) (iter.Seq[string], error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return func(yield func(string) bool) {
		if !yield(Frame(r.size.W, o.TopText)) {
			return
		}
		for y := 0; y < r.size.H; y++ {
			if !yield("|" + r.row(o, y) + "|") {
				return
			}
		}
		yield(Frame(r.size.W, o.BottomText))
	}, nil
}

// Draw renders the field with o. Every line, the last included, ends in
// a newline.
func (r *Result) Draw(o Options) (string, error) {
	if err := o.Validate(); err != nil {
		return "", err
	}

	var b strings.Builder
	// (width + 2 borders + newline) * (height + 2 frames)
	b.Grow((r.size.W + 3) * (r.size.H + 2))

	writeFrame(&b, r.size.W, o.TopText)
	b.WriteByte('\n')
	for y := 0; y < r.size.H; y++ {
		b.WriteByte('|')
		for x := 0; x < r.size.W; x++ {
			b.WriteRune(o.Glyph(r.field.At(x, y)))
		}
		b.WriteString("|\n")
	}
	writeFrame(&b, r.size.W, o.BottomText)
	b.WriteByte('\n')

	return b.String(), nil
}

// DrawDefault renders the field with DefaultOptions.
func (r *Result) DrawDefault() string {
	s, _ := r.Draw(DefaultOptions())
	return s
}
