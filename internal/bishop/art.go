package bishop

import (
	"errors"
	"io"
	"math"

	"github.com/san-kum/bishop/internal/grid"
)

// Size is a field geometry in cells.
type Size struct {
	W, H int
}

var (
	// MinSize is the smallest accepted field.
	MinSize = Size{W: 5, H: 5}
	// MaxSize is the largest accepted field.
	MaxSize = Size{W: 500, H: 500}
	// DefaultSize is the OpenSSH field size.
	DefaultSize = Size{W: 17, H: 9}
)

// Cell values with special meaning. Non-negative values are visit counts.
const (
	ValueStart = -1
	ValueEnd   = -2
	ValueMax   = math.MaxInt
)

// Step describes one bishop move.
type Step struct {
	Index int // zero-based move number
	X, Y  int // cursor after the move
	Value int // cell value after the move
}

// Observer is notified after every move.
type Observer interface {
	OnStep(s Step)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Step)

func (f ObserverFunc) OnStep(s Step) { f(s) }

// Art walks the bishop over a field. Create it with New or NewDefault,
// feed bytes, then call Result exactly once.
type Art struct {
	size      Size
	field     *grid.Grid
	x, y      int
	steps     int
	finalized bool
	observers []Observer
}

// CheckSize reports whether w×h lies within MinSize and MaxSize.
func CheckSize(w, h int) error {
	if w < MinSize.W || h < MinSize.H || w > MaxSize.W || h > MaxSize.H {
		return &GeometryError{Size: Size{W: w, H: h}, Min: MinSize, Max: MaxSize}
	}
	return nil
}

// New returns a walker for a w×h field.
func New(w, h int) (*Art, error) {
	if err := CheckSize(w, h); err != nil {
		return nil, err
	}
	return newArt(w, h), nil
}

// NewDefault returns a walker for the DefaultSize field.
func NewDefault() *Art {
	return newArt(DefaultSize.W, DefaultSize.H)
}

func newArt(w, h int) *Art {
	a := &Art{
		size:  Size{W: w, H: h},
		field: grid.New(w, h, 0),
		x:     (w - 1) / 2,
		y:     (h - 1) / 2,
	}
	a.field.Set(a.x, a.y, ValueStart)
	return a
}

func (a *Art) AddObserver(o Observer) { a.observers = append(a.observers, o) }

func (a *Art) Size() Size { return a.size }

// Position returns the current cursor.
func (a *Art) Position() (x, y int) { return a.x, a.y }

// Steps returns the number of moves made so far.
func (a *Art) Steps() int { return a.steps }

// Finalized reports whether Result has been called.
func (a *Art) Finalized() bool { return a.finalized }

func axis(set bool) int {
	if set {
		return 1
	}
	return -1
}

// move advances the cursor by one bit-pair. vert selects down, horiz
// selects right; an axis that would leave the field stays put.
func (a *Art) move(vert, horiz bool) {
	dx, dy := axis(horiz), axis(vert)
	if a.x == 0 && dx < 0 || a.x == a.size.W-1 && dx > 0 {
		dx = 0
	}
	if a.y == 0 && dy < 0 || a.y == a.size.H-1 && dy > 0 {
		dy = 0
	}
	a.x += dx
	a.y += dy

	v := a.field.At(a.x, a.y)
	if v >= 0 && v < ValueMax {
		v++
		a.field.Set(a.x, a.y, v)
	}

	s := Step{Index: a.steps, X: a.x, Y: a.y, Value: v}
	a.steps++
	for _, o := range a.observers {
		o.OnStep(s)
	}
}

// walk consumes one byte, lowest bit-pair first.
func (a *Art) walk(b byte) {
	for i := 0; i < 4; i++ {
		a.move(b&0x2 != 0, b&0x1 != 0)
		b >>= 2
	}
}

// Input feeds p into the walk. Data is used as-is, without hashing; a
// default field is effectively saturated by around 64 bytes.
func (a *Art) Input(p []byte) error {
	if a.finalized {
		return ErrFinalized
	}
	for _, b := range p {
		a.walk(b)
	}
	return nil
}

// Write implements io.Writer.
func (a *Art) Write(p []byte) (int, error) {
	if err := a.Input(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// ReadFrom implements io.ReaderFrom, so io.Copy streams into the walk.
func (a *Art) ReadFrom(r io.Reader) (int64, error) {
	if a.finalized {
		return 0, ErrFinalized
	}
	buf := make([]byte, 4096)
	var n int64
	for {
		m, err := r.Read(buf)
		for _, b := range buf[:m] {
			a.walk(b)
		}
		n += int64(m)
		if errors.Is(err, io.EOF) {
			return n, nil
		}
		if err != nil {
			return n, err
		}
	}
}

// Consume pulls bytes from src until io.EOF. Any other error from src is
// returned unchanged; the partial walk should then be discarded.
func (a *Art) Consume(src io.ByteReader) (int64, error) {
	if a.finalized {
		return 0, ErrFinalized
	}
	var n int64
	for {
		b, err := src.ReadByte()
		if errors.Is(err, io.EOF) {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		a.walk(b)
		n++
	}
}

// Snapshot returns a preview of the field with the end marker at the
// current cursor. The walk is not finalized.
func (a *Art) Snapshot() *Result {
	f := a.field.Clone()
	f.Set(a.x, a.y, ValueEnd)
	return &Result{field: f, size: a.size}
}

// Result stamps the end marker and returns the finished field. It may be
// called once; afterwards the Art rejects further input.
func (a *Art) Result() (*Result, error) {
	if a.finalized {
		return nil, ErrFinalized
	}
	a.finalized = true
	a.field.Set(a.x, a.y, ValueEnd)
	return &Result{field: a.field, size: a.size}, nil
}
