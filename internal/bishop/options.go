package bishop

import "unicode/utf8"

const (
	// DefaultChars is the OpenSSH palette: background, visit buckets,
	// start marker, end marker.
	DefaultChars = " .o+=*BOX@%&#/^SE"

	// MinChars is the shortest usable palette: background, one drawing
	// char, start and end.
	MinChars = 4
)

// Options control how a Result is drawn.
//
// Chars is read as:
//
//	index  | meaning
//	-------|---------------------------
//	0      | field background
//	1..n-3 | visit counts, last one saturates
//	n-2    | start position
//	n-1    | end position
//
// Start and end chars override the real count at those cells. A palette
// meant for human comparison should be at least 18 clearly distinct chars.
type Options struct {
	Chars      []rune
	TopText    string
	BottomText string
}

// DefaultOptions returns the OpenSSH palette with empty captions.
func DefaultOptions() Options {
	return Options{Chars: []rune(DefaultChars)}
}

// NewOptions builds validated Options from a palette string and captions.
func NewOptions(chars, top, bottom string) (Options, error) {
	if n := utf8.RuneCountInString(chars); n < MinChars {
		return Options{}, &PaletteError{Len: n}
	}
	return Options{Chars: []rune(chars), TopText: top, BottomText: bottom}, nil
}

func (o Options) Validate() error {
	if len(o.Chars) < MinChars {
		return &PaletteError{Len: len(o.Chars)}
	}
	return nil
}

// Glyph maps a cell value to its display char. o must be valid.
func (o Options) Glyph(v int) rune {
	n := len(o.Chars)
	switch {
	case v == ValueEnd:
		return o.Chars[n-1]
	case v == ValueStart:
		return o.Chars[n-2]
	case v < 0:
		panic("bishop: invalid cell value")
	case v > n-3:
		return o.Chars[n-3]
	default:
		return o.Chars[v]
	}
}
