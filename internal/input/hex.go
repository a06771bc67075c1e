package input

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
)

// ErrMalformed indicates hex input that cannot be decoded.
var ErrMalformed = errors.New("input: malformed hex")

// MalformedError reports the offset of the first bad input byte.
type MalformedError struct {
	Offset int64
	Reason string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("input: malformed hex at offset %d: %s", e.Offset, e.Reason)
}

func (e *MalformedError) Unwrap() error {
	return ErrMalformed
}

// HexReader decodes a hex text stream into bytes. A single trailing
// line feed is accepted; any other line break is malformed input.
type HexReader struct {
	r   *bufio.Reader
	off int64
	err error
}

func NewHexReader(r io.Reader) *HexReader {
	return &HexReader{r: bufio.NewReader(r)}
}

func (h *HexReader) next() (byte, error) {
	c, err := h.r.ReadByte()
	if err == nil {
		h.off++
	}
	return c, err
}

func (h *HexReader) fail(off int64, reason string) error {
	h.err = &MalformedError{Offset: off, Reason: reason}
	return h.err
}

func (h *HexReader) abort(err error) error {
	h.err = err
	return err
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// ReadByte implements io.ByteReader.
func (h *HexReader) ReadByte() (byte, error) {
	if h.err != nil {
		return 0, h.err
	}

	hi, err := h.next()
	if err != nil {
		return 0, h.abort(err)
	}
	if hi == '\n' {
		at := h.off - 1
		if _, err := h.next(); err == nil {
			return 0, h.fail(at, "unexpected line break")
		} else if err != io.EOF {
			return 0, h.abort(err)
		}
		return 0, h.abort(io.EOF)
	}
	if !isHex(hi) {
		return 0, h.fail(h.off-1, fmt.Sprintf("invalid byte %#U", rune(hi)))
	}

	lo, err := h.next()
	if err == io.EOF {
		return 0, h.fail(h.off-1, "odd length")
	}
	if err != nil {
		return 0, h.abort(err)
	}
	if lo == '\n' {
		return 0, h.fail(h.off-1, "unexpected line break")
	}
	if !isHex(lo) {
		return 0, h.fail(h.off-1, fmt.Sprintf("invalid byte %#U", rune(lo)))
	}

	var out [1]byte
	hex.Decode(out[:], []byte{hi, lo})
	return out[0], nil
}

// Read implements io.Reader.
func (h *HexReader) Read(p []byte) (int, error) {
	for i := range p {
		b, err := h.ReadByte()
		if err != nil {
			if i > 0 && err == io.EOF {
				return i, nil
			}
			return i, err
		}
		p[i] = b
	}
	return len(p), nil
}

// DecodeHex decodes a complete hex string, such as a command-line
// argument.
func DecodeHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return b, nil
}
