// Package input turns files, stdin and hex text into byte sources for the
// walker.
package input

import (
	"bufio"
	"bytes"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"io"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// Type selects how an input stream is interpreted.
type Type string

const (
	Bin  Type = "bin"
	Hex  Type = "hex"
	Hash Type = "hash"
)

// Types lists the accepted input types.
var Types = []Type{Bin, Hex, Hash}

func ParseType(s string) (Type, error) {
	switch t := Type(strings.ToLower(s)); t {
	case Bin, Hex, Hash:
		return t, nil
	}
	return "", fmt.Errorf("input: unknown type %q (available: %v)", s, Types)
}

// Algorithm is the digest used by the hash input type.
type Algorithm string

const (
	SHA256  Algorithm = "sha256"
	SHA512  Algorithm = "sha512"
	BLAKE2b Algorithm = "blake2b"
)

var Algorithms = []Algorithm{SHA256, SHA512, BLAKE2b}

func ParseAlgorithm(s string) (Algorithm, error) {
	switch a := Algorithm(strings.ToLower(s)); a {
	case SHA256, SHA512, BLAKE2b:
		return a, nil
	}
	return "", fmt.Errorf("input: unknown hash %q (available: %v)", s, Algorithms)
}

func newHash(alg Algorithm) (hash.Hash, error) {
	switch alg {
	case SHA256, "":
		return sha256.New(), nil
	case SHA512:
		return sha512.New(), nil
	case BLAKE2b:
		return blake2b.New256(nil)
	}
	return nil, fmt.Errorf("input: unknown hash %q", alg)
}

// Digest hashes all of r with alg.
func Digest(alg Algorithm, r io.Reader) ([]byte, error) {
	h, err := newHash(alg)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(h, r); err != nil {
		return nil, err
	}
	return h.Sum(nil), nil
}

// Open resolves an input type into a byte source over r. For Hash the
// whole of r is read and digested up front.
func Open(t Type, alg Algorithm, r io.Reader) (io.ByteReader, error) {
	switch t {
	case Bin, "":
		return bufio.NewReader(r), nil
	case Hex:
		return NewHexReader(r), nil
	case Hash:
		sum, err := Digest(alg, r)
		if err != nil {
			return nil, err
		}
		return bytes.NewReader(sum), nil
	}
	return nil, fmt.Errorf("input: unknown type %q", t)
}
