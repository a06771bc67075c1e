package bishop

import (
	"errors"
	"fmt"
)

// Domain errors for walking and drawing.
var (
	// ErrGeometry indicates a field size outside [MinSize, MaxSize].
	ErrGeometry = errors.New("bishop: field geometry out of bounds")

	// ErrPalette indicates a char list shorter than MinChars.
	ErrPalette = errors.New("bishop: char list too short")

	// ErrFinalized indicates use of an Art after Result was called.
	ErrFinalized = errors.New("bishop: walk already finalized")

	// ErrCells indicates stored cell values that cannot form a field.
	ErrCells = errors.New("bishop: invalid field cells")
)

// GeometryError reports a rejected field size and the allowed bounds.
type GeometryError struct {
	Size Size
	Min  Size
	Max  Size
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("bishop: field geometry %dx%d out of bounds (min %dx%d, max %dx%d)",
		e.Size.W, e.Size.H, e.Min.W, e.Min.H, e.Max.W, e.Max.H)
}

func (e *GeometryError) Unwrap() error {
	return ErrGeometry
}

// PaletteError reports a char list that is too short.
type PaletteError struct {
	Len int
}

func (e *PaletteError) Error() string {
	return fmt.Sprintf("bishop: char list must be %d chars or longer, got %d", MinChars, e.Len)
}

func (e *PaletteError) Unwrap() error {
	return ErrPalette
}
