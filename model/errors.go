package model

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrUnknownBoundary is returned when a boundary policy name is not recognised
var ErrUnknownBoundary = errors.New("unknown boundary policy")

// InvalidCellCharacterError is returned when decoding a character that is neither '.' nor '#'
type InvalidCellCharacterError struct {
	Char rune
}

func (e *InvalidCellCharacterError) Error() string {
	return fmt.Sprintf("invalid cell value %q, expected one of '%c' or '%c'", e.Char, deadRune, aliveRune)
}

// RowLengthMismatchError is returned by Parse when a row is not as long as the first one
type RowLengthMismatchError struct {
	Expected int
	Actual   int
}

func (e *RowLengthMismatchError) Error() string {
	return fmt.Sprintf("mismatched row lengths, expected %d but got %d", e.Expected, e.Actual)
}

// InternalConsistencyFault signals a coordinate that is still out of range after wrapping.
// It is raised with panic and is never returned as an error value.
type InternalConsistencyFault struct {
	Coordinates   Coordinates
	Columns, Rows int
}

func (f *InternalConsistencyFault) Error() string {
	return fmt.Sprintf("internal consistency fault: %v is outside a %dx%d grid after wrapping",
		f.Coordinates, f.Columns, f.Rows)
}
