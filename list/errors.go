package list

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is matched (via errors.Is) by every *RangeError.
	ErrOutOfRange = errors.New("list: position out of range")
	// ErrEmpty is returned when removing from an empty list.
	ErrEmpty = errors.New("list: empty list")
)

// A RangeError records a positional operation that was rejected because
// Pos fell outside [1, Max]. Max is 0 when the list was empty and the
// operation needs an existing node.
type RangeError struct {
	Op  string
	Pos int
	Max int
}

func (e *RangeError) Error() string {
	if e.Max < 1 {
		return fmt.Sprintf("list: %s at position %d: list is empty", e.Op, e.Pos)
	}
	return fmt.Sprintf("list: %s at position %d: out of range [1, %d]", e.Op, e.Pos, e.Max)
}

func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}
