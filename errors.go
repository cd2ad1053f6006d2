package bitarray

import "fmt"

// ErrInvalidSize indicates a construction request for a non-positive number
// of bits.
type ErrInvalidSize struct {
	Size int
}

func (e *ErrInvalidSize) Error() string {
	return fmt.Sprintf("invalid size: %d (must be positive)", e.Size)
}

// ErrIndexOutOfRange indicates a positional operation outside [0, Len).
type ErrIndexOutOfRange struct {
	Index int
	Size  int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index out of range: %d (size %d)", e.Index, e.Size)
}
