package row

import (
	"errors"
	"fmt"

	"github.com/go-data-exporter/tabular/resultset"
)

var (
	// ErrIndexOutOfRange matches every *IndexOutOfRangeError.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrTypeMismatch matches every *TypeMismatchError.
	ErrTypeMismatch = errors.New("type mismatch")
)

// IndexOutOfRangeError reports a row or cell index outside [0, Size).
type IndexOutOfRangeError struct {
	Index int
	Size  int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index out of range: index: %d, size: %d", e.Index, e.Size)
}

func (e *IndexOutOfRangeError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

// TypeMismatchError reports a typed access whose requested type differs
// from the decoded cell.
type TypeMismatchError struct {
	Index int
	Want  string
	Got   resultset.Type
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch at index %d: want %s, got %s", e.Index, e.Want, e.Got)
}

func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}
