package ranges

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig     = errors.New("invalid generator config")
	ErrDegenerateLengths = errors.New("sampled range lengths sum to zero")
	ErrOverlap           = errors.New("overlap detected")
	ErrMalformedLine     = errors.New("malformed range line")
)

// OverlapError reports the first range that failed the overlap check.
type OverlapError struct {
	Index int
	Range Range
	// Bound is the value Range.Start had to exceed.
	Bound int64
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("%v: range %d (%v) does not start after %d", ErrOverlap, e.Index, e.Range, e.Bound)
}

func (e *OverlapError) Unwrap() error {
	return ErrOverlap
}
