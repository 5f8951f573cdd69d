package codec

import (
	"errors"
	"fmt"
)

// Errors
var (
	ErrSizeMismatch  = errors.New("size mismatch")
	ErrDuplicateType = errors.New("duplicate type code")
	ErrBadFourCC     = errors.New("invalid four character code")
)

// SizeError reports a byte count that does not match a hard requirement of
// the wire format. It matches ErrSizeMismatch under errors.Is.
type SizeError struct {
	Expected int
	Got      int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("wrong data size, expected %d bytes, given %d", e.Expected, e.Got)
}

func (e *SizeError) Is(target error) bool {
	return target == ErrSizeMismatch
}
