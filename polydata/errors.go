package polydata

import (
	"errors"
	"fmt"
)

// FormatError reports input data whose container, shape or element type does not match what an
// operation requires. It marks a caller bug, not a transient fault.
type FormatError struct {
	Op  string // operation that rejected the input, e.g. "points", "mesh"
	Msg string
}

func (e *FormatError) Error() string { return e.Msg }

func NewFormatError(op, format string, args ...interface{}) *FormatError {
	return &FormatError{
		Op:  op,
		Msg: fmt.Sprintf(format, args...),
	}
}

// IsFormatError reports whether any error in err's chain is a *FormatError.
func IsFormatError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}
