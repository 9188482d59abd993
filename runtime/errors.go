package runtime

import "fmt"

// ParseError is returned by every decoder and Cursor method that fails.
// It always carries the byte offset within the input buffer at which
// the problem was detected (spec.md section 4.6 "Error reporting",
// section 7).
type ParseError struct {
	Offset  int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("zusi: %s (at byte %d)", e.Message, e.Offset)
}

func errAt(offset int, format string, args ...interface{}) error {
	return &ParseError{Offset: offset, Message: fmt.Sprintf(format, args...)}
}
