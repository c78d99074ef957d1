package record

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNilRecord     = errors.New("record: nil record")
	ErrTrailingBytes = errors.New("record: trailing bytes after record")
	ErrCountOverflow = errors.New("record: list too long for count field")
	ErrCountMissing  = errors.New("record: list decoded before its count field")
)

// FieldError locates a failure inside a record layout, e.g.
// SilentEntitySystem.appearanceRecords[2].otherParameters.
type FieldError struct {
	Record string
	Path   string
	Err    error
}

func (e *FieldError) Error() string {
	switch {
	case e.Record == "":
		return fmt.Sprintf("record: %s: %v", e.Path, e.Err)
	case e.Path == "":
		return fmt.Sprintf("record: %s: %v", e.Record, e.Err)
	default:
		return fmt.Sprintf("record: %s.%s: %v", e.Record, e.Path, e.Err)
	}
}

func (e *FieldError) Unwrap() error { return e.Err }

// CountOverflowError reports a list length outside what its count can carry
// on encode, or a decoded count too large to index on this platform.
type CountOverflowError struct {
	Field string
	Len   uint64
	Max   uint64
}

func (e *CountOverflowError) Error() string {
	return fmt.Sprintf("record: list %s has %d elements, at most %d allowed", e.Field, e.Len, e.Max)
}

func (e *CountOverflowError) Is(target error) bool {
	return target == ErrCountOverflow
}

// prefix pushes a path segment onto err, converting it to a *FieldError.
func prefix(seg string, err error) error {
	var fe *FieldError
	if errors.As(err, &fe) {
		return &FieldError{Record: fe.Record, Path: joinPath(seg, fe.Path), Err: fe.Err}
	}
	return &FieldError{Path: seg, Err: err}
}

func joinPath(head, tail string) string {
	switch {
	case tail == "":
		return head
	case head == "":
		return tail
	case strings.HasPrefix(tail, "["):
		return head + tail
	default:
		return head + "." + tail
	}
}
