package wire

import (
	"errors"
	"fmt"
)

var (
	ErrUnderrun  = errors.New("wire: buffer underrun")
	ErrNilSink   = errors.New("wire: nil sink")
	ErrNilSource = errors.New("wire: nil source")
)

// UnderrunError reports a read that needed more bytes than remained.
type UnderrunError struct {
	Field  string
	Offset int
	Need   int
	Have   int
}

func (e *UnderrunError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("wire: underrun at offset %d: need %d bytes, have %d", e.Offset, e.Need, e.Have)
	}
	return fmt.Sprintf("wire: underrun reading %s at offset %d: need %d bytes, have %d", e.Field, e.Offset, e.Need, e.Have)
}

func (e *UnderrunError) Is(target error) bool {
	return target == ErrUnderrun
}
