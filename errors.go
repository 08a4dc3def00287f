package gffutils

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration is returned by Open when both the ignore and
	// only filters are set.
	ErrInvalidConfiguration = errors.New("gffutils: ignore and only filters are mutually exclusive")

	// ErrEmptyFile is returned by Open when the file holds no structurally
	// valid record.
	ErrEmptyFile = errors.New("gffutils: no valid record found")

	// ErrUnsupportedComparison is returned by Compare: features define only
	// equality, never an ordering.
	ErrUnsupportedComparison = errors.New("gffutils: features do not support ordering comparisons")

	// ErrInvalidAttributes is returned when a nil Attributes is assigned to
	// a feature.
	ErrInvalidAttributes = errors.New("gffutils: attributes must not be nil")
)

// MalformedRecordError reports a line whose coordinate fields could not be
// parsed as integers.
type MalformedRecordError struct {
	Line string
	Err  error
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("gffutils: malformed record %q: %v", e.Line, e.Err)
}

func (e *MalformedRecordError) Unwrap() error { return e.Err }

// MalformedAttributeError reports an attribute segment that does not split
// into exactly one key and one value.
type MalformedAttributeError struct {
	Segment string
}

func (e *MalformedAttributeError) Error() string {
	return fmt.Sprintf("gffutils: attribute segment %q does not split into one key and one value", e.Segment)
}
