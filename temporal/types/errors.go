package types

import (
	"errors"
	"fmt"
)

var (
	// ErrRange reports a field value outside its legal bounds.
	ErrRange = errors.New("value out of range")

	// ErrUnsupported reports an operation against a field the chronology
	// does not support.
	ErrUnsupported = errors.New("unsupported field")

	// ErrGap reports a local time that never occurs because clocks jumped
	// over it.
	ErrGap = errors.New("illegal local time")

	// ErrOverflow reports arithmetic whose true result exceeds the
	// representable range.
	ErrOverflow = errors.New("arithmetic overflow")

	// ErrConfig reports nil or contradictory constructor arguments.
	ErrConfig = errors.New("invalid configuration")
)

// RangeError records a rejected field value together with the field identity
// and the bounds in force. Explain carries extra context when the bounds are
// not the full story, such as a day-of-month cap that depends on the month.
type RangeError struct {
	Field   string
	Value   int64
	Lower   int64
	Upper   int64
	Explain string
}

// NewRangeError returns a RangeError for field with the rejected value and
// its bounds.
func NewRangeError(field string, value, lower, upper int64) *RangeError {
	return &RangeError{Field: field, Value: value, Lower: lower, Upper: upper}
}

func (e *RangeError) Error() string {
	msg := fmt.Sprintf(
		"%v for %s: %d must be in the range [%d,%d]",
		ErrRange, e.Field, e.Value, e.Lower, e.Upper,
	)
	if e.Explain != "" {
		msg += ": " + e.Explain
	}
	return msg
}

// Is reports whether target is ErrRange, so that callers can match with
// errors.Is without caring about the concrete type.
func (e *RangeError) Is(target error) bool { return target == ErrRange }

// UnsupportedError records the identity of a field that a chronology does
// not support.
type UnsupportedError struct {
	Field string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%v: field %s is not supported", ErrUnsupported, e.Field)
}

// Is reports whether target is ErrUnsupported.
func (e *UnsupportedError) Is(target error) bool { return target == ErrUnsupported }

// GapError records a local instant that falls inside a daylight-saving gap
// of a zone, so no UTC instant corresponds to it.
type GapError struct {
	LocalMillis int64
	ZoneID      string
}

func (e *GapError) Error() string {
	return fmt.Sprintf(
		"%v: local time %d does not exist in zone %s",
		ErrGap, e.LocalMillis, e.ZoneID,
	)
}

// Is reports whether target is ErrGap.
func (e *GapError) Is(target error) bool { return target == ErrGap }
