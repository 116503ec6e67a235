// Package zone implements the time-zone offset model: a zone is a total
// function from UTC instant to millisecond offset, together with the
// transition search and the local-to-UTC resolution policy for the gap and
// overlap windows around daylight-saving changes.
package zone

import (
	"errors"
	"fmt"

	"github.com/aparo/temporal/temporal/types"
)

// ErrZone wraps errors returned by the zone package.
var ErrZone = errors.New("zone")

// Zone models a time zone as a pure function from instant to offset. All
// instants are milliseconds since 1970-01-01T00:00:00Z. Implementations are
// immutable and safe for concurrent use.
//
// NextTransition and PreviousTransition are idempotent at exhaustion: when
// no transition exists further in that direction they return the instant
// passed in, and callers must recognize the echo as "no more transitions".
type Zone interface {
	// ID returns the unique identifier of the zone.
	ID() string

	// NameKeyAt returns the name lookup key in force at instant, such as
	// "EST". Rendering keys into localized names is a caller concern.
	NameKeyAt(instant int64) string

	// OffsetAt returns the millisecond offset to add to UTC to obtain
	// local time at instant.
	OffsetAt(instant int64) int

	// StandardOffsetAt returns the standard (non-daylight) offset in force
	// at instant.
	StandardOffsetAt(instant int64) int

	// IsFixed reports whether the offset never changes.
	IsFixed() bool

	// NextTransition returns the first instant after instant at which the
	// offset or name key changes, or instant itself if there is none.
	NextTransition(instant int64) int64

	// PreviousTransition returns the latest instant before instant at
	// which a change became visible, specifically the instant just before
	// the transition point, or instant itself if there is none.
	PreviousTransition(instant int64) int64
}

// IsStandardOffset reports whether the zone is on its standard offset at
// instant, i.e. not observing daylight saving.
func IsStandardOffset(z Zone, instant int64) bool {
	return z.OffsetAt(instant) == z.StandardOffsetAt(instant)
}

// fixed is a Zone with a constant offset and no transitions.
type fixed struct {
	id      string
	nameKey string
	offset  int
}

// UTC is the zero-offset fixed zone. It is always available.
var UTC Zone = &fixed{id: "UTC", nameKey: "UTC"}

func (z *fixed) ID() string                    { return z.id }
func (z *fixed) NameKeyAt(int64) string        { return z.nameKey }
func (z *fixed) OffsetAt(int64) int            { return z.offset }
func (z *fixed) StandardOffsetAt(int64) int    { return z.offset }
func (z *fixed) IsFixed() bool                 { return true }
func (z *fixed) NextTransition(t int64) int64  { return t }
func (z *fixed) PreviousTransition(t int64) int64 { return t }

func (z *fixed) String() string { return z.id }

// ForOffsetMillis returns the fixed zone with the given offset. The zone id
// is the canonical [+-]hh:mm[:ss[.SSS]] form, except that offset zero
// returns UTC.
func ForOffsetMillis(offset int) (Zone, error) {
	if offset == 0 {
		return UTC, nil
	}
	if _, err := types.CheckOffset(offset); err != nil {
		return nil, err
	}
	id := types.FormatOffset(offset)
	return &fixed{id: id, nameKey: id, offset: offset}, nil
}

// ForOffsetHoursMinutes returns the fixed zone offset by the given hours and
// minutes. Both components must carry the same sign; minutes must be less
// than 60 in magnitude.
func ForOffsetHoursMinutes(hours, minutes int) (Zone, error) {
	if hours < -23 || hours > 23 {
		return nil, types.NewRangeError("hours", int64(hours), -23, 23)
	}
	if minutes < -59 || minutes > 59 {
		return nil, types.NewRangeError("minutes", int64(minutes), -59, 59)
	}
	if hours > 0 && minutes < 0 || hours < 0 && minutes > 0 {
		return nil, fmt.Errorf("%w: hours %d and minutes %d differ in sign", ErrZone, hours, minutes)
	}
	offset := hours*int(types.MillisPerHour) + minutes*int(types.MillisPerMinute)
	return ForOffsetMillis(offset)
}

// ForID resolves id through the active Provider, falling back to parsing
// fixed-offset identifiers of the form [+-]hh:mm[:ss[.SSS]].
func ForID(id string) (Zone, error) {
	if id == "" || id == "UTC" || id == "Z" {
		return UTC, nil
	}
	if z, err := ActiveProvider().GetZone(id); err == nil {
		return z, nil
	}
	if id[0] == '+' || id[0] == '-' {
		offset, err := types.ParseOffset(id)
		if err != nil {
			return nil, err
		}
		return ForOffsetMillis(offset)
	}
	return nil, fmt.Errorf("%w: unknown zone id %q", ErrZone, id)
}
