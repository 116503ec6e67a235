// Package temporal exposes the value types of the engine: exact instants
// and durations, chronology-bound date-times and their mutable
// counterpart. Calendar semantics live in the chrono package, zone
// semantics in zone; everything here delegates.
package temporal

import (
	"time"

	"github.com/aparo/temporal/temporal/types"
)

// Instant is an exact point in time, milliseconds since the epoch,
// independent of any calendar or zone.
type Instant struct {
	millis int64
}

// NewInstant returns the instant at millis since the epoch.
func NewInstant(millis int64) Instant { return Instant{millis: millis} }

// Now returns the current instant.
func Now() Instant { return Instant{millis: time.Now().UnixMilli()} }

// Millis returns the millisecond count since the epoch.
func (i Instant) Millis() int64 { return i.millis }

// Equal reports whether both instants are the same point in time.
func (i Instant) Equal(o Instant) bool { return i.millis == o.millis }

// Before reports whether i precedes o.
func (i Instant) Before(o Instant) bool { return i.millis < o.millis }

// After reports whether i follows o.
func (i Instant) After(o Instant) bool { return i.millis > o.millis }

// Compare orders two instants.
func (i Instant) Compare(o Instant) int {
	switch {
	case i.millis < o.millis:
		return -1
	case i.millis > o.millis:
		return 1
	default:
		return 0
	}
}

// Plus returns the instant moved forward by d.
func (i Instant) Plus(d Duration) (Instant, error) {
	millis, err := types.SafeAdd(i.millis, d.millis)
	if err != nil {
		return Instant{}, err
	}
	return Instant{millis: millis}, nil
}

// Minus returns the instant moved backward by d.
func (i Instant) Minus(d Duration) (Instant, error) {
	millis, err := types.SafeSubtract(i.millis, d.millis)
	if err != nil {
		return Instant{}, err
	}
	return Instant{millis: millis}, nil
}

// Duration is an exact millisecond span, signed. It carries no calendar
// meaning: a Duration of 24 hours is not "one day" across an offset
// transition.
type Duration struct {
	millis int64
}

// NewDuration returns a duration of millis milliseconds.
func NewDuration(millis int64) Duration { return Duration{millis: millis} }

// DurationOfHours returns a duration of that many whole hours.
func DurationOfHours(hours int64) (Duration, error) {
	millis, err := types.SafeMultiply(hours, types.MillisPerHour)
	return Duration{millis: millis}, err
}

// DurationOfMinutes returns a duration of that many whole minutes.
func DurationOfMinutes(minutes int64) (Duration, error) {
	millis, err := types.SafeMultiply(minutes, types.MillisPerMinute)
	return Duration{millis: millis}, err
}

// DurationOfSeconds returns a duration of that many whole seconds.
func DurationOfSeconds(seconds int64) (Duration, error) {
	millis, err := types.SafeMultiply(seconds, types.MillisPerSecond)
	return Duration{millis: millis}, err
}

// DurationBetween returns the elapsed span from start to end, negative
// when end precedes start.
func DurationBetween(start, end Instant) (Duration, error) {
	millis, err := types.SafeSubtract(end.millis, start.millis)
	return Duration{millis: millis}, err
}

// Millis returns the span in milliseconds.
func (d Duration) Millis() int64 { return d.millis }

// IsZero reports whether the span is empty.
func (d Duration) IsZero() bool { return d.millis == 0 }

// Plus returns the sum of the two spans.
func (d Duration) Plus(o Duration) (Duration, error) {
	millis, err := types.SafeAdd(d.millis, o.millis)
	return Duration{millis: millis}, err
}

// Minus returns the difference of the two spans.
func (d Duration) Minus(o Duration) (Duration, error) {
	millis, err := types.SafeSubtract(d.millis, o.millis)
	return Duration{millis: millis}, err
}

// MultipliedBy scales the span.
func (d Duration) MultipliedBy(scalar int64) (Duration, error) {
	millis, err := types.SafeMultiply(d.millis, scalar)
	return Duration{millis: millis}, err
}

// Negated returns the span with its sign flipped.
func (d Duration) Negated() (Duration, error) {
	return d.MultipliedBy(-1)
}
