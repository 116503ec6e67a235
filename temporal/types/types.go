// Package types provides the shared scalar types and error taxonomy for the
// temporal calculation engine.
//
// It defines millisecond offsets and their canonical [+-]hh:mm[:ss[.SSS]]
// identifier form, overflow-checked 64-bit millisecond arithmetic, and the
// structured errors every other package reports through.
package types

// Millisecond spans of the standard precise units.
const (
	MillisPerSecond  = int64(1000)
	MillisPerMinute  = 60 * MillisPerSecond
	MillisPerHour    = 60 * MillisPerMinute
	MillisPerHalfday = 12 * MillisPerHour
	MillisPerDay     = 24 * MillisPerHour
	MillisPerWeek    = 7 * MillisPerDay
)
