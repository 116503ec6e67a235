package chrono

import (
	"github.com/aparo/temporal/temporal/field"
	"github.com/aparo/temporal/temporal/types"
)

// preciseDuration measures a fixed-length unit. Values truncate toward
// zero.
type preciseDuration struct {
	typ  field.DurationFieldType
	unit int64
}

func (d *preciseDuration) Type() field.DurationFieldType { return d.typ }
func (d *preciseDuration) Name() string                  { return d.typ.Name() }
func (d *preciseDuration) IsSupported() bool             { return true }
func (d *preciseDuration) IsPrecise() bool               { return true }
func (d *preciseDuration) UnitMillis() int64             { return d.unit }

func (d *preciseDuration) Value(duration, _ int64) (int64, error) {
	return duration / d.unit, nil
}

func (d *preciseDuration) Millis(value, _ int64) (int64, error) {
	return types.SafeMultiply(value, d.unit)
}

func (d *preciseDuration) Add(instant, amount int64) (int64, error) {
	step, err := types.SafeMultiply(amount, d.unit)
	if err != nil {
		return 0, err
	}
	return types.SafeAdd(instant, step)
}

func (d *preciseDuration) Difference(minuend, subtrahend int64) (int64, error) {
	diff, err := types.SafeSubtract(minuend, subtrahend)
	if err != nil {
		return 0, err
	}
	return diff / d.unit, nil
}

// impreciseDuration measures a calendar-dependent unit through add and
// difference hooks supplied by the owning chronology.
type impreciseDuration struct {
	typ  field.DurationFieldType
	unit int64
	add  func(instant, amount int64) (int64, error)
	diff func(minuend, subtrahend int64) (int64, error)
}

func (d *impreciseDuration) Type() field.DurationFieldType { return d.typ }
func (d *impreciseDuration) Name() string                  { return d.typ.Name() }
func (d *impreciseDuration) IsSupported() bool             { return true }
func (d *impreciseDuration) IsPrecise() bool               { return false }
func (d *impreciseDuration) UnitMillis() int64             { return d.unit }

func (d *impreciseDuration) Value(duration, instant int64) (int64, error) {
	end, err := types.SafeAdd(instant, duration)
	if err != nil {
		return 0, err
	}
	return d.diff(end, instant)
}

func (d *impreciseDuration) Millis(value, instant int64) (int64, error) {
	moved, err := d.add(instant, value)
	if err != nil {
		return 0, err
	}
	return types.SafeSubtract(moved, instant)
}

func (d *impreciseDuration) Add(instant, amount int64) (int64, error) {
	return d.add(instant, amount)
}

func (d *impreciseDuration) Difference(minuend, subtrahend int64) (int64, error) {
	return d.diff(minuend, subtrahend)
}

// scaledDuration measures a whole multiple of a base unit, such as
// centuries over years.
type scaledDuration struct {
	typ    field.DurationFieldType
	base   field.DurationField
	scalar int64
}

func (d *scaledDuration) Type() field.DurationFieldType { return d.typ }
func (d *scaledDuration) Name() string                  { return d.typ.Name() }
func (d *scaledDuration) IsSupported() bool             { return d.base.IsSupported() }
func (d *scaledDuration) IsPrecise() bool               { return d.base.IsPrecise() }
func (d *scaledDuration) UnitMillis() int64             { return d.base.UnitMillis() * d.scalar }

func (d *scaledDuration) Value(duration, instant int64) (int64, error) {
	v, err := d.base.Value(duration, instant)
	if err != nil {
		return 0, err
	}
	return v / d.scalar, nil
}

func (d *scaledDuration) Millis(value, instant int64) (int64, error) {
	scaled, err := types.SafeMultiply(value, d.scalar)
	if err != nil {
		return 0, err
	}
	return d.base.Millis(scaled, instant)
}

func (d *scaledDuration) Add(instant, amount int64) (int64, error) {
	scaled, err := types.SafeMultiply(amount, d.scalar)
	if err != nil {
		return 0, err
	}
	return d.base.Add(instant, scaled)
}

func (d *scaledDuration) Difference(minuend, subtrahend int64) (int64, error) {
	v, err := d.base.Difference(minuend, subtrahend)
	if err != nil {
		return 0, err
	}
	return v / d.scalar, nil
}

// unsupportedDuration is the measure of a unit the chronology cannot do
// arithmetic in. Eras have no length.
type unsupportedDuration struct {
	typ field.DurationFieldType
}

func (d *unsupportedDuration) Type() field.DurationFieldType { return d.typ }
func (d *unsupportedDuration) Name() string                  { return d.typ.Name() }
func (d *unsupportedDuration) IsSupported() bool             { return false }
func (d *unsupportedDuration) IsPrecise() bool               { return true }
func (d *unsupportedDuration) UnitMillis() int64             { return 0 }

func (d *unsupportedDuration) fail() error {
	return &types.UnsupportedError{Field: d.typ.Name()}
}

func (d *unsupportedDuration) Value(_, _ int64) (int64, error)      { return 0, d.fail() }
func (d *unsupportedDuration) Millis(_, _ int64) (int64, error)     { return 0, d.fail() }
func (d *unsupportedDuration) Add(_, _ int64) (int64, error)        { return 0, d.fail() }
func (d *unsupportedDuration) Difference(_, _ int64) (int64, error) { return 0, d.fail() }
