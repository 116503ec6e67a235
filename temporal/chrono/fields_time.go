package chrono

import (
	"github.com/aparo/temporal/temporal/field"
	"github.com/aparo/temporal/temporal/types"
)

// preciseField is a calendar field whose unit and range are both fixed
// millisecond lengths, such as minuteOfHour or hourOfDay. The phase
// shifts the bucketing origin; dayOfWeek uses it to anchor weeks on
// Monday while still rounding on day boundaries.
type preciseField struct {
	typ         field.DateTimeFieldType
	unit        field.DurationField
	rng         field.DurationField
	unitMillis  int64
	rangeMillis int64
	min         int
	max         int
	phase       int64
}

func newPreciseField(typ field.DateTimeFieldType, unit, rng field.DurationField,
	rangeMillis int64, min int, phase int64,
) *preciseField {
	return &preciseField{
		typ:         typ,
		unit:        unit,
		rng:         rng,
		unitMillis:  unit.UnitMillis(),
		rangeMillis: rangeMillis,
		min:         min,
		max:         min + int(rangeMillis/unit.UnitMillis()) - 1,
		phase:       phase,
	}
}

func (f *preciseField) Type() field.DateTimeFieldType { return f.typ }
func (f *preciseField) Name() string                  { return f.typ.Name() }
func (f *preciseField) IsSupported() bool             { return true }
func (f *preciseField) IsLenient() bool               { return false }

func (f *preciseField) Get(instant int64) int {
	return int(types.FloorMod(instant+f.phase, f.rangeMillis)/f.unitMillis) + f.min
}

func (f *preciseField) Set(instant int64, value int) (int64, error) {
	if err := verifyBounds(f, value, f.min, f.max); err != nil {
		return 0, err
	}
	return types.SafeAdd(instant, int64(value-f.Get(instant))*f.unitMillis)
}

func (f *preciseField) Add(instant, amount int64) (int64, error) {
	return f.unit.Add(instant, amount)
}

func (f *preciseField) AddWrapField(instant int64, amount int) (int64, error) {
	return f.Set(instant, wrapValue(f.Get(instant), amount, f.min, f.max))
}

func (f *preciseField) SetInPartial(partial field.PartialReader, index int,
	values []int, value int,
) ([]int, error) {
	return setInPartial(f, partial, index, values, value)
}

func (f *preciseField) AddToPartial(partial field.PartialReader, index int,
	values []int, amount int,
) ([]int, error) {
	return addToPartial(f, partial, index, values, amount)
}

func (f *preciseField) MinimumValue() int               { return f.min }
func (f *preciseField) MaximumValue() int               { return f.max }
func (f *preciseField) MinimumValueAt(_ int64) int      { return f.min }
func (f *preciseField) MaximumValueAt(_ int64) int      { return f.max }
func (f *preciseField) MaximumValueIn(_ field.PartialReader, _ []int) int {
	return f.max
}

func (f *preciseField) DurationField() field.DurationField      { return f.unit }
func (f *preciseField) RangeDurationField() field.DurationField { return f.rng }

func (f *preciseField) RoundFloor(instant int64) int64 {
	return instant - types.FloorMod(instant, f.unitMillis)
}

func (f *preciseField) RoundCeiling(instant int64) int64 {
	rem := types.FloorMod(instant, f.unitMillis)
	if rem == 0 {
		return instant
	}
	return instant - rem + f.unitMillis
}

func (f *preciseField) RoundHalfFloor(instant int64) int64   { return roundHalfFloor(f, instant) }
func (f *preciseField) RoundHalfCeiling(instant int64) int64 { return roundHalfCeiling(f, instant) }
func (f *preciseField) RoundHalfEven(instant int64) int64    { return roundHalfEven(f, instant) }

func (f *preciseField) Remainder(instant int64) int64 {
	return types.FloorMod(instant, f.unitMillis)
}

// boundedField is a calendar field with a precise unit but an
// instant-dependent maximum, such as dayOfMonth.
type boundedField struct {
	typ        field.DateTimeFieldType
	unit       field.DurationField
	rng        field.DurationField
	unitMillis int64
	max        int
	get        func(instant int64) int
	maxAt      func(instant int64) int
	maxIn      func(partial field.PartialReader, values []int) int
	floor      func(instant int64) int64
}

func (f *boundedField) Type() field.DateTimeFieldType { return f.typ }
func (f *boundedField) Name() string                  { return f.typ.Name() }
func (f *boundedField) IsSupported() bool             { return true }
func (f *boundedField) IsLenient() bool               { return false }

func (f *boundedField) Get(instant int64) int { return f.get(instant) }

func (f *boundedField) Set(instant int64, value int) (int64, error) {
	if err := verifyBounds(f, value, 1, f.maxAt(instant)); err != nil {
		return 0, err
	}
	return types.SafeAdd(instant, int64(value-f.get(instant))*f.unitMillis)
}

func (f *boundedField) Add(instant, amount int64) (int64, error) {
	return f.unit.Add(instant, amount)
}

func (f *boundedField) AddWrapField(instant int64, amount int) (int64, error) {
	return f.Set(instant, wrapValue(f.get(instant), amount, 1, f.maxAt(instant)))
}

func (f *boundedField) SetInPartial(partial field.PartialReader, index int,
	values []int, value int,
) ([]int, error) {
	return setInPartial(f, partial, index, values, value)
}

func (f *boundedField) AddToPartial(partial field.PartialReader, index int,
	values []int, amount int,
) ([]int, error) {
	return addToPartial(f, partial, index, values, amount)
}

func (f *boundedField) MinimumValue() int          { return 1 }
func (f *boundedField) MaximumValue() int          { return f.max }
func (f *boundedField) MinimumValueAt(_ int64) int { return 1 }
func (f *boundedField) MaximumValueAt(instant int64) int {
	return f.maxAt(instant)
}

func (f *boundedField) MaximumValueIn(partial field.PartialReader, values []int) int {
	if f.maxIn == nil {
		return f.max
	}
	return f.maxIn(partial, values)
}

func (f *boundedField) DurationField() field.DurationField      { return f.unit }
func (f *boundedField) RangeDurationField() field.DurationField { return f.rng }

func (f *boundedField) RoundFloor(instant int64) int64 {
	if f.floor != nil {
		return f.floor(instant)
	}
	return instant - types.FloorMod(instant, f.unitMillis)
}

func (f *boundedField) RoundCeiling(instant int64) int64 {
	floor := f.RoundFloor(instant)
	if floor == instant {
		return instant
	}
	return floor + f.unitMillis
}

func (f *boundedField) RoundHalfFloor(instant int64) int64   { return roundHalfFloor(f, instant) }
func (f *boundedField) RoundHalfCeiling(instant int64) int64 { return roundHalfCeiling(f, instant) }
func (f *boundedField) RoundHalfEven(instant int64) int64    { return roundHalfEven(f, instant) }

func (f *boundedField) Remainder(instant int64) int64 {
	return instant - f.RoundFloor(instant)
}

// zeroIsMax renames the zero value of a wrapped field to the range size,
// turning hourOfDay 0..23 into clockhourOfDay 1..24.
type zeroIsMax struct {
	typ  field.DateTimeFieldType
	base field.DateTimeField
	max  int
}

func (f *zeroIsMax) Type() field.DateTimeFieldType { return f.typ }
func (f *zeroIsMax) Name() string                  { return f.typ.Name() }
func (f *zeroIsMax) IsSupported() bool             { return true }
func (f *zeroIsMax) IsLenient() bool               { return false }

func (f *zeroIsMax) Get(instant int64) int {
	if v := f.base.Get(instant); v != 0 {
		return v
	}
	return f.max
}

func (f *zeroIsMax) Set(instant int64, value int) (int64, error) {
	if err := verifyBounds(f, value, 1, f.max); err != nil {
		return 0, err
	}
	if value == f.max {
		value = 0
	}
	return f.base.Set(instant, value)
}

func (f *zeroIsMax) Add(instant, amount int64) (int64, error) {
	return f.base.Add(instant, amount)
}

func (f *zeroIsMax) AddWrapField(instant int64, amount int) (int64, error) {
	return f.Set(instant, wrapValue(f.Get(instant), amount, 1, f.max))
}

func (f *zeroIsMax) SetInPartial(partial field.PartialReader, index int,
	values []int, value int,
) ([]int, error) {
	return setInPartial(f, partial, index, values, value)
}

func (f *zeroIsMax) AddToPartial(partial field.PartialReader, index int,
	values []int, amount int,
) ([]int, error) {
	return addToPartial(f, partial, index, values, amount)
}

func (f *zeroIsMax) MinimumValue() int          { return 1 }
func (f *zeroIsMax) MaximumValue() int          { return f.max }
func (f *zeroIsMax) MinimumValueAt(_ int64) int { return 1 }
func (f *zeroIsMax) MaximumValueAt(_ int64) int { return f.max }
func (f *zeroIsMax) MaximumValueIn(_ field.PartialReader, _ []int) int {
	return f.max
}

func (f *zeroIsMax) DurationField() field.DurationField      { return f.base.DurationField() }
func (f *zeroIsMax) RangeDurationField() field.DurationField { return f.base.RangeDurationField() }

func (f *zeroIsMax) RoundFloor(instant int64) int64          { return f.base.RoundFloor(instant) }
func (f *zeroIsMax) RoundCeiling(instant int64) int64        { return f.base.RoundCeiling(instant) }
func (f *zeroIsMax) RoundHalfFloor(instant int64) int64      { return f.base.RoundHalfFloor(instant) }
func (f *zeroIsMax) RoundHalfCeiling(instant int64) int64    { return f.base.RoundHalfCeiling(instant) }
func (f *zeroIsMax) RoundHalfEven(instant int64) int64       { return f.base.RoundHalfEven(instant) }
func (f *zeroIsMax) Remainder(instant int64) int64           { return f.base.Remainder(instant) }
