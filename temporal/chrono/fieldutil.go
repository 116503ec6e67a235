package chrono

import (
	"github.com/aparo/temporal/temporal/field"
	"github.com/aparo/temporal/temporal/types"
)

// verifyBounds range-checks value for f, naming the field and the bounds
// in the error.
func verifyBounds(f field.DateTimeField, value, lower, upper int) error {
	if value < lower || value > upper {
		return types.NewRangeError(f.Name(), int64(value), int64(lower), int64(upper))
	}
	return nil
}

// wrapValue wraps current+amount into [min, max], both inclusive.
func wrapValue(current, amount, min, max int) int {
	size := int64(max-min) + 1
	wrapped := types.FloorMod(int64(current-min)+int64(amount), size)
	return int(wrapped) + min
}

// The half-rounding modes derive from floor and ceiling. An instant
// already on a boundary has floor == ceiling == instant.

func roundHalfFloor(f field.DateTimeField, instant int64) int64 {
	floor := f.RoundFloor(instant)
	ceiling := f.RoundCeiling(instant)
	if instant-floor <= ceiling-instant {
		return floor
	}
	return ceiling
}

func roundHalfCeiling(f field.DateTimeField, instant int64) int64 {
	floor := f.RoundFloor(instant)
	ceiling := f.RoundCeiling(instant)
	if ceiling-instant <= instant-floor {
		return ceiling
	}
	return floor
}

func roundHalfEven(f field.DateTimeField, instant int64) int64 {
	floor := f.RoundFloor(instant)
	ceiling := f.RoundCeiling(instant)
	switch {
	case instant-floor < ceiling-instant:
		return floor
	case ceiling-instant < instant-floor:
		return ceiling
	case f.Get(floor)%2 == 0:
		return floor
	default:
		return ceiling
	}
}

// setInPartial is the common SetInPartial: range-check against the bounds
// the partial pins down, then write in place.
func setInPartial(f field.DateTimeField, partial field.PartialReader, index int,
	values []int, value int,
) ([]int, error) {
	if err := verifyBounds(f, value, f.MinimumValue(), f.MaximumValueIn(partial, values)); err != nil {
		return nil, err
	}
	values[index] = value
	return values, nil
}

// addToPartial is the common AddToPartial: add within the field's bounds,
// carrying overflow into the next larger field of the partial one step at
// a time. Overflow past the partial's largest field has nowhere to go and
// fails.
func addToPartial(f field.DateTimeField, partial field.PartialReader, index int,
	values []int, amount int,
) ([]int, error) {
	if amount == 0 {
		return values, nil
	}
	carry := func(values []int, by int) ([]int, error) {
		larger := partial.FieldType(index - 1).Field(partial.Chronology())
		return larger.AddToPartial(partial, index-1, values, by)
	}
	for amount > 0 {
		max := f.MaximumValueIn(partial, values)
		proposed := int64(values[index]) + int64(amount)
		if proposed <= int64(max) {
			values[index] = int(proposed)
			break
		}
		if index == 0 {
			return nil, types.NewRangeError(f.Name(), proposed, int64(f.MinimumValue()), int64(max))
		}
		amount -= max + 1 - values[index]
		var err error
		if values, err = carry(values, 1); err != nil {
			return nil, err
		}
		values[index] = f.MinimumValue()
	}
	for amount < 0 {
		min := f.MinimumValue()
		proposed := int64(values[index]) + int64(amount)
		if proposed >= int64(min) {
			values[index] = int(proposed)
			break
		}
		if index == 0 {
			return nil, types.NewRangeError(f.Name(), proposed, int64(min), int64(f.MaximumValueIn(partial, values)))
		}
		amount += values[index] - min + 1
		var err error
		if values, err = carry(values, -1); err != nil {
			return nil, err
		}
		values[index] = f.MaximumValueIn(partial, values)
	}
	return values, nil
}
