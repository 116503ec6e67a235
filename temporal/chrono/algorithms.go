package chrono

import (
	"github.com/aparo/temporal/temporal/field"
	"github.com/aparo/temporal/temporal/types"
)

// getPartial extracts one value per field of partial from instant.
func getPartial(c field.Chronology, partial field.PartialReader, instant int64) []int {
	values := make([]int, partial.Size())
	for i := range values {
		values[i] = partial.FieldType(i).Field(c).Get(instant)
	}
	return values
}

// validatePartial checks values first against each field's absolute
// bounds, then against the tighter bounds the other values pin down, so a
// 30 February fails even though both 2 and 30 are individually legal.
func validatePartial(c field.Chronology, partial field.PartialReader, values []int) error {
	for i, value := range values {
		f := partial.FieldType(i).Field(c)
		if err := verifyBounds(f, value, f.MinimumValue(), f.MaximumValue()); err != nil {
			return err
		}
	}
	for i, value := range values {
		f := partial.FieldType(i).Field(c)
		max := f.MaximumValueIn(partial, values)
		if value > max {
			err := types.NewRangeError(f.Name(), int64(value), int64(f.MinimumValue()), int64(max))
			err.Explain = "bounds tightened by the partial's larger fields"
			return err
		}
	}
	return nil
}

// setPartial writes each field value of partial onto instant, largest
// field first.
func setPartial(c field.Chronology, partial field.PartialReader, instant int64) (int64, error) {
	var err error
	for i := 0; i < partial.Size(); i++ {
		instant, err = partial.FieldType(i).Field(c).Set(instant, partial.Value(i))
		if err != nil {
			return 0, err
		}
	}
	return instant, nil
}

// addPeriod moves instant by each nonzero field of period multiplied by
// scalar, largest field first.
func addPeriod(c field.Chronology, period field.PeriodReader, instant int64, scalar int) (int64, error) {
	var err error
	for i := 0; i < period.Size(); i++ {
		value := int64(period.Value(i))
		if value == 0 {
			continue
		}
		amount, err2 := types.SafeMultiply(value, int64(scalar))
		if err2 != nil {
			return 0, err2
		}
		instant, err = period.FieldType(i).Field(c).Add(instant, amount)
		if err != nil {
			return 0, err
		}
	}
	return instant, nil
}

// periodValuesBetween decomposes the elapsed time from start to end into
// the given field vocabulary. Fields are consumed largest first and the
// remainder is recomputed after each, so the result depends on the field
// order.
func periodValuesBetween(c field.Chronology, fieldTypes []field.DurationFieldType,
	start, end int64,
) ([]int, error) {
	values := make([]int, len(fieldTypes))
	if start == end {
		return values, nil
	}
	for i, typ := range fieldTypes {
		f := typ.Field(c)
		if !f.IsSupported() {
			continue
		}
		diff, err := f.Difference(end, start)
		if err != nil {
			return nil, err
		}
		v, err := types.SafeToInt(diff)
		if err != nil {
			return nil, err
		}
		values[i] = int(v)
		start, err = f.Add(start, diff)
		if err != nil {
			return nil, err
		}
	}
	return values, nil
}

// periodValuesOf decomposes an exact millisecond span likewise, counting
// only precise fields; imprecise fields stay zero.
func periodValuesOf(c field.Chronology, fieldTypes []field.DurationFieldType,
	duration int64,
) ([]int, error) {
	values := make([]int, len(fieldTypes))
	if duration == 0 {
		return values, nil
	}
	var current int64
	for i, typ := range fieldTypes {
		f := typ.Field(c)
		if !f.IsSupported() || !f.IsPrecise() {
			continue
		}
		diff, err := f.Difference(duration, current)
		if err != nil {
			return nil, err
		}
		v, err := types.SafeToInt(diff)
		if err != nil {
			return nil, err
		}
		values[i] = int(v)
		current, err = f.Add(current, diff)
		if err != nil {
			return nil, err
		}
	}
	return values, nil
}
