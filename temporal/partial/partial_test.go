package partial

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aparo/temporal/temporal/chrono"
	"github.com/aparo/temporal/temporal/field"
	"github.com/aparo/temporal/temporal/types"
)

func mustDate(t *testing.T, fields []field.DateTimeFieldType, values []int) Partial {
	t.Helper()
	p, err := New(chrono.ISOUTC(), fields, values)
	require.NoError(t, err)
	return p
}

func yearMonthDay(t *testing.T, year, month, day int) Partial {
	t.Helper()
	return mustDate(t,
		[]field.DateTimeFieldType{field.Year, field.MonthOfYear, field.DayOfMonth},
		[]int{year, month, day})
}

func TestNew(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	p := yearMonthDay(t, 2024, 2, 29)
	a.Equal(3, p.Size())
	a.Equal(field.Year, p.FieldType(0))
	a.Equal(2024, p.Value(0))
	a.Equal("ISO", p.Chronology().Name())
	a.Equal("[year=2024, monthOfYear=2, dayOfMonth=29]", p.String())

	// Round-trip: every stored value reads back through Get.
	for i, kind := range p.FieldTypes() {
		got, err := p.Get(kind)
		r.NoError(err)
		a.Equal(p.Value(i), got)
	}

	for name, tc := range map[string]struct {
		fields []field.DateTimeFieldType
		values []int
		want   error
	}{
		"length_mismatch": {
			fields: []field.DateTimeFieldType{field.Year},
			values: []int{2024, 6},
			want:   ErrPartial,
		},
		"wrong_order": {
			fields: []field.DateTimeFieldType{field.DayOfMonth, field.MonthOfYear},
			values: []int{10, 6},
			want:   ErrPartial,
		},
		"same_measure": {
			fields: []field.DateTimeFieldType{field.HourOfDay, field.ClockhourOfDay},
			values: []int{10, 10},
			want:   ErrPartial,
		},
		"value_out_of_range": {
			fields: []field.DateTimeFieldType{field.MonthOfYear},
			values: []int{13},
			want:   types.ErrRange,
		},
		"impossible_date": {
			fields: []field.DateTimeFieldType{field.Year, field.MonthOfYear, field.DayOfMonth},
			values: []int{2023, 2, 29},
			want:   types.ErrRange,
		},
	} {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := New(chrono.ISOUTC(), tc.fields, tc.values)
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := New(nil, nil, nil)
	r.ErrorIs(err, ErrPartial)
}

func TestGetAndSupport(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	p := yearMonthDay(t, 2024, 6, 10)
	a.True(p.IsSupported(field.MonthOfYear))
	a.False(p.IsSupported(field.HourOfDay))
	a.Equal(1, p.IndexOf(field.MonthOfYear))
	a.Equal(-1, p.IndexOf(field.SecondOfDay))

	_, err := p.Get(field.HourOfDay)
	r.ErrorIs(err, types.ErrUnsupported)
}

func TestWithInsertsInOrder(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	p := mustDate(t,
		[]field.DateTimeFieldType{field.Year, field.DayOfMonth},
		[]int{2024, 10})

	q, err := p.With(field.MonthOfYear, 6)
	r.NoError(err)
	a.Equal([]field.DateTimeFieldType{field.Year, field.MonthOfYear, field.DayOfMonth}, q.FieldTypes())
	a.Equal([]int{2024, 6, 10}, q.Values())

	// Setting a present field keeps the shape.
	q, err = q.With(field.MonthOfYear, 7)
	r.NoError(err)
	a.Equal([]int{2024, 7, 10}, q.Values())

	// Same value returns the receiver unchanged.
	same, err := q.With(field.MonthOfYear, 7)
	r.NoError(err)
	a.True(q.Equal(same))

	// The inserted value is validated against the whole partial.
	feb := yearMonthDay(t, 2023, 2, 28)
	_, err = feb.WithField(field.DayOfMonth, 29)
	r.ErrorIs(err, types.ErrRange)

	_, err = p.WithField(field.HourOfDay, 3)
	r.ErrorIs(err, types.ErrUnsupported)
}

func TestWithout(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	p := yearMonthDay(t, 2024, 6, 10)
	q := p.Without(field.MonthOfYear)
	a.Equal([]field.DateTimeFieldType{field.Year, field.DayOfMonth}, q.FieldTypes())
	a.Equal([]int{2024, 10}, q.Values())

	// Removing an absent field returns the receiver.
	a.True(q.Equal(q.Without(field.HourOfDay)))

	empty := q.Without(field.Year).Without(field.DayOfMonth)
	a.Equal(0, empty.Size())
}

func TestWithFieldAdded(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	p := yearMonthDay(t, 2023, 11, 30)

	// Overflow carries into the larger fields.
	q, err := p.WithFieldAdded(field.MonthOfYear, 2)
	r.NoError(err)
	a.Equal([]int{2024, 1, 30}, q.Values())

	q, err = p.WithFieldAdded(field.DayOfMonth, 1)
	r.NoError(err)
	a.Equal([]int{2023, 12, 1}, q.Values())

	q, err = p.WithFieldAdded(field.DayOfMonth, -30)
	r.NoError(err)
	a.Equal([]int{2023, 10, 31}, q.Values())

	// With no larger field to carry into, overflow fails.
	months := mustDate(t, []field.DateTimeFieldType{field.MonthOfYear}, []int{11})
	_, err = months.WithFieldAdded(field.MonthOfYear, 2)
	r.ErrorIs(err, types.ErrRange)

	// Zero is a no-op even for edge values.
	q, err = p.WithFieldAdded(field.DayOfMonth, 0)
	r.NoError(err)
	a.True(p.Equal(q))
}

func TestIsContiguous(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	a.True(yearMonthDay(t, 2024, 6, 10).IsContiguous())

	timeOfDay := mustDate(t,
		[]field.DateTimeFieldType{field.HourOfDay, field.MinuteOfHour, field.SecondOfMinute},
		[]int{12, 30, 15})
	a.True(timeOfDay.IsContiguous())

	// year + dayOfMonth skips the month link.
	gappy := mustDate(t,
		[]field.DateTimeFieldType{field.Year, field.DayOfMonth},
		[]int{2024, 10})
	a.False(gappy.IsContiguous())
}

func TestIsMatch(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	p := yearMonthDay(t, 2024, 2, 29)
	leapDay := time.Date(2024, 2, 29, 15, 4, 5, 0, time.UTC).UnixMilli()
	otherDay := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	a.True(p.IsMatch(leapDay))
	a.False(p.IsMatch(otherDay))
}

func TestCompare(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	early := yearMonthDay(t, 2024, 2, 29)
	late := yearMonthDay(t, 2024, 3, 1)

	cmp, err := early.Compare(late)
	r.NoError(err)
	a.Equal(-1, cmp)
	cmp, err = late.Compare(early)
	r.NoError(err)
	a.Equal(1, cmp)
	cmp, err = early.Compare(early)
	r.NoError(err)
	a.Equal(0, cmp)

	other := mustDate(t, []field.DateTimeFieldType{field.Year}, []int{2024})
	_, err = early.Compare(other)
	r.ErrorIs(err, ErrPartial)
}
