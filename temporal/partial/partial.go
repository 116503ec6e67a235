// Package partial implements partial instants: ordered sets of calendar
// field values with no anchoring instant, such as a year-month or a time
// of day.
package partial

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/aparo/temporal/temporal/field"
	"github.com/aparo/temporal/temporal/types"
)

// ErrPartial wraps errors returned by the partial package.
var ErrPartial = errors.New("partial")

// Partial is an immutable ordered set of calendar field values interpreted
// in a chronology. Fields are held largest duration first; no two fields
// may share both unit and range. A Partial carries no instant and no zone:
// it is exactly the fields it names.
type Partial struct {
	chrono field.Chronology
	fields []field.DateTimeFieldType
	values []int
}

var _ field.PartialReader = Partial{}

// compareFields orders field kinds largest duration first, breaking unit
// ties by range, the wider range first. Zero means the kinds collide: they
// measure the same thing.
func compareFields(a, b field.DateTimeFieldType) int {
	if c := int(a.DurationType()) - int(b.DurationType()); c != 0 {
		return c
	}
	return int(a.RangeDurationType()) - int(b.RangeDurationType())
}

// New returns a partial of the given fields and values in the given
// chronology. Fields must be ordered largest first with no collisions, the
// arrays must have equal length, and each value must satisfy the bounds
// the chronology imposes given the other values.
func New(c field.Chronology, fields []field.DateTimeFieldType, values []int) (Partial, error) {
	if c == nil {
		return Partial{}, fmt.Errorf("%w: chronology is required", ErrPartial)
	}
	if len(fields) != len(values) {
		return Partial{}, fmt.Errorf("%w: %d fields but %d values", ErrPartial, len(fields), len(values))
	}
	for i := 1; i < len(fields); i++ {
		cmp := compareFields(fields[i-1], fields[i])
		switch {
		case cmp > 0:
			return Partial{}, fmt.Errorf("%w: fields must be largest first, got %v before %v",
				ErrPartial, fields[i-1], fields[i])
		case cmp == 0:
			return Partial{}, fmt.Errorf("%w: fields %v and %v measure the same thing",
				ErrPartial, fields[i-1], fields[i])
		}
	}
	p := Partial{
		chrono: c.WithUTC(),
		fields: slices.Clone(fields),
		values: slices.Clone(values),
	}
	if err := p.chrono.Validate(p, p.values); err != nil {
		return Partial{}, err
	}
	return p, nil
}

// Of returns a single-field partial.
func Of(c field.Chronology, kind field.DateTimeFieldType, value int) (Partial, error) {
	return New(c, []field.DateTimeFieldType{kind}, []int{value})
}

// Chronology returns the chronology the values are interpreted in, always
// in UTC.
func (p Partial) Chronology() field.Chronology { return p.chrono }

// Size returns the number of fields.
func (p Partial) Size() int { return len(p.fields) }

// FieldType returns the kind of the field at index i.
func (p Partial) FieldType(i int) field.DateTimeFieldType { return p.fields[i] }

// Value returns the value of the field at index i.
func (p Partial) Value(i int) int { return p.values[i] }

// FieldTypes returns a copy of the field kinds in order.
func (p Partial) FieldTypes() []field.DateTimeFieldType { return slices.Clone(p.fields) }

// Values returns a copy of the values in field order.
func (p Partial) Values() []int { return slices.Clone(p.values) }

// IndexOf returns the index of kind, or -1 when absent.
func (p Partial) IndexOf(kind field.DateTimeFieldType) int {
	return slices.Index(p.fields, kind)
}

// IsSupported reports whether the partial carries kind.
func (p Partial) IsSupported(kind field.DateTimeFieldType) bool {
	return p.IndexOf(kind) >= 0
}

// Get returns the value stored for kind, failing when the partial does not
// carry it.
func (p Partial) Get(kind field.DateTimeFieldType) (int, error) {
	idx := p.IndexOf(kind)
	if idx < 0 {
		return 0, &types.UnsupportedError{Field: kind.Name()}
	}
	return p.values[idx], nil
}

// With returns a partial with kind set to value, inserting the field at
// its ordered position when absent.
func (p Partial) With(kind field.DateTimeFieldType, value int) (Partial, error) {
	idx := p.IndexOf(kind)
	if idx >= 0 {
		if p.values[idx] == value {
			return p, nil
		}
		return p.WithField(kind, value)
	}
	at := len(p.fields)
	for i, f := range p.fields {
		if compareFields(kind, f) < 0 {
			at = i
			break
		}
	}
	fields := slices.Insert(slices.Clone(p.fields), at, kind)
	values := slices.Insert(slices.Clone(p.values), at, value)
	return New(p.chrono, fields, values)
}

// Without returns a partial without kind; the receiver when absent. The
// last field may be removed, leaving an empty partial.
func (p Partial) Without(kind field.DateTimeFieldType) Partial {
	idx := p.IndexOf(kind)
	if idx < 0 {
		return p
	}
	return Partial{
		chrono: p.chrono,
		fields: slices.Delete(slices.Clone(p.fields), idx, idx+1),
		values: slices.Delete(slices.Clone(p.values), idx, idx+1),
	}
}

// WithField returns a partial with the existing field kind set to value,
// failing when the partial does not carry it.
func (p Partial) WithField(kind field.DateTimeFieldType, value int) (Partial, error) {
	idx := p.IndexOf(kind)
	if idx < 0 {
		return Partial{}, &types.UnsupportedError{Field: kind.Name()}
	}
	values, err := kind.Field(p.chrono).SetInPartial(p, idx, p.Values(), value)
	if err != nil {
		return Partial{}, err
	}
	return Partial{chrono: p.chrono, fields: p.fields, values: values}, nil
}

// WithFieldAdded returns a partial with amount added to the existing field
// kind, overflowing into the partial's larger fields and failing when the
// overflow has nowhere to go.
func (p Partial) WithFieldAdded(kind field.DateTimeFieldType, amount int) (Partial, error) {
	idx := p.IndexOf(kind)
	if idx < 0 {
		return Partial{}, &types.UnsupportedError{Field: kind.Name()}
	}
	if amount == 0 {
		return p, nil
	}
	values, err := kind.Field(p.chrono).AddToPartial(p, idx, p.Values(), amount)
	if err != nil {
		return Partial{}, err
	}
	return Partial{chrono: p.chrono, fields: p.fields, values: values}, nil
}

// IsContiguous reports whether the fields form an unbroken chain: each
// field's range duration equals the unit duration of the one before it,
// as in year, monthOfYear, dayOfMonth, hourOfDay.
func (p Partial) IsContiguous() bool {
	for i := 1; i < len(p.fields); i++ {
		if p.fields[i].RangeDurationType() != p.fields[i-1].DurationType() {
			return false
		}
	}
	return true
}

// IsMatch reports whether instant carries exactly this partial's values in
// its fields.
func (p Partial) IsMatch(instant int64) bool {
	got := p.chrono.Get(p, instant)
	return slices.Equal(got, p.values)
}

// Equal reports whether p and o have the same chronology name, fields and
// values.
func (p Partial) Equal(o Partial) bool {
	if !slices.Equal(p.fields, o.fields) || !slices.Equal(p.values, o.values) {
		return false
	}
	switch {
	case p.chrono == nil && o.chrono == nil:
		return true
	case p.chrono == nil || o.chrono == nil:
		return false
	}
	return p.chrono.Name() == o.chrono.Name()
}

// Compare orders two partials with identical field sets by their values,
// largest field first. Differing field sets fail.
func (p Partial) Compare(o Partial) (int, error) {
	if !slices.Equal(p.fields, o.fields) {
		return 0, fmt.Errorf("%w: cannot compare partials with different fields", ErrPartial)
	}
	return slices.Compare(p.values, o.values), nil
}

// String renders the partial as field=value pairs in order.
func (p Partial) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, f := range p.fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.Name())
		b.WriteByte('=')
		b.WriteString(strconv.Itoa(p.values[i]))
	}
	b.WriteByte(']')
	return b.String()
}
