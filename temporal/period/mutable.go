package period

import (
	"golang.org/x/exp/slices"

	"github.com/aparo/temporal/temporal/field"
	"github.com/aparo/temporal/temporal/types"
)

// MutablePeriod is an in-place editable period. It is not safe for
// concurrent use; call Period to snapshot an immutable copy.
type MutablePeriod struct {
	typ    *Type
	values []int
}

var _ field.PeriodReader = (*MutablePeriod)(nil)

// NewMutable returns an empty mutable period of the given type, or of the
// standard type when typ is nil.
func NewMutable(typ *Type) *MutablePeriod {
	if typ == nil {
		typ = typeStandard
	}
	return &MutablePeriod{typ: typ, values: make([]int, typ.Size())}
}

// Type returns the period's type.
func (m *MutablePeriod) Type() *Type { return m.typ }

// Size returns the number of fields the period carries.
func (m *MutablePeriod) Size() int { return m.typ.Size() }

// FieldType returns the duration kind at position i.
func (m *MutablePeriod) FieldType(i int) field.DurationFieldType { return m.typ.FieldType(i) }

// Value returns the amount at position i.
func (m *MutablePeriod) Value(i int) int { return m.values[i] }

// Get returns the amount stored for kind, zero when unsupported.
func (m *MutablePeriod) Get(kind field.DurationFieldType) int {
	if idx := m.typ.Index(kind); idx >= 0 {
		return m.values[idx]
	}
	return 0
}

// Clear resets every amount to zero.
func (m *MutablePeriod) Clear() {
	for i := range m.values {
		m.values[i] = 0
	}
}

// Set stores value for kind, failing when the kind is unsupported.
func (m *MutablePeriod) Set(kind field.DurationFieldType, value int) error {
	idx := m.typ.Index(kind)
	if idx < 0 {
		return &types.UnsupportedError{Field: kind.Name()}
	}
	m.values[idx] = value
	return nil
}

// Add adds value to the amount stored for kind. Adding zero to an
// unsupported kind is a no-op.
func (m *MutablePeriod) Add(kind field.DurationFieldType, value int) error {
	if value == 0 {
		return nil
	}
	idx := m.typ.Index(kind)
	if idx < 0 {
		return &types.UnsupportedError{Field: kind.Name()}
	}
	sum, err := types.SafeAdd(int64(m.values[idx]), int64(value))
	if err != nil {
		return err
	}
	v, err := types.SafeToInt(sum)
	if err != nil {
		return err
	}
	m.values[idx] = int(v)
	return nil
}

// SetPeriod replaces every field with the amounts of o. Fields of m's type
// absent from o are zeroed; nonzero fields of o absent from m's type fail.
func (m *MutablePeriod) SetPeriod(o field.PeriodReader) error {
	m.Clear()
	return m.AddPeriod(o)
}

// AddPeriod adds every field of o under the same rules as Add.
func (m *MutablePeriod) AddPeriod(o field.PeriodReader) error {
	if o == nil {
		return nil
	}
	for i := 0; i < o.Size(); i++ {
		if err := m.Add(o.FieldType(i), o.Value(i)); err != nil {
			return err
		}
	}
	return nil
}

// Period snapshots the current amounts as an immutable Period.
func (m *MutablePeriod) Period() Period {
	return Period{typ: m.typ, values: slices.Clone(m.values)}
}
