package temporal

import (
	"github.com/aparo/temporal/temporal/field"
	"github.com/aparo/temporal/temporal/types"
	"github.com/aparo/temporal/temporal/zone"
)

// RoundMode selects how a mutable date-time snaps its instant to the
// configured rounding field after each write.
type RoundMode int

const (
	RoundNone RoundMode = iota
	RoundFloor
	RoundCeiling
	RoundHalfFloor
	RoundHalfCeiling
	RoundHalfEven
)

// MutableDateTime is a date-time that edits in place. An optional
// rounding field snaps the instant after every write, so for example a
// mutable rounded to the minute floor never carries seconds.
type MutableDateTime struct {
	dt        DateTime
	roundOn   field.DateTimeField
	roundMode RoundMode
}

// NewMutableDateTime returns a mutable copy of d with rounding off.
func NewMutableDateTime(d DateTime) *MutableDateTime {
	return &MutableDateTime{dt: d}
}

// Snapshot returns the current value as an immutable date-time.
func (m *MutableDateTime) Snapshot() DateTime { return m.dt }

// Millis returns the current instant.
func (m *MutableDateTime) Millis() int64 { return m.dt.Millis() }

// Chronology returns the chronology edits are computed in.
func (m *MutableDateTime) Chronology() field.Chronology { return m.dt.Chronology() }

// Get returns the value of kind at the current instant.
func (m *MutableDateTime) Get(kind field.DateTimeFieldType) int { return m.dt.Get(kind) }

// SetRounding configures the field and mode that each write snaps to.
// A nil field or RoundNone disables rounding. The current instant is
// re-rounded immediately.
func (m *MutableDateTime) SetRounding(f field.DateTimeField, mode RoundMode) {
	if f == nil || mode == RoundNone {
		m.roundOn, m.roundMode = nil, RoundNone
		return
	}
	m.roundOn, m.roundMode = f, mode
	m.SetMillis(m.dt.Millis())
}

func (m *MutableDateTime) round(instant int64) int64 {
	if m.roundOn == nil {
		return instant
	}
	switch m.roundMode {
	case RoundFloor:
		return m.roundOn.RoundFloor(instant)
	case RoundCeiling:
		return m.roundOn.RoundCeiling(instant)
	case RoundHalfFloor:
		return m.roundOn.RoundHalfFloor(instant)
	case RoundHalfCeiling:
		return m.roundOn.RoundHalfCeiling(instant)
	case RoundHalfEven:
		return m.roundOn.RoundHalfEven(instant)
	default:
		return instant
	}
}

// SetMillis moves the mutable to a new instant, applying rounding.
func (m *MutableDateTime) SetMillis(millis int64) {
	m.dt = m.dt.WithMillis(m.round(millis))
}

// SetZone switches the viewing zone keeping the instant.
func (m *MutableDateTime) SetZone(z zone.Zone) {
	m.dt = m.dt.WithZone(z)
}

// SetZoneRetainFields switches the zone keeping the wall-clock fields.
func (m *MutableDateTime) SetZoneRetainFields(z zone.Zone) error {
	dt, err := m.dt.WithZoneRetainFields(z)
	if err != nil {
		return err
	}
	m.dt = dt
	m.SetMillis(m.dt.Millis())
	return nil
}

// Set writes value into kind, then rounds.
func (m *MutableDateTime) Set(kind field.DateTimeFieldType, value int) error {
	millis, err := kind.Field(m.Chronology()).Set(m.dt.Millis(), value)
	if err != nil {
		return err
	}
	m.SetMillis(millis)
	return nil
}

// Add moves the instant by amount units of kind, then rounds.
func (m *MutableDateTime) Add(kind field.DateTimeFieldType, amount int64) error {
	millis, err := kind.Field(m.Chronology()).Add(m.dt.Millis(), amount)
	if err != nil {
		return err
	}
	m.SetMillis(millis)
	return nil
}

// AddPeriod moves the instant by p scaled by scalar, then rounds.
func (m *MutableDateTime) AddPeriod(p field.PeriodReader, scalar int) error {
	millis, err := m.Chronology().AddPeriod(p, m.dt.Millis(), scalar)
	if err != nil {
		return err
	}
	m.SetMillis(millis)
	return nil
}

// AddDuration moves the instant by an exact span, then rounds.
func (m *MutableDateTime) AddDuration(d Duration) error {
	millis, err := types.SafeAdd(m.dt.Millis(), d.Millis())
	if err != nil {
		return err
	}
	m.SetMillis(millis)
	return nil
}

// SetDate writes the date fields keeping the time of day.
func (m *MutableDateTime) SetDate(year, monthOfYear, dayOfMonth int) error {
	c := m.Chronology()
	midnight, err := c.DateMillis(year, monthOfYear, dayOfMonth)
	if err != nil {
		return err
	}
	msOfDay := c.MillisOfDay().Get(m.dt.Millis())
	millis, err := c.MillisOfDay().Set(midnight, msOfDay)
	if err != nil {
		return err
	}
	m.SetMillis(millis)
	return nil
}

// SetTime writes the time fields keeping the date.
func (m *MutableDateTime) SetTime(hourOfDay, minuteOfHour, secondOfMinute, millisOfSecond int) error {
	if err := m.Set(field.HourOfDay, hourOfDay); err != nil {
		return err
	}
	if err := m.Set(field.MinuteOfHour, minuteOfHour); err != nil {
		return err
	}
	if err := m.Set(field.SecondOfMinute, secondOfMinute); err != nil {
		return err
	}
	return m.Set(field.MillisOfSecond, millisOfSecond)
}

func (m *MutableDateTime) String() string { return m.dt.String() }
