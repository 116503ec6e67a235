package zone

import (
	"fmt"
	"math"

	"golang.org/x/exp/slices"

	"github.com/aparo/temporal/temporal/types"
)

// transition records the state of a zone from Instant forward, until the
// next transition.
type transition struct {
	instant  int64
	offset   int
	standard int
	nameKey  string
}

// ruled is a Zone backed by an ordered transition table. The zero'th state
// (initial) applies to all instants before the first transition.
type ruled struct {
	id          string
	initial     transition
	transitions []transition
}

func (z *ruled) ID() string    { return z.id }
func (z *ruled) IsFixed() bool { return len(z.transitions) == 0 }

func (z *ruled) String() string { return z.id }

// stateAt returns the transition record in force at instant.
func (z *ruled) stateAt(instant int64) *transition {
	// Index of the first transition after instant.
	i, ok := slices.BinarySearchFunc(z.transitions, instant, func(tr transition, t int64) int {
		switch {
		case tr.instant < t:
			return -1
		case tr.instant > t:
			return 1
		default:
			return 0
		}
	})
	if ok {
		i++
	}
	if i == 0 {
		return &z.initial
	}
	return &z.transitions[i-1]
}

func (z *ruled) OffsetAt(instant int64) int         { return z.stateAt(instant).offset }
func (z *ruled) StandardOffsetAt(instant int64) int { return z.stateAt(instant).standard }
func (z *ruled) NameKeyAt(instant int64) string     { return z.stateAt(instant).nameKey }

func (z *ruled) NextTransition(instant int64) int64 {
	for _, tr := range z.transitions {
		if tr.instant > instant {
			return tr.instant
		}
	}
	return instant
}

func (z *ruled) PreviousTransition(instant int64) int64 {
	for i := len(z.transitions) - 1; i >= 0; i-- {
		if t := z.transitions[i].instant; t <= instant {
			if t > math.MinInt64 {
				return t - 1
			}
			break
		}
	}
	return instant
}

// Builder assembles a rule-based Zone from an initial state and an
// ascending sequence of transitions.
type Builder struct {
	zone *ruled
	err  error
}

// NewBuilder starts a zone with the given id and the offsets and name key
// in force before the first transition.
func NewBuilder(id string, offset, standard int, nameKey string) *Builder {
	b := &Builder{zone: &ruled{
		id:      id,
		initial: transition{instant: math.MinInt64, offset: offset, standard: standard, nameKey: nameKey},
	}}
	if id == "" {
		b.err = fmt.Errorf("%w: a zone requires an id", ErrZone)
	}
	b.checkOffsets(offset, standard)
	return b
}

// Transition appends a transition taking effect at the UTC instant. Calls
// must be in strictly ascending instant order.
func (b *Builder) Transition(instant int64, offset, standard int, nameKey string) *Builder {
	if b.err != nil {
		return b
	}
	if n := len(b.zone.transitions); n > 0 && instant <= b.zone.transitions[n-1].instant {
		b.err = fmt.Errorf(
			"%w: transition at %d is not after its predecessor at %d in %s",
			ErrZone, instant, b.zone.transitions[n-1].instant, b.zone.id,
		)
		return b
	}
	b.checkOffsets(offset, standard)
	b.zone.transitions = append(b.zone.transitions, transition{
		instant: instant, offset: offset, standard: standard, nameKey: nameKey,
	})
	return b
}

func (b *Builder) checkOffsets(offset, standard int) {
	if b.err != nil {
		return
	}
	for _, ms := range []int{offset, standard} {
		if _, err := types.CheckOffset(ms); err != nil {
			b.err = fmt.Errorf("%w: %s: %w", ErrZone, b.zone.id, err)
			return
		}
	}
}

// Build returns the assembled zone, cached for repeated offset lookups, or
// the first error recorded while assembling it.
func (b *Builder) Build() (Zone, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.zone.IsFixed() {
		return b.zone, nil
	}
	return cache(b.zone), nil
}
