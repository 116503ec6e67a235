package zone

import (
	"math"
	"sync/atomic"
)

// cacheBuckets must be a power of two. Instants hash by their 2^32 ms
// period, roughly 49 days, so a year of lookups touches a handful of
// buckets.
const cacheBuckets = 64

// span is a maximal run of instants sharing one offset state.
type span struct {
	start    int64 // inclusive
	end      int64 // exclusive
	offset   int
	standard int
	nameKey  string
}

func (s *span) covers(instant int64) bool {
	return s != nil && s.start <= instant && instant < s.end
}

// cached wraps a rule-based zone with a lock-free memo of offset spans.
// Transition tables never change once built, so a stale bucket is only a
// wasted recomputation, never a wrong answer.
type cached struct {
	under Zone
	spans [cacheBuckets]atomic.Pointer[span]
}

// cache wraps z for repeated offset lookups. Fixed zones gain nothing and
// are returned as is.
func cache(z Zone) Zone {
	if z.IsFixed() {
		return z
	}
	return &cached{under: z}
}

func (z *cached) spanAt(instant int64) *span {
	bucket := &z.spans[uint64(instant>>32)&(cacheBuckets-1)]
	if s := bucket.Load(); s.covers(instant) {
		return s
	}

	start := int64(math.MinInt64)
	if prev := z.under.PreviousTransition(instant); prev != instant {
		start = prev + 1
	}
	end := int64(math.MaxInt64)
	if next := z.under.NextTransition(instant); next != instant {
		end = next
	}
	s := &span{
		start:    start,
		end:      end,
		offset:   z.under.OffsetAt(instant),
		standard: z.under.StandardOffsetAt(instant),
		nameKey:  z.under.NameKeyAt(instant),
	}
	bucket.Store(s)
	return s
}

func (z *cached) ID() string                    { return z.under.ID() }
func (z *cached) IsFixed() bool                 { return false }
func (z *cached) OffsetAt(t int64) int          { return z.spanAt(t).offset }
func (z *cached) StandardOffsetAt(t int64) int  { return z.spanAt(t).standard }
func (z *cached) NameKeyAt(t int64) string      { return z.spanAt(t).nameKey }
func (z *cached) NextTransition(t int64) int64  { return z.under.NextTransition(t) }
func (z *cached) PreviousTransition(t int64) int64 { return z.under.PreviousTransition(t) }

func (z *cached) String() string { return z.ID() }
