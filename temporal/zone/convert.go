package zone

import (
	"math"

	"github.com/aparo/temporal/temporal/types"
)

// UTCToLocal converts a UTC instant to the local wall-clock instant of z.
// Every UTC instant has exactly one local representation, so the only
// failure mode is int64 overflow.
func UTCToLocal(z Zone, instantUTC int64) (int64, error) {
	return types.SafeAdd(instantUTC, int64(z.OffsetAt(instantUTC)))
}

// nextAfter returns the next transition after instant, or MaxInt64 when the
// zone echoes the instant back to signal exhaustion.
func nextAfter(z Zone, instant int64) int64 {
	next := z.NextTransition(instant)
	if next == instant {
		return math.MaxInt64
	}
	return next
}

// resolveLocal finds the offset that converts a local wall-clock instant of
// z back to UTC, reporting whether the local instant sits inside a
// daylight-saving gap.
//
// The local instant is first fed in as if it were UTC; the offset that
// proposes is applied and the offset at the candidate UTC instant
// recomputed. Equal offsets mean the candidate is consistent. Unequal
// offsets mean the local instant is near a transition: if the two candidate
// instants reach different next transitions, no offset covers the local
// time and it is a gap, resolved leniently with the pre-transition (smaller)
// offset so that the UTC result lands on or after the transition. Otherwise
// the recomputed offset is the one consistent choice.
//
// A consistent first guess can still sit inside an overlap with both
// estimates on the later side, which happens in zones with non-negative
// offsets. The previous transition is probed and, when its larger offset
// still covers the local instant, that earlier offset wins, keeping the
// default resolution on the first occurrence.
func resolveLocal(z Zone, instantLocal int64) (offset int, gap bool) {
	offsetLocal := z.OffsetAt(instantLocal)
	offset = z.OffsetAt(instantLocal - int64(offsetLocal))

	if offsetLocal != offset {
		if nextAfter(z, instantLocal-int64(offsetLocal)) != nextAfter(z, instantLocal-int64(offset)) {
			gap = true
			if offsetLocal < offset {
				offset = offsetLocal
			}
		}
		return offset, gap
	}

	if offset >= 0 {
		candidate := instantLocal - int64(offset)
		prev := z.PreviousTransition(candidate)
		if prev < candidate {
			offsetPrev := z.OffsetAt(prev)
			if offsetPrev > offset && candidate-prev <= int64(offsetPrev-offset) {
				return offsetPrev, false
			}
		}
	}
	return offset, false
}

// OffsetFromLocal returns the offset in force for a local wall-clock
// instant of z under the lenient policy: inside a gap the pre-transition
// offset, inside an overlap the earlier occurrence's offset.
func OffsetFromLocal(z Zone, instantLocal int64) int {
	offset, _ := resolveLocal(z, instantLocal)
	return offset
}

// LocalToUTC converts a local wall-clock instant of z to UTC. In strict
// mode a local time inside a daylight-saving gap fails with a GapError
// carrying the local instant and zone id; in lenient mode the pre-gap
// offset applies, producing a UTC instant on or after the transition.
// Overlapping local times resolve to the earlier occurrence; use
// AdjustOffset to pick the later one.
func LocalToUTC(z Zone, instantLocal int64, strict bool) (int64, error) {
	offset, gap := resolveLocal(z, instantLocal)
	if gap && strict {
		return 0, &types.GapError{LocalMillis: instantLocal, ZoneID: z.ID()}
	}
	return types.SafeSubtract(instantLocal, int64(offset))
}

// LocalToUTCFrom is LocalToUTC with an originating UTC instant hint. When
// the hinted instant's offset still resolves the local instant
// consistently it is kept, which makes round trips through an overlap
// stable instead of snapping back to the earlier occurrence.
func LocalToUTCFrom(z Zone, instantLocal int64, strict bool, originalUTC int64) (int64, error) {
	offsetOriginal := z.OffsetAt(originalUTC)
	instantUTC, err := types.SafeSubtract(instantLocal, int64(offsetOriginal))
	if err != nil {
		return 0, err
	}
	if z.OffsetAt(instantUTC) == offsetOriginal {
		return instantUTC, nil
	}
	return LocalToUTC(z, instantLocal, strict)
}

// overlapProbe is how far AdjustOffset looks either side of an instant for
// a transition. No known zone transitions by more than three hours.
const overlapProbe = 3 * types.MillisPerHour

// AdjustOffset resolves which side of a daylight-saving overlap a UTC
// instant sits on. When instant falls inside an overlap window it is moved
// to the occurrence selected by later; outside an overlap it is returned
// unchanged. The two resolutions differ by exactly the offset change of
// the transition.
func AdjustOffset(z Zone, instant int64, later bool) int64 {
	instantBefore := instant - overlapProbe
	instantAfter := instant + overlapProbe
	offsetBefore := int64(z.OffsetAt(instantBefore))
	offsetAfter := int64(z.OffsetAt(instantAfter))
	if offsetBefore <= offsetAfter {
		// A growing offset is a gap and an unchanged one is the normal
		// case; neither has two occurrences to choose between.
		return instant
	}

	diff := offsetBefore - offsetAfter
	transition := nextAfter(z, instantBefore)
	if transition == math.MaxInt64 {
		return instant
	}
	overlapStart := transition - diff
	overlapEnd := transition + diff
	if instant < overlapStart || instant >= overlapEnd {
		return instant
	}

	if instant-overlapStart >= diff {
		// Currently on the later occurrence.
		if later {
			return instant
		}
		return instant - diff
	}
	// Currently on the earlier occurrence.
	if later {
		return instant + diff
	}
	return instant
}

// MillisKeepLocal converts instant from oldZone to newZone preserving the
// printed wall-clock fields: UTC to local in the old zone, then lenient
// local to UTC in the new zone with the old instant as the overlap hint.
// A nil zone on either side means the process default.
func MillisKeepLocal(oldZone, newZone Zone, instant int64) (int64, error) {
	if oldZone == nil {
		oldZone = Default()
	}
	if newZone == nil {
		newZone = Default()
	}
	if newZone == oldZone {
		return instant, nil
	}
	local, err := UTCToLocal(oldZone, instant)
	if err != nil {
		return 0, err
	}
	return LocalToUTCFrom(newZone, local, false, instant)
}
