package types

import (
	"fmt"
	"strings"
)

// MaxOffsetMillis bounds zone offsets to the open interval
// (-24h, +24h); the endpoints themselves are invalid.
const MaxOffsetMillis = MillisPerDay

// ValidOffset reports whether ms is a legal zone offset.
func ValidOffset(ms int) bool {
	return ms > -int(MaxOffsetMillis) && ms < int(MaxOffsetMillis)
}

// CheckOffset returns ms or a RangeError when it is not a legal zone offset.
func CheckOffset(ms int) (int, error) {
	if !ValidOffset(ms) {
		return 0, &RangeError{
			Field: "offset",
			Value: int64(ms),
			Lower: -MaxOffsetMillis + 1,
			Upper: MaxOffsetMillis - 1,
		}
	}
	return ms, nil
}

// FormatOffset renders ms in the canonical fixed-offset identifier form
// [+-]hh:mm[:ss[.SSS]]. Seconds appear only when the offset is not a whole
// number of minutes, and milliseconds only when it is not a whole number of
// seconds, so that ParseOffset(FormatOffset(ms)) == ms exactly.
func FormatOffset(ms int) string {
	var b strings.Builder
	rest := int64(ms)
	if rest < 0 {
		b.WriteByte('-')
		rest = -rest
	} else {
		b.WriteByte('+')
	}
	hours := rest / MillisPerHour
	rest -= hours * MillisPerHour
	minutes := rest / MillisPerMinute
	rest -= minutes * MillisPerMinute
	seconds := rest / MillisPerSecond
	rest -= seconds * MillisPerSecond

	fmt.Fprintf(&b, "%02d:%02d", hours, minutes)
	if seconds != 0 || rest != 0 {
		fmt.Fprintf(&b, ":%02d", seconds)
		if rest != 0 {
			fmt.Fprintf(&b, ".%03d", rest)
		}
	}
	return b.String()
}

// ParseOffset parses a fixed-offset identifier of the form
// [+-]hh:mm[:ss[.SSS]] into an offset in milliseconds.
func ParseOffset(id string) (int, error) {
	orig := id
	if len(id) < 6 || (id[0] != '+' && id[0] != '-') {
		return 0, fmt.Errorf("%w: malformed offset id %q", ErrConfig, orig)
	}
	neg := id[0] == '-'
	id = id[1:]

	hours, id, err := parseOffsetPart(orig, id, 24, "")
	if err != nil {
		return 0, err
	}
	minutes, id, err := parseOffsetPart(orig, id, 60, ":")
	if err != nil {
		return 0, err
	}
	ms := int64(hours)*MillisPerHour + int64(minutes)*MillisPerMinute

	if id != "" {
		var seconds int
		seconds, id, err = parseOffsetPart(orig, id, 60, ":")
		if err != nil {
			return 0, err
		}
		ms += int64(seconds) * MillisPerSecond
		if id != "" {
			var millis int
			millis, id, err = parseOffsetPart(orig, id, 1000, ".")
			if err != nil || id != "" {
				return 0, fmt.Errorf("%w: malformed offset id %q", ErrConfig, orig)
			}
			ms += int64(millis)
		}
	}

	if neg {
		ms = -ms
	}
	if !ValidOffset(int(ms)) {
		return 0, fmt.Errorf("%w: offset id %q exceeds +/-24 hours", ErrConfig, orig)
	}
	return int(ms), nil
}

// parseOffsetPart consumes a separator and a fixed-width decimal component
// under limit from s, returning the value and the unconsumed remainder.
func parseOffsetPart(orig, s string, limit int, sep string) (int, string, error) {
	s, ok := strings.CutPrefix(s, sep)
	if !ok {
		return 0, "", fmt.Errorf("%w: malformed offset id %q", ErrConfig, orig)
	}
	width := 2
	if limit == 1000 {
		width = 3
	}
	if len(s) < width {
		return 0, "", fmt.Errorf("%w: malformed offset id %q", ErrConfig, orig)
	}
	value := 0
	for i := 0; i < width; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, "", fmt.Errorf("%w: malformed offset id %q", ErrConfig, orig)
		}
		value = value*10 + int(c-'0')
	}
	if value >= limit {
		return 0, "", fmt.Errorf("%w: offset component %d in %q exceeds %d", ErrConfig, value, orig, limit-1)
	}
	return value, s[width:], nil
}
