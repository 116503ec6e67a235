package types

import (
	"fmt"
	"math"
)

// SafeAdd returns a + b or ErrOverflow if the sum exceeds the int64 range.
func SafeAdd(a, b int64) (int64, error) {
	sum := a + b
	// Overflow can only happen when both operands share a sign the sum lost.
	if (a^sum) < 0 && (a^b) >= 0 {
		return 0, fmt.Errorf("%w: adding %d to %d", ErrOverflow, b, a)
	}
	return sum, nil
}

// SafeSubtract returns a - b or ErrOverflow if the difference exceeds the
// int64 range.
func SafeSubtract(a, b int64) (int64, error) {
	diff := a - b
	if (a^diff) < 0 && (a^b) < 0 {
		return 0, fmt.Errorf("%w: subtracting %d from %d", ErrOverflow, b, a)
	}
	return diff, nil
}

// SafeMultiply returns a * b or ErrOverflow if the product exceeds the int64
// range.
func SafeMultiply(a, b int64) (int64, error) {
	switch b {
	case 0:
		return 0, nil
	case 1:
		return a, nil
	case -1:
		if a == math.MinInt64 {
			return 0, fmt.Errorf("%w: negating %d", ErrOverflow, a)
		}
		return -a, nil
	}
	prod := a * b
	if prod/b != a {
		return 0, fmt.Errorf("%w: multiplying %d by %d", ErrOverflow, a, b)
	}
	return prod, nil
}

// SafeToInt narrows v to the 32-bit int range or returns ErrOverflow.
func SafeToInt(v int64) (int, error) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %d exceeds the 32-bit range", ErrOverflow, v)
	}
	return int(v), nil
}

// SafeAddInt returns a + b or ErrOverflow if the sum exceeds the 32-bit
// range. Period field slots are 32-bit counts.
func SafeAddInt(a, b int) (int, error) {
	return SafeToInt(int64(a) + int64(b))
}

// FloorDiv divides a by b, rounding toward negative infinity.
func FloorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// FloorMod returns a modulo b with the sign of b.
func FloorMod(a, b int64) int64 {
	m := a % b
	if m != 0 && ((a < 0) != (b < 0)) {
		m += b
	}
	return m
}
