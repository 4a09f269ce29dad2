package lattice

import (
	"fmt"
	"math"
)

// Range enumerates a bounded axis in the traversal order of dir:
// Chain walks from upper down to lower, Cochain from lower up to upper.
// Both bounds must be set, otherwise ErrUnbounded is returned.
// When upper < lower the result is empty. A span that cannot be counted in
// an int (upper-lower >= math.MaxInt) fails with ErrRangeTooLarge.
//
// Complexity: O(upper-lower) time and memory.
func Range(dir Direction, lower, upper Bound) ([]int, error) {
	return walk(dir, lower, upper, 0)
}

// MapRange is Range without the final index in traversal direction: every
// returned index has a successor on the axis, so a morphism can start there.
// Chain yields upper..lower+1, Cochain yields lower..upper-1. It is empty when
// upper == lower.
func MapRange(dir Direction, lower, upper Bound) ([]int, error) {
	return walk(dir, lower, upper, 1)
}

// walk produces the traversal, trimming `trim` indices from the far end.
// The count is taken in uint64 so spans touching math.MinInt or math.MaxInt do not wrap.
func walk(dir Direction, lower, upper Bound, trim int) ([]int, error) {
	if !dir.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDirection, dir)
	}
	lo, okLo := lower.Get()
	hi, okHi := upper.Get()
	if !okLo || !okHi {
		return nil, fmt.Errorf("%w: lower=%v upper=%v", ErrUnbounded, lower, upper)
	}
	if hi < lo {
		return []int{}, nil
	}
	span := uint64(hi) - uint64(lo) // hi-lo, exact for hi >= lo
	if span >= uint64(math.MaxInt) {
		return nil, fmt.Errorf("%w: %d..%d", ErrRangeTooLarge, lo, hi)
	}
	n := int(span) + 1 - trim
	if n <= 0 {
		return []int{}, nil
	}
	out := make([]int, 0, n)
	if dir == Chain {
		for k := 0; k < n; k++ {
			out = append(out, hi-k)
		}
		return out, nil
	}
	for k := 0; k < n; k++ {
		out = append(out, lo+k)
	}
	return out, nil
}
