package doublecomplex

import (
	"sync/atomic"

	"github.com/katalvlaran/homalg/algebra"
	"github.com/katalvlaran/homalg/lattice"
)

// Axis numbers of the two directions of a double complex.
const (
	Horizontal = 1
	Vertical   = 2
)

// DoubleComplex is the capability shared by View and Standalone. Chain values
// must support a zero test for the completeness oracle; H and V are the
// horizontal and vertical map types.
type DoubleComplex[C algebra.Zeroer, H, V any] interface {
	Get(i, j int) (C, error)
	HasIndex(i, j int) bool
	// Lookup returns a cached entry without producing it or counting a cache hit.
	Lookup(i, j int) (C, bool)
	CanComputeIndex(i, j int) (bool, error)

	HorizontalMap(i, j int) (H, error)
	HasHorizontalMap(i, j int) bool
	CanComputeHorizontalMap(i, j int) (bool, error)

	VerticalMap(i, j int) (V, error)
	HasVerticalMap(i, j int) bool
	CanComputeVerticalMap(i, j int) (bool, error)

	HorizontalDirection() lattice.Direction
	VerticalDirection() lattice.Direction

	RightBound() (int, bool) // axis 1, upper side
	LeftBound() (int, bool)  // axis 1, lower side
	UpperBound() (int, bool) // axis 2, upper side
	LowerBound() (int, bool) // axis 2, lower side

	// Indices returns the cached positions sorted by (i, j).
	Indices() [][2]int

	IsComplete() (bool, error)
}

// Verdict is the memoized outcome of the completeness oracle.
type Verdict int32

const (
	// Unknown means the oracle has not run yet.
	Unknown Verdict = iota
	// Complete means the cached non-zero region was proven closed. It is final.
	Complete
	// Incomplete means the last run found an open neighbour; a later run may still succeed.
	Incomplete
)

// String returns "unknown", "complete" or "incomplete".
func (v Verdict) String() string {
	switch v {
	case Complete:
		return "complete"
	case Incomplete:
		return "incomplete"
	default:
		return "unknown"
	}
}

// VerdictCell holds a Verdict for concurrent readers and writers.
// The zero value is Unknown.
type VerdictCell struct {
	v atomic.Int32
}

// Load returns the stored verdict.
func (c *VerdictCell) Load() Verdict { return Verdict(c.v.Load()) }

// store never downgrades Complete.
func (c *VerdictCell) store(v Verdict) {
	for {
		cur := c.v.Load()
		if Verdict(cur) == Complete || c.v.CompareAndSwap(cur, int32(v)) {
			return
		}
	}
}

// HorizontalRange lists the columns between LeftBound and RightBound in the
// horizontal traversal order. It fails with lattice.ErrUnbounded when a bound is missing.
func HorizontalRange[C algebra.Zeroer, H, V any](dc DoubleComplex[C, H, V]) ([]int, error) {
	return lattice.Range(dc.HorizontalDirection(), bound(dc.LeftBound()), bound(dc.RightBound()))
}

// HorizontalMapRange is HorizontalRange without its final column.
func HorizontalMapRange[C algebra.Zeroer, H, V any](dc DoubleComplex[C, H, V]) ([]int, error) {
	return lattice.MapRange(dc.HorizontalDirection(), bound(dc.LeftBound()), bound(dc.RightBound()))
}

// VerticalRange lists the rows between LowerBound and UpperBound in the vertical traversal order.
func VerticalRange[C algebra.Zeroer, H, V any](dc DoubleComplex[C, H, V]) ([]int, error) {
	return lattice.Range(dc.VerticalDirection(), bound(dc.LowerBound()), bound(dc.UpperBound()))
}

// VerticalMapRange is VerticalRange without its final row.
func VerticalMapRange[C algebra.Zeroer, H, V any](dc DoubleComplex[C, H, V]) ([]int, error) {
	return lattice.MapRange(dc.VerticalDirection(), bound(dc.LowerBound()), bound(dc.UpperBound()))
}

func bound(v int, ok bool) lattice.Bound {
	if !ok {
		return lattice.None()
	}
	return lattice.Some(v)
}
