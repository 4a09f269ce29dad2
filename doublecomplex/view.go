package doublecomplex

import (
	"fmt"

	"github.com/katalvlaran/homalg/algebra"
	"github.com/katalvlaran/homalg/hypercomplex"
	"github.com/katalvlaran/homalg/lattice"
)

// View is a DoubleComplex delegating to a 2-dimensional HyperComplex.
// Both map directions share the engine's map type M.
type View[C algebra.Zeroer, M any] struct {
	hc      *hypercomplex.HyperComplex[C, M]
	verdict VerdictCell
}

var _ DoubleComplex[algebra.FreeModule, int, int] = (*View[algebra.FreeModule, int])(nil)

// NewView wraps hc, which must be 2-dimensional (ErrConstruction otherwise).
func NewView[C algebra.Zeroer, M any](hc *hypercomplex.HyperComplex[C, M]) (*View[C, M], error) {
	if hc == nil {
		return nil, fmt.Errorf("%w: nil engine", hypercomplex.ErrConstruction)
	}
	if hc.Dim() != 2 {
		return nil, fmt.Errorf("%w: double complex needs a 2-dimensional engine, got %d", hypercomplex.ErrConstruction, hc.Dim())
	}
	return &View[C, M]{hc: hc}, nil
}

// NewViewFromFactories builds the 2-dimensional engine and wraps it.
// maps serves both axes.
func NewViewFromFactories[C algebra.Zeroer, M any](hdir, vdir lattice.Direction, chains hypercomplex.ChainFactory[C, M], maps hypercomplex.MapFactory[C, M], opts ...hypercomplex.Option) (*View[C, M], error) {
	hc, err := hypercomplex.New[C, M](2, []lattice.Direction{hdir, vdir}, chains,
		[]hypercomplex.MapFactory[C, M]{maps, maps}, opts...)
	if err != nil {
		return nil, err
	}
	return NewView(hc)
}

// Engine returns the underlying HyperComplex.
func (v *View[C, M]) Engine() *hypercomplex.HyperComplex[C, M] { return v.hc }

// Get returns the entry at (i, j).
func (v *View[C, M]) Get(i, j int) (C, error) { return v.hc.Get(lattice.Idx(i, j)) }

// HasIndex reports whether (i, j) is cached.
func (v *View[C, M]) HasIndex(i, j int) bool { return v.hc.HasIndex(lattice.Idx(i, j)) }

// Lookup returns the cached entry at (i, j) without touching hit counters or hooks.
func (v *View[C, M]) Lookup(i, j int) (C, bool) { return v.hc.Lookup(lattice.Idx(i, j)) }

// CanComputeIndex reports whether (i, j) is producible.
func (v *View[C, M]) CanComputeIndex(i, j int) (bool, error) {
	return v.hc.CanComputeIndex(lattice.Idx(i, j))
}

// HorizontalMap returns the axis-1 map leaving (i, j).
func (v *View[C, M]) HorizontalMap(i, j int) (M, error) {
	return v.hc.Map(Horizontal, lattice.Idx(i, j))
}

// HasHorizontalMap reports whether the axis-1 map leaving (i, j) is cached.
func (v *View[C, M]) HasHorizontalMap(i, j int) bool {
	return v.hc.HasMap(Horizontal, lattice.Idx(i, j))
}

// CanComputeHorizontalMap reports whether the axis-1 map leaving (i, j) is producible.
func (v *View[C, M]) CanComputeHorizontalMap(i, j int) (bool, error) {
	return v.hc.CanComputeMap(Horizontal, lattice.Idx(i, j))
}

// VerticalMap returns the axis-2 map leaving (i, j).
func (v *View[C, M]) VerticalMap(i, j int) (M, error) {
	return v.hc.Map(Vertical, lattice.Idx(i, j))
}

// HasVerticalMap reports whether the axis-2 map leaving (i, j) is cached.
func (v *View[C, M]) HasVerticalMap(i, j int) bool {
	return v.hc.HasMap(Vertical, lattice.Idx(i, j))
}

// CanComputeVerticalMap reports whether the axis-2 map leaving (i, j) is producible.
func (v *View[C, M]) CanComputeVerticalMap(i, j int) (bool, error) {
	return v.hc.CanComputeMap(Vertical, lattice.Idx(i, j))
}

// HorizontalDirection returns the orientation of axis 1.
func (v *View[C, M]) HorizontalDirection() lattice.Direction { return v.hc.Direction(Horizontal) }

// VerticalDirection returns the orientation of axis 2.
func (v *View[C, M]) VerticalDirection() lattice.Direction { return v.hc.Direction(Vertical) }

// RightBound is the upper bound of axis 1.
func (v *View[C, M]) RightBound() (int, bool) { return v.hc.Bound(Horizontal, lattice.Upper) }

// LeftBound is the lower bound of axis 1.
func (v *View[C, M]) LeftBound() (int, bool) { return v.hc.Bound(Horizontal, lattice.Lower) }

// UpperBound is the upper bound of axis 2.
func (v *View[C, M]) UpperBound() (int, bool) { return v.hc.Bound(Vertical, lattice.Upper) }

// LowerBound is the lower bound of axis 2.
func (v *View[C, M]) LowerBound() (int, bool) { return v.hc.Bound(Vertical, lattice.Lower) }

// Indices returns the cached positions sorted by (i, j).
func (v *View[C, M]) Indices() [][2]int {
	ixs := v.hc.Indices()
	out := make([][2]int, len(ixs))
	for k, ix := range ixs {
		out[k] = [2]int{ix[0], ix[1]}
	}
	return out
}

// IsComplete runs the completeness oracle, memoizing a true verdict.
func (v *View[C, M]) IsComplete() (bool, error) { return CheckComplete[C, M, M](v, &v.verdict) }

// Verdict returns the memoized oracle outcome.
func (v *View[C, M]) Verdict() Verdict { return v.verdict.Load() }
