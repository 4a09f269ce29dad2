// Package simplecomplex exposes a 1-dimensional hypercomplex with the classic
// chain-complex vocabulary: c.Get(i), c.Map(i), c.Range(), c.MapRange().
//
// A View owns no state of its own; every call is translated to the
// underlying engine with the axis fixed to 1.
package simplecomplex

import (
	"fmt"

	"github.com/katalvlaran/homalg/hypercomplex"
	"github.com/katalvlaran/homalg/lattice"
)

const axis = 1

// View is a single-index chain (or cochain) complex backed by a 1-dimensional HyperComplex.
type View[C, M any] struct {
	hc *hypercomplex.HyperComplex[C, M]
}

// New wraps hc, which must be 1-dimensional (ErrConstruction otherwise).
func New[C, M any](hc *hypercomplex.HyperComplex[C, M]) (*View[C, M], error) {
	if hc == nil {
		return nil, fmt.Errorf("%w: nil engine", hypercomplex.ErrConstruction)
	}
	if hc.Dim() != 1 {
		return nil, fmt.Errorf("%w: simple complex needs a 1-dimensional engine, got %d", hypercomplex.ErrConstruction, hc.Dim())
	}
	return &View[C, M]{hc: hc}, nil
}

// NewFromFactories builds the 1-dimensional engine and wraps it.
func NewFromFactories[C, M any](dir lattice.Direction, chains hypercomplex.ChainFactory[C, M], maps hypercomplex.MapFactory[C, M], opts ...hypercomplex.Option) (*View[C, M], error) {
	hc, err := hypercomplex.New[C, M](1, []lattice.Direction{dir}, chains, []hypercomplex.MapFactory[C, M]{maps}, opts...)
	if err != nil {
		return nil, err
	}
	return New(hc)
}

// Engine returns the underlying HyperComplex.
func (v *View[C, M]) Engine() *hypercomplex.HyperComplex[C, M] { return v.hc }

// Get returns the entry at i.
func (v *View[C, M]) Get(i int) (C, error) { return v.hc.Get(lattice.Idx(i)) }

// HasIndex reports whether the entry at i is cached.
func (v *View[C, M]) HasIndex(i int) bool { return v.hc.HasIndex(lattice.Idx(i)) }

// CanComputeIndex reports whether the entry at i is producible.
func (v *View[C, M]) CanComputeIndex(i int) (bool, error) {
	return v.hc.CanComputeIndex(lattice.Idx(i))
}

// Map returns the differential leaving i (towards i-1 for Chain, i+1 for Cochain).
func (v *View[C, M]) Map(i int) (M, error) { return v.hc.Map(axis, lattice.Idx(i)) }

// HasMap reports whether the map leaving i is cached.
func (v *View[C, M]) HasMap(i int) bool { return v.hc.HasMap(axis, lattice.Idx(i)) }

// CanComputeMap reports whether the map leaving i is producible.
func (v *View[C, M]) CanComputeMap(i int) (bool, error) {
	return v.hc.CanComputeMap(axis, lattice.Idx(i))
}

// Direction returns the orientation of the complex.
func (v *View[C, M]) Direction() lattice.Direction { return v.hc.Direction(axis) }

// UpperBound returns the upper bound, if any.
func (v *View[C, M]) UpperBound() (int, bool) { return v.hc.Bound(axis, lattice.Upper) }

// LowerBound returns the lower bound, if any.
func (v *View[C, M]) LowerBound() (int, bool) { return v.hc.Bound(axis, lattice.Lower) }

// IsBounded reports whether both bounds are set, i.e. whether Range is defined.
func (v *View[C, M]) IsBounded() bool {
	return v.hc.HasBound(axis, lattice.Upper) && v.hc.HasBound(axis, lattice.Lower)
}

// Range lists the indices between the bounds in traversal order:
// upper..lower for Chain, lower..upper for Cochain. It fails with
// lattice.ErrUnbounded unless IsBounded.
func (v *View[C, M]) Range() ([]int, error) {
	return lattice.Range(v.Direction(), v.bound(lattice.Lower), v.bound(lattice.Upper))
}

// MapRange is Range without its last index: the starts of all maps between the bounds.
func (v *View[C, M]) MapRange() ([]int, error) {
	return lattice.MapRange(v.Direction(), v.bound(lattice.Lower), v.bound(lattice.Upper))
}

// Indices returns the cached positions in ascending order.
func (v *View[C, M]) Indices() []int {
	ixs := v.hc.Indices()
	out := make([]int, len(ixs))
	for k, ix := range ixs {
		out[k] = ix[0]
	}
	return out
}

// IsComplete delegates to the engine's existence check.
func (v *View[C, M]) IsComplete() (bool, error) { return v.hc.IsComplete() }

func (v *View[C, M]) bound(side lattice.Side) lattice.Bound {
	if b, ok := v.hc.Bound(axis, side); ok {
		return lattice.Some(b)
	}
	return lattice.None()
}
