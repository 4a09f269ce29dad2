package hypercomplex

import (
	"fmt"

	"github.com/katalvlaran/homalg/lattice"
)

// ChainFactory produces the entries of a complex on demand.
//
// The engine calls Produce only after CanProduce returned true for the same
// index. Produce receives the owning complex so it can read entries that are
// already materialized. Implementations may memoize privately, but repeated
// calls at the same index must return equal values.
type ChainFactory[C, M any] interface {
	Produce(cx Complex[C, M], idx lattice.Index) (C, error)
	CanProduce(cx Complex[C, M], idx lattice.Index) (bool, error)
}

// MapFactory produces the structure maps along one or more axes.
// The map at (axis, idx) goes from cx[idx] to cx[idx shifted by
// Direction(axis).Step() along axis].
type MapFactory[C, M any] interface {
	Produce(cx Complex[C, M], axis int, idx lattice.Index) (M, error)
	CanProduce(cx Complex[C, M], axis int, idx lattice.Index) (bool, error)
}

// UnimplementedChainFactory answers every call with ErrNotImplemented.
// Embed it to get the abstract-base behavior for capabilities you do not override.
type UnimplementedChainFactory[C, M any] struct{}

// Produce always fails with ErrNotImplemented.
func (f UnimplementedChainFactory[C, M]) Produce(_ Complex[C, M], idx lattice.Index) (C, error) {
	var zero C
	return zero, &FactoryError{Factory: fmt.Sprintf("%T", f), Op: "Produce", Index: idx, Kind: ErrNotImplemented}
}

// CanProduce always fails with ErrNotImplemented.
func (f UnimplementedChainFactory[C, M]) CanProduce(_ Complex[C, M], idx lattice.Index) (bool, error) {
	return false, &FactoryError{Factory: fmt.Sprintf("%T", f), Op: "CanProduce", Index: idx, Kind: ErrNotImplemented}
}

// UnimplementedMapFactory answers every call with ErrNotImplemented.
type UnimplementedMapFactory[C, M any] struct{}

// Produce always fails with ErrNotImplemented.
func (f UnimplementedMapFactory[C, M]) Produce(_ Complex[C, M], axis int, idx lattice.Index) (M, error) {
	var zero M
	return zero, &FactoryError{Factory: fmt.Sprintf("%T", f), Op: "Produce", Axis: axis, Index: idx, Kind: ErrNotImplemented}
}

// CanProduce always fails with ErrNotImplemented.
func (f UnimplementedMapFactory[C, M]) CanProduce(_ Complex[C, M], axis int, idx lattice.Index) (bool, error) {
	return false, &FactoryError{Factory: fmt.Sprintf("%T", f), Op: "CanProduce", Axis: axis, Index: idx, Kind: ErrNotImplemented}
}

// ChainFactoryFunc adapts a pair of closures to ChainFactory.
// A nil closure behaves like UnimplementedChainFactory. Produce re-checks
// CanProduceFn and fails with ErrUnsupported when it is false.
type ChainFactoryFunc[C, M any] struct {
	ProduceFn    func(cx Complex[C, M], idx lattice.Index) (C, error)
	CanProduceFn func(cx Complex[C, M], idx lattice.Index) bool
}

// Produce calls ProduceFn.
func (f ChainFactoryFunc[C, M]) Produce(cx Complex[C, M], idx lattice.Index) (C, error) {
	var zero C
	if f.ProduceFn == nil {
		return zero, &FactoryError{Factory: fmt.Sprintf("%T", f), Op: "Produce", Index: idx, Kind: ErrNotImplemented}
	}
	if f.CanProduceFn != nil && !f.CanProduceFn(cx, idx) {
		return zero, &FactoryError{Factory: fmt.Sprintf("%T", f), Op: "Produce", Index: idx, Kind: ErrUnsupported}
	}
	return f.ProduceFn(cx, idx)
}

// CanProduce calls CanProduceFn.
func (f ChainFactoryFunc[C, M]) CanProduce(cx Complex[C, M], idx lattice.Index) (bool, error) {
	if f.CanProduceFn == nil {
		return false, &FactoryError{Factory: fmt.Sprintf("%T", f), Op: "CanProduce", Index: idx, Kind: ErrNotImplemented}
	}
	return f.CanProduceFn(cx, idx), nil
}

// MapFactoryFunc adapts a pair of closures to MapFactory, like ChainFactoryFunc.
type MapFactoryFunc[C, M any] struct {
	ProduceFn    func(cx Complex[C, M], axis int, idx lattice.Index) (M, error)
	CanProduceFn func(cx Complex[C, M], axis int, idx lattice.Index) bool
}

// Produce calls ProduceFn.
func (f MapFactoryFunc[C, M]) Produce(cx Complex[C, M], axis int, idx lattice.Index) (M, error) {
	var zero M
	if f.ProduceFn == nil {
		return zero, &FactoryError{Factory: fmt.Sprintf("%T", f), Op: "Produce", Axis: axis, Index: idx, Kind: ErrNotImplemented}
	}
	if f.CanProduceFn != nil && !f.CanProduceFn(cx, axis, idx) {
		return zero, &FactoryError{Factory: fmt.Sprintf("%T", f), Op: "Produce", Axis: axis, Index: idx, Kind: ErrUnsupported}
	}
	return f.ProduceFn(cx, axis, idx)
}

// CanProduce calls CanProduceFn.
func (f MapFactoryFunc[C, M]) CanProduce(cx Complex[C, M], axis int, idx lattice.Index) (bool, error) {
	if f.CanProduceFn == nil {
		return false, &FactoryError{Factory: fmt.Sprintf("%T", f), Op: "CanProduce", Axis: axis, Index: idx, Kind: ErrNotImplemented}
	}
	return f.CanProduceFn(cx, axis, idx), nil
}
