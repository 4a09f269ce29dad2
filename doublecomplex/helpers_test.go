package doublecomplex_test

import (
	"errors"
	"sync/atomic"

	"github.com/katalvlaran/homalg/algebra"
	"github.com/katalvlaran/homalg/doublecomplex"
	"github.com/katalvlaran/homalg/lattice"
)

type (
	dcxC       = algebra.FreeModule
	dcxM       = *algebra.Matrix
	dcx        = doublecomplex.DoubleComplex[algebra.FreeModule, *algebra.Matrix, *algebra.Matrix]
	standalone = doublecomplex.Standalone[algebra.FreeModule, *algebra.Matrix, *algebra.Matrix]
)

var errBackend = errors.New("backend refused")

// support is a sparse description of a double complex: the ranks at the
// positions the chain factory can produce. Positions listed with rank 0 are
// producible zero entries; positions in broken make CanProduce fail.
type support struct {
	ranks  map[[2]int]int
	broken map[[2]int]bool
	calls  int64
}

func newSupport(ranks map[[2]int]int) *support {
	return &support{ranks: ranks, broken: map[[2]int]bool{}}
}

func (s *support) CanProduce(_ dcx, i, j int) (bool, error) {
	if s.broken[[2]int{i, j}] {
		return false, errBackend
	}
	_, ok := s.ranks[[2]int{i, j}]
	return ok, nil
}

func (s *support) Produce(_ dcx, i, j int) (algebra.FreeModule, error) {
	atomic.AddInt64(&s.calls, 1)
	return algebra.NewFreeModule(s.ranks[[2]int{i, j}])
}

// shapeMaps produces the zero matrix between the endpoints of a map, reading both from dc.
type shapeMaps struct {
	axis int
}

func (m shapeMaps) target(dc dcx, i, j int) (int, int) {
	if m.axis == doublecomplex.Horizontal {
		return i + dc.HorizontalDirection().Step(), j
	}
	return i, j + dc.VerticalDirection().Step()
}

func (m shapeMaps) CanProduce(dc dcx, i, j int) (bool, error) {
	ok, err := dc.CanComputeIndex(i, j)
	if err != nil || !ok {
		return false, err
	}
	ti, tj := m.target(dc, i, j)
	return dc.CanComputeIndex(ti, tj)
}

func (m shapeMaps) Produce(dc dcx, i, j int) (*algebra.Matrix, error) {
	src, err := dc.Get(i, j)
	if err != nil {
		return nil, err
	}
	ti, tj := m.target(dc, i, j)
	dst, err := dc.Get(ti, tj)
	if err != nil {
		return nil, err
	}
	return algebra.NewMatrix(dst.Rank, src.Rank)
}

func newStandalone(s *support, opts ...doublecomplex.Option) (*standalone, error) {
	return doublecomplex.NewStandalone[algebra.FreeModule, *algebra.Matrix, *algebra.Matrix](
		lattice.Chain, lattice.Cochain, s,
		shapeMaps{axis: doublecomplex.Horizontal}, shapeMaps{axis: doublecomplex.Vertical}, opts...)
}
