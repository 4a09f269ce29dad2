package hypercomplex_test

import (
	"sync/atomic"

	"github.com/katalvlaran/homalg/algebra"
	"github.com/katalvlaran/homalg/hypercomplex"
	"github.com/katalvlaran/homalg/lattice"
)

type (
	cx        = hypercomplex.Complex[algebra.FreeModule, *algebra.Matrix]
	engine    = hypercomplex.HyperComplex[algebra.FreeModule, *algebra.Matrix]
	mapFactor = hypercomplex.MapFactory[algebra.FreeModule, *algebra.Matrix]
)

// boxChains produces R^(1+|sum of components|) inside [lo,hi]^d and counts Produce calls.
type boxChains struct {
	lo, hi int
	calls  int64
}

func (f *boxChains) inBox(idx lattice.Index) bool {
	for _, v := range idx {
		if v < f.lo || v > f.hi {
			return false
		}
	}
	return true
}

func (f *boxChains) CanProduce(_ cx, idx lattice.Index) (bool, error) {
	return f.inBox(idx), nil
}

func (f *boxChains) Produce(_ cx, idx lattice.Index) (algebra.FreeModule, error) {
	atomic.AddInt64(&f.calls, 1)
	sum := 0
	for _, v := range idx {
		sum += v
	}
	if sum < 0 {
		sum = -sum
	}
	return algebra.NewFreeModule(1 + sum)
}

// zeroMaps produces the zero matrix between the two endpoint entries, reading
// both endpoints from the complex it is handed.
type zeroMaps struct {
	calls int64
}

func (f *zeroMaps) CanProduce(c cx, axis int, idx lattice.Index) (bool, error) {
	src, err := c.CanComputeIndex(idx)
	if err != nil || !src {
		return false, err
	}
	return c.CanComputeIndex(idx.Shift(axis, c.Direction(axis).Step()))
}

func (f *zeroMaps) Produce(c cx, axis int, idx lattice.Index) (*algebra.Matrix, error) {
	atomic.AddInt64(&f.calls, 1)
	src, err := c.Get(idx)
	if err != nil {
		return nil, err
	}
	dst, err := c.Get(idx.Shift(axis, c.Direction(axis).Step()))
	if err != nil {
		return nil, err
	}
	return algebra.NewMatrix(dst.Rank, src.Rank)
}

// newBoxEngine builds a dim-dimensional engine over [lo,hi]^dim with the given directions.
func newBoxEngine(dirs []lattice.Direction, lo, hi int, opts ...hypercomplex.Option) (*engine, *boxChains, *zeroMaps, error) {
	chains := &boxChains{lo: lo, hi: hi}
	maps := &zeroMaps{}
	mf := make([]mapFactor, len(dirs))
	for k := range mf {
		mf[k] = maps
	}
	hc, err := hypercomplex.New[algebra.FreeModule, *algebra.Matrix](len(dirs), dirs, chains, mf, opts...)
	return hc, chains, maps, err
}
