package complexdemo

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/homalg/algebra"
	"github.com/katalvlaran/homalg/doublecomplex"
	"github.com/katalvlaran/homalg/hypercomplex"
	"github.com/katalvlaran/homalg/lattice"
)

type complex2 = hypercomplex.Complex[algebra.FreeModule, *algebra.Matrix]

// binomial returns C(n, r), 0 outside 0 <= r <= n.
func binomial(n, r int) int {
	if r < 0 || r > n {
		return 0
	}
	if r > n-r {
		r = n - r
	}
	out := 1
	for k := 1; k <= r; k++ {
		out = out * (n - r + k) / k
	}
	return out
}

// subsets lists the r-element subsets of {0..k-1} as bitmasks in increasing order.
func subsets(k, r int) []uint {
	out := make([]uint, 0, binomial(k, r))
	for s := uint(0); s < 1<<uint(k); s++ {
		if bits.OnesCount(s) == r {
			out = append(out, s)
		}
	}
	return out
}

// boundary is the simplicial boundary of the (k-1)-simplex in degree r:
// the map from r-subsets to (r-1)-subsets dropping one vertex, signed by its position.
func boundary(k, r int) (*algebra.Matrix, error) {
	if r < 1 || r > k {
		return nil, fmt.Errorf("boundary: degree %d outside 1..%d", r, k)
	}
	rows := subsets(k, r-1)
	pos := make(map[uint]int, len(rows))
	for i, s := range rows {
		pos[s] = i
	}
	cols := subsets(k, r)
	m, err := algebra.NewMatrix(len(rows), len(cols))
	if err != nil {
		return nil, err
	}
	for c, s := range cols {
		sign := int64(1)
		for v := 0; v < k; v++ {
			bit := uint(1) << uint(v)
			if s&bit == 0 {
				continue
			}
			m.Set(pos[s&^bit], c, sign)
			sign = -sign
		}
	}
	return m, nil
}

// koszulChains produces R^(C(n,i)·C(m,j)) on the box [0,n]x[0,m].
type koszulChains struct {
	n, m int
}

func (f koszulChains) inBox(idx lattice.Index) bool {
	return idx[0] >= 0 && idx[0] <= f.n && idx[1] >= 0 && idx[1] <= f.m
}

func (f koszulChains) CanProduce(_ complex2, idx lattice.Index) (bool, error) {
	return f.inBox(idx), nil
}

func (f koszulChains) Produce(_ complex2, idx lattice.Index) (algebra.FreeModule, error) {
	return algebra.NewFreeModule(binomial(f.n, idx[0]) * binomial(f.m, idx[1]))
}

// koszulMaps produces the tensor product differentials: the boundary of the
// n-vertex simplex horizontally (a chain) and the coboundary of the m-vertex
// simplex vertically (a cochain), the latter signed by (-1)^i so squares anticommute.
type koszulMaps struct {
	n, m int
}

func (f koszulMaps) CanProduce(cx complex2, axis int, idx lattice.Index) (bool, error) {
	ok, err := cx.CanComputeIndex(idx)
	if err != nil || !ok {
		return false, err
	}
	return cx.CanComputeIndex(idx.Shift(axis, cx.Direction(axis).Step()))
}

func (f koszulMaps) Produce(cx complex2, axis int, idx lattice.Index) (*algebra.Matrix, error) {
	src, err := cx.Get(idx)
	if err != nil {
		return nil, err
	}
	dst, err := cx.Get(idx.Shift(axis, cx.Direction(axis).Step()))
	if err != nil {
		return nil, err
	}

	i, j := idx[0], idx[1]
	var d *algebra.Matrix
	switch axis {
	case doublecomplex.Horizontal:
		b, err := boundary(f.n, i)
		if err != nil {
			return nil, err
		}
		id, err := algebra.Identity(binomial(f.m, j))
		if err != nil {
			return nil, err
		}
		d = b.Kronecker(id)
	case doublecomplex.Vertical:
		b, err := boundary(f.m, j+1)
		if err != nil {
			return nil, err
		}
		id, err := algebra.Identity(binomial(f.n, i))
		if err != nil {
			return nil, err
		}
		d = id.Kronecker(b.Transpose())
		if i%2 == 1 {
			d = d.Scale(-1)
		}
	default:
		return nil, fmt.Errorf("%w: axis %d", hypercomplex.ErrAxisOutOfRange, axis)
	}

	if d.Rows() != dst.Rank || d.Cols() != src.Rank {
		return nil, fmt.Errorf("%w: map %dx%d between %v and %v", algebra.ErrShapeMismatch, d.Rows(), d.Cols(), src, dst)
	}
	return d, nil
}
