package doublecomplex

import (
	"sort"

	"github.com/katalvlaran/homalg/algebra"
	"github.com/katalvlaran/homalg/lattice"
)

// CheckComplete decides whether the cached non-zero region of dc is enclosed.
//
// Behavior:
//  1. A Complete verdict already stored in cell is returned at once.
//  2. With nothing cached the answer is false: there is no witness yet.
//  3. For every cached non-zero entry, each of its four neighbours (i±1,j),
//     (i,j±1) must be cached or not computable. The first neighbour that is
//     uncached and computable ends the check with false.
//  4. Otherwise Complete is stored and true returned.
//
// The oracle reads cached values through Lookup only: it never produces an
// entry and never counts a cache hit. cell may be nil, in which case nothing
// is memoized. Factory errors from CanComputeIndex are returned as-is.
//
// Disjoint islands are each checked on their own, so a true verdict says
// nothing about regions of the lattice that were never cached.
//
// Complexity: O(cached entries) zero tests plus up to 4 CanComputeIndex calls each.
func CheckComplete[C algebra.Zeroer, H, V any](dc DoubleComplex[C, H, V], cell *VerdictCell) (bool, error) {
	if cell != nil && cell.Load() == Complete {
		return true, nil
	}
	closed, err := enclosed(dc)
	if err != nil {
		return false, err
	}
	if cell != nil {
		if closed {
			cell.store(Complete)
		} else {
			cell.store(Incomplete)
		}
	}
	return closed, nil
}

func enclosed[C algebra.Zeroer, H, V any](dc DoubleComplex[C, H, V]) (bool, error) {
	cached := dc.Indices()
	if len(cached) == 0 {
		return false, nil
	}
	for _, p := range cached {
		val, ok := dc.Lookup(p[0], p[1])
		if !ok || val.IsZero() {
			continue
		}
		for _, n := range lattice.Neighbors4(p[0], p[1]) {
			if dc.HasIndex(n[0], n[1]) {
				continue
			}
			ok, err := dc.CanComputeIndex(n[0], n[1])
			if err != nil {
				return false, err
			}
			if ok {
				return false, nil
			}
		}
	}
	return true, nil
}

// Islands groups the cached non-zero entries of dc into 4-connected islands.
// Islands are ordered by their smallest position and each island is sorted by (i, j).
// Zero entries separate islands. Entries are read with Lookup, so nothing is
// produced and no cache hit is counted.
//
// Complexity: O(cached entries) time and memory.
func Islands[C algebra.Zeroer, H, V any](dc DoubleComplex[C, H, V]) [][][2]int {
	land := make(map[[2]int]bool)
	cached := dc.Indices()
	for _, p := range cached {
		if val, ok := dc.Lookup(p[0], p[1]); ok && !val.IsZero() {
			land[p] = true
		}
	}

	seen := make(map[[2]int]bool, len(land))
	var islands [][][2]int
	for _, start := range cached {
		if !land[start] || seen[start] {
			continue
		}
		// BFS over non-zero cached neighbours
		queue := [][2]int{start}
		seen[start] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, n := range lattice.Neighbors4(u[0], u[1]) {
				if land[n] && !seen[n] {
					seen[n] = true
					queue = append(queue, n)
				}
			}
		}
		sortPairs(queue)
		islands = append(islands, queue)
	}
	return islands
}

func sortPairs(ps [][2]int) {
	sort.Slice(ps, func(a, b int) bool {
		if ps[a][0] != ps[b][0] {
			return ps[a][0] < ps[b][0]
		}
		return ps[a][1] < ps[b][1]
	})
}
