package hypercomplex

import (
	"fmt"
	"sort"
	"sync/atomic"

	"github.com/katalvlaran/homalg/internal/memo"
	"github.com/katalvlaran/homalg/lattice"
)

// HyperComplex is the generic d-dimensional lazy complex.
//
// Dimension, directions, bounds and factories are fixed at construction; the
// two caches start empty and only grow. All methods are safe for concurrent
// use, and each entry or map is produced at most once.
type HyperComplex[C, M any] struct {
	dim          int
	dirs         []lattice.Direction
	upper, lower []lattice.Bound // indexed by axis-1

	chains ChainFactory[C, M]
	maps   []MapFactory[C, M] // one per axis, indexed by axis-1

	chainCache *memo.Cache[lattice.Index, C]
	mapCache   *memo.Cache[MapKey, M]

	onProduce  func(Event)
	onCacheHit func(Event)

	chainProductions uint64 // atomic
	mapProductions   uint64 // atomic
	cacheHits        uint64 // atomic
}

var _ Complex[int, int] = (*HyperComplex[int, int])(nil)

// New constructs a dim-dimensional complex.
//
// dirs and maps must each have exactly dim elements (maps[k] serves axis k+1;
// the same factory may be passed for several axes). All factories must be
// non-nil and all directions valid, otherwise ErrConstruction is returned.
// Option violations are returned as ErrOptionViolation.
//
// Complexity: O(dim + len(opts)).
func New[C, M any](dim int, dirs []lattice.Direction, chains ChainFactory[C, M], maps []MapFactory[C, M], opts ...Option) (*HyperComplex[C, M], error) {
	if dim <= 0 {
		return nil, fmt.Errorf("%w: dimension %d must be positive", ErrConstruction, dim)
	}
	if len(dirs) != dim {
		return nil, fmt.Errorf("%w: %d directions for dimension %d", ErrConstruction, len(dirs), dim)
	}
	if len(maps) != dim {
		return nil, fmt.Errorf("%w: %d map factories for dimension %d", ErrConstruction, len(maps), dim)
	}
	if chains == nil {
		return nil, fmt.Errorf("%w: nil chain factory", ErrConstruction)
	}
	for k, d := range dirs {
		if !d.Valid() {
			return nil, fmt.Errorf("%w: axis %d: %v", ErrConstruction, k+1, d)
		}
		if maps[k] == nil {
			return nil, fmt.Errorf("%w: nil map factory for axis %d", ErrConstruction, k+1)
		}
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	hc := &HyperComplex[C, M]{
		dim:        dim,
		dirs:       append([]lattice.Direction(nil), dirs...),
		upper:      make([]lattice.Bound, dim),
		lower:      make([]lattice.Bound, dim),
		chains:     chains,
		maps:       append([]MapFactory[C, M](nil), maps...),
		chainCache: memo.New[lattice.Index, C](lattice.Index.Key),
		mapCache:   memo.New[MapKey, M](mapKeyString),
		onProduce:  cfg.onProduce,
		onCacheHit: cfg.onCacheHit,
	}
	for _, b := range cfg.bounds {
		if b.axis < 1 || b.axis > dim {
			return nil, fmt.Errorf("%w: bound on axis %d of a %d-dimensional complex", ErrOptionViolation, b.axis, dim)
		}
		if b.side == lattice.Upper {
			hc.upper[b.axis-1] = lattice.Some(b.value)
		} else {
			hc.lower[b.axis-1] = lattice.Some(b.value)
		}
	}

	return hc, nil
}

func mapKeyString(k MapKey) string {
	return fmt.Sprintf("%d|%s", k.Axis, k.Index.Key())
}

// Dim returns the number of axes.
func (hc *HyperComplex[C, M]) Dim() int { return hc.dim }

// Direction returns the orientation of axis, or the zero Direction when axis is out of range.
func (hc *HyperComplex[C, M]) Direction(axis int) lattice.Direction {
	if !hc.validAxis(axis) {
		return 0
	}
	return hc.dirs[axis-1]
}

// Bound returns the bound on one side of axis and whether it is set.
func (hc *HyperComplex[C, M]) Bound(axis int, side lattice.Side) (int, bool) {
	return hc.bound(axis, side).Get()
}

// HasBound reports whether one side of axis is bounded.
func (hc *HyperComplex[C, M]) HasBound(axis int, side lattice.Side) bool {
	return hc.bound(axis, side).IsSet()
}

func (hc *HyperComplex[C, M]) bound(axis int, side lattice.Side) lattice.Bound {
	if !hc.validAxis(axis) {
		return lattice.None()
	}
	if side == lattice.Lower {
		return hc.lower[axis-1]
	}
	return hc.upper[axis-1]
}

// Codomain returns the index a map at (axis, idx) lands on.
func (hc *HyperComplex[C, M]) Codomain(axis int, idx lattice.Index) (lattice.Index, error) {
	if err := hc.checkMapArgs("Codomain", axis, idx); err != nil {
		return nil, err
	}
	return idx.Shift(axis, hc.dirs[axis-1].Step()), nil
}

// Get returns the entry at idx, producing and caching it on first use.
// It fails with ErrIndexUnavailable when the entry is neither cached nor producible.
func (hc *HyperComplex[C, M]) Get(idx lattice.Index) (C, error) {
	var zero C
	if idx.Dim() != hc.dim {
		return zero, &IndexError{Op: "Get", Index: idx, Kind: ErrDimensionMismatch}
	}
	key := idx.Clone()
	val, hit, err := hc.chainCache.GetOrProduce(key, func() (C, error) {
		ok, err := hc.chains.CanProduce(hc, key)
		if err != nil {
			return zero, &IndexError{Op: "Get", Index: key, Kind: ErrIndexUnavailable, Err: err}
		}
		if !ok {
			return zero, &IndexError{Op: "Get", Index: key, Kind: ErrIndexUnavailable}
		}
		v, err := hc.chains.Produce(hc, key)
		if err != nil {
			return zero, &IndexError{Op: "Get", Index: key, Kind: ErrIndexUnavailable, Err: err}
		}
		atomic.AddUint64(&hc.chainProductions, 1)
		hc.onProduce(Event{Kind: EventChain, Index: key})

		return v, nil
	})
	if err != nil {
		return zero, err
	}
	if hit {
		atomic.AddUint64(&hc.cacheHits, 1)
		hc.onCacheHit(Event{Kind: EventChain, Index: key})
	}

	return val, nil
}

// HasIndex reports whether idx is cached. It never produces.
// An index whose width differs from Dim() is reported absent rather than as
// ErrDimensionMismatch; use Get or CanComputeIndex to surface the mismatch.
func (hc *HyperComplex[C, M]) HasIndex(idx lattice.Index) bool {
	if idx.Dim() != hc.dim {
		return false
	}
	return hc.chainCache.Has(idx)
}

// Lookup returns the cached entry at idx without producing it. Unlike Get it
// does not count a cache hit or call the OnCacheHit hook. A wrong-width index
// is reported absent.
func (hc *HyperComplex[C, M]) Lookup(idx lattice.Index) (C, bool) {
	if idx.Dim() != hc.dim {
		var zero C
		return zero, false
	}
	return hc.chainCache.Lookup(idx)
}

// CanComputeIndex asks the chain factory whether idx is producible.
// A cached index is always computable.
func (hc *HyperComplex[C, M]) CanComputeIndex(idx lattice.Index) (bool, error) {
	if idx.Dim() != hc.dim {
		return false, &IndexError{Op: "CanComputeIndex", Index: idx, Kind: ErrDimensionMismatch}
	}
	if hc.chainCache.Has(idx) {
		return true, nil
	}
	ok, err := hc.chains.CanProduce(hc, idx)
	if err != nil {
		return false, &IndexError{Op: "CanComputeIndex", Index: idx, Kind: ErrIndexUnavailable, Err: err}
	}
	return ok, nil
}

// Map returns the structure map along axis starting at idx, producing and
// caching it on first use.
func (hc *HyperComplex[C, M]) Map(axis int, idx lattice.Index) (M, error) {
	var zero M
	if err := hc.checkMapArgs("Map", axis, idx); err != nil {
		return zero, err
	}
	key := MapKey{Axis: axis, Index: idx.Clone()}
	f := hc.maps[axis-1]
	val, hit, err := hc.mapCache.GetOrProduce(key, func() (M, error) {
		ok, err := f.CanProduce(hc, axis, key.Index)
		if err != nil {
			return zero, &IndexError{Op: "Map", Axis: axis, Index: key.Index, Kind: ErrMapUnavailable, Err: err}
		}
		if !ok {
			return zero, &IndexError{Op: "Map", Axis: axis, Index: key.Index, Kind: ErrMapUnavailable}
		}
		v, err := f.Produce(hc, axis, key.Index)
		if err != nil {
			return zero, &IndexError{Op: "Map", Axis: axis, Index: key.Index, Kind: ErrMapUnavailable, Err: err}
		}
		atomic.AddUint64(&hc.mapProductions, 1)
		hc.onProduce(Event{Kind: EventMap, Axis: axis, Index: key.Index})

		return v, nil
	})
	if err != nil {
		return zero, err
	}
	if hit {
		atomic.AddUint64(&hc.cacheHits, 1)
		hc.onCacheHit(Event{Kind: EventMap, Axis: axis, Index: key.Index})
	}

	return val, nil
}

// HasMap reports whether the map at (axis, idx) is cached. An out-of-range
// axis or a wrong-width index is reported absent rather than as an error.
func (hc *HyperComplex[C, M]) HasMap(axis int, idx lattice.Index) bool {
	if !hc.validAxis(axis) || idx.Dim() != hc.dim {
		return false
	}
	return hc.mapCache.Has(MapKey{Axis: axis, Index: idx})
}

// CanComputeMap asks the axis' map factory whether (axis, idx) is producible.
func (hc *HyperComplex[C, M]) CanComputeMap(axis int, idx lattice.Index) (bool, error) {
	if err := hc.checkMapArgs("CanComputeMap", axis, idx); err != nil {
		return false, err
	}
	if hc.mapCache.Has(MapKey{Axis: axis, Index: idx}) {
		return true, nil
	}
	ok, err := hc.maps[axis-1].CanProduce(hc, axis, idx)
	if err != nil {
		return false, &IndexError{Op: "CanComputeMap", Axis: axis, Index: idx, Kind: ErrMapUnavailable, Err: err}
	}
	return ok, nil
}

// Indices returns the cached entry positions sorted by lattice.Less.
func (hc *HyperComplex[C, M]) Indices() []lattice.Index {
	out := hc.chainCache.Keys()
	for k := range out {
		out[k] = out[k].Clone()
	}
	lattice.SortIndices(out)
	return out
}

// MapKeys returns the cached map positions sorted by axis, then index.
func (hc *HyperComplex[C, M]) MapKeys() []MapKey {
	out := hc.mapCache.Keys()
	for k := range out {
		out[k].Index = out[k].Index.Clone()
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].Axis != out[b].Axis {
			return out[a].Axis < out[b].Axis
		}
		return lattice.Less(out[a].Index, out[b].Index)
	})
	return out
}

// Stats returns a snapshot of cache sizes and production counters.
func (hc *HyperComplex[C, M]) Stats() Stats {
	return Stats{
		Dim:              hc.dim,
		CachedChains:     hc.chainCache.Len(),
		CachedMaps:       hc.mapCache.Len(),
		ChainProductions: atomic.LoadUint64(&hc.chainProductions),
		MapProductions:   atomic.LoadUint64(&hc.mapProductions),
		CacheHits:        atomic.LoadUint64(&hc.cacheHits),
	}
}

// IsComplete is the generic existence check: it reports true when every axis
// is bounded on both sides and every position of the bounded box is cached.
// Unbounded or partially explored complexes report false, never an error.
// The topological closure test for double complexes lives in doublecomplex.
//
// Complexity: O(volume · d).
func (hc *HyperComplex[C, M]) IsComplete() (bool, error) {
	lo := make([]int, hc.dim)
	hi := make([]int, hc.dim)
	volume := 1
	for k := 0; k < hc.dim; k++ {
		l, okL := hc.lower[k].Get()
		u, okU := hc.upper[k].Get()
		if !okL || !okU {
			return false, nil
		}
		if u < l {
			// An inverted box has no positions left to explore.
			return true, nil
		}
		lo[k], hi[k] = l, u
	}
	for k := 0; k < hc.dim; k++ {
		volume *= hi[k] - lo[k] + 1
		if volume > hc.chainCache.Len() {
			return false, nil
		}
	}

	cur := append(lattice.Index(nil), lo...)
	for {
		if !hc.chainCache.Has(cur) {
			return false, nil
		}
		// odometer increment over the box
		k := hc.dim - 1
		for ; k >= 0; k-- {
			if cur[k] < hi[k] {
				cur[k]++
				break
			}
			cur[k] = lo[k]
		}
		if k < 0 {
			return true, nil
		}
	}
}

func (hc *HyperComplex[C, M]) validAxis(axis int) bool {
	return axis >= 1 && axis <= hc.dim
}

func (hc *HyperComplex[C, M]) checkMapArgs(op string, axis int, idx lattice.Index) error {
	if idx.Dim() != hc.dim {
		return &IndexError{Op: op, Axis: axis, Index: idx, Kind: ErrDimensionMismatch}
	}
	if !hc.validAxis(axis) {
		return &IndexError{Op: op, Axis: axis, Index: idx, Kind: ErrAxisOutOfRange}
	}
	return nil
}
