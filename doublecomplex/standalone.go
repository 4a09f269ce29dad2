package doublecomplex

import (
	"fmt"
	"sync/atomic"

	"github.com/katalvlaran/homalg/algebra"
	"github.com/katalvlaran/homalg/hypercomplex"
	"github.com/katalvlaran/homalg/internal/memo"
	"github.com/katalvlaran/homalg/lattice"
)

// ChainFactory produces the entries of a Standalone double complex.
// Produce is only called after CanProduce returned true for (i, j).
type ChainFactory[C algebra.Zeroer, H, V any] interface {
	Produce(dc DoubleComplex[C, H, V], i, j int) (C, error)
	CanProduce(dc DoubleComplex[C, H, V], i, j int) (bool, error)
}

// MapFactory produces one family of maps of a Standalone double complex;
// T is H for the horizontal factory and V for the vertical one.
type MapFactory[C algebra.Zeroer, H, V, T any] interface {
	Produce(dc DoubleComplex[C, H, V], i, j int) (T, error)
	CanProduce(dc DoubleComplex[C, H, V], i, j int) (bool, error)
}

// UnimplementedChainFactory answers every call with hypercomplex.ErrNotImplemented.
type UnimplementedChainFactory[C algebra.Zeroer, H, V any] struct{}

// Produce always fails with ErrNotImplemented.
func (f UnimplementedChainFactory[C, H, V]) Produce(_ DoubleComplex[C, H, V], i, j int) (C, error) {
	var zero C
	return zero, notImplemented(f, "Produce", i, j)
}

// CanProduce always fails with ErrNotImplemented.
func (f UnimplementedChainFactory[C, H, V]) CanProduce(_ DoubleComplex[C, H, V], i, j int) (bool, error) {
	return false, notImplemented(f, "CanProduce", i, j)
}

// UnimplementedMapFactory answers every call with hypercomplex.ErrNotImplemented.
type UnimplementedMapFactory[C algebra.Zeroer, H, V, T any] struct{}

// Produce always fails with ErrNotImplemented.
func (f UnimplementedMapFactory[C, H, V, T]) Produce(_ DoubleComplex[C, H, V], i, j int) (T, error) {
	var zero T
	return zero, notImplemented(f, "Produce", i, j)
}

// CanProduce always fails with ErrNotImplemented.
func (f UnimplementedMapFactory[C, H, V, T]) CanProduce(_ DoubleComplex[C, H, V], i, j int) (bool, error) {
	return false, notImplemented(f, "CanProduce", i, j)
}

func notImplemented(f any, op string, i, j int) error {
	return &hypercomplex.FactoryError{Factory: fmt.Sprintf("%T", f), Op: op, Index: lattice.Idx(i, j), Kind: hypercomplex.ErrNotImplemented}
}

// ChainFactoryFunc adapts closures to ChainFactory; a nil closure is unimplemented.
type ChainFactoryFunc[C algebra.Zeroer, H, V any] struct {
	ProduceFn    func(dc DoubleComplex[C, H, V], i, j int) (C, error)
	CanProduceFn func(dc DoubleComplex[C, H, V], i, j int) bool
}

// Produce calls ProduceFn, refusing positions CanProduceFn rejects.
func (f ChainFactoryFunc[C, H, V]) Produce(dc DoubleComplex[C, H, V], i, j int) (C, error) {
	var zero C
	if f.ProduceFn == nil {
		return zero, notImplemented(f, "Produce", i, j)
	}
	if f.CanProduceFn != nil && !f.CanProduceFn(dc, i, j) {
		return zero, &hypercomplex.FactoryError{Factory: fmt.Sprintf("%T", f), Op: "Produce", Index: lattice.Idx(i, j), Kind: hypercomplex.ErrUnsupported}
	}
	return f.ProduceFn(dc, i, j)
}

// CanProduce calls CanProduceFn.
func (f ChainFactoryFunc[C, H, V]) CanProduce(dc DoubleComplex[C, H, V], i, j int) (bool, error) {
	if f.CanProduceFn == nil {
		return false, notImplemented(f, "CanProduce", i, j)
	}
	return f.CanProduceFn(dc, i, j), nil
}

// MapFactoryFunc adapts closures to MapFactory; a nil closure is unimplemented.
type MapFactoryFunc[C algebra.Zeroer, H, V, T any] struct {
	ProduceFn    func(dc DoubleComplex[C, H, V], i, j int) (T, error)
	CanProduceFn func(dc DoubleComplex[C, H, V], i, j int) bool
}

// Produce calls ProduceFn, refusing positions CanProduceFn rejects.
func (f MapFactoryFunc[C, H, V, T]) Produce(dc DoubleComplex[C, H, V], i, j int) (T, error) {
	var zero T
	if f.ProduceFn == nil {
		return zero, notImplemented(f, "Produce", i, j)
	}
	if f.CanProduceFn != nil && !f.CanProduceFn(dc, i, j) {
		return zero, &hypercomplex.FactoryError{Factory: fmt.Sprintf("%T", f), Op: "Produce", Index: lattice.Idx(i, j), Kind: hypercomplex.ErrUnsupported}
	}
	return f.ProduceFn(dc, i, j)
}

// CanProduce calls CanProduceFn.
func (f MapFactoryFunc[C, H, V, T]) CanProduce(dc DoubleComplex[C, H, V], i, j int) (bool, error) {
	if f.CanProduceFn == nil {
		return false, notImplemented(f, "CanProduce", i, j)
	}
	return f.CanProduceFn(dc, i, j), nil
}

// Option configures a Standalone double complex.
type Option func(*standaloneConfig)

type standaloneConfig struct {
	right, left, upper, lower lattice.Bound
	onProduce                 func(hypercomplex.Event)
	err                       error
}

// WithRightBound bounds axis 1 from above.
func WithRightBound(v int) Option { return func(c *standaloneConfig) { c.right = lattice.Some(v) } }

// WithLeftBound bounds axis 1 from below.
func WithLeftBound(v int) Option { return func(c *standaloneConfig) { c.left = lattice.Some(v) } }

// WithUpperBound bounds axis 2 from above.
func WithUpperBound(v int) Option { return func(c *standaloneConfig) { c.upper = lattice.Some(v) } }

// WithLowerBound bounds axis 2 from below.
func WithLowerBound(v int) Option { return func(c *standaloneConfig) { c.lower = lattice.Some(v) } }

// WithHorizontalBounds sets left and right at once; left must not exceed right.
func WithHorizontalBounds(left, right int) Option {
	return func(c *standaloneConfig) {
		if left > right && c.err == nil {
			c.err = fmt.Errorf("%w: left %d > right %d", hypercomplex.ErrOptionViolation, left, right)
			return
		}
		c.left, c.right = lattice.Some(left), lattice.Some(right)
	}
}

// WithVerticalBounds sets lower and upper at once; lower must not exceed upper.
func WithVerticalBounds(lower, upper int) Option {
	return func(c *standaloneConfig) {
		if lower > upper && c.err == nil {
			c.err = fmt.Errorf("%w: lower %d > upper %d", hypercomplex.ErrOptionViolation, lower, upper)
			return
		}
		c.lower, c.upper = lattice.Some(lower), lattice.Some(upper)
	}
}

// WithOnProduce registers a hook called after every successful production.
// Event.Axis is 0 for entries, Horizontal or Vertical for maps.
func WithOnProduce(fn func(hypercomplex.Event)) Option {
	return func(c *standaloneConfig) {
		if fn != nil {
			c.onProduce = fn
		}
	}
}

// Standalone is a double complex owning its caches and factories directly,
// for factories that are 2-dimensional by nature and maps whose horizontal
// and vertical types differ. It is safe for concurrent use; every entry and
// map is produced at most once.
type Standalone[C algebra.Zeroer, H, V any] struct {
	hdir, vdir                lattice.Direction
	right, left, upper, lower lattice.Bound

	chains     ChainFactory[C, H, V]
	horizontal MapFactory[C, H, V, H]
	vertical   MapFactory[C, H, V, V]

	chainCache *memo.Cache[[2]int, C]
	hCache     *memo.Cache[[2]int, H]
	vCache     *memo.Cache[[2]int, V]

	onProduce   func(hypercomplex.Event)
	productions uint64 // atomic
	verdict     VerdictCell
}

var _ DoubleComplex[algebra.FreeModule, int, string] = (*Standalone[algebra.FreeModule, int, string])(nil)

func pairKey(p [2]int) string { return lattice.Idx(p[0], p[1]).Key() }

// NewStandalone validates directions and factories and returns an empty double complex.
func NewStandalone[C algebra.Zeroer, H, V any](hdir, vdir lattice.Direction, chains ChainFactory[C, H, V], horizontal MapFactory[C, H, V, H], vertical MapFactory[C, H, V, V], opts ...Option) (*Standalone[C, H, V], error) {
	if !hdir.Valid() || !vdir.Valid() {
		return nil, fmt.Errorf("%w: directions %v/%v", hypercomplex.ErrConstruction, hdir, vdir)
	}
	if chains == nil || horizontal == nil || vertical == nil {
		return nil, fmt.Errorf("%w: nil factory", hypercomplex.ErrConstruction)
	}
	cfg := standaloneConfig{onProduce: func(hypercomplex.Event) {}}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	return &Standalone[C, H, V]{
		hdir: hdir, vdir: vdir,
		right: cfg.right, left: cfg.left, upper: cfg.upper, lower: cfg.lower,
		chains:     chains,
		horizontal: horizontal,
		vertical:   vertical,
		chainCache: memo.New[[2]int, C](pairKey),
		hCache:     memo.New[[2]int, H](pairKey),
		vCache:     memo.New[[2]int, V](pairKey),
		onProduce:  cfg.onProduce,
	}, nil
}

// Get returns the entry at (i, j), producing and caching it on first use.
func (s *Standalone[C, H, V]) Get(i, j int) (C, error) {
	var zero C
	val, _, err := s.chainCache.GetOrProduce([2]int{i, j}, func() (C, error) {
		ok, err := s.chains.CanProduce(s, i, j)
		if err == nil && !ok {
			return zero, &hypercomplex.IndexError{Op: "Get", Index: lattice.Idx(i, j), Kind: hypercomplex.ErrIndexUnavailable}
		}
		var v C
		if err == nil {
			v, err = s.chains.Produce(s, i, j)
		}
		if err != nil {
			return zero, &hypercomplex.IndexError{Op: "Get", Index: lattice.Idx(i, j), Kind: hypercomplex.ErrIndexUnavailable, Err: err}
		}
		s.produced(0, i, j)
		return v, nil
	})
	return val, err
}

// HasIndex reports whether (i, j) is cached.
func (s *Standalone[C, H, V]) HasIndex(i, j int) bool { return s.chainCache.Has([2]int{i, j}) }

// Lookup returns the cached entry at (i, j) without producing it.
func (s *Standalone[C, H, V]) Lookup(i, j int) (C, bool) { return s.chainCache.Lookup([2]int{i, j}) }

// CanComputeIndex reports whether (i, j) is cached or producible.
func (s *Standalone[C, H, V]) CanComputeIndex(i, j int) (bool, error) {
	if s.HasIndex(i, j) {
		return true, nil
	}
	ok, err := s.chains.CanProduce(s, i, j)
	if err != nil {
		return false, &hypercomplex.IndexError{Op: "CanComputeIndex", Index: lattice.Idx(i, j), Kind: hypercomplex.ErrIndexUnavailable, Err: err}
	}
	return ok, nil
}

// HorizontalMap returns the axis-1 map leaving (i, j).
func (s *Standalone[C, H, V]) HorizontalMap(i, j int) (H, error) {
	return produceMap(s, s.hCache, s.horizontal, Horizontal, i, j)
}

// HasHorizontalMap reports whether the axis-1 map leaving (i, j) is cached.
func (s *Standalone[C, H, V]) HasHorizontalMap(i, j int) bool { return s.hCache.Has([2]int{i, j}) }

// CanComputeHorizontalMap reports whether the axis-1 map leaving (i, j) is cached or producible.
func (s *Standalone[C, H, V]) CanComputeHorizontalMap(i, j int) (bool, error) {
	return canProduceMap(s, s.hCache, s.horizontal, Horizontal, i, j)
}

// VerticalMap returns the axis-2 map leaving (i, j).
func (s *Standalone[C, H, V]) VerticalMap(i, j int) (V, error) {
	return produceMap(s, s.vCache, s.vertical, Vertical, i, j)
}

// HasVerticalMap reports whether the axis-2 map leaving (i, j) is cached.
func (s *Standalone[C, H, V]) HasVerticalMap(i, j int) bool { return s.vCache.Has([2]int{i, j}) }

// CanComputeVerticalMap reports whether the axis-2 map leaving (i, j) is cached or producible.
func (s *Standalone[C, H, V]) CanComputeVerticalMap(i, j int) (bool, error) {
	return canProduceMap(s, s.vCache, s.vertical, Vertical, i, j)
}

func produceMap[C algebra.Zeroer, H, V, T any](s *Standalone[C, H, V], cache *memo.Cache[[2]int, T], f MapFactory[C, H, V, T], axis, i, j int) (T, error) {
	var zero T
	return firstOf(cache.GetOrProduce([2]int{i, j}, func() (T, error) {
		ok, err := f.CanProduce(s, i, j)
		if err == nil && !ok {
			return zero, &hypercomplex.IndexError{Op: "Map", Axis: axis, Index: lattice.Idx(i, j), Kind: hypercomplex.ErrMapUnavailable}
		}
		var v T
		if err == nil {
			v, err = f.Produce(s, i, j)
		}
		if err != nil {
			return zero, &hypercomplex.IndexError{Op: "Map", Axis: axis, Index: lattice.Idx(i, j), Kind: hypercomplex.ErrMapUnavailable, Err: err}
		}
		s.produced(axis, i, j)
		return v, nil
	}))
}

func canProduceMap[C algebra.Zeroer, H, V, T any](s *Standalone[C, H, V], cache *memo.Cache[[2]int, T], f MapFactory[C, H, V, T], axis, i, j int) (bool, error) {
	if cache.Has([2]int{i, j}) {
		return true, nil
	}
	ok, err := f.CanProduce(s, i, j)
	if err != nil {
		return false, &hypercomplex.IndexError{Op: "CanComputeMap", Axis: axis, Index: lattice.Idx(i, j), Kind: hypercomplex.ErrMapUnavailable, Err: err}
	}
	return ok, nil
}

func firstOf[T any](v T, _ bool, err error) (T, error) { return v, err }

func (s *Standalone[C, H, V]) produced(axis, i, j int) {
	atomic.AddUint64(&s.productions, 1)
	kind := hypercomplex.EventChain
	if axis != 0 {
		kind = hypercomplex.EventMap
	}
	s.onProduce(hypercomplex.Event{Kind: kind, Axis: axis, Index: lattice.Idx(i, j)})
}

// HorizontalDirection returns the orientation of axis 1.
func (s *Standalone[C, H, V]) HorizontalDirection() lattice.Direction { return s.hdir }

// VerticalDirection returns the orientation of axis 2.
func (s *Standalone[C, H, V]) VerticalDirection() lattice.Direction { return s.vdir }

// RightBound is the upper bound of axis 1.
func (s *Standalone[C, H, V]) RightBound() (int, bool) { return s.right.Get() }

// LeftBound is the lower bound of axis 1.
func (s *Standalone[C, H, V]) LeftBound() (int, bool) { return s.left.Get() }

// UpperBound is the upper bound of axis 2.
func (s *Standalone[C, H, V]) UpperBound() (int, bool) { return s.upper.Get() }

// LowerBound is the lower bound of axis 2.
func (s *Standalone[C, H, V]) LowerBound() (int, bool) { return s.lower.Get() }

// Indices returns the cached positions sorted by (i, j).
func (s *Standalone[C, H, V]) Indices() [][2]int {
	out := s.chainCache.Keys()
	sortPairs(out)
	return out
}

// Productions returns how many entries and maps the factories have produced.
func (s *Standalone[C, H, V]) Productions() uint64 { return atomic.LoadUint64(&s.productions) }

// IsComplete runs the completeness oracle, memoizing a true verdict.
func (s *Standalone[C, H, V]) IsComplete() (bool, error) {
	return CheckComplete[C, H, V](s, &s.verdict)
}

// Verdict returns the memoized oracle outcome.
func (s *Standalone[C, H, V]) Verdict() Verdict { return s.verdict.Load() }
