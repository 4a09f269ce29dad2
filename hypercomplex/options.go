package hypercomplex

import (
	"fmt"

	"github.com/katalvlaran/homalg/lattice"
)

// Option configures a HyperComplex at construction. Invalid values are
// recorded and surfaced by New as ErrOptionViolation; options never panic.
type Option func(*config)

type boundSpec struct {
	axis  int
	side  lattice.Side
	value int
}

// config collects option values until New knows the dimension.
type config struct {
	bounds     []boundSpec
	onProduce  func(Event)
	onCacheHit func(Event)
	err        error
}

// WithBound sets one side of an axis. Later options override earlier ones.
// There is no cross-axis or lower<=upper check here; use WithBounds for that.
func WithBound(axis int, side lattice.Side, value int) Option {
	return func(c *config) {
		if side != lattice.Upper && side != lattice.Lower {
			c.recordErr(fmt.Errorf("%w: unknown side %d", ErrOptionViolation, side))
			return
		}
		c.bounds = append(c.bounds, boundSpec{axis: axis, side: side, value: value})
	}
}

// WithBounds sets both sides of an axis at once; lower must not exceed upper.
func WithBounds(axis, lower, upper int) Option {
	return func(c *config) {
		if lower > upper {
			c.recordErr(fmt.Errorf("%w: axis %d lower %d > upper %d", ErrOptionViolation, axis, lower, upper))
			return
		}
		c.bounds = append(c.bounds,
			boundSpec{axis: axis, side: lattice.Lower, value: lower},
			boundSpec{axis: axis, side: lattice.Upper, value: upper})
	}
}

// WithOnProduce registers a hook called after every successful factory production.
// Hooks run on the producing goroutine with no lock held.
func WithOnProduce(fn func(Event)) Option {
	return func(c *config) {
		if fn != nil {
			c.onProduce = fn
		}
	}
}

// WithOnCacheHit registers a hook called when Get or Map is answered from the cache.
func WithOnCacheHit(fn func(Event)) Option {
	return func(c *config) {
		if fn != nil {
			c.onCacheHit = fn
		}
	}
}

// recordErr keeps the first violation.
func (c *config) recordErr(err error) {
	if c.err == nil {
		c.err = err
	}
}

func defaultConfig() config {
	return config{
		onProduce:  func(Event) {},
		onCacheHit: func(Event) {},
	}
}
