// Package complexdemo builds the Koszul-style double complex behind the
// complexdemo command and prints what the lazy engine materialized.
package complexdemo

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"

	"github.com/caarlos0/env/v11"

	"github.com/katalvlaran/homalg/algebra"
	"github.com/katalvlaran/homalg/doublecomplex"
	"github.com/katalvlaran/homalg/hypercomplex"
	"github.com/katalvlaran/homalg/lattice"
)

// maxVertices keeps the largest entry at C(6,3)² ranks.
const maxVertices = 6

// errNotAComplex reports a failed d∘d = 0 or anticommutation check.
var errNotAComplex = errors.New("differentials do not form a double complex")

// Config holds complexdemo command configuration.
type Config struct {
	Horizontal int  `env:"COMPLEXDEMO_HORIZONTAL" envDefault:"3"`
	Vertical   int  `env:"COMPLEXDEMO_VERTICAL"   envDefault:"2"`
	Columns    int  `env:"COMPLEXDEMO_COLUMNS"`
	Check      bool `env:"COMPLEXDEMO_CHECK"      envDefault:"true"`
	Verbose    bool `env:"COMPLEXDEMO_VERBOSE"`
}

// ParseConfig parses env, then flags, into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.IntVar(&cfg.Horizontal, "horizontal", cfg.Horizontal, "vertices of the horizontal simplex (chain axis)")
	fs.IntVar(&cfg.Vertical, "vertical", cfg.Vertical, "vertices of the vertical simplex (cochain axis)")
	fs.IntVar(&cfg.Columns, "columns", cfg.Columns, "materialize only this many columns (0 = all)")
	fs.BoolVar(&cfg.Check, "check", cfg.Check, "verify d∘d = 0 and anticommuting squares")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "log every production to stderr")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Horizontal < 0 || c.Horizontal > maxVertices {
		return fmt.Errorf("horizontal must be in 0..%d, got %d", maxVertices, c.Horizontal)
	}
	if c.Vertical < 0 || c.Vertical > maxVertices {
		return fmt.Errorf("vertical must be in 0..%d, got %d", maxVertices, c.Vertical)
	}
	if c.Columns < 0 {
		return fmt.Errorf("columns must be >= 0, got %d", c.Columns)
	}
	return nil
}

type demoComplex = doublecomplex.View[algebra.FreeModule, *algebra.Matrix]

// Run builds the complex, walks it and writes the report to out.
// Verbose production logs go to errOut.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	opts := []hypercomplex.Option{
		hypercomplex.WithBounds(doublecomplex.Horizontal, 0, cfg.Horizontal),
		hypercomplex.WithBounds(doublecomplex.Vertical, 0, cfg.Vertical),
	}
	if cfg.Verbose {
		logger := log.New(errOut, "", 0)
		opts = append(opts, hypercomplex.WithOnProduce(func(e hypercomplex.Event) {
			if e.Kind == hypercomplex.EventChain {
				logger.Printf("produced entry %v", e.Index)
				return
			}
			logger.Printf("produced map %v on axis %d", e.Index, e.Axis)
		}))
	}
	dc, err := doublecomplex.NewViewFromFactories[algebra.FreeModule, *algebra.Matrix](
		lattice.Chain, lattice.Cochain,
		koszulChains{n: cfg.Horizontal, m: cfg.Vertical},
		koszulMaps{n: cfg.Horizontal, m: cfg.Vertical}, opts...)
	if err != nil {
		return fmt.Errorf("build complex: %w", err)
	}

	cols, err := doublecomplex.HorizontalRange[algebra.FreeModule, *algebra.Matrix, *algebra.Matrix](dc)
	if err != nil {
		return err
	}
	rows, err := doublecomplex.VerticalRange[algebra.FreeModule, *algebra.Matrix, *algebra.Matrix](dc)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "double complex: %v K(%d) x %v K(%d)\n",
		dc.HorizontalDirection(), cfg.Horizontal, dc.VerticalDirection(), cfg.Vertical)
	fmt.Fprintf(out, "columns: %v\n", cols)
	fmt.Fprintf(out, "rows: %v\n", rows)

	partial := cfg.Columns > 0 && cfg.Columns < len(cols)
	if partial {
		cols = cols[:cfg.Columns]
	}
	for _, j := range rows {
		fmt.Fprintf(out, "j=%d:", j)
		for _, i := range cols {
			if err := ctx.Err(); err != nil {
				return err
			}
			e, err := dc.Get(i, j)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, " %v", e)
		}
		fmt.Fprintln(out)
	}

	switch {
	case !cfg.Check:
	case partial:
		fmt.Fprintln(out, "checks skipped: partial materialization")
	default:
		if err := check(ctx, dc, out); err != nil {
			return err
		}
	}

	done, err := dc.IsComplete()
	if err != nil {
		return err
	}
	islands := doublecomplex.Islands[algebra.FreeModule, *algebra.Matrix, *algebra.Matrix](dc)
	fmt.Fprintf(out, "complete: %t, islands: %d\n", done, len(islands))
	for k, island := range islands {
		first, last := island[0], island[len(island)-1]
		fmt.Fprintf(out, "island %d: %d entries from (%d,%d) to (%d,%d)\n",
			k, len(island), first[0], first[1], last[0], last[1])
	}

	st := dc.Engine().Stats()
	fmt.Fprintf(out, "produced %d entries and %d maps, %d cache hits\n",
		st.ChainProductions, st.MapProductions, st.CacheHits)
	return nil
}

// check verifies that both differentials square to zero and that every square anticommutes.
func check(ctx context.Context, dc *demoComplex, out io.Writer) error {
	hmaps, err := doublecomplex.HorizontalMapRange[algebra.FreeModule, *algebra.Matrix, *algebra.Matrix](dc)
	if err != nil {
		return err
	}
	vmaps, err := doublecomplex.VerticalMapRange[algebra.FreeModule, *algebra.Matrix, *algebra.Matrix](dc)
	if err != nil {
		return err
	}
	rows, err := doublecomplex.VerticalRange[algebra.FreeModule, *algebra.Matrix, *algebra.Matrix](dc)
	if err != nil {
		return err
	}
	cols, err := doublecomplex.HorizontalRange[algebra.FreeModule, *algebra.Matrix, *algebra.Matrix](dc)
	if err != nil {
		return err
	}
	hstep, vstep := dc.HorizontalDirection().Step(), dc.VerticalDirection().Step()
	hnext, vnext := members(hmaps), members(vmaps)

	var horizontal, vertical, squares int
	for _, i := range hmaps {
		if !hnext[i+hstep] {
			continue
		}
		for _, j := range rows {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := composesToZero(dc.HorizontalMap, i, j, i+hstep, j); err != nil {
				return err
			}
			horizontal++
		}
	}
	for _, j := range vmaps {
		if !vnext[j+vstep] {
			continue
		}
		for _, i := range cols {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := composesToZero(dc.VerticalMap, i, j, i, j+vstep); err != nil {
				return err
			}
			vertical++
		}
	}
	for _, i := range hmaps {
		for _, j := range vmaps {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := anticommutes(dc, i, j, i+hstep, j+vstep); err != nil {
				return err
			}
			squares++
		}
	}
	fmt.Fprintf(out, "d∘d = 0: %d horizontal, %d vertical; %d squares anticommute\n", horizontal, vertical, squares)
	return nil
}

func members(xs []int) map[int]bool {
	out := make(map[int]bool, len(xs))
	for _, x := range xs {
		out[x] = true
	}
	return out
}

// composesToZero checks that the map at (i2,j2) after the map at (i,j) is zero.
func composesToZero(get func(i, j int) (*algebra.Matrix, error), i, j, i2, j2 int) error {
	first, err := get(i, j)
	if err != nil {
		return err
	}
	second, err := get(i2, j2)
	if err != nil {
		return err
	}
	dd, err := second.Compose(first)
	if err != nil {
		return err
	}
	if !dd.IsZero() {
		return fmt.Errorf("%w: d∘d != 0 at (%d,%d)", errNotAComplex, i, j)
	}
	return nil
}

// anticommutes checks v∘h + h∘v == 0 around the square with corners (i,j) and (ih,jv).
func anticommutes(dc *demoComplex, i, j, ih, jv int) error {
	h, err := dc.HorizontalMap(i, j)
	if err != nil {
		return err
	}
	vAfter, err := dc.VerticalMap(ih, j)
	if err != nil {
		return err
	}
	v, err := dc.VerticalMap(i, j)
	if err != nil {
		return err
	}
	hAfter, err := dc.HorizontalMap(i, jv)
	if err != nil {
		return err
	}
	p, err := vAfter.Compose(h)
	if err != nil {
		return err
	}
	q, err := hAfter.Compose(v)
	if err != nil {
		return err
	}
	sum, err := p.Add(q)
	if err != nil {
		return err
	}
	if !sum.IsZero() {
		return fmt.Errorf("%w: square at (%d,%d) does not anticommute", errNotAComplex, i, j)
	}
	return nil
}
