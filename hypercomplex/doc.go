// Package hypercomplex implements a lazy, memoized d-dimensional complex over
// the integer lattice Z^d: the "hypercomplex" behind every chain complex and
// double complex in homalg.
//
// 🚀 What is a hypercomplex?
//
//	A grid of algebraic objects (chains) indexed by d-tuples of integers,
//	with one family of structure maps per axis. Along a Chain axis the map
//	at n goes to n-1; along a Cochain axis it goes to n+1. Most of the grid
//	is never looked at: entries and maps are produced on demand by
//	pluggable factories and cached forever once produced.
//
// ✨ Key features:
//   - Lazy: Get / Map consult the cache, then the factory's CanProduce, then Produce.
//   - Memoized: caches only grow; a resolved position always returns the same value.
//   - At-most-once production per key, even under concurrent callers.
//   - Factories receive the owning complex, so they can read sibling entries.
//   - Optional per-axis, per-side bounds (WithBound / WithBounds).
//   - Observation hooks (WithOnProduce / WithOnCacheHit) instead of built-in logging.
//
// ⚙️ Usage:
//
//	chains := hypercomplex.ChainFactoryFunc[algebra.FreeModule, *algebra.Matrix]{
//		CanProduceFn: func(_ hypercomplex.Complex[algebra.FreeModule, *algebra.Matrix], ix lattice.Index) bool {
//			return ix[0] >= 0 && ix[0] <= 3
//		},
//		ProduceFn: func(_ hypercomplex.Complex[algebra.FreeModule, *algebra.Matrix], ix lattice.Index) (algebra.FreeModule, error) {
//			return algebra.NewFreeModule(ix[0] + 1)
//		},
//	}
//	hc, err := hypercomplex.New(1, []lattice.Direction{lattice.Chain}, chains,
//		[]hypercomplex.MapFactory[algebra.FreeModule, *algebra.Matrix]{maps},
//		hypercomplex.WithBounds(1, 0, 3))
//	m, err := hc.Get(lattice.Idx(2)) // R^3, produced once
//
// Axes are numbered 1..d. Every Index passed in must have exactly d components.
//
// Errors:
//
//	ErrConstruction      – invalid dimension, directions or factories at New.
//	ErrOptionViolation   – an Option referenced a bad axis or inverted bounds.
//	ErrDimensionMismatch – an Index of the wrong width.
//	ErrAxisOutOfRange    – an axis outside 1..d.
//	ErrIndexUnavailable  – the entry is neither cached nor producible.
//	ErrMapUnavailable    – the map is neither cached nor producible.
//	ErrNotImplemented    – a factory capability was left unimplemented.
//	ErrUnsupported       – Produce was called where CanProduce is false.
//
// Complexity:
//
//   - Get / Map on a cache hit: O(d) for key hashing.
//   - IsComplete: O(volume of the bounded box · d).
package hypercomplex
