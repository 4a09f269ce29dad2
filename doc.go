// Package homalg is an in-memory, lazily evaluated playground for chain
// complexes over the integer lattice Z^d.
//
// What is homalg?
//
//	A thread-safe library that materializes a complex only where you look:
//		• Engine: d-dimensional complexes whose entries and structure maps are
//		  produced on demand by pluggable factories and memoized forever
//		• Views: 1-dimensional (simple) and 2-dimensional (double) complexes
//		  over the same engine
//		• Standalone double complexes with distinct horizontal and vertical map types
//		• Completeness oracle: is the materialized non-zero region enclosed?
//		• Islands: the 4-connected regions that region splits into
//
// Why use it?
//
//   - Nothing is computed until asked for, and nothing is computed twice
//   - Factories may read sibling entries while producing, so maps can be
//     built from the modules they connect
//   - Axis orientation (chain or cochain) and optional bounds per axis drive
//     traversal ranges
//
// Packages:
//
//	lattice/         indices, directions, bounds and traversal ranges
//	algebra/         the Zeroer contract plus reference FreeModule and Matrix values
//	hypercomplex/    the d-dimensional engine, factory protocol, options and errors
//	simplecomplex/   the 1-dimensional view
//	doublecomplex/   the 2-dimensional capability, its views, the oracle and islands
//	cmd/complexdemo  a CLI walking a Koszul-style double complex
//
// Quick picture of a double complex, horizontal chain and vertical cochain:
//
//	C(1,1) ← C(2,1)
//	  ↑        ↑
//	C(1,0) ← C(2,0)
//
//	go get github.com/katalvlaran/homalg/hypercomplex
package homalg
