// Package lattice defines the coordinate vocabulary shared by every complex in
// homalg: integer tuples (Index), per-axis orientation (Direction), optional
// per-axis limits (Bound, Side) and the traversal helpers built on them.
//
// What:
//
//   - Index is a fixed-width tuple of ints addressing one position of Z^d.
//   - Direction tags an axis as Chain (maps lower the index) or Cochain (maps raise it).
//   - Bound is an optional integer; an unset Bound means "unbounded / unknown".
//   - Range and MapRange enumerate a bounded axis in traversal order.
//   - Neighbors4 yields the four axis-aligned neighbours of a 2-d position.
//
// Axes are numbered from 1 to d in every public API of homalg; Index
// components are ordinary 0-based slice elements, so axis k lives at idx[k-1].
//
// Complexity:
//
//   - Index.Key, Index.Shift, Index.Equal: O(d).
//   - Range, MapRange: O(upper-lower).
//
// Errors:
//
//   - ErrUnbounded: a range was requested on an axis missing one of its bounds.
//   - ErrInvalidDirection: a direction symbol other than "chain"/"cochain".
package lattice
