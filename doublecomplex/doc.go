// Package doublecomplex specializes the lazy hypercomplex to two axes and adds
// the completeness oracle.
//
// What:
//
//   - DoubleComplex: the horizontal/vertical vocabulary (Get(i,j), HorizontalMap,
//     VerticalMap, Right/Left/Upper/Lower bounds) shared by both implementations.
//   - View: a DoubleComplex delegating to a 2-dimensional hypercomplex.HyperComplex
//     (horizontal = axis 1, vertical = axis 2).
//   - Standalone: a DoubleComplex owning its own caches and factories, with
//     distinct horizontal (H) and vertical (V) map types.
//   - CheckComplete: decides whether the cached non-zero region is enclosed by
//     cached or unproducible neighbours.
//   - Islands: groups the cached non-zero entries into 4-connected islands.
//
// Completeness caveat:
//
//	The oracle only looks at the neighbourhood of what is cached. Several
//	disjoint islands, each closed, yield true even if other non-zero regions
//	of the lattice were never explored. Islands makes that situation visible.
//	A true verdict is memoized for the life of the complex and never reset.
//
// Bounds:
//
//	Right/Left bound axis 1 (horizontal, upper/lower); Upper/Lower bound axis 2.
//
// Errors are those of package hypercomplex (ErrConstruction, ErrIndexUnavailable,
// ErrMapUnavailable, ErrNotImplemented, ...) and lattice.ErrUnbounded for ranges.
package doublecomplex
