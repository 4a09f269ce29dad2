package hypercomplex

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/homalg/lattice"
)

// Sentinel errors. Branch on them with errors.Is; the structured error types
// below carry the offending index and axis.
var (
	// ErrNotImplemented indicates a factory capability with no concrete behavior.
	ErrNotImplemented = errors.New("hypercomplex: factory capability not implemented")

	// ErrUnsupported indicates Produce was called at a position its factory cannot produce.
	ErrUnsupported = errors.New("hypercomplex: factory cannot produce this position")

	// ErrIndexUnavailable indicates an entry that is neither cached nor producible.
	ErrIndexUnavailable = errors.New("hypercomplex: index unavailable")

	// ErrMapUnavailable indicates a map that is neither cached nor producible.
	ErrMapUnavailable = errors.New("hypercomplex: map unavailable")

	// ErrConstruction indicates invalid construction arguments.
	ErrConstruction = errors.New("hypercomplex: invalid construction")

	// ErrDimensionMismatch indicates an Index whose width differs from the complex dimension.
	ErrDimensionMismatch = errors.New("hypercomplex: index dimension mismatch")

	// ErrAxisOutOfRange indicates an axis outside 1..Dim().
	ErrAxisOutOfRange = errors.New("hypercomplex: axis out of range")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("hypercomplex: invalid option supplied")
)

// IndexError reports a failed lookup on a complex. It unwraps to Kind (one of
// the sentinels above) and, when present, to Err, the underlying factory error.
type IndexError struct {
	Op    string        // "Get", "Map", "CanComputeIndex", ...
	Axis  int           // 0 for entry operations
	Index lattice.Index // offending index
	Kind  error         // sentinel classification
	Err   error         // optional cause
}

// Error formats the failure for display.
func (e *IndexError) Error() string {
	where := e.Index.String()
	if e.Axis > 0 {
		where = fmt.Sprintf("axis %d at %s", e.Axis, where)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %v: %v", e.Op, where, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, where, e.Kind)
}

// Unwrap exposes both the classification and the cause to errors.Is / errors.As.
func (e *IndexError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// FactoryError reports a failure raised by a factory itself.
type FactoryError struct {
	Factory string        // dynamic type of the factory, e.g. "hypercomplex.UnimplementedChainFactory[...]"
	Op      string        // "Produce" or "CanProduce"
	Axis    int           // 0 for chain factories
	Index   lattice.Index // requested position
	Kind    error         // ErrNotImplemented or ErrUnsupported
}

// Error formats the failure for display.
func (e *FactoryError) Error() string {
	if e.Axis > 0 {
		return fmt.Sprintf("%s.%s(axis %d, %s): %v", e.Factory, e.Op, e.Axis, e.Index, e.Kind)
	}
	return fmt.Sprintf("%s.%s(%s): %v", e.Factory, e.Op, e.Index, e.Kind)
}

// Unwrap returns the sentinel classification.
func (e *FactoryError) Unwrap() error { return e.Kind }

// Complex is the read capability shared by every complex in homalg and handed
// to factories during production.
//
// Axis arguments are 1-based. Direction returns the zero (invalid) Direction
// and Bound returns ok=false for an axis outside 1..Dim(). HasIndex and HasMap
// are pure cache lookups; an index of the wrong width is simply absent.
type Complex[C, M any] interface {
	Dim() int
	Direction(axis int) lattice.Direction
	Bound(axis int, side lattice.Side) (int, bool)
	HasBound(axis int, side lattice.Side) bool

	Get(idx lattice.Index) (C, error)
	HasIndex(idx lattice.Index) bool
	CanComputeIndex(idx lattice.Index) (bool, error)

	Map(axis int, idx lattice.Index) (M, error)
	HasMap(axis int, idx lattice.Index) bool
	CanComputeMap(axis int, idx lattice.Index) (bool, error)

	// Indices returns the cached positions in lattice.Less order.
	Indices() []lattice.Index

	IsComplete() (bool, error)
}

// EventKind tells entry events from map events.
type EventKind int

const (
	// EventChain concerns an entry of the complex.
	EventChain EventKind = iota
	// EventMap concerns a map along Event.Axis.
	EventMap
)

// Event describes one cache interaction, passed to observation hooks.
type Event struct {
	Kind  EventKind
	Axis  int // 0 for EventChain
	Index lattice.Index
}

// MapKey identifies a cached map: the axis and its domain index.
type MapKey struct {
	Axis  int
	Index lattice.Index
}

// Stats is a point-in-time summary of a complex's caches.
type Stats struct {
	Dim              int
	CachedChains     int
	CachedMaps       int
	ChainProductions uint64 // factory Produce calls that succeeded
	MapProductions   uint64
	CacheHits        uint64
}
