package lattice

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for lattice helpers.
var (
	// ErrUnbounded indicates a range was requested on an axis whose upper or lower bound is unset.
	ErrUnbounded = errors.New("lattice: axis is not bounded on both sides")

	// ErrInvalidDirection indicates an unknown direction symbol or value.
	ErrInvalidDirection = errors.New("lattice: invalid direction")

	// ErrRangeTooLarge indicates a bounded axis whose span does not fit in an int.
	ErrRangeTooLarge = errors.New("lattice: range too large")
)

// Direction is the orientation of the morphisms along one axis.
type Direction int

const (
	// Chain morphisms go from index n to index n-1.
	Chain Direction = iota + 1

	// Cochain morphisms go from index n to index n+1.
	Cochain
)

// Valid reports whether d is Chain or Cochain.
func (d Direction) Valid() bool {
	return d == Chain || d == Cochain
}

// Step returns the index delta of a morphism along an axis with direction d:
// -1 for Chain, +1 for Cochain and 0 for an invalid value.
func (d Direction) Step() int {
	switch d {
	case Chain:
		return -1
	case Cochain:
		return 1
	default:
		return 0
	}
}

// String returns "chain", "cochain" or "Direction(n)".
func (d Direction) String() string {
	switch d {
	case Chain:
		return "chain"
	case Cochain:
		return "cochain"
	default:
		return "Direction(" + strconv.Itoa(int(d)) + ")"
	}
}

// ParseDirection maps the symbols "chain" and "cochain" to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "chain":
		return Chain, nil
	case "cochain":
		return Cochain, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
}

// Side selects one of the two bounds of an axis.
type Side int

const (
	// Upper is the largest index that may be non-zero.
	Upper Side = iota

	// Lower is the smallest index that may be non-zero.
	Lower
)

// String returns "upper" or "lower".
func (s Side) String() string {
	if s == Lower {
		return "lower"
	}
	return "upper"
}

// Bound is an optional integer limit along one side of an axis.
// The zero value is unset, meaning the axis is unbounded (or the limit is unknown)
// on that side.
type Bound struct {
	value int
	set   bool
}

// Some returns a Bound set to v.
func Some(v int) Bound { return Bound{value: v, set: true} }

// None returns an unset Bound.
func None() Bound { return Bound{} }

// Get returns the bound value and whether it is set.
func (b Bound) Get() (int, bool) { return b.value, b.set }

// IsSet reports whether the bound carries a value.
func (b Bound) IsSet() bool { return b.set }

// String returns the value, or "none" when unset.
func (b Bound) String() string {
	if !b.set {
		return "none"
	}
	return strconv.Itoa(b.value)
}
