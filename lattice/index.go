package lattice

import (
	"sort"
	"strconv"
	"strings"
)

// Index addresses one position of the lattice Z^d. Two indices are equal when
// they have the same width and the same components.
type Index []int

// Idx is shorthand for building an Index from its components.
func Idx(components ...int) Index {
	return Index(components)
}

// Dim returns the number of components.
func (ix Index) Dim() int { return len(ix) }

// Equal reports structural equality.
func (ix Index) Equal(other Index) bool {
	if len(ix) != len(other) {
		return false
	}
	for k := range ix {
		if ix[k] != other[k] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy, so callers cannot alias cached keys.
func (ix Index) Clone() Index {
	out := make(Index, len(ix))
	copy(out, ix)
	return out
}

// Key returns the hashable form of ix used as a map key.
// Distinct indices of the same width always produce distinct keys.
func (ix Index) Key() string {
	buf := make([]byte, 0, 4*len(ix))
	for k, v := range ix {
		if k > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendInt(buf, int64(v), 10)
	}
	return string(buf)
}

// Shift returns a copy of ix moved by delta along the 1-based axis.
// An out-of-range axis returns an unchanged copy.
func (ix Index) Shift(axis, delta int) Index {
	out := ix.Clone()
	if axis >= 1 && axis <= len(out) {
		out[axis-1] += delta
	}
	return out
}

// String renders ix as "(a,b,...)".
func (ix Index) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(ix.Key())
	sb.WriteByte(')')
	return sb.String()
}

// Less orders indices of the same width lexicographically; shorter indices sort first.
func Less(a, b Index) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	for k := range a {
		if a[k] != b[k] {
			return a[k] < b[k]
		}
	}
	return false
}

// SortIndices sorts in place using Less.
func SortIndices(ixs []Index) {
	sort.Slice(ixs, func(a, b int) bool { return Less(ixs[a], ixs[b]) })
}

// neighbor4Offsets lists the orthogonal moves of a 2-d position: left, right, down, up.
var neighbor4Offsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Neighbors4 returns the four axis-aligned neighbours of (i,j):
// (i-1,j), (i+1,j), (i,j-1), (i,j+1).
func Neighbors4(i, j int) [4][2]int {
	var out [4][2]int
	for k, d := range neighbor4Offsets {
		out[k] = [2]int{i + d[0], j + d[1]}
	}
	return out
}
