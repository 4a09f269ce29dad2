// Package algebra holds the collaborator contracts that homalg complexes need
// from the algebra layer, plus two small reference values used by examples,
// tests and the demo CLI.
//
// The lattice engine never does arithmetic. The only capability it asks of a
// chain value is a zero test (Zeroer), and only the completeness oracle uses
// it. Morphism values are opaque.
//
// FreeModule and Matrix are deliberately shallow: a free module is its rank,
// a morphism is an integer matrix with the few linear operations needed to
// build and check tensor products of complexes. Real callers plug in their own
// module and map types.
package algebra

import (
	"errors"
	"fmt"
	"strings"
)

// Zeroer is implemented by chain values that can tell whether they are the zero object.
type Zeroer interface {
	IsZero() bool
}

var (
	// ErrNegativeRank indicates a free module or matrix shape below zero.
	ErrNegativeRank = errors.New("algebra: rank must be >= 0")

	// ErrShapeMismatch indicates incompatible shapes (composition or row data).
	ErrShapeMismatch = errors.New("algebra: shape mismatch")
)

// FreeModule is R^rank over an unspecified base ring. It is zero iff rank == 0.
type FreeModule struct {
	Rank int
}

// NewFreeModule returns R^rank or ErrNegativeRank.
func NewFreeModule(rank int) (FreeModule, error) {
	if rank < 0 {
		return FreeModule{}, fmt.Errorf("%w: %d", ErrNegativeRank, rank)
	}
	return FreeModule{Rank: rank}, nil
}

// IsZero reports whether the module is the zero module.
func (m FreeModule) IsZero() bool { return m.Rank == 0 }

// String renders "R^n", or "0" for the zero module.
func (m FreeModule) String() string {
	if m.Rank == 0 {
		return "0"
	}
	return fmt.Sprintf("R^%d", m.Rank)
}

// Matrix is a row-major integer matrix standing for a map R^Cols -> R^Rows.
// Either dimension may be 0 (maps into or out of the zero module).
type Matrix struct {
	rows, cols int
	data       []int64 // len == rows*cols
}

// NewMatrix returns a rows×cols zero matrix.
func NewMatrix(rows, cols int) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrNegativeRank, rows, cols)
	}
	return &Matrix{rows: rows, cols: cols, data: make([]int64, rows*cols)}, nil
}

// MatrixFromRows builds a matrix from row slices of equal length.
func MatrixFromRows(cols int, rows ...[]int64) (*Matrix, error) {
	m, err := NewMatrix(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d entries, want %d", ErrShapeMismatch, i, len(row), cols)
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}
	return m, nil
}

// Rows returns the codomain rank.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the domain rank.
func (m *Matrix) Cols() int { return m.cols }

// At returns entry (i,j); out-of-range coordinates read as 0.
func (m *Matrix) At(i, j int) int64 {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0
	}
	return m.data[i*m.cols+j]
}

// Set assigns entry (i,j) and reports whether the coordinates were in range.
func (m *Matrix) Set(i, j int, v int64) bool {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return false
	}
	m.data[i*m.cols+j] = v
	return true
}

// IsZero reports whether every entry is 0.
func (m *Matrix) IsZero() bool {
	for _, v := range m.data {
		if v != 0 {
			return false
		}
	}
	return true
}

// Compose returns m∘n (first n, then m). n.Rows() must equal m.Cols().
func (m *Matrix) Compose(n *Matrix) (*Matrix, error) {
	if n.rows != m.cols {
		return nil, fmt.Errorf("%w: compose %dx%d after %dx%d", ErrShapeMismatch, m.rows, m.cols, n.rows, n.cols)
	}
	out, _ := NewMatrix(m.rows, n.cols)
	for i := 0; i < m.rows; i++ {
		for k := 0; k < m.cols; k++ {
			a := m.data[i*m.cols+k]
			if a == 0 {
				continue
			}
			for j := 0; j < n.cols; j++ {
				out.data[i*out.cols+j] += a * n.data[k*n.cols+j]
			}
		}
	}
	return out, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int) (*Matrix, error) {
	m, err := NewMatrix(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m, nil
}

// Transpose returns the dual map, a Cols×Rows matrix.
func (m *Matrix) Transpose() *Matrix {
	out, _ := NewMatrix(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.data[j*out.cols+i] = m.data[i*m.cols+j]
		}
	}
	return out
}

// Scale returns k·m.
func (m *Matrix) Scale(k int64) *Matrix {
	out, _ := NewMatrix(m.rows, m.cols)
	for i, v := range m.data {
		out.data[i] = k * v
	}
	return out
}

// Add returns m+n; both must have the same shape.
func (m *Matrix) Add(n *Matrix) (*Matrix, error) {
	if m.rows != n.rows || m.cols != n.cols {
		return nil, fmt.Errorf("%w: add %dx%d and %dx%d", ErrShapeMismatch, m.rows, m.cols, n.rows, n.cols)
	}
	out, _ := NewMatrix(m.rows, m.cols)
	for i := range m.data {
		out.data[i] = m.data[i] + n.data[i]
	}
	return out, nil
}

// Kronecker returns the tensor product m⊗n. The basis of the product is
// ordered pairwise, with the index from n varying fastest.
func (m *Matrix) Kronecker(n *Matrix) *Matrix {
	out, _ := NewMatrix(m.rows*n.rows, m.cols*n.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			a := m.data[i*m.cols+j]
			if a == 0 {
				continue
			}
			for k := 0; k < n.rows; k++ {
				for l := 0; l < n.cols; l++ {
					out.data[(i*n.rows+k)*out.cols+j*n.cols+l] = a * n.data[k*n.cols+l]
				}
			}
		}
	}
	return out
}

// String renders one bracketed row per line.
func (m *Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%d", m.data[i*m.cols+j])
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}
