package lattice_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/homalg/lattice"
)

// TestRange_Direction pins the traversal order for both orientations.
func TestRange_Direction(t *testing.T) {
	got, err := lattice.Range(lattice.Chain, lattice.Some(0), lattice.Some(5))
	require.NoError(t, err)
	require.Equal(t, []int{5, 4, 3, 2, 1, 0}, got)

	got, err = lattice.Range(lattice.Cochain, lattice.Some(0), lattice.Some(5))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3, 4, 5}, got)
}

// TestMapRange_DropsLastStep checks the map range excludes the final index in traversal order.
func TestMapRange_DropsLastStep(t *testing.T) {
	got, err := lattice.MapRange(lattice.Chain, lattice.Some(0), lattice.Some(5))
	require.NoError(t, err)
	require.Equal(t, []int{5, 4, 3, 2, 1}, got)

	got, err = lattice.MapRange(lattice.Cochain, lattice.Some(0), lattice.Some(5))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3, 4}, got)
}

// TestMapRange_SubsetOfShiftedRange checks every map-range index, stepped once
// along the direction, still lies inside the range.
func TestMapRange_SubsetOfShiftedRange(t *testing.T) {
	for _, dir := range []lattice.Direction{lattice.Chain, lattice.Cochain} {
		for lo := -2; lo <= 2; lo++ {
			for hi := lo; hi <= lo+4; hi++ {
				full, err := lattice.Range(dir, lattice.Some(lo), lattice.Some(hi))
				require.NoError(t, err)
				maps, err := lattice.MapRange(dir, lattice.Some(lo), lattice.Some(hi))
				require.NoError(t, err)
				require.Len(t, maps, len(full)-1)
				for _, v := range maps {
					require.Contains(t, full, v)
					require.Contains(t, full, v+dir.Step())
				}
			}
		}
	}
}

func TestRange_Edges(t *testing.T) {
	got, err := lattice.MapRange(lattice.Chain, lattice.Some(3), lattice.Some(3))
	require.NoError(t, err)
	require.Empty(t, got)

	got, err = lattice.Range(lattice.Cochain, lattice.Some(3), lattice.Some(3))
	require.NoError(t, err)
	require.Equal(t, []int{3}, got)

	got, err = lattice.Range(lattice.Chain, lattice.Some(4), lattice.Some(1))
	require.NoError(t, err)
	require.Empty(t, got)

	_, err = lattice.Range(lattice.Chain, lattice.None(), lattice.Some(1))
	require.ErrorIs(t, err, lattice.ErrUnbounded)
	_, err = lattice.MapRange(lattice.Cochain, lattice.Some(0), lattice.None())
	require.ErrorIs(t, err, lattice.ErrUnbounded)
	_, err = lattice.Range(lattice.Direction(9), lattice.Some(0), lattice.Some(1))
	require.ErrorIs(t, err, lattice.ErrInvalidDirection)
}

// TestRange_IntegerLimits walks bounds at math.MinInt and math.MaxInt without wrapping.
func TestRange_IntegerLimits(t *testing.T) {
	got, err := lattice.Range(lattice.Cochain, lattice.Some(math.MaxInt-2), lattice.Some(math.MaxInt))
	require.NoError(t, err)
	require.Equal(t, []int{math.MaxInt - 2, math.MaxInt - 1, math.MaxInt}, got)

	got, err = lattice.Range(lattice.Chain, lattice.Some(math.MaxInt-2), lattice.Some(math.MaxInt))
	require.NoError(t, err)
	require.Equal(t, []int{math.MaxInt, math.MaxInt - 1, math.MaxInt - 2}, got)

	got, err = lattice.Range(lattice.Chain, lattice.Some(math.MinInt), lattice.Some(math.MinInt+2))
	require.NoError(t, err)
	require.Equal(t, []int{math.MinInt + 2, math.MinInt + 1, math.MinInt}, got)

	got, err = lattice.MapRange(lattice.Chain, lattice.Some(math.MinInt), lattice.Some(math.MinInt+2))
	require.NoError(t, err)
	require.Equal(t, []int{math.MinInt + 2, math.MinInt + 1}, got)

	got, err = lattice.MapRange(lattice.Cochain, lattice.Some(math.MaxInt), lattice.Some(math.MaxInt))
	require.NoError(t, err)
	require.Empty(t, got)

	_, err = lattice.Range(lattice.Cochain, lattice.Some(0), lattice.Some(math.MaxInt))
	require.ErrorIs(t, err, lattice.ErrRangeTooLarge)
	_, err = lattice.MapRange(lattice.Chain, lattice.Some(math.MinInt), lattice.Some(math.MaxInt))
	require.ErrorIs(t, err, lattice.ErrRangeTooLarge)
	_, err = lattice.Range(lattice.Chain, lattice.Some(-1), lattice.Some(math.MaxInt))
	require.ErrorIs(t, err, lattice.ErrRangeTooLarge)
}

func TestIndex_KeyShiftEqual(t *testing.T) {
	a := lattice.Idx(1, -2, 3)
	require.Equal(t, "1,-2,3", a.Key())
	require.Equal(t, "(1,-2,3)", a.String())
	require.NotEqual(t, lattice.Idx(1, 2).Key(), lattice.Idx(12).Key())

	b := a.Shift(2, 1)
	require.Equal(t, lattice.Idx(1, -1, 3), b)
	require.Equal(t, lattice.Idx(1, -2, 3), a, "Shift must not mutate the receiver")
	require.True(t, a.Equal(a.Clone()))
	require.False(t, a.Equal(lattice.Idx(1, -2)))
	require.Equal(t, a, a.Shift(4, 1))

	ixs := []lattice.Index{lattice.Idx(1, 0), lattice.Idx(0, 5), lattice.Idx(0, -1)}
	lattice.SortIndices(ixs)
	require.Equal(t, []lattice.Index{lattice.Idx(0, -1), lattice.Idx(0, 5), lattice.Idx(1, 0)}, ixs)
}

func TestDirection_ParseAndStep(t *testing.T) {
	d, err := lattice.ParseDirection("chain")
	require.NoError(t, err)
	require.Equal(t, lattice.Chain, d)
	require.Equal(t, -1, d.Step())

	d, err = lattice.ParseDirection("cochain")
	require.NoError(t, err)
	require.Equal(t, 1, d.Step())
	require.Equal(t, "cochain", d.String())

	_, err = lattice.ParseDirection("sideways")
	require.ErrorIs(t, err, lattice.ErrInvalidDirection)
	require.False(t, lattice.Direction(0).Valid())
}

func TestNeighbors4(t *testing.T) {
	require.Equal(t, [4][2]int{{-1, 2}, {1, 2}, {0, 1}, {0, 3}}, lattice.Neighbors4(0, 2))
}

func TestBound(t *testing.T) {
	v, ok := lattice.Some(-4).Get()
	require.True(t, ok)
	require.Equal(t, -4, v)
	require.False(t, lattice.None().IsSet())
	require.Equal(t, "none", lattice.None().String())
}
