package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ejensODU/PADS25-DDA-artifacts/matrix"
)

func buildDistance(t *testing.T, n int, edges map[[2]int]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewZeros(n, n, matrix.WithAllowInfDistances())
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				require.NoError(t, m.Set(i, j, 0))
				continue
			}
			if w, ok := edges[[2]int{i, j}]; ok {
				require.NoError(t, m.Set(i, j, w))
			} else {
				require.NoError(t, m.Set(i, j, math.Inf(1)))
			}
		}
	}
	return m
}

func TestFloydWarshallChain(t *testing.T) {
	m := buildDistance(t, 3, map[[2]int]float64{
		{0, 1}: 2,
		{1, 2}: 3,
	})
	require.NoError(t, matrix.FloydWarshall(m))

	v, _ := m.At(0, 2)
	assert.Equal(t, 5.0, v)
	v, _ = m.At(2, 0)
	assert.True(t, math.IsInf(v, 1))
}

func TestFloydWarshallRejectsNonSquare(t *testing.T) {
	m, err := matrix.NewZeros(2, 3)
	require.NoError(t, err)
	assert.ErrorIs(t, matrix.FloydWarshall(m), matrix.ErrDimensionMismatch)
}
