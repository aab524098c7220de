package distributions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ejensODU/PADS25-DDA-artifacts/distributions"
)

func TestUniformStaysWithinBounds(t *testing.T) {
	d := distributions.NewUniform(2, 5, 1)
	for i := 0; i < 1000; i++ {
		v := d.Next()
		assert.GreaterOrEqual(t, v, 2.0)
		assert.Less(t, v, 5.0)
	}
}

func TestTriangularStaysWithinBounds(t *testing.T) {
	d := distributions.NewTriangular(1, 2, 4, 7)
	for i := 0; i < 1000; i++ {
		v := d.Next()
		assert.GreaterOrEqual(t, v, 1.0)
		assert.LessOrEqual(t, v, 4.0)
	}
}

func TestExponentialIsNonNegative(t *testing.T) {
	d := distributions.NewExponential(0.5, 3)
	for i := 0; i < 1000; i++ {
		assert.GreaterOrEqual(t, d.Next(), 0.0)
	}
}

func TestSameSeedReproducesSequence(t *testing.T) {
	a := distributions.NewTriangular(0, 5, 10, 99)
	b := distributions.NewTriangular(0, 5, 10, 99)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Next(), b.Next())
	}
}

func TestIDsDescribeParameters(t *testing.T) {
	assert.Contains(t, distributions.NewUniform(1, 2, 1).ID(), "uniform real")
	assert.Contains(t, distributions.NewTriangular(1, 2, 3, 1).ID(), "triangular")
	assert.Contains(t, distributions.NewExponential(1, 1).ID(), "exponential")
}
