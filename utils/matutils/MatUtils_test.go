package matutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestMaxVec(t *testing.T) {
	v := mat.NewVecDense(4, []float64{1, 3, 5, 4})
	assert.Equal(t, 2, MaxVec(v))

	// Ties break toward the lowest index
	tied := mat.NewVecDense(3, []float64{2, 2, 2})
	assert.Equal(t, 0, MaxVec(tied))
}

func TestVecFloat(t *testing.T) {
	v := mat.NewVecDense(3, []float64{1.5, -2, 0})
	assert.Equal(t, []float64{1.5, -2, 0}, VecFloat(v))
}
