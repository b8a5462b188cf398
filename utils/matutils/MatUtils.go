// Package matutils provides utilities for working with gonum matrices
// and vectors
package matutils

import (
	"gonum.org/v1/gonum/mat"
)

// MaxVec returns the index of the maximum value in a vector. Ties are
// broken by the lowest index.
func MaxVec(v mat.Vector) int {
	argMax := 0
	for i := 1; i < v.Len(); i++ {
		if v.AtVec(i) > v.AtVec(argMax) {
			argMax = i
		}
	}
	return argMax
}

// VecFloat returns the values of a vector as a []float64
func VecFloat(v mat.Vector) []float64 {
	values := make([]float64, v.Len())
	for i := range values {
		values[i] = v.AtVec(i)
	}
	return values
}
