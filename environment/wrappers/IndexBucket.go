// Package wrappers provides wrappers for environments
package wrappers

import (
	"fmt"

	"github.com/controlbench/thermostat/environment"
	"github.com/controlbench/thermostat/spec"
	ts "github.com/controlbench/thermostat/timestep"
	"github.com/controlbench/thermostat/utils/discretize"
	"gonum.org/v1/gonum/mat"
)

// IndexBucket wraps an environment and returns as observations of the
// environment states the index of the temperature bucket that the
// continuous temperature observation falls in. For example, a room
// temperature of 19.7 °C is observed as the vector [19].
//
// Bucket indices are always in [0, discretize.Buckets-1]: temperatures
// outside the covered range saturate to the boundary buckets. The
// resulting observation space is exactly the state space of the
// tabular learning agents.
//
// IndexBucket itself implements the environment.Environment interface
// and is therefore itself an environment.
type IndexBucket struct {
	environment.Environment
}

// NewIndexBucket creates and returns a new IndexBucket environment,
// wrapping an existing environment. The wrapped environment is reset
// when wrapped by the IndexBucket environment by calling the wrapped
// environment's Reset() method.
func NewIndexBucket(env environment.Environment) (*IndexBucket,
	ts.TimeStep) {
	wrapped := &IndexBucket{env}
	step := wrapped.Reset()

	return wrapped, step
}

// Reset resets the environment to some starting state
func (b *IndexBucket) Reset() ts.TimeStep {
	step := b.Environment.Reset()
	step.Observation = b.bucket(step.Observation)

	return step
}

// Step takes one environmental step given action a and returns the
// next state as a timestep.TimeStep and a bool indicating whether or
// not the run has ended
func (b *IndexBucket) Step(a mat.Vector) (ts.TimeStep, bool) {
	step, last := b.Environment.Step(a)
	step.Observation = b.bucket(step.Observation)

	return step, last
}

// ObservationSpec returns the observation specification of the
// environment
func (b *IndexBucket) ObservationSpec() spec.Environment {
	shape := mat.NewVecDense(1, nil)
	lowerBound := mat.NewVecDense(1, nil)
	upperBound := mat.NewVecDense(1, []float64{float64(discretize.Buckets - 1)})

	return spec.NewEnvironment(shape, spec.Observation, lowerBound,
		upperBound, spec.Discrete)
}

// bucket encodes a continuous temperature observation as a bucket
// index observation
func (b *IndexBucket) bucket(obs mat.Vector) mat.Vector {
	index := discretize.Bucket(obs.AtVec(0))
	return mat.NewVecDense(1, []float64{float64(index)})
}

// String returns a string representation of the IndexBucket
// environment
func (b *IndexBucket) String() string {
	return fmt.Sprintf("IndexBucket: %v", b.Environment)
}
