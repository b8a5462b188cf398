package room

import (
	"fmt"

	env "github.com/controlbench/thermostat/environment"
	"github.com/controlbench/thermostat/spec"
	ts "github.com/controlbench/thermostat/timestep"
	"github.com/controlbench/thermostat/utils/floatutils"
	"gonum.org/v1/gonum/mat"
)

// Continuous implements the thermal process under a modulating heater,
// the actuation model used by the PID strategy.
//
// State observations are 1-dimensional and consist of the room
// temperature in °C. The temperature is unbounded.
//
// Actions are 1-dimensional and continuous, consisting of the heater
// duty fraction. Actions are bounded to [0, 1] = [MinContinuousAction,
// MaxContinuousAction], and actions outside of this range are clipped
// to stay within it. Unlike the Discrete variant, heat loss applies on
// every step regardless of the heater duty.
//
// Continuous implements the environment.Environment interface
type Continuous struct {
	*base
}

// NewContinuous creates a new Continuous action thermal environment
// with the argument task and physics
func NewContinuous(t env.Task, e env.Ender, p Physics,
	discount float64) (*Continuous, ts.TimeStep, error) {
	baseEnv, firstStep, err := newBase(t, e, p, discount)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("newContinuous: %w", err)
	}

	return &Continuous{baseEnv}, firstStep, nil
}

// ActionSpec returns the action specification of the environment
func (c *Continuous) ActionSpec() spec.Environment {
	shape := mat.NewVecDense(ActionDims, nil)
	lowerBound := mat.NewVecDense(ActionDims, []float64{MinContinuousAction})
	upperBound := mat.NewVecDense(ActionDims, []float64{MaxContinuousAction})

	return spec.NewEnvironment(shape, spec.Action, lowerBound,
		upperBound, spec.Continuous)
}

// Step takes one environmental step given action a and returns the
// next timestep as a timestep.TimeStep and a bool indicating whether
// or not the run has ended. Actions outside the legal range of [0, 1]
// are clipped to stay within this range.
func (c *Continuous) Step(a mat.Vector) (ts.TimeStep, bool) {
	if a.Len() > ActionDims {
		panic("step: actions should be 1-dimensional")
	}

	duty := floatutils.Clip(a.AtVec(0), MinContinuousAction,
		MaxContinuousAction)

	temperature := c.Temperature()
	next := c.physics.NextContinuous(temperature, duty)

	newState := mat.NewVecDense(ObservationDims, []float64{next})
	return c.update(a, newState)
}
