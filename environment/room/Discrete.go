package room

import (
	"fmt"

	env "github.com/controlbench/thermostat/environment"
	"github.com/controlbench/thermostat/spec"
	ts "github.com/controlbench/thermostat/timestep"
	"gonum.org/v1/gonum/mat"
)

// Discrete implements the thermal process under a binary heater, the
// actuation model used by the on-off and Q-learning strategies.
//
// State observations are 1-dimensional and consist of the room
// temperature in °C. The temperature is unbounded.
//
// Actions are 1-dimensional and discrete in (0, 1):
//
//	Action	Meaning
//	  0		Heater off
//	  1		Heater on
//
// Actions other than 0 or 1 result in a panic.
//
// Discrete implements the environment.Environment interface
type Discrete struct {
	*base
}

// NewDiscrete creates a new Discrete action thermal environment with
// the argument task and physics
func NewDiscrete(t env.Task, e env.Ender, p Physics,
	discount float64) (*Discrete, ts.TimeStep, error) {
	baseEnv, firstStep, err := newBase(t, e, p, discount)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("newDiscrete: %w", err)
	}

	return &Discrete{baseEnv}, firstStep, nil
}

// ActionSpec returns the action specification of the environment
func (d *Discrete) ActionSpec() spec.Environment {
	shape := mat.NewVecDense(ActionDims, nil)
	lowerBound := mat.NewVecDense(ActionDims,
		[]float64{float64(MinDiscreteAction)})
	upperBound := mat.NewVecDense(ActionDims,
		[]float64{float64(MaxDiscreteAction)})

	return spec.NewEnvironment(shape, spec.Action, lowerBound,
		upperBound, spec.Discrete)
}

// Step takes one environmental step given action a and returns the
// next timestep as a timestep.TimeStep and a bool indicating whether
// or not the run has ended. Legal actions are in the set {0, 1};
// actions outside this range cause a panic.
func (d *Discrete) Step(a mat.Vector) (ts.TimeStep, bool) {
	if a.Len() > ActionDims {
		panic("step: actions should be 1-dimensional")
	}

	action := int(a.AtVec(0))
	if action > MaxDiscreteAction || action < MinDiscreteAction {
		panic(fmt.Sprintf("step: illegal action %v ∉ (0, 1)", action))
	}

	temperature := d.Temperature()
	next := d.physics.NextDiscrete(temperature, action == 1)

	newState := mat.NewVecDense(ObservationDims, []float64{next})
	return d.update(a, newState)
}
