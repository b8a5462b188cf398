// Package room implements a single-zone thermal process as a
// simulated environment. A heater adds heat to the room while heat
// leaks out to the outside; a controller decides each timestep how
// much actuation to apply.
package room

import (
	"errors"
	"fmt"
	"math"

	env "github.com/controlbench/thermostat/environment"
	"github.com/controlbench/thermostat/spec"
	ts "github.com/controlbench/thermostat/timestep"
	"gonum.org/v1/gonum/mat"
)

const (
	// ActionDims is the dimensionality of actions in the environment
	ActionDims int = 1

	// ObservationDims is the dimensionality of state observations.
	// The only state feature is the room temperature.
	ObservationDims int = 1

	// DefaultTimeStep is the fixed integration step in minutes
	DefaultTimeStep float64 = 0.1

	// Discrete actions
	MinDiscreteAction int = 0 // Heater off
	MaxDiscreteAction int = 1 // Heater on

	// Continuous actions are heater duty fractions
	MinContinuousAction float64 = 0.0
	MaxContinuousAction float64 = 1.0
)

// LossModel selects how the room loses heat to the outside
type LossModel int

const (
	// FixedRate loses heat at a constant rate in °C/minute,
	// independent of the temperature difference with the outside
	FixedRate LossModel = iota

	// Newtonian loses heat proportionally to the difference between
	// the room and outside temperatures (Newtonian cooling)
	Newtonian
)

func (l LossModel) String() string {
	switch l {
	case Newtonian:
		return "Newtonian"
	default:
		return "FixedRate"
	}
}

// Physics parameterizes the thermal process. HeatLoss is a rate in
// °C/minute when Loss is FixedRate and a conductivity coefficient in
// 1/minute when Loss is Newtonian.
type Physics struct {
	HeaterPower float64 // °C gained per minute at full actuation
	HeatLoss    float64
	Outside     float64 // Outside (ambient) temperature in °C
	Loss        LossModel
	TimeStep    float64 // Minutes
}

// Validation errors for the physical parameterization
var (
	ErrNonPositiveTimeStep   = errors.New("timestep must be positive")
	ErrNegativeHeaterPower   = errors.New("heater power cannot be negative")
	ErrNegativeHeatLoss      = errors.New("heat loss cannot be negative")
)

// Validate ensures the Physics describe a runnable process
func (p Physics) Validate() error {
	if p.TimeStep <= 0 {
		return ErrNonPositiveTimeStep
	}
	if p.HeaterPower < 0 {
		return ErrNegativeHeaterPower
	}
	if p.HeatLoss < 0 {
		return ErrNegativeHeatLoss
	}
	return nil
}

// lossRate returns the current cooling rate in °C/minute given the
// room temperature
func (p Physics) lossRate(temperature float64) float64 {
	if p.Loss == Newtonian {
		return p.HeatLoss * (temperature - p.Outside)
	}
	return p.HeatLoss
}

// NextDiscrete advances the room temperature one timestep under a
// binary heater. While the heater is on, the room gains heat at full
// power and losses are ignored; while off, the room only cools. The
// temperature itself is never clamped, so unstable configurations can
// be observed diverging.
func (p Physics) NextDiscrete(temperature float64, on bool) float64 {
	if on {
		return temperature + p.HeaterPower*p.TimeStep
	}
	return temperature - p.lossRate(temperature)*p.TimeStep
}

// NextContinuous advances the room temperature one timestep under a
// modulating heater running at the argument duty fraction in [0, 1].
// Heat loss applies continuously regardless of the duty.
func (p Physics) NextContinuous(temperature, duty float64) float64 {
	rate := p.HeaterPower*duty - p.lossRate(temperature)
	return temperature + rate*p.TimeStep
}

// base implements the underlying thermal environment. It tracks the
// physical parameters and the current state, but does not compute next
// states from actions: the Discrete and Continuous structs each embed
// a base environment and couple their own actuation model to it.
type base struct {
	env.Task
	env.Ender
	physics  Physics
	lastStep ts.TimeStep
	discount float64
}

// newBase creates a new base environment with the argument task
func newBase(t env.Task, e env.Ender, p Physics,
	discount float64) (*base, ts.TimeStep, error) {
	if err := p.Validate(); err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("newBase: %w", err)
	}

	starter, ok := t.(env.Starter)
	if !ok {
		return nil, ts.TimeStep{}, errors.New("newBase: task must " +
			"provide a starting state")
	}

	state := starter.Start()
	firstStep := ts.New(ts.First, 0.0, discount, state, 0)

	r := base{t, e, p, firstStep, discount}
	return &r, firstStep, nil
}

// Physics returns the physical parameterization of the room
func (r *base) Physics() Physics {
	return r.physics
}

// Temperature returns the current room temperature
func (r *base) Temperature() float64 {
	return r.lastStep.Observation.AtVec(0)
}

// LastTimeStep returns the most recent TimeStep of the environment
func (r *base) LastTimeStep() ts.TimeStep {
	return r.lastStep
}

// Start returns a starting state drawn from the environment Starter
func (r *base) Start() mat.Vector {
	return r.Task.(env.Starter).Start()
}

// Reset resets the environment and returns a starting state drawn
// from the environment Starter
func (r *base) Reset() ts.TimeStep {
	state := r.Start()
	startStep := ts.New(ts.First, 0, r.discount, state, 0)
	r.lastStep = startStep

	return startStep
}

// ObservationSpec returns the observation specification of the
// environment. Room temperatures are physically unbounded in this
// model, so the bounds are unconstrained.
func (r *base) ObservationSpec() spec.Environment {
	shape := mat.NewVecDense(ObservationDims, nil)
	lowerBound := mat.NewVecDense(ObservationDims, []float64{math.Inf(-1)})
	upperBound := mat.NewVecDense(ObservationDims, []float64{math.Inf(1)})

	return spec.NewEnvironment(shape, spec.Observation, lowerBound,
		upperBound, spec.Continuous)
}

// DiscountSpec returns the discounting specification of the
// environment
func (r *base) DiscountSpec() spec.Environment {
	shape := mat.NewVecDense(1, nil)
	lowerBound := mat.NewVecDense(1, []float64{r.discount})
	upperBound := mat.NewVecDense(1, []float64{r.discount})

	return spec.NewEnvironment(shape, spec.Discount, lowerBound,
		upperBound, spec.Continuous)
}

// update updates the base environment to change the last state to
// newState. The reward for the transition is computed by the Task,
// and the Ender adjusts the step type when the run has reached its
// horizon. update returns the next TimeStep and whether or not it is
// the last in the run.
func (r *base) update(action, newState mat.Vector) (ts.TimeStep, bool) {
	reward := r.GetReward(r.lastStep.Observation, action, newState)
	nextStep := ts.New(ts.Mid, reward, r.discount, newState,
		r.lastStep.Number+1)

	r.End(&nextStep)

	r.lastStep = nextStep
	return nextStep, nextStep.Last()
}

// String returns a string representation of the environment
func (r *base) String() string {
	str := "Room  |  Temperature: %v  |  Outside: %v  |  Loss: %v"
	return fmt.Sprintf(str, r.Temperature(), r.physics.Outside,
		r.physics.Loss)
}
