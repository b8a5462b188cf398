// Package environment outlines the interfaces and structs needed to
// implement concrete simulated environments
package environment

import (
	"github.com/controlbench/thermostat/spec"
	"github.com/controlbench/thermostat/timestep"
	"gonum.org/v1/gonum/mat"
)

// Starter implements a distribution of starting states and samples
// starting states for environments
type Starter interface {
	Start() mat.Vector
}

// Ender determines when a run in an environment ends. Enders modify
// the StepType of a TimeStep in-place so that downstream consumers can
// detect the final step.
type Ender interface {
	End(*timestep.TimeStep) bool
}

// Task implements the reward scheme for taking actions in some
// environment. The reward is computed for taking an action in a state,
// leading to a next state.
type Task interface {
	GetReward(state, action, nextState mat.Vector) float64
	AtGoal(state mat.Matrix) bool
	Min() float64 // Minimum possible reward
	Max() float64 // Maximum possible reward
	RewardSpec() spec.Environment
}

// Environment implements a simulated environment, which includes a
// Task to complete
type Environment interface {
	Task
	Starter
	Reset() timestep.TimeStep // Resets between runs
	Step(action mat.Vector) (timestep.TimeStep, bool)
	LastTimeStep() timestep.TimeStep
	RewardSpec() spec.Environment
	DiscountSpec() spec.Environment
	ObservationSpec() spec.Environment
	ActionSpec() spec.Environment
}
