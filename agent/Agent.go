// Package agent defines the interfaces satisfied by control strategies
package agent

import (
	"github.com/controlbench/thermostat/timestep"
	"gonum.org/v1/gonum/mat"
)

// Agent determines the implementation details of a learning strategy.
//
// An Agent is composed of a Learner, which learns a value table, and a
// Policy which chooses actions in each state. The Policy chooses which
// actions are taken, and the Learner uses these actions to update the
// Policy.
type Agent interface {
	Learner
	Policy
}

// Learner implements a learning algorithm that defines how the value
// estimates are updated.
type Learner interface {
	// Step performs a single update to the learner
	Step() error

	// Observe records that an action led to some timestep
	Observe(action mat.Vector, nextStep timestep.TimeStep) error

	// ObserveFirst records the first timestep in an episode
	ObserveFirst(timestep.TimeStep) error

	// EndEpisode performs cleanup at the end of an episode
	EndEpisode()
}

// Policy chooses an actuation signal given the current process state.
// Both the learning strategies and the classical feedback controllers
// satisfy Policy, which is all the simulation driver needs.
//
// Reset clears any internal controller state so that the same Policy
// value can be used for a fresh run. Policies are constructed with any
// state already reset.
type Policy interface {
	SelectAction(t timestep.TimeStep) mat.Vector
	Reset()
}
