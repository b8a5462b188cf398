package tracker

import (
	ts "github.com/controlbench/thermostat/timestep"
	"gonum.org/v1/gonum/mat"
)

// Return tracks the episodic return of a training run. When an
// environment returns a TimeStep, this Tracker extracts the reward and
// accumulates the return for each episode. The per-episode returns
// show whether training is actually improving the policy.
//
// Note: an episode must finish for its return to be recorded. If the
// last episode of a run does not finish, that episode's return is
// dropped.
type Return struct {
	currentReturn  float64
	episodeReturns []float64
}

// NewReturn creates and returns a new *Return Tracker
func NewReturn() *Return {
	return &Return{}
}

// Track accumulates the reward seen on a timestep into the current
// episode's return. When the timestep is the last of its episode, the
// accumulated return is recorded and a new episode begins.
func (r *Return) Track(_ mat.Vector, step ts.TimeStep) {
	r.currentReturn += step.Reward

	if step.Last() {
		r.episodeReturns = append(r.episodeReturns, r.currentReturn)
		r.currentReturn = 0.0
	}
}

// Returns returns the episodic returns recorded so far
func (r *Return) Returns() []float64 {
	return r.episodeReturns
}
