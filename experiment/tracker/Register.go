package tracker

import (
	"github.com/controlbench/thermostat/environment"
	ts "github.com/controlbench/thermostat/timestep"
	"gonum.org/v1/gonum/mat"
)

// registeredTracker registers an Environment with some Tracker so that
// the Tracker tracks data from the registered Environment only.
// registeredTracker itself is a Tracker.
//
// This is useful when a run is driven through an environment wrapper
// but the data of the wrapped environment is what should be recorded.
// For example, the Q-learning strategies step a bucketed wrapper whose
// observations are state bucket indices, while the reported trajectory
// must hold the underlying room temperatures: registering the inner
// room environment with a Trajectory tracker records the temperatures.
type registeredTracker struct {
	Tracker
	env environment.Environment
}

// Register registers a new Tracker with an Environment, to track data
// from the registered Environment only
func Register(t Tracker, env environment.Environment) Tracker {
	return &registeredTracker{t, env}
}

// Track calls Track on the embedded Tracker using the most recent
// TimeStep of the registered Environment. The TimeStep argument is
// ignored; the action is passed through unchanged.
func (r *registeredTracker) Track(action mat.Vector, _ ts.TimeStep) {
	step := r.env.LastTimeStep()
	r.Tracker.Track(action, step)
}
