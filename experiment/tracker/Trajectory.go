package tracker

import (
	ts "github.com/controlbench/thermostat/timestep"
	"github.com/controlbench/thermostat/trajectory"
	"gonum.org/v1/gonum/mat"
)

// Trajectory tracks the full (time, temperature, actuation) series of
// a run. The sample time is reconstructed from the integer step number
// and the fixed timestep, so the time axis is exact: repeatedly adding
// a fractional timestep would accumulate floating-point drift over a
// long horizon.
type Trajectory struct {
	dt      float64
	samples trajectory.Trajectory
}

// NewTrajectory creates a new Trajectory tracker for runs with the
// argument fixed timestep in minutes
func NewTrajectory(dt float64) *Trajectory {
	return &Trajectory{dt: dt}
}

// Track appends a sample for the argument transition. The first
// transition of a run has step number 1 and is recorded at time 0.
func (r *Trajectory) Track(action mat.Vector, step ts.TimeStep) {
	r.samples = append(r.samples, trajectory.Sample{
		Time:        float64(step.Number-1) * r.dt,
		Temperature: step.Observation.AtVec(0),
		Actuation:   action.AtVec(0),
	})
}

// Trajectory returns the samples tracked so far
func (r *Trajectory) Trajectory() trajectory.Trajectory {
	return r.samples
}
