// Package tracker implements Trackers, which observe the data
// generated while a simulation or training run is in progress
package tracker

import (
	ts "github.com/controlbench/thermostat/timestep"
	"gonum.org/v1/gonum/mat"
)

// Tracker observes every transition of a run. The simulation driver
// calls Track once per timestep with the action the policy produced
// and the resulting TimeStep.
type Tracker interface {
	Track(action mat.Vector, step ts.TimeStep)
}
