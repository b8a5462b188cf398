// Package metrics scores how tightly a trajectory tracks a setpoint
package metrics

import (
	"errors"

	"github.com/controlbench/thermostat/trajectory"
)

// ErrNonFinite is returned when a trajectory contains non-finite
// temperatures, for example after a numerically unstable run. The
// metrics would silently be NaN otherwise, corrupting any comparison
// built on them.
var ErrNonFinite = errors.New("metrics: trajectory contains non-finite temperatures")

// Result holds the tracking metrics of a single run, all in
// °C·minutes. TrackingArea is the integral of the absolute deviation
// between the temperature and the setpoint over the run, approximated
// by the trapezoidal rule; Overshoot and Undershoot are the portions
// of that area above and below the setpoint.
type Result struct {
	Overshoot    float64
	Undershoot   float64
	TrackingArea float64
}

// FromTrajectory computes the tracking metrics of a trajectory against
// a setpoint. Trajectories with fewer than two samples have no
// integrable segment and score zero on all metrics.
func FromTrajectory(traj trajectory.Trajectory,
	setpoint float64) (Result, error) {
	if !traj.Finite() {
		return Result{}, ErrNonFinite
	}
	if len(traj) < 2 {
		return Result{}, nil
	}

	var overshoot, undershoot float64
	for i := 1; i < len(traj); i++ {
		dt := traj[i].Time - traj[i-1].Time
		avg := (traj[i].Temperature + traj[i-1].Temperature) / 2

		if avg > setpoint {
			overshoot += (avg - setpoint) * dt
		} else if avg < setpoint {
			undershoot += (setpoint - avg) * dt
		}
	}

	return Result{
		Overshoot:    overshoot,
		Undershoot:   undershoot,
		TrackingArea: overshoot + undershoot,
	}, nil
}
