// Package trajectory defines the time series produced by a simulation
// run
package trajectory

import (
	"github.com/controlbench/thermostat/utils/floatutils"
)

// Sample holds the state of the process at a single timestep: the
// logical simulation time in minutes, the room temperature after the
// step was applied, and the actuation signal the controller produced
// for the step. For binary heaters the actuation is 0 or 1; for
// modulating heaters it is the duty fraction in [0, 1].
type Sample struct {
	Time        float64
	Temperature float64
	Actuation   float64
}

// Trajectory is the ordered sequence of samples of a single run, one
// per timestep. It is append-only while a run is in progress and
// immutable once the run completes; the insertion order is the time
// axis.
type Trajectory []Sample

// Times returns the time axis of the trajectory
func (t Trajectory) Times() []float64 {
	times := make([]float64, len(t))
	for i, s := range t {
		times[i] = s.Time
	}
	return times
}

// Temperatures returns the temperature series of the trajectory
func (t Trajectory) Temperatures() []float64 {
	temperatures := make([]float64, len(t))
	for i, s := range t {
		temperatures[i] = s.Temperature
	}
	return temperatures
}

// Actuations returns the actuation series of the trajectory
func (t Trajectory) Actuations() []float64 {
	actuations := make([]float64, len(t))
	for i, s := range t {
		actuations[i] = s.Actuation
	}
	return actuations
}

// Finite reports whether every temperature in the trajectory is finite.
// A false return indicates that the run was numerically unstable, for
// example a diverging feedback loop from badly chosen gains. The
// non-finite samples stay in the trajectory so that the instability is
// observable; consumers that cannot represent them, such as the
// metrics calculator, detect it through this method.
func (t Trajectory) Finite() bool {
	for _, s := range t {
		if !floatutils.Finite(s.Temperature) {
			return false
		}
	}
	return true
}

// BandFraction returns the fraction of the last tail samples whose
// temperature lies within ±band of the setpoint. If tail is larger
// than the trajectory or not positive, the whole trajectory is used.
func (t Trajectory) BandFraction(setpoint, band float64, tail int) float64 {
	if len(t) == 0 {
		return 0
	}
	if tail <= 0 || tail > len(t) {
		tail = len(t)
	}

	in := 0
	samples := t[len(t)-tail:]
	for _, s := range samples {
		if s.Temperature >= setpoint-band && s.Temperature <= setpoint+band {
			in++
		}
	}
	return float64(in) / float64(tail)
}
