// Package experiment implements the drivers that couple a policy to a
// simulated environment: a single fixed-horizon simulation pass for
// scoring a strategy, and an online training loop for the learning
// strategies. Both drivers send every transition to registered
// tracker.Trackers, which decide what data to record.
package experiment

import (
	"github.com/controlbench/thermostat/agent"
	env "github.com/controlbench/thermostat/environment"
	"github.com/controlbench/thermostat/experiment/tracker"
	"github.com/controlbench/thermostat/trajectory"
)

// Simulate runs one deterministic fixed-horizon pass of a policy
// against an environment and returns the resulting trajectory. The
// policy's internal state is reset before the pass, and every
// transition is recorded with a trajectory tracker (plus any extra
// trackers). There is no early termination and no retry: the loop
// runs exactly steps iterations.
func Simulate(e env.Environment, p agent.Policy, steps int, dt float64,
	trackers ...tracker.Tracker) (trajectory.Trajectory, error) {
	record := tracker.NewTrajectory(dt)
	trackers = append(trackers, record)

	sim := NewSimulation(e, p, steps, trackers...)
	if err := sim.Run(); err != nil {
		return nil, err
	}

	return record.Trajectory(), nil
}

// Simulation is a driver that runs a policy against an environment
// for a fixed number of steps, sending each transition to its
// Trackers. Unlike Online, a Simulation never updates the policy.
type Simulation struct {
	env.Environment
	policy   agent.Policy
	steps    int
	trackers []tracker.Tracker
}

// NewSimulation creates and returns a new Simulation of a given
// environment under a given policy. The steps parameter determines
// how many timesteps the simulation runs for, and the trackers record
// data generated during the run.
func NewSimulation(e env.Environment, p agent.Policy, steps int,
	trackers ...tracker.Tracker) *Simulation {
	return &Simulation{e, p, steps, trackers}
}

// Register registers a tracker.Tracker with the Simulation so that
// additional data generated during the run can be recorded
func (s *Simulation) Register(t tracker.Tracker) {
	s.trackers = append(s.trackers, t)
}

// Run runs the full simulation pass
func (s *Simulation) Run() error {
	step := s.Environment.Reset()
	s.policy.Reset()

	// The loop counter, not an accumulated time value, bounds the
	// run so that the trajectory length is exact
	for i := 0; i < s.steps; i++ {
		action := s.policy.SelectAction(step)
		step, _ = s.Environment.Step(action)

		for _, t := range s.trackers {
			t.Track(action, step)
		}
	}

	return nil
}
