package experiment

import (
	"fmt"

	"github.com/controlbench/thermostat/agent"
	env "github.com/controlbench/thermostat/environment"
	"github.com/controlbench/thermostat/experiment/tracker"
)

// Online is a driver that trains an agent online for a fixed number of
// episodes. Each episode resets the environment to its starting state
// and runs until the environment's Ender marks the final step, with
// the agent observing and learning from every transition. Episodes run
// strictly one after another: the agent's value table is updated in
// place throughout.
type Online struct {
	env.Environment
	agent.Agent
	episodes int
	trackers []tracker.Tracker
}

// NewOnline creates and returns a new online training run of a given
// agent on a given environment. The episodes parameter determines how
// many training episodes are run, and the trackers record data
// generated during training.
func NewOnline(e env.Environment, a agent.Agent, episodes int,
	trackers ...tracker.Tracker) *Online {
	return &Online{e, a, episodes, trackers}
}

// Register registers a tracker.Tracker with the training run
func (o *Online) Register(t tracker.Tracker) {
	o.trackers = append(o.trackers, t)
}

// RunEpisode runs a single training episode
func (o *Online) RunEpisode() error {
	step := o.Environment.Reset()
	if err := o.Agent.ObserveFirst(step); err != nil {
		return fmt.Errorf("runEpisode: %w", err)
	}

	for !step.Last() {
		// Select action, step in environment
		action := o.Agent.SelectAction(step)
		step, _ = o.Environment.Step(action)

		for _, t := range o.trackers {
			t.Track(action, step)
		}

		// Observe the timestep and step the agent
		if err := o.Agent.Observe(action, step); err != nil {
			return fmt.Errorf("runEpisode: %w", err)
		}
		if err := o.Agent.Step(); err != nil {
			return fmt.Errorf("runEpisode: %w", err)
		}
	}
	o.Agent.EndEpisode()

	return nil
}

// Run runs all training episodes
func (o *Online) Run() error {
	for i := 0; i < o.episodes; i++ {
		if err := o.RunEpisode(); err != nil {
			return fmt.Errorf("run: episode %d: %w", i, err)
		}
	}
	return nil
}
