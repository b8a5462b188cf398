package environment

import "github.com/controlbench/thermostat/timestep"

// StepLimit implements the Ender interface to end runs at specific
// timestep limits. The thermal process uses a StepLimit to realize the
// fixed simulation horizon: there is no other terminal condition.
type StepLimit struct {
	runSteps int
}

// NewStepLimit creates and returns a new step limit
func NewStepLimit(runSteps int) StepLimit {
	return StepLimit{runSteps}
}

// End determines whether or not the current run should be ended,
// returning a boolean to indicate run termination. If the run should
// be ended, End will modify the timestep so that its StepType field is
// timestep.Last
func (s StepLimit) End(t *timestep.TimeStep) bool {
	if t.Number >= s.runSteps {
		t.StepType = timestep.Last
		return true
	}
	return false
}
