package qlearning

import (
	"fmt"

	"github.com/controlbench/thermostat/timestep"
	"gonum.org/v1/gonum/mat"
)

// QLearner implements the update functionality for the tabular
// Q-Learning algorithm. On each Step, the value estimate of the last
// (bucket, action) pair is moved toward the temporal-difference
// target:
//
//	Q[s,a] += α · (reward + γ · max(Q[s',·]) − Q[s,a])
type QLearner struct {
	table        *mat.Dense
	step         timestep.TimeStep
	action       int
	nextStep     timestep.TimeStep
	learningRate float64
}

// NewQLearner creates a new QLearner that updates the argument
// action-value table in place
func NewQLearner(table *mat.Dense, learningRate float64) *QLearner {
	return &QLearner{
		table:        table,
		learningRate: learningRate,
	}
}

// ObserveFirst observes and records the first episodic timestep
func (q *QLearner) ObserveFirst(t timestep.TimeStep) error {
	if !t.First() {
		return fmt.Errorf("observeFirst: timestep "+
			"%d is not the first timestep of an episode", t.Number)
	}
	q.step = timestep.TimeStep{}
	q.nextStep = t
	return nil
}

// Observe observes and records any timestep other than the first
// timestep
func (q *QLearner) Observe(action mat.Vector,
	nextStep timestep.TimeStep) error {
	if action.Len() != 1 {
		return fmt.Errorf("observe: tabular methods do not support "+
			"multi-dimensional actions (action dim = %d)", action.Len())
	}
	q.step = q.nextStep
	q.action = int(action.AtVec(0))
	q.nextStep = nextStep
	return nil
}

// Step updates the action-value table for the last observed transition
func (q *QLearner) Step() error {
	bucket := int(q.step.Observation.AtVec(0))
	nextBucket := int(q.nextStep.Observation.AtVec(0))

	// Find the maximum action value in the next state
	maxNext := mat.Max(q.table.RowView(nextBucket))

	// Create the update target
	discount := q.nextStep.Discount
	target := q.nextStep.Reward + discount*maxNext

	// Move the current estimate toward the target
	current := q.table.At(bucket, q.action)
	q.table.Set(bucket, q.action,
		current+q.learningRate*(target-current))

	return nil
}

// EndEpisode performs cleanup at the end of an episode
func (q *QLearner) EndEpisode() {}

// Table returns the action-value table of the learner
func (q *QLearner) Table() *mat.Dense {
	return q.table
}
