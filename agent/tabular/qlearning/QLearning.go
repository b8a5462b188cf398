// Package qlearning implements the tabular Q-Learning algorithm.
//
// The action-value table is owned by the QLearning agent constructed
// for a single evaluation: it is never shared between runs, so
// concurrent evaluations cannot corrupt one another's policies.
package qlearning

import (
	"fmt"

	"github.com/controlbench/thermostat/agent"
	"github.com/controlbench/thermostat/agent/tabular/policy"
	"github.com/controlbench/thermostat/environment"
	"github.com/controlbench/thermostat/spec"
	"github.com/controlbench/thermostat/timestep"
	"gonum.org/v1/gonum/mat"
)

// Config represents a configuration for the QLearning agent. The
// discount factor is not part of the Config since it is a property of
// the environment the agent learns in.
type Config struct {
	Epsilon      float64 // Exploration rate for the behaviour policy
	LearningRate float64
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if c.Epsilon < 0 || c.Epsilon > 1 {
		return fmt.Errorf("epsilon must be in [0, 1], got %v", c.Epsilon)
	}
	if c.LearningRate < 0 {
		return fmt.Errorf("learning rate cannot be negative, got %v",
			c.LearningRate)
	}
	return nil
}

// QLearning implements the tabular Q-Learning algorithm. The
// behaviour policy is ε-greedy over the action-value table and the
// target policy is greedy over the same table. Switching the agent to
// evaluation mode selects actions with the target policy, which is the
// pure-greedy rollout used to score the learned policy.
type QLearning struct {
	agent.Learner
	behaviour *policy.EGreedy
	target    *policy.Greedy
	eval      bool
	seed      uint64
}

// New creates a new QLearning agent for the argument environment,
// sizing the action-value table from the environment's observation and
// action specifications. The environment must have discrete,
// 1-dimensional actions and bucketed observations.
func New(env environment.Environment, c Config,
	seed uint64) (*QLearning, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("qlearning: %w", err)
	}

	if env.ActionSpec().Cardinality != spec.Discrete {
		return nil, fmt.Errorf("qlearning: actions must be discrete")
	}
	if env.ObservationSpec().Cardinality != spec.Discrete {
		return nil, fmt.Errorf("qlearning: observations must be " +
			"discrete state buckets")
	}

	actions := int(env.ActionSpec().UpperBound.AtVec(0)) + 1
	buckets := int(env.ObservationSpec().UpperBound.AtVec(0)) + 1

	behaviour := policy.NewEGreedy(c.Epsilon, seed, buckets, actions)
	target := behaviour.GreedyPolicy
	learner := NewQLearner(behaviour.Table(), c.LearningRate)

	return &QLearning{learner, behaviour, target, false, seed}, nil
}

// SelectAction selects an action with the behaviour policy when
// training and with the target policy when evaluating
func (q *QLearning) SelectAction(t timestep.TimeStep) mat.Vector {
	if q.eval {
		return q.target.SelectAction(t)
	}
	return q.behaviour.SelectAction(t)
}

// Eval sets the agent to evaluation mode
func (q *QLearning) Eval() {
	q.eval = true
}

// Train sets the agent to training mode
func (q *QLearning) Train() {
	q.eval = false
}

// IsEval indicates whether the agent is in evaluation mode
func (q *QLearning) IsEval() bool {
	return q.eval
}

// Table returns the action-value table of the agent
func (q *QLearning) Table() *mat.Dense {
	return q.behaviour.Table()
}

// Reset implements agent.Policy. The action-value table deliberately
// persists between the training episodes and the evaluation rollout of
// a single agent, so Reset is a no-op.
func (q *QLearning) Reset() {}
