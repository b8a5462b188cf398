// Package policy implements action-selection policies over a tabular
// action-value table
package policy

import (
	"github.com/controlbench/thermostat/timestep"
	"github.com/controlbench/thermostat/utils/matutils"
	"gonum.org/v1/gonum/mat"
)

// Greedy implements a greedy policy over a tabular action-value
// table. The table has one row per state bucket and one column per
// action. Ties between equally-valued actions are broken by the
// lowest action index.
type Greedy struct {
	table *mat.Dense
}

// NewGreedy creates a new Greedy policy with a zero-initialized
// action-value table of the argument shape
func NewGreedy(buckets, actions int) *Greedy {
	table := mat.NewDense(buckets, actions, nil)
	return &Greedy{table}
}

// Table returns the action-value table of the policy
func (p *Greedy) Table() *mat.Dense {
	return p.table
}

// SelectAction selects the greedy action for the state bucket observed
// on the argument timestep
func (p *Greedy) SelectAction(t timestep.TimeStep) mat.Vector {
	bucket := int(t.Observation.AtVec(0))

	action := float64(matutils.MaxVec(p.table.RowView(bucket)))
	return mat.NewVecDense(1, []float64{action})
}

// Reset implements agent.Policy. A Greedy policy is stateless between
// steps, so Reset is a no-op.
func (p *Greedy) Reset() {}
