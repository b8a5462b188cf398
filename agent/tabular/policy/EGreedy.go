package policy

import (
	"golang.org/x/exp/rand"

	"github.com/controlbench/thermostat/timestep"
	"github.com/controlbench/thermostat/utils/matutils"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// EGreedy implements an ε-greedy policy over a tabular action-value
// table. With probability ε an action is chosen uniformly at random;
// otherwise the greedy action is chosen, ties broken by the lowest
// action index.
type EGreedy struct {
	table        *mat.Dense
	GreedyPolicy *Greedy
	epsilon      float64
	seed         rand.Source // Seed for random number generation
}

// NewEGreedy constructs a new EGreedy policy, where e=epsilon is the
// probability with which a random action is selected. The action-value
// table is zero-initialized and shared with the embedded greedy
// policy, so that updates to the table are reflected in both.
func NewEGreedy(e float64, seed uint64, buckets, actions int) *EGreedy {
	source := rand.NewSource(seed)

	greedyPolicy := NewGreedy(buckets, actions)
	table := greedyPolicy.Table() // Share the table between both policies

	return &EGreedy{table, greedyPolicy, e, source}
}

// Table returns the action-value table of the policy
func (p *EGreedy) Table() *mat.Dense {
	return p.table
}

// SelectAction selects an action from an ε-greedy policy
func (p *EGreedy) SelectAction(t timestep.TimeStep) mat.Vector {
	bucket := int(t.Observation.AtVec(0))

	// Find the greedy action for the current bucket
	greedyAction := matutils.MaxVec(p.table.RowView(bucket))

	// Calculate the ε probability of choosing any action at random
	_, numActions := p.table.Dims()
	prob := p.epsilon / float64(numActions)
	actionProbabilities := make([]float64, numActions)
	for i := 0; i < numActions; i++ {
		actionProbabilities[i] = prob
	}

	// Adjust the probability of choosing the greedy action
	actionProbabilities[greedyAction] += (1.0 - p.epsilon)

	// Construct a categorical distribution over actions using action
	// probabilities
	dist := distuv.NewCategorical(actionProbabilities, p.seed)

	// Sample an action given the action probabilities and return
	action := mat.NewVecDense(1, []float64{dist.Rand()})
	return action
}

// Reset implements agent.Policy. An EGreedy policy is stateless
// between steps, so Reset is a no-op.
func (p *EGreedy) Reset() {}
