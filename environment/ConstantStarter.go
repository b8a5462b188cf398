package environment

import (
	"gonum.org/v1/gonum/mat"
)

// ConstantStarter implements the Starter interface for environments
// that always start in the same state, such as a thermal process that
// begins every run at the configured initial room temperature.
type ConstantStarter struct {
	state mat.Vector
}

// NewConstantStarter creates and returns a new ConstantStarter that
// always starts at the argument state
func NewConstantStarter(state ...float64) ConstantStarter {
	return ConstantStarter{mat.NewVecDense(len(state), state)}
}

// Start returns the starting state
func (c ConstantStarter) Start() mat.Vector {
	start := mat.NewVecDense(c.state.Len(), nil)
	start.CloneFromVec(c.state)
	return start
}
