package room

import (
	"math"

	env "github.com/controlbench/thermostat/environment"
	"github.com/controlbench/thermostat/spec"
	"github.com/controlbench/thermostat/utils/discretize"
	"gonum.org/v1/gonum/mat"
)

// Reward constants for the TrackSetpoint task
const (
	// AcceptableBand is the half-width of the temperature band around
	// the setpoint that counts as tracking it
	AcceptableBand float64 = 0.5

	rewardInBand    float64 = 10.0 // Within the acceptable band
	rewardOverheat  float64 = -10.0 // Heating while already too hot
	rewardUnderheat float64 = -5.0  // Idle while too cold
	rewardOutOfBand float64 = -1.0  // Slight penalty for being out of band
)

// TrackSetpoint implements the task of holding the room temperature at
// a setpoint. Rewards are computed on the resulting state after
// discretizing it into temperature buckets, so that the learner is
// scored on the same quantization it observes:
//
//	+10 if the resulting bucket temperature is within ±0.5 °C of the
//	    setpoint
//	−10 if the heater was on while the room was already more than
//	    0.5 °C above the setpoint
//	 −5 if the heater was off while the room was more than 0.5 °C
//	    below the setpoint
//	 −1 otherwise
type TrackSetpoint struct {
	env.Starter
	setpoint float64
}

// NewTrackSetpoint creates and returns a new TrackSetpoint task
func NewTrackSetpoint(s env.Starter, setpoint float64) *TrackSetpoint {
	return &TrackSetpoint{s, setpoint}
}

// Setpoint returns the target temperature of the task
func (t *TrackSetpoint) Setpoint() float64 {
	return t.setpoint
}

// GetReward gets the reward for a state transition under an action.
// The reward depends only on the resulting state and the action taken.
func (t *TrackSetpoint) GetReward(_, action, nextState mat.Vector) float64 {
	bucket := discretize.Bucket(nextState.AtVec(0))
	bucketTemp := discretize.Temperature(bucket)
	heating := action.AtVec(0) == 1

	switch {
	case math.Abs(bucketTemp-t.setpoint) <= AcceptableBand:
		return rewardInBand
	case heating && bucketTemp > t.setpoint+AcceptableBand:
		return rewardOverheat
	case !heating && bucketTemp < t.setpoint-AcceptableBand:
		return rewardUnderheat
	default:
		return rewardOutOfBand
	}
}

// AtGoal determines whether or not the argument state is tracking the
// setpoint
func (t *TrackSetpoint) AtGoal(state mat.Matrix) bool {
	return math.Abs(state.At(0, 0)-t.setpoint) <= AcceptableBand
}

// Min returns the minimum possible reward
func (t *TrackSetpoint) Min() float64 {
	return rewardOverheat
}

// Max returns the maximum possible reward
func (t *TrackSetpoint) Max() float64 {
	return rewardInBand
}

// RewardSpec returns the reward specification of the Task
func (t *TrackSetpoint) RewardSpec() spec.Environment {
	shape := mat.NewVecDense(1, nil)
	lowerBound := mat.NewVecDense(1, []float64{t.Min()})
	upperBound := mat.NewVecDense(1, []float64{t.Max()})

	return spec.NewEnvironment(shape, spec.Reward, lowerBound,
		upperBound, spec.Continuous)
}
