package controller

import (
	"errors"

	"github.com/controlbench/thermostat/timestep"
	"github.com/controlbench/thermostat/utils/floatutils"
	"gonum.org/v1/gonum/mat"
)

// Duty fraction bounds of the PID output
const (
	MinDuty float64 = 0.0
	MaxDuty float64 = 1.0
)

// ErrNonPositivePIDTimeStep is returned when constructing a PID
// controller with a timestep that is zero or negative
var ErrNonPositivePIDTimeStep = errors.New("pid: timestep must be positive")

// Gains holds the three PID gains
type Gains struct {
	Kp float64 // Proportional gain
	Ki float64 // Integral gain
	Kd float64 // Derivative gain
}

// PID implements a discrete-time PID controller producing a heater
// duty fraction in [0, 1].
//
// The integral term is not clamped unless an integral limit is set:
// with the limit disabled, the integral keeps accumulating while the
// output saturates, a known source of overshoot (integral windup).
// Whether windup protection is wanted depends on the behaviour being
// reproduced, so it is a configuration choice rather than always on.
type PID struct {
	gains         Gains
	setpoint      float64
	dt            float64
	integralLimit float64 // Absolute bound on the integral; 0 disables

	integral  float64
	prevError float64
}

// NewPID creates a new PID controller with integral windup protection
// disabled
func NewPID(g Gains, setpoint, dt float64) (*PID, error) {
	if dt <= 0 {
		return nil, ErrNonPositivePIDTimeStep
	}
	return &PID{gains: g, setpoint: setpoint, dt: dt}, nil
}

// SetIntegralLimit bounds the magnitude of the accumulated integral
// error. A limit of 0 disables the bound.
func (p *PID) SetIntegralLimit(limit float64) {
	p.integralLimit = limit
}

// Gains returns the gains of the controller
func (p *PID) Gains() Gains {
	return p.gains
}

// SelectAction computes the heater duty fraction for the temperature
// observed on the argument timestep. The output is always clamped to
// [0, 1] regardless of the error magnitude.
func (p *PID) SelectAction(t timestep.TimeStep) mat.Vector {
	temperature := t.Observation.AtVec(0)
	err := p.setpoint - temperature

	p.integral += err * p.dt
	if p.integralLimit > 0 {
		p.integral = floatutils.Clip(p.integral, -p.integralLimit,
			p.integralLimit)
	}

	derivative := (err - p.prevError) / p.dt
	p.prevError = err

	output := p.gains.Kp*err + p.gains.Ki*p.integral + p.gains.Kd*derivative
	duty := floatutils.Clip(output, MinDuty, MaxDuty)

	return mat.NewVecDense(1, []float64{duty})
}

// Reset clears the accumulated integral error and the previous error,
// restoring the controller to its initial state
func (p *PID) Reset() {
	p.integral = 0
	p.prevError = 0
}
