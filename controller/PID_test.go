package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPIDValidatesTimeStep(t *testing.T) {
	_, err := NewPID(Gains{Kp: 0.5}, 20, 0)
	assert.ErrorIs(t, err, ErrNonPositivePIDTimeStep)

	_, err = NewPID(Gains{Kp: 0.5}, 20, -0.1)
	assert.ErrorIs(t, err, ErrNonPositivePIDTimeStep)
}

func TestPIDOutputClamped(t *testing.T) {
	p, err := NewPID(Gains{Kp: 0.5, Ki: 0.1, Kd: 0.01}, 20, 0.1)
	require.NoError(t, err)

	// An enormous error must still produce a duty of exactly 1
	duty := p.SelectAction(stepAt(-980)).AtVec(0)
	assert.Equal(t, 1.0, duty)

	// And an enormous negative error a duty of exactly 0
	p.Reset()
	duty = p.SelectAction(stepAt(1020)).AtVec(0)
	assert.Equal(t, 0.0, duty)
}

func TestPIDTermArithmetic(t *testing.T) {
	p, err := NewPID(Gains{Kp: 0.1, Ki: 0.2, Kd: 0.05}, 20, 0.1)
	require.NoError(t, err)

	// First step at 19 °C: err = 1, integral = 0.1, derivative = 10
	//	0.1·1 + 0.2·0.1 + 0.05·10 = 0.62
	assert.InDelta(t, 0.62, p.SelectAction(stepAt(19)).AtVec(0), 1e-12)

	// Second step at 19.5 °C: err = 0.5, integral = 0.15,
	// derivative = (0.5 − 1)/0.1 = −5
	//	0.1·0.5 + 0.2·0.15 + 0.05·(−5) = −0.17, clamped to 0
	assert.Equal(t, 0.0, p.SelectAction(stepAt(19.5)).AtVec(0))
}

func TestPIDIntegralLimit(t *testing.T) {
	unbounded, err := NewPID(Gains{Ki: 1}, 20, 1)
	require.NoError(t, err)

	bounded, err := NewPID(Gains{Ki: 1}, 20, 1)
	require.NoError(t, err)
	bounded.SetIntegralLimit(0.3)

	// Hold a constant error of 0.1 °C: the unbounded integral keeps
	// growing while the bounded one saturates at the limit
	for i := 0; i < 10; i++ {
		unbounded.SelectAction(stepAt(19.9))
		bounded.SelectAction(stepAt(19.9))
	}

	assert.InDelta(t, 1.0, unbounded.SelectAction(stepAt(19.9)).AtVec(0), 1e-9)
	assert.InDelta(t, 0.3, bounded.SelectAction(stepAt(19.9)).AtVec(0), 1e-9)
}

func TestPIDReset(t *testing.T) {
	p, err := NewPID(Gains{Kp: 0.1, Ki: 0.2, Kd: 0.05}, 20, 0.1)
	require.NoError(t, err)

	first := p.SelectAction(stepAt(19)).AtVec(0)
	p.SelectAction(stepAt(19.5))

	p.Reset()
	assert.Equal(t, first, p.SelectAction(stepAt(19)).AtVec(0))
}
