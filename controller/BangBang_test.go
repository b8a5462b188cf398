package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"

	"github.com/controlbench/thermostat/timestep"
)

func stepAt(temperature float64) timestep.TimeStep {
	obs := mat.NewVecDense(1, []float64{temperature})
	return timestep.New(timestep.Mid, 0, 1, obs, 1)
}

func TestBangBangThresholds(t *testing.T) {
	b := NewBangBang(20, 0.5)

	// Initially off and held off at the setpoint
	assert.Equal(t, 0.0, b.SelectAction(stepAt(20)).AtVec(0))

	// Turns on below setpoint − band
	assert.Equal(t, 1.0, b.SelectAction(stepAt(19.4)).AtVec(0))

	// Turns off above setpoint + band
	assert.Equal(t, 0.0, b.SelectAction(stepAt(20.6)).AtVec(0))
}

func TestBangBangHoldsInsideBand(t *testing.T) {
	b := NewBangBang(20, 0.5)

	// Force the heater on, then sweep the dead band: the heater state
	// must never change strictly inside it
	b.SelectAction(stepAt(19))
	for temperature := 19.51; temperature < 20.5; temperature += 0.01 {
		b.SelectAction(stepAt(temperature))
		assert.True(t, b.On(), "heater switched off at %v °C", temperature)
	}

	// Force the heater off and sweep the other way
	b.SelectAction(stepAt(21))
	for temperature := 20.49; temperature > 19.5; temperature -= 0.01 {
		b.SelectAction(stepAt(temperature))
		assert.False(t, b.On(), "heater switched on at %v °C", temperature)
	}
}

func TestBangBangReset(t *testing.T) {
	b := NewBangBang(20, 0.5)

	b.SelectAction(stepAt(15))
	assert.True(t, b.On())

	b.Reset()
	assert.False(t, b.On())

	// After a reset the heater stays off inside the band
	assert.Equal(t, 0.0, b.SelectAction(stepAt(20)).AtVec(0))
}
