// Package controller implements the classical feedback controllers
// that compete with the learning agents. Controllers satisfy
// agent.Policy so that the simulation driver can couple either kind of
// strategy to the thermal process. Controller state is explicit and
// per-instance: construct a fresh controller (or call Reset) for each
// run.
package controller

import (
	"github.com/controlbench/thermostat/timestep"
	"gonum.org/v1/gonum/mat"
)

// BangBang implements an on-off controller with hysteresis. The
// heater turns on when the temperature falls below setpoint − band and
// off when it rises above setpoint + band. Strictly inside the band
// the previous heater state is held; the dead-band prevents the
// controller from chattering around the setpoint.
type BangBang struct {
	setpoint float64
	band     float64 // Hysteresis half-width
	on       bool
}

// NewBangBang creates a new BangBang controller with the heater
// initially off
func NewBangBang(setpoint, band float64) *BangBang {
	return &BangBang{setpoint: setpoint, band: band}
}

// SelectAction returns the binary heater action for the temperature
// observed on the argument timestep
func (b *BangBang) SelectAction(t timestep.TimeStep) mat.Vector {
	temperature := t.Observation.AtVec(0)

	if temperature < b.setpoint-b.band {
		b.on = true
	} else if temperature > b.setpoint+b.band {
		b.on = false
	}

	action := 0.0
	if b.on {
		action = 1.0
	}
	return mat.NewVecDense(1, []float64{action})
}

// On returns the current heater state of the controller
func (b *BangBang) On() bool {
	return b.on
}

// Reset turns the heater off, restoring the controller to its initial
// state
func (b *BangBang) Reset() {
	b.on = false
}
