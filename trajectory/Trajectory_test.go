package trajectory

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeriesAccessors(t *testing.T) {
	traj := Trajectory{
		{Time: 0, Temperature: 19, Actuation: 1},
		{Time: 0.1, Temperature: 19.03, Actuation: 1},
		{Time: 0.2, Temperature: 19.06, Actuation: 0},
	}

	assert.Equal(t, []float64{0, 0.1, 0.2}, traj.Times())
	assert.Equal(t, []float64{19, 19.03, 19.06}, traj.Temperatures())
	assert.Equal(t, []float64{1, 1, 0}, traj.Actuations())
}

func TestFinite(t *testing.T) {
	traj := Trajectory{{Temperature: 19}, {Temperature: 20}}
	assert.True(t, traj.Finite())

	traj = append(traj, Sample{Temperature: math.Inf(1)})
	assert.False(t, traj.Finite())

	traj[2].Temperature = math.NaN()
	assert.False(t, traj.Finite())
}

func TestBandFraction(t *testing.T) {
	traj := Trajectory{
		{Temperature: 15},   // Outside the band
		{Temperature: 19.6}, // In band
		{Temperature: 20.5}, // On the band edge
		{Temperature: 21},   // Outside the band
	}

	// Whole trajectory: 2 of 4 samples in band
	assert.Equal(t, 0.5, traj.BandFraction(20, 0.5, 0))

	// Tail of 2: 1 of 2 samples in band
	assert.Equal(t, 0.5, traj.BandFraction(20, 0.5, 2))

	// Tail of 3: 2 of 3
	assert.InDelta(t, 2.0/3.0, traj.BandFraction(20, 0.5, 3), 1e-12)

	// Oversized tails fall back to the whole trajectory
	assert.Equal(t, 0.5, traj.BandFraction(20, 0.5, 100))

	assert.Zero(t, Trajectory{}.BandFraction(20, 0.5, 10))
}
