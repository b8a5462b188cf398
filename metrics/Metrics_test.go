package metrics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/controlbench/thermostat/trajectory"
)

func traj(temperatures ...float64) trajectory.Trajectory {
	t := make(trajectory.Trajectory, len(temperatures))
	for i, temperature := range temperatures {
		t[i] = trajectory.Sample{Time: float64(i), Temperature: temperature}
	}
	return t
}

func TestFromTrajectoryExactTracking(t *testing.T) {
	result, err := FromTrajectory(traj(20, 20, 20, 20), 20)
	require.NoError(t, err)

	assert.Zero(t, result.Overshoot)
	assert.Zero(t, result.Undershoot)
	assert.Zero(t, result.TrackingArea)
}

func TestFromTrajectoryTrapezoids(t *testing.T) {
	// One minute at an average of 21 °C, one at an average of 19.5 °C
	result, err := FromTrajectory(traj(20.5, 21.5, 17.5), 20)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, result.Overshoot, 1e-12)
	assert.InDelta(t, 0.5, result.Undershoot, 1e-12)
	assert.InDelta(t, 1.5, result.TrackingArea, 1e-12)
}

func TestFromTrajectoryIdentities(t *testing.T) {
	result, err := FromTrajectory(
		traj(19, 19.5, 20.2, 21, 20.4, 19.8, 20.1), 20)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, result.Overshoot, 0.0)
	assert.GreaterOrEqual(t, result.Undershoot, 0.0)
	assert.InDelta(t, result.Overshoot+result.Undershoot,
		result.TrackingArea, 1e-12)
}

func TestFromTrajectoryShortRuns(t *testing.T) {
	result, err := FromTrajectory(trajectory.Trajectory{}, 20)
	require.NoError(t, err)
	assert.Zero(t, result.TrackingArea)

	result, err = FromTrajectory(traj(25), 20)
	require.NoError(t, err)
	assert.Zero(t, result.TrackingArea)
}

func TestFromTrajectoryNonFinite(t *testing.T) {
	_, err := FromTrajectory(traj(20, math.NaN(), 20), 20)
	assert.ErrorIs(t, err, ErrNonFinite)

	_, err = FromTrajectory(traj(20, math.Inf(1)), 20)
	assert.ErrorIs(t, err, ErrNonFinite)
}
