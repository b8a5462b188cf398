package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r1"

	"github.com/controlbench/thermostat/controller"
	"github.com/controlbench/thermostat/environment/room"
	"github.com/controlbench/thermostat/experiment/tracker"
	"github.com/controlbench/thermostat/metrics"
	"github.com/controlbench/thermostat/tuner"
)

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:    "Zero horizon",
			mutate:  func(c *Config) { c.Horizon = 0 },
			wantErr: ErrNonPositiveHorizon,
		},
		{
			name:    "Negative band",
			mutate:  func(c *Config) { c.Band = -0.5 },
			wantErr: ErrNegativeBand,
		},
		{
			name:    "Setpoint above the bucketed range",
			mutate:  func(c *Config) { c.Setpoint = 35 },
			wantErr: ErrSetpointOutOfRange,
		},
		{
			name:    "Setpoint below the bucketed range",
			mutate:  func(c *Config) { c.Setpoint = 5 },
			wantErr: ErrSetpointOutOfRange,
		},
		{
			name:    "Invalid physics",
			mutate:  func(c *Config) { c.TimeStep = 0 },
			wantErr: room.ErrNonPositiveTimeStep,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.mutate(&c)
			assert.ErrorIs(t, c.Validate(), tt.wantErr)
		})
	}
}

func TestConfigSteps(t *testing.T) {
	c := DefaultConfig()
	assert.Equal(t, 600, c.Steps())

	c.Horizon = 12
	assert.Equal(t, 120, c.Steps())
}

func TestRunBangBangOscillatesAroundSetpoint(t *testing.T) {
	c := DefaultConfig()

	traj, err := RunBangBang(c)
	require.NoError(t, err)
	require.Len(t, traj, c.Steps())

	// After the initial climb the temperature must oscillate inside
	// the hysteresis band, give or take one integration step
	slack := c.HeaterPower * c.TimeStep
	for _, sample := range traj {
		if sample.Time < 10 {
			continue
		}
		assert.GreaterOrEqual(t, sample.Temperature,
			c.Setpoint-c.Band-slack, "at %v minutes", sample.Time)
		assert.LessOrEqual(t, sample.Temperature,
			c.Setpoint+c.Band+slack, "at %v minutes", sample.Time)
	}

	result, err := metrics.FromTrajectory(traj, c.Setpoint)
	require.NoError(t, err)
	assert.Greater(t, result.TrackingArea, 0.0)
	assert.Less(t, result.TrackingArea, 50.0)
}

func TestRunPIDConvergesWithinBand(t *testing.T) {
	c := DefaultConfig()
	gains := controller.Gains{Kp: 0.5, Ki: 0.1, Kd: 0.01}

	traj, err := RunPID(c, gains)
	require.NoError(t, err)
	require.Len(t, traj, c.Steps())

	// The reference gains settle well before the horizon ends
	final := traj[len(traj)-1].Temperature
	assert.InDelta(t, c.Setpoint, final, 0.5)
	assert.GreaterOrEqual(t,
		traj.BandFraction(c.Setpoint, 0.5, 100), 0.9)

	result, err := metrics.FromTrajectory(traj, c.Setpoint)
	require.NoError(t, err)
	assert.Greater(t, result.TrackingArea, 0.0)
}

func TestRunQLearningTrainedBeatsUntrained(t *testing.T) {
	c := DefaultConfig()
	p := DefaultQParams(192382)

	returns := tracker.NewReturn()
	trained, err := RunQLearning(c, p, returns)
	require.NoError(t, err)
	require.Len(t, trained, c.Steps())
	require.Len(t, returns.Returns(), p.Episodes)

	// An untrained greedy policy always picks action 0 on an all-zero
	// table, so the room just cools away from the setpoint
	tail := 200
	untrainedFraction := 0.0
	trainedFraction := trained.BandFraction(c.Setpoint, 0.5, tail)

	assert.Greater(t, trainedFraction, untrainedFraction)
	assert.GreaterOrEqual(t, trainedFraction, 0.5)

	// Returns must improve from the start of training to its end
	early := returns.Returns()[0]
	lastReturns := returns.Returns()[p.Episodes-50:]
	late := 0.0
	for _, r := range lastReturns {
		late += r
	}
	late /= float64(len(lastReturns))
	assert.Greater(t, late, early)
}

func TestRunQLearningValidatesParams(t *testing.T) {
	c := DefaultConfig()

	p := DefaultQParams(42)
	p.Episodes = 0
	_, err := RunQLearning(c, p)
	assert.Error(t, err)

	p = DefaultQParams(42)
	p.Discount = 1.5
	_, err = RunQLearning(c, p)
	assert.Error(t, err)
}

func TestTunePIDBeatsManualGains(t *testing.T) {
	c := DefaultConfig()
	manual := controller.Gains{Kp: 0.5, Ki: 0.1, Kd: 0.01}

	traj, err := RunPID(c, manual)
	require.NoError(t, err)
	manualResult, err := metrics.FromTrajectory(traj, c.Setpoint)
	require.NoError(t, err)

	bounds := tuner.Bounds{
		Kp: r1.Interval{Min: 0.1, Max: 2},
		Ki: r1.Interval{Min: 0.01, Max: 0.5},
		Kd: r1.Interval{Min: 0.001, Max: 0.2},
	}
	params := tuner.DefaultParams(42)
	params.Population = 16
	params.Generations = 10

	gains, area, err := TunePID(c, bounds, params)
	require.NoError(t, err)

	assert.LessOrEqual(t, area, manualResult.TrackingArea)
	assert.GreaterOrEqual(t, gains.Kp, bounds.Kp.Min)
	assert.LessOrEqual(t, gains.Kp, bounds.Kp.Max)
}

func TestRunAllIsolatesFailures(t *testing.T) {
	c := DefaultConfig()
	c.Horizon = 6 // Keep the embedded training run short
	gains := controller.Gains{Kp: 0.5, Ki: 0.1, Kd: 0.01}

	// Break only the Q-learning strategy
	q := DefaultQParams(42)
	q.Episodes = 0

	results := RunAll(c, gains, q)
	require.Len(t, results, 3)

	byName := make(map[string]StrategyResult, len(results))
	for _, r := range results {
		byName[r.Strategy] = r
	}

	assert.NoError(t, byName[StrategyBangBang].Err)
	assert.NotEmpty(t, byName[StrategyBangBang].Trajectory)

	assert.NoError(t, byName[StrategyPID].Err)
	assert.NotEmpty(t, byName[StrategyPID].Trajectory)

	assert.Error(t, byName[StrategyQLearning].Err)
	assert.Empty(t, byName[StrategyQLearning].Trajectory)
}

func TestRunAllReportsComparableMetrics(t *testing.T) {
	c := DefaultConfig()
	c.Horizon = 10
	gains := controller.Gains{Kp: 0.5, Ki: 0.1, Kd: 0.01}

	q := DefaultQParams(42)
	q.Episodes = 50 // Enough to run, not enough to matter

	results := RunAll(c, gains, q)
	require.Len(t, results, 3)

	for _, r := range results {
		require.NoError(t, r.Err, r.Strategy)
		assert.Len(t, r.Trajectory, c.Steps(), r.Strategy)
		assert.GreaterOrEqual(t, r.Metrics.TrackingArea, 0.0, r.Strategy)
		assert.InDelta(t, r.Metrics.Overshoot+r.Metrics.Undershoot,
			r.Metrics.TrackingArea, 1e-12, r.Strategy)
	}
}
