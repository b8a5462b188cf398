package compare

import (
	"fmt"

	"github.com/controlbench/thermostat/controller"
	"github.com/controlbench/thermostat/metrics"
	"github.com/controlbench/thermostat/trajectory"
)

// Strategy names reported in comparison results
const (
	StrategyBangBang  = "On-Off"
	StrategyPID       = "PID"
	StrategyQLearning = "Q-Learning"
)

// StrategyResult holds the outcome of one strategy's run. When Err is
// set, the Trajectory and Metrics fields are zero; the other
// strategies in the same comparison are unaffected.
type StrategyResult struct {
	Strategy   string
	Trajectory trajectory.Trajectory
	Metrics    metrics.Result
	Err        error
}

// RunAll runs every strategy on the same configuration and scores each
// against the setpoint. Failures are isolated per strategy: a panic or
// error in one run is captured in its StrategyResult and the remaining
// strategies still complete.
func RunAll(c Config, g controller.Gains, q QParams) []StrategyResult {
	return []StrategyResult{
		runStrategy(StrategyBangBang, c, func() (trajectory.Trajectory, error) {
			return RunBangBang(c)
		}),
		runStrategy(StrategyPID, c, func() (trajectory.Trajectory, error) {
			return RunPID(c, g)
		}),
		runStrategy(StrategyQLearning, c, func() (trajectory.Trajectory, error) {
			return RunQLearning(c, q)
		}),
	}
}

// runStrategy runs a single strategy, converting panics and errors
// into a per-strategy result
func runStrategy(name string, c Config,
	run func() (trajectory.Trajectory, error)) (result StrategyResult) {
	result.Strategy = name

	defer func() {
		if r := recover(); r != nil {
			result.Err = fmt.Errorf("%s: panic: %v", name, r)
		}
	}()

	traj, err := run()
	if err != nil {
		result.Err = err
		return result
	}
	result.Trajectory = traj

	m, err := metrics.FromTrajectory(traj, c.Setpoint)
	if err != nil {
		result.Err = err
		return result
	}
	result.Metrics = m

	return result
}
