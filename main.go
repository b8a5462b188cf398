package main

import (
	"fmt"
	"log"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/logrusorgru/aurora"
	"gonum.org/v1/gonum/spatial/r1"

	"github.com/controlbench/thermostat/compare"
	"github.com/controlbench/thermostat/controller"
	"github.com/controlbench/thermostat/tuner"
)

func main() {
	var seed uint64 = 192382

	cfg := compare.DefaultConfig()
	gains := controller.Gains{Kp: 0.5, Ki: 0.1, Kd: 0.01}

	results := compare.RunAll(cfg, gains, compare.DefaultQParams(seed))

	fmt.Println(aurora.Bold("Room temperature control comparison"))
	fmt.Printf("setpoint %.1f °C over %.0f minutes\n\n", cfg.Setpoint,
		cfg.Horizon)

	for _, r := range results {
		if r.Err != nil {
			fmt.Printf("%-12s %v\n", r.Strategy, aurora.Red(r.Err))
			continue
		}
		fmt.Printf("%-12s tracking area %s °C·min  (overshoot %.2f, "+
			"undershoot %.2f)\n", r.Strategy,
			aurora.Green(fmt.Sprintf("%7.2f", r.Metrics.TrackingArea)),
			r.Metrics.Overshoot, r.Metrics.Undershoot)
	}

	// Search the PID gain space for a better tuning than the manual
	// gains above
	bounds := tuner.Bounds{
		Kp: r1.Interval{Min: 0.1, Max: 2.0},
		Ki: r1.Interval{Min: 0.01, Max: 0.5},
		Kd: r1.Interval{Min: 0.001, Max: 0.2},
	}
	params := tuner.DefaultParams(seed)
	params.Workers = 4

	best, area, err := compare.TunePID(cfg, bounds, params)
	if err != nil {
		log.Fatalf("could not tune PID gains: %v", err)
	}
	fmt.Printf("\ntuned PID    Kp=%.3f Ki=%.3f Kd=%.3f  area %s °C·min\n",
		best.Kp, best.Ki, best.Kd,
		aurora.Green(fmt.Sprintf("%7.2f", area)))

	if err := plot(cfg, results); err != nil {
		log.Fatalf("could not render chart: %v", err)
	}
	fmt.Println("\ntrajectories written to charts/comparison.html")
}

// plot renders the temperature trajectories of every successful
// strategy to an HTML line chart
func plot(cfg compare.Config, results []compare.StrategyResult) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "Room temperature control comparison",
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
	)

	var times []string
	for _, r := range results {
		if r.Err != nil {
			continue
		}

		if times == nil {
			for _, t := range r.Trajectory.Times() {
				times = append(times, fmt.Sprintf("%.1f", t))
			}
			line.SetXAxis(times)
		}

		items := make([]opts.LineData, 0, len(r.Trajectory))
		for _, temp := range r.Trajectory.Temperatures() {
			items = append(items, opts.LineData{Value: temp})
		}
		line.AddSeries(r.Strategy, items)
	}

	page := components.NewPage()
	page.AddCharts(line)

	if err := os.MkdirAll("charts", 0700); err != nil {
		return err
	}
	f, err := os.Create("charts/comparison.html")
	if err != nil {
		return err
	}
	defer f.Close()

	return page.Render(f)
}
