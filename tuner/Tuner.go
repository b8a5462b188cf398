// Package tuner implements a population-based stochastic search over
// PID gains. The search is a small genetic algorithm: tournament
// selection, blend crossover, and Gaussian mutation over a fixed
// number of generations. It is a black-box optimizer: the result is
// the best candidate observed, with no claim of global optimality.
package tuner

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"

	"golang.org/x/exp/rand"

	"github.com/controlbench/thermostat/controller"
	"github.com/controlbench/thermostat/utils/floatutils"
	"gonum.org/v1/gonum/spatial/r1"
	"gonum.org/v1/gonum/stat/distuv"
)

// mutationScale sets the standard deviation of Gaussian mutations as
// a fraction of each gain's search interval width
const mutationScale float64 = 0.1

// Bounds is the 3-dimensional search space of the PID gains
type Bounds struct {
	Kp r1.Interval
	Ki r1.Interval
	Kd r1.Interval
}

// Validate ensures every interval of the search space is non-empty
func (b Bounds) Validate() error {
	for _, interval := range []r1.Interval{b.Kp, b.Ki, b.Kd} {
		if interval.Max < interval.Min {
			return fmt.Errorf("bounds: empty interval [%v, %v]",
				interval.Min, interval.Max)
		}
	}
	return nil
}

// Params configures the genetic search
type Params struct {
	Population   int
	Generations  int
	MutationRate float64 // Per-gene mutation probability
	Elite        int     // Candidates carried over unchanged
	Workers      int     // Concurrent objective evaluations; <=1 is sequential
	Seed         uint64
}

// DefaultParams returns the search parameters used when the caller has
// no opinion
func DefaultParams(seed uint64) Params {
	return Params{
		Population:   30,
		Generations:  25,
		MutationRate: 0.2,
		Elite:        2,
		Workers:      1,
		Seed:         seed,
	}
}

// Validate ensures that the Params describe a runnable search
func (p Params) Validate() error {
	if p.Population <= 0 {
		return errors.New("tuner: population must be positive")
	}
	if p.Generations <= 0 {
		return errors.New("tuner: generations must be positive")
	}
	if p.MutationRate < 0 || p.MutationRate > 1 {
		return errors.New("tuner: mutation rate must be in [0, 1]")
	}
	if p.Elite < 0 || p.Elite >= p.Population {
		return errors.New("tuner: elite count must be in [0, population)")
	}
	return nil
}

// Objective evaluates a candidate gain triple, returning the quantity
// to minimize. Objectives are called concurrently when Workers > 1, so
// they must not share mutable state between calls.
type Objective func(controller.Gains) (float64, error)

// Result holds the best candidate observed by the search and its
// achieved objective value
type Result struct {
	Gains controller.Gains
	Area  float64
}

type candidate struct {
	gains   controller.Gains
	fitness float64
}

// Minimize searches the bounded gain space for the gains minimizing
// the objective. Candidates whose objective evaluation fails or is
// non-finite are kept in the population with an infinite fitness, so a
// few unstable gain combinations cannot abort the search; Minimize
// only returns an error when no candidate at all produced a finite
// objective.
func Minimize(objective Objective, b Bounds, p Params) (Result, error) {
	if err := b.Validate(); err != nil {
		return Result{}, err
	}
	if err := p.Validate(); err != nil {
		return Result{}, err
	}

	rng := rand.New(rand.NewSource(p.Seed))

	population := seedPopulation(b, p.Population, rng)
	evaluate(population, objective, p.Workers)
	sortByFitness(population)

	best := population[0]

	for gen := 0; gen < p.Generations; gen++ {
		population = nextGeneration(population, b, p, rng)
		evaluate(population[p.Elite:], objective, p.Workers)
		sortByFitness(population)

		if population[0].fitness < best.fitness {
			best = population[0]
		}
	}

	if math.IsInf(best.fitness, 1) {
		return Result{}, errors.New("tuner: no candidate produced a " +
			"finite objective")
	}

	return Result{Gains: best.gains, Area: best.fitness}, nil
}

// seedPopulation samples the initial population uniformly from the
// search bounds
func seedPopulation(b Bounds, size int, rng *rand.Rand) []candidate {
	kp := distuv.Uniform{Min: b.Kp.Min, Max: b.Kp.Max, Src: rng}
	ki := distuv.Uniform{Min: b.Ki.Min, Max: b.Ki.Max, Src: rng}
	kd := distuv.Uniform{Min: b.Kd.Min, Max: b.Kd.Max, Src: rng}

	population := make([]candidate, size)
	for i := range population {
		population[i] = candidate{gains: controller.Gains{
			Kp: kp.Rand(),
			Ki: ki.Rand(),
			Kd: kd.Rand(),
		}}
	}
	return population
}

// evaluate computes the fitness of every candidate, fanning the
// objective calls out over workers when configured. Each goroutine
// writes only its own candidates, so no locking is needed.
func evaluate(population []candidate, objective Objective, workers int) {
	if workers <= 1 {
		for i := range population {
			population[i].fitness = fitness(objective, population[i].gains)
		}
		return
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := w; i < len(population); i += workers {
				population[i].fitness = fitness(objective,
					population[i].gains)
			}
		}(w)
	}
	wg.Wait()
}

// fitness evaluates one candidate, mapping failures and non-finite
// objectives to an infinite fitness
func fitness(objective Objective, g controller.Gains) float64 {
	area, err := objective(g)
	if err != nil || !floatutils.Finite(area) {
		return math.Inf(1)
	}
	return area
}

func sortByFitness(population []candidate) {
	sort.Slice(population, func(i, j int) bool {
		return population[i].fitness < population[j].fitness
	})
}

// nextGeneration builds a new population from a fitness-sorted one:
// the elite carry over unchanged, and the remainder are bred by
// tournament selection, blend crossover, and Gaussian mutation
func nextGeneration(population []candidate, b Bounds, p Params,
	rng *rand.Rand) []candidate {
	next := make([]candidate, 0, len(population))
	next = append(next, population[:p.Elite]...)

	for len(next) < len(population) {
		mother := tournament(population, rng)
		father := tournament(population, rng)

		child := crossover(mother.gains, father.gains, rng)
		child = mutate(child, b, p.MutationRate, rng)

		next = append(next, candidate{gains: child})
	}
	return next
}

// tournament returns the fitter of two candidates drawn uniformly at
// random
func tournament(population []candidate, rng *rand.Rand) candidate {
	a := population[rng.Intn(len(population))]
	b := population[rng.Intn(len(population))]
	if b.fitness < a.fitness {
		return b
	}
	return a
}

// crossover blends each gene of the parents with an independent
// uniformly-random mixing weight
func crossover(mother, father controller.Gains,
	rng *rand.Rand) controller.Gains {
	blend := func(a, b float64) float64 {
		alpha := rng.Float64()
		return alpha*a + (1-alpha)*b
	}

	return controller.Gains{
		Kp: blend(mother.Kp, father.Kp),
		Ki: blend(mother.Ki, father.Ki),
		Kd: blend(mother.Kd, father.Kd),
	}
}

// mutate perturbs each gene with probability rate by Gaussian noise
// scaled to the gene's search interval, clipping back into bounds
func mutate(g controller.Gains, b Bounds, rate float64,
	rng *rand.Rand) controller.Gains {
	perturb := func(value float64, interval r1.Interval) float64 {
		if rng.Float64() >= rate {
			return value
		}

		sigma := mutationScale * (interval.Max - interval.Min)
		if sigma == 0 {
			return value
		}

		noise := distuv.Normal{Mu: 0, Sigma: sigma, Src: rng}
		return floatutils.ClipInterval(value+noise.Rand(), interval)
	}

	return controller.Gains{
		Kp: perturb(g.Kp, b.Kp),
		Ki: perturb(g.Ki, b.Ki),
		Kd: perturb(g.Kd, b.Kd),
	}
}
