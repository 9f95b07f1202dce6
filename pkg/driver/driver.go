package driver

import (
	"math/rand"
	"time"

	"github.com/dustin/go-humanize"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"k8s.io/klog/v2"

	"github.com/evolab-go/evolab/pkg/dominance"
	"github.com/evolab-go/evolab/pkg/errs"
	"github.com/evolab-go/evolab/pkg/framework"
	"github.com/evolab-go/evolab/pkg/selection"
	"github.com/evolab-go/evolab/pkg/survival"
)

// Config wires together everything a run needs beyond the algorithm-specific
// survival operator: the problem's evaluation functions, its variation
// operators, and the run's size/budget knobs.
//
// Grounded on this codebase's own NSGAII.Run and the descheduler fork's
// richer NSGAII.Run (generation-by-generation logging, elapsed-time
// reporting, uniqueness statistics) - reproduced here through klog and
// go-humanize instead of log.Printf.
type Config struct {
	PopSize        int // μ
	NumOffsprings  int // λ; 0 defaults to PopSize
	NumGenerations int
	NumVars        int
	NumObjectives  int
	NumConstraints int
	Bounds         []framework.Bounds
	KeepInfeasible bool // if false, infeasible individuals are dropped before the first survival call

	Sampler       Sampler
	Crossover     CrossoverFunc
	Mutation      MutationFunc
	CrossoverRate float64
	MutationRate  float64

	FitnessFn    framework.FitnessFunc
	ConstraintFn framework.ConstraintFunc

	Survival        survival.Operator
	TournamentSize  int
	ScoreDirection  selection.ScoreDirection
	RandomSelection bool // NSGA-III / IBEA-HV select mating parents uniformly

	Cleaner   framework.Cleaner // optional; nil disables duplicate removal
	Emitter   errs.Emitter      // optional; defaults to errs.DefaultEmitter()
	Seed      int64
	RefreshFn func(gen int, pop *framework.Population, op survival.Operator) survival.Operator // optional REVEA-style periodic refresh
}

// Result is what a completed run hands back: the final combined population
// (with Rank/SurvivalScore populated) and its non-dominated subset.
type Result struct {
	Population *framework.Population
	Best       *framework.Population
	Elapsed    time.Duration
}

// Run executes the generic generational loop described in the spec's §4.5
// procedure: initialize, then for each generation select parents, vary them,
// evaluate offspring, clean duplicates, combine with the parent population,
// non-dominated sort, and truncate to size via cfg.Survival.
func Run(cfg Config) (*Result, error) {
	emitter := cfg.Emitter
	if emitter == nil {
		emitter = errs.DefaultEmitter()
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	constraintFn := effectiveConstraintFn(cfg)
	numConstraints := cfg.NumConstraints + 2*len(cfg.Bounds)
	numOffsprings := cfg.NumOffsprings
	if numOffsprings == 0 {
		numOffsprings = cfg.PopSize
	}

	start := time.Now()

	initialGenes := cfg.Sampler(cfg.PopSize, cfg.NumVars, rng)
	pop, err := framework.Evaluate(initialGenes, cfg.FitnessFn, constraintFn, cfg.NumObjectives, numConstraints)
	if err != nil {
		return nil, err
	}
	if cfg.Cleaner != nil {
		before := pop.NumIndividuals()
		pop = cfg.Cleaner(pop, nil)
		if pop.NumIndividuals() < cfg.PopSize {
			emitter.EmptyPopulation(&errs.EmptyPopulationWarning{
				Generation: -1,
				Have:       pop.NumIndividuals(),
				Want:       cfg.PopSize,
			})
			pop = padByCyclicSampling(pop, cfg.PopSize)
		}
		klog.V(5).InfoS("duplicate cleaning", "generation", -1, "before", before, "after", pop.NumIndividuals())
	}
	if !cfg.KeepInfeasible {
		pop = dropInfeasible(pop)
		if pop.NumIndividuals() < cfg.PopSize {
			emitter.EmptyPopulation(&errs.EmptyPopulationWarning{
				Generation: -1,
				Have:       pop.NumIndividuals(),
				Want:       cfg.PopSize,
			})
			pop = padByCyclicSampling(pop, cfg.PopSize)
		}
	}

	fronts := dominance.FastNonDominatedSort(pop)
	survivalOp := cfg.Survival
	pop = survivalOp.Survive(pop, fronts, cfg.PopSize, rng, emitter)

	refreshFn := cfg.RefreshFn
	if refreshFn == nil {
		if revea, ok := survivalOp.(survival.REVEA); ok {
			refreshFn = survival.DefaultREVEARefresh(revea.RefreshEvery)
		}
	}

	for gen := 0; gen < cfg.NumGenerations; gen++ {
		if refreshFn != nil {
			survivalOp = refreshFn(gen, pop, survivalOp)
		}

		offspringGenes := makeOffspring(cfg, pop, numOffsprings, rng)
		offspring, err := framework.Evaluate(offspringGenes, cfg.FitnessFn, constraintFn, cfg.NumObjectives, numConstraints)
		if err != nil {
			return nil, err
		}

		combined := framework.Concat(pop, offspring)
		if cfg.Cleaner != nil {
			before := combined.NumIndividuals()
			combined = cfg.Cleaner(combined, nil)
			if combined.NumIndividuals() < cfg.PopSize {
				emitter.EmptyPopulation(&errs.EmptyPopulationWarning{
					Generation: gen,
					Have:       combined.NumIndividuals(),
					Want:       cfg.PopSize,
				})
				combined = padByCyclicSampling(combined, cfg.PopSize)
			}
			klog.V(5).InfoS("duplicate cleaning", "generation", gen, "before", before, "after", combined.NumIndividuals())
		}

		fronts = dominance.FastNonDominatedSort(combined)
		pop = survivalOp.Survive(combined, fronts, cfg.PopSize, rng, emitter)

		best := pop.Best()
		klog.V(4).InfoS("generation complete",
			"generation", gen,
			"popSize", pop.NumIndividuals(),
			"paretoSize", best.NumIndividuals(),
			"fronts", len(fronts),
			"meanViolation", stat.Mean(pop.ViolationTotals, nil),
			"elapsed", humanize.RelTime(start, time.Now(), "", ""),
		)
	}

	return &Result{
		Population: pop,
		Best:       pop.Best(),
		Elapsed:    time.Since(start),
	}, nil
}

func effectiveConstraintFn(cfg Config) framework.ConstraintFunc {
	if len(cfg.Bounds) == 0 {
		return cfg.ConstraintFn
	}
	return framework.CombineConstraints(framework.BoundsConstraint(cfg.Bounds), cfg.ConstraintFn)
}

// makeOffspring selects ⌈λ/2⌉ parent pairs (numOffsprings parents, paired up
// by the crossover operator) and produces λ offspring via crossover and
// mutation.
func makeOffspring(cfg Config, pop *framework.Population, numOffsprings int, rng *rand.Rand) *mat.Dense {
	var parentIdx []int
	if cfg.RandomSelection {
		parentIdx = selection.Random(pop, numOffsprings, rng)
	} else {
		parentIdx = selection.SelectMatingPool(pop, numOffsprings, cfg.TournamentSize, cfg.ScoreDirection, rng)
	}

	matingPool := pop.Slice(parentIdx)
	genes := cfg.Crossover(matingPool.Genes, cfg.CrossoverRate, rng)
	genes = cfg.Mutation(genes, cfg.MutationRate, rng)
	return genes
}

// dropInfeasible removes every individual that violates a constraint,
// falling back to the original population if none are feasible (an empty
// population would make the rest of the generational loop unrunnable).
func dropInfeasible(pop *framework.Population) *framework.Population {
	var keep []int
	for i := 0; i < pop.NumIndividuals(); i++ {
		if pop.Feasible(i) {
			keep = append(keep, i)
		}
	}
	if len(keep) == 0 {
		return pop
	}
	return pop.Slice(keep)
}

// padByCyclicSampling repeats existing rows in order until n rows are
// present, per the spec's edge case for a population that duplicate cleaning
// or constraint filtering has shrunk below the target size.
func padByCyclicSampling(pop *framework.Population, n int) *framework.Population {
	have := pop.NumIndividuals()
	if have == 0 || have >= n {
		return pop
	}
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i % have
	}
	return pop.Slice(indices)
}
