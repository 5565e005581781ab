package main

import (
	"context"
	"math"
	"sync"

	"github.com/pthm-cable/lilypad/components"
	"github.com/pthm-cable/lilypad/config"
	"github.com/pthm-cable/lilypad/game"
)

// FitnessEvaluator runs headless sessions and scores a tuning.
type FitnessEvaluator struct {
	params   *ParamVector
	maxTicks int64
	seeds    []int64
	cfg      *config.Config
	script   *game.Script // nil = seeded random walks

	mu          sync.Mutex
	lastBloomed float64 // mean flowers bloomed in the most recent Evaluate call
}

// NewFitnessEvaluator creates a new evaluator. cfg is shared read-only by
// concurrent runs.
func NewFitnessEvaluator(params *ParamVector, maxTicks int64, seeds []int64, cfg *config.Config, script *game.Script) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:   params,
		maxTicks: maxTicks,
		seeds:    seeds,
		cfg:      cfg,
		script:   script,
	}
}

// LastBloomed returns the mean bloom count from the most recent evaluation.
func (fe *FitnessEvaluator) LastBloomed() float64 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastBloomed
}

// seedResult holds the result from one seed evaluation.
type seedResult struct {
	fitness float64
	bloomed int
}

// Evaluate computes fitness for a raw parameter vector (lower = better).
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	tuning := fe.params.Apply(fe.cfg.Derived.Tuning, x)

	results := make([]seedResult, len(fe.seeds))
	var wg sync.WaitGroup
	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			results[idx] = fe.runSession(tuning, s)
		}(i, seed)
	}
	wg.Wait()

	var totalFitness, totalBloomed float64
	for _, r := range results {
		totalFitness += r.fitness
		totalBloomed += float64(r.bloomed)
	}
	n := float64(len(fe.seeds))

	fe.mu.Lock()
	fe.lastBloomed = totalBloomed / n
	fe.mu.Unlock()

	return totalFitness / n
}

// runSession plays one seed with the given tuning.
func (fe *FitnessEvaluator) runSession(tuning components.ActorTuning, seed int64) seedResult {
	g, err := game.NewGame(game.Options{Seed: seed, Config: fe.cfg})
	if err != nil {
		return seedResult{fitness: math.Inf(1)}
	}
	defer g.Close()
	g.SetTuning(tuning)

	var src game.InputSource
	if fe.script != nil {
		src = fe.script.Player()
	} else {
		src = game.NewRandomWalk(seed)
	}
	res := g.Run(context.Background(), src, fe.maxTicks)

	return seedResult{
		fitness: computeFitness(res, g.BloomCount(), fe.maxTicks),
		bloomed: res.Bloomed,
	}
}

// computeFitness scores a run (lower = better).
// Each unbloomed flower costs a full run; the first bloom and the last one
// add their tick counts as a fraction of the cap, so among runs that bloom
// the same flowers the faster one wins.
func computeFitness(res game.RunResult, flowers int, maxTicks int64) float64 {
	limit := float64(maxTicks)
	missing := float64(flowers - res.Bloomed)

	first := limit
	if res.FirstBloomTick >= 0 {
		first = float64(res.FirstBloomTick)
	}
	all := limit
	if res.AllBloomedTick >= 0 {
		all = float64(res.AllBloomedTick)
	}
	return missing + 0.5*first/limit + 0.5*all/limit
}
