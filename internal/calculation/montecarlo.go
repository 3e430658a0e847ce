package calculation

import (
	"context"
	"fmt"
	"math/rand/v2"
	"runtime"
	"sync"

	"github.com/rpgo/buyout-calculator/internal/domain"
)

// MonteCarloConfig holds configuration for Monte Carlo simulations
type MonteCarloConfig struct {
	NumSimulations int   // 0 means domain.DefaultIterations
	Seed           int64 // 0 picks a seed from seedFunc, so seed 0 itself cannot be pinned
	Workers        int   // 0 means runtime.NumCPU()
	Logger         Logger
}

// MonteCarloEngine runs independent stay-versus-buyout trials.
// It keeps no state between runs.
type MonteCarloEngine struct {
	NumSimulations int
	Seed           int64
	Workers        int
	Logger         Logger
}

// NewMonteCarloEngine creates a new Monte Carlo engine, filling in defaults.
func NewMonteCarloEngine(config MonteCarloConfig) *MonteCarloEngine {
	if config.NumSimulations == 0 {
		config.NumSimulations = domain.DefaultIterations
	}
	if config.Seed == 0 {
		config.Seed = seedFunc()
	}
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	if config.Logger == nil {
		config.Logger = NopLogger{}
	}

	return &MonteCarloEngine{
		NumSimulations: config.NumSimulations,
		Seed:           config.Seed,
		Workers:        config.Workers,
		Logger:         config.Logger,
	}
}

// Run validates params, then runs NumSimulations trials split into contiguous
// index ranges, one range per worker. Every trial draws from its own random
// source derived from (Seed, trial index). Workers check ctx between trials;
// a cancelled run returns ctx.Err() and no partial result.
//
// For a fixed Seed the output is bit-identical across runs and worker counts.
func (mce *MonteCarloEngine) Run(ctx context.Context, params domain.ParameterSet) (*domain.SimulationResult, error) {
	if mce.NumSimulations <= 0 {
		return nil, domain.ConfigErrorf("iteration count must be positive, got %d", mce.NumSimulations)
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	hazard, err := NewHazardModel(params.OptimisticMonths, params.LikelyMonths, params.PessimisticMonths)
	if err != nil {
		return nil, err
	}
	simulator := NewScenarioSimulator(params, hazard)

	n := mce.NumSimulations
	workers := min(mce.Workers, n)
	result := &domain.SimulationResult{
		NPVDifferences:    make([]float64, n),
		StayNPVs:          make([]float64, n),
		BuyoutNPVs:        make([]float64, n),
		StayTimeline:      make([][]float64, n),
		BuyoutTimeline:    make([][]float64, n),
		NumIterations:     n,
		TimeHorizonMonths: params.TimeHorizonMonths,
		Seed:              mce.Seed,
		Workers:           workers,
	}

	start := nowFunc()
	mce.Logger.Infof("Monte Carlo run: %d trials, %d workers, %d months, seed %d", n, workers, params.TimeHorizonMonths, mce.Seed)
	mce.Logger.Debugf("hazard model: alpha=%.4f beta=%.4f", hazard.Alpha, hazard.Beta)

	chunk := (n + workers - 1) / workers
	errs := make([]error, workers)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		lo, hi := w*chunk, min((w+1)*chunk, n)
		if lo >= hi {
			break
		}
		wg.Add(1)
		go func(worker, lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					errs[worker] = err
					return
				}
				stay, buyout := simulator.Simulate(trialRand(mce.Seed, i))
				stayNPV := NPV(stay, params.DiscountRate)
				buyoutNPV := NPV(buyout, params.DiscountRate)

				result.StayTimeline[i] = stay
				result.BuyoutTimeline[i] = buyout
				result.StayNPVs[i] = stayNPV
				result.BuyoutNPVs[i] = buyoutNPV
				result.NPVDifferences[i] = stayNPV - buyoutNPV
			}
		}(w, lo, hi)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			mce.Logger.Warnf("Monte Carlo run cancelled: %v", err)
			return nil, fmt.Errorf("monte carlo run cancelled: %w", err)
		}
	}

	mce.Logger.Infof("Monte Carlo run finished in %s", nowFunc().Sub(start))
	return result, nil
}

// trialRand gives each trial its own PCG stream derived from the run seed.
func trialRand(seed int64, trial int) *rand.Rand {
	const streamSalt = 0x9e3779b97f4a7c15
	return rand.New(rand.NewPCG(uint64(seed), streamSalt*uint64(trial+1)))
}
