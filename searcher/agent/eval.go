package agent

import (
	"fmt"
	"quoridor/experiments/metrics"
	"quoridor/game"
	"quoridor/searcher"
	"strconv"
	"time"

	"golang.org/x/exp/rand"
)

// Search plays the moves chosen by a tree or local search.
type Search struct {
	base
	searcher searcher.Searcher
}

func newSearch(strategy string, options []Option, build func(rng *rand.Rand) searcher.Searcher) *Search {
	a := &Search{base: newBase(strategy, options)}
	a.searcher = build(a.rng)
	return a
}

// NewSearch wraps an arbitrary searcher as an agent named strategy.
func NewSearch(strategy string, s searcher.Searcher, options ...Option) *Search {
	return newSearch(strategy, options, func(*rand.Rand) searcher.Searcher { return s })
}

func NewMinimax(depth int, weights game.Weights, options ...Option) *Search {
	return newSearch(fmt.Sprintf("Minimax%d", depth), options, func(*rand.Rand) searcher.Searcher {
		return searcher.NewMinimax(depth, weights.Evaluate)
	})
}

func NewProgressiveDeepening(maxDepth int, weights game.Weights, options ...Option) *Search {
	return newSearch(fmt.Sprintf("ProgressiveDeepening%d", maxDepth), options, func(*rand.Rand) searcher.Searcher {
		return searcher.NewProgressiveDeepening(maxDepth, weights.Evaluate)
	})
}

func NewAnnealing(config searcher.AnnealingConfig, options ...Option) *Search {
	strategy := "SimulatedAnnealing"
	if config.Nested {
		strategy = "NestedAnnealing"
	}
	strategy += strconv.FormatFloat(config.TimeFactor, 'f', -1, 64)
	return newSearch(strategy, options, func(rng *rand.Rand) searcher.Searcher {
		return searcher.NewAnnealing(config, rng)
	})
}

// NewMCTS searches for the given number of simulations, stopping early once duration
// elapses when it is positive.
func NewMCTS(simulations int, duration time.Duration, options ...Option) *Search {
	strategy := fmt.Sprintf("MCTS%d", simulations)
	if simulations >= 1000 && simulations%1000 == 0 {
		strategy = fmt.Sprintf("MCTS%dk", simulations/1000)
	}
	return newSearch(strategy, options, func(rng *rand.Rand) searcher.Searcher {
		return searcher.NewMCTS(
			searcher.WithSimulations(simulations),
			searcher.WithDuration(duration),
			searcher.WithRand(rng),
			searcher.WithMetrics(),
		)
	})
}

func (a *Search) FindMove(state *game.State) (string, bool) {
	if move, ok := a.openingMove(state); ok {
		return move, true
	}
	return a.searcher.Search(state)
}

func (a *Search) Metric() metrics.SearchMetric {
	return a.searcher.Metric()
}
