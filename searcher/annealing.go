package searcher

import (
	"math"
	"quoridor/experiments/metrics"
	"quoridor/game"

	"golang.org/x/exp/rand"
)

const (
	DefaultAnnealingIterations = 100
	DefaultInnerIterations     = 20
)

type AnnealingConfig struct {
	// TimeFactor scales the temperature, which is TimeFactor * (1 + own goal distance)
	TimeFactor float64
	Iterations int
	// Nested anneals the opponent's best reply before scoring each candidate
	Nested          bool
	InnerIterations int
	// Evaluate scores positions; game.DefaultWeights when nil
	Evaluate game.Evaluate
}

// Annealing is a randomized local search over the root moves using Metropolis acceptance.
type Annealing struct {
	config  AnnealingConfig
	rng     *rand.Rand
	metrics metrics.Collector
	last    metrics.SearchMetric
}

func NewAnnealing(config AnnealingConfig, rng *rand.Rand) *Annealing {
	if config.Iterations <= 0 {
		config.Iterations = DefaultAnnealingIterations
	}
	if config.InnerIterations <= 0 {
		config.InnerIterations = DefaultInnerIterations
	}
	if config.Evaluate == nil {
		config.Evaluate = game.DefaultWeights.Evaluate
	}
	return &Annealing{config: config, rng: rng, metrics: metrics.NewCollector()}
}

func (a *Annealing) Metric() metrics.SearchMetric {
	return a.last
}

func (a *Annealing) Search(state *game.State) (string, bool) {
	algorithm := "annealing"
	if a.config.Nested {
		algorithm = "nested_annealing"
	}
	a.metrics.Start(algorithm, a.config.Iterations)
	defer func() { a.last = a.metrics.Complete() }()

	player := state.Active()
	pawns := state.LegalPawnMoveNotations(player)
	if move, ok := immediateWin(state, pawns); ok {
		return move, true
	}
	moves := append(pawns, state.LegalWalls(player)...)
	if len(moves) == 0 {
		return "", false
	}

	temperature := a.config.TimeFactor * float64(1+state.DistanceToGoal(player))
	scores := make(map[string]float64, a.config.Iterations)
	score := func(move string) float64 {
		if s, ok := scores[move]; ok {
			return s
		}
		s := a.score(child(state, move), player)
		scores[move] = s
		return s
	}

	current := moves[a.rng.Intn(len(moves))]
	currentScore := score(current)
	best, bestScore := current, currentScore
	for i := 0; i < a.config.Iterations; i++ {
		a.metrics.AddEpisode()
		candidate := moves[a.rng.Intn(len(moves))]
		candidateScore := score(candidate)
		if a.accept(candidateScore-currentScore, temperature) {
			current, currentScore = candidate, candidateScore
		}
		if currentScore > bestScore {
			best, bestScore = current, currentScore
		}
	}
	return best, true
}

// accept is the Metropolis criterion for a score change delta.
func (a *Annealing) accept(delta, temperature float64) bool {
	if delta > 0 {
		return true
	}
	if temperature <= 0 {
		return false
	}
	return a.rng.Float64() < math.Exp(delta/temperature)
}

// score evaluates the position after one of player's moves. The nested variant first
// anneals over the opponent's replies and keeps the one that hurts player the most.
func (a *Annealing) score(state *game.State, player game.Player) float64 {
	if !a.config.Nested {
		return a.config.Evaluate(state, player)
	}
	if winner, over := state.Winner(); over {
		if winner == player {
			return a.config.Evaluate(state, player) + WinBonus
		}
		return a.config.Evaluate(state, player) - WinBonus
	}

	opponent := state.Active()
	replies := state.LegalMoves(opponent)
	if len(replies) == 0 {
		return a.config.Evaluate(state, player)
	}
	for _, reply := range state.LegalPawnMoveNotations(opponent) {
		if state.WinCheck(reply) {
			return a.config.Evaluate(child(state, reply), player) - WinBonus
		}
	}

	temperature := a.config.TimeFactor * float64(1+state.DistanceToGoal(opponent))
	current := replies[a.rng.Intn(len(replies))]
	currentScore := a.config.Evaluate(child(state, current), player)
	worst := currentScore
	for i := 0; i < a.config.InnerIterations; i++ {
		candidate := replies[a.rng.Intn(len(replies))]
		candidateScore := a.config.Evaluate(child(state, candidate), player)
		// The opponent gains when player's score drops
		if a.accept(currentScore-candidateScore, temperature) {
			current, currentScore = candidate, candidateScore
		}
		worst = min(worst, currentScore)
	}
	return worst
}
