package agent

import (
	"quoridor/game"
	"quoridor/searcher"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	DefaultMinimaxDepth    = 1
	DefaultDeepeningDepth  = 3
	DefaultTimeFactor      = 1.0
	DefaultMCTSSimulations = 1000
	minimaxPrefix          = "Minimax"
	annealingPrefix        = "SimulatedAnnealing"
	nestedAnnealingPrefix  = "NestedAnnealing"
	deepeningPrefix        = "ProgressiveDeepening"
	mctsPrefix             = "MCTS"
)

// New builds the strategy called name, loaded with the moves of the named opening for
// player. Parameterised strategies carry their parameter as a suffix: "Minimax2",
// "SimulatedAnnealing1.5", "ProgressiveDeepening3", "MCTS500" or "MCTS20k".
func New(name, opening string, player game.Player, options ...Option) Agent {
	options = append([]Option{WithOpening(opening, OpeningMoves(opening, player))}, options...)

	switch name {
	case "Random":
		return NewRandom(options...)
	case "ShortestPath":
		return NewShortestPath(options...)
	case "Defensive":
		return NewDefensive(DefaultWallPreference, options...)
	case "Balanced":
		return NewBalanced(DefaultDefenseWeight, options...)
	case "Adaptive":
		return NewAdaptive(options...)
	case "Mirror":
		return NewMirror(options...)
	}

	switch {
	case strings.HasPrefix(name, annealingPrefix):
		return NewAnnealing(searcher.AnnealingConfig{
			TimeFactor: parseFloat(name[len(annealingPrefix):], DefaultTimeFactor),
			Evaluate:   game.DefaultWeights.Evaluate,
		}, options...)
	case strings.HasPrefix(name, nestedAnnealingPrefix):
		return NewAnnealing(searcher.AnnealingConfig{
			TimeFactor: parseFloat(name[len(nestedAnnealingPrefix):], DefaultTimeFactor),
			Nested:     true,
			Evaluate:   game.DefaultWeights.Evaluate,
		}, options...)
	case strings.HasPrefix(name, minimaxPrefix):
		return NewMinimax(parseInt(name[len(minimaxPrefix):], DefaultMinimaxDepth), game.DefaultWeights, options...)
	case strings.HasPrefix(name, deepeningPrefix):
		return NewProgressiveDeepening(parseInt(name[len(deepeningPrefix):], DefaultDeepeningDepth), game.PaperWeights, options...)
	case strings.HasPrefix(name, mctsPrefix):
		return NewMCTS(parseSimulations(name[len(mctsPrefix):]), 0, options...)
	}

	log.Warn().Msgf("Unknown strategy %q, falling back to Random", name)
	return NewRandom(options...)
}

func parseInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

func parseFloat(s string, fallback float64) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return fallback
	}
	return f
}

// parseSimulations reads "500" as 500 and "20k" as 20000.
func parseSimulations(s string) int {
	multiplier := 1
	if strings.HasSuffix(s, "k") || strings.HasSuffix(s, "K") {
		multiplier, s = 1000, s[:len(s)-1]
	}
	return parseInt(s, DefaultMCTSSimulations/multiplier) * multiplier
}
