package searcher

import (
	"fmt"
	"math"
	"quoridor/experiments/metrics"
	"quoridor/game"
)

// Searcher picks a move for the active player of a state.
type Searcher interface {
	// Search returns false only when the active player has no legal move
	Search(state *game.State) (string, bool)
	// Metric describes the most recent search
	Metric() metrics.SearchMetric
}

// WallCandidates bounds the walls considered per node once the legal set grows larger.
const WallCandidates = 20

// WinBonus is added to (or subtracted from) the evaluation of a finished game.
const WinBonus = 1000.0

var (
	negInf = math.Inf(-1)
	posInf = math.Inf(1)
)

// child returns a copy of state with move applied.
func child(state *game.State, move string) *game.State {
	next := state.Clone()
	if _, err := next.Apply(move); err != nil {
		panic(fmt.Sprintf("generated move %q does not parse: %v", move, err))
	}
	return next
}

// immediateWin returns a pawn move that ends the game for the active player.
func immediateWin(state *game.State, pawnMoves []string) (string, bool) {
	for _, move := range pawnMoves {
		if state.WinCheck(move) {
			return move, true
		}
	}
	return "", false
}
