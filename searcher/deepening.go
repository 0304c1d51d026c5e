package searcher

import (
	"quoridor/experiments/metrics"
	"quoridor/game"

	"golang.org/x/exp/slices"
)

// ProgressiveDeepening ranks every root move with a static evaluation, then spends deeper
// alpha-beta searches on a widening set of the best ranked moves: depth d re-scores the
// top d-1 moves.
type ProgressiveDeepening struct {
	maxDepth int
	minimax  *Minimax
	last     metrics.SearchMetric
}

func NewProgressiveDeepening(maxDepth int, evaluate game.Evaluate) *ProgressiveDeepening {
	if maxDepth < 1 {
		maxDepth = 1
	}
	return &ProgressiveDeepening{maxDepth: maxDepth, minimax: NewMinimax(maxDepth, evaluate)}
}

func (p *ProgressiveDeepening) Metric() metrics.SearchMetric {
	return p.last
}

type scoredMove struct {
	move  string
	score float64
}

func (p *ProgressiveDeepening) Search(state *game.State) (string, bool) {
	m := p.minimax
	m.metrics.Start("progressive_deepening", p.maxDepth)
	defer func() { p.last = m.metrics.Complete() }()

	player := state.Active()
	pawns := state.LegalPawnMoveNotations(player)
	if move, ok := immediateWin(state, pawns); ok {
		return move, true
	}
	moves := append(pawns, candidateWalls(state, player)...)
	if len(moves) == 0 {
		return "", false
	}

	ranked := make([]scoredMove, len(moves))
	for i, move := range moves {
		ranked[i] = scoredMove{move: move, score: m.minimax(child(state, move), player, 0, negInf, posInf, false)}
	}
	slices.SortStableFunc(ranked, func(a, b scoredMove) int {
		switch {
		case a.score > b.score:
			return -1
		case a.score < b.score:
			return 1
		}
		return 0
	})

	best := ranked[0].move
	for depth := 2; depth <= p.maxDepth; depth++ {
		width := min(depth-1, len(ranked))
		bestScore := negInf
		for _, r := range ranked[:width] {
			score := m.minimax(child(state, r.move), player, depth-1, bestScore, posInf, false)
			if score > bestScore {
				best, bestScore = r.move, score
			}
		}
	}
	return best, true
}
