package searcher

import (
	"quoridor/experiments/metrics"
	"quoridor/game"

	"golang.org/x/exp/slices"
)

// Minimax is a fixed-depth alpha-beta search over pawn moves and a pre-filtered set of walls.
type Minimax struct {
	depth    int
	evaluate game.Evaluate
	metrics  metrics.Collector
	last     metrics.SearchMetric
}

// NewMinimax scores leaves with evaluate, or with game.DefaultWeights when it is nil.
func NewMinimax(depth int, evaluate game.Evaluate) *Minimax {
	if depth < 1 {
		depth = 1
	}
	if evaluate == nil {
		evaluate = game.DefaultWeights.Evaluate
	}
	return &Minimax{depth: depth, evaluate: evaluate, metrics: metrics.NewCollector()}
}

func (m *Minimax) Metric() metrics.SearchMetric {
	return m.last
}

func (m *Minimax) Search(state *game.State) (string, bool) {
	m.metrics.Start("minimax", m.depth)
	defer func() { m.last = m.metrics.Complete() }()

	player := state.Active()
	pawns := state.LegalPawnMoveNotations(player)
	if move, ok := immediateWin(state, pawns); ok {
		return move, true
	}
	moves := append(pawns, candidateWalls(state, player)...)
	if len(moves) == 0 {
		return "", false
	}

	best, bestScore := moves[0], negInf
	for _, move := range moves {
		score := m.minimax(child(state, move), player, m.depth-1, bestScore, posInf, false)
		if score > bestScore {
			best, bestScore = move, score
		}
	}
	return best, true
}

// minimax scores state for perspective, searching depth more plies.
func (m *Minimax) minimax(state *game.State, perspective game.Player, depth int, alpha, beta float64, maximizing bool) float64 {
	m.metrics.AddEpisode()
	if depth <= 0 {
		return m.evaluate(state, perspective)
	}
	if winner, over := state.Winner(); over {
		if winner == perspective {
			return m.evaluate(state, perspective) + WinBonus
		}
		return m.evaluate(state, perspective) - WinBonus
	}

	mover := state.Active()
	moves := append(state.LegalPawnMoveNotations(mover), candidateWalls(state, mover)...)
	if len(moves) == 0 {
		return m.evaluate(state, perspective)
	}

	if maximizing {
		value := negInf
		for _, move := range moves {
			value = max(value, m.minimax(child(state, move), perspective, depth-1, alpha, beta, false))
			alpha = max(alpha, value)
			if beta <= alpha {
				break
			}
		}
		return value
	}

	value := posInf
	for _, move := range moves {
		value = min(value, m.minimax(child(state, move), perspective, depth-1, alpha, beta, true))
		beta = min(beta, value)
		if beta <= alpha {
			break
		}
	}
	return value
}

type rankedWall struct {
	move string
	gain int
}

// candidateWalls returns every legal wall for mover, or, when there are more than
// WallCandidates, the walls that lengthen the opponent's path the most.
func candidateWalls(state *game.State, mover game.Player) []string {
	walls := state.LegalWalls(mover)
	if len(walls) <= WallCandidates {
		return walls
	}

	opponent := mover.Opponent()
	base := state.DistanceToGoal(opponent)
	ranked := make([]rankedWall, 0, len(walls))
	for _, wall := range walls {
		if gain := child(state, wall).DistanceToGoal(opponent) - base; gain > 0 {
			ranked = append(ranked, rankedWall{move: wall, gain: gain})
		}
	}
	slices.SortStableFunc(ranked, func(a, b rankedWall) int {
		return b.gain - a.gain
	})
	if len(ranked) > WallCandidates {
		ranked = ranked[:WallCandidates]
	}

	candidates := make([]string, len(ranked))
	for i, r := range ranked {
		candidates[i] = r.move
	}
	return candidates
}
