package agent

import (
	"quoridor/game"

	"golang.org/x/exp/slices"
)

// Mirror shadows the opponent: it walks toward the opponent's position reflected through
// the board centre, copies the opponent's walls once there, and plays Adaptive otherwise.
type Mirror struct {
	base
}

func NewMirror(options ...Option) *Mirror {
	return &Mirror{base: newBase("Mirror", options)}
}

func (a *Mirror) FindMove(state *game.State) (string, bool) {
	if move, ok := a.openingMove(state); ok {
		return move, true
	}
	player := state.Active()

	target := mirrorCell(state.Pawn(player.Opponent()), state.Size())
	if state.Pawn(player) != target {
		if move, ok := moveToward(state, player, target); ok {
			return move, true
		}
	}
	if wall, ok := mirrorWall(state, player); ok {
		return wall, true
	}
	return a.adapt(state)
}

func mirrorCell(c game.Coord, size int) game.Coord {
	return game.Coord{Row: size - 1 - c.Row, Col: size - 1 - c.Col}
}

// moveToward picks the pawn move closest to target in Manhattan distance, preferring
// moves that also step toward the goal row.
func moveToward(state *game.State, player game.Player, target game.Coord) (string, bool) {
	current := state.Pawn(player)
	goalRow := state.Goals(player)[0].Row

	best, bestScore := game.Coord{}, -1
	for _, c := range state.LegalPawnMoves(player) {
		score := abs(c.Row-target.Row) + abs(c.Col-target.Col)
		if abs(c.Row-goalRow) < abs(current.Row-goalRow) && score > 0 {
			score--
		}
		if bestScore < 0 || score < bestScore {
			best, bestScore = c, score
		}
	}
	if bestScore < 0 {
		return "", false
	}
	return state.Algebraic(best), true
}

// mirrorWall returns a legal wall that reflects an existing one through the board centre.
func mirrorWall(state *game.State, player game.Player) (string, bool) {
	if state.WallStock(player) == 0 {
		return "", false
	}
	size := state.Size()
	mirrored := func(c game.Coord) game.Coord {
		// An anchor is the bottom-left cell of the 2x2 block its wall borders.
		return game.Coord{Row: size - c.Row, Col: size - 2 - c.Col}
	}

	legal := state.LegalWalls(player)
	for _, w := range state.HorizontalWalls() {
		if move := state.Algebraic(mirrored(w)) + "h"; slices.Contains(legal, move) {
			return move, true
		}
	}
	for _, w := range state.VerticalWalls() {
		if move := state.Algebraic(mirrored(w)) + "v"; slices.Contains(legal, move) {
			return move, true
		}
	}
	return "", false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
