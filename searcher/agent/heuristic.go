package agent

import "quoridor/game"

const (
	DefaultWallPreference = 0.7
	DefaultDefenseWeight  = 0.5
)

// Random plays uniformly among every legal pawn move and wall placement.
type Random struct {
	base
}

func NewRandom(options ...Option) *Random {
	return &Random{base: newBase("Random", options)}
}

func (a *Random) FindMove(state *game.State) (string, bool) {
	if move, ok := a.openingMove(state); ok {
		return move, true
	}
	return a.pick(state.LegalMoves(state.Active()))
}

// ShortestPath plays the pawn move that leaves it closest to its goal.
type ShortestPath struct {
	base
}

func NewShortestPath(options ...Option) *ShortestPath {
	return &ShortestPath{base: newBase("ShortestPath", options)}
}

func (a *ShortestPath) FindMove(state *game.State) (string, bool) {
	if move, ok := a.openingMove(state); ok {
		return move, true
	}
	return shortestPathMove(state)
}

func shortestPathMove(state *game.State) (string, bool) {
	player := state.Active()
	best, bestDistance := "", state.Unreachable()+1
	for _, move := range state.LegalPawnMoveNotations(player) {
		if state.WinCheck(move) {
			return move, true
		}
		next := state.Clone()
		if _, err := next.MovePawn(move, false); err != nil {
			continue
		}
		if d := next.DistanceToGoal(player); d < bestDistance {
			best, bestDistance = move, d
		}
	}
	return best, best != ""
}

// Defensive places a wall that lengthens the opponent's path with probability
// wallPreference and otherwise races like ShortestPath.
type Defensive struct {
	base
	wallPreference float64
}

func NewDefensive(wallPreference float64, options ...Option) *Defensive {
	return &Defensive{base: newBase("Defensive", options), wallPreference: wallPreference}
}

func (a *Defensive) FindMove(state *game.State) (string, bool) {
	if move, ok := a.openingMove(state); ok {
		return move, true
	}
	return a.defend(state, a.wallPreference)
}

func (b *base) defend(state *game.State, wallPreference float64) (string, bool) {
	player := state.Active()
	if move, ok := winningMove(state); ok {
		return move, true
	}
	if state.WallStock(player) > 0 && b.rng.Float64() < wallPreference {
		if wall, ok := b.pick(blockingWalls(state, player)); ok {
			return wall, true
		}
	}
	return shortestPathMove(state)
}

// blockingWalls returns the legal walls that strictly lengthen the opponent's path.
func blockingWalls(state *game.State, player game.Player) []string {
	opponent := player.Opponent()
	current := state.DistanceToGoal(opponent)
	var walls []string
	for _, wall := range state.LegalWalls(player) {
		next := state.Clone()
		if ok, _ := next.AddWall(wall, false, false); !ok {
			continue
		}
		if next.DistanceToGoal(opponent) > current {
			walls = append(walls, wall)
		}
	}
	return walls
}

func winningMove(state *game.State) (string, bool) {
	for _, move := range state.LegalPawnMoveNotations(state.Active()) {
		if state.WinCheck(move) {
			return move, true
		}
	}
	return "", false
}

// Balanced defends with probability defenseWeight while it has walls and races otherwise.
type Balanced struct {
	base
	defenseWeight float64
}

func NewBalanced(defenseWeight float64, options ...Option) *Balanced {
	return &Balanced{base: newBase("Balanced", options), defenseWeight: defenseWeight}
}

func (a *Balanced) FindMove(state *game.State) (string, bool) {
	if move, ok := a.openingMove(state); ok {
		return move, true
	}
	if state.WallStock(state.Active()) > 0 && a.rng.Float64() < a.defenseWeight {
		return a.defend(state, 1.0)
	}
	return shortestPathMove(state)
}

// Adaptive races while strictly ahead and defends otherwise.
type Adaptive struct {
	base
}

func NewAdaptive(options ...Option) *Adaptive {
	return &Adaptive{base: newBase("Adaptive", options)}
}

func (a *Adaptive) FindMove(state *game.State) (string, bool) {
	if move, ok := a.openingMove(state); ok {
		return move, true
	}
	return a.adapt(state)
}

func (b *base) adapt(state *game.State) (string, bool) {
	player := state.Active()
	if state.DistanceToGoal(player) < state.DistanceToGoal(player.Opponent()) {
		return shortestPathMove(state)
	}
	return b.defend(state, DefaultWallPreference)
}
