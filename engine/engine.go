package engine

import (
	"quoridor/experiments/metrics"
	"quoridor/game"
)

type Reason string

const (
	Goal    Reason = "goal"     // The winner reached its goal row
	NoMove  Reason = "no_move"  // The loser had no move to play
	Forfeit Reason = "forfeit"  // The loser chose a move the rules reject
	MoveCap Reason = "move_cap" // Drawn after too many moves
)

// Result describes how a game ended. Winner is zero on a draw.
type Result struct {
	Winner game.Player
	Reason Reason
	Moves  []string
}

func (r Result) Draw() bool {
	return r.Winner == 0
}

type Engine interface {
	// Run plays a game till a player wins or the move cap is reached
	Run() (Result, metrics.GameMetric, []metrics.MoveMetric)
}
