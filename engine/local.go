package engine

import (
	"fmt"
	"io"
	"quoridor/experiments/metrics"
	"quoridor/game"
	"quoridor/meta"
	"quoridor/searcher/agent"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	MaxMoves      = meta.MAX_MOVES
	DebugMaxMoves = meta.DEBUG_MAX_MOVES
)

// Local plays two in-process agents against each other. Player1 moves first.
type Local struct {
	State    *game.State
	Agents   [2]agent.Agent // Indexed by player ID - 1
	maxMoves int
	board    io.Writer
	colors   bool
}

type Option func(e *Local)

// WithMaxMoves draws the game once more than n moves have been played.
func WithMaxMoves(n int) Option {
	return func(e *Local) {
		if n > 0 {
			e.maxMoves = n
		}
	}
}

// WithBoard renders the board to w after every move.
func WithBoard(w io.Writer, colors bool) Option {
	return func(e *Local) {
		e.board = w
		e.colors = colors
	}
}

func NewLocal(state *game.State, first, second agent.Agent, options ...Option) *Local {
	if first == nil || second == nil {
		panic("need two agents")
	}
	e := &Local{
		State:    state,
		Agents:   [2]agent.Agent{first, second},
		maxMoves: MaxMoves,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *Local) agent(p game.Player) agent.Agent {
	return e.Agents[p-1]
}

// Run executes the game loop until a player wins, forfeits or the move cap is exceeded.
func (e *Local) Run() (Result, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingStrategy: e.Agents[0].Name(),
		StartTime:        time.Now(),
	}
	var moveMetrics []metrics.MoveMetric
	result := e.play(&moveMetrics)

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.Winner = int(result.Winner)
	gameMetric.Reason = string(result.Reason)
	gameMetric.TotalMoves = len(result.Moves)

	if result.Draw() {
		log.Info().Msgf("%s vs %s drawn after %d moves", e.Agents[0].Name(), e.Agents[1].Name(), len(result.Moves))
	} else {
		log.Info().Msgf("%s (%s) wins by %s after %d moves", e.agent(result.Winner).Name(), result.Winner, result.Reason, len(result.Moves))
	}
	return result, gameMetric, moveMetrics
}

func (e *Local) play(moveMetrics *[]metrics.MoveMetric) Result {
	var moves []string
	if winner, over := e.State.Winner(); over {
		return Result{Winner: winner, Reason: Goal}
	}

	for {
		player := e.State.Active()
		current := e.agent(player)

		move, ok := current.FindMove(e.State)
		if !ok {
			log.Debug().Msgf("%s has no move", current.Name())
			return Result{Winner: player.Opponent(), Reason: NoMove, Moves: moves}
		}
		if reporter, ok := current.(agent.Reporter); ok {
			*moveMetrics = append(*moveMetrics, metrics.MoveMetric{
				Step:         len(moves) + 1,
				Player:       int(player),
				Move:         move,
				SearchMetric: reporter.Metric(),
			})
		}

		won := e.State.WinCheck(move)
		applied, err := e.State.Play(move)
		if err != nil || !applied {
			log.Warn().Err(err).Msgf("%s played rejected move %s in %q", current.Name(), move, e.State.String())
			return Result{Winner: player.Opponent(), Reason: Forfeit, Moves: moves}
		}
		moves = append(moves, move)
		log.Debug().Msgf("turn %d: %s (%s) plays %s", len(moves), current.Name(), player, move)
		if e.board != nil {
			fmt.Fprintln(e.board, Render(e.State, e.colors))
		}

		if won {
			return Result{Winner: player, Reason: Goal, Moves: moves}
		}
		if len(moves) > e.maxMoves {
			return Result{Reason: MoveCap, Moves: moves}
		}
	}
}
