package engine

import (
	"bytes"
	"quoridor/game"
	"quoridor/searcher/agent"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// scripted plays its moves in order, cycling when cycle is set.
type scripted struct {
	name  string
	moves []string
	cycle bool
	next  int
}

func (s *scripted) Name() string {
	return s.name
}

func (s *scripted) FindMove(state *game.State) (string, bool) {
	if s.next >= len(s.moves) {
		if !s.cycle || len(s.moves) == 0 {
			return "", false
		}
		s.next = 0
	}
	move := s.moves[s.next]
	s.next++
	return move, true
}

func TestLocalRun(t *testing.T) {
	t.Run("shortest paths race", func(t *testing.T) {
		e := NewLocal(game.New(9, 10), agent.NewShortestPath(), agent.NewShortestPath())
		result, gameMetric, moveMetrics := e.Run()

		// Player2 jumps over Player1 in the middle of the board and arrives first
		require.Equal(t, game.Player2, result.Winner)
		require.Equal(t, Goal, result.Reason)
		require.Len(t, result.Moves, 14)
		require.Equal(t, "e1", result.Moves[13])
		require.Equal(t, 2, gameMetric.Winner)
		require.Equal(t, "goal", gameMetric.Reason)
		require.Equal(t, 14, gameMetric.TotalMoves)
		require.Equal(t, "ShortestPath", gameMetric.StartingStrategy)
		require.Empty(t, moveMetrics, "Heuristic agents should not report search metrics")
	})

	t.Run("no move loses", func(t *testing.T) {
		e := NewLocal(game.New(9, 10), &scripted{name: "A", moves: []string{"e2"}}, &scripted{name: "B"})
		result, _, _ := e.Run()
		require.Equal(t, game.Player1, result.Winner)
		require.Equal(t, NoMove, result.Reason)
		require.Equal(t, []string{"e2"}, result.Moves)
	})

	t.Run("rejected move forfeits", func(t *testing.T) {
		tests := []string{"e5", "z9", "a9h"}
		for _, move := range tests {
			e := NewLocal(game.New(9, 10), &scripted{name: "A", moves: []string{move}}, &scripted{name: "B"})
			result, _, _ := e.Run()
			require.Equal(t, game.Player2, result.Winner, "%s should forfeit", move)
			require.Equal(t, Forfeit, result.Reason)
			require.Empty(t, result.Moves)
		}
	})

	t.Run("move cap draws", func(t *testing.T) {
		e := NewLocal(game.New(9, 10),
			&scripted{name: "A", moves: []string{"d1", "e1"}, cycle: true},
			&scripted{name: "B", moves: []string{"d9", "e9"}, cycle: true},
			WithMaxMoves(10),
		)
		result, gameMetric, _ := e.Run()
		require.True(t, result.Draw())
		require.Equal(t, MoveCap, result.Reason)
		require.Len(t, result.Moves, 11)
		require.Equal(t, 0, gameMetric.Winner)
	})

	t.Run("finished position", func(t *testing.T) {
		state, err := game.FromString(9, 10, " / / e9 a1 / 10 10 / 2")
		require.NoError(t, err)
		result, _, _ := NewLocal(state, agent.NewRandom(), agent.NewRandom()).Run()
		require.Equal(t, game.Player1, result.Winner)
		require.Empty(t, result.Moves)
	})

	t.Run("records search metrics", func(t *testing.T) {
		e := NewLocal(game.New(9, 10), agent.NewMinimax(1, game.DefaultWeights), agent.NewShortestPath(), WithMaxMoves(4))
		result, _, moveMetrics := e.Run()
		require.Len(t, result.Moves, 5)
		require.Len(t, moveMetrics, 3, "Only the searching agent should report")
		for i, m := range moveMetrics {
			require.Equal(t, 2*i+1, m.Step)
			require.Equal(t, 1, m.Player)
			require.Equal(t, result.Moves[2*i], m.Move)
			require.Equal(t, "minimax", m.Algorithm)
		}
	})

	t.Run("renders every move", func(t *testing.T) {
		var board bytes.Buffer
		e := NewLocal(game.New(9, 10),
			&scripted{name: "A", moves: []string{"e2"}},
			&scripted{name: "B"},
			WithBoard(&board, false),
		)
		e.Run()
		require.Contains(t, board.String(), "2 . . . . 1 . . . .")
	})
}

func TestRender(t *testing.T) {
	state, err := game.FromString(9, 10, "e1 / a5 / e1 e9 / 9 9 / 1")
	require.NoError(t, err)
	lines := strings.Split(Render(state, false), "\n")

	require.Equal(t, "9 . . . . 2 . . . .", lines[0])
	require.Equal(t, "5 .|. . . . . . . .", lines[8], "Vertical wall a5 separates a5 from b5")
	require.Equal(t, "6 .|. . . . . . . .", lines[6], "Vertical wall a5 separates a6 from b6")
	require.Equal(t, "          - -      ", lines[15], "Horizontal wall e1 separates e1 and f1 from the rank above")
	require.Equal(t, "1 . . . . 1 . . . .", lines[16])
	require.Equal(t, "  a b c d e f g h i", lines[17])
	require.Equal(t, state.String(), lines[18])
}
