package agent

import (
	"quoridor/experiments/metrics"
	"quoridor/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustState(t *testing.T, snapshot string) *game.State {
	t.Helper()
	s, err := game.FromString(9, 10, snapshot)
	require.NoError(t, err)
	return s
}

func TestOpening(t *testing.T) {
	t.Run("plays the book first", func(t *testing.T) {
		a := New("Random", "No Opening", game.Player1, WithSeed(1))
		move, ok := a.FindMove(game.New(9, 10))
		require.True(t, ok)
		require.Equal(t, "e2", move, "Should play the opening move before anything else")
		require.Equal(t, "Random-No Opening", a.Name())
	})

	t.Run("skips illegal book moves", func(t *testing.T) {
		a := NewShortestPath(WithOpening("Test", []string{"e5", "e3"}))
		state := game.New(9, 10)

		move, ok := a.FindMove(state)
		require.True(t, ok)
		require.Equal(t, "e2", move, "Should fall through to the strategy on an illegal book move")

		ok, err := state.Play(move)
		require.NoError(t, err)
		require.True(t, ok)
		ok, err = state.Play("e8")
		require.NoError(t, err)
		require.True(t, ok)

		move, _ = a.FindMove(state)
		require.Equal(t, "e3", move, "Should resume the book with the next scripted move")
		require.Equal(t, 2, a.played)
	})

	t.Run("book per player", func(t *testing.T) {
		require.Equal(t, []string{"e2", "e3", "d2h"}, OpeningMoves("Stonewall", game.Player1))
		require.Equal(t, []string{"e8", "e7"}, OpeningMoves("Stonewall", game.Player2))
		require.Nil(t, OpeningMoves("Shatranj Opening", game.Player2))
		require.Nil(t, OpeningMoves("Unknown", game.Player1))
		require.Len(t, Openings(), 16)
	})

	t.Run("returns a copy", func(t *testing.T) {
		moves := OpeningMoves("No Opening", game.Player1)
		moves[0] = "a1"
		require.Equal(t, []string{"e2"}, OpeningMoves("No Opening", game.Player1))
	})
}

func TestFactory(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"Random", "Random"},
		{"ShortestPath", "ShortestPath"},
		{"Defensive", "Defensive"},
		{"Balanced", "Balanced"},
		{"Adaptive", "Adaptive"},
		{"Mirror", "Mirror"},
		{"Minimax2", "Minimax2"},
		{"Minimax", "Minimax1"},
		{"SimulatedAnnealing1.5", "SimulatedAnnealing1.5"},
		{"SimulatedAnnealing", "SimulatedAnnealing1"},
		{"NestedAnnealing2", "NestedAnnealing2"},
		{"ProgressiveDeepening", "ProgressiveDeepening3"},
		{"ProgressiveDeepening2", "ProgressiveDeepening2"},
		{"MCTS500", "MCTS500"},
		{"MCTS20k", "MCTS20k"},
		{"MCTS", "MCTS1k"},
		{"Bogus", "Random"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			a := New(test.name, "", game.Player1, WithSeed(1))
			require.Equal(t, test.expected, a.Name())
		})
	}

	t.Run("search agents report metrics", func(t *testing.T) {
		a := New("Minimax1", "", game.Player1)
		reporter, ok := a.(Reporter)
		require.True(t, ok, "Search agents should report their search")
		_, ok = a.FindMove(game.New(9, 10))
		require.True(t, ok)
		require.Equal(t, "minimax", reporter.Metric().Algorithm)

		_, ok = New("Random", "", game.Player1).(Reporter)
		require.False(t, ok, "Heuristic agents have no search to report")
	})
}

type fixedSearcher struct {
	move     string
	searches int
}

func (s *fixedSearcher) Search(*game.State) (string, bool) {
	s.searches++
	return s.move, true
}

func (s *fixedSearcher) Metric() metrics.SearchMetric {
	return metrics.SearchMetric{Algorithm: "fixed", Episodes: s.searches}
}

func TestSearch(t *testing.T) {
	s := &fixedSearcher{move: "d1"}
	a := NewSearch("Fixed", s, WithOpening("Test", []string{"e2"}))
	require.Equal(t, "Fixed-Test", a.Name())

	state := game.New(9, 10)
	move, ok := a.FindMove(state)
	require.True(t, ok)
	require.Equal(t, "e2", move, "Book moves come before the search")
	require.Zero(t, s.searches)

	_, err := state.Play(move)
	require.NoError(t, err)
	_, err = state.Play("e8")
	require.NoError(t, err)

	move, ok = a.FindMove(state)
	require.True(t, ok)
	require.Equal(t, "d1", move)
	require.Equal(t, metrics.SearchMetric{Algorithm: "fixed", Episodes: 1}, a.Metric())
}

func TestShortestPath(t *testing.T) {
	t.Run("moves forward", func(t *testing.T) {
		move, ok := NewShortestPath().FindMove(game.New(9, 10))
		require.True(t, ok)
		require.Equal(t, "e2", move)
	})

	t.Run("takes the win", func(t *testing.T) {
		move, ok := NewShortestPath().FindMove(mustState(t, " / / e8 a1 / 10 10 / 1"))
		require.True(t, ok)
		require.Equal(t, "e9", move)
	})

	t.Run("walks around a wall", func(t *testing.T) {
		move, ok := NewShortestPath().FindMove(mustState(t, "e1 / / e1 a9 / 10 10 / 1"))
		require.True(t, ok)
		require.Equal(t, "d1", move, "Should step around the wall on the shorter side")
	})
}

func TestDefensive(t *testing.T) {
	t.Run("walls lengthen the opponent's path", func(t *testing.T) {
		state := game.New(9, 10)
		before := state.DistanceToGoal(game.Player2)

		move, ok := NewDefensive(1, WithSeed(3)).FindMove(state)
		require.True(t, ok)
		require.True(t, game.IsWallNotation(move), "Should always place a wall with preference 1, got %s", move)

		ok, err := state.Play(move)
		require.NoError(t, err)
		require.True(t, ok)
		require.Greater(t, state.DistanceToGoal(game.Player2), before)
	})

	t.Run("races without preference", func(t *testing.T) {
		move, ok := NewDefensive(0, WithSeed(3)).FindMove(game.New(9, 10))
		require.True(t, ok)
		require.Equal(t, "e2", move)
	})

	t.Run("races without walls", func(t *testing.T) {
		move, ok := NewDefensive(1, WithSeed(3)).FindMove(mustState(t, " / / e1 e9 / 0 10 / 1"))
		require.True(t, ok)
		require.Equal(t, "e2", move)
	})

	t.Run("wins before defending", func(t *testing.T) {
		move, ok := NewDefensive(1, WithSeed(3)).FindMove(mustState(t, " / / e8 a2 / 10 10 / 1"))
		require.True(t, ok)
		require.Equal(t, "e9", move)
	})
}

func TestAdaptive(t *testing.T) {
	t.Run("races when ahead", func(t *testing.T) {
		move, ok := NewAdaptive(WithSeed(1)).FindMove(mustState(t, " / / e5 e9 / 10 10 / 1"))
		require.True(t, ok)
		require.Equal(t, "e6", move)
	})

	t.Run("defends when behind", func(t *testing.T) {
		state := mustState(t, " / / e1 e2 / 10 10 / 1")
		for seed := uint64(1); seed <= 5; seed++ {
			move, ok := NewAdaptive(WithSeed(seed)).FindMove(state)
			require.True(t, ok)
			if game.IsWallNotation(move) {
				return
			}
		}
		require.Fail(t, "Should place a wall for at least one seed when behind")
	})
}

func TestMirror(t *testing.T) {
	t.Run("walks toward the reflected cell", func(t *testing.T) {
		move, ok := NewMirror().FindMove(mustState(t, " / / e1 d8 / 10 10 / 1"))
		require.True(t, ok)
		require.Equal(t, "e2", move)
	})

	t.Run("copies walls once in place", func(t *testing.T) {
		move, ok := NewMirror().FindMove(mustState(t, "c3 / / e1 e9 / 10 9 / 1"))
		require.True(t, ok)
		require.Equal(t, "f6h", move)
	})

	t.Run("reflection", func(t *testing.T) {
		require.Equal(t, game.Coord{Row: 8, Col: 4}, mirrorCell(game.Coord{Row: 0, Col: 4}, 9))
		require.Equal(t, game.Coord{Row: 0, Col: 0}, mirrorCell(game.Coord{Row: 8, Col: 8}, 9))
	})
}

func TestAgentsPlayLegalMoves(t *testing.T) {
	names := []string{"Random", "ShortestPath", "Defensive", "Balanced", "Adaptive", "Mirror", "Minimax1", "SimulatedAnnealing1", "MCTS20"}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			agents := map[game.Player]Agent{
				game.Player1: New(name, "Standard Opening", game.Player1, WithSeed(7)),
				game.Player2: New(name, "Standard Opening", game.Player2, WithSeed(8)),
			}
			state := game.New(9, 10)
			for ply := 0; ply < 12; ply++ {
				if _, over := state.Winner(); over {
					return
				}
				move, ok := agents[state.Active()].FindMove(state)
				require.True(t, ok, "%s should find a move in %s", name, state.String())
				ok, err := state.Play(move)
				require.NoError(t, err)
				require.True(t, ok, "%s played illegal move %s in %s", name, move, state.Previous())
			}
		})
	}
}
