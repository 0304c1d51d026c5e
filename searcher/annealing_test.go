package searcher

import (
	"quoridor/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAnnealingAccept(t *testing.T) {
	a := NewAnnealing(AnnealingConfig{TimeFactor: 1, Evaluate: game.DefaultWeights.Evaluate}, seeded(1))

	require.True(t, a.accept(0.5, 1), "Improvements should always be accepted")
	require.False(t, a.accept(-0.5, 0), "Zero temperature should be greedy")

	accepted := 0
	for i := 0; i < 1000; i++ {
		if a.accept(-1, 1) {
			accepted++
		}
	}
	require.InDelta(t, 368, accepted, 60, "Worse moves should be accepted with probability exp(delta/T)")
}

func TestAnnealingSearch(t *testing.T) {
	t.Run("defaults iteration budgets", func(t *testing.T) {
		a := NewAnnealing(AnnealingConfig{TimeFactor: 1}, seeded(1))
		require.Equal(t, DefaultAnnealingIterations, a.config.Iterations)
		require.Equal(t, DefaultInnerIterations, a.config.InnerIterations)
		require.NotNil(t, a.config.Evaluate, "A missing evaluation should fall back to the default weights")
	})

	t.Run("scores with the configured evaluation", func(t *testing.T) {
		calls := 0
		evaluate := func(s *game.State, p game.Player) float64 {
			calls++
			return float64(s.Pawn(p).Col)
		}
		a := NewAnnealing(AnnealingConfig{TimeFactor: 1, Iterations: 10, Evaluate: evaluate}, seeded(7))
		_, ok := a.Search(game.New(9, 10))
		require.True(t, ok)
		require.Positive(t, calls)
	})

	t.Run("takes an immediate win", func(t *testing.T) {
		state := mustState(t, " / / e8 a5 / 10 10 / 1")
		a := NewAnnealing(AnnealingConfig{TimeFactor: 1, Evaluate: game.DefaultWeights.Evaluate}, seeded(2))

		move, ok := a.Search(state)
		require.True(t, ok)
		require.Equal(t, "e9", move)
	})

	t.Run("reports no move when boxed in", func(t *testing.T) {
		a := NewAnnealing(AnnealingConfig{TimeFactor: 1, Evaluate: game.DefaultWeights.Evaluate}, seeded(3))
		_, ok := a.Search(mustState(t, boxed))
		require.False(t, ok)
	})

	t.Run("single ply returns a legal move within its budget", func(t *testing.T) {
		state := game.New(9, 10)
		a := NewAnnealing(AnnealingConfig{TimeFactor: 1.5, Iterations: 50, Evaluate: game.DefaultWeights.Evaluate}, seeded(4))

		move, ok := a.Search(state)
		require.True(t, ok)
		require.Contains(t, state.LegalMoves(game.Player1), move)
		require.Equal(t, 50, a.Metric().Episodes)
		require.Equal(t, "annealing", a.Metric().Algorithm)
	})

	t.Run("nested variant returns a legal move", func(t *testing.T) {
		state := mustState(t, "e3 / c5 / e4 e6 / 9 9 / 2")
		a := NewAnnealing(AnnealingConfig{
			TimeFactor:      1,
			Iterations:      15,
			Nested:          true,
			InnerIterations: 5,
			Evaluate:        game.DefaultWeights.Evaluate,
		}, seeded(5))

		move, ok := a.Search(state)
		require.True(t, ok)
		require.Contains(t, state.LegalMoves(game.Player2), move)
		require.Equal(t, "nested_annealing", a.Metric().Algorithm)
	})

	t.Run("nested scoring punishes allowing a winning reply", func(t *testing.T) {
		state := mustState(t, " / / e5 d2 / 10 10 / 1")
		a := NewAnnealing(AnnealingConfig{TimeFactor: 1, Nested: true, Evaluate: game.DefaultWeights.Evaluate}, seeded(6))

		after := child(state, "e6")
		require.Less(t, a.score(after, game.Player1), -WinBonus/2, "Player2 can win next move")
	})
}
