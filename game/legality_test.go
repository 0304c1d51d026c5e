package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestLegalPawnMoves(t *testing.T) {
	t.Run("opening position", func(t *testing.T) {
		s := New(9, 10)
		require.ElementsMatch(t, []string{"e2", "d1", "f1"}, s.LegalPawnMoveNotations(Player1))
		require.ElementsMatch(t, []string{"e8", "d9", "f9"}, s.LegalPawnMoveNotations(Player2))
	})

	t.Run("jump over an adjacent opponent", func(t *testing.T) {
		s := mustState(t, 9, 10, " / / e2 e3 / 10 10 / 1")
		moves := s.LegalPawnMoveNotations(Player1)

		require.Contains(t, moves, "e4", "Player1 should be able to jump over Player2")
		require.NotContains(t, moves, "e3", "Occupied cell should not be a destination")
		require.ElementsMatch(t, []string{"e4", "e1", "d2", "f2"}, moves)
	})

	t.Run("side-step when the jump is walled off", func(t *testing.T) {
		s := mustState(t, 9, 10, "e3 / / e2 e3 / 10 10 / 1")
		moves := s.LegalPawnMoveNotations(Player1)

		require.Contains(t, moves, "d3")
		require.Contains(t, moves, "f3")
		require.NotContains(t, moves, "e4", "Wall behind the opponent should block the jump")
		require.NotContains(t, moves, "e3")
		require.ElementsMatch(t, []string{"d3", "f3", "e1", "d2", "f2"}, moves)
	})

	t.Run("side-step when the jump leaves the board", func(t *testing.T) {
		s := mustState(t, 9, 10, " / / e8 e9 / 10 10 / 1")
		moves := s.LegalPawnMoveNotations(Player1)

		require.ElementsMatch(t, []string{"d9", "f9", "e7", "d8", "f8"}, moves)
	})

	t.Run("walls block plain steps", func(t *testing.T) {
		s := mustState(t, 9, 10, " / d1 / e1 e9 / 10 10 / 1")
		require.ElementsMatch(t, []string{"e2", "f1"}, s.LegalPawnMoveNotations(Player1))
	})
}

func TestWinCheck(t *testing.T) {
	s := mustState(t, 9, 10, " / / e8 a5 / 10 10 / 1")

	require.True(t, s.WinCheck("e9"), "Reaching row 0 should win for Player1")
	require.False(t, s.WinCheck("e7"), "Intermediate rows should not win")
	require.False(t, s.WinCheck("e9h"), "Walls never win")
	require.False(t, s.WinCheck("??"), "Malformed notation should not win")

	s = mustState(t, 9, 10, " / / e5 a2 / 10 10 / 2")
	require.True(t, s.WinCheck("a1"), "Reaching the last row should win for Player2")
	require.False(t, s.WinCheck("a3"))
}

func TestAddWall(t *testing.T) {
	t.Run("spends stock and passes the turn", func(t *testing.T) {
		s := New(9, 10)
		ok, err := s.AddWall("e3h", false, true)
		require.NoError(t, err)
		require.True(t, ok)

		require.Equal(t, 9, s.WallStock(Player1), "Stock should decrease by exactly one")
		require.Equal(t, 10, s.WallStock(Player2))
		require.Equal(t, Player2, s.Active())
		require.Equal(t, []Coord{{Row: 6, Col: 4}}, s.HorizontalWalls())
		require.False(t, s.Graph().HasEdge(Coord{6, 4}, Coord{5, 4}))
		require.False(t, s.Graph().HasEdge(Coord{6, 5}, Coord{5, 5}))
		require.Equal(t, "e3 /  / e1 e9 / 9 10 / 2", s.String())
		require.Equal(t, "e3h", s.LastMove())
	})

	t.Run("rejected placement leaves stock untouched", func(t *testing.T) {
		s := New(9, 10)
		_, err := s.AddWall("e3h", false, true)
		require.NoError(t, err)
		before := s.String()

		ok, err := s.AddWall("e3h", false, true)
		require.NoError(t, err)
		require.False(t, ok, "Overlapping wall should be rejected")
		require.Equal(t, 10, s.WallStock(Player2))
		require.Equal(t, before, s.String())
	})

	t.Run("initializing placement keeps stock and turn", func(t *testing.T) {
		s := New(9, 10)
		ok, err := s.AddWall("c5v", true, false)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, 10, s.WallStock(Player1))
		require.Equal(t, Player1, s.Active())
		require.Equal(t, BlankMove, s.LastMove())
	})

	t.Run("malformed notation", func(t *testing.T) {
		s := New(9, 10)
		_, err := s.AddWall("e3", false, true)
		require.Error(t, err, "Missing orientation should be a parse error")
		_, err = s.AddWall("3eh", false, true)
		require.Error(t, err)
	})

	t.Run("empty stock", func(t *testing.T) {
		s := mustState(t, 9, 10, " / / e1 e9 / 0 10 / 1")
		require.False(t, s.WallCheck(Player1, "e3h"))
		require.Empty(t, s.LegalWalls(Player1))
		ok, err := s.AddWall("e3h", false, false)
		require.NoError(t, err)
		require.False(t, ok, "Unchecked placement should still need stock")
	})
}

func TestWallCheck(t *testing.T) {
	t.Run("crossing walls", func(t *testing.T) {
		s := mustState(t, 9, 10, "e3 / / e1 e9 / 10 10 / 1")
		require.False(t, s.WallCheck(Player1, "e3v"), "Vertical wall should not cross a horizontal one at the same anchor")
		require.True(t, s.WallCheck(Player1, "d3v"), "Adjacent vertical wall should be fine")
	})

	t.Run("overlapping walls", func(t *testing.T) {
		s := mustState(t, 9, 10, "e3 / / e1 e9 / 10 10 / 1")
		require.False(t, s.WallCheck(Player1, "d3h"), "Half-overlapping wall should fail the edge check")
		require.False(t, s.WallCheck(Player1, "f3h"))
		require.True(t, s.WallCheck(Player1, "g3h"), "Abutting wall should be legal")
	})

	t.Run("walls hanging off the board", func(t *testing.T) {
		s := New(9, 10)
		require.False(t, s.WallCheck(Player1, "e9h"), "Horizontal wall on the top rank has nothing to sever")
		require.False(t, s.WallCheck(Player1, "i5h"))
		require.False(t, s.WallCheck(Player1, "i5v"))
		require.False(t, s.WallCheck(Player1, "e9v"))
	})

	t.Run("fully blocking walls", func(t *testing.T) {
		s := New(4, 5)
		ok, err := s.Play("a3h")
		require.NoError(t, err)
		require.True(t, ok)

		require.False(t, s.WallCheck(Player2, "c3h"), "Wall sealing off the goal rows should be illegal")
		require.False(t, s.WallCheck(Player1, "c3h"), "Illegal for either player")
		require.NotContains(t, s.LegalWalls(Player2), "c3h")
	})

	t.Run("malformed notation is illegal", func(t *testing.T) {
		s := New(9, 10)
		require.False(t, s.WallCheck(Player1, "e3"))
		require.False(t, s.WallCheck(Player1, ""))
		require.False(t, s.WallCheck(Player1, "z3h"))
	})

	t.Run("repeated checks agree", func(t *testing.T) {
		s := mustState(t, 9, 10, "e3a2 / c5 / e2 e8 / 8 9 / 1")
		for _, m := range []string{"e3v", "e4h", "c5h", "b2h", "h8v"} {
			first := s.WallCheck(Player1, m)
			require.Equal(t, first, s.WallCheck(Player1, m), "WallCheck should be idempotent for %s", m)
		}
	})
}

func TestLegalWalls(t *testing.T) {
	s := New(9, 10)
	require.Len(t, s.LegalWalls(Player1), 2*8*8, "Every anchor should be open on an empty board")

	for _, w := range s.LegalWalls(Player1) {
		require.True(t, s.WallCheck(Player1, w))
	}
}

func TestConnectivityInvariant(t *testing.T) {
	for seed := uint64(1); seed <= 5; seed++ {
		rng := rand.New(rand.NewSource(seed))
		s := New(9, 10)

		for {
			walls := s.LegalWalls(s.Active())
			if len(walls) == 0 {
				break
			}
			mover := s.Active()
			stock := s.WallStock(mover)

			ok, err := s.Play(walls[rng.Intn(len(walls))])
			require.NoError(t, err)
			require.True(t, ok)
			require.Equal(t, stock-1, s.WallStock(mover))

			for _, p := range Players {
				require.NotEqual(t, Unreachable, s.DistanceToGoal(p),
					"%s should always keep a path to its goal (seed %d)", p, seed)
			}
		}
		require.Equal(t, 0, s.WallStock(Player1))
		require.Equal(t, 0, s.WallStock(Player2))
	}
}
