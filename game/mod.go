package game

import (
	"fmt"
	"strconv"
)

const (
	DefaultSize  = 9
	DefaultWalls = 10
	// MaxSize is the widest board whose columns still map to the letters a..z.
	MaxSize = 26

	// Unreachable is returned by distance queries when no goal cell can be reached. Boards
	// with more than Unreachable cells use their cell count instead, see (*Graph).Unreachable.
	Unreachable = 100

	// BlankMove is the last move of a freshly created state.
	BlankMove = "Blank"
)

type Player int

const (
	Player1 Player = iota + 1
	Player2
)

// Players lists both players in turn order.
var Players = [2]Player{Player1, Player2}

func (p Player) Opponent() Player {
	if p == Player1 {
		return Player2
	}
	return Player1
}

// ID is the player's identifier in serialized states ("1" or "2").
func (p Player) ID() string {
	return strconv.Itoa(int(p))
}

func (p Player) String() string {
	switch p {
	case Player1:
		return "player1"
	case Player2:
		return "player2"
	default:
		return fmt.Sprintf("player(%d)", int(p))
	}
}

func (p Player) index() int {
	if p != Player1 && p != Player2 {
		panic(fmt.Sprintf("invalid player %d", int(p)))
	}
	return int(p) - 1
}

// Coord is a (row, col) cell; row 0 is the highest-numbered rank.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (c Coord) inBounds(size int) bool {
	return c.Row >= 0 && c.Row < size && c.Col >= 0 && c.Col < size
}

// Evaluate scores a state from the given player's perspective; higher is better.
type Evaluate func(s *State, p Player) float64
