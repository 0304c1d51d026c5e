package game

import "fmt"

// State is a Quoridor position. All mutation goes through MovePawn and AddWall; searches
// explore hypothetical futures on a Clone.
type State struct {
	size     int
	graph    *Graph
	hWalls   []Coord
	vWalls   []Coord
	pawns    [2]Coord
	stock    [2]int
	active   Player
	snapshot string
	previous string
	lastMove string
}

// New returns the opening position: pawns centred on their back rows, full wall stocks and
// Player1 to move.
func New(size, walls int) *State {
	if size < 2 || size > MaxSize {
		panic(fmt.Sprintf("board size must be between 2 and %d, got %d", MaxSize, size))
	}
	s := &State{
		size:     size,
		graph:    NewGraph(size),
		pawns:    [2]Coord{{Row: size - 1, Col: (size - 1) / 2}, {Row: 0, Col: size / 2}},
		stock:    [2]int{walls, walls},
		active:   Player1,
		lastMove: BlankMove,
	}
	s.snapshot = s.serialize()
	s.previous = s.snapshot
	return s
}

// Clone returns a deep copy sharing no memory with s.
func (s *State) Clone() *State {
	c := *s
	c.graph = s.graph.Clone()
	c.hWalls = append([]Coord(nil), s.hWalls...)
	c.vWalls = append([]Coord(nil), s.vWalls...)
	return &c
}

func (s *State) Size() int {
	return s.size
}

func (s *State) Active() Player {
	return s.active
}

func (s *State) Pawn(p Player) Coord {
	return s.pawns[p.index()]
}

func (s *State) WallStock(p Player) int {
	return s.stock[p.index()]
}

func (s *State) Graph() *Graph {
	return s.graph
}

// HorizontalWalls returns the anchors of placed horizontal walls in placement order.
func (s *State) HorizontalWalls() []Coord {
	return append([]Coord(nil), s.hWalls...)
}

// VerticalWalls returns the anchors of placed vertical walls in placement order.
func (s *State) VerticalWalls() []Coord {
	return append([]Coord(nil), s.vWalls...)
}

func (s *State) goalRow(p Player) int {
	if p == Player1 {
		return 0
	}
	return s.size - 1
}

// Goals returns the cells p must reach to win.
func (s *State) Goals(p Player) []Coord {
	row := s.goalRow(p)
	goals := make([]Coord, s.size)
	for col := range goals {
		goals[col] = Coord{Row: row, Col: col}
	}
	return goals
}

// Index maps a cell to its position in distance fields.
func (s *State) Index(c Coord) int {
	return s.graph.index(c)
}

// Winner returns the player whose pawn stands on its goal row.
func (s *State) Winner() (Player, bool) {
	for _, p := range Players {
		if s.Pawn(p).Row == s.goalRow(p) {
			return p, true
		}
	}
	return 0, false
}

// Algebraic encodes a cell for this board.
func (s *State) Algebraic(c Coord) string {
	return CoordToAlgebraic(c, s.size)
}

// String returns the serialized state.
func (s *State) String() string {
	return s.snapshot
}

// Previous returns the serialized state before the last committed move.
func (s *State) Previous() string {
	return s.previous
}

func (s *State) LastMove() string {
	return s.lastMove
}

// refresh recomputes the snapshot and optionally hands the turn over.
func (s *State) refresh(flip bool) {
	if flip {
		s.active = s.active.Opponent()
	}
	s.snapshot = s.serialize()
}

// Snapshot is what a host needs to render the board.
type Snapshot struct {
	Player1      Coord   `json:"player1"`
	Player2      Coord   `json:"player2"`
	Walls        [2]int  `json:"walls"`
	HWalls       []Coord `json:"hWalls"`
	VWalls       []Coord `json:"vWalls"`
	ActivePlayer int     `json:"activePlayer"`
}

func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Player1:      s.Pawn(Player1),
		Player2:      s.Pawn(Player2),
		Walls:        s.stock,
		HWalls:       s.HorizontalWalls(),
		VWalls:       s.VerticalWalls(),
		ActivePlayer: int(s.active),
	}
}
