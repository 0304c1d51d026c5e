package game

import "golang.org/x/exp/slices"

// wallEdges returns the two passages a wall anchored at m.Cell severs. ok is false when
// the wall would hang off the board.
func (s *State) wallEdges(m Move) (edges [2][2]Coord, ok bool) {
	r, c := m.Cell.Row, m.Cell.Col
	switch m.Kind {
	case HorizontalWall:
		if r <= 0 || c+1 >= s.size {
			return edges, false
		}
		edges[0] = [2]Coord{{r, c}, {r - 1, c}}
		edges[1] = [2]Coord{{r, c + 1}, {r - 1, c + 1}}
	case VerticalWall:
		if c+1 >= s.size || r <= 0 {
			return edges, false
		}
		edges[0] = [2]Coord{{r, c}, {r, c + 1}}
		edges[1] = [2]Coord{{r - 1, c}, {r - 1, c + 1}}
	default:
		return edges, false
	}
	return edges, true
}

// LegalPawnMoves returns the cells p's pawn may move to, applying the jump and side-step
// rules when the pawns are adjacent.
func (s *State) LegalPawnMoves(p Player) []Coord {
	self := s.Pawn(p)
	opponent := s.Pawn(p.Opponent())

	moves := make([]Coord, 0, 5)
	for _, n := range s.graph.Neighbors(self) {
		if n != opponent {
			moves = append(moves, n)
			continue
		}
		jump := Coord{Row: 2*opponent.Row - self.Row, Col: 2*opponent.Col - self.Col}
		if s.graph.HasEdge(opponent, jump) {
			moves = append(moves, jump)
			continue
		}
		for _, side := range s.graph.Neighbors(opponent) {
			if side != self {
				moves = append(moves, side)
			}
		}
	}
	return moves
}

func (s *State) LegalPawnMoveNotations(p Player) []string {
	cells := s.LegalPawnMoves(p)
	moves := make([]string, len(cells))
	for i, c := range cells {
		moves[i] = s.Algebraic(c)
	}
	return moves
}

// WallCheck reports whether p may place the wall. Malformed notation is simply illegal.
func (s *State) WallCheck(p Player, notation string) bool {
	m, err := ParseMove(notation, s.size)
	if err != nil || !m.IsWall() {
		return false
	}
	return s.wallLegal(p, m)
}

func (s *State) wallLegal(p Player, m Move) bool {
	if s.WallStock(p) <= 0 {
		return false
	}

	crossing := s.vWalls
	if m.Kind == VerticalWall {
		crossing = s.hWalls
	}
	for _, anchor := range crossing {
		if anchor == m.Cell {
			return false
		}
	}

	edges, ok := s.wallEdges(m)
	if !ok {
		return false
	}
	for _, e := range edges {
		if !s.graph.HasEdge(e[0], e[1]) {
			return false
		}
	}

	temp := s.graph.Clone()
	for _, e := range edges {
		temp.RemoveEdge(e[0], e[1])
	}
	for _, player := range Players {
		row := s.goalRow(player)
		if temp.search(s.Pawn(player), func(c Coord) bool { return c.Row == row }) < 0 {
			return false
		}
	}
	return true
}

// LegalWalls lists every wall p may place right now.
func (s *State) LegalWalls(p Player) []string {
	if s.WallStock(p) <= 0 {
		return nil
	}
	var walls []string
	for row := 1; row < s.size; row++ {
		for col := 0; col+1 < s.size; col++ {
			for _, kind := range []MoveKind{HorizontalWall, VerticalWall} {
				m := Move{Kind: kind, Cell: Coord{Row: row, Col: col}}
				if s.wallLegal(p, m) {
					walls = append(walls, wallNotation(m.Cell, kind, s.size))
				}
			}
		}
	}
	return walls
}

// LegalMoves is every pawn move followed by every wall placement available to p.
func (s *State) LegalMoves(p Player) []string {
	return append(s.LegalPawnMoveNotations(p), s.LegalWalls(p)...)
}

// AddWall places a wall for the active player. With check set the placement must pass
// WallCheck. An initializing placement replays a stored state: it neither spends stock
// nor passes the turn. The error is non-nil only for malformed notation.
func (s *State) AddWall(notation string, initializing, check bool) (bool, error) {
	m, err := ParseMove(notation, s.size)
	if err != nil {
		return false, err
	}
	if !m.IsWall() {
		return false, &ParseError{Input: notation, Reason: "missing wall orientation"}
	}
	edges, ok := s.wallEdges(m)
	if !ok {
		return false, nil
	}
	if check && !s.wallLegal(s.active, m) {
		return false, nil
	}
	if !initializing && s.WallStock(s.active) <= 0 {
		return false, nil
	}

	if m.Kind == HorizontalWall {
		s.hWalls = append(s.hWalls, m.Cell)
	} else {
		s.vWalls = append(s.vWalls, m.Cell)
	}
	for _, e := range edges {
		s.graph.RemoveEdge(e[0], e[1])
	}

	if initializing {
		s.refresh(false)
		return true, nil
	}
	s.previous = s.snapshot
	s.stock[s.active.index()]--
	s.lastMove = notation
	s.refresh(true)
	return true, nil
}

// MovePawn moves the active player's pawn. With check set the destination must be one of
// LegalPawnMoves. The error is non-nil only for malformed notation.
func (s *State) MovePawn(notation string, check bool) (bool, error) {
	m, err := ParseMove(notation, s.size)
	if err != nil {
		return false, err
	}
	if m.IsWall() {
		return false, &ParseError{Input: notation, Reason: "wall notation is not a pawn move"}
	}
	if check && !slices.Contains(s.LegalPawnMoves(s.active), m.Cell) {
		return false, nil
	}

	s.previous = s.snapshot
	s.pawns[s.active.index()] = m.Cell
	s.lastMove = notation
	s.refresh(true)
	return true, nil
}

// Play applies a checked move for the active player.
func (s *State) Play(notation string) (bool, error) {
	if IsWallNotation(notation) {
		return s.AddWall(notation, false, true)
	}
	return s.MovePawn(notation, true)
}

// Apply commits a move without legality checks. Callers must only pass moves taken from
// LegalMoves.
func (s *State) Apply(notation string) (bool, error) {
	if IsWallNotation(notation) {
		return s.AddWall(notation, false, false)
	}
	return s.MovePawn(notation, false)
}

// WinCheck reports whether notation moves the active player's pawn onto its goal row.
func (s *State) WinCheck(notation string) bool {
	m, err := ParseMove(notation, s.size)
	if err != nil || m.IsWall() {
		return false
	}
	return m.Cell.Row == s.goalRow(s.active)
}
