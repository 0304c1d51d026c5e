package game

import (
	"fmt"
	"strconv"
	"strings"
)

// serialize renders "<hwalls> / <vwalls> / <p1> <p2> / <w1> <w2> / <active>".
func (s *State) serialize() string {
	return fmt.Sprintf("%s / %s / %s %s / %d %d / %s",
		joinAnchors(s.hWalls, s.size),
		joinAnchors(s.vWalls, s.size),
		s.Algebraic(s.Pawn(Player1)),
		s.Algebraic(s.Pawn(Player2)),
		s.WallStock(Player1),
		s.WallStock(Player2),
		s.active.ID(),
	)
}

// FromString rebuilds a state from its serialized form, replaying every wall without
// legality checks.
func FromString(size, walls int, snapshot string) (*State, error) {
	fields := strings.Split(snapshot, "/")
	if len(fields) != 5 {
		return nil, &FormatError{Input: snapshot, Reason: fmt.Sprintf("expected 5 fields, got %d", len(fields))}
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	s := New(size, walls)

	pawns := strings.Fields(fields[2])
	if len(pawns) != 2 {
		return nil, &FormatError{Input: snapshot, Reason: "expected two pawn positions"}
	}
	for i, notation := range pawns {
		c, err := AlgebraicToCoord(notation, size)
		if err != nil {
			return nil, &FormatError{Input: snapshot, Reason: "bad pawn position", Err: err}
		}
		s.pawns[i] = c
	}
	if s.pawns[0] == s.pawns[1] {
		return nil, &FormatError{Input: snapshot, Reason: "pawns share a cell"}
	}

	stocks := strings.Fields(fields[3])
	if len(stocks) != 2 {
		return nil, &FormatError{Input: snapshot, Reason: "expected two wall counts"}
	}
	for i, count := range stocks {
		n, err := strconv.Atoi(count)
		if err != nil || n < 0 {
			return nil, &FormatError{Input: snapshot, Reason: fmt.Sprintf("bad wall count %q", count)}
		}
		s.stock[i] = n
	}

	switch fields[4] {
	case Player1.ID():
		s.active = Player1
	case Player2.ID():
		s.active = Player2
	default:
		return nil, &FormatError{Input: snapshot, Reason: fmt.Sprintf("bad active player %q", fields[4])}
	}

	for i, suffix := range []string{"h", "v"} {
		for _, anchor := range splitAnchors(fields[i]) {
			ok, err := s.AddWall(anchor+suffix, true, false)
			if err != nil {
				return nil, &FormatError{Input: snapshot, Reason: "bad wall", Err: err}
			}
			if !ok {
				return nil, &FormatError{Input: snapshot, Reason: fmt.Sprintf("wall %s%s cannot be placed", anchor, suffix)}
			}
		}
	}

	s.refresh(false)
	s.previous = s.snapshot
	return s, nil
}
