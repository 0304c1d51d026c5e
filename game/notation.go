package game

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseError reports malformed move or cell notation.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid notation %q: %s", e.Input, e.Reason)
}

// FormatError reports a malformed serialized state string.
type FormatError struct {
	Input  string
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid state %q: %s: %v", e.Input, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid state %q: %s", e.Input, e.Reason)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

type MoveKind int

const (
	PawnMove MoveKind = iota
	HorizontalWall
	VerticalWall
)

// Move is a parsed move notation: a pawn destination or a wall anchor.
type Move struct {
	Kind MoveKind
	Cell Coord
}

func (m Move) IsWall() bool {
	return m.Kind != PawnMove
}

// CoordToAlgebraic encodes a cell as column letter plus rank, e.g. (8, 4) -> "e1" on a 9x9 board.
func CoordToAlgebraic(c Coord, size int) string {
	return string(rune('a'+c.Col)) + strconv.Itoa(size-c.Row)
}

// AlgebraicToCoord decodes a cell. A wall orientation suffix is ignored.
func AlgebraicToCoord(s string, size int) (Coord, error) {
	if len(s) < 2 {
		return Coord{}, &ParseError{Input: s, Reason: "too short"}
	}
	if len(s) > 2 && isOrientation(s[len(s)-1]) {
		s = s[:len(s)-1]
	}

	letter := s[0]
	if letter >= 'A' && letter <= 'Z' {
		letter += 'a' - 'A'
	}
	if letter < 'a' || letter > 'z' {
		return Coord{}, &ParseError{Input: s, Reason: "column is not a letter"}
	}

	digits := s[1:]
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return Coord{}, &ParseError{Input: s, Reason: "row is not a number"}
		}
	}
	rank, err := strconv.Atoi(digits)
	if err != nil {
		return Coord{}, &ParseError{Input: s, Reason: "row is not a number"}
	}

	c := Coord{Row: size - rank, Col: int(letter - 'a')}
	if !c.inBounds(size) {
		return Coord{}, &ParseError{Input: s, Reason: fmt.Sprintf("outside a %dx%d board", size, size)}
	}
	return c, nil
}

// ParseMove classifies a notation as a pawn move or a wall placement.
func ParseMove(s string, size int) (Move, error) {
	kind := PawnMove
	if len(s) > 2 {
		switch s[len(s)-1] {
		case 'h':
			kind = HorizontalWall
		case 'v':
			kind = VerticalWall
		}
	}
	c, err := AlgebraicToCoord(s, size)
	if err != nil {
		return Move{}, err
	}
	return Move{Kind: kind, Cell: c}, nil
}

// IsWallNotation reports whether a notation carries a wall orientation suffix.
func IsWallNotation(s string) bool {
	return len(s) > 2 && isOrientation(s[len(s)-1])
}

func wallNotation(c Coord, kind MoveKind, size int) string {
	if kind == HorizontalWall {
		return CoordToAlgebraic(c, size) + "h"
	}
	return CoordToAlgebraic(c, size) + "v"
}

func isOrientation(b byte) bool {
	return b == 'h' || b == 'v'
}

// splitAnchors splits concatenated cell notations such as "e3c5a10".
func splitAnchors(s string) []string {
	var anchors []string
	start := -1
	for i := 0; i < len(s); i++ {
		isDigit := s[i] >= '0' && s[i] <= '9'
		if !isDigit && start >= 0 {
			anchors = append(anchors, s[start:i])
			start = -1
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		anchors = append(anchors, s[start:])
	}
	return anchors
}

func joinAnchors(cells []Coord, size int) string {
	var b strings.Builder
	for _, c := range cells {
		b.WriteString(CoordToAlgebraic(c, size))
	}
	return b.String()
}
