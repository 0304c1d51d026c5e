package engine

import (
	"quoridor/game"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
)

// Render draws the board with rank 1 at the bottom. Walls show as '|' between columns and
// '-' between rows.
func Render(state *game.State, colors bool) string {
	au := aurora.NewAurora(colors)
	size := state.Size()
	graph := state.Graph()
	width := len(strconv.Itoa(size))

	var b strings.Builder
	for r := 0; r < size; r++ {
		b.WriteString(pad(strconv.Itoa(size-r), width))
		b.WriteString(" ")
		for c := 0; c < size; c++ {
			cell := game.Coord{Row: r, Col: c}
			switch cell {
			case state.Pawn(game.Player1):
				b.WriteString(au.Bold(au.Red("1")).String())
			case state.Pawn(game.Player2):
				b.WriteString(au.Bold(au.Blue("2")).String())
			default:
				b.WriteString(".")
			}
			if c < size-1 {
				if graph.HasEdge(cell, game.Coord{Row: r, Col: c + 1}) {
					b.WriteString(" ")
				} else {
					b.WriteString(au.Yellow("|").String())
				}
			}
		}
		b.WriteString("\n")

		if r == size-1 {
			break
		}
		b.WriteString(strings.Repeat(" ", width+1))
		for c := 0; c < size; c++ {
			if graph.HasEdge(game.Coord{Row: r, Col: c}, game.Coord{Row: r + 1, Col: c}) {
				b.WriteString(" ")
			} else {
				b.WriteString(au.Yellow("-").String())
			}
			if c < size-1 {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat(" ", width+1))
	for c := 0; c < size; c++ {
		b.WriteByte(byte('a' + c))
		if c < size-1 {
			b.WriteString(" ")
		}
	}
	b.WriteString("\n")
	b.WriteString(state.String())
	return b.String()
}

func pad(s string, width int) string {
	return strings.Repeat(" ", width-len(s)) + s
}
