package agent

import "quoridor/game"

type opening struct {
	name    string
	player1 []string
	player2 []string
}

// openings is the book of named 9x9 openings in the order they are listed.
var openings = []opening{
	{"No Opening", []string{"e2"}, []string{"e8"}},
	{"Sidewall Opening", []string{"c3h", "f3h"}, []string{"a3h", "h3h"}},
	{"Shiller Opening", []string{"e2", "e3", "e4", "c3v"}, []string{"e8", "e7", "e6"}},
	{"Stonewall", []string{"e2", "e3", "d2h"}, []string{"e8", "e7"}},
	{"Ala Opening", []string{"e2", "e3", "e4", "d5h", "f5h", "c4v", "g4v"}, []string{"e8", "e7", "e6"}},
	{"Standard Opening", []string{"e2", "e3", "e4", "e3v"}, []string{"e8", "e7", "e6", "e6v"}},
	{"Standard Opening (Symmetrical)", []string{"e2", "e3", "e4", "e3v"}, []string{"e8", "e7", "e6", "d6v"}},
	{"Rush Variation", []string{"e2", "e3", "e4", "d5v", "e4h", "g4h", "h5v"}, []string{"e8", "e7", "e6", "e6h", "f6", "f5", "g5"}},
	{"Gap Opening", []string{"e2", "e3", "e4"}, []string{"e8", "e7", "e6"}},
	{"Gap Opening (Mainline)", []string{"e2", "e3", "e4"}, []string{"e8", "e7", "e6", "g6h"}},
	{"Anti-Gap", []string{"e2", "e3", "e4"}, []string{"e8", "e7", "e6", "b3h"}},
	{"Sidewall", []string{"e2", "d7v"}, []string{"e8"}},
	{"Sidewall (Proper Counter)", []string{"e2", "d7v"}, []string{"e8", "c7h"}},
	{"Quick Box Variation", []string{"e2"}, []string{"e8", "d1h"}},
	{"Shatranj Opening", []string{"d1v"}, nil},
	{"Lee Inversion", []string{"e1v"}, nil},
}

// OpeningMoves returns the scripted moves of the named opening for player, or nil for
// unknown names.
func OpeningMoves(name string, player game.Player) []string {
	for _, o := range openings {
		if o.name != name {
			continue
		}
		moves := o.player1
		if player == game.Player2 {
			moves = o.player2
		}
		return append([]string(nil), moves...)
	}
	return nil
}

// Openings lists the names in the book.
func Openings() []string {
	names := make([]string, len(openings))
	for i, o := range openings {
		names[i] = o.name
	}
	return names
}
