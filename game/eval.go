package game

// AttackingCap is the attacking feature when the pawn needs no move to reach the next row.
const AttackingCap = 20.0

// Features are the heuristic terms of a position from one player's perspective.
type Features struct {
	PositionDiff float64 // Opponent's goal distance minus own
	Attacking    float64 // Inverse of own moves to the next row
	Defensive    float64 // Opponent's moves to the next row
	WallControl  float64 // Wall stock differential, normalized
	Mobility     float64 // Pawn move count differential, normalized
}

// Weights of a linear evaluation over Features.
type Weights struct {
	Position    float64 `yaml:"position" json:"position"`
	Attacking   float64 `yaml:"attacking" json:"attacking"`
	Defensive   float64 `yaml:"defensive" json:"defensive"`
	WallControl float64 `yaml:"wall_control" json:"wall_control"`
	Mobility    float64 `yaml:"mobility" json:"mobility"`
}

var (
	// DefaultWeights are used by minimax, annealing and the other search strategies.
	DefaultWeights = Weights{Position: 0.8, Attacking: 12, Defensive: 8, WallControl: 5, Mobility: 3}

	// PaperWeights only use the distance and next-row terms; progressive deepening scores with them.
	PaperWeights = Weights{Position: 0.6001, Attacking: 14.45, Defensive: 6.52}
)

func ratio(a, b int) float64 {
	return float64(a-b) / (float64(a+b) + 0.1)
}

// Features computes the heuristic terms for p. Terms whose weight is zero are skipped
// when w is non-nil.
func (s *State) Features(p Player, w *Weights) Features {
	opponent := p.Opponent()
	var f Features

	if w == nil || w.Position != 0 {
		f.PositionDiff = float64(s.DistanceToGoal(opponent) - s.DistanceToGoal(p))
	}
	if w == nil || w.Attacking != 0 {
		if m := s.MovesToNextRow(p); m == 0 {
			f.Attacking = AttackingCap
		} else {
			f.Attacking = 1 / float64(m)
		}
	}
	if w == nil || w.Defensive != 0 {
		f.Defensive = float64(s.MovesToNextRow(opponent))
	}
	if w == nil || w.WallControl != 0 {
		f.WallControl = ratio(s.WallStock(p), s.WallStock(opponent))
	}
	if w == nil || w.Mobility != 0 {
		f.Mobility = ratio(len(s.LegalPawnMoves(p)), len(s.LegalPawnMoves(opponent)))
	}
	return f
}

func (w Weights) Score(f Features) float64 {
	return w.Position*f.PositionDiff +
		w.Attacking*f.Attacking +
		w.Defensive*f.Defensive +
		w.WallControl*f.WallControl +
		w.Mobility*f.Mobility
}

// Evaluate scores s for p. It satisfies the Evaluate function type.
func (w Weights) Evaluate(s *State, p Player) float64 {
	return w.Score(s.Features(p, &w))
}
