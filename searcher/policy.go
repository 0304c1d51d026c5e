package searcher

import "math"

// Hyperparameters for MCTS

const (
	Exploration = 1.414        // UCT exploration constant C
	WinScore    = 10.0         // Reward for a rollout won by the searching player
	DrawScore   = WinScore / 2 // Reward for a rollout that hit the move cap
	LossScore   = 0.0          // Reward for a lost rollout
)

type uct struct {
	numerator float64
}

func newUCT(c float64, N float64) *uct {
	if N == 0 {
		panic("N cannot be 0")
	}
	return &uct{numerator: c * c * math.Log(N)}
}

func (u uct) evaluate(q float64, n float64) float64 {
	if n == 0 {
		return math.Inf(1)
	}
	// UCT = q/n + C*sqrt(ln(N)/n)
	return q/n + math.Sqrt(u.numerator/n)
}
