package searcher

import (
	"quoridor/experiments/metrics"
	"quoridor/game"
	"time"

	"golang.org/x/exp/rand"
)

// DefaultRolloutCap is the number of rollout moves after which a playout counts as a draw.
const DefaultRolloutCap = 200

// rolloutAttempts bounds the wall slots a random rollout move samples before enumerating.
const rolloutAttempts = 64

type Option func(mcts *MCTS)

type MCTS struct {
	simulations int
	duration    time.Duration
	exploration float64
	rolloutCap  int
	rng         *rand.Rand
	metrics     metrics.Collector
	tree        *tree
	last        metrics.SearchMetric
}

func WithSimulations(simulations int) Option {
	return func(m *MCTS) {
		if simulations > 0 {
			m.simulations = simulations
		}
	}
}

func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

func WithExploration(c float64) Option {
	return func(m *MCTS) {
		if c > 0 {
			m.exploration = c
		}
	}
}

func WithRolloutCap(moves int) Option {
	return func(m *MCTS) {
		if moves > 0 {
			m.rolloutCap = moves
		}
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(m *MCTS) {
		if rng != nil {
			m.rng = rng
		}
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		exploration: Exploration,
		rolloutCap:  DefaultRolloutCap,
		rng:         rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		metrics:     metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.simulations <= 0 && m.duration <= 0 {
		panic("Must specify search simulations or duration")
	}
	return m
}

// Search runs simulations until the simulation or time budget is spent and returns the
// most visited root move.
func (m *MCTS) Search(state *game.State) (string, bool) {
	player := state.Active()
	m.tree = newTree(state)
	m.metrics.Start("mcts", m.rolloutCap)

	var deadline time.Time
	if m.duration > 0 {
		deadline = time.Now().Add(m.duration)
	}
	for i := 0; m.simulations <= 0 || i < m.simulations; i++ {
		if m.duration > 0 && !time.Now().Before(deadline) {
			break
		}
		m.simulate(state, player)
		m.metrics.AddEpisode()
	}
	m.last = m.metrics.Complete()

	if best := m.tree.mostVisited(0); best >= 0 {
		return m.tree.nodes[best].move, true
	}
	// No search progress at all
	moves := state.LegalMoves(player)
	if len(moves) == 0 {
		return "", false
	}
	return moves[m.rng.Intn(len(moves))], true
}

func (m *MCTS) Metric() metrics.SearchMetric {
	return m.last
}

func (m *MCTS) simulate(root *game.State, player game.Player) {
	newNode, path, state := m.selectThenExpand(root)
	if newNode == 0 {
		m.tree.rootSimulations++
	}
	reward := m.rollout(state, player)
	m.tree.backup(path, reward)
}

// selectThenExpand descends by UCT while nodes are fully expanded, then expands one
// random untried move. It returns the final node, the visited path and its state.
func (m *MCTS) selectThenExpand(root *game.State) (int, []int, *game.State) {
	t := m.tree
	state := root.Clone()
	current := 0
	path := []int{current}

	for len(t.nodes[current].unexpanded) == 0 && len(t.nodes[current].children) > 0 {
		current = t.selectChild(current, m.exploration)
		state = child(state, t.nodes[current].move)
		path = append(path, current)
	}

	if untried := t.nodes[current].unexpanded; len(untried) > 0 {
		i := m.rng.Intn(len(untried))
		move := untried[i]
		untried[i] = untried[len(untried)-1]
		t.nodes[current].unexpanded = untried[:len(untried)-1]

		state = child(state, move)
		added := t.add(move, state)
		t.nodes[current].children = append(t.nodes[current].children, added)
		current = added
		path = append(path, current)
	}
	return current, path, state
}

// rollout plays state out with the heuristic policy and scores the result for player.
func (m *MCTS) rollout(state *game.State, player game.Player) float64 {
	for depth := 0; depth < m.rolloutCap; depth++ {
		if winner, over := state.Winner(); over {
			m.metrics.AddFullPlayout()
			return reward(winner, player)
		}
		move, ok := m.rolloutMove(state)
		if !ok {
			return DrawScore
		}
		if _, err := state.Apply(move); err != nil {
			panic(err)
		}
	}
	if winner, over := state.Winner(); over {
		m.metrics.AddFullPlayout()
		return reward(winner, player)
	}
	return DrawScore
}

// rolloutMove races along the shortest path while not behind or out of walls, and
// otherwise picks uniformly among every legal move.
func (m *MCTS) rolloutMove(state *game.State) (string, bool) {
	mover := state.Active()
	if state.WallStock(mover) == 0 || state.DistanceToGoal(mover) <= state.DistanceToGoal(mover.Opponent()) {
		return shortestStep(state, mover)
	}
	return m.randomMove(state, mover)
}

// randomMove draws from the pawn moves plus every wall slot and rejects illegal walls, so
// only the sampled walls pay for a reachability check. After rolloutAttempts rejections it
// enumerates the legal moves instead.
func (m *MCTS) randomMove(state *game.State, mover game.Player) (string, bool) {
	pawns := state.LegalPawnMoveNotations(mover)
	size := state.Size()
	slots := (size - 1) * (size - 1)
	for attempt := 0; attempt < rolloutAttempts; attempt++ {
		i := m.rng.Intn(len(pawns) + 2*slots)
		if i < len(pawns) {
			return pawns[i], true
		}
		i -= len(pawns)
		orientation := "h"
		if i >= slots {
			orientation, i = "v", i-slots
		}
		anchor := game.Coord{Row: 1 + i/(size-1), Col: i % (size - 1)}
		if wall := state.Algebraic(anchor) + orientation; state.WallCheck(mover, wall) {
			return wall, true
		}
	}
	moves := state.LegalMoves(mover)
	if len(moves) == 0 {
		return "", false
	}
	return moves[m.rng.Intn(len(moves))], true
}

// shortestStep returns the pawn move that lands closest to mover's goal row.
func shortestStep(state *game.State, mover game.Player) (string, bool) {
	field := state.GoalDistances(mover)
	best, bestDistance := game.Coord{}, state.Unreachable()+1
	for _, c := range state.LegalPawnMoves(mover) {
		if d := field[state.Index(c)]; d < bestDistance {
			best, bestDistance = c, d
		}
	}
	if bestDistance > state.Unreachable() {
		return "", false
	}
	return state.Algebraic(best), true
}

func reward(winner, player game.Player) float64 {
	if winner == player {
		return WinScore
	}
	return LossScore
}
