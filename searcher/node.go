package searcher

import "quoridor/game"

// node is an MCTS tree node addressed by its index in tree.nodes.
type node struct {
	move       string      // Move leading from the parent to this node
	player     game.Player // Player to move at this node
	visits     int
	score      float64
	children   []int
	unexpanded []string
}

type tree struct {
	nodes []node
	// Simulations that neither selected nor expanded a root child
	rootSimulations int
}

func newTree(state *game.State) *tree {
	t := &tree{}
	t.add("", state)
	return t
}

// add appends a node for state, reached by move, and returns its index.
func (t *tree) add(move string, state *game.State) int {
	n := node{move: move, player: state.Active()}
	if _, over := state.Winner(); !over {
		n.unexpanded = state.LegalMoves(state.Active())
	}
	t.nodes = append(t.nodes, n)
	return len(t.nodes) - 1
}

// selectChild returns the child of parent with the highest UCT value.
func (t *tree) selectChild(parent int, c float64) int {
	policy := newUCT(c, float64(t.nodes[parent].visits))
	best, bestValue := -1, negInf
	for _, i := range t.nodes[parent].children {
		value := policy.evaluate(t.nodes[i].score, float64(t.nodes[i].visits))
		if value > bestValue {
			best, bestValue = i, value
		}
	}
	return best
}

// mostVisited returns the child of parent with the most visits, or -1 without children.
func (t *tree) mostVisited(parent int) int {
	best, bestVisits := -1, -1
	for _, i := range t.nodes[parent].children {
		if t.nodes[i].visits > bestVisits {
			best, bestVisits = i, t.nodes[i].visits
		}
	}
	return best
}

// backup credits reward to every node on path.
func (t *tree) backup(path []int, reward float64) {
	for _, i := range path {
		t.nodes[i].visits++
		t.nodes[i].score += reward
	}
}
