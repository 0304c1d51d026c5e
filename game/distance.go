package game

// search runs a breadth-first search from start and returns the number of steps to the
// nearest cell accepted by isGoal, or -1 when none is reachable.
func (g *Graph) search(start Coord, isGoal func(Coord) bool) int {
	if isGoal(start) {
		return 0
	}
	dist := make([]int, len(g.edges))
	for i := range dist {
		dist[i] = -1
	}
	dist[g.index(start)] = 0
	queue := make([]Coord, 0, len(g.edges))
	queue = append(queue, start)

	for head := 0; head < len(queue); head++ {
		current := queue[head]
		next := dist[g.index(current)] + 1
		for _, n := range g.Neighbors(current) {
			i := g.index(n)
			if dist[i] >= 0 {
				continue
			}
			if isGoal(n) {
				return next
			}
			dist[i] = next
			queue = append(queue, n)
		}
	}
	return -1
}

// Unreachable is the sentinel distance on this board: the Unreachable constant, or the
// cell count when a winding path could be that long.
func (g *Graph) Unreachable() int {
	return max(Unreachable, len(g.edges))
}

// DistanceToAny returns the fewest steps from from to any of goals, or g.Unreachable().
func (g *Graph) DistanceToAny(from Coord, goals []Coord) int {
	if len(goals) == 0 {
		return g.Unreachable()
	}
	mask := make([]bool, len(g.edges))
	for _, c := range goals {
		if c.inBounds(g.size) {
			mask[g.index(c)] = true
		}
	}
	d := g.search(from, func(c Coord) bool { return mask[g.index(c)] })
	if d < 0 {
		return g.Unreachable()
	}
	return d
}

// DistanceField returns, for every cell, the fewest steps to any of goals (g.Unreachable() if none).
func (g *Graph) DistanceField(goals []Coord) []int {
	dist := make([]int, len(g.edges))
	for i := range dist {
		dist[i] = g.Unreachable()
	}
	queue := make([]Coord, 0, len(g.edges))
	for _, c := range goals {
		if c.inBounds(g.size) && dist[g.index(c)] != 0 {
			dist[g.index(c)] = 0
			queue = append(queue, c)
		}
	}
	for head := 0; head < len(queue); head++ {
		current := queue[head]
		next := dist[g.index(current)] + 1
		for _, n := range g.Neighbors(current) {
			if i := g.index(n); dist[i] > next {
				dist[i] = next
				queue = append(queue, n)
			}
		}
	}
	return dist
}

// DistanceToGoal is the shortest path length from p's pawn to its goal row.
func (s *State) DistanceToGoal(p Player) int {
	return s.graph.DistanceToAny(s.Pawn(p), s.Goals(p))
}

// MovesToNextRow is the shortest path length from p's pawn to the next row in its direction of
// travel. It is s.Unreachable() when the pawn already stands on the far boundary row.
func (s *State) MovesToNextRow(p Player) int {
	pawn := s.Pawn(p)
	row := pawn.Row - 1
	if s.goalRow(p) == s.size-1 {
		row = pawn.Row + 1
	}
	if row < 0 || row >= s.size {
		return s.Unreachable()
	}
	d := s.graph.search(pawn, func(c Coord) bool { return c.Row == row })
	if d < 0 {
		return s.Unreachable()
	}
	return d
}

// Unreachable is the distance reported for a goal that cannot be reached on this board.
func (s *State) Unreachable() int {
	return s.graph.Unreachable()
}

// GoalDistances returns a distance field to p's goal row, indexed by row*size+col.
func (s *State) GoalDistances(p Player) []int {
	return s.graph.DistanceField(s.Goals(p))
}
