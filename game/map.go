package game

// Passage bits, one per direction out of a cell.
const (
	up uint8 = 1 << iota
	down
	left
	right
)

var directions = [4]struct {
	bit      uint8
	dRow     int
	dCol     int
	opposite uint8
}{
	{up, -1, 0, down},
	{down, 1, 0, up},
	{left, 0, -1, right},
	{right, 0, 1, left},
}

// Graph is the board: cells are nodes, open passages between orthogonal neighbours are edges.
type Graph struct {
	size  int
	edges []uint8 // Open passages per cell, indexed by row*size+col
}

// NewGraph creates a size x size grid with every passage open.
func NewGraph(size int) *Graph {
	g := &Graph{size: size, edges: make([]uint8, size*size)}
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			var open uint8
			for _, d := range directions {
				if (Coord{row + d.dRow, col + d.dCol}).inBounds(size) {
					open |= d.bit
				}
			}
			g.edges[row*size+col] = open
		}
	}
	return g
}

func (g *Graph) Size() int {
	return g.size
}

func (g *Graph) Clone() *Graph {
	edges := make([]uint8, len(g.edges))
	copy(edges, g.edges)
	return &Graph{size: g.size, edges: edges}
}

func (g *Graph) index(c Coord) int {
	return c.Row*g.size + c.Col
}

// direction returns the passage index leading from a to b, or -1 if they are not orthogonal neighbours.
func direction(a, b Coord) int {
	for i, d := range directions {
		if a.Row+d.dRow == b.Row && a.Col+d.dCol == b.Col {
			return i
		}
	}
	return -1
}

// HasEdge reports whether a and b are neighbours with no wall between them.
func (g *Graph) HasEdge(a, b Coord) bool {
	if !a.inBounds(g.size) || !b.inBounds(g.size) {
		return false
	}
	i := direction(a, b)
	if i < 0 {
		return false
	}
	return g.edges[g.index(a)]&directions[i].bit != 0
}

// RemoveEdge closes the passage between a and b. Removing a missing edge is a no-op.
func (g *Graph) RemoveEdge(a, b Coord) {
	if !g.HasEdge(a, b) {
		return
	}
	d := directions[direction(a, b)]
	g.edges[g.index(a)] &^= d.bit
	g.edges[g.index(b)] &^= d.opposite
}

// Neighbors returns the cells reachable from c in one step, in up, down, left, right order.
func (g *Graph) Neighbors(c Coord) []Coord {
	neighbors := make([]Coord, 0, 4)
	open := g.edges[g.index(c)]
	for _, d := range directions {
		if open&d.bit != 0 {
			neighbors = append(neighbors, Coord{c.Row + d.dRow, c.Col + d.dCol})
		}
	}
	return neighbors
}

// PathExists reports whether to is reachable from from.
func (g *Graph) PathExists(from, to Coord) bool {
	if !from.inBounds(g.size) || !to.inBounds(g.size) {
		return false
	}
	return g.search(from, func(c Coord) bool { return c == to }) >= 0
}
