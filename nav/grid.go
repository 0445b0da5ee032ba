// Package nav is the pathfinding service: an A* walkability grid carved from
// the collision space, and one steering client per agent that walks a body
// along the planned path.
package nav

import (
	"math"

	astar "github.com/beefsack/go-astar"
	"github.com/solarlune/resolv"

	"github.com/automoto/doomerang-horde/shared/gamemath"
)

// Grid represents the walkable areas of a top-down arena.
type Grid struct {
	Width, Height int
	CellSize      float64
	Nodes         [][]*Node // Indexed [y][x]
}

// Node is a single cell of the grid. Implements astar.Pather.
type Node struct {
	X, Y     int
	Walkable bool
	Grid     *Grid
}

var neighborDirs = []struct{ dx, dy int }{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1}, // Cardinal
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1}, // Diagonal
}

// PathNeighbors returns adjacent walkable nodes. Diagonal steps need both
// cardinal neighbors open so paths never cut a wall corner.
func (n *Node) PathNeighbors() []astar.Pather {
	var neighbors []astar.Pather
	for _, d := range neighborDirs {
		next := n.Grid.node(n.X+d.dx, n.Y+d.dy)
		if next == nil || !next.Walkable {
			continue
		}
		if d.dx != 0 && d.dy != 0 {
			if !n.Grid.walkable(n.X+d.dx, n.Y) || !n.Grid.walkable(n.X, n.Y+d.dy) {
				continue
			}
		}
		neighbors = append(neighbors, next)
	}
	return neighbors
}

func (n *Node) PathNeighborCost(to astar.Pather) float64 {
	return n.distance(to.(*Node))
}

func (n *Node) PathEstimatedCost(to astar.Pather) float64 {
	return n.distance(to.(*Node))
}

func (n *Node) distance(to *Node) float64 {
	dx := float64(to.X - n.X)
	dy := float64(to.Y - n.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// NewGrid builds a grid covering width x height world units. A cell is blocked
// when it overlaps any object carrying one of solidTags.
func NewGrid(space *resolv.Space, width, height, cellSize float64, solidTags ...string) *Grid {
	gridW := int(math.Ceil(width / cellSize))
	gridH := int(math.Ceil(height / cellSize))

	grid := &Grid{
		Width:    gridW,
		Height:   gridH,
		CellSize: cellSize,
		Nodes:    make([][]*Node, gridH),
	}
	for y := 0; y < gridH; y++ {
		grid.Nodes[y] = make([]*Node, gridW)
		for x := 0; x < gridW; x++ {
			grid.Nodes[y][x] = &Node{X: x, Y: y, Walkable: true, Grid: grid}
		}
	}
	if space == nil {
		return grid
	}

	// Probe each cell with a slightly inset object.
	inset := cellSize / 8
	for y := 0; y < gridH; y++ {
		for x := 0; x < gridW; x++ {
			probe := resolv.NewObject(float64(x)*cellSize+inset, float64(y)*cellSize+inset, cellSize-2*inset, cellSize-2*inset)
			space.Add(probe)
			if probe.Check(0, 0, solidTags...) != nil {
				grid.Nodes[y][x].Walkable = false
			}
			space.Remove(probe)
		}
	}
	return grid
}

func (g *Grid) node(x, y int) *Node {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return nil
	}
	return g.Nodes[y][x]
}

func (g *Grid) walkable(x, y int) bool {
	n := g.node(x, y)
	return n != nil && n.Walkable
}

// SetWalkable overrides a cell.
func (g *Grid) SetWalkable(x, y int, walkable bool) {
	if n := g.node(x, y); n != nil {
		n.Walkable = walkable
	}
}

// WorldToGrid returns the cell containing p, clamped to the grid.
func (g *Grid) WorldToGrid(p gamemath.Vec2) (int, int) {
	x := clampInt(int(math.Floor(p.X/g.CellSize)), 0, g.Width-1)
	y := clampInt(int(math.Floor(p.Y/g.CellSize)), 0, g.Height-1)
	return x, y
}

// GridToWorld returns the center of a cell.
func (g *Grid) GridToWorld(x, y int) gamemath.Vec2 {
	return gamemath.Vec2{
		X: float64(x)*g.CellSize + g.CellSize/2,
		Y: float64(y)*g.CellSize + g.CellSize/2,
	}
}

// Walkable reports whether the cell containing p is open.
func (g *Grid) Walkable(p gamemath.Vec2) bool {
	return g.walkable(g.WorldToGrid(p))
}

// FindPath returns world waypoints from just after from's cell to to, or nil
// when no route exists. A blocked endpoint is moved to the nearest open cell;
// an open goal keeps its exact position as the last waypoint.
func (g *Grid) FindPath(from, to gamemath.Vec2) []gamemath.Vec2 {
	if g.Width == 0 || g.Height == 0 {
		return nil
	}
	sx, sy := g.WorldToGrid(from)
	gx, gy := g.WorldToGrid(to)

	start := g.Nodes[sy][sx]
	goal := g.Nodes[gy][gx]
	exactGoal := goal.Walkable

	if !start.Walkable {
		start = g.findNearestWalkable(sx, sy)
	}
	if !goal.Walkable {
		goal = g.findNearestWalkable(gx, gy)
	}
	if start == nil || goal == nil {
		return nil
	}
	if start == goal {
		if exactGoal {
			return []gamemath.Vec2{to}
		}
		return []gamemath.Vec2{g.GridToWorld(goal.X, goal.Y)}
	}

	path, _, found := astar.Path(start, goal)
	if !found {
		return nil
	}

	// go-astar returns the path goal first; skip the start cell.
	waypoints := make([]gamemath.Vec2, 0, len(path)-1)
	for i := len(path) - 2; i >= 0; i-- {
		n := path[i].(*Node)
		waypoints = append(waypoints, g.GridToWorld(n.X, n.Y))
	}
	if exactGoal {
		waypoints[len(waypoints)-1] = to
	}
	return waypoints
}

// findNearestWalkable searches expanding squares around (x, y).
func (g *Grid) findNearestWalkable(x, y int) *Node {
	for radius := 1; radius < 10; radius++ {
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				if n := g.node(x+dx, y+dy); n != nil && n.Walkable {
					return n
				}
			}
		}
	}
	return nil
}

func clampInt(v, minVal, maxVal int) int {
	return max(minVal, min(maxVal, v))
}
