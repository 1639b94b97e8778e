package level

import (
	astar "github.com/beefsack/go-astar"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/automoto/parkour-gen/connector"
)

// Movement cost multipliers per mechanic. Walking a chain link costs the
// plain distance.
var mechanicCost = map[connector.Type]float64{
	connector.Mantle:    1.5,
	connector.WallRun:   1.2,
	connector.LedgeGrab: 1.3,
}

// RouteGraph is the traversal graph over a plan's platforms
type RouteGraph struct {
	Nodes []*RouteNode
}

// RouteNode is one platform. Implements astar.Pather
type RouteNode struct {
	Index    int
	Position r3.Vec
	edges    []routeEdge
}

type routeEdge struct {
	to   *RouteNode
	cost float64 // multiplier on distance
}

// PathNeighbors returns the platforms reachable in one move (implements astar.Pather)
func (n *RouteNode) PathNeighbors() []astar.Pather {
	out := make([]astar.Pather, len(n.edges))
	for i, e := range n.edges {
		out[i] = e.to
	}
	return out
}

// PathNeighborCost returns the weighted distance to a neighbour (implements astar.Pather)
func (n *RouteNode) PathNeighborCost(to astar.Pather) float64 {
	toNode := to.(*RouteNode)
	factor := 1.0
	for _, e := range n.edges {
		if e.to == toNode {
			factor = e.cost
			break
		}
	}
	return factor * r3.Norm(r3.Sub(toNode.Position, n.Position))
}

// PathEstimatedCost returns the straight-line distance (implements astar.Pather)
func (n *RouteNode) PathEstimatedCost(to astar.Pather) float64 {
	return r3.Norm(r3.Sub(to.(*RouteNode).Position, n.Position))
}

func (n *RouteNode) link(to *RouteNode, cost float64) {
	for i, e := range n.edges {
		if e.to == to {
			if cost < e.cost {
				n.edges[i].cost = cost
			}
			return
		}
	}
	n.edges = append(n.edges, routeEdge{to: to, cost: cost})
}

// BuildRouteGraph links platforms through their connections, and
// consecutive platforms in chain mode.
func BuildRouteGraph(p *Plan) *RouteGraph {
	g := &RouteGraph{Nodes: make([]*RouteNode, len(p.Platforms))}
	for i, pl := range p.Platforms {
		g.Nodes[i] = &RouteNode{Index: i, Position: pl.Position}
	}
	for _, c := range p.Connections {
		cost, ok := mechanicCost[c.Type]
		if !ok {
			continue
		}
		g.Nodes[c.A].link(g.Nodes[c.B], cost)
		g.Nodes[c.B].link(g.Nodes[c.A], cost)
	}
	if p.Mode == ModeChain {
		for i := 1; i < len(g.Nodes); i++ {
			g.Nodes[i-1].link(g.Nodes[i], 1)
			g.Nodes[i].link(g.Nodes[i-1], 1)
		}
	}
	return g
}

// FindPath returns platform indices from start to goal, or nil if the goal
// cannot be reached.
func (g *RouteGraph) FindPath(start, goal int) []int {
	if start < 0 || goal < 0 || start >= len(g.Nodes) || goal >= len(g.Nodes) {
		return nil
	}
	if start == goal {
		return []int{start}
	}
	path, _, found := astar.Path(g.Nodes[start], g.Nodes[goal])
	if !found {
		return nil
	}

	// Path comes back goal first
	result := make([]int, len(path))
	for i, p := range path {
		result[len(path)-1-i] = p.(*RouteNode).Index
	}
	return result
}

// Route finds the route from the start platform to the finish platform.
func Route(p *Plan) ([]int, bool) {
	if len(p.Platforms) == 0 {
		return nil, false
	}
	path := BuildRouteGraph(p).FindPath(0, len(p.Platforms)-1)
	return path, path != nil
}
