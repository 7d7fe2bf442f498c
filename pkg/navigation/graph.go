package navigation

import (
	"fmt"
	"sort"

	"campus-nav/pkg/geo"
)

// DefaultMaxEdgeKM is the default maximum direct walking connection between
// two points. 800m keeps campus-scale graphs well connected without linking
// opposite ends of the grounds.
const DefaultMaxEdgeKM = 0.8

// Graph is a weighted adjacency structure over named points. Edge weights
// are haversine distances in kilometers. Construction is undirected: an edge
// u->v always has a reciprocal v->u entry with the same weight, until an
// edge is removed on a private copy by the alternative-route finder.
type Graph struct {
	adjacency map[string]map[string]float64
	points    map[string]Point
}

// BuildGraph connects every pair of distinct points whose haversine distance
// is at most maxEdgeKM. Points with no qualifying neighbor are kept as
// isolated nodes; path queries against them report unreachable rather than
// erroring. Pairwise construction is O(n^2), fine for the tens-to-hundreds
// of points a campus dataset holds but not for much larger sets.
func BuildGraph(points []Point, maxEdgeKM float64) (*Graph, error) {
	if len(points) == 0 {
		return nil, ErrEmptyPointSet
	}
	if maxEdgeKM <= 0 {
		return nil, fmt.Errorf("max edge distance must be positive, got %f", maxEdgeKM)
	}

	g := &Graph{
		adjacency: make(map[string]map[string]float64, len(points)),
		points:    make(map[string]Point, len(points)),
	}
	for _, p := range points {
		if _, ok := g.points[p.Name]; ok {
			return nil, fmt.Errorf("duplicate point name %q", p.Name)
		}
		g.points[p.Name] = p
		g.adjacency[p.Name] = make(map[string]float64)
	}

	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			a, b := points[i], points[j]
			dist := geo.HaversineDistance(a.Lat, a.Lon, b.Lat, b.Lon)
			if dist <= maxEdgeKM {
				g.adjacency[a.Name][b.Name] = dist
				g.adjacency[b.Name][a.Name] = dist
			}
		}
	}

	return g, nil
}

// HasNode reports whether name is a node of the graph.
func (g *Graph) HasNode(name string) bool {
	_, ok := g.adjacency[name]
	return ok
}

// Nodes returns all node names in sorted order. Sorted iteration keeps
// traversals deterministic across runs.
func (g *Graph) Nodes() []string {
	nodes := make([]string, 0, len(g.adjacency))
	for name := range g.adjacency {
		nodes = append(nodes, name)
	}
	sort.Strings(nodes)
	return nodes
}

// Neighbors returns the neighbor names of a node in sorted order.
func (g *Graph) Neighbors(name string) []string {
	edges := g.adjacency[name]
	neighbors := make([]string, 0, len(edges))
	for neighbor := range edges {
		neighbors = append(neighbors, neighbor)
	}
	sort.Strings(neighbors)
	return neighbors
}

// EdgeWeight returns the weight of the edge u->v, if present.
func (g *Graph) EdgeWeight(u, v string) (float64, bool) {
	w, ok := g.adjacency[u][v]
	return w, ok
}

// Point returns the coordinates behind a node name.
func (g *Graph) Point(name string) (Point, bool) {
	p, ok := g.points[name]
	return p, ok
}

// NodeCount returns the number of nodes, isolated ones included.
func (g *Graph) NodeCount() int {
	return len(g.adjacency)
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	directed := 0
	for _, edges := range g.adjacency {
		directed += len(edges)
	}
	return directed / 2
}

// Clone returns a deep copy of the graph. The alternative-route finder
// mutates only clones, so a graph shared by concurrent requests is never
// written to.
func (g *Graph) Clone() *Graph {
	clone := &Graph{
		adjacency: make(map[string]map[string]float64, len(g.adjacency)),
		points:    make(map[string]Point, len(g.points)),
	}
	for name, p := range g.points {
		clone.points[name] = p
	}
	for name, edges := range g.adjacency {
		cloned := make(map[string]float64, len(edges))
		for neighbor, w := range edges {
			cloned[neighbor] = w
		}
		clone.adjacency[name] = cloned
	}
	return clone
}

// RemoveEdge deletes the edge between u and v in both directions.
func (g *Graph) RemoveEdge(u, v string) {
	delete(g.adjacency[u], v)
	delete(g.adjacency[v], u)
}

// PathDistance sums the edge weights along a node sequence. The second
// return value is false when two consecutive nodes are not connected.
func (g *Graph) PathDistance(path []string) (float64, bool) {
	total := 0.0
	for i := 0; i < len(path)-1; i++ {
		w, ok := g.EdgeWeight(path[i], path[i+1])
		if !ok {
			return 0, false
		}
		total += w
	}
	return total, true
}
