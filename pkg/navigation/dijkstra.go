package navigation

import (
	"fmt"
	"math"
)

// ShortestPath computes the minimum-distance route between two named nodes
// with Dijkstra's label-setting algorithm. The unfinalized node with the
// smallest distance is found by a linear scan over the sorted node list; at
// campus scale a priority queue buys nothing and the scan keeps tie-breaking
// deterministic. The input graph is never mutated.
//
// When trace is true every relaxation appends a Step with a full distance
// snapshot, bracketed by an initialize record and, for reachable
// destinations, a complete record. The returned slice is ordered and
// indexable so a caller can replay the search back and forth.
//
// An unreachable destination is a normal outcome: empty path, sentinel
// distance, no error. An unknown source or destination name is an
// ErrUnknownLocation.
func ShortestPath(g *Graph, source, destination string, trace bool) (PathResult, error) {
	if !g.HasNode(source) {
		return PathResult{}, fmt.Errorf("source %q: %w", source, ErrUnknownLocation)
	}
	if !g.HasNode(destination) {
		return PathResult{}, fmt.Errorf("destination %q: %w", destination, ErrUnknownLocation)
	}

	if source == destination {
		return PathResult{Path: []string{source}, Distance: 0}, nil
	}

	nodes := g.Nodes()
	dist := make(map[string]float64, len(nodes))
	prev := make(map[string]string, len(nodes))
	unvisited := make(map[string]bool, len(nodes))
	for _, node := range nodes {
		dist[node] = unreachableKM
		unvisited[node] = true
	}
	dist[source] = 0

	var steps []Step
	var visitedOrder []string
	seq := 0
	if trace {
		steps = append(steps, Step{
			Seq:         seq,
			Action:      StepInitialize,
			Description: fmt.Sprintf("Initialize: set distance to %s = 0, all others = unreachable", source),
			CurrentNode: source,
			Distances:   distanceSnapshot(dist),
			Visited:     []string{},
			Queue:       pendingNodes(nodes, unvisited),
		})
		seq++
	}

	for len(unvisited) > 0 {
		current, currentDist := nextUnvisited(nodes, unvisited, dist)
		if !Reachable(currentDist) {
			// everything left is cut off from the source
			break
		}
		visitedOrder = append(visitedOrder, current)
		delete(unvisited, current)

		if current == destination {
			break
		}

		for _, neighbor := range g.Neighbors(current) {
			if !unvisited[neighbor] {
				continue
			}
			weight, _ := g.EdgeWeight(current, neighbor)
			candidate := currentDist + weight
			if candidate < dist[neighbor] {
				dist[neighbor] = candidate
				prev[neighbor] = current
				if trace {
					steps = append(steps, Step{
						Seq:         seq,
						Action:      StepRelaxEdge,
						Description: fmt.Sprintf("Relax edge %s -> %s. New distance: %.3fkm", current, neighbor, candidate),
						CurrentNode: current,
						Distances:   distanceSnapshot(dist),
						Visited:     append([]string(nil), visitedOrder...),
						Queue:       pendingNodes(nodes, unvisited),
						Edge:        &TracedEdge{From: current, To: neighbor},
					})
					seq++
				}
			}
		}
	}

	path := reconstructPath(prev, source, destination)
	if len(path) == 0 {
		return PathResult{Path: []string{}, Distance: unreachableKM, Steps: steps}, nil
	}

	finalDist := dist[destination]
	if trace {
		steps = append(steps, Step{
			Seq:         seq,
			Action:      StepComplete,
			Description: fmt.Sprintf("Search complete. Shortest distance: %.3fkm", finalDist),
			CurrentNode: destination,
			Distances:   distanceSnapshot(dist),
			Visited:     append([]string(nil), visitedOrder...),
			Queue:       []string{},
			FinalPath:   path,
		})
	}

	return PathResult{Path: path, Distance: finalDist, Steps: steps}, nil
}

// nextUnvisited scans the sorted node list for the unfinalized node with the
// smallest current distance. Ties resolve to the alphabetically first node,
// which keeps repeated runs over the same graph identical.
func nextUnvisited(nodes []string, unvisited map[string]bool, dist map[string]float64) (string, float64) {
	current := ""
	best := math.Inf(1)
	for _, node := range nodes {
		if unvisited[node] && dist[node] < best {
			current = node
			best = dist[node]
		}
	}
	return current, best
}

func reconstructPath(prev map[string]string, source, destination string) []string {
	if _, ok := prev[destination]; !ok {
		return nil
	}
	path := []string{destination}
	node := destination
	for node != source {
		parent, ok := prev[node]
		if !ok {
			return nil
		}
		path = append(path, parent)
		node = parent
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// distanceSnapshot copies the working distances into a serializable form:
// nil for unreached nodes, values rounded to meters so a replay UI shows
// stable numbers. The sentinel never leaks to the boundary.
func distanceSnapshot(dist map[string]float64) map[string]*float64 {
	snapshot := make(map[string]*float64, len(dist))
	for node, d := range dist {
		if !Reachable(d) {
			snapshot[node] = nil
			continue
		}
		rounded := math.Round(d*1000) / 1000
		snapshot[node] = &rounded
	}
	return snapshot
}

func pendingNodes(nodes []string, unvisited map[string]bool) []string {
	pending := make([]string, 0, len(unvisited))
	for _, node := range nodes {
		if unvisited[node] {
			pending = append(pending, node)
		}
	}
	return pending
}
