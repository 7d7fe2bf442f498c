package navigation

import "sort"

// maxFanOut caps how many neighbors the explorer follows out of each node.
// Together with the depth and count bounds it keeps the enumeration from
// exploding on denser graphs, at the cost of completeness: the explorer
// returns a representative sample of the route space, never a provably
// exhaustive listing. Callers use it for descriptive statistics only; the
// shortest-path engine stays the authoritative answer.
const maxFanOut = 8

// SamplePaths enumerates simple paths from source to destination by bounded
// depth-first traversal: at most maxDepth hops, at most maxPaths results,
// and at most maxFanOut neighbors per node. Results are sorted ascending by
// total distance.
//
// A traversal fault is recovered locally: the sampler falls back to the
// single shortest-path result rather than surfacing a failure.
func SamplePaths(g *Graph, source, destination string, maxDepth, maxPaths int) (samples []SampledPath, err error) {
	if !g.HasNode(source) || !g.HasNode(destination) {
		return nil, ErrUnknownLocation
	}
	if maxDepth < 1 || maxPaths < 1 {
		return []SampledPath{}, nil
	}

	defer func() {
		if r := recover(); r != nil {
			samples, err = fallbackSample(g, source, destination)
		}
	}()

	e := &explorer{
		graph:    g,
		target:   destination,
		maxDepth: maxDepth,
		maxPaths: maxPaths,
	}
	e.walk(source, 0, []string{source}, map[string]bool{source: true})

	sort.SliceStable(e.found, func(i, j int) bool {
		return e.found[i].Distance < e.found[j].Distance
	})
	if e.found == nil {
		e.found = []SampledPath{}
	}
	return e.found, nil
}

type explorer struct {
	graph    *Graph
	target   string
	maxDepth int
	maxPaths int
	found    []SampledPath
}

func (e *explorer) walk(current string, depth int, path []string, visited map[string]bool) {
	if depth > e.maxDepth || len(e.found) >= e.maxPaths {
		return
	}
	if current == e.target {
		if dist, ok := e.graph.PathDistance(path); ok {
			e.found = append(e.found, SampledPath{
				Path:     append([]string(nil), path...),
				Distance: dist,
			})
		}
		return
	}

	neighbors := e.graph.Neighbors(current)
	if len(neighbors) > maxFanOut {
		neighbors = neighbors[:maxFanOut]
	}
	for _, neighbor := range neighbors {
		if visited[neighbor] {
			continue
		}
		visited[neighbor] = true
		e.walk(neighbor, depth+1, append(path, neighbor), visited)
		visited[neighbor] = false
	}
}

func fallbackSample(g *Graph, source, destination string) ([]SampledPath, error) {
	result, err := ShortestPath(g, source, destination, false)
	if err != nil {
		return nil, err
	}
	if !result.Reachable() {
		return []SampledPath{}, nil
	}
	return []SampledPath{{Path: result.Path, Distance: result.Distance}}, nil
}
