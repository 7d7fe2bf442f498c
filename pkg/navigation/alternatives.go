package navigation

import "sort"

// AlternativePaths returns up to k route candidates between source and
// destination, ranked by ascending distance with the true shortest path
// first. Diversity comes from an edge-removal heuristic, not Yen's
// algorithm: after each accepted candidate the highest-weight edge along it
// is deleted (both directions) from a private working copy and the engine is
// re-run, which discourages reconvergence onto the same corridor. A
// bridge-like topology legitimately yields fewer than k candidates.
//
// The candidate set is deduplicated by node sequence and never includes an
// unreachable result. The input graph is not mutated.
func AlternativePaths(g *Graph, source, destination string, k int) ([]RouteCandidate, error) {
	if k < 1 {
		return nil, ErrInvalidRouteCount
	}

	best, err := ShortestPath(g, source, destination, false)
	if err != nil {
		return nil, err
	}
	if !best.Reachable() {
		return []RouteCandidate{}, nil
	}

	candidates := []RouteCandidate{{PathResult: best}}
	seen := map[string]bool{pathKey(best.Path): true}

	working := g.Clone()
	lastAccepted := best.Path
	for len(candidates) < k {
		u, v, ok := heaviestEdge(working, lastAccepted)
		if !ok {
			break
		}
		working.RemoveEdge(u, v)

		next, err := ShortestPath(working, source, destination, false)
		if err != nil {
			return nil, err
		}
		if !next.Reachable() {
			break
		}
		if seen[pathKey(next.Path)] {
			// the removal did not change the route; take another edge
			// off it on the next round
			lastAccepted = next.Path
			continue
		}
		seen[pathKey(next.Path)] = true
		candidates = append(candidates, RouteCandidate{PathResult: next})
		lastAccepted = next.Path
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Distance < candidates[j].Distance
	})
	for i := range candidates {
		candidates[i].Rank = i + 1
		candidates[i].Optimal = i == 0
	}
	return candidates, nil
}

// heaviestEdge finds the largest-weight edge still present along a path.
// Ties resolve to the edge closest to the path start.
func heaviestEdge(g *Graph, path []string) (string, string, bool) {
	maxWeight := 0.0
	var from, to string
	found := false
	for i := 0; i < len(path)-1; i++ {
		w, ok := g.EdgeWeight(path[i], path[i+1])
		if ok && w > maxWeight {
			maxWeight = w
			from, to = path[i], path[i+1]
			found = true
		}
	}
	return from, to, found
}

func pathKey(path []string) string {
	key := ""
	for _, node := range path {
		key += node + "\x00"
	}
	return key
}
