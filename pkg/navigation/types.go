// Package navigation implements the campus pathfinding core: a proximity
// graph over named coordinates, an instrumented Dijkstra shortest-path
// engine, an edge-removal alternative-route finder, and a bounded
// depth-first path sampler.
package navigation

// Point is a named campus location with coordinates in decimal degrees.
type Point struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// unreachableKM is the sentinel distance for nodes the search never reached.
// It is a large finite constant rather than math.Inf so a distance snapshot
// stays representable at the JSON boundary (Inf is not valid JSON). Compare
// through Reachable, never against the constant directly.
const unreachableKM = 999999.0

// Reachable reports whether a distance value denotes a real path distance
// as opposed to the unreachable sentinel.
func Reachable(distanceKM float64) bool {
	return distanceKM < unreachableKM
}

// StepAction tags one state transition of a traced shortest-path run.
type StepAction string

const (
	StepInitialize StepAction = "initialize"
	StepRelaxEdge  StepAction = "relax_edge"
	StepComplete   StepAction = "complete"
)

// TracedEdge identifies the edge a relaxation step just improved.
type TracedEdge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Step is one append-only record of a traced search. Distances holds a full
// snapshot of the best-known distance per node at the time of the step, nil
// for nodes not reached yet, so the slice can replay the run step by step in
// a visualization.
type Step struct {
	Seq         int                 `json:"step"`
	Action      StepAction          `json:"action"`
	Description string              `json:"description"`
	CurrentNode string              `json:"current_node"`
	Distances   map[string]*float64 `json:"distances"`
	Visited     []string            `json:"visited"`
	Queue       []string            `json:"queue"`
	Edge        *TracedEdge         `json:"edge,omitempty"`
	FinalPath   []string            `json:"final_path,omitempty"`
}

// PathResult is the outcome of one shortest-path computation. Path is empty
// and Distance carries the unreachable sentinel when no route exists; use
// Reachable to check.
type PathResult struct {
	Path     []string
	Distance float64
	Steps    []Step
}

// Reachable reports whether the result describes an actual route.
func (r PathResult) Reachable() bool {
	return len(r.Path) > 0 && Reachable(r.Distance)
}

// RouteCandidate is one entry of an alternative-routes answer.
type RouteCandidate struct {
	PathResult
	Rank    int
	Optimal bool
}

// SampledPath is one simple path found by the bounded explorer.
type SampledPath struct {
	Path     []string
	Distance float64
}
