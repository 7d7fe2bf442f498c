package usecases

import "campus-nav/pkg/navigation"

// Coordinate is a [lat, lon] pair for map rendering.
type Coordinate [2]float64

// RoutePlan is the full answer for a shortest-path request: the route, its
// traced search, walking metrics, and descriptive statistics over the
// sampled route space. Distances are nil when the destination is
// unreachable, never an infinity token.
type RoutePlan struct {
	Path                    []string                 `json:"path"`
	PathCoordinates         []Coordinate             `json:"path_coordinates"`
	TotalDistanceKM         *float64                 `json:"total_distance_km"`
	TotalDistanceM          *float64                 `json:"total_distance_m"`
	WalkingTimeMinutes      int                      `json:"walking_time_minutes"`
	AcademicBuildingsPassed int                      `json:"academic_buildings_passed"`
	AlgorithmSteps          []navigation.Step        `json:"algorithm_steps"`
	NodesExplored           int                      `json:"nodes_explored"`
	ConnectedNodes          int                      `json:"connected_nodes"`
	RouteAnalysis           navigation.RouteAnalysis `json:"route_analysis"`
	SampledRoutes           int                      `json:"sampled_routes"`
}

// RouteOption is one ranked alternative route.
type RouteOption struct {
	Path               []string     `json:"path"`
	PathCoordinates    []Coordinate `json:"path_coordinates"`
	DistanceKM         float64      `json:"distance_km"`
	DistanceM          float64      `json:"distance_m"`
	WalkingTimeMinutes int          `json:"walking_time_minutes"`
	RouteRank          int          `json:"route_rank"`
	IsOptimal          bool         `json:"is_optimal"`
}

// AlternativesPlan is the answer for an alternative-routes request.
type AlternativesPlan struct {
	Routes        []RouteOption            `json:"routes"`
	RouteAnalysis navigation.RouteAnalysis `json:"route_analysis"`
	SampledRoutes int                      `json:"sampled_routes"`
}

// EmergencyPlan is the fastest route to the nearest destination of an
// emergency category.
type EmergencyPlan struct {
	Path                 []string     `json:"path"`
	PathCoordinates      []Coordinate `json:"path_coordinates"`
	Directions           []string     `json:"directions"`
	TotalDistanceKM      float64      `json:"total_distance_km"`
	EstimatedTimeMinutes int          `json:"estimated_time_minutes"`
	EmergencyType        string       `json:"emergency_type"`
	Destination          string       `json:"destination"`
}
