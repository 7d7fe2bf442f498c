package usecases

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"campus-nav/pkg/geo"
	"campus-nav/pkg/navigation"

	"go.uber.org/zap"
)

const (
	// walking speeds in meters per minute; emergencies assume a brisk pace
	walkSpeedMPerMin      = 80.0
	emergencySpeedMPerMin = 120.0
)

var (
	ErrUnknownEmergencyType = errors.New("unknown emergency type")
	ErrNoEmergencyRoute     = errors.New("no reachable emergency destination")
)

// emergencyDestinations maps an emergency category to its candidate
// destinations, best choice first.
var emergencyDestinations = map[string][]string{
	"medical":    {"Medical Center", "Senate Building"},
	"security":   {"Security Unit", "Main Gate"},
	"fire":       {"Fire Service Station", "Main Gate"},
	"evacuation": {"Main Gate", "Sports Complex", "University Library"},
}

// academicKeywords marks path nodes counted as academic buildings.
var academicKeywords = []string{"Faculty", "Department", "School", "College"}

// Config bounds the per-request computations.
type Config struct {
	MaxEdgeKM         float64
	AlternativeRoutes int
	ExplorerMaxDepth  int
	ExplorerMaxPaths  int
}

// DefaultConfig mirrors the limits the campus dataset was tuned with.
func DefaultConfig() Config {
	return Config{
		MaxEdgeKM:         navigation.DefaultMaxEdgeKM,
		AlternativeRoutes: 5,
		ExplorerMaxDepth:  6,
		ExplorerMaxPaths:  50,
	}
}

// NavigatorService answers route queries over a static location set. Every
// query rebuilds its graph from the point set, so concurrent requests never
// share mutable state.
type NavigatorService struct {
	log    *zap.Logger
	points []navigation.Point
	cfg    Config
}

func New(log *zap.Logger, points []navigation.Point, cfg Config) *NavigatorService {
	if cfg.MaxEdgeKM <= 0 {
		cfg.MaxEdgeKM = navigation.DefaultMaxEdgeKM
	}
	if cfg.AlternativeRoutes < 1 {
		cfg.AlternativeRoutes = 5
	}
	if cfg.ExplorerMaxDepth < 1 {
		cfg.ExplorerMaxDepth = 6
	}
	if cfg.ExplorerMaxPaths < 1 {
		cfg.ExplorerMaxPaths = 50
	}
	return &NavigatorService{log: log, points: points, cfg: cfg}
}

// Locations lists the dataset for dropdowns and map markers.
func (s *NavigatorService) Locations() []navigation.Point {
	out := make([]navigation.Point, len(s.points))
	copy(out, s.points)
	return out
}

// PlanRoute computes the traced shortest path between two locations plus the
// sampled-route context used to explain it.
func (s *NavigatorService) PlanRoute(source, destination string) (RoutePlan, error) {
	g, err := navigation.BuildGraph(s.points, s.cfg.MaxEdgeKM)
	if err != nil {
		return RoutePlan{}, fmt.Errorf("build graph: %w", err)
	}

	result, err := navigation.ShortestPath(g, source, destination, true)
	if err != nil {
		return RoutePlan{}, err
	}

	plan := RoutePlan{
		Path:            result.Path,
		PathCoordinates: s.pathCoordinates(g, result.Path),
		AlgorithmSteps:  result.Steps,
		NodesExplored:   nodesExplored(result.Steps),
		ConnectedNodes:  g.NodeCount(),
	}

	if result.Reachable() {
		km := result.Distance
		m := km * 1000
		plan.TotalDistanceKM = &km
		plan.TotalDistanceM = &m
		plan.WalkingTimeMinutes = walkingMinutes(m, walkSpeedMPerMin)
		plan.AcademicBuildingsPassed = countAcademicBuildings(result.Path)

		samples, err := navigation.SamplePaths(g, source, destination, s.cfg.ExplorerMaxDepth, s.cfg.ExplorerMaxPaths)
		if err != nil {
			// descriptive statistics are best-effort; the route itself stands
			s.log.Warn("route sampling failed", zap.Error(err))
		} else {
			plan.RouteAnalysis = navigation.AnalyzeSamples(samples)
			plan.SampledRoutes = len(samples)
		}
	}

	s.log.Info("planned route",
		zap.String("source", source),
		zap.String("destination", destination),
		zap.Int("hops", len(plan.Path)),
		zap.Bool("reachable", result.Reachable()))

	return plan, nil
}

// AlternativeRoutes returns up to k ranked alternatives. k below 1 falls
// back to the configured default.
func (s *NavigatorService) AlternativeRoutes(source, destination string, k int) (AlternativesPlan, error) {
	if k < 1 {
		k = s.cfg.AlternativeRoutes
	}

	g, err := navigation.BuildGraph(s.points, s.cfg.MaxEdgeKM)
	if err != nil {
		return AlternativesPlan{}, fmt.Errorf("build graph: %w", err)
	}

	candidates, err := navigation.AlternativePaths(g, source, destination, k)
	if err != nil {
		return AlternativesPlan{}, err
	}

	plan := AlternativesPlan{Routes: make([]RouteOption, 0, len(candidates))}
	for _, c := range candidates {
		m := c.Distance * 1000
		plan.Routes = append(plan.Routes, RouteOption{
			Path:               c.Path,
			PathCoordinates:    s.pathCoordinates(g, c.Path),
			DistanceKM:         c.Distance,
			DistanceM:          m,
			WalkingTimeMinutes: walkingMinutes(m, walkSpeedMPerMin),
			RouteRank:          c.Rank,
			IsOptimal:          c.Optimal,
		})
	}

	if len(candidates) > 0 {
		samples, err := navigation.SamplePaths(g, source, destination, s.cfg.ExplorerMaxDepth, s.cfg.ExplorerMaxPaths)
		if err == nil {
			plan.RouteAnalysis = navigation.AnalyzeSamples(samples)
			plan.SampledRoutes = len(samples)
		}
	}

	s.log.Info("found alternative routes",
		zap.String("source", source),
		zap.String("destination", destination),
		zap.Int("requested", k),
		zap.Int("found", len(plan.Routes)))

	return plan, nil
}

// EmergencyRoute picks the nearest reachable destination of the requested
// emergency category and routes to it at the emergency walking pace.
func (s *NavigatorService) EmergencyRoute(source, emergencyType string) (EmergencyPlan, error) {
	destinations, ok := emergencyDestinations[emergencyType]
	if !ok {
		return EmergencyPlan{}, fmt.Errorf("%q: %w", emergencyType, ErrUnknownEmergencyType)
	}

	g, err := navigation.BuildGraph(s.points, s.cfg.MaxEdgeKM)
	if err != nil {
		return EmergencyPlan{}, fmt.Errorf("build graph: %w", err)
	}
	if !g.HasNode(source) {
		return EmergencyPlan{}, fmt.Errorf("source %q: %w", source, navigation.ErrUnknownLocation)
	}

	var best navigation.PathResult
	bestDestination := ""
	for _, destination := range destinations {
		if !g.HasNode(destination) {
			continue
		}
		result, err := navigation.ShortestPath(g, source, destination, false)
		if err != nil {
			return EmergencyPlan{}, err
		}
		if !result.Reachable() {
			continue
		}
		if bestDestination == "" || result.Distance < best.Distance {
			best = result
			bestDestination = destination
		}
	}
	if bestDestination == "" {
		return EmergencyPlan{}, fmt.Errorf("from %q: %w", source, ErrNoEmergencyRoute)
	}

	m := best.Distance * 1000
	plan := EmergencyPlan{
		Path:                 best.Path,
		PathCoordinates:      s.pathCoordinates(g, best.Path),
		Directions:           s.segmentDirections(g, best.Path),
		TotalDistanceKM:      best.Distance,
		EstimatedTimeMinutes: walkingMinutes(m, emergencySpeedMPerMin),
		EmergencyType:        emergencyType,
		Destination:          bestDestination,
	}

	s.log.Info("planned emergency route",
		zap.String("source", source),
		zap.String("type", emergencyType),
		zap.String("destination", bestDestination))

	return plan, nil
}

func (s *NavigatorService) pathCoordinates(g *navigation.Graph, path []string) []Coordinate {
	coords := make([]Coordinate, 0, len(path))
	for _, name := range path {
		if p, ok := g.Point(name); ok {
			coords = append(coords, Coordinate{p.Lat, p.Lon})
		}
	}
	return coords
}

// segmentDirections renders a coarse instruction per path segment, one
// compass heading towards the next node.
func (s *NavigatorService) segmentDirections(g *navigation.Graph, path []string) []string {
	if len(path) < 2 {
		return []string{}
	}
	directions := make([]string, 0, len(path)-1)
	for i := 0; i < len(path)-1; i++ {
		from, okFrom := g.Point(path[i])
		to, okTo := g.Point(path[i+1])
		if !okFrom || !okTo {
			continue
		}
		bearing := geo.Bearing(from.Lat, from.Lon, to.Lat, to.Lon)
		directions = append(directions, fmt.Sprintf("head %s towards %s", compassDirection(bearing), to.Name))
	}
	return directions
}

var compassNames = [...]string{"north", "northeast", "east", "southeast", "south", "southwest", "west", "northwest"}

func compassDirection(bearing float64) string {
	sector := int(math.Mod(bearing+22.5, 360) / 45)
	return compassNames[sector]
}

func walkingMinutes(distanceM, speedMPerMin float64) int {
	minutes := int(distanceM / speedMPerMin)
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

func countAcademicBuildings(path []string) int {
	count := 0
	for _, node := range path {
		for _, keyword := range academicKeywords {
			if strings.Contains(node, keyword) {
				count++
				break
			}
		}
	}
	return count
}

// nodesExplored counts the nodes the traced search finalized.
func nodesExplored(steps []navigation.Step) int {
	explored := 0
	for _, step := range steps {
		if len(step.Visited) > explored {
			explored = len(step.Visited)
		}
	}
	return explored
}
