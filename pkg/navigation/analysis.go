package navigation

// RouteAnalysis summarizes a sampled route set so a caller can explain the
// optimal choice against the alternatives ("best of N sampled routes").
type RouteAnalysis struct {
	RoutesFound      int     `json:"routes_found"`
	ShortestKM       float64 `json:"shortest_km"`
	LongestKM        float64 `json:"longest_km"`
	DifferenceMeters float64 `json:"difference_m"`
}

// AnalyzeSamples derives descriptive statistics from an ascending-sorted
// sample set. An empty sample yields a zero analysis.
func AnalyzeSamples(samples []SampledPath) RouteAnalysis {
	if len(samples) == 0 {
		return RouteAnalysis{}
	}
	shortest := samples[0].Distance
	longest := samples[len(samples)-1].Distance
	return RouteAnalysis{
		RoutesFound:      len(samples),
		ShortestKM:       shortest,
		LongestKM:        longest,
		DifferenceMeters: (longest - shortest) * 1000,
	}
}
