package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSamplePaths(t *testing.T) {
	t.Run("finds the simple paths of the quad graph", func(t *testing.T) {
		g := quadGraph()

		samples, err := SamplePaths(g, "A", "D", 6, 50)
		require.NoError(t, err)

		// A-B-C-D=4, A-C-D=5, A-B-D=6, A-C-B-D=11
		require.Len(t, samples, 4)
		assert.Equal(t, []string{"A", "B", "C", "D"}, samples[0].Path)
		assert.InDelta(t, 4.0, samples[0].Distance, 1e-9)
		assert.InDelta(t, 11.0, samples[3].Distance, 1e-9)
	})

	t.Run("sorted ascending by distance", func(t *testing.T) {
		g := quadGraph()

		samples, err := SamplePaths(g, "A", "D", 6, 50)
		require.NoError(t, err)

		for i := 1; i < len(samples); i++ {
			assert.GreaterOrEqual(t, samples[i].Distance, samples[i-1].Distance)
		}
	})

	t.Run("paths are simple", func(t *testing.T) {
		g := quadGraph()

		samples, err := SamplePaths(g, "A", "D", 6, 50)
		require.NoError(t, err)

		for _, s := range samples {
			visited := map[string]bool{}
			for _, node := range s.Path {
				assert.False(t, visited[node], "node %s repeated in %v", node, s.Path)
				visited[node] = true
			}
		}
	})

	t.Run("depth bound prunes long routes", func(t *testing.T) {
		g := quadGraph()

		samples, err := SamplePaths(g, "A", "D", 2, 50)
		require.NoError(t, err)

		for _, s := range samples {
			assert.LessOrEqual(t, len(s.Path)-1, 2)
		}
	})

	t.Run("result count bound", func(t *testing.T) {
		g := quadGraph()

		samples, err := SamplePaths(g, "A", "D", 6, 2)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(samples), 2)
	})

	t.Run("no route yields empty sample", func(t *testing.T) {
		g := graphFromEdges([]string{"A", "B"}, map[[2]string]float64{})

		samples, err := SamplePaths(g, "A", "B", 6, 50)
		require.NoError(t, err)
		assert.Empty(t, samples)
	})

	t.Run("unknown location is an error", func(t *testing.T) {
		g := quadGraph()
		_, err := SamplePaths(g, "A", "Nowhere", 6, 50)
		assert.ErrorIs(t, err, ErrUnknownLocation)
	})
}

func TestAnalyzeSamples(t *testing.T) {
	t.Run("empty sample", func(t *testing.T) {
		assert.Equal(t, RouteAnalysis{}, AnalyzeSamples(nil))
	})

	t.Run("quad graph analysis", func(t *testing.T) {
		g := quadGraph()
		samples, err := SamplePaths(g, "A", "D", 6, 50)
		require.NoError(t, err)

		analysis := AnalyzeSamples(samples)
		assert.Equal(t, 4, analysis.RoutesFound)
		assert.InDelta(t, 4.0, analysis.ShortestKM, 1e-9)
		assert.InDelta(t, 11.0, analysis.LongestKM, 1e-9)
		assert.InDelta(t, 7000.0, analysis.DifferenceMeters, 1e-6)
	})
}
