package navigation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlternativePaths(t *testing.T) {
	t.Run("first candidate is the true shortest path", func(t *testing.T) {
		g := quadGraph()

		best, err := ShortestPath(g, "A", "D", false)
		require.NoError(t, err)

		candidates, err := AlternativePaths(g, "A", "D", 5)
		require.NoError(t, err)
		require.NotEmpty(t, candidates)

		assert.Equal(t, best.Path, candidates[0].Path)
		assert.InDelta(t, 4.0, candidates[0].Distance, 1e-9)
		assert.True(t, candidates[0].Optimal)
		assert.Equal(t, 1, candidates[0].Rank)
	})

	t.Run("never more than k and never duplicated", func(t *testing.T) {
		g := quadGraph()

		candidates, err := AlternativePaths(g, "A", "D", 5)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(candidates), 5)

		seen := map[string]bool{}
		for _, c := range candidates {
			key := strings.Join(c.Path, "|")
			assert.False(t, seen[key], "duplicate path %s", key)
			seen[key] = true
		}
	})

	t.Run("sorted non-decreasing by distance with ordinal ranks", func(t *testing.T) {
		g := quadGraph()

		candidates, err := AlternativePaths(g, "A", "D", 5)
		require.NoError(t, err)

		for i := 1; i < len(candidates); i++ {
			assert.GreaterOrEqual(t, candidates[i].Distance, candidates[i-1].Distance)
			assert.Equal(t, i+1, candidates[i].Rank)
			assert.False(t, candidates[i].Optimal)
		}
	})

	t.Run("bridge topology yields fewer than k", func(t *testing.T) {
		// single viable corridor: A - B - C
		g := graphFromEdges([]string{"A", "B", "C"}, map[[2]string]float64{
			{"A", "B"}: 1,
			{"B", "C"}: 1,
		})

		candidates, err := AlternativePaths(g, "A", "C", 4)
		require.NoError(t, err)
		assert.Len(t, candidates, 1)
	})

	t.Run("no path at all returns empty set", func(t *testing.T) {
		g := graphFromEdges([]string{"A", "B"}, map[[2]string]float64{})

		candidates, err := AlternativePaths(g, "A", "B", 3)
		require.NoError(t, err)
		assert.Empty(t, candidates)
	})

	t.Run("unknown location is an error", func(t *testing.T) {
		g := quadGraph()
		_, err := AlternativePaths(g, "A", "Nowhere", 3)
		assert.ErrorIs(t, err, ErrUnknownLocation)
	})

	t.Run("invalid k is an error", func(t *testing.T) {
		g := quadGraph()
		_, err := AlternativePaths(g, "A", "D", 0)
		assert.ErrorIs(t, err, ErrInvalidRouteCount)
	})

	t.Run("input graph is not mutated", func(t *testing.T) {
		g := quadGraph()
		before := g.EdgeCount()

		_, err := AlternativePaths(g, "A", "D", 5)
		require.NoError(t, err)

		assert.Equal(t, before, g.EdgeCount())
	})

	t.Run("candidate paths are valid on the original graph", func(t *testing.T) {
		g := quadGraph()

		candidates, err := AlternativePaths(g, "A", "D", 5)
		require.NoError(t, err)

		for _, c := range candidates {
			recomputed, ok := g.PathDistance(c.Path)
			require.True(t, ok, "candidate %v must exist on the unmodified graph", c.Path)
			assert.InDelta(t, c.Distance, recomputed, 1e-9)
		}
	})
}
