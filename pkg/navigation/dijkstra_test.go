package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortestPath(t *testing.T) {
	t.Run("four node scenario", func(t *testing.T) {
		g := quadGraph()

		result, err := ShortestPath(g, "A", "D", false)
		require.NoError(t, err)

		assert.Equal(t, []string{"A", "B", "C", "D"}, result.Path)
		assert.InDelta(t, 4.0, result.Distance, 1e-9)
		assert.True(t, result.Reachable())
	})

	t.Run("reported distance matches recomputed edge sum", func(t *testing.T) {
		g, err := BuildGraph(campusTestPoints(), DefaultMaxEdgeKM)
		require.NoError(t, err)

		result, err := ShortestPath(g, "Main Gate", "Sports Complex", false)
		require.NoError(t, err)
		require.True(t, result.Reachable())

		recomputed, ok := g.PathDistance(result.Path)
		require.True(t, ok)
		assert.InDelta(t, result.Distance, recomputed, 1e-9)
	})

	t.Run("source equals destination", func(t *testing.T) {
		g := quadGraph()

		result, err := ShortestPath(g, "A", "A", true)
		require.NoError(t, err)

		assert.Equal(t, []string{"A"}, result.Path)
		assert.Equal(t, 0.0, result.Distance)
	})

	t.Run("unreachable destination is not an error", func(t *testing.T) {
		g, err := BuildGraph(campusTestPoints(), DefaultMaxEdgeKM)
		require.NoError(t, err)

		result, err := ShortestPath(g, "Main Gate", "Remote Annex", true)
		require.NoError(t, err)

		assert.Empty(t, result.Path)
		assert.False(t, result.Reachable())
	})

	t.Run("unknown source", func(t *testing.T) {
		g := quadGraph()
		_, err := ShortestPath(g, "Nowhere", "A", false)
		assert.ErrorIs(t, err, ErrUnknownLocation)
	})

	t.Run("unknown destination", func(t *testing.T) {
		g := quadGraph()
		_, err := ShortestPath(g, "A", "Nowhere", false)
		assert.ErrorIs(t, err, ErrUnknownLocation)
	})

	t.Run("deterministic across runs", func(t *testing.T) {
		g, err := BuildGraph(campusTestPoints(), DefaultMaxEdgeKM)
		require.NoError(t, err)

		first, err := ShortestPath(g, "Lagoon Front", "Sports Complex", true)
		require.NoError(t, err)
		second, err := ShortestPath(g, "Lagoon Front", "Sports Complex", true)
		require.NoError(t, err)

		assert.Equal(t, first.Path, second.Path)
		assert.Equal(t, first.Distance, second.Distance)
		assert.Equal(t, len(first.Steps), len(second.Steps))
	})

	t.Run("does not mutate the graph", func(t *testing.T) {
		g := quadGraph()
		before := g.EdgeCount()

		_, err := ShortestPath(g, "A", "D", true)
		require.NoError(t, err)

		assert.Equal(t, before, g.EdgeCount())
	})
}

func TestShortestPathTrace(t *testing.T) {
	g := quadGraph()

	result, err := ShortestPath(g, "A", "D", true)
	require.NoError(t, err)
	require.NotEmpty(t, result.Steps)

	t.Run("first record is initialization", func(t *testing.T) {
		first := result.Steps[0]
		assert.Equal(t, StepInitialize, first.Action)
		assert.Equal(t, "A", first.CurrentNode)
		require.NotNil(t, first.Distances["A"])
		assert.Equal(t, 0.0, *first.Distances["A"])
		assert.Nil(t, first.Distances["D"], "unreached nodes snapshot as nil")
		assert.Empty(t, first.Visited)
	})

	t.Run("last record is completion with the final path", func(t *testing.T) {
		last := result.Steps[len(result.Steps)-1]
		assert.Equal(t, StepComplete, last.Action)
		assert.Equal(t, []string{"A", "B", "C", "D"}, last.FinalPath)
		assert.Empty(t, last.Queue)
	})

	t.Run("relaxations carry the improved edge", func(t *testing.T) {
		relaxations := 0
		for _, step := range result.Steps {
			if step.Action == StepRelaxEdge {
				relaxations++
				require.NotNil(t, step.Edge)
				w, ok := g.EdgeWeight(step.Edge.From, step.Edge.To)
				assert.True(t, ok)
				assert.Greater(t, w, 0.0)
			}
		}
		assert.Greater(t, relaxations, 0)
	})

	t.Run("sequence numbers are contiguous for replay indexing", func(t *testing.T) {
		for i, step := range result.Steps {
			assert.Equal(t, i, step.Seq)
		}
	})

	t.Run("no steps recorded when tracing is off", func(t *testing.T) {
		untraced, err := ShortestPath(g, "A", "D", false)
		require.NoError(t, err)
		assert.Empty(t, untraced.Steps)
		assert.Equal(t, result.Path, untraced.Path)
	})
}
