package markov

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex_Stats(t *testing.T) {
	t.Run("Sample corpus", func(t *testing.T) {
		stats := sampleIndex(t).Stats()

		assert.Equal(t, 2, stats.Order)
		assert.Equal(t, 4, stats.Prefixes)
		assert.Equal(t, 5, stats.Candidates)
		assert.Equal(t, 4, stats.Vocabulary)
		assert.Equal(t, 2, stats.MaxBranching)
		assert.Equal(t, 1, stats.DeadEnds)
		assert.InDelta(t, 0.25, stats.MeanEntropy, 0.0001)
		assert.InDelta(t, 0.25, stats.MeanMinEntropy, 0.0001)
	})

	t.Run("Empty index", func(t *testing.T) {
		idx, err := Build(nil, 3)
		require.NoError(t, err)

		assert.Equal(t, Stats{Order: 3}, idx.Stats())
	})

	t.Run("Cycle has no dead ends", func(t *testing.T) {
		idx, err := Build([]string{"a", "b", "c", "a", "b", "c", "a"}, 1)
		require.NoError(t, err)

		stats := idx.Stats()
		assert.Equal(t, 0, stats.DeadEnds)
		assert.Equal(t, 1, stats.MaxBranching)
		assert.Equal(t, 0.0, stats.MeanEntropy)
	})
}
