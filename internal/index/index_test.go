package index

import (
	"testing"

	"github.com/jonathan/talent-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(id string, embedding ...float64) types.CatalogEntry {
	return types.CatalogEntry{
		ID:        id,
		Kind:      types.KindRole,
		Title:     id,
		Embedding: embedding,
	}
}

func TestBuild_NormalizesAndIndexes(t *testing.T) {
	idx, err := Build([]types.CatalogEntry{
		entry("role-a", 1, 0, 0),
		entry("role-b", 0, 2, 0),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, idx.Size())
	assert.Equal(t, 3, idx.Dimension())
}

func TestBuild_RejectsMissingEmbedding(t *testing.T) {
	_, err := Build([]types.CatalogEntry{{ID: "role-a"}})
	require.Error(t, err)

	var buildErr *BuildError
	require.ErrorAs(t, err, &buildErr)
	assert.Equal(t, "role-a", buildErr.EntryID)
}

func TestBuild_RejectsDimensionMismatch(t *testing.T) {
	_, err := Build([]types.CatalogEntry{
		entry("role-a", 1, 0),
		entry("role-b", 1, 0, 0),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dimension")
}

func TestBuild_RejectsZeroVector(t *testing.T) {
	_, err := Build([]types.CatalogEntry{entry("role-a", 0, 0, 0)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "zero-norm")
}

func TestSearch_OrdersBySimilarity(t *testing.T) {
	idx, err := Build([]types.CatalogEntry{
		entry("role-a", 0, 1, 0),
		entry("role-b", 1, 0, 0),
		entry("role-c", 1, 1, 0),
	})
	require.NoError(t, err)

	hits := idx.Search([]float64{1, 0, 0}, 3)
	require.Len(t, hits, 3)
	assert.Equal(t, "role-b", hits[0].Entry.ID)
	assert.InDelta(t, 1.0, hits[0].Similarity, 1e-9)
	assert.Equal(t, "role-c", hits[1].Entry.ID)
	assert.Equal(t, "role-a", hits[2].Entry.ID)
}

func TestSearch_TiesBrokenByEntryID(t *testing.T) {
	idx, err := Build([]types.CatalogEntry{
		entry("role-b", 1, 0),
		entry("role-a", 1, 0),
	})
	require.NoError(t, err)

	hits := idx.Search([]float64{1, 0}, 2)
	require.Len(t, hits, 2)
	assert.Equal(t, "role-a", hits[0].Entry.ID)
	assert.Equal(t, "role-b", hits[1].Entry.ID)
}

func TestSearch_CapsKAtIndexSize(t *testing.T) {
	idx, err := Build([]types.CatalogEntry{entry("role-a", 1, 0)})
	require.NoError(t, err)

	hits := idx.Search([]float64{1, 0}, 50)
	assert.Len(t, hits, 1)
}

func TestSearch_EmptyIndexReturnsNoHits(t *testing.T) {
	idx, err := Build(nil)
	require.NoError(t, err)

	assert.Empty(t, idx.Search([]float64{1, 0}, 10))
}

func TestSearch_ZeroQueryReturnsNoHits(t *testing.T) {
	idx, err := Build([]types.CatalogEntry{entry("role-a", 1, 0)})
	require.NoError(t, err)

	assert.Empty(t, idx.Search([]float64{0, 0}, 10))
}

func TestSearch_DimensionMismatchReturnsNoHits(t *testing.T) {
	idx, err := Build([]types.CatalogEntry{entry("role-a", 1, 0)})
	require.NoError(t, err)

	assert.Empty(t, idx.Search([]float64{1, 0, 0}, 10))
}
