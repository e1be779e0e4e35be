// Package index provides nearest-neighbor retrieval over pre-embedded catalog entries.
//
// The index is built once from the full catalog and is read-only afterwards,
// so it may be shared across concurrent requests without locking. Similarity
// is cosine, computed as inner product over L2-normalized vectors.
package index

import (
	"fmt"
	"math"
	"sort"

	"github.com/jonathan/talent-matcher/internal/types"
)

// Hit is one retrieval result: a catalog entry and its cosine similarity to
// the query vector.
type Hit struct {
	Entry      *types.CatalogEntry
	Similarity float64
}

// Index holds normalized entry embeddings for retrieval.
type Index struct {
	entries []types.CatalogEntry
	vectors [][]float64
	dim     int
}

// BuildError indicates the catalog could not be indexed. Partial builds are
// discarded, never served.
type BuildError struct {
	EntryID string
	Message string
}

func (e *BuildError) Error() string {
	if e.EntryID != "" {
		return fmt.Sprintf("index build failed at entry %s: %s", e.EntryID, e.Message)
	}
	return fmt.Sprintf("index build failed: %s", e.Message)
}

// Build constructs an index from catalog entries. All entries must carry an
// embedding of the same dimension with a non-zero norm; any violation fails
// the whole build.
func Build(entries []types.CatalogEntry) (*Index, error) {
	idx := &Index{
		entries: make([]types.CatalogEntry, 0, len(entries)),
		vectors: make([][]float64, 0, len(entries)),
	}

	for _, entry := range entries {
		if len(entry.Embedding) == 0 {
			return nil, &BuildError{EntryID: entry.ID, Message: "missing embedding"}
		}
		if idx.dim == 0 {
			idx.dim = len(entry.Embedding)
		}
		if len(entry.Embedding) != idx.dim {
			return nil, &BuildError{
				EntryID: entry.ID,
				Message: fmt.Sprintf("embedding dimension %d does not match index dimension %d", len(entry.Embedding), idx.dim),
			}
		}

		vec, ok := normalize(entry.Embedding)
		if !ok {
			return nil, &BuildError{EntryID: entry.ID, Message: "zero-norm embedding"}
		}

		idx.entries = append(idx.entries, entry)
		idx.vectors = append(idx.vectors, vec)
	}

	return idx, nil
}

// Size returns the number of indexed entries.
func (idx *Index) Size() int {
	return len(idx.entries)
}

// Dimension returns the embedding dimension, or 0 for an empty index.
func (idx *Index) Dimension() int {
	return idx.dim
}

// Entries returns the indexed catalog entries.
func (idx *Index) Entries() []types.CatalogEntry {
	return idx.entries
}

// Search returns up to k entries ordered by cosine similarity descending,
// ties broken by entry ID ascending. An empty index, a non-positive k, a
// dimension mismatch or a degenerate query vector all yield an empty result,
// never an error: callers treat "no candidates" as valid input downstream.
func (idx *Index) Search(query []float64, k int) []Hit {
	if len(idx.entries) == 0 || k <= 0 || len(query) != idx.dim {
		return nil
	}

	q, ok := normalize(query)
	if !ok {
		return nil
	}

	hits := make([]Hit, 0, len(idx.entries))
	for i := range idx.vectors {
		sim := dot(q, idx.vectors[i])
		if math.IsNaN(sim) || math.IsInf(sim, 0) {
			continue
		}
		hits = append(hits, Hit{Entry: &idx.entries[i], Similarity: sim})
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Similarity != hits[j].Similarity {
			return hits[i].Similarity > hits[j].Similarity
		}
		return hits[i].Entry.ID < hits[j].Entry.ID
	})

	if k < len(hits) {
		hits = hits[:k]
	}
	return hits
}

// normalize returns an L2-normalized copy of v. The second return value is
// false for zero-norm vectors.
func normalize(v []float64) ([]float64, bool) {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	norm := math.Sqrt(sum)
	if norm == 0 || math.IsNaN(norm) || math.IsInf(norm, 0) {
		return nil, false
	}

	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = x / norm
	}
	return out, true
}

func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
