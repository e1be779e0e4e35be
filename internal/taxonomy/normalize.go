package taxonomy

import (
	"sort"
	"sync/atomic"
)

// Normalizer maps free-text skill mentions to canonical skill IDs.
// Unknown terms are dropped silently and counted; absence of a skill must
// never fail a request.
type Normalizer struct {
	tax *Taxonomy

	// unknownTerms counts taxonomy gaps across the process lifetime.
	unknownTerms atomic.Int64
}

// NewNormalizer creates a Normalizer backed by the given taxonomy.
func NewNormalizer(tax *Taxonomy) *Normalizer {
	return &Normalizer{tax: tax}
}

// Normalize resolves raw skill terms to a sorted, de-duplicated set of
// canonical skill IDs. The second return value is the number of terms that
// had no alias match in this call.
func (n *Normalizer) Normalize(rawTerms []string) ([]string, int) {
	seen := make(map[string]bool, len(rawTerms))
	unknown := 0

	for _, term := range rawTerms {
		if FoldTerm(term) == "" {
			continue
		}
		id, ok := n.tax.Resolve(term)
		if !ok {
			unknown++
			continue
		}
		seen[id] = true
	}

	if unknown > 0 {
		n.unknownTerms.Add(int64(unknown))
	}

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, unknown
}

// UnknownTermCount reports how many unrecognized terms this normalizer has
// dropped since creation.
func (n *Normalizer) UnknownTermCount() int64 {
	return n.unknownTerms.Load()
}

// Taxonomy returns the underlying taxonomy.
func (n *Normalizer) Taxonomy() *Taxonomy {
	return n.tax
}
