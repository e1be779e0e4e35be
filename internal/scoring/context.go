package scoring

import (
	"strings"

	"github.com/jonathan/talent-matcher/internal/types"
)

// scoreDomain rates the candidate's stated domain preference against the
// entry's domain tag. No stated preference yields the neutral default.
func scoreDomain(profile *types.CandidateProfile, entry *types.CatalogEntry) float64 {
	if strings.TrimSpace(profile.Domain) == "" || strings.TrimSpace(entry.Domain) == "" {
		return neutralScore
	}
	return fuzzyTextMatch(profile.Domain, entry.Domain)
}

// scoreLocation rates the candidate's location against the entry's location
// tag. Either side unspecified yields the neutral default.
func scoreLocation(profile *types.CandidateProfile, entry *types.CatalogEntry) float64 {
	if strings.TrimSpace(profile.Location) == "" || strings.TrimSpace(entry.Location) == "" {
		return neutralScore
	}
	return fuzzyTextMatch(profile.Location, entry.Location)
}

// fuzzyTextMatch compares two free-text tags: exact match scores 1.0,
// containment either way 0.8, shared tokens 0.6, otherwise 0.
func fuzzyTextMatch(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))

	if a == b {
		return 1.0
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return 0.8
	}

	tokens := make(map[string]bool)
	for _, tok := range strings.Fields(a) {
		tokens[tok] = true
	}
	for _, tok := range strings.Fields(b) {
		if tokens[tok] {
			return 0.6
		}
	}

	return 0
}
