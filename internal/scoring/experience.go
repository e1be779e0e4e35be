package scoring

import (
	"github.com/jonathan/talent-matcher/internal/types"
)

// scoreExperience relates total experience duration to the entry's seniority
// band: linear below the band's upper bound, saturating at 1.0 beyond it.
// A candidate with no experience entries gets the neutral default.
func scoreExperience(profile *types.CandidateProfile, entry *types.CatalogEntry) float64 {
	if len(profile.Experience) == 0 {
		return neutralScore
	}

	months := profile.TotalExperienceMonths()
	expected := entry.Seniority.ExpectedMonths()
	if expected <= 0 {
		return 1.0
	}
	if months >= expected {
		return 1.0
	}
	return clamp(float64(months) / float64(expected))
}
