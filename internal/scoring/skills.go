package scoring

import (
	"sort"

	"github.com/jonathan/talent-matcher/internal/types"
)

// Relative weight of must-have vs nice-to-have coverage inside the skills factor.
const (
	mustHaveShare   = 0.7
	niceToHaveShare = 0.3
)

// scoreSkills computes the skills sub-score from canonical skill ID overlap.
// Raw text is never compared against requirements here; normalization happens
// upstream. Missing must-haves are recorded verbatim for the explanation.
func scoreSkills(candidate map[string]bool, entry *types.CatalogEntry) (float64, types.SkillEvidence) {
	evidence := types.SkillEvidence{
		MatchedMustHaves:   []string{},
		MatchedNiceToHaves: []string{},
		MissingMustHaves:   []string{},
	}

	mustHaves := entry.MustHaveIDs()
	niceToHaves := entry.NiceToHaveIDs()

	for _, id := range mustHaves {
		if candidate[id] {
			evidence.MatchedMustHaves = append(evidence.MatchedMustHaves, id)
		} else {
			evidence.MissingMustHaves = append(evidence.MissingMustHaves, id)
		}
	}
	for _, id := range niceToHaves {
		if candidate[id] {
			evidence.MatchedNiceToHaves = append(evidence.MatchedNiceToHaves, id)
		}
	}

	sort.Strings(evidence.MatchedMustHaves)
	sort.Strings(evidence.MatchedNiceToHaves)
	sort.Strings(evidence.MissingMustHaves)

	mustCoverage := float64(len(evidence.MatchedMustHaves)) / float64(max(1, len(mustHaves)))
	niceCoverage := float64(len(evidence.MatchedNiceToHaves)) / float64(max(1, len(niceToHaves)))

	return clamp(mustCoverage*mustHaveShare + niceCoverage*niceToHaveShare), evidence
}
