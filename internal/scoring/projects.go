package scoring

import (
	"strings"

	"github.com/jonathan/talent-matcher/internal/types"
)

// entryKeywords collects the keywords an entry is matched on: the labels of
// its required skills plus significant words from its description.
func entryKeywords(entry *types.CatalogEntry, label func(string) string) []string {
	seen := make(map[string]bool)
	keywords := make([]string, 0, len(entry.Skills))

	add := func(kw string) {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" || seen[kw] {
			return
		}
		seen[kw] = true
		keywords = append(keywords, kw)
	}

	for _, skill := range entry.Skills {
		add(label(skill.ID))
	}
	for _, word := range strings.Fields(entry.Description) {
		word = strings.Trim(word, ".,;:()[]\"'")
		if len(word) >= minDescriptionKeywordLen {
			add(word)
		}
	}

	return keywords
}

// minDescriptionKeywordLen filters stop-word noise out of description keywords.
const minDescriptionKeywordLen = 5

// scoreProjects computes the fraction of entry-relevant keywords found in any
// of the candidate's project descriptions, capped at 1.0. Zero projects means
// zero score; the explanation layer reports the missing evidence.
func scoreProjects(profile *types.CandidateProfile, entry *types.CatalogEntry, matcher KeywordMatcher, label func(string) string) float64 {
	if len(profile.Projects) == 0 {
		return 0
	}

	keywords := entryKeywords(entry, label)
	if len(keywords) == 0 {
		return 0
	}

	projectText := strings.Join(profile.Projects, " ")
	found := 0
	for _, kw := range keywords {
		if matcher.Match(projectText, kw) {
			found++
		}
	}

	return clamp(float64(found) / float64(len(keywords)))
}
