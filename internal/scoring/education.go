package scoring

import (
	"strings"

	"github.com/jonathan/talent-matcher/internal/types"
)

// neutralScore is assigned to a factor when its supporting evidence is
// entirely absent. Absence is not penalized as failure.
const neutralScore = 0.5

// Relative weights of the two education components.
const (
	degreeShare = 0.6
	fieldShare  = 0.4
)

// minDegreeBySeniority is the degree-level compatibility table: the minimum
// degree rank expected for a seniority band. Entry-level accepts any degree.
var minDegreeBySeniority = map[types.SeniorityLevel]int{
	types.SeniorityEntry:  0,
	types.SeniorityMid:    types.DegreeAssociate.Rank(),
	types.SenioritySenior: types.DegreeBachelor.Rank(),
	types.SeniorityLead:   types.DegreeBachelor.Rank(),
}

// relatedFields maps a domain tag to study fields considered adjacent to it.
var relatedFields = map[string][]string{
	"computer science":     {"software engineering", "computer engineering", "information technology"},
	"software engineering": {"computer science", "computer engineering"},
	"data science":         {"statistics", "mathematics", "computer science", "machine learning"},
	"data":                 {"statistics", "mathematics", "computer science"},
	"statistics":           {"mathematics", "data science", "economics"},
	"mathematics":          {"statistics", "physics", "computer science"},
	"engineering":          {"computer science", "software engineering", "electrical engineering"},
	"finance":              {"economics", "accounting", "mathematics"},
	"marketing":            {"communications", "business", "advertising"},
}

// scoreEducation combines degree-level-vs-seniority compatibility with
// field-of-study relevance to the entry's domain tag. Missing education data
// yields the neutral default, never zero.
func scoreEducation(profile *types.CandidateProfile, entry *types.CatalogEntry) float64 {
	if len(profile.Education) == 0 {
		return neutralScore
	}

	// Score against the candidate's strongest record.
	best := 0.0
	for _, edu := range profile.Education {
		if s := educationRecordScore(edu, entry); s > best {
			best = s
		}
	}
	return clamp(best)
}

func educationRecordScore(edu types.Education, entry *types.CatalogEntry) float64 {
	score := 0.0

	// Degree level vs seniority band.
	required := minDegreeBySeniority[entry.Seniority]
	rank := edu.Degree.Rank()
	switch {
	case required == 0 || rank >= required:
		score += degreeShare
	case rank == required-1:
		score += degreeShare * 0.5
	}

	// Field of study vs entry domain tag.
	score += fieldShare * fieldRelevance(edu.Field, entry.Domain)

	return score
}

// fieldRelevance rates how well a field of study fits a domain tag.
func fieldRelevance(field, domain string) float64 {
	field = strings.ToLower(strings.TrimSpace(field))
	domain = strings.ToLower(strings.TrimSpace(domain))

	if domain == "" {
		// No domain expectation on the entry; any field is acceptable.
		return 1.0
	}
	if field == "" {
		return neutralScore
	}

	if field == domain || strings.Contains(field, domain) || strings.Contains(domain, field) {
		return 1.0
	}

	for _, related := range relatedFields[domain] {
		if strings.Contains(field, related) || strings.Contains(related, field) {
			return 0.7
		}
	}

	return 0.2
}
