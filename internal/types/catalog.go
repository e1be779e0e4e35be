// Package types provides type definitions for structured data used throughout the talent-matcher system.
package types

// EntryKind distinguishes the two catalog entry types.
type EntryKind string

// Catalog entry kinds.
const (
	KindRole   EntryKind = "role"
	KindCourse EntryKind = "course"
)

// SeniorityLevel represents the expected seniority band of a catalog entry.
type SeniorityLevel string

// Known seniority levels.
const (
	SeniorityEntry  SeniorityLevel = "entry"
	SeniorityMid    SeniorityLevel = "mid"
	SenioritySenior SeniorityLevel = "senior"
	SeniorityLead   SeniorityLevel = "lead"
)

// seniorityMonths maps a seniority level to the upper bound of its expected
// experience band in months. Experience beyond the bound saturates the score.
var seniorityMonths = map[SeniorityLevel]int{
	SeniorityEntry:  12,
	SeniorityMid:    48,
	SenioritySenior: 96,
	SeniorityLead:   144,
}

// ExpectedMonths returns the experience band upper bound for the level.
// Unknown levels fall back to the mid band.
func (s SeniorityLevel) ExpectedMonths() int {
	if m, ok := seniorityMonths[s]; ok {
		return m
	}
	return seniorityMonths[SeniorityMid]
}

// RequiredSkill is a single skill requirement attached to a catalog entry.
// MustHave distinguishes the two requirement tiers.
type RequiredSkill struct {
	ID       string `json:"id"` // canonical skill ID
	MustHave bool   `json:"must_have"`
}

// CatalogEntry is a role or course available for matching.
// Entries are loaded at index build time and read-only at query time.
type CatalogEntry struct {
	ID          string          `json:"id"`
	Kind        EntryKind       `json:"kind"`
	Title       string          `json:"title"`
	Skills      []RequiredSkill `json:"skills"`
	Description string          `json:"description,omitempty"`
	Embedding   []float64       `json:"embedding"`
	Seniority   SeniorityLevel  `json:"seniority,omitempty"`
	Domain      string          `json:"domain,omitempty"`
	Location    string          `json:"location,omitempty"`

	// Course-only metadata, used by the upskilling recommender.
	Provider string `json:"provider,omitempty"`
	Level    string `json:"level,omitempty"`
	Hours    int    `json:"hours,omitempty"`
}

// MustHaveIDs returns the canonical IDs of the entry's must-have skills.
func (e *CatalogEntry) MustHaveIDs() []string {
	ids := make([]string, 0, len(e.Skills))
	for _, s := range e.Skills {
		if s.MustHave {
			ids = append(ids, s.ID)
		}
	}
	return ids
}

// NiceToHaveIDs returns the canonical IDs of the entry's nice-to-have skills.
func (e *CatalogEntry) NiceToHaveIDs() []string {
	ids := make([]string, 0, len(e.Skills))
	for _, s := range e.Skills {
		if !s.MustHave {
			ids = append(ids, s.ID)
		}
	}
	return ids
}
