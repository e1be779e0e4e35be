// Package types provides type definitions for structured data used throughout the talent-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// DegreeLevel represents a normalized education degree level.
type DegreeLevel string

// Known degree levels, ordered from lowest to highest.
const (
	DegreeNone      DegreeLevel = ""
	DegreeAssociate DegreeLevel = "associate"
	DegreeBachelor  DegreeLevel = "bachelor"
	DegreeMaster    DegreeLevel = "master"
	DegreePhD       DegreeLevel = "phd"
)

// degreeRank maps degree levels to numeric ranks for comparison
var degreeRank = map[DegreeLevel]int{
	DegreeAssociate: 1,
	DegreeBachelor:  2,
	DegreeMaster:    3,
	DegreePhD:       4,
}

// Rank returns the numeric rank of the degree level (0 for unknown/empty).
func (d DegreeLevel) Rank() int {
	return degreeRank[d]
}

// Education represents a single education record from a parsed resume.
type Education struct {
	Degree      DegreeLevel `json:"degree"`
	Field       string      `json:"field,omitempty"`
	Institution string      `json:"institution,omitempty"`
}

// ExperienceEntry represents one work experience entry from a parsed resume.
type ExperienceEntry struct {
	Title       string `json:"title"`
	Months      int    `json:"months"`
	Description string `json:"description,omitempty"`
}

// CandidateProfile is the canonical, ingestion-built view of a candidate.
// It is immutable for the duration of one match request.
type CandidateProfile struct {
	Skills     []string          `json:"skills"` // canonical skill IDs
	Projects   []string          `json:"projects,omitempty"`
	Education  []Education       `json:"education,omitempty"`
	Experience []ExperienceEntry `json:"experience,omitempty"`
	Location   string            `json:"location,omitempty"`
	Domain     string            `json:"domain,omitempty"` // preferred domain/department
	Embedding  []float64         `json:"embedding,omitempty"`
}

// SkillSet returns the candidate's canonical skills as a lookup set.
func (p *CandidateProfile) SkillSet() map[string]bool {
	set := make(map[string]bool, len(p.Skills))
	for _, s := range p.Skills {
		set[s] = true
	}
	return set
}

// TotalExperienceMonths sums the duration of all work experience entries.
func (p *CandidateProfile) TotalExperienceMonths() int {
	total := 0
	for _, e := range p.Experience {
		if e.Months > 0 {
			total += e.Months
		}
	}
	return total
}
