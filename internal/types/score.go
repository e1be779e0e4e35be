// Package types provides type definitions for structured data used throughout the talent-matcher system.
package types

import (
	"fmt"
	"math"
)

// weightSumTolerance bounds floating-point drift when checking that factor
// weights sum to 1.0.
const weightSumTolerance = 1e-9

// Weights holds the six factor weights used by the enhanced scorer.
type Weights struct {
	Skills     float64 `json:"skills" yaml:"skills"`
	Projects   float64 `json:"projects" yaml:"projects"`
	Education  float64 `json:"education" yaml:"education"`
	Experience float64 `json:"experience" yaml:"experience"`
	Domain     float64 `json:"domain" yaml:"domain"`
	Location   float64 `json:"location" yaml:"location"`
}

// DefaultWeights returns the standard factor weights.
func DefaultWeights() Weights {
	return Weights{
		Skills:     0.40,
		Projects:   0.25,
		Education:  0.20,
		Experience: 0.10,
		Domain:     0.03,
		Location:   0.02,
	}
}

// Validate checks that each weight is in [0,1] and that all weights sum to 1.0.
func (w Weights) Validate() error {
	for name, v := range map[string]float64{
		"skills":     w.Skills,
		"projects":   w.Projects,
		"education":  w.Education,
		"experience": w.Experience,
		"domain":     w.Domain,
		"location":   w.Location,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("weight %q out of range [0,1]: %v", name, v)
		}
	}

	sum := w.Skills + w.Projects + w.Education + w.Experience + w.Domain + w.Location
	if math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("weights must sum to 1.0, got %v", sum)
	}
	return nil
}

// FactorScores holds the six sub-scores, each in [0,1].
type FactorScores struct {
	Skills     float64 `json:"skills"`
	Projects   float64 `json:"projects"`
	Education  float64 `json:"education"`
	Experience float64 `json:"experience"`
	Domain     float64 `json:"domain"`
	Location   float64 `json:"location"`
}

// SkillEvidence records the skill-level match detail behind the skills
// sub-score. Missing must-haves are the most decision-relevant signal and are
// always carried through to the explanation.
type SkillEvidence struct {
	MatchedMustHaves   []string `json:"matched_must_haves"`
	MatchedNiceToHaves []string `json:"matched_nice_to_haves"`
	MissingMustHaves   []string `json:"missing_must_haves"`
}

// ScoreBreakdown is the full six-factor decomposition of a match score.
// Sub-scores and weights always travel together with the weighted sum so
// explanations and audits never re-derive them.
type ScoreBreakdown struct {
	Scores  FactorScores  `json:"scores"`
	Weights Weights       `json:"weights"`
	Total   float64       `json:"total"` // weighted sum, clamped to [0,1]
	Skills  SkillEvidence `json:"skill_evidence"`

	// Evidence flags consumed by the explanation generator.
	HasProjects   bool `json:"has_projects"`
	HasEducation  bool `json:"has_education"`
	HasExperience bool `json:"has_experience"`
	HasDomainPref bool `json:"has_domain_pref"`
	HasLocation   bool `json:"has_location"`
}
