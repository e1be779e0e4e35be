// Package explain derives per-factor justification statements for ranked matches.
//
// Statements are pure functions of the already-computed breakdown plus the
// same (profile, entry) inputs. Nothing is re-scored here, which is what
// guarantees that identical inputs always yield identical explanation text.
package explain

import (
	"fmt"
	"strings"

	"github.com/jonathan/talent-matcher/internal/types"
)

// LabelFunc resolves a canonical skill ID to its human-readable label.
type LabelFunc func(id string) string

// Generator renders explanation statements grouped by factor in the fixed
// weight order: skills, projects, education, experience, domain, location.
type Generator struct {
	labelFor LabelFunc
}

// New creates a Generator. A nil label function falls back to the identity.
func New(labelFor LabelFunc) *Generator {
	if labelFor == nil {
		labelFor = func(id string) string { return id }
	}
	return &Generator{labelFor: labelFor}
}

// Explain produces the ordered statement list for one ranked result.
func (g *Generator) Explain(profile *types.CandidateProfile, entry *types.CatalogEntry, breakdown types.ScoreBreakdown) []string {
	statements := make([]string, 0, 8)

	statements = append(statements, g.skillStatements(breakdown.Skills)...)
	statements = append(statements, g.projectStatement(breakdown))
	statements = append(statements, g.educationStatement(profile, breakdown))
	statements = append(statements, g.experienceStatement(profile, entry, breakdown))

	if s := g.domainStatement(profile, entry, breakdown); s != "" {
		statements = append(statements, s)
	}
	if s := g.locationStatement(profile, entry, breakdown); s != "" {
		statements = append(statements, s)
	}

	return statements
}

// skillStatements lists matched must-haves, matched nice-to-haves and missing
// must-haves. Missing must-haves are never omitted: they are the most
// decision-relevant signal in the ranking.
func (g *Generator) skillStatements(evidence types.SkillEvidence) []string {
	statements := make([]string, 0, 3)

	if len(evidence.MatchedMustHaves) > 0 {
		statements = append(statements, fmt.Sprintf("Matched required skills: %s", g.joinLabels(evidence.MatchedMustHaves)))
	}
	if len(evidence.MatchedNiceToHaves) > 0 {
		statements = append(statements, fmt.Sprintf("Matched nice-to-have skills: %s", g.joinLabels(evidence.MatchedNiceToHaves)))
	}
	if len(evidence.MissingMustHaves) > 0 {
		statements = append(statements, fmt.Sprintf("Missing required skills: %s", g.joinLabels(evidence.MissingMustHaves)))
	}

	if len(statements) == 0 {
		statements = append(statements, "No skill requirements to compare")
	}
	return statements
}

func (g *Generator) projectStatement(breakdown types.ScoreBreakdown) string {
	if !breakdown.HasProjects {
		return "No project evidence provided"
	}
	switch {
	case breakdown.Scores.Projects >= 0.7:
		return "Project history strongly covers the required skill areas"
	case breakdown.Scores.Projects >= 0.3:
		return "Project history partially covers the required skill areas"
	default:
		return "Project history shows little overlap with the required skill areas"
	}
}

func (g *Generator) educationStatement(profile *types.CandidateProfile, breakdown types.ScoreBreakdown) string {
	if !breakdown.HasEducation {
		return "No education data provided"
	}

	best := bestDegree(profile.Education)
	label := degreeLabel(best.Degree)
	if best.Field != "" {
		label = fmt.Sprintf("%s in %s", label, best.Field)
	}
	switch {
	case breakdown.Scores.Education >= 0.7:
		return fmt.Sprintf("%s fits the role's expectations", label)
	case breakdown.Scores.Education >= 0.4:
		return fmt.Sprintf("%s partially fits the role's expectations", label)
	default:
		return fmt.Sprintf("%s is below the role's expectations", label)
	}
}

func (g *Generator) experienceStatement(profile *types.CandidateProfile, entry *types.CatalogEntry, breakdown types.ScoreBreakdown) string {
	if !breakdown.HasExperience {
		return "No work experience data provided"
	}

	years := float64(profile.TotalExperienceMonths()) / 12.0
	if breakdown.Scores.Experience >= 1.0 {
		return fmt.Sprintf("%.1f years of experience meets the %s-level band", years, entry.Seniority)
	}
	return fmt.Sprintf("%.1f years of experience is below the %s-level band", years, entry.Seniority)
}

func (g *Generator) domainStatement(profile *types.CandidateProfile, entry *types.CatalogEntry, breakdown types.ScoreBreakdown) string {
	if !breakdown.HasDomainPref {
		return ""
	}
	if breakdown.Scores.Domain >= 0.6 {
		return fmt.Sprintf("Domain preference %q aligns with %q", profile.Domain, entry.Domain)
	}
	return fmt.Sprintf("Domain preference %q differs from %q", profile.Domain, entry.Domain)
}

func (g *Generator) locationStatement(profile *types.CandidateProfile, entry *types.CatalogEntry, breakdown types.ScoreBreakdown) string {
	if !breakdown.HasLocation {
		return ""
	}
	if breakdown.Scores.Location >= 0.6 {
		return fmt.Sprintf("Location %q matches %q", profile.Location, entry.Location)
	}
	return fmt.Sprintf("Location %q does not match %q", profile.Location, entry.Location)
}

func (g *Generator) joinLabels(ids []string) string {
	labels := make([]string, len(ids))
	for i, id := range ids {
		labels[i] = g.labelFor(id)
	}
	return strings.Join(labels, ", ")
}

// degreeLabel renders a degree level for display.
func degreeLabel(d types.DegreeLevel) string {
	s := string(d)
	if s == "" {
		return "Unspecified degree"
	}
	if s == string(types.DegreePhD) {
		return "PhD"
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// bestDegree returns the education record with the highest degree rank.
func bestDegree(records []types.Education) types.Education {
	best := records[0]
	for _, edu := range records[1:] {
		if edu.Degree.Rank() > best.Degree.Rank() {
			best = edu
		}
	}
	return best
}
