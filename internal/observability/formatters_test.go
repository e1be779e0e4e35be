package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/talent-matcher/internal/recommend"
	"github.com/jonathan/talent-matcher/internal/types"
)

func TestPrintMatchResults(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	resp := &types.MatchResponse{
		Results: []types.MatchResult{
			{
				EntryID:     "role-001",
				Title:       "Data Engineer",
				Score:       0.82,
				Explanation: []string{"Matched required skills: Python, SQL"},
				Breakdown: types.ScoreBreakdown{
					Skills: types.SkillEvidence{MissingMustHaves: []string{"docker"}},
				},
			},
		},
	}

	p.PrintMatchResults(resp)
	output := buf.String()

	assert.Contains(t, output, "TOP MATCHES")
	assert.Contains(t, output, "Data Engineer")
	assert.Contains(t, output, "role-001")
	assert.Contains(t, output, "0.820")
	assert.Contains(t, output, "Missing: docker")
}

func TestPrintMatchResults_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatchResults(nil)
	p.PrintMatchResults(&types.MatchResponse{})
	assert.Empty(t, buf.String())
}

func TestPrintMatchResults_TruncatesList(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	resp := &types.MatchResponse{}
	for i := 0; i < 8; i++ {
		resp.Results = append(resp.Results, types.MatchResult{
			EntryID: "role-00" + string(rune('0'+i)),
			Title:   "Role",
			Score:   0.5,
		})
	}

	p.PrintMatchResults(resp)
	assert.Contains(t, buf.String(), "and 3 more entries")
}

func TestPrintBasicResults(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	resp := &types.BasicMatchResponse{
		Results: []types.BasicMatchResult{
			{
				EntryID:       "role-001",
				Title:         "Data Engineer",
				Score:         0.64,
				Similarity:    0.71,
				MatchedSkills: []string{"python", "sql"},
			},
		},
	}

	p.PrintBasicResults(resp)
	output := buf.String()

	assert.Contains(t, output, "TOP MATCHES (BASIC)")
	assert.Contains(t, output, "Similarity: 0.710")
	assert.Contains(t, output, "python, sql")
}

func TestPrintDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintDiagnostics(types.Diagnostics{
		SkippedEntries: 1,
		SkippedNotes:   []string{"entry role-004 skipped: scoring fault"},
		UnknownSkills:  2,
	})
	output := buf.String()

	assert.Contains(t, output, "DIAGNOSTICS")
	assert.Contains(t, output, "Unknown skill terms: 2")
	assert.Contains(t, output, "Skipped entries: 1")
	assert.Contains(t, output, "role-004")
}

func TestPrintDiagnostics_EmptyPrintsNothing(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintDiagnostics(types.Diagnostics{})
	assert.Empty(t, buf.String())
}

func TestPrintUpskillPlan(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	plan := &recommend.Plan{
		TargetRole: "Data Engineer",
		Skills: []recommend.SkillPlan{
			{
				Skill:    "docker",
				ETAWeeks: 3,
				Items: []recommend.PlanItem{
					{Type: "course", Label: "Docker Basics", Hours: 8},
				},
			},
		},
	}

	p.PrintUpskillPlan(plan)
	output := buf.String()

	assert.Contains(t, output, "UPSKILLING PLAN")
	assert.Contains(t, output, "Target role: Data Engineer")
	assert.Contains(t, output, "docker (~3 weeks)")
	assert.Contains(t, output, "Docker Basics (8h)")
}

func TestPrintUpskillPlan_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintUpskillPlan(nil)
	p.PrintUpskillPlan(&recommend.Plan{TargetRole: "Data Engineer"})
	assert.Empty(t, buf.String())
}
