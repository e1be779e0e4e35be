package scoring

import (
	"testing"

	"github.com/jonathan/talent-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEnhanced() *Enhanced {
	return NewEnhanced(types.DefaultWeights(), nil, nil)
}

func roleEntry() *types.CatalogEntry {
	return &types.CatalogEntry{
		ID:    "role-data-eng",
		Kind:  types.KindRole,
		Title: "Data Engineer",
		Skills: []types.RequiredSkill{
			{ID: "python", MustHave: true},
			{ID: "sql", MustHave: true},
			{ID: "aws", MustHave: true},
		},
		Seniority: types.SeniorityMid,
		Domain:    "data",
		Location:  "kuala lumpur",
	}
}

func TestDefaultWeights_SumToOne(t *testing.T) {
	require.NoError(t, types.DefaultWeights().Validate())
}

func TestSkillsFactor_PartialMustHaveCoverage(t *testing.T) {
	// Candidate has {python, sql}; entry requires must-have {python, sql, aws}
	// with no nice-to-haves: (2/3)*0.7 = 0.4667.
	profile := &types.CandidateProfile{Skills: []string{"python", "sql"}}

	breakdown := newEnhanced().Breakdown(profile, roleEntry())

	assert.InDelta(t, 2.0/3.0*0.7, breakdown.Scores.Skills, 1e-9)
	assert.Equal(t, []string{"aws"}, breakdown.Skills.MissingMustHaves)
	assert.Equal(t, []string{"python", "sql"}, breakdown.Skills.MatchedMustHaves)
}

func TestSkillsFactor_NiceToHaveShare(t *testing.T) {
	entry := &types.CatalogEntry{
		ID: "role-x",
		Skills: []types.RequiredSkill{
			{ID: "python", MustHave: true},
			{ID: "docker", MustHave: false},
			{ID: "kubernetes", MustHave: false},
		},
	}
	profile := &types.CandidateProfile{Skills: []string{"python", "docker"}}

	breakdown := newEnhanced().Breakdown(profile, entry)

	assert.InDelta(t, 1.0*0.7+0.5*0.3, breakdown.Scores.Skills, 1e-9)
	assert.Equal(t, []string{"docker"}, breakdown.Skills.MatchedNiceToHaves)
	assert.Empty(t, breakdown.Skills.MissingMustHaves)
}

func TestProjectsFactor_ZeroProjectsScoresZero(t *testing.T) {
	profile := &types.CandidateProfile{Skills: []string{"python"}}

	breakdown := newEnhanced().Breakdown(profile, roleEntry())

	assert.Zero(t, breakdown.Scores.Projects)
	assert.False(t, breakdown.HasProjects)
}

func TestProjectsFactor_KeywordCoverage(t *testing.T) {
	profile := &types.CandidateProfile{
		Skills:   []string{"python"},
		Projects: []string{"Built a python ETL pipeline loading into sql warehouse"},
	}

	breakdown := newEnhanced().Breakdown(profile, roleEntry())

	// Keywords are the three skill labels; python and sql appear in the text.
	assert.InDelta(t, 2.0/3.0, breakdown.Scores.Projects, 1e-9)
}

func TestEducationFactor_MissingDataIsNeutral(t *testing.T) {
	profile := &types.CandidateProfile{Skills: []string{"python"}}

	breakdown := newEnhanced().Breakdown(profile, roleEntry())

	assert.Equal(t, 0.5, breakdown.Scores.Education)
	assert.False(t, breakdown.HasEducation)
}

func TestEducationFactor_DegreeAndFieldFit(t *testing.T) {
	entry := roleEntry()
	entry.Seniority = types.SenioritySenior

	tests := []struct {
		name     string
		edu      types.Education
		expected float64
	}{
		{
			"bachelor in matching field",
			types.Education{Degree: types.DegreeBachelor, Field: "data science"},
			0.6 + 0.4*1.0,
		},
		{
			"associate one level below",
			types.Education{Degree: types.DegreeAssociate, Field: "data science"},
			0.3 + 0.4*1.0,
		},
		{
			"master in related field",
			types.Education{Degree: types.DegreeMaster, Field: "statistics"},
			0.6 + 0.4*0.7,
		},
		{
			"bachelor in unrelated field",
			types.Education{Degree: types.DegreeBachelor, Field: "history"},
			0.6 + 0.4*0.2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := &types.CandidateProfile{
				Skills:    []string{"python"},
				Education: []types.Education{tt.edu},
			}
			breakdown := newEnhanced().Breakdown(profile, entry)
			assert.InDelta(t, tt.expected, breakdown.Scores.Education, 1e-9)
		})
	}
}

func TestExperienceFactor_LinearThenSaturates(t *testing.T) {
	entry := roleEntry() // mid band: 48 months

	tests := []struct {
		name     string
		months   int
		expected float64
	}{
		{"half the band", 24, 0.5},
		{"at the bound", 48, 1.0},
		{"beyond the bound saturates", 120, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := &types.CandidateProfile{
				Skills:     []string{"python"},
				Experience: []types.ExperienceEntry{{Title: "Engineer", Months: tt.months}},
			}
			breakdown := newEnhanced().Breakdown(profile, entry)
			assert.InDelta(t, tt.expected, breakdown.Scores.Experience, 1e-9)
		})
	}
}

func TestDomainAndLocationFactors_NeutralWhenUnspecified(t *testing.T) {
	profile := &types.CandidateProfile{Skills: []string{"python"}}

	breakdown := newEnhanced().Breakdown(profile, roleEntry())

	assert.Equal(t, 0.5, breakdown.Scores.Domain)
	assert.Equal(t, 0.5, breakdown.Scores.Location)
}

func TestDomainAndLocationFactors_FuzzyMatch(t *testing.T) {
	profile := &types.CandidateProfile{
		Skills:   []string{"python"},
		Domain:   "data",
		Location: "Kuala Lumpur",
	}

	breakdown := newEnhanced().Breakdown(profile, roleEntry())

	assert.Equal(t, 1.0, breakdown.Scores.Domain)
	assert.Equal(t, 1.0, breakdown.Scores.Location)
}

func TestDomainAndLocationFlags_WhitespaceOnlyIsAbsent(t *testing.T) {
	profile := &types.CandidateProfile{
		Skills:   []string{"python"},
		Domain:   "   ",
		Location: "\t",
	}

	breakdown := newEnhanced().Breakdown(profile, roleEntry())

	// Blank-after-trim values score neutral, so the flags must not report
	// evidence either.
	assert.Equal(t, 0.5, breakdown.Scores.Domain)
	assert.Equal(t, 0.5, breakdown.Scores.Location)
	assert.False(t, breakdown.HasDomainPref)
	assert.False(t, breakdown.HasLocation)
}

func TestBreakdown_AllSubScoresInRange(t *testing.T) {
	profile := &types.CandidateProfile{
		Skills:   []string{"python", "sql", "aws"},
		Projects: []string{"python sql aws data pipeline"},
		Education: []types.Education{
			{Degree: types.DegreePhD, Field: "computer science"},
		},
		Experience: []types.ExperienceEntry{{Title: "Staff Engineer", Months: 200}},
		Domain:     "data",
		Location:   "kuala lumpur",
	}

	breakdown := newEnhanced().Breakdown(profile, roleEntry())

	for name, score := range map[string]float64{
		"skills":     breakdown.Scores.Skills,
		"projects":   breakdown.Scores.Projects,
		"education":  breakdown.Scores.Education,
		"experience": breakdown.Scores.Experience,
		"domain":     breakdown.Scores.Domain,
		"location":   breakdown.Scores.Location,
		"total":      breakdown.Total,
	} {
		assert.GreaterOrEqual(t, score, 0.0, name)
		assert.LessOrEqual(t, score, 1.0, name)
	}
}

func TestBreakdown_Deterministic(t *testing.T) {
	profile := &types.CandidateProfile{
		Skills:    []string{"sql", "python"},
		Projects:  []string{"built a sql reporting layer"},
		Education: []types.Education{{Degree: types.DegreeBachelor, Field: "statistics"}},
	}
	enhanced := newEnhanced()

	first := enhanced.Breakdown(profile, roleEntry())
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, enhanced.Breakdown(profile, roleEntry()))
	}
}

func TestBasicStrategy_BlendsSimilarityAndOverlap(t *testing.T) {
	profile := &types.CandidateProfile{Skills: []string{"python", "sql"}}
	basic := NewBasic()

	scored, err := basic.Score(profile, Candidate{Entry: roleEntry(), Similarity: 0.9})
	require.NoError(t, err)

	// 0.6*0.9 + 0.4*(2/3) - 0.1*1
	assert.InDelta(t, 0.6*0.9+0.4*(2.0/3.0)-0.1, scored.Score, 1e-9)
	assert.Equal(t, []string{"python", "sql"}, scored.Matched)
	assert.Equal(t, []string{"aws"}, scored.Missing)
	assert.Nil(t, scored.Breakdown)
}

func TestBasicStrategy_ClampsAtZero(t *testing.T) {
	entry := roleEntry()
	profile := &types.CandidateProfile{Skills: []string{"cobol"}}

	scored, err := NewBasic().Score(profile, Candidate{Entry: entry, Similarity: 0.0})
	require.NoError(t, err)
	assert.Zero(t, scored.Score)
}

func TestSubstringMatcher_ShortTokensUseWordBoundaries(t *testing.T) {
	m := SubstringMatcher{}

	assert.True(t, m.Match("worked with R and python", "r"))
	assert.False(t, m.Match("worked with spark", "r"))
	assert.True(t, m.Match("Go microservices", "go"))
	assert.False(t, m.Match("mongodb cluster", "go"))
	assert.True(t, m.Match("built ETL in Python", "python"))
}
