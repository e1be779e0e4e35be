package scoring

import (
	"sort"
	"strings"

	"github.com/jonathan/talent-matcher/internal/types"
)

// Candidate is one retrieved catalog entry together with its embedding
// similarity, as handed to a strategy for re-ranking.
type Candidate struct {
	Entry      *types.CatalogEntry
	Similarity float64
}

// Scored is the strategy-agnostic outcome for one candidate. Breakdown is
// populated by the enhanced strategy only; Matched/Missing by the basic one.
type Scored struct {
	Score     float64
	Breakdown *types.ScoreBreakdown
	Matched   []string
	Missing   []string
}

// Strategy is one scoring variant. The orchestrator selects a strategy once
// per request; implementations must be pure functions of their inputs with
// no shared mutable state, so one request's candidates can be scored in
// parallel.
type Strategy interface {
	Name() string
	Score(profile *types.CandidateProfile, cand Candidate) (Scored, error)
}

// LabelFunc resolves a canonical skill ID to its human-readable label.
type LabelFunc func(id string) string

// Enhanced is the default six-factor weighted strategy.
type Enhanced struct {
	weights  types.Weights
	matcher  KeywordMatcher
	labelFor LabelFunc
}

// NewEnhanced creates the enhanced strategy. A nil matcher falls back to the
// substring matcher and a nil label function to the identity.
func NewEnhanced(weights types.Weights, matcher KeywordMatcher, labelFor LabelFunc) *Enhanced {
	if matcher == nil {
		matcher = SubstringMatcher{}
	}
	if labelFor == nil {
		labelFor = func(id string) string { return id }
	}
	return &Enhanced{weights: weights, matcher: matcher, labelFor: labelFor}
}

// Name identifies the strategy in logs and diagnostics.
func (e *Enhanced) Name() string { return "enhanced" }

// Score computes the full six-factor breakdown for one candidate.
func (e *Enhanced) Score(profile *types.CandidateProfile, cand Candidate) (Scored, error) {
	breakdown := e.Breakdown(profile, cand.Entry)
	return Scored{Score: breakdown.Total, Breakdown: &breakdown}, nil
}

// Breakdown computes all six sub-scores and their weighted sum for a
// (profile, entry) pair. It is deterministic: identical inputs always
// produce an identical breakdown.
func (e *Enhanced) Breakdown(profile *types.CandidateProfile, entry *types.CatalogEntry) types.ScoreBreakdown {
	candidateSkills := profile.SkillSet()

	skillScore, evidence := scoreSkills(candidateSkills, entry)

	scores := types.FactorScores{
		Skills:     skillScore,
		Projects:   scoreProjects(profile, entry, e.matcher, e.labelFor),
		Education:  scoreEducation(profile, entry),
		Experience: scoreExperience(profile, entry),
		Domain:     scoreDomain(profile, entry),
		Location:   scoreLocation(profile, entry),
	}

	total := scores.Skills*e.weights.Skills +
		scores.Projects*e.weights.Projects +
		scores.Education*e.weights.Education +
		scores.Experience*e.weights.Experience +
		scores.Domain*e.weights.Domain +
		scores.Location*e.weights.Location

	return types.ScoreBreakdown{
		Scores:        scores,
		Weights:       e.weights,
		Total:         clamp(total),
		Skills:        evidence,
		HasProjects:   len(profile.Projects) > 0,
		HasEducation:  len(profile.Education) > 0,
		HasExperience: len(profile.Experience) > 0,
		HasDomainPref: strings.TrimSpace(profile.Domain) != "" && strings.TrimSpace(entry.Domain) != "",
		HasLocation:   strings.TrimSpace(profile.Location) != "" && strings.TrimSpace(entry.Location) != "",
	}
}

// Relative weights of the legacy score components.
const (
	basicSimilarityWeight = 0.6
	basicOverlapWeight    = 0.4
	basicMissingPenalty   = 0.1
)

// Basic is the legacy strategy kept for backward compatibility: embedding
// similarity blended with simple must-have overlap, penalized per missing
// must-have.
type Basic struct{}

// NewBasic creates the legacy strategy.
func NewBasic() *Basic { return &Basic{} }

// Name identifies the strategy in logs and diagnostics.
func (b *Basic) Name() string { return "basic" }

// Score blends embedding similarity with must-have skill overlap.
func (b *Basic) Score(profile *types.CandidateProfile, cand Candidate) (Scored, error) {
	candidateSkills := profile.SkillSet()
	mustHaves := cand.Entry.MustHaveIDs()

	matched := make([]string, 0, len(mustHaves))
	missing := make([]string, 0)
	for _, id := range mustHaves {
		if candidateSkills[id] {
			matched = append(matched, id)
		} else {
			missing = append(missing, id)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)

	overlap := float64(len(matched)) / float64(max(1, len(mustHaves)))
	score := basicSimilarityWeight*cand.Similarity +
		basicOverlapWeight*overlap -
		basicMissingPenalty*float64(len(missing))

	return Scored{Score: clamp(score), Matched: matched, Missing: missing}, nil
}
