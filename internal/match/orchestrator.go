// Package match sequences retrieval, scoring and explanation into one ranked response.
package match

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/jonathan/talent-matcher/internal/explain"
	"github.com/jonathan/talent-matcher/internal/index"
	"github.com/jonathan/talent-matcher/internal/logger"
	"github.com/jonathan/talent-matcher/internal/scoring"
	"github.com/jonathan/talent-matcher/internal/taxonomy"
	"github.com/jonathan/talent-matcher/internal/types"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// State tracks a request through the pipeline for logging.
type State string

// Request states. A request either reaches StateReturned or fails fast at
// StateFailed on malformed input; scoring faults never fail a request.
const (
	StateReceived  State = "RECEIVED"
	StateRetrieved State = "RETRIEVED"
	StateScored    State = "SCORED"
	StateExplained State = "EXPLAINED"
	StateReturned  State = "RETURNED"
	StateFailed    State = "FAILED"
)

// InputError indicates a malformed candidate profile. The request fails fast
// and no partial ranking is returned.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid candidate profile: %s", e.Message)
}

// Options tunes one match request.
type Options struct {
	// Count is the number of results requested. Defaults to 10.
	Count int
}

// Config holds orchestrator-level tuning.
type Config struct {
	// RetrievalWidth is the top-K fetched from the index before re-ranking.
	// The effective width is never below the requested result count.
	RetrievalWidth int
	// MaxParallel bounds concurrent per-entry scoring within one request.
	MaxParallel int
}

// DefaultConfig returns the standard orchestrator tuning.
func DefaultConfig() Config {
	return Config{RetrievalWidth: 50, MaxParallel: 8}
}

// Orchestrator owns the retrieval, scoring and explanation sequence for match
// requests. All referenced collaborators are read-only after construction, so
// one Orchestrator serves concurrent requests.
type Orchestrator struct {
	idx        *index.Index
	normalizer *taxonomy.Normalizer
	enhanced   scoring.Strategy
	basic      scoring.Strategy
	explainer  *explain.Generator
	cfg        Config
	logger     *zap.Logger
}

// New creates an Orchestrator.
func New(idx *index.Index, normalizer *taxonomy.Normalizer, weights types.Weights, cfg Config, logger *zap.Logger) *Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.RetrievalWidth <= 0 {
		cfg.RetrievalWidth = DefaultConfig().RetrievalWidth
	}
	if cfg.MaxParallel <= 0 {
		cfg.MaxParallel = DefaultConfig().MaxParallel
	}

	labelFor := func(id string) string { return id }
	if normalizer != nil {
		labelFor = normalizer.Taxonomy().Label
	}

	return &Orchestrator{
		idx:        idx,
		normalizer: normalizer,
		enhanced:   scoring.NewEnhanced(weights, scoring.SubstringMatcher{}, labelFor),
		basic:      scoring.NewBasic(),
		explainer:  explain.New(labelFor),
		cfg:        cfg,
		logger:     logger,
	}
}

// Match runs the enhanced pipeline: retrieval, six-factor re-ranking and
// per-result explanations. A fault while scoring one entry excludes that
// entry and is noted in the response diagnostics; the rest of the ranking
// proceeds.
func (o *Orchestrator) Match(ctx context.Context, profile *types.CandidateProfile, opts Options) (*types.MatchResponse, error) {
	requestID := uuid.New()
	log := logger.WithRequest(o.logger, requestID.String()).With(zap.String("pipeline", o.enhanced.Name()))

	resp := &types.MatchResponse{RequestID: requestID, Results: []types.MatchResult{}}

	profile, candidates, diag, err := o.prepare(ctx, log, profile, opts)
	if err != nil {
		return nil, err
	}
	resp.Diagnostics = diag
	if len(candidates) == 0 {
		log.Info("no candidates retrieved", zap.String("state", string(StateReturned)))
		return resp, nil
	}

	scored := o.scoreAll(ctx, log, profile, candidates, resp)
	log.Debug("scoring complete", zap.String("state", string(StateScored)), zap.Int("scored", len(scored)))

	for i := range scored {
		scored[i].Explanation = o.explainer.Explain(profile, scored[i].entry, scored[i].Breakdown)
	}
	log.Debug("explanations complete", zap.String("state", string(StateExplained)))

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].EntryID < scored[j].EntryID
	})

	count := resultCount(opts, len(scored))
	for _, s := range scored[:count] {
		resp.Results = append(resp.Results, s.MatchResult)
	}

	log.Info("match complete",
		zap.String("state", string(StateReturned)),
		zap.Int("results", len(resp.Results)),
		zap.Int("skipped", resp.Diagnostics.SkippedEntries))
	return resp, nil
}

// MatchBasic runs the legacy pipeline: embedding similarity plus simple
// skill-overlap re-scoring. It is kept selectable for backward compatibility
// and produces its own response shape.
func (o *Orchestrator) MatchBasic(ctx context.Context, profile *types.CandidateProfile, opts Options) (*types.BasicMatchResponse, error) {
	requestID := uuid.New()
	log := logger.WithRequest(o.logger, requestID.String()).With(zap.String("pipeline", o.basic.Name()))

	resp := &types.BasicMatchResponse{RequestID: requestID, Results: []types.BasicMatchResult{}}

	profile, candidates, diag, err := o.prepare(ctx, log, profile, opts)
	if err != nil {
		return nil, err
	}
	resp.Diagnostics = diag
	if len(candidates) == 0 {
		return resp, nil
	}

	results := make([]types.BasicMatchResult, 0, len(candidates))
	for _, cand := range candidates {
		scored, err := o.basic.Score(profile, cand)
		if err != nil {
			resp.Diagnostics.SkippedEntries++
			resp.Diagnostics.SkippedNotes = append(resp.Diagnostics.SkippedNotes, skipNote(cand.Entry.ID, err))
			continue
		}
		results = append(results, types.BasicMatchResult{
			EntryID:       cand.Entry.ID,
			Title:         cand.Entry.Title,
			Score:         scored.Score,
			Similarity:    cand.Similarity,
			MatchedSkills: scored.Matched,
			MissingSkills: scored.Missing,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].EntryID < results[j].EntryID
	})

	resp.Results = results[:resultCount(opts, len(results))]
	log.Info("match complete", zap.String("state", string(StateReturned)), zap.Int("results", len(resp.Results)))
	return resp, nil
}

// prepare validates the profile, canonicalizes its skill set and retrieves
// the candidate set. Normalization is idempotent for already-canonical IDs;
// unknown terms are dropped and counted in the diagnostics, never failed on.
// The input profile is not mutated.
func (o *Orchestrator) prepare(ctx context.Context, log *zap.Logger, profile *types.CandidateProfile, opts Options) (*types.CandidateProfile, []scoring.Candidate, types.Diagnostics, error) {
	log.Debug("request received", zap.String("state", string(StateReceived)))

	var diag types.Diagnostics

	if err := validateProfile(profile); err != nil {
		log.Warn("malformed profile", zap.String("state", string(StateFailed)), zap.Error(err))
		return nil, nil, diag, err
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, diag, err
	}

	if o.normalizer != nil && len(profile.Skills) > 0 {
		ids, unknown := o.normalizer.Normalize(profile.Skills)
		diag.UnknownSkills = unknown
		normalized := *profile
		normalized.Skills = ids
		profile = &normalized
	}

	// Retrieval width must cover the requested result count.
	k := max(o.cfg.RetrievalWidth, opts.Count)
	hits := o.idx.Search(profile.Embedding, k)
	log.Debug("retrieval complete", zap.String("state", string(StateRetrieved)), zap.Int("hits", len(hits)))

	candidates := make([]scoring.Candidate, len(hits))
	for i, hit := range hits {
		candidates[i] = scoring.Candidate{Entry: hit.Entry, Similarity: hit.Similarity}
	}
	return profile, candidates, diag, nil
}

// scoredResult pairs a match result with its entry for explanation.
type scoredResult struct {
	types.MatchResult
	entry *types.CatalogEntry
}

// scoreAll scores candidates in parallel. Each entry's score depends only on
// (profile, entry), so entries fan out across a bounded worker group. A panic
// or error scoring one entry is isolated: the entry is skipped, logged, and
// noted in the response-level diagnostics.
func (o *Orchestrator) scoreAll(ctx context.Context, log *zap.Logger, profile *types.CandidateProfile, candidates []scoring.Candidate, resp *types.MatchResponse) []scoredResult {
	results := make([]*scoredResult, len(candidates))
	faults := make([]error, len(candidates))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.cfg.MaxParallel)

	for i, cand := range candidates {
		i, cand := i, cand
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			scored, err := o.scoreOne(profile, cand)
			if err != nil {
				log.Warn("entry scoring fault, skipping entry",
					zap.String(logger.FieldEntryID, cand.Entry.ID), zap.Error(err))
				faults[i] = err
				return nil
			}
			results[i] = &scoredResult{
				MatchResult: types.MatchResult{
					EntryID:   cand.Entry.ID,
					Title:     cand.Entry.Title,
					Score:     scored.Score,
					Breakdown: *scored.Breakdown,
				},
				entry: cand.Entry,
			}
			return nil
		})
	}
	// Workers only return context errors; scoring faults are absorbed above.
	_ = g.Wait()

	kept := make([]scoredResult, 0, len(results))
	for i, r := range results {
		if r == nil {
			resp.Diagnostics.SkippedEntries++
			resp.Diagnostics.SkippedNotes = append(resp.Diagnostics.SkippedNotes,
				skipNote(candidates[i].Entry.ID, faults[i]))
			continue
		}
		kept = append(kept, *r)
	}
	return kept
}

// scoreOne runs the enhanced strategy for one candidate, converting panics
// into per-entry errors so a single bad entry never takes down the request.
func (o *Orchestrator) scoreOne(profile *types.CandidateProfile, cand scoring.Candidate) (scored scoring.Scored, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("scoring panic for entry %s: %v", cand.Entry.ID, r)
		}
	}()
	return o.enhanced.Score(profile, cand)
}

// validateProfile applies the fail-fast input checks. A profile with neither
// canonical skills nor an embedding vector cannot be matched at all.
func validateProfile(profile *types.CandidateProfile) error {
	if profile == nil {
		return &InputError{Message: "profile is nil"}
	}
	if len(profile.Skills) == 0 && len(profile.Embedding) == 0 {
		return &InputError{Message: "profile has no skills and no embedding vector"}
	}
	if len(profile.Embedding) == 0 {
		return &InputError{Message: "profile has no embedding vector"}
	}
	return nil
}

func resultCount(opts Options, available int) int {
	count := opts.Count
	if count <= 0 {
		count = 10
	}
	return min(count, available)
}

func skipNote(entryID string, err error) string {
	if err != nil {
		return fmt.Sprintf("entry %s skipped: %v", entryID, err)
	}
	return fmt.Sprintf("entry %s skipped during scoring", entryID)
}
