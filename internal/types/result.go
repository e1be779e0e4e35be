// Package types provides type definitions for structured data used throughout the talent-matcher system.
package types

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// MatchResult is one enhanced-pipeline ranking entry: entry reference, clamped
// final score, full breakdown and the ordered explanation statements.
type MatchResult struct {
	EntryID     string         `json:"entry_id"`
	Title       string         `json:"title"`
	Score       float64        `json:"score"`
	Breakdown   ScoreBreakdown `json:"breakdown"`
	Explanation []string       `json:"explanation"`
}

// BasicMatchResult is the legacy-pipeline ranking entry: score plus simple
// skill overlap lists. It is a distinct response shape from MatchResult and
// the two are never merged into one schema.
type BasicMatchResult struct {
	EntryID       string   `json:"entry_id"`
	Title         string   `json:"title"`
	Score         float64  `json:"score"`
	Similarity    float64  `json:"similarity"`
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
}

// Diagnostics carries request-level, non-fatal observations: entries skipped
// by per-entry fault isolation and skill terms the taxonomy did not recognize.
type Diagnostics struct {
	SkippedEntries int      `json:"skipped_entries,omitempty"`
	SkippedNotes   []string `json:"skipped_notes,omitempty"`
	UnknownSkills  int      `json:"unknown_skills,omitempty"`
}

// MatchResponse is the enhanced-pipeline response.
type MatchResponse struct {
	RequestID   uuid.UUID     `json:"request_id"`
	Results     []MatchResult `json:"results"`
	Diagnostics Diagnostics   `json:"diagnostics"`
}

// BasicMatchResponse is the legacy-pipeline response.
type BasicMatchResponse struct {
	RequestID   uuid.UUID          `json:"request_id"`
	Results     []BasicMatchResult `json:"results"`
	Diagnostics Diagnostics        `json:"diagnostics"`
}

// MatchRequest is the API request for a match run.
type MatchRequest struct {
	Profile CandidateProfile `json:"profile" validate:"required"`
	Count   int              `json:"count" validate:"omitempty,min=1"`
}

// Validate validates the MatchRequest using the validator.
func (r *MatchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// UpskillRequest is the API request for an upskilling plan.
type UpskillRequest struct {
	Gaps       []string `json:"gaps" validate:"required,min=1"`
	TargetRole string   `json:"target_role,omitempty"`
}

// Validate validates the UpskillRequest using the validator.
func (r *UpskillRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
