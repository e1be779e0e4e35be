package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/jonathan/talent-matcher/internal/match"
	"github.com/jonathan/talent-matcher/internal/types"
)

// handleMatch runs the enhanced pipeline for the posted profile.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	s.metrics.Increment(MetricMatchRequests, 1)

	var req types.MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.metrics.Increment(MetricRequestErrors, 1)
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.metrics.Increment(MetricRequestErrors, 1)
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	resp, err := s.orchestrator.Match(r.Context(), &req.Profile, match.Options{Count: req.Count})
	if err != nil {
		s.metrics.Increment(MetricRequestErrors, 1)
		s.logger.Warn("match failed", zap.Error(err))
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.metrics.Increment(MetricSkippedEntries, int64(resp.Diagnostics.SkippedEntries))
	s.metrics.Increment(MetricUnknownSkills, int64(resp.Diagnostics.UnknownSkills))
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleMatchBasic runs the legacy pipeline for the posted profile.
func (s *Server) handleMatchBasic(w http.ResponseWriter, r *http.Request) {
	s.metrics.Increment(MetricBasicRequests, 1)

	var req types.MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.metrics.Increment(MetricRequestErrors, 1)
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.metrics.Increment(MetricRequestErrors, 1)
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	resp, err := s.orchestrator.MatchBasic(r.Context(), &req.Profile, match.Options{Count: req.Count})
	if err != nil {
		s.metrics.Increment(MetricRequestErrors, 1)
		s.logger.Warn("basic match failed", zap.Error(err))
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.metrics.Increment(MetricUnknownSkills, int64(resp.Diagnostics.UnknownSkills))
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleUpskill builds an upskilling plan for the posted skill gaps.
func (s *Server) handleUpskill(w http.ResponseWriter, r *http.Request) {
	s.metrics.Increment(MetricUpskillRequests, 1)

	var req types.UpskillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.metrics.Increment(MetricRequestErrors, 1)
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.metrics.Increment(MetricRequestErrors, 1)
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	plan, err := s.recommender.BuildPlan(r.Context(), req.Gaps, req.TargetRole)
	if err != nil {
		s.metrics.Increment(MetricRequestErrors, 1)
		s.logger.Warn("upskill plan failed", zap.Error(err))
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, plan)
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleMetrics returns the in-process request counters.
func (s *Server) handleMetrics(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.metrics.Snapshot())
}
