package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-matcher/internal/index"
	"github.com/jonathan/talent-matcher/internal/match"
	"github.com/jonathan/talent-matcher/internal/recommend"
	"github.com/jonathan/talent-matcher/internal/taxonomy"
	"github.com/jonathan/talent-matcher/internal/types"
)

const taxonomyCSV = `canonical,category,aliases
Python,language,"py,python3"
SQL,language,
Docker,tool,
AWS,cloud,"amazon web services"
`

func testEntries() []types.CatalogEntry {
	return []types.CatalogEntry{
		{
			ID:    "role-001",
			Kind:  types.KindRole,
			Title: "Data Engineer",
			Skills: []types.RequiredSkill{
				{ID: "python", MustHave: true},
				{ID: "sql", MustHave: true},
				{ID: "docker", MustHave: false},
			},
			Embedding: []float64{1, 0, 0},
			Seniority: types.SeniorityMid,
		},
		{
			ID:    "role-002",
			Kind:  types.KindRole,
			Title: "Cloud Engineer",
			Skills: []types.RequiredSkill{
				{ID: "aws", MustHave: true},
			},
			Embedding: []float64{0, 1, 0},
			Seniority: types.SenioritySenior,
		},
		{
			ID:        "course-001",
			Kind:      types.KindCourse,
			Title:     "Docker Fundamentals",
			Skills:    []types.RequiredSkill{{ID: "docker", MustHave: true}},
			Embedding: []float64{0, 0, 1},
			Provider:  "acme-academy",
			Level:     "beginner",
			Hours:     10,
		},
	}
}

func newTestServer(t *testing.T) *Server {
	t.Helper()

	tax, err := taxonomy.Parse(strings.NewReader(taxonomyCSV))
	require.NoError(t, err)
	normalizer := taxonomy.NewNormalizer(tax)

	idx, err := index.Build(testEntries())
	require.NoError(t, err)

	orchestrator := match.New(idx, normalizer, types.DefaultWeights(), match.DefaultConfig(), nil)
	recommender := recommend.New(testEntries(), tax.Label, nil)

	return New(Config{Port: 0}, orchestrator, recommender, nil)
}

func postJSON(t *testing.T, handler http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleMatch(t *testing.T) {
	s := newTestServer(t)

	rec := postJSON(t, s.Handler(), "/match", types.MatchRequest{
		Profile: types.CandidateProfile{
			Skills:    []string{"py", "SQL"},
			Embedding: []float64{1, 0, 0},
		},
		Count: 2,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp types.MatchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 2)
	assert.Equal(t, "role-001", resp.Results[0].EntryID)
	assert.NotEmpty(t, resp.Results[0].Explanation)
}

func TestHandleMatch_InvalidJSON(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/match", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid JSON body")
}

func TestHandleMatch_MalformedProfile(t *testing.T) {
	s := newTestServer(t)

	// Profile without an embedding cannot be retrieved against the index.
	rec := postJSON(t, s.Handler(), "/match", types.MatchRequest{
		Profile: types.CandidateProfile{Skills: []string{"python"}},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleMatchBasic(t *testing.T) {
	s := newTestServer(t)

	rec := postJSON(t, s.Handler(), "/match/basic", types.MatchRequest{
		Profile: types.CandidateProfile{
			Skills:    []string{"python", "sql"},
			Embedding: []float64{1, 0, 0},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp types.BasicMatchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Results)
	assert.Equal(t, "role-001", resp.Results[0].EntryID)
	assert.NotZero(t, resp.Results[0].Similarity)
}

func TestHandleUpskill(t *testing.T) {
	s := newTestServer(t)

	rec := postJSON(t, s.Handler(), "/upskill", types.UpskillRequest{
		Gaps:       []string{"docker"},
		TargetRole: "Data Engineer",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var plan recommend.Plan
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &plan))
	assert.Equal(t, "Data Engineer", plan.TargetRole)
	require.Len(t, plan.Skills, 1)
	assert.Equal(t, "docker", plan.Skills[0].Skill)

	var hasCourse bool
	for _, item := range plan.Skills[0].Items {
		if item.Type == "course" && item.RefID == "course-001" {
			hasCourse = true
		}
	}
	assert.True(t, hasCourse, "plan should include the catalog course")
}

func TestHandleUpskill_NoGaps(t *testing.T) {
	s := newTestServer(t)

	rec := postJSON(t, s.Handler(), "/upskill", types.UpskillRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestHandleMetrics_CountsRequests(t *testing.T) {
	s := newTestServer(t)

	postJSON(t, s.Handler(), "/match", types.MatchRequest{
		Profile: types.CandidateProfile{
			Skills:    []string{"python"},
			Embedding: []float64{1, 0, 0},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var counters map[string]int64
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &counters))
	assert.Equal(t, int64(1), counters[MetricMatchRequests])
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/match", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(&match.InputError{Message: "missing embedding"}))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(&ErrValidation{Field: "count", Message: "must be positive"}))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(assert.AnError))
}
