package server

import "sync"

// Metric names incremented by the handlers.
const (
	MetricMatchRequests   = "match_requests"
	MetricBasicRequests   = "basic_match_requests"
	MetricUpskillRequests = "upskill_requests"
	MetricRequestErrors   = "request_errors"
	MetricSkippedEntries  = "skipped_entries"
	MetricUnknownSkills   = "unknown_skills"
)

// Metrics is a set of in-process request counters exposed on GET /metrics.
type Metrics struct {
	mu       sync.Mutex
	counters map[string]int64
}

// NewMetrics creates an empty counter set.
func NewMetrics() *Metrics {
	return &Metrics{counters: make(map[string]int64)}
}

// Increment adds delta to the named counter.
func (m *Metrics) Increment(name string, delta int64) {
	if delta == 0 {
		return
	}
	m.mu.Lock()
	m.counters[name] += delta
	m.mu.Unlock()
}

// Snapshot returns a copy of all counters.
func (m *Metrics) Snapshot() map[string]int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]int64, len(m.counters))
	for k, v := range m.counters {
		out[k] = v
	}
	return out
}
