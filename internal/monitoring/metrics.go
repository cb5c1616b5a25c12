package monitoring

import (
	"sync"
	"sync/atomic"
	"time"
)

// Metrics holds application counters exposed on the metrics endpoint.
type Metrics struct {
	RequestCount    int64
	ErrorCount      int64
	SubmissionCount int64
	RateLimitBlocks int64
	StartTime       time.Time

	requestsByStatus map[int]int64
	statusMutex      sync.RWMutex
}

// NewMetrics creates a new metrics instance.
func NewMetrics() *Metrics {
	return &Metrics{
		StartTime:        time.Now(),
		requestsByStatus: make(map[int]int64),
	}
}

// IncrementRequest increments the total request counter.
func (m *Metrics) IncrementRequest() {
	atomic.AddInt64(&m.RequestCount, 1)
}

// IncrementError increments the error counter.
func (m *Metrics) IncrementError() {
	atomic.AddInt64(&m.ErrorCount, 1)
}

// IncrementSubmission increments the scored-submission counter.
func (m *Metrics) IncrementSubmission() {
	atomic.AddInt64(&m.SubmissionCount, 1)
}

// IncrementRateLimitBlock increments the rate-limit rejection counter.
func (m *Metrics) IncrementRateLimitBlock() {
	atomic.AddInt64(&m.RateLimitBlocks, 1)
}

// RecordRequestByStatus tracks response status code distribution.
func (m *Metrics) RecordRequestByStatus(statusCode int) {
	m.statusMutex.Lock()
	defer m.statusMutex.Unlock()
	m.requestsByStatus[statusCode]++
}

// GetStats returns a snapshot of all counters.
func (m *Metrics) GetStats() map[string]interface{} {
	m.statusMutex.RLock()
	byStatus := make(map[int]int64, len(m.requestsByStatus))
	for code, count := range m.requestsByStatus {
		byStatus[code] = count
	}
	m.statusMutex.RUnlock()

	return map[string]interface{}{
		"request_count":      atomic.LoadInt64(&m.RequestCount),
		"error_count":        atomic.LoadInt64(&m.ErrorCount),
		"submission_count":   atomic.LoadInt64(&m.SubmissionCount),
		"rate_limit_blocks":  atomic.LoadInt64(&m.RateLimitBlocks),
		"requests_by_status": byStatus,
		"uptime_seconds":     time.Since(m.StartTime).Seconds(),
	}
}
