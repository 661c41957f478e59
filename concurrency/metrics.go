package concurrency

// MetricsSnapshot is a lock-free copy of ConcurrencyMetrics.
type MetricsSnapshot struct {
	TotalRequests        int64
	TotalAttempts        int64
	TotalRetries         int64
	TotalRateLimitErrors int64
	TotalTokenRefreshes  int64
}

func (m *ConcurrencyMetrics) RecordAttempt() {
	m.Lock.Lock()
	m.TotalAttempts++
	m.Lock.Unlock()
}

func (m *ConcurrencyMetrics) RecordRetry() {
	m.Lock.Lock()
	m.TotalRetries++
	m.Lock.Unlock()
}

func (m *ConcurrencyMetrics) RecordRateLimit() {
	m.Lock.Lock()
	m.TotalRateLimitErrors++
	m.Lock.Unlock()
}

func (m *ConcurrencyMetrics) RecordTokenRefresh() {
	m.Lock.Lock()
	m.TotalTokenRefreshes++
	m.Lock.Unlock()
}

// Snapshot copies the counters under the lock.
func (m *ConcurrencyMetrics) Snapshot() MetricsSnapshot {
	m.Lock.Lock()
	defer m.Lock.Unlock()
	return MetricsSnapshot{
		TotalRequests:        m.TotalRequests,
		TotalAttempts:        m.TotalAttempts,
		TotalRetries:         m.TotalRetries,
		TotalRateLimitErrors: m.TotalRateLimitErrors,
		TotalTokenRefreshes:  m.TotalTokenRefreshes,
	}
}
