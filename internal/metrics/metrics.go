package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"
)

// Metrics holds all application metrics
type Metrics struct {
	mu sync.RWMutex

	// Upstream fetch metrics
	FetchDaysTotal    int64
	FetchDayErrors    int64
	FetchRecordsTotal int64
	CacheHitsTotal    int64
	CacheMissesTotal  int64

	// Normalization metrics
	RecordsNormalizedTotal int64
	RecordsDroppedTotal    int64
	UnmatchedRecordsTotal  int64

	// Report metrics
	ReportsBuiltTotal  int64
	ReportErrorsTotal  int64
	SnapshotRefreshes  int64
	lastReportDuration time.Duration

	// HTTP metrics
	httpRequestsTotal    map[string]map[int]int64 // endpoint -> status -> count
	httpRequestDurations map[string][]float64     // endpoint -> durations

	// Timing
	startTime time.Time
}

// Global metrics instance
var instance *Metrics
var once sync.Once

// Get returns the singleton metrics instance
func Get() *Metrics {
	once.Do(func() {
		instance = &Metrics{
			httpRequestsTotal:    make(map[string]map[int]int64),
			httpRequestDurations: make(map[string][]float64),
			startTime:            time.Now(),
		}
	})
	return instance
}

// RecordFetchDay records a successfully fetched day and its record count
func (m *Metrics) RecordFetchDay(records int) {
	m.mu.Lock()
	m.FetchDaysTotal++
	m.FetchRecordsTotal += int64(records)
	m.mu.Unlock()
}

// RecordFetchDayError increments the failed-day counter
func (m *Metrics) RecordFetchDayError() {
	m.mu.Lock()
	m.FetchDayErrors++
	m.mu.Unlock()
}

// RecordCacheHit increments the day-cache hit counter
func (m *Metrics) RecordCacheHit() {
	m.mu.Lock()
	m.CacheHitsTotal++
	m.mu.Unlock()
}

// RecordCacheMiss increments the day-cache miss counter
func (m *Metrics) RecordCacheMiss() {
	m.mu.Lock()
	m.CacheMissesTotal++
	m.mu.Unlock()
}

// RecordNormalized adds to the normalized-record counter
func (m *Metrics) RecordNormalized(count int) {
	m.mu.Lock()
	m.RecordsNormalizedTotal += int64(count)
	m.mu.Unlock()
}

// RecordDroppedRecord increments the dropped-record counter
func (m *Metrics) RecordDroppedRecord() {
	m.mu.Lock()
	m.RecordsDroppedTotal++
	m.mu.Unlock()
}

// RecordUnmatched adds to the unmatched-queue record counter
func (m *Metrics) RecordUnmatched(count int) {
	m.mu.Lock()
	m.UnmatchedRecordsTotal += int64(count)
	m.mu.Unlock()
}

// RecordReportBuilt records a completed report build
func (m *Metrics) RecordReportBuilt(duration time.Duration) {
	m.mu.Lock()
	m.ReportsBuiltTotal++
	m.lastReportDuration = duration
	m.mu.Unlock()
}

// RecordReportError increments the report error counter
func (m *Metrics) RecordReportError() {
	m.mu.Lock()
	m.ReportErrorsTotal++
	m.mu.Unlock()
}

// RecordSnapshotRefresh increments the overview refresh counter
func (m *Metrics) RecordSnapshotRefresh() {
	m.mu.Lock()
	m.SnapshotRefreshes++
	m.mu.Unlock()
}

// RecordHTTPRequest records an HTTP request
func (m *Metrics) RecordHTTPRequest(endpoint string, statusCode int, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.httpRequestsTotal[endpoint] == nil {
		m.httpRequestsTotal[endpoint] = make(map[int]int64)
	}
	m.httpRequestsTotal[endpoint][statusCode]++

	// Keep last 100 durations for percentile calculation
	if len(m.httpRequestDurations[endpoint]) >= 100 {
		m.httpRequestDurations[endpoint] = m.httpRequestDurations[endpoint][1:]
	}
	m.httpRequestDurations[endpoint] = append(m.httpRequestDurations[endpoint], duration.Seconds())
}

// Handler returns an HTTP handler for the /metrics endpoint
func (m *Metrics) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m.mu.RLock()
		defer m.mu.RUnlock()

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")

		// Helper to write metric
		write := func(name string, value interface{}, labels ...string) {
			labelStr := ""
			if len(labels) > 0 {
				labelStr = "{"
				for i := 0; i < len(labels); i += 2 {
					if i > 0 {
						labelStr += ","
					}
					labelStr += labels[i] + "=\"" + labels[i+1] + "\""
				}
				labelStr += "}"
			}

			switch v := value.(type) {
			case int:
				w.Write([]byte(name + labelStr + " " + strconv.Itoa(v) + "\n"))
			case int64:
				w.Write([]byte(name + labelStr + " " + strconv.FormatInt(v, 10) + "\n"))
			case float64:
				w.Write([]byte(name + labelStr + " " + strconv.FormatFloat(v, 'f', 6, 64) + "\n"))
			}
		}

		// System metrics
		write("askdata_uptime_seconds", time.Since(m.startTime).Seconds())

		// Fetch metrics
		write("askdata_fetch_days_total", m.FetchDaysTotal)
		write("askdata_fetch_day_errors_total", m.FetchDayErrors)
		write("askdata_fetch_records_total", m.FetchRecordsTotal)
		write("askdata_day_cache_hits_total", m.CacheHitsTotal)
		write("askdata_day_cache_misses_total", m.CacheMissesTotal)

		// Normalization metrics
		write("askdata_records_normalized_total", m.RecordsNormalizedTotal)
		write("askdata_records_dropped_total", m.RecordsDroppedTotal)
		write("askdata_records_unmatched_total", m.UnmatchedRecordsTotal)

		// Report metrics
		write("askdata_reports_built_total", m.ReportsBuiltTotal)
		write("askdata_report_errors_total", m.ReportErrorsTotal)
		write("askdata_snapshot_refreshes_total", m.SnapshotRefreshes)
		write("askdata_report_duration_seconds", m.lastReportDuration.Seconds())

		// HTTP metrics
		for endpoint, statusCodes := range m.httpRequestsTotal {
			for status, count := range statusCodes {
				write("askdata_http_requests_total", count, "endpoint", endpoint, "status", strconv.Itoa(status))
			}
		}
	}
}
