// Package observability provides logging, metrics, and tracing.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"gorm.io/gorm"
)

var (
	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "finbay_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// CacheHits counts cache-aside hits by entity type.
	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "finbay_cache_hits_total",
		Help: "Total number of cache hits by entity type",
	}, []string{"entity"})

	// CacheMisses counts cache-aside misses by entity type.
	CacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "finbay_cache_misses_total",
		Help: "Total number of cache misses by entity type",
	}, []string{"entity"})

	// MailSendsTotal counts outgoing mail attempts by result.
	MailSendsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "finbay_mail_sends_total",
		Help: "Total number of outgoing mail attempts by result",
	}, []string{"result"})
)

// DatabaseMetrics wraps DB access for recording query latency.
type DatabaseMetrics struct {
	db *gorm.DB
}

// NewDatabaseMetrics returns a new DatabaseMetrics instance.
func NewDatabaseMetrics(db *gorm.DB) *DatabaseMetrics {
	return &DatabaseMetrics{db: db}
}

// ObserveQuery records the latency of a database query.
func (m *DatabaseMetrics) ObserveQuery(operation, table string, start time.Time) {
	latency := time.Since(start).Seconds()
	DatabaseQueryLatency.WithLabelValues(operation, table).Observe(latency)
}

// TrackQuery returns a function that records query latency when called (e.g. defer).
func (m *DatabaseMetrics) TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		m.ObserveQuery(operation, table, start)
	}
}
