package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsPrefix is the prefix used for all metrics
const MetricsPrefix = "crypto_tracker_"

// Service constants
const (
	ServiceRefresh = "refresh"
	ServiceChart   = "chart"
)

var (
	// Upstream request counter per service
	// Cardinality: ~6 (2 services x 3 statuses)
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "upstream_requests_total",
			Help: "Total number of HTTP requests to the CoinGecko API per service",
		},
		[]string{"service", "status"},
	)

	// Refresh cycle duration
	RefreshCycleDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: MetricsPrefix + "refresh_cycle_duration_seconds",
			Help: "Time taken to complete one snapshot refresh cycle",
		},
		[]string{"service"},
	)

	// Number of coins in the last applied snapshot
	SnapshotSizeGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricsPrefix + "snapshot_size",
			Help: "Number of coins in the last applied snapshot",
		},
		[]string{"service"},
	)

	// Refresh controller state (0=idle, 1=loading, 2=success, 3=degraded, 4=failed)
	RefreshStateGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricsPrefix + "refresh_state",
			Help: "Current refresh controller state (0=idle, 1=loading, 2=success, 3=degraded, 4=failed)",
		},
	)

	// Connected WebSocket dashboard clients
	WSClientsGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricsPrefix + "ws_clients",
			Help: "Number of connected WebSocket dashboard clients",
		},
	)
)

// MetricsWriter provides a unified interface for recording service metrics
type MetricsWriter struct {
	serviceName string
}

// NewMetricsWriter creates a new MetricsWriter for the specified service
func NewMetricsWriter(serviceName string) *MetricsWriter {
	return &MetricsWriter{
		serviceName: serviceName,
	}
}

// GetServiceName returns the service name
func (mw *MetricsWriter) GetServiceName() string {
	return mw.serviceName
}

// RecordRefreshCycle records the duration of one refresh cycle
func (mw *MetricsWriter) RecordRefreshCycle(duration time.Duration) {
	RefreshCycleDuration.WithLabelValues(mw.serviceName).Observe(duration.Seconds())
}

// TrackRefreshCycle returns a function that records the cycle duration when called
func (mw *MetricsWriter) TrackRefreshCycle() func() {
	start := time.Now()
	return func() {
		mw.RecordRefreshCycle(time.Since(start))
	}
}

// RecordSnapshotSize records the number of coins in the last applied snapshot
func (mw *MetricsWriter) RecordSnapshotSize(size int) {
	SnapshotSizeGauge.WithLabelValues(mw.serviceName).Set(float64(size))
}

// RecordRefreshState records the refresh controller state as a numeric gauge
func (mw *MetricsWriter) RecordRefreshState(state int) {
	RefreshStateGauge.Set(float64(state))
}

// OnRequest implements the coingecko.StatusHandler interface
func (mw *MetricsWriter) OnRequest(status string) {
	UpstreamRequestsTotal.WithLabelValues(mw.serviceName, status).Inc()
}
