package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	summaryRequests      *prometheus.CounterVec
	summaryDuration      prometheus.Histogram
	transactionsRecorded *prometheus.CounterVec
	seededTransactions   prometheus.Counter
	activeWindows        *prometheus.GaugeVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		summaryRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "summary_requests_total",
				Help: "Total number of summary requests by operation and outcome",
			},
			[]string{"operation", "status"},
		),
		summaryDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "summary_request_duration_milliseconds",
				Help:    "Summary request duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		transactionsRecorded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transactions_recorded_total",
				Help: "Total number of transactions recorded by type",
			},
			[]string{"type"},
		),
		seededTransactions: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "sample_transactions_seeded_total",
				Help: "Total number of sample transactions generated",
			},
		),
		activeWindows: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "summary_window_ranges",
				Help: "Number of date ranges in the most recently resolved window",
			},
			[]string{"period_type"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "summary.request":
		m.summaryRequests.WithLabelValues(tags["operation"], tags["status"]).Inc()
	case "transaction.recorded":
		if txType := tags["type"]; txType != "" {
			m.transactionsRecorded.WithLabelValues(txType).Inc()
		}
	case "sample.seeded":
		m.seededTransactions.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "summary.request":
		m.summaryDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "summary.window_ranges":
		if periodType := tags["period_type"]; periodType != "" {
			m.activeWindows.WithLabelValues(periodType).Set(value)
		}
	}
}
