// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Operations counts gateway operations by collection, operation and outcome code.
	Operations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "docstore_operations_total",
		Help: "Total number of gateway operations by collection, operation and outcome",
	}, []string{"collection", "operation", "outcome"})

	// DocumentLatency records how long loading and saving the whole document takes.
	DocumentLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "docstore_document_latency_seconds",
		Help:    "Latency of full-document load and save calls",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})

	// DocumentBytes is the size of the last persisted document.
	DocumentBytes = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "docstore_document_bytes",
		Help: "Size in bytes of the most recently saved document",
	})

	// RealtimeEvents counts change notifications emitted to socket.io rooms.
	RealtimeEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "docstore_realtime_events_total",
		Help: "Total number of change notifications emitted by collection",
	}, []string{"collection"})
)

// ObserveDocument records the latency of a load or save started at start.
func ObserveDocument(operation string, start time.Time) {
	DocumentLatency.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
