// Package monitoring exposes Prometheus metrics for the in-process
// kernel collaborator: trap volume and latency per service, heap
// occupancy, and mailbox depth.
package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all kernel-side Prometheus metrics.
type Metrics struct {
	TrapsTotal   *prometheus.CounterVec
	TrapDuration *prometheus.HistogramVec

	HeapBytes  prometheus.Gauge
	HeapBlocks prometheus.Gauge

	MailboxDepth prometheus.Gauge
	MessagesSent prometheus.Counter
}

// New creates a metrics collector registered on reg. Each kernel
// instance carries its own registry so tests can construct kernels
// freely.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		TrapsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "kernel_traps_total",
				Help: "Total traps serviced, by service and outcome",
			},
			[]string{"service", "outcome"},
		),
		TrapDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "kernel_trap_duration_seconds",
				Help:    "Trap service time in seconds",
				Buckets: []float64{.000001, .00001, .0001, .001, .01, .1, 1},
			},
			[]string{"service"},
		),
		HeapBytes: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "kernel_heap_bytes",
				Help: "Bytes currently allocated from the kernel heap",
			},
		),
		HeapBlocks: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "kernel_heap_blocks",
				Help: "Live allocations in the kernel heap",
			},
		),
		MailboxDepth: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "kernel_mailbox_depth",
				Help: "Messages queued across all mailboxes",
			},
		),
		MessagesSent: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "kernel_messages_sent_total",
				Help: "Messages accepted by the send service",
			},
		),
	}
}

// ObserveTrap records one serviced trap.
func (m *Metrics) ObserveTrap(service string, result int, d time.Duration) {
	outcome := "ok"
	if result < 0 {
		outcome = "error"
	}
	m.TrapsTotal.WithLabelValues(service, outcome).Inc()
	m.TrapDuration.WithLabelValues(service).Observe(d.Seconds())
}
