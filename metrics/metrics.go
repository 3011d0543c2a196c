// Package metrics exposes Prometheus collectors for command handling and the
// remote APIs the bot depends on.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "schnose"

// Metrics owns a private registry so tests can build as many as they like.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	commands        *prometheus.CounterVec
	commandDuration *prometheus.HistogramVec
	apiRequests     *prometheus.CounterVec
	apiLatency      *prometheus.HistogramVec
	recordSlots     *prometheus.CounterVec
}

// New registers every collector on a fresh registry
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		commands: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "bot",
			Name:      "commands_total",
			Help:      "Slash command invocations by command and outcome.",
		}, []string{"command", "outcome"}),
		commandDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "bot",
			Name:      "command_duration_seconds",
			Help:      "Time from interaction receipt to final reply.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 3, 5, 10},
		}, []string{"command"}),
		apiRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "remote",
			Name:      "requests_total",
			Help:      "Remote API requests by api, endpoint and HTTP status (0 on transport failure).",
		}, []string{"api", "endpoint", "status"}),
		apiLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "remote",
			Name:      "request_duration_seconds",
			Help:      "Remote API request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"api", "endpoint"}),
		recordSlots: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "records",
			Name:      "slots_total",
			Help:      "Aggregated record slots by run type and whether a record was found.",
		}, []string{"run_type", "result"}),
	}
}

// Registry returns the registry backing /metrics
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveCommand records one handled command
func (m *Metrics) ObserveCommand(command, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.commands.WithLabelValues(command, outcome).Inc()
	m.commandDuration.WithLabelValues(command).Observe(elapsed.Seconds())
}

// ObserveRequest records one remote API call
func (m *Metrics) ObserveRequest(api, endpoint string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.apiRequests.WithLabelValues(api, endpoint, strconv.Itoa(status)).Inc()
	m.apiLatency.WithLabelValues(api, endpoint).Observe(elapsed.Seconds())
}

// ObserveSlot records whether an aggregated slot came back populated
func (m *Metrics) ObserveSlot(runType string, present bool) {
	if m == nil {
		return
	}
	result := "absent"
	if present {
		result = "present"
	}
	m.recordSlots.WithLabelValues(runType, result).Inc()
}
