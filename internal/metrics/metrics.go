package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// CyclesStarted counts successfully started daily standup cycles.
	CyclesStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "standup_cycles_started_total",
		Help: "Number of daily standup cycles started.",
	})

	// CycleErrors counts daily cycles that failed to start.
	CycleErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "standup_cycle_errors_total",
		Help: "Number of daily standup cycles that failed.",
	})

	// StandupsCreated counts newly materialized standup entries.
	StandupsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "standup_entries_created_total",
		Help: "Number of standup entries created.",
	})

	// MessagesSent counts messages delivered to Slack channels.
	MessagesSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "standup_messages_sent_total",
		Help: "Number of Slack messages sent.",
	})
)

// HTTPHandler returns an http.Handler that serves Prometheus metrics.
func HTTPHandler() http.Handler {
	return promhttp.Handler()
}
