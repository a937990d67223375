// Package metrics holds Prometheus instruments used across the bridge
// server.  All collectors are registered with the global registry, so
// importing this package in the serve command is enough to expose them
// on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RedirectTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bridge_redirect_total",
			Help: "Redirect outcomes served, by result (direct, fallback, listing).",
		},
		[]string{"result"},
	)

	DetectedPlatformTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bridge_detected_platform_total",
			Help: "User-agent classifications, by platform identifier.",
		},
		[]string{"platform"},
	)

	ParseErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bridge_config_parse_errors_total",
			Help: "Cumulative number of rejected inline configurations.",
		})

	BadgesRenderedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bridge_badges_rendered_total",
			Help: "Cumulative number of badges rendered over HTTP.",
		})
)

func init() {
	prometheus.MustRegister(
		RedirectTotal,
		DetectedPlatformTotal,
		ParseErrorsTotal,
		BadgesRenderedTotal,
	)
}
