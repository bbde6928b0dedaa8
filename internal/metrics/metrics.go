// Package metrics defines the Prometheus metrics exported on /metrics. All
// metrics register with the default registry on package init.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "portal"

// GateDecisionsTotal counts authorization gate outcomes.
// Labels:
//   - domain: "admin", "developer", "client" or "none"
//   - decision: "public", "allowed", "unauthorized", "redirected" or "passthrough"
var GateDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gate_decisions_total",
		Help:      "Authorization gate decisions by domain and outcome.",
	},
	[]string{"domain", "decision"},
)

// LoginsTotal counts login attempts.
// Labels:
//   - role: the portal the login targeted
//   - result: "success", "failure" or "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Login attempts by portal and result.",
	},
	[]string{"role", "result"},
)

// ClientIDCollisionsTotal counts generated client ids that were already taken.
var ClientIDCollisionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "client_id_collisions_total",
		Help:      "Generated client ids rejected by the store as duplicates.",
	},
)

// DocumentsTotal counts document uploads and downloads.
// Label:
//   - op: "store" or "retrieve"
var DocumentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "documents_total",
		Help:      "Document store operations.",
	},
	[]string{"op"},
)

// RequestDuration measures HTTP handling time.
var RequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method and status code.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "status"},
)

func Handler() http.Handler {
	return promhttp.Handler()
}
