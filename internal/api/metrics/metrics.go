// Package metrics defines the custom Prometheus metrics for the maturity
// assessment API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register themselves with the default registry at init time via
// promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "sqm"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AssessmentsSubmittedTotal counts completed questionnaire submissions.
var AssessmentsSubmittedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "assessments_submitted_total",
		Help:      "Total number of assessments submitted.",
	},
)

// ActionPlansTotal counts action-plan mutations.
// Label:
//   - operation: "created", "updated", or "deleted"
var ActionPlansTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "action_plans_total",
		Help:      "Total number of action plan mutations, by operation.",
	},
	[]string{"operation"},
)

// ComparisonsTotal counts assessment comparisons served.
var ComparisonsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "comparisons_total",
		Help:      "Total number of assessment comparisons computed.",
	},
)

// DemoRequestsTotal counts demo-request emails.
// Label:
//   - result: "sent" or "error"
var DemoRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "demo_requests_total",
		Help:      "Total number of demonstration requests, by dispatch result.",
	},
	[]string{"result"},
)
