// Package metrics defines and registers all custom Prometheus metrics for
// the HR administration API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default registry at import time via promauto;
// the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hradmin"

// LoginsTotal counts login attempts.
// Labels:
//   - role: "employee" or "admin"
//   - outcome: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by role and outcome.",
	},
	[]string{"role", "outcome"},
)

// EmployeesCreatedTotal counts successful employee registrations.
var EmployeesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "employees_created_total",
		Help:      "Total number of employees registered.",
	},
)

// OfferLettersSentTotal counts offer letters that completed the full
// pipeline: rendered, persisted and emailed.
var OfferLettersSentTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "offer_letters_sent_total",
		Help:      "Total number of offer letters successfully sent.",
	},
)

// OfferLetterFailuresTotal counts pipeline failures.
// Label:
//   - stage: "guard", "render", "rasterize", "persist" or "dispatch"
var OfferLetterFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "offer_letter_failures_total",
		Help:      "Total number of offer letter pipeline failures, by stage.",
	},
	[]string{"stage"},
)

// OfferLetterDuration measures how long a successful pipeline run takes
// end-to-end, dominated by the headless-browser render.
var OfferLetterDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "offer_letter_duration_seconds",
		Help:      "Duration of successful offer letter pipeline runs.",
		Buckets:   []float64{.25, .5, 1, 2.5, 5, 10, 30, 60},
	},
)
