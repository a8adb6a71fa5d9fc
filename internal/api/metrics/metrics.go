// Package metrics defines and registers all custom Prometheus metrics
// for the authentication gateway. It is the single source of truth for
// metric names, labels, and help strings. Metrics self-register with the
// default Prometheus registry via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "authgate"

// ── Login metrics ─────────────────────────────────────────────────────────────

// LoginsTotal counts completed login attempts.
// Labels:
//   - method: "password" or "social"
//   - outcome: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by method and outcome.",
	},
	[]string{"method", "outcome"},
)

// RegistrationsTotal counts newly created accounts.
// Label:
//   - provider: the login provider of record ("password", "google", "facebook")
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts created, labelled by provider.",
	},
	[]string{"provider"},
)

// ── Provider validation metrics ───────────────────────────────────────────────

// ProviderValidationDuration measures how long a federated token
// verification round trip takes.
// Label:
//   - provider: "google" or "facebook"
var ProviderValidationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "provider_validation_duration_seconds",
		Help:      "Duration of federated token verification against the provider.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"provider"},
)

// ProviderValidationErrorsTotal counts federated token verifications
// that reported an invalid token.
// Label:
//   - provider: "google" or "facebook"
var ProviderValidationErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "provider_validation_errors_total",
		Help:      "Total number of federated token verifications that failed.",
	},
	[]string{"provider"},
)
