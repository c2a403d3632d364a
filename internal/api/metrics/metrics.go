// Package metrics defines and registers all custom Prometheus metrics for
// the conductor. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at import
// time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "conductor"

// SignupEventsReceivedTotal counts signup webhook deliveries that passed
// authentication and payload validation.
var SignupEventsReceivedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signup_events_received_total",
		Help:      "Total number of accepted signup webhook deliveries.",
	},
)

// OnboardingRunsTotal counts finished onboarding runs.
// Label:
//   - outcome: "provisioned" (tenant created), "degraded" (profile only),
//     or "failed" (profile write failed)
var OnboardingRunsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "onboarding_runs_total",
		Help:      "Total number of onboarding runs, labelled by outcome.",
	},
	[]string{"outcome"},
)

// WebhookAuthRejectedTotal counts deliveries rejected by the shared-secret
// check before any orchestration ran.
var WebhookAuthRejectedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "webhook_auth_rejected_total",
		Help:      "Total number of webhook deliveries with an invalid secret header.",
	},
)

// OnboardingDuration measures how long one onboarding run takes end-to-end,
// including all data-store round trips.
var OnboardingDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "onboarding_duration_seconds",
		Help:      "Duration of the onboarding sequence from dispatch to result.",
		Buckets:   prometheus.DefBuckets,
	},
)

// Outcome label values for OnboardingRunsTotal.
const (
	OutcomeProvisioned = "provisioned"
	OutcomeDegraded    = "degraded"
	OutcomeFailed      = "failed"
)
