// Package metrics registers the service's custom Prometheus metrics via
// promauto; importing any user of this package is enough to expose them on
// the default registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "accounts"

// UsersRegisteredTotal counts successful registrations.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of accounts created through registration.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok", "unknown_username", "invalid_password", "inactive"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ResetRequestsTotal counts forgot-password submissions. The caller-visible
// response is identical across results; the split exists for operators only.
// Label:
//   - result: "issued", "unknown_email", "throttled"
var ResetRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reset_requests_total",
		Help:      "Total number of password-reset requests, by result.",
	},
	[]string{"result"},
)

// ResetsCompletedTotal counts passwords actually changed via a reset token.
var ResetsCompletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resets_completed_total",
		Help:      "Total number of passwords changed through the reset flow.",
	},
)

// EmailsTotal counts notification deliveries.
// Labels:
//   - mode: "sync" or "async"
//   - result: "ok" or "error"
var EmailsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "emails_total",
		Help:      "Total number of notification emails attempted, by mode and result.",
	},
	[]string{"mode", "result"},
)

// ObserveEmail records one delivery attempt.
func ObserveEmail(mode string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	EmailsTotal.WithLabelValues(mode, result).Inc()
}
