// Package metrics defines and registers all custom Prometheus metrics for
// the finance API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at package init via
// promauto; the /metrics route exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "finance"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "failure", or "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts successfully created accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successful account registrations.",
	},
)

// TokensRejectedTotal counts bearer tokens the authentication filter set
// aside. Rejected tokens degrade the request to anonymous; they never abort it.
// Label:
//   - reason: "malformed", "unknown_subject", or "invalid"
var TokensRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_rejected_total",
		Help:      "Total number of bearer tokens rejected by the authentication filter.",
	},
	[]string{"reason"},
)

// ── Resource metrics ──────────────────────────────────────────────────────────

// ExpensesCreatedTotal counts recorded expenses.
// Label:
//   - type: "INCOME" or "EXPENSE"
var ExpensesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "expenses_created_total",
		Help:      "Total number of expenses recorded, by type.",
	},
	[]string{"type"},
)

// PlacesDeletedTotal counts deleted places.
var PlacesDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "places_deleted_total",
		Help:      "Total number of places deleted.",
	},
)
