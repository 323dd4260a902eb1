// Package metrics defines and registers all custom Prometheus metrics for the
// employee API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation through promauto; HTTP request metrics come from the
// echoprometheus middleware installed by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "employee_api"

// ── Employee metrics ──────────────────────────────────────────────────────────

// EmployeesCreatedTotal counts employees persisted through POST.
var EmployeesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "employees_created_total",
		Help:      "Total number of employees created.",
	},
)

// EmployeesUpdatedTotal counts successful employee updates.
var EmployeesUpdatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "employees_updated_total",
		Help:      "Total number of employees updated.",
	},
)

// EmployeesDeletedTotal counts employees removed through DELETE.
var EmployeesDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "employees_deleted_total",
		Help:      "Total number of employees deleted.",
	},
)

// EmailConflictsTotal counts writes rejected because the email is taken.
// Label:
//   - operation: "create" or "update"
var EmailConflictsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "email_conflicts_total",
		Help:      "Total number of employee writes rejected for a duplicate email, by operation.",
	},
	[]string{"operation"},
)

// ── Student metrics ───────────────────────────────────────────────────────────

// StudentsCreatedTotal counts students persisted through POST.
var StudentsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "students_created_total",
		Help:      "Total number of students created.",
	},
)
