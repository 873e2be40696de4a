package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	transitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bidtrack",
		Name:      "workflow_transitions_total",
		Help:      "Workflow actions processed, labeled by action and outcome.",
	}, []string{"action", "outcome"})

	notificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bidtrack",
		Name:      "notifications_created_total",
		Help:      "Notification documents created, labeled by type.",
	}, []string{"type"})
)

// Transition outcomes used across the service.
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
	OutcomeConflict = "conflict"
)

func RecordTransition(action, outcome string) {
	transitionsTotal.WithLabelValues(action, outcome).Inc()
}

func RecordNotification(typ string) {
	notificationsTotal.WithLabelValues(typ).Inc()
}

// Handler serves the default prometheus registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
