// Package metrics exposes prometheus collectors for the order workflow.
// The HTTP adapter increments them on operation outcomes; the /metrics
// endpoint serves the scrape handler.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// WorkflowMetrics bundles the counters describing the verification workflow.
// Each instance owns its registry, so construction never panics on duplicate
// registration.
type WorkflowMetrics struct {
	registry *prometheus.Registry

	ordersCreated    *prometheus.CounterVec
	transitions      *prometheus.CounterVec
	conflicts        prometheus.Counter
	partialCheckouts prometheus.Counter
}

// NewWorkflowMetrics creates and registers the workflow collectors.
func NewWorkflowMetrics() *WorkflowMetrics {
	ordersCreated := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "brickmarket",
		Name:      "orders_created_total",
		Help:      "Total number of orders produced by checkout.",
	}, []string{"payment_method"})
	transitions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "brickmarket",
		Name:      "order_transitions_total",
		Help:      "Total number of applied workflow transitions.",
	}, []string{"to_status"})
	conflicts := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "brickmarket",
		Name:      "order_transition_conflicts_total",
		Help:      "Total number of transitions lost to a concurrent update.",
	})
	partialCheckouts := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "brickmarket",
		Name:      "checkout_partial_failures_total",
		Help:      "Total number of checkouts where at least one seller group failed.",
	})

	registry := prometheus.NewRegistry()
	registry.MustRegister(ordersCreated, transitions, conflicts, partialCheckouts)

	return &WorkflowMetrics{
		registry:         registry,
		ordersCreated:    ordersCreated,
		transitions:      transitions,
		conflicts:        conflicts,
		partialCheckouts: partialCheckouts,
	}
}

// OrderCreated counts one order produced by checkout.
func (m *WorkflowMetrics) OrderCreated(paymentMethod string) {
	m.ordersCreated.WithLabelValues(paymentMethod).Inc()
}

// TransitionApplied counts one successful workflow transition.
func (m *WorkflowMetrics) TransitionApplied(toStatus string) {
	m.transitions.WithLabelValues(toStatus).Inc()
}

// TransitionConflict counts one transition rejected because the order changed
// underneath the caller.
func (m *WorkflowMetrics) TransitionConflict() {
	m.conflicts.Inc()
}

// CheckoutPartialFailure counts one checkout with at least one failed seller
// group.
func (m *WorkflowMetrics) CheckoutPartialFailure() {
	m.partialCheckouts.Inc()
}

// Handler returns the scrape handler for this instance's registry.
func (m *WorkflowMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
