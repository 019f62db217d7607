package metrics_test

import (
	"net/http/httptest"
	"testing"

	"brickmarket/internal/pkg/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorkflowMetrics_IndependentInstances(t *testing.T) {
	// Two instances must not clash on registration
	first := metrics.NewWorkflowMetrics()
	second := metrics.NewWorkflowMetrics()

	first.TransitionConflict()

	firstBody := scrape(t, first)
	secondBody := scrape(t, second)

	assert.Contains(t, firstBody, "brickmarket_order_transition_conflicts_total 1")
	assert.Contains(t, secondBody, "brickmarket_order_transition_conflicts_total 0")
}

func TestWorkflowMetrics_CountsByLabel(t *testing.T) {
	m := metrics.NewWorkflowMetrics()

	m.OrderCreated("online")
	m.OrderCreated("online")
	m.OrderCreated("cod")
	m.TransitionApplied("seller_contacted")
	m.CheckoutPartialFailure()

	body := scrape(t, m)

	assert.Contains(t, body, `brickmarket_orders_created_total{payment_method="online"} 2`)
	assert.Contains(t, body, `brickmarket_orders_created_total{payment_method="cod"} 1`)
	assert.Contains(t, body, `brickmarket_order_transitions_total{to_status="seller_contacted"} 1`)
	assert.Contains(t, body, "brickmarket_checkout_partial_failures_total 1")
}

func TestWorkflowMetrics_HandlerServesTextFormat(t *testing.T) {
	m := metrics.NewWorkflowMetrics()
	m.TransitionApplied("confirmed")

	recorder := httptest.NewRecorder()
	m.Handler().ServeHTTP(recorder, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, 200, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "# HELP brickmarket_order_transitions_total")
}

// scrape renders one instance's metrics in the text exposition format.
func scrape(t *testing.T, m *metrics.WorkflowMetrics) string {
	t.Helper()

	recorder := httptest.NewRecorder()
	m.Handler().ServeHTTP(recorder, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, recorder.Code)
	return recorder.Body.String()
}
