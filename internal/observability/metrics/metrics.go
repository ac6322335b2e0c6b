package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/fx"
)

// Metrics aggregates the core's Prometheus instruments.
type Metrics struct {
	paymentsTotal        *prometheus.CounterVec
	paymentAmount        prometheus.Counter
	workflowTransitions  *prometheus.CounterVec
	notificationFailures prometheus.Counter
	ledgerSyncsTotal     prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		paymentsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "royaltyd",
			Name:      "payments_total",
			Help:      "Executed payment attempts by outcome.",
		}, []string{"outcome"}),
		paymentAmount: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "royaltyd",
			Name:      "payment_amount_total",
			Help:      "Total amount moved by successful payments.",
		}),
		workflowTransitions: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "royaltyd",
			Name:      "collaboration_transitions_total",
			Help:      "Collaboration state transitions by target state.",
		}, []string{"to"}),
		notificationFailures: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "royaltyd",
			Name:      "notification_failures_total",
			Help:      "Notifications that could not be delivered.",
		}),
		ledgerSyncsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "royaltyd",
			Name:      "ledger_syncs_total",
			Help:      "Ledger entries synced from work records.",
		}),
	}
}

func (m *Metrics) RecordPayment(outcome string, amount float64) {
	if m == nil {
		return
	}
	m.paymentsTotal.WithLabelValues(outcome).Inc()
	if outcome == "ok" {
		m.paymentAmount.Add(amount)
	}
}

func (m *Metrics) RecordTransition(to string) {
	if m == nil {
		return
	}
	m.workflowTransitions.WithLabelValues(to).Inc()
}

func (m *Metrics) RecordNotificationFailure() {
	if m == nil {
		return
	}
	m.notificationFailures.Inc()
}

func (m *Metrics) RecordLedgerSync() {
	if m == nil {
		return
	}
	m.ledgerSyncsTotal.Inc()
}

var Module = fx.Module("observability.metrics",
	fx.Provide(New),
)
