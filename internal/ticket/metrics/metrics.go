package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for ticket admission. Redemption failures
// carry no cause label; the API does not distinguish causes and neither do
// the metrics.
type Metrics struct {
	TicketsIssued      prometheus.Counter
	TicketsRedeemed    prometheus.Counter
	RedemptionFailures prometheus.Counter
	RedeemDuration     prometheus.Histogram
}

// New creates a new Metrics instance with all ticket module metrics registered.
func New() *Metrics {
	return &Metrics{
		TicketsIssued: promauto.NewCounter(prometheus.CounterOpts{
			Name: "convene_tickets_issued_total",
			Help: "Total number of admission tickets issued",
		}),
		TicketsRedeemed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "convene_tickets_redeemed_total",
			Help: "Total number of tickets successfully redeemed",
		}),
		RedemptionFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "convene_ticket_redemption_failures_total",
			Help: "Total number of rejected redemption attempts",
		}),
		RedeemDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "convene_ticket_redeem_duration_seconds",
			Help:    "Duration of ticket redemption (admission critical path)",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

// IncrementIssued records successfully issued tickets.
func (m *Metrics) IncrementIssued(count int) {
	if m == nil {
		return
	}
	m.TicketsIssued.Add(float64(count))
}

// IncrementRedeemed records a successful redemption.
func (m *Metrics) IncrementRedeemed() {
	if m == nil {
		return
	}
	m.TicketsRedeemed.Inc()
}

// IncrementFailure records a rejected redemption attempt.
func (m *Metrics) IncrementFailure() {
	if m == nil {
		return
	}
	m.RedemptionFailures.Inc()
}

// ObserveRedeem records the duration of a redemption attempt.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveRedeem(start time.Time) {
	if m == nil {
		return
	}
	m.RedeemDuration.Observe(time.Since(start).Seconds())
}
