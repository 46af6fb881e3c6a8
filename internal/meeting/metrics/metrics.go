package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the meeting module. Tracks content
// mutations and how often the lifecycle guard rejects them.
type Metrics struct {
	ContentMutations      *prometheus.CounterVec
	GuardRejections       prometheus.Counter
	CascadeDeleteDuration prometheus.Histogram
}

// New creates a new Metrics instance with all meeting module metrics registered.
func New() *Metrics {
	return &Metrics{
		ContentMutations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "convene_content_mutations_total",
			Help: "Content mutations by operation",
		}, []string{"operation"}),
		GuardRejections: promauto.NewCounter(prometheus.CounterOpts{
			Name: "convene_lifecycle_guard_rejections_total",
			Help: "Mutations rejected because the meeting is finished",
		}),
		CascadeDeleteDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "convene_agenda_cascade_delete_duration_seconds",
			Help:    "Duration of agenda item cascade deletions",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

// IncrementMutation records a successful content mutation.
func (m *Metrics) IncrementMutation(operation string) {
	if m == nil {
		return
	}
	m.ContentMutations.WithLabelValues(operation).Inc()
}

// IncrementGuardRejection records a mutation blocked by the lifecycle guard.
func (m *Metrics) IncrementGuardRejection() {
	if m == nil {
		return
	}
	m.GuardRejections.Inc()
}

// ObserveCascadeDelete records the duration of a cascade deletion.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveCascadeDelete(start time.Time) {
	if m == nil {
		return
	}
	m.CascadeDeleteDuration.Observe(time.Since(start).Seconds())
}
