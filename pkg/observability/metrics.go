package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/voie/pkg/domain"
)

// Metrics holds the Prometheus collectors fed by engine events.
type Metrics struct {
	StateEnters *prometheus.CounterVec
	StateLeaves *prometheus.CounterVec
	Redirects   *prometheus.CounterVec
	Transitions *prometheus.CounterVec
	Duration    prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		StateEnters: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "voie_state_enters_total",
				Help: "Total number of committed state entries",
			},
			[]string{"state"},
		),
		StateLeaves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "voie_state_leaves_total",
				Help: "Total number of state teardowns",
			},
			[]string{"state"},
		),
		Redirects: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "voie_redirects_total",
				Help: "Total number of redirect hops",
			},
			[]string{"from", "to"},
		),
		Transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "voie_transitions_total",
				Help: "Total number of finished transitions by outcome",
			},
			[]string{"outcome"},
		),
		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "voie_transition_duration_seconds",
			Help:    "Duration of transitions",
			Buckets: prometheus.DefBuckets,
		}),
	}
	if reg != nil {
		reg.MustRegister(m.StateEnters, m.StateLeaves, m.Redirects, m.Transitions, m.Duration)
	}
	return m
}

// Hooks returns lifecycle hooks recording into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStateEnter: func(ctx context.Context, e *domain.StateEvent) {
			m.StateEnters.WithLabelValues(e.State).Inc()
		},
		OnStateLeave: func(ctx context.Context, e *domain.StateEvent) {
			m.StateLeaves.WithLabelValues(e.State).Inc()
		},
		OnRedirect: func(ctx context.Context, e *domain.RedirectEvent) {
			m.Redirects.WithLabelValues(e.From, e.To).Inc()
		},
		OnTransitionEnd: func(ctx context.Context, e *domain.TransitionEvent) {
			outcome := "committed"
			if e.Err != nil {
				outcome = "failed"
			}
			m.Transitions.WithLabelValues(outcome).Inc()
			m.Duration.Observe(e.Duration.Seconds())
		},
	}
}
