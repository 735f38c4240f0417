package txsign

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts signing and recovery calls.
type Metrics struct {
	SignAttempts    prometheus.Counter
	SignFailures    *prometheus.CounterVec
	RecoverAttempts prometheus.Counter
	RecoverFailures *prometheus.CounterVec
}

// NewMetricsWithRegistry registers the metrics with registry, or with the
// default registry when it is nil.
func NewMetricsWithRegistry(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	return &Metrics{
		SignAttempts: factory.NewCounter(prometheus.CounterOpts{
			Name: "txsigner_sign_attempts_total",
			Help: "The total number of transaction signing attempts",
		}),
		SignFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "txsigner_sign_failures_total",
				Help: "The total number of failed signing attempts by error kind",
			},
			[]string{"kind"},
		),
		RecoverAttempts: factory.NewCounter(prometheus.CounterOpts{
			Name: "txsigner_recover_attempts_total",
			Help: "The total number of public key recovery attempts",
		}),
		RecoverFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "txsigner_recover_failures_total",
				Help: "The total number of failed recovery attempts by error kind",
			},
			[]string{"kind"},
		),
	}
}
