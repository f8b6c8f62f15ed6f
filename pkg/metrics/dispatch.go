package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	DispatchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "posbridge",
			Subsystem: "dispatch",
			Name:      "duration_seconds",
			Help:      "Order dispatch latency in seconds, including the external API call",
			Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"outcome"},
	)

	DispatchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "posbridge",
			Subsystem: "dispatch",
			Name:      "orders_total",
			Help:      "Total number of order dispatch attempts by outcome",
		},
		[]string{"outcome"},
	)
)

func init() {
	Registry.MustRegister(DispatchDuration, DispatchTotal)
}
