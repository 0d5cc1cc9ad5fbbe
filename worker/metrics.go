package worker

import "github.com/prometheus/client_golang/prometheus"

var (
	eliminations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "arena",
			Subsystem: "worker",
			Name:      "eliminations_total",
			Help:      "Snakes eliminated, by cause.",
		},
		[]string{"cause"},
	)
	stepDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "arena",
			Subsystem: "worker",
			Name:      "step_seconds",
			Help:      "Time spent simulating one step of a round.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
		},
	)
	roundsRunning = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "arena",
			Subsystem: "worker",
			Name:      "rounds_running",
			Help:      "Rounds currently being simulated.",
		},
	)
)

func init() {
	prometheus.MustRegister(eliminations, stepDuration, roundsRunning)
}
