package nowplaying

import "github.com/prometheus/client_golang/prometheus"

// Metrics
var (
	commitsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "nowplaying_commits_total", Help: "Committed updates"},
		[]string{"source"},
	)
	offlineTransitions = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "nowplaying_offline_transitions_total", Help: "Staleness sweeps that forced offline"},
	)
	subscriberGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{Name: "nowplaying_subscribers", Help: "Connected push subscribers"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(commitsTotal, offlineTransitions, subscriberGauge)
}
