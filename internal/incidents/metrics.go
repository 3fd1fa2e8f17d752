package incidents

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "soarsim"

var (
	incidentsInStore = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "incidents",
			Name:      "in_store",
			Help:      "Number of incidents currently held in the store",
		},
	)

	incidentOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "incidents",
			Name:      "operations_total",
			Help:      "Total successful store mutations by operation",
		},
		[]string{"operation"},
	)
)

func setIncidentCount(n int) {
	incidentsInStore.Set(float64(n))
}

func recordOperation(operation string) {
	incidentOperations.WithLabelValues(operation).Inc()
}
