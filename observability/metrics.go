package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	storeOperations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activity_finder",
		Subsystem: "store",
		Name:      "operations_total",
		Help:      "Store operations by name and outcome.",
	}, []string{"operation", "result"})
	storeLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "activity_finder",
		Subsystem: "store",
		Name:      "operation_duration_seconds",
		Help:      "Latency of store operations.",
		Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25},
	}, []string{"operation"})
	filterRetained = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "activity_finder",
		Subsystem: "query",
		Name:      "retained_ratio",
		Help:      "Share of activities kept by the list filters.",
		Buckets:   prometheus.LinearBuckets(0, 0.1, 11),
	})
)

func init() {
	prometheus.MustRegister(storeOperations, storeLatency, filterRetained)
}

// RecordStoreOperation counts one store call and its latency.
func RecordStoreOperation(operation string, started time.Time, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	storeOperations.WithLabelValues(operation, result).Inc()
	storeLatency.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}

// RecordFilterResult observes how much of a list survived filtering.
func RecordFilterResult(total, retained int) {
	if total == 0 {
		return
	}
	filterRetained.Observe(float64(retained) / float64(total))
}
