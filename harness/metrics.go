package harness

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/weiihann/sortbench/quicksort"
)

// Metrics records per-sort measurements. A nil *Metrics discards them.
type Metrics struct {
	sorts      *prometheus.CounterVec
	unsorted   *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	operations *prometheus.HistogramVec
}

// NewMetrics creates the benchmark collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		sorts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sortbench_sorts_total",
			Help: "Number of timed sorts by variant",
		}, []string{"variant"}),
		unsorted: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sortbench_unsorted_total",
			Help: "Number of sorts that left the data out of order",
		}, []string{"variant"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sortbench_sort_duration_seconds",
			Help:    "Elapsed time of a single sort",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
		}, []string{"variant"}),
		operations: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sortbench_operations",
			Help:    "Operation count of a single sort",
			Buckets: prometheus.ExponentialBuckets(1, 4, 12),
		}, []string{"variant"}),
	}
}

func (m *Metrics) observe(v quicksort.Variant, s Sample, sorted bool) {
	if m == nil {
		return
	}

	label := string(v)

	m.sorts.WithLabelValues(label).Inc()
	m.duration.WithLabelValues(label).Observe(s.Elapsed.Seconds())
	m.operations.WithLabelValues(label).Observe(float64(s.Count))

	if !sorted {
		m.unsorted.WithLabelValues(label).Inc()
	}
}
