package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder aggregates Metrics records into Prometheus collectors on a private registry.
// A nil *Recorder is valid and records nothing.
type Recorder struct {
	registry *prometheus.Registry

	RunsTotal   *prometheus.CounterVec
	RunFailures *prometheus.CounterVec
	RunDuration *prometheus.HistogramVec
	Operations  *prometheus.HistogramVec
	TotalCost   *prometheus.GaugeVec
}

// NewRecorder creates a Recorder with its own registry.
func NewRecorder() *Recorder {
	r := &Recorder{registry: prometheus.NewRegistry()}

	r.RunsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "mst_runs_total",
			Help: "Total number of MST runs",
		},
		[]string{"algorithm", "connected"},
	)

	r.RunFailures = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "mst_run_failures_total",
			Help: "Total number of MST runs rejected before the selection loop",
		},
		[]string{"algorithm"},
	)

	r.RunDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mst_run_duration_seconds",
			Help:    "Duration of the MST selection loop in seconds",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1.0},
		},
		[]string{"algorithm"},
	)

	r.Operations = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mst_operations",
			Help:    "Primitive steps performed per MST run",
			Buckets: prometheus.ExponentialBuckets(1, 10, 7),
		},
		[]string{"algorithm"},
	)

	r.TotalCost = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "mst_total_cost",
			Help: "Total cost of the last MST computed per graph",
		},
		[]string{"algorithm", "graph_id"},
	)

	return r
}

// Record adds one run to the collectors.
func (r *Recorder) Record(m Metrics) {
	if r == nil {
		return
	}
	alg := m.Algorithm().String()
	r.RunsTotal.WithLabelValues(alg, strconv.FormatBool(m.Connected())).Inc()
	r.RunDuration.WithLabelValues(alg).Observe(m.ExecutionTime().Seconds())
	r.Operations.WithLabelValues(alg).Observe(float64(m.Operations()))
	r.TotalCost.WithLabelValues(alg, strconv.Itoa(m.GraphID())).Set(m.TotalCost())
}

// RecordFailure counts a run that returned an error instead of a record.
func (r *Recorder) RecordFailure(alg Algorithm) {
	if r == nil {
		return
	}
	r.RunFailures.WithLabelValues(alg.String()).Inc()
}

// Registry exposes the underlying registry, e.g. for an HTTP handler or a Gatherer.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// WriteTextfile writes all collected metrics to path in the text exposition
// format, for the node_exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
