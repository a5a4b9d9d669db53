// Package metrics aggregates solve outcomes as Prometheus metrics.
//
// The package never registers or exposes anything on its own: the embedding
// application registers the Collector in its registry and serves it however
// it serves its other metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/QuinnAlleman/Engineering-Tools/rootfind"
)

const namespace = "rootfind"

// Collector counts solve calls by method and terminal outcome and observes
// their iteration counts and wall-clock durations. It implements both
// rootfind.Recorder and prometheus.Collector: pass it via Settings.Recorder
// and register it wherever the application gathers metrics.
//
// All methods are safe for concurrent use.
type Collector struct {
	solves     *prometheus.CounterVec
	iterations *prometheus.HistogramVec
	duration   *prometheus.HistogramVec
}

var (
	_ rootfind.Recorder    = (*Collector)(nil)
	_ prometheus.Collector = (*Collector)(nil)
)

// NewCollector returns a Collector with zeroed instruments.
func NewCollector() *Collector {
	return &Collector{
		solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solves_total",
			Help:      "Solve calls by method and terminal outcome.",
		}, []string{"method", "outcome"}),
		iterations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solve_iterations",
			Help:      "Iterations run per solve call.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
		}, []string{"method"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solve_duration_seconds",
			Help:      "Wall-clock time per solve call.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
	}
}

// RecordSolve implements rootfind.Recorder.
func (c *Collector) RecordSolve(method, outcome string, iterations int, elapsed time.Duration) {
	c.solves.WithLabelValues(method, outcome).Inc()
	c.iterations.WithLabelValues(method).Observe(float64(iterations))
	c.duration.WithLabelValues(method).Observe(elapsed.Seconds())
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.solves.Describe(ch)
	c.iterations.Describe(ch)
	c.duration.Describe(ch)
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.solves.Collect(ch)
	c.iterations.Collect(ch)
	c.duration.Collect(ch)
}
