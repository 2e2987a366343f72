// Package metrics records session activity as prometheus metrics.
//
// Each Recorder owns a private registry; nothing is exported over the
// network. The collected values can be dumped in the text exposition
// format when a session ends.
package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const namespace = "escapetower"

// Search outcomes used as the result label.
const (
	SearchFound    = "found"
	SearchNotFound = "not_found"
	SearchRejected = "rejected"
)

// Recorder collects sort and search metrics for one session.
type Recorder struct {
	registry *prometheus.Registry

	sortRuns        *prometheus.CounterVec
	sortComparisons *prometheus.CounterVec
	sortSwaps       *prometheus.CounterVec
	sortDuration    *prometheus.HistogramVec

	searches          *prometheus.CounterVec
	searchComparisons prometheus.Counter
}

// NewRecorder creates a recorder with all collectors registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		sortRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "sort",
				Name:      "runs_total",
				Help:      "Number of sort runs by algorithm.",
			},
			[]string{"algorithm"},
		),
		sortComparisons: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "sort",
				Name:      "comparisons_total",
				Help:      "Key comparisons performed by sorts, by algorithm.",
			},
			[]string{"algorithm"},
		),
		sortSwaps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "sort",
				Name:      "swaps_total",
				Help:      "Element swaps or shifts performed by sorts, by algorithm.",
			},
			[]string{"algorithm"},
		),
		sortDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "sort",
				Name:      "duration_seconds",
				Help:      "Wall-clock duration of sort runs, by algorithm.",
				Buckets:   prometheus.ExponentialBuckets(1e-7, 10, 7),
			},
			[]string{"algorithm"},
		),
		searches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "search",
				Name:      "requests_total",
				Help:      "Binary search requests by result.",
			},
			[]string{"result"},
		),
		searchComparisons: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "search",
				Name:      "comparisons_total",
				Help:      "Name comparisons performed by binary searches.",
			},
		),
	}

	r.registry.MustRegister(
		r.sortRuns,
		r.sortComparisons,
		r.sortSwaps,
		r.sortDuration,
		r.searches,
		r.searchComparisons,
	)
	return r
}

// RecordSort records one completed sort run.
func (r *Recorder) RecordSort(algorithm string, comparisons, swaps int64, elapsed time.Duration) {
	r.sortRuns.WithLabelValues(algorithm).Inc()
	r.sortComparisons.WithLabelValues(algorithm).Add(float64(comparisons))
	r.sortSwaps.WithLabelValues(algorithm).Add(float64(swaps))
	r.sortDuration.WithLabelValues(algorithm).Observe(elapsed.Seconds())
}

// RecordSearch records one search request. Rejected searches carry no comparisons.
func (r *Recorder) RecordSearch(result string, comparisons int64) {
	r.searches.WithLabelValues(result).Inc()
	r.searchComparisons.Add(float64(comparisons))
}

// Registry returns the recorder's registry, for gathering.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteText writes all collected metrics in the prometheus text format.
func (r *Recorder) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metric family %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
