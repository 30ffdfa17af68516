// Package metrics collects run counters on a private Prometheus registry.
//
// Nothing is served over the network. The app gathers a snapshot at the end
// of a run and logs it, which keeps the instrumentation useful for batch
// invocations without opening a listener.
package metrics

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

var (
	registry = prometheus.NewRegistry()

	evaluationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "wordrank",
		Name:      "evaluation_duration_seconds",
		Help:      "Time to partition and score a single guess.",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 14),
	})

	partitionsBuilt = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "wordrank",
		Name:      "partitions_built_total",
		Help:      "Number of guess partitions built.",
	})

	cacheLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "wordrank",
		Name:      "cache_lookups_total",
		Help:      "Pattern cache lookups by outcome.",
	}, []string{"outcome"})

	workerCount = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "wordrank",
		Name:      "worker_count",
		Help:      "Number of active evaluation workers.",
	})
)

func init() {
	registry.MustRegister(evaluationDuration, partitionsBuilt, cacheLookups, workerCount)
}

// ObserveEvaluation records the duration of one guess evaluation.
func ObserveEvaluation(d time.Duration) {
	evaluationDuration.Observe(d.Seconds())
}

// RecordPartitionBuilt counts a built partition.
func RecordPartitionBuilt() {
	partitionsBuilt.Inc()
}

// RecordCacheHit counts a successful pattern cache load.
func RecordCacheHit() {
	cacheLookups.WithLabelValues("hit").Inc()
}

// RecordCacheMiss counts a cache load that fell back to computing.
func RecordCacheMiss() {
	cacheLookups.WithLabelValues("miss").Inc()
}

// UpdateWorkerCount sets the active worker gauge.
func UpdateWorkerCount(n int) {
	workerCount.Set(float64(n))
}

// Snapshot gathers the registry into a compact one-line-per-metric form,
// suitable for logging at the end of a run.
func Snapshot() ([]string, error) {
	families, err := registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather metrics: %w", err)
	}

	var lines []string
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			lines = append(lines, renderMetric(mf, m))
		}
	}
	sort.Strings(lines)
	return lines, nil
}

func renderMetric(mf *dto.MetricFamily, m *dto.Metric) string {
	name := mf.GetName()
	if labels := m.GetLabel(); len(labels) > 0 {
		parts := make([]string, len(labels))
		for i, lp := range labels {
			parts[i] = lp.GetName() + "=" + lp.GetValue()
		}
		name += "{" + strings.Join(parts, ",") + "}"
	}

	switch mf.GetType() {
	case dto.MetricType_COUNTER:
		return fmt.Sprintf("%s %g", name, m.GetCounter().GetValue())
	case dto.MetricType_GAUGE:
		return fmt.Sprintf("%s %g", name, m.GetGauge().GetValue())
	case dto.MetricType_HISTOGRAM:
		h := m.GetHistogram()
		count := h.GetSampleCount()
		mean := 0.0
		if count > 0 {
			mean = h.GetSampleSum() / float64(count)
		}
		return fmt.Sprintf("%s count=%d mean=%.4fs", name, count, mean)
	default:
		return name
	}
}
