package metrics_test

import (
	"strings"
	"testing"
	"time"

	"github.com/davost/wordrank/pkg/metrics"
	. "github.com/smartystreets/goconvey/convey"
)

func snapshotLine(t *testing.T, prefix string) string {
	t.Helper()
	lines, err := metrics.Snapshot()
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	for _, line := range lines {
		if strings.HasPrefix(line, prefix) {
			return line
		}
	}
	return ""
}

func TestMetrics(t *testing.T) {
	Convey("Given the run metrics", t, func() {
		Convey("When cache lookups are recorded", func() {
			metrics.RecordCacheHit()
			metrics.RecordCacheMiss()
			metrics.RecordCacheMiss()

			Convey("Then the snapshot reports both outcomes", func() {
				So(snapshotLine(t, "wordrank_cache_lookups_total{outcome=hit}"), ShouldNotBeEmpty)
				So(snapshotLine(t, "wordrank_cache_lookups_total{outcome=miss}"), ShouldNotBeEmpty)
			})
		})

		Convey("When the worker gauge is updated", func() {
			metrics.UpdateWorkerCount(8)

			Convey("Then the snapshot reflects the last value", func() {
				So(snapshotLine(t, "wordrank_worker_count"), ShouldEndWith, " 8")
			})
		})

		Convey("When evaluations are observed", func() {
			metrics.ObserveEvaluation(2 * time.Millisecond)
			metrics.RecordPartitionBuilt()

			Convey("Then the histogram line carries a count and a mean", func() {
				line := snapshotLine(t, "wordrank_evaluation_duration_seconds")
				So(line, ShouldContainSubstring, "count=")
				So(line, ShouldContainSubstring, "mean=")
				So(snapshotLine(t, "wordrank_partitions_built_total"), ShouldNotBeEmpty)
			})
		})
	})
}
