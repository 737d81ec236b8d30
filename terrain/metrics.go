// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package terrain

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rebuildsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "ocean",
		Subsystem: "terrain",
		Name:      "rebuilds_total",
		Help:      "The number of quadtree rebuilds.",
	})

	rebuildSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "ocean",
		Subsystem: "terrain",
		Name:      "rebuild_seconds",
		Help:      "The time spent rebuilding the quadtree.",
		Buckets:   prometheus.ExponentialBuckets(0.00005, 2, 12),
	})

	nodesGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "ocean",
		Subsystem: "terrain",
		Name:      "nodes",
		Help:      "The number of nodes in the current quadtree.",
	})

	leavesGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "ocean",
		Subsystem: "terrain",
		Name:      "leaves",
		Help:      "The number of leaves in the current quadtree.",
	})

	forcedLeavesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ocean",
		Subsystem: "terrain",
		Name:      "forced_leaves_total",
		Help:      "The number of degraded leaves, by reason.",
	}, []string{"reason"})

	skippedLeavesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "ocean",
		Subsystem: "terrain",
		Name:      "skipped_leaves_total",
		Help:      "The number of leaves not drawn for lack of a patch.",
	})

	drawsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "ocean",
		Subsystem: "terrain",
		Name:      "draws_total",
		Help:      "The number of patch draws issued.",
	})
)

func instrumentRebuild(start time.Time, s BuildStats) {
	rebuildsTotal.Inc()
	rebuildSeconds.Observe(time.Since(start).Seconds())
	nodesGauge.Set(float64(s.Nodes))
	leavesGauge.Set(float64(s.Leaves))
	if s.Forced > 0 {
		forcedLeavesTotal.WithLabelValues("capacity").Add(float64(s.Forced))
	}
	if s.Missing > 0 {
		forcedLeavesTotal.WithLabelValues("pool").Add(float64(s.Missing))
	}
}

func instrumentRender(drawn, skipped int) {
	drawsTotal.Add(float64(drawn))
	skippedLeavesTotal.Add(float64(skipped))
}
