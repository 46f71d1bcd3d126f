package ddb

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	characterFetchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "combat_companion_character_fetches_total",
		Help: "Character service fetches by upstream status",
	}, []string{"status"})

	characterFetchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "combat_companion_character_fetch_duration_seconds",
		Help:    "Character service fetch latency",
		Buckets: prometheus.DefBuckets,
	})
)

func observeFetch(status int, ok bool, elapsed time.Duration) {
	label := statusLabel(status)
	if ok {
		label = "ok"
	}
	characterFetchesTotal.WithLabelValues(label).Inc()
	characterFetchDuration.Observe(elapsed.Seconds())
}
