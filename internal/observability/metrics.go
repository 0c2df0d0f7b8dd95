// Package observability exposes Prometheus counters for the
// classification pipeline. Counters register with the default registry
// at init; a batch run can push or log them at exit.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PostsClassified counts annotated posts by hazard category.
	PostsClassified = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tidewatch",
		Name:      "posts_classified_total",
		Help:      "Posts successfully classified, by hazard category.",
	}, []string{"category"})

	// PostsSkipped counts posts dropped by the classifier.
	PostsSkipped = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tidewatch",
		Name:      "posts_skipped_total",
		Help:      "Posts dropped before annotation, by reason.",
	}, []string{"reason"})

	// DuplicatesDropped counts posts removed by content-hash deduplication.
	DuplicatesDropped = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "tidewatch",
		Name:      "duplicates_dropped_total",
		Help:      "Posts dropped because their content was already seen.",
	})

	// SentimentCacheHits counts memoized sentiment lookups.
	SentimentCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "tidewatch",
		Name:      "sentiment_cache_hits_total",
		Help:      "Sentiment scores served from the memoization cache.",
	})
)
