package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	DaysInQueue = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "days_in_queue",
			Help: "Current number of days waiting in the crawl queue.",
		},
	)

	PagesFetchedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pages_fetched_total",
			Help: "Total number of listing page fetches.",
		},
		[]string{"status"}, // success, failure
	)

	PageFetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "page_fetch_duration_seconds",
			Help:    "Duration of listing page fetches.",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	PostsArchivedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "posts_archived_total",
			Help: "Total number of posts written to day archives.",
		},
	)

	DaysCrawledTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "days_crawled_total",
			Help: "Total number of days crawled.",
		},
		[]string{"status", "error_type"}, // status: archived, partial, failed, skipped
	)
)
