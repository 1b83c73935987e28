package server

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/matzehuels/wikireader/pkg/observability"
)

// Metrics records pipeline activity in Prometheus. It implements the
// observability hook interfaces; call Install to activate it.
type Metrics struct {
	sources        *prometheus.CounterVec
	sourceDuration *prometheus.HistogramVec
	degraded       prometheus.Histogram
	articles       *prometheus.CounterVec
	articleLatency prometheus.Histogram
	cache          *prometheus.CounterVec
	cacheBytes     prometheus.Counter
	upstream       *prometheus.CounterVec
	upstreamTime   *prometheus.HistogramVec
}

// NewMetrics registers the collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		sources: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wikireader",
			Name:      "edition_sources_total",
			Help:      "Edition source runs by source and outcome",
		}, []string{"source", "status"}),
		sourceDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "wikireader",
			Name:      "edition_source_duration_seconds",
			Help:      "Duration of edition source runs",
			Buckets:   prometheus.DefBuckets,
		}, []string{"source"}),
		degraded: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "wikireader",
			Name:      "edition_degraded_sources",
			Help:      "Number of degraded sources per assembled edition",
			Buckets:   []float64{0, 1, 2, 3, 5, 7},
		}),
		articles: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wikireader",
			Name:      "articles_total",
			Help:      "Article requests by outcome",
		}, []string{"status"}),
		articleLatency: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "wikireader",
			Name:      "article_duration_seconds",
			Help:      "Time to fetch and transform an article",
			Buckets:   prometheus.DefBuckets,
		}),
		cache: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wikireader",
			Name:      "cache_operations_total",
			Help:      "Response cache operations by namespace and result",
		}, []string{"namespace", "result"}),
		cacheBytes: f.NewCounter(prometheus.CounterOpts{
			Namespace: "wikireader",
			Name:      "cache_written_bytes_total",
			Help:      "Bytes written to the response cache",
		}),
		upstream: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wikireader",
			Name:      "upstream_requests_total",
			Help:      "Upstream HTTP requests by host and status code",
		}, []string{"host", "code"}),
		upstreamTime: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "wikireader",
			Name:      "upstream_request_duration_seconds",
			Help:      "Upstream HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"host"}),
	}
}

// Install makes m the active hook set for editions, caches and upstream
// HTTP.
func (m *Metrics) Install() {
	observability.SetEditionHooks(m)
	observability.SetCacheHooks(m)
	observability.SetHTTPHooks(m)
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

func (m *Metrics) OnSourceComplete(_ context.Context, source string, _ int, d time.Duration, err error) {
	m.sources.WithLabelValues(source, outcome(err)).Inc()
	m.sourceDuration.WithLabelValues(source).Observe(d.Seconds())
}

func (m *Metrics) OnEditionComplete(_ context.Context, degraded int, _ time.Duration) {
	m.degraded.Observe(float64(degraded))
}

func (m *Metrics) OnArticleComplete(_ context.Context, d time.Duration, err error) {
	m.articles.WithLabelValues(outcome(err)).Inc()
	m.articleLatency.Observe(d.Seconds())
}

func (m *Metrics) OnCacheHit(_ context.Context, ns string) {
	m.cache.WithLabelValues(ns, "hit").Inc()
}

func (m *Metrics) OnCacheMiss(_ context.Context, ns string) {
	m.cache.WithLabelValues(ns, "miss").Inc()
}

func (m *Metrics) OnCacheSet(_ context.Context, ns string, size int) {
	m.cache.WithLabelValues(ns, "set").Inc()
	m.cacheBytes.Add(float64(size))
}

func (m *Metrics) OnResponse(_ context.Context, host string, status int, d time.Duration) {
	m.upstream.WithLabelValues(host, strconv.Itoa(status)).Inc()
	m.upstreamTime.WithLabelValues(host).Observe(d.Seconds())
}

func (m *Metrics) OnError(_ context.Context, host string, _ error) {
	m.upstream.WithLabelValues(host, "error").Inc()
}
