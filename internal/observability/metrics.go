package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Collector holds all Prometheus metrics for the service on a private registry.
type Collector struct {
	registry *prometheus.Registry

	// Embedding cache metrics
	CacheHits       *prometheus.CounterVec
	CacheMisses     *prometheus.CounterVec
	ProviderBatches *prometheus.CounterVec
	ProviderLatency *prometheus.HistogramVec

	// Pipeline metrics
	PinsImported   *prometheus.CounterVec
	RankingsServed prometheus.Counter
}

func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		CacheHits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "embedding_cache_hits_total",
				Help:      "Entities whose cached vector was reused",
			},
			[]string{"scope"},
		),
		CacheMisses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "embedding_cache_misses_total",
				Help:      "Entities that had to be sent to the embedding provider",
			},
			[]string{"scope"},
		),
		ProviderBatches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "embedding_provider_batches_total",
				Help:      "Embedding provider calls by outcome",
			},
			[]string{"scope", "status"},
		),
		ProviderLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "embedding_provider_duration_seconds",
				Help:      "Embedding provider call duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"scope"},
		),
		PinsImported: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "pins_imported_total",
				Help:      "Pins imported by text quality",
			},
			[]string{"quality"},
		),
		RankingsServed: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rankings_served_total",
				Help:      "Successful product rankings",
			},
		),
	}

	registry.MustRegister(
		c.CacheHits,
		c.CacheMisses,
		c.ProviderBatches,
		c.ProviderLatency,
		c.PinsImported,
		c.RankingsServed,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

// Registry is what the /metrics handler serves.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
