// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Deal commit outcomes.
const (
	OutcomeCommitted  = "committed"
	OutcomeIncomplete = "incomplete"
	OutcomeRejected   = "rejected"
	OutcomeEmpty      = "empty"
)

// Metrics groups the server's collectors on their own registry.
type Metrics struct {
	registry *prometheus.Registry

	DealCommits    *prometheus.CounterVec
	CartRejections prometheus.Counter
	Checkouts      prometheus.Counter
	RPCDuration    *prometheus.HistogramVec
}

// New registers all collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		DealCommits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tastyhub",
			Name:      "deal_commits_total",
			Help:      "Deal redemption commit attempts by deal and outcome.",
		}, []string{"deal", "outcome"}),
		CartRejections: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tastyhub",
			Name:      "cart_deal_rejections_total",
			Help:      "Discounted additions refused because the cart already held a deal.",
		}),
		Checkouts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tastyhub",
			Name:      "checkouts_total",
			Help:      "Orders placed.",
		}),
		RPCDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "tastyhub",
			Name:      "rpc_duration_seconds",
			Help:      "RPC latency by procedure and code.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure", "code"}),
	}
	m.registry.MustRegister(
		m.DealCommits,
		m.CartRejections,
		m.Checkouts,
		m.RPCDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
