//go:build !noprom

package metrics

import (
	"fmt"
	"net/http"

	prom "github.com/prometheus/client_golang/prometheus"
	promhttp "github.com/prometheus/client_golang/prometheus/promhttp"
)

type promRecorder struct {
	shapeshiftTotal   *prom.CounterVec
	shapeshiftSeconds *prom.HistogramVec
	embedTotal        *prom.CounterVec
	embedSeconds      *prom.HistogramVec
}

func (p *promRecorder) IncShapeshiftTotal(provider string, success bool) {
	p.shapeshiftTotal.WithLabelValues(provider, fmt.Sprintf("%t", success)).Inc()
}

func (p *promRecorder) ObserveShapeshiftSeconds(provider string, success bool, seconds float64) {
	p.shapeshiftSeconds.WithLabelValues(provider, fmt.Sprintf("%t", success)).Observe(seconds)
}

func (p *promRecorder) IncEmbedTotal(provider string, success bool) {
	p.embedTotal.WithLabelValues(provider, fmt.Sprintf("%t", success)).Inc()
}

func (p *promRecorder) ObserveEmbedSeconds(provider string, success bool, seconds float64) {
	p.embedSeconds.WithLabelValues(provider, fmt.Sprintf("%t", success)).Observe(seconds)
}

func enablePrometheus(addr string) error {
	registry := prom.NewRegistry()
	p := &promRecorder{
		shapeshiftTotal: prom.NewCounterVec(prom.CounterOpts{
			Name: "shapeshift_ops_total",
			Help: "Total number of shapeshift operations",
		}, []string{"provider", "success"}),
		shapeshiftSeconds: prom.NewHistogramVec(prom.HistogramOpts{
			Name:    "shapeshift_op_seconds",
			Help:    "Shapeshift operation duration in seconds",
			Buckets: prom.DefBuckets,
		}, []string{"provider", "success"}),
		embedTotal: prom.NewCounterVec(prom.CounterOpts{
			Name: "embed_requests_total",
			Help: "Total number of embedding batch requests",
		}, []string{"provider", "success"}),
		embedSeconds: prom.NewHistogramVec(prom.HistogramOpts{
			Name:    "embed_request_seconds",
			Help:    "Embedding batch request duration in seconds",
			Buckets: prom.DefBuckets,
		}, []string{"provider", "success"}),
	}

	registry.MustRegister(p.shapeshiftTotal, p.shapeshiftSeconds, p.embedTotal, p.embedSeconds)
	SetRecorder(p)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	go func() { _ = http.ListenAndServe(addr, mux) }()
	return nil
}
