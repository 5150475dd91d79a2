package metrics

import (
	"os"
	"sync"
	"time"
)

// Package metrics provides a minimal instrumentation interface with a no-op
// default and optional Prometheus-backed implementation enabled via env.

// Recorder defines the metrics surface used across the codebase.
type Recorder interface {
	IncShapeshiftTotal(provider string, success bool)
	ObserveShapeshiftSeconds(provider string, success bool, seconds float64)
	IncEmbedTotal(provider string, success bool)
	ObserveEmbedSeconds(provider string, success bool, seconds float64)
}

// noopRecorder implements Recorder with no-ops.
type noopRecorder struct{}

func (n *noopRecorder) IncShapeshiftTotal(string, bool)                {}
func (n *noopRecorder) ObserveShapeshiftSeconds(string, bool, float64) {}
func (n *noopRecorder) IncEmbedTotal(string, bool)                     {}
func (n *noopRecorder) ObserveEmbedSeconds(string, bool, float64)      {}

var (
	recMu    sync.RWMutex
	recorder Recorder = &noopRecorder{}
)

// Default returns the current recorder.
func Default() Recorder {
	recMu.RLock()
	defer recMu.RUnlock()
	return recorder
}

// SetRecorder swaps the global recorder implementation.
func SetRecorder(r Recorder) {
	recMu.Lock()
	defer recMu.Unlock()
	recorder = r
}

// TimeShapeshift is a helper to time whole shapeshift operations.
func TimeShapeshift(provider string) func(success bool) {
	start := time.Now()
	return func(success bool) {
		dur := time.Since(start).Seconds()
		Default().IncShapeshiftTotal(provider, success)
		Default().ObserveShapeshiftSeconds(provider, success, dur)
	}
}

// TimeEmbed is a helper to time embedding batch requests.
func TimeEmbed(provider string) func(success bool) {
	start := time.Now()
	return func(success bool) {
		dur := time.Since(start).Seconds()
		Default().IncEmbedTotal(provider, success)
		Default().ObserveEmbedSeconds(provider, success, dur)
	}
}

// InitFromEnv enables the Prometheus exporter if METRICS_PROMETHEUS is set.
// It also starts a small HTTP server on METRICS_ADDR (default :9090)
// with endpoints: /metrics (prom) and /healthz (200 ok).
func InitFromEnv() {
	if os.Getenv("METRICS_PROMETHEUS") == "" {
		return
	}
	addr := os.Getenv("METRICS_ADDR")
	if addr == "" {
		addr = ":9090"
	}
	// Try to install prometheus recorder; if it fails, keep noop.
	_ = enablePrometheus(addr)
}

// enablePrometheus is provided by build-tagged files.
