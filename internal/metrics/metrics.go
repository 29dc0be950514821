package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// ToolCalls counts MCP tool invocations by tool name and outcome.
	ToolCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "league_tool_calls_total",
		Help: "Tool invocations by tool name and outcome (ok/error).",
	}, []string{"tool", "outcome"})

	// ValuationRefreshes counts successful table fetches from the pricing source.
	ValuationRefreshes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "league_valuation_refreshes_total",
		Help: "Successful valuation table refreshes from the pricing source.",
	})

	// ValuationCacheHits counts table reads served inside the freshness window.
	ValuationCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "league_valuation_cache_hits_total",
		Help: "Valuation table reads served from the in-memory cache.",
	})

	// ValuationStaleServes counts reads served from a stale table after a
	// failed refresh.
	ValuationStaleServes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "league_valuation_stale_serves_total",
		Help: "Valuation table reads served stale after a failed refresh.",
	})

	// RequestDuration observes HTTP request latency on the public server.
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "league_http_request_duration_seconds",
		Help:    "HTTP request latency by path and status code.",
		Buckets: prometheus.DefBuckets,
	}, []string{"path", "status"})
)

// HealthFunc reports dependency health for /healthz. A nil HealthFunc means
// always healthy.
type HealthFunc func(ctx context.Context) error

// StartServer runs a small HTTP server exposing /metrics and /healthz on its
// own port, in a goroutine. The caller closes the returned server on exit.
func StartServer(addr string, healthFn HealthFunc) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if healthFn != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
			defer cancel()
			if err := healthFn(ctx); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				fmt.Fprintf(w, "unhealthy: %v", err)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		_ = srv.ListenAndServe()
	}()
	return srv
}
