// Package metrics holds the prometheus collectors shared by the store,
// retry and HTTP layers.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	StoreOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "vitatrack",
		Name:      "store_operations_total",
		Help:      "Data access operations by table, operation and outcome code.",
	}, []string{"table", "op", "outcome"})

	RetryAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "vitatrack",
		Name:      "retry_attempts_total",
		Help:      "Retries scheduled after a transient failure.",
	}, []string{"operation"})

	RetryExhausted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "vitatrack",
		Name:      "retry_exhausted_total",
		Help:      "Operations that still failed after the last retry.",
	}, []string{"operation"})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "vitatrack",
		Name:      "http_requests_total",
		Help:      "HTTP requests by route and status.",
	}, []string{"route", "status"})
)

// ObserveStore records one store call; outcome is "ok" or the error code.
func ObserveStore(table, op, outcome string) {
	StoreOperations.WithLabelValues(table, op, outcome).Inc()
}
