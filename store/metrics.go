package store

import "github.com/prometheus/client_golang/prometheus"

const (
	opGet    = "get"
	opPut    = "put"
	opExists = "exists"
	opDelete = "delete"
	opLoad   = "load"
	opUpdate = "update"

	resultHit   = "hit"
	resultMiss  = "miss"
	resultOK    = "ok"
	resultError = "error"
)

var operations = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "hexa",
		Subsystem: "store",
		Name:      "operations_total",
		Help:      "Store operations by store name, operation and result.",
	}, []string{"store", "op", "result"})

// RegisterMetrics registers the store collectors with r.
// Counters are updated whether or not they are registered.
func RegisterMetrics(r prometheus.Registerer) error {
	return r.Register(operations)
}

func observe(store, op, result string) {
	operations.WithLabelValues(store, op, result).Inc()
}
