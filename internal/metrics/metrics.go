// Package metrics holds the Prometheus collectors for the directory
// service. Malformed stored records are dropped rather than surfaced as
// errors, so the counter here is the only external signal that the store
// contains bad data.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// MalformedRecords counts stored values dropped during parsing or
	// required-field validation.
	MalformedRecords = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "devfest",
		Name:      "malformed_records_total",
		Help:      "Stored values dropped for failing parse or validation",
	})

	// StoreFailures counts store-level failures by operation.
	StoreFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "devfest",
		Name:      "store_failures_total",
		Help:      "Backing store failures by operation",
	}, []string{"op"})
)

func init() {
	prometheus.MustRegister(MalformedRecords, StoreFailures)
}
