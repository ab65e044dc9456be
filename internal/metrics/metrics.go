// Package metrics holds the Prometheus instrumentation for the batch driver.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Set bundles the driver's counters. Construct one per process and share it
// across workers; counters are safe for concurrent use.
type Set struct {
	FilesProcessed prometheus.Counter
	FilesFailed    prometheus.Counter
	TasksComputed  prometheus.Counter
}

func New(reg prometheus.Registerer) *Set {
	factory := promauto.With(reg)
	return &Set{
		FilesProcessed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "eccalc",
			Name:      "files_processed_total",
			Help:      "Input files processed to completion.",
		}),
		FilesFailed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "eccalc",
			Name:      "files_failed_total",
			Help:      "Input files aborted by a parse or computation error.",
		}),
		TasksComputed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "eccalc",
			Name:      "tasks_computed_total",
			Help:      "Point operations evaluated across all files.",
		}),
	}
}
