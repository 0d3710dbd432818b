// Package metrics - Prometheus metrics for BV calculation and validation runs
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// UnitCalculateDuration tracks single-unit BV calculation latency.
	UnitCalculateDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "bv_unit_calculate_seconds",
		Help:    "Duration of a single unit's BV calculation",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 10), // 100us to ~51ms
	})

	// ClassificationTotal counts classified units by bucket.
	ClassificationTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bv_classification_total",
		Help: "Total validated units by classification bucket",
	}, []string{"bucket"})

	// UnsupportedConfigurationTotal counts units halted with an
	// UnsupportedConfiguration error.
	UnsupportedConfigurationTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bv_unsupported_configuration_total",
		Help: "Total units that failed with UnsupportedConfiguration",
	})

	// UnknownEquipmentTotal counts equipment-lookup misses across all
	// calculations.
	UnknownEquipmentTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bv_unknown_equipment_total",
		Help: "Total unknown equipment identifiers encountered",
	})

	// ValidationWorkerPoolSize tracks the worker pool's configured size.
	ValidationWorkerPoolSize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "bv_validation_worker_pool_size",
		Help: "Configured worker count for the current validation run",
	})
)
