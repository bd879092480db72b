package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "medicare_http_requests_total",
			Help: "Total number of handled HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "medicare_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// AdmissionsTotal counts booking requests by outcome
	// (admitted, duplicate, slot_taken, invalid, error).
	AdmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "medicare_admissions_total",
			Help: "Booking admission attempts by outcome",
		},
		[]string{"outcome"},
	)

	// ReconciliationsTotal counts payment reconciliations by outcome
	// (paid, missing, error).
	ReconciliationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "medicare_reconciliations_total",
			Help: "Payment reconciliations by outcome",
		},
		[]string{"outcome"},
	)

	AvailabilityCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "medicare_availability_cache_total",
			Help: "Availability cache lookups by result",
		},
		[]string{"result"},
	)
)
