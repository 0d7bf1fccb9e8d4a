// Copyright (c) 2025 Darren Soothill
// Licensed under the MIT License

// Package metrics provides Prometheus metrics for the smart-house registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Lookup results recorded by DeviceInfoLookups.
const (
	ResultHit  = "hit"
	ResultMiss = "miss"
)

var (
	// ReportsGenerated tracks the total number of house reports produced
	ReportsGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "smarthouse_reports_generated_total",
		Help: "Total number of house reports generated",
	})

	// ReportDuration tracks how long report generation takes
	ReportDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "smarthouse_report_duration_seconds",
		Help:    "Duration of house report generation in seconds",
		Buckets: prometheus.DefBuckets,
	})

	// RoomsAdded tracks rooms successfully attached to a house
	RoomsAdded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "smarthouse_rooms_added_total",
		Help: "Total number of rooms added to houses",
	})

	// RoomsRejected tracks rooms rejected because their name was already taken
	RoomsRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "smarthouse_rooms_rejected_total",
		Help: "Total number of rooms rejected as duplicates",
	})

	// DeviceInfoLookups tracks provider lookups by strategy and result
	DeviceInfoLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "smarthouse_device_info_lookups_total",
		Help: "Total number of device info lookups by provider strategy and result",
	}, []string{"provider", "result"})
)

// ObserveLookup records a single provider lookup.
func ObserveLookup(provider string, found bool) {
	result := ResultMiss
	if found {
		result = ResultHit
	}
	DeviceInfoLookups.WithLabelValues(provider, result).Inc()
}
