// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	StoreTimeouts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tounesna",
		Subsystem: "store",
		Name:      "timeouts_total",
		Help:      "The total number of store calls that hit their deadline",
	}, []string{"operation", "collection"})

	FanoutLegs = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tounesna",
		Subsystem: "requests",
		Name:      "legs_total",
		Help:      "The total number of request legs written, by outcome",
	}, []string{"result"})

	LegTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tounesna",
		Subsystem: "requests",
		Name:      "transitions_total",
		Help:      "The total number of request leg status transitions",
	}, []string{"status", "result"})

	AggregateUpdates = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tounesna",
		Subsystem: "aggregates",
		Name:      "updates_total",
		Help:      "The total number of denormalized aggregate updates",
	}, []string{"aggregate", "result"})

	ReconcileDrift = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tounesna",
		Subsystem: "aggregates",
		Name:      "reconcile_drift_total",
		Help:      "The total number of aggregates found out of sync by reconciliation",
	}, []string{"aggregate"})

	NotificationsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tounesna",
		Subsystem: "notifications",
		Name:      "created_total",
		Help:      "The total number of notifications created, by type",
	}, []string{"type"})

	EmailsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tounesna",
		Subsystem: "email",
		Name:      "sent_total",
		Help:      "The total number of emails handed to a provider, by template and outcome",
	}, []string{"provider", "template", "result"})
)

// Result labels an outcome for counters that split on success.
func Result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
