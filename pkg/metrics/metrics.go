package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ItemsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "itemservice", Name: "items_created_total", Help: "Number of items created."},
	)
	ItemLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "itemservice", Name: "item_lookups_total", Help: "Number of item lookups by result (hit, miss)."},
		[]string{"result"},
	)
	CacheRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "itemservice", Name: "cache_requests_total", Help: "Number of cache reads by outcome (hit, miss, error)."},
		[]string{"outcome"},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "itemservice", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "itemservice", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(ItemsCreated)
	reg.MustRegister(ItemLookups)
	reg.MustRegister(CacheRequests)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
}
