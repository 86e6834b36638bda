package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Ledger metrics.
var (
	TransactionsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gowallet_transactions_created_total",
			Help: "Total number of transactions admitted to the ledger",
		},
		[]string{"direction"},
	)

	TransactionsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gowallet_transactions_rejected_total",
			Help: "Total number of rejected transactions by reason",
		},
		[]string{"reason"},
	)

	BalanceComputeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gowallet_balance_compute_duration_seconds",
		Help:    "Duration of balance derivations over the transaction set",
		Buckets: prometheus.DefBuckets,
	})

	AccountsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gowallet_accounts_created_total",
		Help: "Total number of accounts created",
	})
)

// Exchange rate metrics.
var (
	RateFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gowallet_rate_fetches_total",
			Help: "Upstream exchange rate fetches by result",
		},
		[]string{"result"},
	)

	RateCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gowallet_rate_cache_hits_total",
		Help: "Rate lookups served from the in-memory table cache",
	})

	RateCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gowallet_rate_cache_misses_total",
		Help: "Rate lookups that required an upstream refresh",
	})
)
