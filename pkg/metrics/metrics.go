package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Transaction metrics
	TransactionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "axiom_transactions_total",
			Help: "Total number of processed transactions by status",
		},
		[]string{"status"},
	)

	TransactionFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "axiom_transaction_failures_total",
			Help: "Total number of failed transactions by pipeline stage",
		},
		[]string{"stage"},
	)

	FeesCharged = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "axiom_fees_charged_total",
			Help: "Total fees charged across successful transactions",
		},
	)

	// Block metrics
	BlocksExecuted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "axiom_blocks_executed_total",
			Help: "Total number of executed blocks",
		},
	)

	BlockExecutionDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "axiom_block_execution_duration_seconds",
			Help:    "Time taken to execute a block in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	BlockTransactions = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "axiom_block_transactions",
			Help:    "Number of transactions per executed block",
			Buckets: []float64{1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
	)

	ChainHeight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "axiom_chain_slot",
			Help: "Slot of the most recently executed block",
		},
	)

	// State metrics
	StateObjectsTotal = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "axiom_state_objects_total",
			Help: "Total number of objects in the state store",
		},
	)

	// Archive metrics
	ArchiveWriteDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "axiom_archive_write_duration_seconds",
			Help:    "Time taken to archive an executed block in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)

func init() {
	prometheus.MustRegister(TransactionsTotal)
	prometheus.MustRegister(TransactionFailures)
	prometheus.MustRegister(FeesCharged)
	prometheus.MustRegister(BlocksExecuted)
	prometheus.MustRegister(BlockExecutionDuration)
	prometheus.MustRegister(BlockTransactions)
	prometheus.MustRegister(ChainHeight)
	prometheus.MustRegister(StateObjectsTotal)
	prometheus.MustRegister(ArchiveWriteDuration)
}

// Handler returns the Prometheus HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// Timer is a helper for timing operations
type Timer struct {
	start time.Time
}

// NewTimer creates a new timer
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// ObserveDuration records the duration to a histogram
func (t *Timer) ObserveDuration(histogram prometheus.Histogram) {
	duration := time.Since(t.start).Seconds()
	histogram.Observe(duration)
}

// Duration returns the elapsed time since timer started
func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}
