package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Wallet metrics
	Mutations          *prometheus.CounterVec
	ValidationFailures *prometheus.CounterVec
	RemainingBalance   prometheus.Gauge

	// Storage metrics
	CorruptValues *prometheus.CounterVec
	StoreWrites   *prometheus.CounterVec
	StoreDuration prometheus.Histogram

	// Capture metrics
	Captures *prometheus.CounterVec
}

// New creates all metrics and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Mutations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pocketbuddy_wallet_mutations_total",
				Help: "Total number of wallet mutations by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
		ValidationFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pocketbuddy_validation_failures_total",
				Help: "Total number of rejected inputs by field",
			},
			[]string{"field"},
		),
		RemainingBalance: factory.NewGauge(prometheus.GaugeOpts{
			Name: "pocketbuddy_remaining_balance",
			Help: "Spendable balance left after savings lock and spending",
		}),
		CorruptValues: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pocketbuddy_store_corrupt_values_total",
				Help: "Total number of stored values replaced by defaults because they could not be decoded",
			},
			[]string{"key"},
		),
		StoreWrites: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pocketbuddy_store_writes_total",
				Help: "Total number of state writes by outcome",
			},
			[]string{"outcome"},
		),
		StoreDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "pocketbuddy_store_write_duration_seconds",
			Help:    "Duration of state writes",
			Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}),
		Captures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pocketbuddy_captures_total",
				Help: "Total number of voice amount captures by outcome",
			},
			[]string{"outcome"},
		),
	}
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// ObserveMutation counts a wallet mutation.
func (m *Metrics) ObserveMutation(operation string, err error) {
	m.Mutations.WithLabelValues(operation, outcome(err)).Inc()
}

// ObserveValidationFailure counts a rejected input.
func (m *Metrics) ObserveValidationFailure(field string) {
	m.ValidationFailures.WithLabelValues(field).Inc()
}

// ObserveRemaining sets the remaining balance gauge.
func (m *Metrics) ObserveRemaining(remaining decimal.Decimal) {
	v, _ := remaining.Float64()
	m.RemainingBalance.Set(v)
}

// ObserveCapture counts a finished or rejected capture.
func (m *Metrics) ObserveCapture(outcome string) {
	m.Captures.WithLabelValues(outcome).Inc()
}

// ObserveCorruptValue counts a stored value that fell back to its default.
func (m *Metrics) ObserveCorruptValue(key string) {
	m.CorruptValues.WithLabelValues(key).Inc()
}

// ObserveStoreWrite records one state write.
func (m *Metrics) ObserveStoreWrite(duration time.Duration, err error) {
	m.StoreWrites.WithLabelValues(outcome(err)).Inc()
	m.StoreDuration.Observe(duration.Seconds())
}
