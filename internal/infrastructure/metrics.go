package infrastructure

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	rowsProcessedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "rkcli",
		Subsystem: "aggregation",
		Name:      "rows_processed_total",
		Help:      "Rows folded into an aggregate after parsing and window filtering.",
	})
	rowsFilteredCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "rkcli",
		Subsystem: "aggregation",
		Name:      "rows_filtered_total",
		Help:      "Rows skipped because their timestamp fell outside the date window.",
	})
	rowsMalformedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "rkcli",
		Subsystem: "aggregation",
		Name:      "rows_malformed_total",
		Help:      "Rows abandoned as malformed and recorded as warnings.",
	})
	warningsCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "rkcli",
		Subsystem: "aggregation",
		Name:      "warnings_total",
		Help:      "Per-row warnings recorded during aggregation.",
	})
	aggregationsCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "rkcli",
		Subsystem: "aggregation",
		Name:      "runs_total",
		Help:      "Completed aggregation runs.",
	})
)

func init() {
	prometheus.MustRegister(
		rowsProcessedCounter,
		rowsFilteredCounter,
		rowsMalformedCounter,
		warningsCounter,
		aggregationsCounter,
	)
}

// RecordRowProcessed counts a row folded into the running aggregate.
func RecordRowProcessed() {
	rowsProcessedCounter.Inc()
}

// RecordRowFiltered counts a row excluded by the date window.
func RecordRowFiltered() {
	rowsFilteredCounter.Inc()
}

// RecordRowMalformed counts a row abandoned as malformed.
func RecordRowMalformed() {
	rowsMalformedCounter.Inc()
}

// RecordWarning counts a per-row warning.
func RecordWarning() {
	warningsCounter.Inc()
}

// RecordAggregationRun counts a completed aggregation.
func RecordAggregationRun() {
	aggregationsCounter.Inc()
}
