package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Pipeline metrics
var (
	QueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "audiothek_queries_total",
			Help: "Total number of catalog queries by operation and status.",
		},
		[]string{"operation", "status"},
	)

	ProgramsProcessedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "audiothek_programs_processed_total",
			Help: "Total number of program sets attempted.",
		},
	)

	FeedsWrittenTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "audiothek_feeds_written_total",
			Help: "Total number of feed files written.",
		},
	)

	ProgramsSkippedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "audiothek_programs_skipped_total",
			Help: "Total number of program sets skipped, by reason.",
		},
		[]string{"reason"},
	)
)

// Skip reasons used as label values.
const (
	ReasonEmpty      = "empty"
	ReasonQueryError = "query_error"
	ReasonBadID      = "bad_id"
	ReasonWriteError = "write_error"
)

func init() {
	prometheus.MustRegister(
		QueriesTotal,
		ProgramsProcessedTotal,
		FeedsWrittenTotal,
		ProgramsSkippedTotal,
	)
}
