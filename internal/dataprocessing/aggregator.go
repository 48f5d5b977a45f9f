package dataprocessing

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"rkcli/internal/errors"
	"rkcli/internal/infrastructure"
	"rkcli/pkg/contracts/domain"
)

// RowSource yields data rows positionally aligned with the header row the
// accessor was resolved against. Next returns io.EOF when the stream is
// exhausted. Sources are lazy, finite and single-pass.
type RowSource interface {
	Next() ([]string, error)
}

// Aggregator folds projected activity rows into a running summary. It is a
// single-owner accumulator: exactly one aggregator processes exactly one row
// stream start-to-finish, so no locking is needed. The date window is fixed
// at construction; the aggregator never reads the process clock.
type Aggregator struct {
	start   time.Time
	end     time.Time
	summary domain.ActivitySummary
	logger  *slog.Logger
}

// NewAggregator creates an aggregator for the inclusive window [start, end].
func NewAggregator(start, end time.Time, logger *slog.Logger) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{
		start:  start,
		end:    end,
		logger: logger,
	}
}

// Process drives the row stream to completion, projecting each row through
// the accessor and folding it into the summary. Malformed rows are recorded
// as warnings and skipped; rows outside the window are skipped silently.
// Only an upstream read failure aborts processing.
func (a *Aggregator) Process(ctx context.Context, rows RowSource, accessor Accessor) error {
	for {
		row, err := rows.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.NewStorageError("failed to read export row", err)
		}

		a.fold(accessor.Project(row))
	}

	infrastructure.RecordAggregationRun()
	a.logger.InfoContext(ctx, "aggregation complete",
		slog.Int64("total_activities", a.summary.TotalActivities),
		slog.Int("warnings", len(a.summary.Warnings)))

	return nil
}

// fold applies the per-row algorithm to one projected (date, duration,
// distance) tuple.
func (a *Aggregator) fold(fields []string) {
	parsed := ParseRow(fields)
	if !parsed.OK {
		a.warn(parsed.Warning, fields)
		infrastructure.RecordRowMalformed()
		return
	}

	activity := parsed.Activity

	// Filtering happens after parsing: a row outside the window is excluded
	// from totals, counts and first/last, but is not malformed.
	if activity.Timestamp.Before(a.start) || activity.Timestamp.After(a.end) {
		infrastructure.RecordRowFiltered()
		return
	}

	if activity.Duration == 0 {
		a.warn("duration is zero", fields)
	} else {
		a.summary.TotalDuration += activity.Duration
	}

	if activity.Distance == 0 {
		a.warn("distance is zero", fields)
	} else {
		a.summary.TotalDistance += activity.Distance
	}

	a.summary.TotalActivities++
	if a.summary.FirstActivity == nil || activity.Timestamp.Before(*a.summary.FirstActivity) {
		t := activity.Timestamp
		a.summary.FirstActivity = &t
	}
	if a.summary.LastActivity == nil || activity.Timestamp.After(*a.summary.LastActivity) {
		t := activity.Timestamp
		a.summary.LastActivity = &t
	}

	infrastructure.RecordRowProcessed()
}

// warn records a non-fatal per-row warning with its originating row context.
func (a *Aggregator) warn(what string, fields []string) {
	a.summary.Warnings = append(a.summary.Warnings, fmt.Sprintf("%s (row: %v)", what, fields))
	infrastructure.RecordWarning()
}

// Snapshot returns a copy of the running summary. After Process has
// returned, the snapshot is final.
func (a *Aggregator) Snapshot() domain.ActivitySummary {
	snapshot := a.summary
	if a.summary.FirstActivity != nil {
		t := *a.summary.FirstActivity
		snapshot.FirstActivity = &t
	}
	if a.summary.LastActivity != nil {
		t := *a.summary.LastActivity
		snapshot.LastActivity = &t
	}
	snapshot.Warnings = append([]string(nil), a.summary.Warnings...)
	return snapshot
}
