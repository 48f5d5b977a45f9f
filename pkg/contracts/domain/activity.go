package domain

import (
	"time"
)

// Activity represents a single parsed row of an activity export.
// It is transient: constructed from raw strings, folded into a running
// summary, then discarded.
type Activity struct {
	Timestamp time.Time `json:"timestamp" validate:"required"`
	Duration  int64     `json:"duration" validate:"min=0"`  // seconds
	Distance  int64     `json:"distance" validate:"min=0"`  // thousandths of a kilometer
}

// ActivitySummary is the aggregate over one processed export, or the merge
// of several. First/Last are nil until at least one activity has been folded.
type ActivitySummary struct {
	FirstActivity   *time.Time `json:"first_activity,omitempty"`
	LastActivity    *time.Time `json:"last_activity,omitempty"`
	TotalActivities int64      `json:"total_activities" validate:"min=0"`
	TotalDuration   int64      `json:"total_duration" validate:"min=0"`  // seconds
	TotalDistance   int64      `json:"total_distance" validate:"min=0"`  // thousandths of a kilometer
	Warnings        []string   `json:"warnings,omitempty"`
}

// AveragePace returns the average pace in seconds per kilometer. The second
// return is false when either total is zero; callers must omit the metric
// entirely in that case rather than report zero.
func (s *ActivitySummary) AveragePace() (float64, bool) {
	if s.TotalDuration <= 0 || s.TotalDistance <= 0 {
		return 0, false
	}
	return float64(s.TotalDuration) / (float64(s.TotalDistance) / 1000), true
}

// AverageSpeed returns the average speed in km/h, with the same omission
// contract as AveragePace.
func (s *ActivitySummary) AverageSpeed() (float64, bool) {
	if s.TotalDuration <= 0 || s.TotalDistance <= 0 {
		return 0, false
	}
	return (float64(s.TotalDistance) / 1000) / (float64(s.TotalDuration) / 3600), true
}

// Merge folds another summary into this one. The operation is associative:
// totals are summed, first/last timestamps take min/max, and warnings are
// concatenated in argument order. Used to combine per-file partial summaries
// produced by independent aggregators.
func (s *ActivitySummary) Merge(other ActivitySummary) {
	s.TotalActivities += other.TotalActivities
	s.TotalDuration += other.TotalDuration
	s.TotalDistance += other.TotalDistance

	if other.FirstActivity != nil {
		if s.FirstActivity == nil || other.FirstActivity.Before(*s.FirstActivity) {
			t := *other.FirstActivity
			s.FirstActivity = &t
		}
	}
	if other.LastActivity != nil {
		if s.LastActivity == nil || other.LastActivity.After(*s.LastActivity) {
			t := *other.LastActivity
			s.LastActivity = &t
		}
	}

	s.Warnings = append(s.Warnings, other.Warnings...)
}
