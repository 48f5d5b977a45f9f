package http

import (
	"context"
	"time"

	"rkcli/pkg/contracts/domain"
)

// StatsService is the aggregation surface the stats handler depends on.
type StatsService interface {
	Aggregate(ctx context.Context, path string, start, end time.Time) (domain.ActivitySummary, error)
}
