package dataprocessing

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"rkcli/internal/files"
	"rkcli/pkg/contracts/domain"
)

// Service runs aggregations over activity exports. It carries the optional
// column rename table from configuration; everything else is per-call.
type Service struct {
	rename map[string]string
	logger *slog.Logger
}

// NewService creates an aggregation service. rename may be nil to use
// prefix matching against export headers.
func NewService(rename map[string]string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		rename: rename,
		logger: logger,
	}
}

// Aggregate opens one export (file path or "-" for stdin) and folds it over
// the inclusive window [start, end].
func (s *Service) Aggregate(ctx context.Context, path string, start, end time.Time) (domain.ActivitySummary, error) {
	source, err := files.OpenExport(path)
	if err != nil {
		return domain.ActivitySummary{}, err
	}
	defer source.Close()

	accessor, err := ResolveColumns(source.Header(), ActivityFields, s.rename)
	if err != nil {
		return domain.ActivitySummary{}, err
	}

	aggregator := NewAggregator(start, end, s.logger.With(slog.String("export", path)))
	if err := aggregator.Process(ctx, source, accessor); err != nil {
		return domain.ActivitySummary{}, err
	}

	return aggregator.Snapshot(), nil
}

// AggregateAll aggregates several exports concurrently, one aggregator per
// file, and merges the partial summaries in path order. Each aggregator owns
// its snapshot exclusively; only the final merge combines them, so no state
// is shared between goroutines.
func (s *Service) AggregateAll(ctx context.Context, paths []string, start, end time.Time) (domain.ActivitySummary, error) {
	partials := make([]domain.ActivitySummary, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			summary, err := s.Aggregate(ctx, path, start, end)
			if err != nil {
				return err
			}
			partials[i] = summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.ActivitySummary{}, err
	}

	var merged domain.ActivitySummary
	for _, partial := range partials {
		merged.Merge(partial)
	}
	return merged, nil
}
