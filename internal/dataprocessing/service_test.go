package dataprocessing

import (
	"context"
	stderrors "errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rkcli/internal/errors"
)

func writeExport(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestService_Aggregate(t *testing.T) {
	path := writeExport(t, "cardioActivities.csv",
		"Date,Type,Distance (km),Duration\n"+
			"2020-01-01 10:00:00,Running,10.0,1:00:00\n"+
			"2020-01-02 10:00:00,Running,5.0,0:30:00\n")

	service := NewService(nil, slog.Default())
	start, end := wideWindow()

	summary, err := service.Aggregate(context.Background(), path, start, end)

	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.TotalActivities)
	assert.Equal(t, int64(5400), summary.TotalDuration)
	assert.Equal(t, int64(15000), summary.TotalDistance)
	assert.Empty(t, summary.Warnings)
}

func TestService_AggregateWithRename(t *testing.T) {
	path := writeExport(t, "export.csv",
		"Started At,Elapsed,Length\n"+
			"2020-01-01 10:00:00,1:00:00,10.0\n")

	service := NewService(map[string]string{
		"Started At": "date",
		"Elapsed":    "duration",
		"Length":     "distance",
	}, slog.Default())
	start, end := wideWindow()

	summary, err := service.Aggregate(context.Background(), path, start, end)

	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.TotalActivities)
}

func TestService_AggregateRaggedRow(t *testing.T) {
	// The CSV reader allows rows shorter than the header; a short row must
	// surface as a malformed-row warning, not abort (or crash) the run.
	path := writeExport(t, "export.csv",
		"Date,Duration,Distance\n"+
			"2020-01-01 10:00:00,1:00:00\n"+
			"2020-01-02 10:00:00,0:30:00,5.0\n")

	service := NewService(nil, slog.Default())
	start, end := wideWindow()

	summary, err := service.Aggregate(context.Background(), path, start, end)

	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.TotalActivities)
	assert.Equal(t, int64(1800), summary.TotalDuration)
	assert.Equal(t, int64(5000), summary.TotalDistance)
	require.Len(t, summary.Warnings, 1)
	assert.Contains(t, summary.Warnings[0], "row has 2 of 3 fields")
}

func TestService_AggregateUnresolvableHeader(t *testing.T) {
	path := writeExport(t, "export.csv",
		"When,How Long\n"+
			"2020-01-01 10:00:00,1:00:00\n")

	service := NewService(nil, slog.Default())
	start, end := wideWindow()

	_, err := service.Aggregate(context.Background(), path, start, end)

	require.Error(t, err)
	var patternErr *errors.UnresolvedPatternError
	assert.True(t, stderrors.As(err, &patternErr))
}

func TestService_AggregateMissingFile(t *testing.T) {
	service := NewService(nil, slog.Default())
	start, end := wideWindow()

	_, err := service.Aggregate(context.Background(), filepath.Join(t.TempDir(), "missing.csv"), start, end)

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestService_AggregateAll(t *testing.T) {
	january := writeExport(t, "january.csv",
		"Date,Duration,Distance\n"+
			"2020-01-01 10:00:00,1:00:00,10.0\n")
	february := writeExport(t, "february.csv",
		"Date,Duration,Distance\n"+
			"2020-02-01 10:00:00,0:30:00,5.0\n"+
			"2020-02-15 10:00:00,0:00:00,5.0\n")

	service := NewService(nil, slog.Default())
	start, end := wideWindow()

	summary, err := service.AggregateAll(context.Background(), []string{january, february}, start, end)

	require.NoError(t, err)
	assert.Equal(t, int64(3), summary.TotalActivities)
	assert.Equal(t, int64(5400), summary.TotalDuration)
	assert.Equal(t, int64(20000), summary.TotalDistance)
	assert.Equal(t, time.Date(2020, 1, 1, 10, 0, 0, 0, time.UTC), *summary.FirstActivity)
	assert.Equal(t, time.Date(2020, 2, 15, 10, 0, 0, 0, time.UTC), *summary.LastActivity)
	require.Len(t, summary.Warnings, 1)
	assert.Contains(t, summary.Warnings[0], "duration is zero")
}

func TestService_AggregateAllPropagatesFailure(t *testing.T) {
	good := writeExport(t, "good.csv",
		"Date,Duration,Distance\n"+
			"2020-01-01 10:00:00,1:00:00,10.0\n")

	service := NewService(nil, slog.Default())
	start, end := wideWindow()

	_, err := service.AggregateAll(context.Background(), []string{good, filepath.Join(t.TempDir(), "missing.csv")}, start, end)

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestService_AggregateAllEmpty(t *testing.T) {
	service := NewService(nil, slog.Default())
	start, end := wideWindow()

	summary, err := service.AggregateAll(context.Background(), nil, start, end)

	require.NoError(t, err)
	assert.Equal(t, int64(0), summary.TotalActivities)
}
