package exporter

import (
	"encoding/csv"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rkcli/pkg/contracts/domain"
)

func sampleSummary() domain.ActivitySummary {
	first := time.Date(2020, 1, 1, 10, 0, 0, 0, time.UTC)
	last := time.Date(2020, 3, 1, 10, 0, 0, 0, time.UTC)
	return domain.ActivitySummary{
		FirstActivity:   &first,
		LastActivity:    &last,
		TotalActivities: 2,
		TotalDuration:   5400,
		TotalDistance:   15000,
		Warnings:        []string{"duration is zero (row: [2020-01-05 10:00:00 0:00:00 5.0])"},
	}
}

func TestSummaryDocument(t *testing.T) {
	doc := SummaryDocument(sampleSummary())

	require.NotNil(t, doc.AveragePace)
	require.NotNil(t, doc.AverageSpeed)
	assert.InDelta(t, 360, *doc.AveragePace, 0.0001)
	assert.InDelta(t, 10, *doc.AverageSpeed, 0.0001)
}

func TestSummaryDocument_OmitsUndefinedMetrics(t *testing.T) {
	doc := SummaryDocument(domain.ActivitySummary{TotalActivities: 1, TotalDuration: 3600})

	assert.Nil(t, doc.AveragePace)
	assert.Nil(t, doc.AverageSpeed)

	data, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "average_pace_seconds_per_km")
	assert.NotContains(t, string(data), "average_speed_km_per_hour")
}

func TestSummaryWriter_WriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "summary.csv")
	writer := NewSummaryWriter(slog.Default())

	require.NoError(t, writer.WriteCSV(path, sampleSummary()))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // warning rows are shorter than the record row
	records, err := reader.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"FirstActivity", "LastActivity", "TotalActivities", "TotalDuration", "TotalDistance", "Warnings"}, records[0])
	assert.Equal(t, []string{"2020-01-01 10:00:00", "2020-03-01 10:00:00", "2", "5400", "15000", "1"}, records[1])
	assert.Equal(t, "warning_1", records[2][0])
}

func TestSummaryWriter_WriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "summary.json")
	writer := NewSummaryWriter(slog.Default())

	require.NoError(t, writer.WriteJSON(path, sampleSummary()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &payload))

	assert.Equal(t, "activity_summary_v1", payload["format"])
	assert.NotEmpty(t, payload["generated_at"])

	summary, ok := payload["summary"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(2), summary["total_activities"])
	assert.Equal(t, float64(360), summary["average_pace_seconds_per_km"])
}

func TestSummaryWriter_WriteCSVEmptySummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.csv")
	writer := NewSummaryWriter(slog.Default())

	require.NoError(t, writer.WriteCSV(path, domain.ActivitySummary{}))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"", "", "0", "0", "0", "0"}, records[1])
}
