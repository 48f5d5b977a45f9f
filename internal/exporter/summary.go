package exporter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"rkcli/internal/dataprocessing"
	"rkcli/internal/errors"
	"rkcli/pkg/contracts/domain"
)

// SummaryWriter exports aggregate summaries to CSV and JSON files.
type SummaryWriter struct {
	logger *slog.Logger
}

// NewSummaryWriter creates a summary writer
func NewSummaryWriter(logger *slog.Logger) *SummaryWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SummaryWriter{logger: logger}
}

// WriteCSV writes the summary as a single-record CSV file. Warnings are
// written as additional rows after the record so nothing is lost to the
// flat format.
func (w *SummaryWriter) WriteCSV(path string, summary domain.ActivitySummary) error {
	w.logger.Info("writing summary CSV",
		slog.String("path", path),
		slog.Int64("total_activities", summary.TotalActivities))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewStorageError("failed to create directory for CSV output", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.NewStorageError("failed to create summary CSV file", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"FirstActivity", "LastActivity", "TotalActivities", "TotalDuration", "TotalDistance", "Warnings"}
	if err := writer.Write(header); err != nil {
		return errors.NewStorageError("failed to write CSV header row", err)
	}

	record := []string{
		formatTimestamp(summary.FirstActivity),
		formatTimestamp(summary.LastActivity),
		strconv.FormatInt(summary.TotalActivities, 10),
		strconv.FormatInt(summary.TotalDuration, 10),
		strconv.FormatInt(summary.TotalDistance, 10),
		strconv.Itoa(len(summary.Warnings)),
	}
	if err := writer.Write(record); err != nil {
		return errors.NewStorageError("failed to write CSV data row", err)
	}

	for i, warning := range summary.Warnings {
		if err := writer.Write([]string{fmt.Sprintf("warning_%d", i+1), warning}); err != nil {
			return errors.NewStorageError("failed to write CSV warning row", err)
		}
	}

	return writer.Error()
}

// WriteJSON writes the summary as JSON with generation metadata. Derived
// pace and speed are included only when defined.
func (w *SummaryWriter) WriteJSON(path string, summary domain.ActivitySummary) error {
	w.logger.Info("writing summary JSON",
		slog.String("path", path),
		slog.Int64("total_activities", summary.TotalActivities))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewStorageError("failed to create directory for JSON output", err)
	}

	jsonData := map[string]interface{}{
		"summary":      SummaryDocument(summary),
		"generated_at": time.Now().Format(time.RFC3339),
		"format":       "activity_summary_v1",
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.NewStorageError("failed to create summary JSON file", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(jsonData); err != nil {
		return errors.NewStorageError("failed to encode summary to JSON", err)
	}

	return nil
}

// Document is the serializable form of a summary plus its derived metrics.
// AveragePace and AverageSpeed are pointers so an undefined metric is absent
// from the JSON, never zero.
type Document struct {
	domain.ActivitySummary
	AveragePace  *float64 `json:"average_pace_seconds_per_km,omitempty"`
	AverageSpeed *float64 `json:"average_speed_km_per_hour,omitempty"`
}

// SummaryDocument builds the serializable document for a summary.
func SummaryDocument(summary domain.ActivitySummary) Document {
	doc := Document{ActivitySummary: summary}
	if pace, ok := summary.AveragePace(); ok {
		doc.AveragePace = &pace
	}
	if speed, ok := summary.AverageSpeed(); ok {
		doc.AverageSpeed = &speed
	}
	return doc
}

func formatTimestamp(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dataprocessing.TimestampLayout)
}
