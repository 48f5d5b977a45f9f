package exporter

import (
	"fmt"
	"io"

	"rkcli/internal/dataprocessing"
	"rkcli/pkg/contracts/domain"
)

// WriteText renders a human-readable activity report. A summary with no
// activities renders the sentinel line "no activities" rather than a frame
// of zeros. Pace and speed are omitted entirely unless both totals are
// strictly positive.
func WriteText(w io.Writer, summary domain.ActivitySummary) error {
	if summary.TotalActivities == 0 {
		_, err := fmt.Fprintln(w, "no activities")
		return err
	}

	lines := []string{
		fmt.Sprintf("%s - %s",
			summary.FirstActivity.Format(dataprocessing.TimestampLayout),
			summary.LastActivity.Format(dataprocessing.TimestampLayout)),
		fmt.Sprintf("activities: %d", summary.TotalActivities),
	}

	if pace, ok := summary.AveragePace(); ok {
		speed, _ := summary.AverageSpeed()
		lines = append(lines,
			fmt.Sprintf("distance: %s", FormatDistance(summary.TotalDistance)),
			fmt.Sprintf("duration: %s", FormatDuration(summary.TotalDuration)),
			fmt.Sprintf("average pace: %s", FormatPace(pace)),
			fmt.Sprintf("average speed: %s", FormatSpeed(speed)),
		)
	}

	for _, warning := range summary.Warnings {
		lines = append(lines, fmt.Sprintf("warning: %s", warning))
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
