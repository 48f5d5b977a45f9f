package exporter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rkcli/pkg/contracts/domain"
)

func TestWriteText_NoActivities(t *testing.T) {
	var buf strings.Builder

	err := WriteText(&buf, domain.ActivitySummary{})

	require.NoError(t, err)
	assert.Equal(t, "no activities\n", buf.String())
}

func TestWriteText_FullReport(t *testing.T) {
	first := time.Date(2020, 1, 1, 10, 0, 0, 0, time.UTC)
	last := time.Date(2020, 3, 1, 10, 0, 0, 0, time.UTC)
	summary := domain.ActivitySummary{
		FirstActivity:   &first,
		LastActivity:    &last,
		TotalActivities: 2,
		TotalDuration:   5400,
		TotalDistance:   15000,
	}

	var buf strings.Builder
	err := WriteText(&buf, summary)

	require.NoError(t, err)
	want := strings.Join([]string{
		"2020-01-01 10:00:00 - 2020-03-01 10:00:00",
		"activities: 2",
		"distance: 15.00 km",
		"duration: 1:30:00",
		"average pace: 6:00 min/km",
		"average speed: 10.00 km/h",
	}, "\n") + "\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteText_OmitsDerivedMetricsWhenUndefined(t *testing.T) {
	first := time.Date(2020, 1, 1, 10, 0, 0, 0, time.UTC)
	summary := domain.ActivitySummary{
		FirstActivity:   &first,
		LastActivity:    &first,
		TotalActivities: 1,
		TotalDuration:   3600,
		TotalDistance:   0,
		Warnings:        []string{"distance is zero (row: [2020-01-01 10:00:00 1:00:00 0])"},
	}

	var buf strings.Builder
	err := WriteText(&buf, summary)

	require.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, "activities: 1")
	assert.NotContains(t, output, "distance:")
	assert.NotContains(t, output, "duration:")
	assert.NotContains(t, output, "pace")
	assert.NotContains(t, output, "speed")
	assert.Contains(t, output, "warning: distance is zero")
}

func TestWriteText_Warnings(t *testing.T) {
	first := time.Date(2020, 1, 1, 10, 0, 0, 0, time.UTC)
	summary := domain.ActivitySummary{
		FirstActivity:   &first,
		LastActivity:    &first,
		TotalActivities: 1,
		TotalDuration:   3600,
		TotalDistance:   10000,
		Warnings:        []string{"first warning", "second warning"},
	}

	var buf strings.Builder
	err := WriteText(&buf, summary)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "warning: first warning\nwarning: second warning\n")
}
