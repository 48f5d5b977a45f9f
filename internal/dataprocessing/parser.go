package dataprocessing

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"rkcli/pkg/contracts/domain"
)

// TimestampLayout is the exact timestamp format of export data rows.
// There is deliberately no fallback in this fast path; anything else is a
// malformed row.
const TimestampLayout = "2006-01-02 15:04:05"

// dateSpecLayouts are the formats accepted for user-supplied window bounds,
// most specific first.
var dateSpecLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006-01",
	"2006",
}

// ParsedRow is the typed outcome of parsing one projected row. Malformed
// rows are an expected, frequent condition, so they travel as a value the
// fold loop inspects instead of an error.
type ParsedRow struct {
	Activity domain.Activity
	OK       bool
	Warning  string // set when OK is false
}

// ParseRow converts a projected (date, duration, distance) tuple into an
// Activity. A row with fewer than three fields, or whose date, duration or
// distance does not parse, is malformed: OK is false, Warning describes the
// row, and the activity carries no values.
func ParseRow(fields []string) ParsedRow {
	if len(fields) < len(ActivityFields) {
		return ParsedRow{Warning: fmt.Sprintf("row has %d of %d fields", len(fields), len(ActivityFields))}
	}

	timestamp, err := ParseTimestamp(fields[0])
	if err != nil {
		return ParsedRow{Warning: fmt.Sprintf("date %s looks funny", fields[0])}
	}

	duration, err := ParseDuration(fields[1])
	if err != nil {
		return ParsedRow{Warning: fmt.Sprintf("duration %s looks funny", fields[1])}
	}

	distance, err := ParseDistance(fields[2])
	if err != nil {
		return ParsedRow{Warning: fmt.Sprintf("distance %s looks funny", fields[2])}
	}

	return ParsedRow{
		Activity: domain.Activity{
			Timestamp: timestamp,
			Duration:  duration,
			Distance:  distance,
		},
		OK: true,
	}
}

// ParseTimestamp parses an export row timestamp. Timestamps are naive; they
// are interpreted as UTC so runs are reproducible across machines.
func ParseTimestamp(s string) (time.Time, error) {
	return time.ParseInLocation(TimestampLayout, s, time.UTC)
}

// ParseDuration converts an H:M:S string to total seconds. Shorter forms are
// left-padded with zeros, so "5:30" means 0:05:30 and "45" means 45 seconds.
// Components before the last three are discarded silently. Negative
// components are rejected.
func ParseDuration(s string) (int64, error) {
	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		parts = parts[len(parts)-3:]
	}
	for len(parts) < 3 {
		parts = append([]string{"0"}, parts...)
	}

	var total int64
	for _, part := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid duration component %q", part)
		}
		if n < 0 {
			return 0, fmt.Errorf("negative duration component %q", part)
		}
		total = total*60 + n
	}
	return total, nil
}

// ParseDistance converts a fractional-kilometer string to an integer count
// of thousandths of a kilometer. The conversion truncates toward zero, never
// rounds to nearest, so 1.2345 km is 1234; consistent truncation avoids
// half-unit drift across large imports.
func ParseDistance(s string) (int64, error) {
	km, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid distance %q", s)
	}
	if km < 0 {
		return 0, fmt.Errorf("negative distance %q", s)
	}
	return int64(km * 1000), nil
}

// ParseDateSpec parses a user-supplied window bound. The first layout that
// parses wins, so "2020", "2020-06" and "2020-06-15" are all valid and mean
// the start of the named period, in UTC.
func ParseDateSpec(s string) (time.Time, error) {
	for _, layout := range dateSpecLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format: %s", s)
}
