package exporter

import (
	"fmt"
)

// FormatDistance renders a distance in thousandths of a kilometer as
// "{km}.{centi:02d} km", e.g. 12345 -> "12.34 km".
func FormatDistance(distance int64) string {
	km := distance / 1000
	centi := (distance % 1000) / 10
	return fmt.Sprintf("%d.%02d km", km, centi)
}

// FormatDuration renders total seconds as "{h}:{mm:02d}:{ss:02d}".
func FormatDuration(seconds int64) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}

// FormatPace renders an average pace in seconds per kilometer as
// "{min}:{sec:02d} min/km", truncated to whole seconds before splitting.
func FormatPace(pace float64) string {
	p := int64(pace)
	return fmt.Sprintf("%d:%02d min/km", p/60, p%60)
}

// FormatSpeed renders an average speed as "{whole}.{centi:02d} km/h",
// with centi taken from the fractional part, not rounded.
func FormatSpeed(speed float64) string {
	whole := int64(speed)
	centi := int64(100 * (speed - float64(whole)))
	return fmt.Sprintf("%d.%02d km/h", whole, centi)
}
