package radial

import (
	"fmt"
	"math"
)

// FormatTime renders a value taken as a count of seconds as "HH:MM". Seconds
// are truncated; hours are not wrapped, so 86400 is "24:00". Negative values
// get a leading minus sign and NaN formats as "00:00".
func FormatTime(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return "00:00"
	}
	sign := ""
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	minutes := int64(math.Floor(seconds / 60))
	hours := minutes / 60
	minutes %= 60
	return fmt.Sprintf("%s%02d:%02d", sign, hours, minutes)
}

// FormatPercent renders value's position in [lo, hi] as a whole percentage,
// clamped to 0%..100%.
func FormatPercent(value, lo, hi float64) string {
	if !(hi > lo) || math.IsNaN(value) {
		return "0%"
	}
	p := (value - lo) / (hi - lo) * 100
	p = math.Max(0, math.Min(100, p))
	return fmt.Sprintf("%d%%", int(math.Round(p)))
}
