// Package fiscalyear computes Indian fiscal years (April to March) for the
// report form's year field.
package fiscalyear

import (
	"fmt"
	"time"
)

// startYear is the first fiscal year offered in the options list.
const startYear = 2000

// horizonYears is how far past the current year the options extend.
const horizonYears = 50

// Label formats a fiscal year starting in the given calendar year, e.g.
// Label(2025) == "2025-2026".
func Label(start int) string {
	return fmt.Sprintf("%d-%d", start, start+1)
}

// Current returns the label of the fiscal year containing now. January to
// March belong to the fiscal year that started the previous April.
func Current(now time.Time) string {
	start := now.Year()
	if now.Month() < time.April {
		start--
	}
	return Label(start)
}

// Options returns the selectable fiscal years from startYear through the
// current year plus the horizon, in ascending order.
func Options(now time.Time) []string {
	end := now.Year() + horizonYears
	out := make([]string, 0, end-startYear+1)
	for y := startYear; y <= end; y++ {
		out = append(out, Label(y))
	}
	return out
}
