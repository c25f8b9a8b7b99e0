package ranking

import (
	"fmt"
	"math"
	"time"
)

// relativeLabel renders short "time ago" labels for recently edited notes.
func relativeLabel(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "Just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d/time.Minute))
	case d < day:
		return fmt.Sprintf("%dh ago", int(d/time.Hour))
	default:
		return "Yesterday"
	}
}

// elapsedLabel renders the long form used for the "last active" string.
func elapsedLabel(d time.Duration) string {
	switch {
	case d >= day:
		return plural(int(d/day), "day") + " ago"
	case d >= time.Hour:
		return plural(int(d/time.Hour), "hour") + " ago"
	default:
		return fmt.Sprintf("%d minutes ago", int(d/time.Minute))
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

func daysOverdue(due, now time.Time) int {
	return int(math.Ceil(now.Sub(due).Hours() / 24))
}

func progressLabel(completed, total int) string {
	return fmt.Sprintf("%d/%d done", completed, total)
}

func percent(ratio float64) float64 {
	return math.Round(ratio*1000) / 10
}
