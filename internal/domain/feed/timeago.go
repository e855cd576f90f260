package feed

import (
	"fmt"
	"time"
)

// RelativeTime renders a timestamp the way the feed displays it: "Just now"
// under a minute, then minute, hour and day granularity.
func RelativeTime(ts, now time.Time) string {
	minutes := int(now.Sub(ts).Minutes())
	if minutes < 1 {
		return "Just now"
	}
	if minutes < 60 {
		return fmt.Sprintf("%dm ago", minutes)
	}
	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("%dh ago", hours)
	}
	return fmt.Sprintf("%dd ago", hours/24)
}
