package util

import (
	"fmt"
	"time"
)

// NowMillis returns the current time in milliseconds since Unix epoch.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}

// MillisToTime converts milliseconds since Unix epoch to time.Time.
func MillisToTime(millis int64) time.Time {
	return time.UnixMilli(millis)
}

// FormatMillis formats milliseconds since epoch as "2006-01-02 15:04".
// Zero renders as "-" since palettes from older files may lack a timestamp.
func FormatMillis(millis int64) string {
	if millis == 0 {
		return "-"
	}
	return MillisToTime(millis).Format("2006-01-02 15:04")
}

// FormatAge describes how long ago millis was relative to now, e.g. "3h ago".
func FormatAge(millis int64, now time.Time) string {
	if millis == 0 {
		return "-"
	}
	d := now.Sub(MillisToTime(millis))
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return FormatMillis(millis)
	}
}
