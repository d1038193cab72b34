package webapp

import (
	"fmt"
	"time"

	"github.com/pavel-webdev/file-organizer/models"
)

func humanizeBytes(s int64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
	)
	switch {
	case s >= GB:
		return fmt.Sprintf("%.2f GB", float64(s)/GB)
	case s >= MB:
		return fmt.Sprintf("%.2f MB", float64(s)/MB)
	case s >= KB:
		return fmt.Sprintf("%.2f KB", float64(s)/KB)
	default:
		return fmt.Sprintf("%d B", s)
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02 15:04")
}

func runDuration(e models.RunEntry) string {
	d := e.FinishedAt.Sub(e.StartedAt)
	if d < 0 {
		return "-"
	}
	return d.Round(time.Second).String()
}
