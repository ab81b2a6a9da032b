package ui

import (
	"fmt"
	"time"
)

// formatDuration formats a duration as m:ss for the status bar.
func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
