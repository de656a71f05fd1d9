package countdown

import "fmt"

// FormatTime renders seconds as MM:SS.
// Whole hours are split off and not shown, so 3725 renders as "02:05".
func FormatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	minutes := (seconds - hours*3600) / 60
	secs := seconds % 60
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}
