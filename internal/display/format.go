package display

import (
	"fmt"
	"strconv"
)

// FormatNumber renders a count compactly: 950 stays "950", 1234 becomes
// "1.2K", 3400000 becomes "3.4M".
func FormatNumber(n int64) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return strconv.FormatInt(n, 10)
	}
}

// FormatCredits renders a credit amount with a thousands separator,
// e.g. 1000 becomes "1,000".
func FormatCredits(n int) string {
	s := strconv.Itoa(n)
	if n < 0 {
		return s
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return string(out)
}

// Truncate shortens s to at most n runes, appending an ellipsis when
// anything was cut.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

// FormatDuration renders a video length in seconds as "34s" or "1m 12s".
func FormatDuration(seconds int) string {
	if seconds < 60 {
		return strconv.Itoa(seconds) + "s"
	}
	return fmt.Sprintf("%dm %ds", seconds/60, seconds%60)
}
