package format

import (
	"fmt"
	"strings"
	"unicode"
)

var kibUnits = []string{"KiB", "MiB", "GiB", "TiB"}

// HumanKiB renders a KiB count in the largest unit where the value stays >= 1,
// stepping by 1024, always with two decimals.
func HumanKiB(kib uint64) string {
	v := float64(kib)
	unit := 0
	for v >= 1024 && unit < len(kibUnits)-1 {
		v /= 1024
		unit++
	}
	return fmt.Sprintf("%.2f %s", v, kibUnits[unit])
}

// FormatUptime formats uptime in a readable format.
func FormatUptime(seconds uint64) string {
	days := seconds / 86400
	hours := (seconds % 86400) / 3600
	mins := (seconds % 3600) / 60
	if days > 0 {
		return fmt.Sprintf("%dd%dh", days, hours)
	}
	return fmt.Sprintf("%dh%dm", hours, mins)
}

// Truncate truncates a string to max length.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "~"
}

// TitleCaseWord capitalizes the first letter of a word (ASCII-safe, rune-aware).
func TitleCaseWord(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	lower := strings.ToLower(s)
	r := []rune(lower)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
