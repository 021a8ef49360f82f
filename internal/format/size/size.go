// Package size renders byte counts for display.
package size

import "fmt"

var units = []string{"B", "KB", "MB", "GB"}

// Format scales bytes by 1024 until the value drops below 1024 or the largest
// unit is reached, and prints one decimal place. Negative input is treated as
// zero.
func Format(bytes int64) string {
	if bytes < 0 {
		bytes = 0
	}
	value := float64(bytes)
	i := 0
	for value >= 1024 && i < len(units)-1 {
		value /= 1024
		i++
	}
	return fmt.Sprintf("%.1f %s", value, units[i])
}
