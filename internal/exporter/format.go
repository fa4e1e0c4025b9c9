package exporter

import (
	"fmt"
	"strconv"
)

// formatCount renders a push-up count without spurious decimals: whole
// numbers as integers, anything else with two places.
func formatCount(f float64) string {
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return fmt.Sprintf("%.2f", f)
}
