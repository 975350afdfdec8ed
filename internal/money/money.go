package money

import (
	"fmt"
	"math"
)

// ToCents converts a major-unit amount (e.g. 12.34) to integer cents using
// half-away-from-zero rounding, so 0.005 becomes 1 and -0.005 becomes -1.
func ToCents(major float64) int64 {
	return int64(math.Round(major * 100))
}

// Format renders cents as a major-unit amount with two fraction digits.
func Format(cents int64) string {
	return fmt.Sprintf("%.2f", float64(cents)/100)
}

// FormatWhole renders cents as a major-unit amount with no fraction digits,
// rounded. Used by the stats report.
func FormatWhole(cents int64) string {
	return fmt.Sprintf("%.0f", float64(cents)/100)
}
