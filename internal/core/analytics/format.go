package analytics

import (
	"fmt"
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
)

// FormatCount renders an integer with comma thousands separators: 145234 -> "145,234"
func FormatCount(n int64) string {
	return humanize.Comma(n)
}

// maxDecimals caps fixed-point precision
const maxDecimals = 10

// FormatDuration renders seconds as "{m}m {ss}s": 522 -> "8m 42s", 0 -> "0m 00s"
func FormatDuration(seconds int64) string {
	sign := ""
	mins, secs := seconds/60, seconds%60
	if seconds < 0 {
		// negate the parts, -MinInt64 overflows
		sign = "-"
		mins, secs = -mins, -secs
	}
	return fmt.Sprintf("%s%dm %02ds", sign, mins, secs)
}

func clampDecimals(decimals int) int {
	if decimals < 0 {
		return 0
	}
	if decimals > maxDecimals {
		return maxDecimals
	}
	return decimals
}

// FormatPercent renders a percentage with one decimal: 64.3 -> "64.3%"
func FormatPercent(p float64) string {
	return FormatPercentN(p, 1)
}

// FormatPercentN renders a percentage with a fixed number of decimals
func FormatPercentN(p float64, decimals int) string {
	if !isFinite(p) {
		return NotAvailable
	}
	decimals = clampDecimals(decimals)
	return strconv.FormatFloat(roundTo(p, decimals), 'f', decimals, 64) + "%"
}

// FormatSignedPercent always shows the sign of a change: "+12.3%", "-2.1%", "+0.0%"
func FormatSignedPercent(p float64) string {
	if !isFinite(p) {
		return NotAvailable
	}
	if roundTo(p, 1) >= 0 {
		return "+" + FormatPercent(p)
	}
	return FormatPercent(p)
}

var compactUnits = []struct {
	scale  float64
	suffix string
}{{1e9, "B"}, {1e6, "M"}, {1e3, "K"}}

// FormatCompact abbreviates large numbers: 1200000 -> "1.2M", 47234 -> "47.2K"
func FormatCompact(v float64) string {
	if !isFinite(v) {
		return NotAvailable
	}

	abs := math.Abs(v)
	for i, u := range compactUnits {
		if abs < u.scale {
			continue
		}
		scaled := roundTo(v/u.scale, 1)
		if i > 0 && math.Abs(scaled) >= 1000 {
			// rounding carried into the next unit: 999950 -> "1.0M"
			u = compactUnits[i-1]
			scaled = roundTo(v/u.scale, 1)
		}
		return strconv.FormatFloat(scaled, 'f', 1, 64) + u.suffix
	}
	if math.Abs(roundTo(v, 0)) >= 1000 {
		return strconv.FormatFloat(roundTo(v/1e3, 1), 'f', 1, 64) + "K"
	}
	return strconv.FormatFloat(roundTo(v, 0), 'f', 0, 64)
}

// FormatAxisThousands renders chart axis ticks in thousands: 47000 -> "47k"
func FormatAxisThousands(v float64) string {
	return strconv.FormatFloat(roundTo(v/1000, 0), 'f', 0, 64) + "k"
}

// FormatDecimal renders a plain number with fixed decimals
func FormatDecimal(v float64, decimals int) string {
	if !isFinite(v) {
		return NotAvailable
	}
	decimals = clampDecimals(decimals)
	return strconv.FormatFloat(roundTo(v, decimals), 'f', decimals, 64)
}

// FormatPValue renders a p-value with four decimals
func FormatPValue(p float64) string {
	return FormatDecimal(p, 4)
}

// FormatValue renders a metric value according to its kind
func FormatValue(v float64, kind ValueKind) string {
	if !isFinite(v) {
		return NotAvailable
	}

	switch kind {
	case KindCount:
		return FormatCount(int64(math.Round(v)))
	case KindCompact:
		return FormatCompact(v)
	case KindDuration:
		return FormatDuration(int64(math.Round(v)))
	case KindPercent:
		return FormatPercent(v)
	default:
		return FormatDecimal(v, 1)
	}
}
