package analytics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "145,234", FormatCount(145234))
	assert.Equal(t, "0", FormatCount(0))
	assert.Equal(t, "999", FormatCount(999))
	assert.Equal(t, "1,000", FormatCount(1000))
	assert.Equal(t, "-1,234", FormatCount(-1234))
	assert.Equal(t, "1,200,000", FormatCount(1200000))
}

func TestFormatDuration(t *testing.T) {
	tests := map[int64]string{
		522: "8m 42s",
		0:   "0m 00s",
		59:  "0m 59s",
		60:  "1m 00s",
		605: "10m 05s",
		-75: "-1m 15s",

		math.MinInt64: "-153722867280912930m 08s",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatDuration(in), "seconds=%d", in)
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "64.3%", FormatPercent(64.3))
	assert.Equal(t, "-2.1%", FormatPercent(-2.1))
	assert.Equal(t, "100.0%", FormatPercent(100))
	assert.Equal(t, "17.5%", FormatPercent(17.4757))
	assert.Equal(t, "0.0%", FormatPercent(-0.04))
	assert.Equal(t, NotAvailable, FormatPercent(math.NaN()))
}

func TestFormatPercentN(t *testing.T) {
	assert.Equal(t, "64%", FormatPercentN(64.3, 0))
	assert.Equal(t, "64.30%", FormatPercentN(64.3, 2))
	assert.Equal(t, "64%", FormatPercentN(64.3, -1))
	assert.Equal(t, "64.3000000000%", FormatPercentN(64.3, 400))
}

func TestFormatSignedPercent(t *testing.T) {
	assert.Equal(t, "+12.3%", FormatSignedPercent(12.3))
	assert.Equal(t, "-2.1%", FormatSignedPercent(-2.1))
	assert.Equal(t, "+0.0%", FormatSignedPercent(-0.01))
	assert.Equal(t, NotAvailable, FormatSignedPercent(math.Inf(-1)))
}

func TestFormatCompact(t *testing.T) {
	assert.Equal(t, "1.2M", FormatCompact(1200000))
	assert.Equal(t, "47.2K", FormatCompact(47234))
	assert.Equal(t, "2.5B", FormatCompact(2.5e9))
	assert.Equal(t, "842", FormatCompact(842))
	assert.Equal(t, "-3.4K", FormatCompact(-3400))

	// rounding that reaches the next unit moves up a suffix
	assert.Equal(t, "1.0M", FormatCompact(999950))
	assert.Equal(t, "999.9K", FormatCompact(999949))
	assert.Equal(t, "-1.0M", FormatCompact(-999950))
	assert.Equal(t, "1.0K", FormatCompact(999.5))
}

func TestFormatAxisThousands(t *testing.T) {
	assert.Equal(t, "47k", FormatAxisThousands(47000))
	assert.Equal(t, "0k", FormatAxisThousands(0))
	assert.Equal(t, "0k", FormatAxisThousands(-400))
	assert.Equal(t, "-2k", FormatAxisThousands(-1500))
}

func TestFormatDecimalAndPValue(t *testing.T) {
	assert.Equal(t, "3.2", FormatDecimal(3.24, 1))
	assert.Equal(t, "0.0023", FormatPValue(0.00234))
	assert.Equal(t, NotAvailable, FormatDecimal(math.NaN(), 2))
	assert.Equal(t, "3.2400000000", FormatDecimal(3.24, 1000))
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "47,234", FormatValue(47234, KindCount))
	assert.Equal(t, "1.2M", FormatValue(1200000, KindCompact))
	assert.Equal(t, "8m 42s", FormatValue(522, KindDuration))
	assert.Equal(t, "42.3%", FormatValue(42.3, KindPercent))
	assert.Equal(t, "3.2", FormatValue(3.2, KindDecimal))
	assert.Equal(t, NotAvailable, FormatValue(math.NaN(), KindCount))
}
