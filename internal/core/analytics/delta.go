package analytics

import "encoding/json"

// NotAvailable is shown wherever a derived value is undefined
const NotAvailable = "N/A"

// Trend is the direction of a change
type Trend string

const (
	TrendUp      Trend = "up"
	TrendDown    Trend = "down"
	TrendNeutral Trend = "neutral"
)

// Sentiment says whether a trend is good or bad news for the metric
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Delta is the signed percent change of a value against its baseline.
// Percent keeps full precision; Defined is false when the baseline is zero.
type Delta struct {
	Percent float64
	Defined bool
	Trend   Trend
}

// ComputeDelta returns (current - previous) / previous * 100 with its trend.
// A zero baseline or a non-finite result gives an undefined, neutral delta.
func ComputeDelta(current, previous float64) Delta {
	if previous == 0 {
		return Delta{Trend: TrendNeutral}
	}

	pct := (current - previous) / previous * 100
	if !isFinite(pct) {
		return Delta{Trend: TrendNeutral}
	}

	d := Delta{Percent: pct, Defined: true, Trend: TrendNeutral}
	if r := d.Rounded(); r > 0 {
		d.Trend = TrendUp
	} else if r < 0 {
		d.Trend = TrendDown
	}
	return d
}

// ComputeLift returns the relative improvement of treatment over control
func ComputeLift(control, treatment float64) Delta {
	return ComputeDelta(treatment, control)
}

// Rounded returns the percent change rounded to one decimal (0 when undefined)
func (d Delta) Rounded() float64 {
	if !d.Defined {
		return 0
	}
	return roundTo(d.Percent, 1)
}

// String renders the change as "+12.3%", "-2.1%" or "N/A"
func (d Delta) String() string {
	if !d.Defined {
		return NotAvailable
	}
	return FormatSignedPercent(d.Percent)
}

// Sentiment interprets the trend under the given polarity
func (d Delta) Sentiment(p Polarity) Sentiment {
	switch d.Trend {
	case TrendUp:
		if p == LowerIsBetter {
			return SentimentNegative
		}
		return SentimentPositive
	case TrendDown:
		if p == LowerIsBetter {
			return SentimentPositive
		}
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

func (d Delta) MarshalJSON() ([]byte, error) {
	var pct interface{} = NotAvailable
	if d.Defined {
		pct = d.Rounded()
	}
	return json.Marshal(struct {
		PercentChange interface{} `json:"percent_change"`
		Trend         Trend       `json:"trend"`
		Display       string      `json:"display"`
	}{
		PercentChange: pct,
		Trend:         d.Trend,
		Display:       d.String(),
	})
}
