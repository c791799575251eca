package analytics

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"
)

// Boundary validation errors
var (
	ErrInvalidWeek   = errors.New("week offset is not tracked")
	ErrNegativeCount = errors.New("count must not be negative")
	ErrNonFinite     = errors.New("value must be a finite number")
)

// ValueKind tells the formatter how a metric value is displayed
type ValueKind string

const (
	KindCount    ValueKind = "count"    // 47,234
	KindCompact  ValueKind = "compact"  // 1.2M
	KindDuration ValueKind = "duration" // 8m 42s, value in seconds
	KindPercent  ValueKind = "percent"  // 64.3%
	KindDecimal  ValueKind = "decimal"  // 3.2
)

// Polarity says whether a rising value is good news
type Polarity string

const (
	HigherIsBetter Polarity = "higher_is_better"
	LowerIsBetter  Polarity = "lower_is_better"
)

// MetricPoint is a scalar metric with the baseline it is compared against
type MetricPoint struct {
	Label         string
	CurrentValue  float64
	PreviousValue float64
	Kind          ValueKind
	Polarity      Polarity
	Unit          string // e.g. "sessions/user/week"
	Description   string // e.g. "vs. yesterday"
	Icon          string
}

// NewMetricPoint validates the raw values of a metric card
func NewMetricPoint(label string, current, previous float64, kind ValueKind) (MetricPoint, error) {
	if !isFinite(current) || !isFinite(previous) {
		return MetricPoint{}, fmt.Errorf("metric %q: %w", label, ErrNonFinite)
	}
	if kind == "" {
		kind = KindDecimal
	}
	return MetricPoint{
		Label:         label,
		CurrentValue:  current,
		PreviousValue: previous,
		Kind:          kind,
		Polarity:      HigherIsBetter,
	}, nil
}

// NullPercent is a percentage that may be absent, shaped like sql.NullFloat64.
// It marshals to JSON null when not valid.
type NullPercent struct {
	Value float64
	Valid bool
}

// Percent wraps a known percentage; non-finite input yields an absent value
func Percent(v float64) NullPercent {
	if !isFinite(v) {
		return NullPercent{}
	}
	return NullPercent{Value: v, Valid: true}
}

// Rounded returns the value rounded to one decimal, or 0 when absent
func (p NullPercent) Rounded() float64 {
	if !p.Valid {
		return 0
	}
	return roundTo(p.Value, 1)
}

// String renders the percent with one decimal, or N/A
func (p NullPercent) String() string {
	if !p.Valid {
		return NotAvailable
	}
	return FormatPercent(p.Value)
}

func (p NullPercent) MarshalJSON() ([]byte, error) {
	if !p.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(p.Rounded())
}

// DateRange represents a time period
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// SeriesPoint is one labelled value of a chart series
type SeriesPoint struct {
	Label string
	Value float64
}

// NamedSeries is one line of a multi-series chart, aligned with shared labels
type NamedSeries struct {
	Name   string
	Values []float64
	Color  string
}

// ChartData represents generic chart data format
type ChartData struct {
	Type   string        `json:"type"`   // "line", "bar", "area"
	Labels []string      `json:"labels"` // X-axis labels
	Data   []ChartSeries `json:"data"`   // Y-axis data series
}

// ChartSeries represents a data series in a chart
type ChartSeries struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
	Color  string    `json:"color,omitempty"`
}

// PieChartData represents pie chart specific data
type PieChartData struct {
	Type   string        `json:"type"` // "pie" or "donut"
	Labels []string      `json:"labels"`
	Values []float64     `json:"values"`
	Shares []NullPercent `json:"shares"` // share of total per slice
	Colors []string      `json:"colors,omitempty"`
}

// StatCard represents a summary statistic card
type StatCard struct {
	Title         string    `json:"title"`
	Value         string    `json:"value"`
	Unit          string    `json:"unit,omitempty"`
	Change        Delta     `json:"change"`
	ChangeDisplay string    `json:"change_display"`
	ChangeLabel   string    `json:"change_label"` // "vs. yesterday", "this week"
	Trend         Trend     `json:"trend"`
	Sentiment     Sentiment `json:"sentiment"`
	Icon          string    `json:"icon,omitempty"`
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// roundTo rounds half away from zero and never returns negative zero
func roundTo(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	r := math.Round(v*scale) / scale
	if r == 0 {
		return 0
	}
	return r
}
