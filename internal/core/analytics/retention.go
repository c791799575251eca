package analytics

import "math"

// RetentionBand is the display category of a retention percentage
type RetentionBand string

const (
	BandHealthy  RetentionBand = "healthy"
	BandWatch    RetentionBand = "watch"
	BandRisk     RetentionBand = "risk"
	BandCritical RetentionBand = "critical"
	BandNoData   RetentionBand = "no-data"
)

type bandThreshold struct {
	min  float64
	band RetentionBand
}

// Highest lower bound first; the first bound the value meets wins.
// Anything below the last bound is critical.
var retentionThresholds = []bandThreshold{
	{min: 60, band: BandHealthy},
	{min: 40, band: BandWatch},
	{min: 20, band: BandRisk},
}

// BandFor maps a possibly missing retention percentage to its band
func BandFor(v NullPercent) RetentionBand {
	if !v.Valid {
		return BandNoData
	}
	return BandForValue(v.Value)
}

// BandForValue maps an observed retention percentage to its band. NaN counts as missing.
func BandForValue(v float64) RetentionBand {
	if math.IsNaN(v) {
		return BandNoData
	}
	for _, t := range retentionThresholds {
		if v >= t.min {
			return t.band
		}
	}
	return BandCritical
}

// Rank orders bands from no-data (0) to healthy (4)
func (b RetentionBand) Rank() int {
	switch b {
	case BandHealthy:
		return 4
	case BandWatch:
		return 3
	case BandRisk:
		return 2
	case BandCritical:
		return 1
	default:
		return 0
	}
}

// Color returns the solid hex colour token of the band
func (b RetentionBand) Color() string {
	switch b {
	case BandHealthy:
		return "#22C55E"
	case BandWatch:
		return "#EAB308"
	case BandRisk:
		return "#F97316"
	case BandCritical:
		return "#EF4444"
	default:
		return "#9CA3AF"
	}
}

// Tint returns the light background colour used for table cells
func (b RetentionBand) Tint() string {
	switch b {
	case BandHealthy:
		return "#D3F3DF"
	case BandWatch:
		return "#FBF0CE"
	case BandRisk:
		return "#FEE4D0"
	case BandCritical:
		return "#FCDADA"
	default:
		return "#F3F4F6"
	}
}

// Label is the legend text of the band
func (b RetentionBand) Label() string {
	switch b {
	case BandHealthy:
		return "60%+ retention"
	case BandWatch:
		return "40-60% retention"
	case BandRisk:
		return "20-40% retention"
	case BandCritical:
		return "<20% retention"
	default:
		return "Not yet observed"
	}
}

// BandLegendEntry is one row of the retention colour legend
type BandLegendEntry struct {
	Band  RetentionBand `json:"band"`
	Label string        `json:"label"`
	Color string        `json:"color"`
}

// RetentionLegend lists the observed bands from best to worst
func RetentionLegend() []BandLegendEntry {
	bands := []RetentionBand{BandHealthy, BandWatch, BandRisk, BandCritical}
	legend := make([]BandLegendEntry, 0, len(bands))
	for _, b := range bands {
		legend = append(legend, BandLegendEntry{Band: b, Label: b.Label(), Color: b.Color()})
	}
	return legend
}
