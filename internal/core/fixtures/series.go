package fixtures

import (
	"math"

	"github.com/MuhamadAgungGumelar/product-insight-dashboard-be/internal/core/analytics"
)

// SessionDay is one day of the session trend
type SessionDay struct {
	Label          string
	Sessions       int
	AvgDurationSec int
}

// DailyActiveUsers returns 30 days of DAU with a slight upward drift
func (p *Provider) DailyActiveUsers() []analytics.SeriesPoint {
	r := p.stream("dau")
	labels := analytics.DayLabels(30)
	points := make([]analytics.SeriesPoint, 0, len(labels))
	for i, label := range labels {
		v := math.Floor(40000 + r.Float64()*15000 + float64(i)*200)
		points = append(points, analytics.SeriesPoint{Label: label, Value: v})
	}
	return points
}

// SessionsByHour returns today's session count per hour
func (p *Provider) SessionsByHour() []analytics.SeriesPoint {
	r := p.stream("sessions-by-hour")
	labels := analytics.HourLabels()
	points := make([]analytics.SeriesPoint, 0, len(labels))
	for _, label := range labels {
		v := math.Floor(1000 + r.Float64()*2000)
		points = append(points, analytics.SeriesPoint{Label: label, Value: v})
	}
	return points
}

// SessionTrend returns 30 days of session counts with their average duration
func (p *Provider) SessionTrend() []SessionDay {
	r := p.stream("session-trend")
	labels := analytics.DayLabels(30)
	days := make([]SessionDay, 0, len(labels))
	for i, label := range labels {
		sessions := math.Floor(8000 + r.Float64()*3000 + float64(i)*50)
		duration := math.Floor(480 + r.Float64()*120)
		days = append(days, SessionDay{
			Label:          label,
			Sessions:       int(sessions),
			AvgDurationSec: int(duration),
		})
	}
	return days
}

// ActiveUsersByHour returns today's active users per hour following a daily wave
func (p *Provider) ActiveUsersByHour() []analytics.SeriesPoint {
	r := p.stream("active-by-hour")
	labels := analytics.HourLabels()
	points := make([]analytics.SeriesPoint, 0, len(labels))
	for i, label := range labels {
		v := math.Floor(500 + r.Float64()*1500 + math.Sin(float64(i)/3)*800)
		points = append(points, analytics.SeriesPoint{Label: label, Value: v})
	}
	return points
}

type usageShape struct {
	name   string
	base   float64
	spread float64
	drift  float64
	color  string
}

var featureUsageShapes = []usageShape{
	{name: "Dashboard", base: 4000, spread: 1000, drift: 20, color: "#3B82F6"},
	{name: "Search", base: 3000, spread: 800, drift: 15, color: "#22C55E"},
	{name: "Export", base: 2000, spread: 600, drift: 10, color: "#F97316"},
	{name: "Reports", base: 1500, spread: 400, drift: 8, color: "#A855F7"},
}

// FeatureDailyUsage returns 30 days of usage for the top four features
func (p *Provider) FeatureDailyUsage() ([]string, []analytics.NamedSeries) {
	r := p.stream("feature-usage")
	labels := analytics.DayLabels(30)

	series := make([]analytics.NamedSeries, len(featureUsageShapes))
	for j, s := range featureUsageShapes {
		series[j] = analytics.NamedSeries{Name: s.name, Values: make([]float64, len(labels)), Color: s.color}
	}

	// day-major: one draw per feature per day
	for i := range labels {
		for j, s := range featureUsageShapes {
			series[j].Values[i] = math.Floor(s.base + r.Float64()*s.spread + float64(i)*s.drift)
		}
	}

	return labels, series
}
