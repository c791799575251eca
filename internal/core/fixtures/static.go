package fixtures

import (
	"fmt"
	"time"

	"github.com/MuhamadAgungGumelar/product-insight-dashboard-be/internal/core/analytics"
)

// PageStat is one row of the top pages list
type PageStat struct {
	Path       string
	Views      int
	AvgTimeSec int
	BounceRate float64
}

// FeatureStat is one row of the top features table
type FeatureStat struct {
	Name          string
	ShortName     string
	Usage         int
	PreviousUsage int
	Users         int
}

// RetentionPoint is one point of the retention curve
type RetentionPoint struct {
	Day  int
	Rate float64
}

// ComparisonPoint pairs the current and previous cohort at a day since signup
type ComparisonPoint struct {
	Day      int
	Current  float64
	Previous float64
}

// Insight is a short finding shown on a page
type Insight struct {
	Kind string // success, info, warning
	Text string
}

// Experiment is a running A/B test with raw control and treatment values
type Experiment struct {
	Name        string
	Status      string
	Metric      string
	Kind        analytics.ValueKind
	Control     float64
	Treatment   float64
	Confidence  int
	Significant bool
}

// CompletedTest is a finished experiment with its recorded lift
type CompletedTest struct {
	Name        string
	Lift        float64
	Significant bool
}

// ExperimentSummary holds the experiment counters of the testing page
type ExperimentSummary struct {
	Active              int
	ActivePrevious      int
	Completed           int
	Significant         int
	SuccessRatePrevious float64
}

// StatisticalTest is a static test write-up; PValue is nil when the test has none
type StatisticalTest struct {
	Name           string
	Type           string
	Metric         string
	Result         string
	PValue         *float64
	Interpretation string
	Recommendation string
	Status         string
}

// CohortStart is the first day of the oldest tracked cohort
var CohortStart = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

// AdoptionBase is the number of users who discovered any feature
const AdoptionBase = 47234

type metricDef struct {
	label       string
	current     float64
	previous    float64
	kind        analytics.ValueKind
	polarity    analytics.Polarity
	unit        string
	description string
	icon        string
}

func buildMetrics(defs []metricDef) ([]analytics.MetricPoint, error) {
	metrics := make([]analytics.MetricPoint, 0, len(defs))
	for _, s := range defs {
		m, err := analytics.NewMetricPoint(s.label, s.current, s.previous, s.kind)
		if err != nil {
			return nil, err
		}
		if s.polarity != "" {
			m.Polarity = s.polarity
		}
		m.Unit = s.unit
		m.Description = s.description
		m.Icon = s.icon
		metrics = append(metrics, m)
	}
	return metrics, nil
}

func (p *Provider) OverviewMetrics() ([]analytics.MetricPoint, error) {
	return buildMetrics([]metricDef{
		{label: "Daily Active Users", current: 47234, previous: 42061, kind: analytics.KindCount, description: "vs. yesterday", icon: "users"},
		{label: "Monthly Active Users", current: 284592, previous: 261813, kind: analytics.KindCount, description: "vs. last month", icon: "trending-up"},
		{label: "Avg. Session Duration", current: 522, previous: 533, kind: analytics.KindDuration, description: "vs. yesterday", icon: "clock"},
		{label: "Total Events", current: 1200000, previous: 1039861, kind: analytics.KindCompact, description: "today", icon: "mouse-pointer-click"},
	})
}

func (p *Provider) EngagementMetrics() ([]analytics.MetricPoint, error) {
	return buildMetrics([]metricDef{
		{label: "Session Frequency", current: 4.2, previous: 3.878, kind: analytics.KindDecimal, unit: "sessions/user/week", description: "vs last week"},
		{label: "Avg Session Duration", current: 522, previous: 533, kind: analytics.KindDuration, description: "vs last week"},
		{label: "Bounce Rate", current: 32.4, previous: 34.18, kind: analytics.KindPercent, polarity: analytics.LowerIsBetter, description: "vs last week"},
		{label: "Pages per Session", current: 5.7, previous: 5.7, kind: analytics.KindDecimal, description: "vs last week"},
	})
}

func (p *Provider) RetentionMetrics() ([]analytics.MetricPoint, error) {
	return buildMetrics([]metricDef{
		{label: "Day 1 Retention", current: 68.4, previous: 66.28, kind: analytics.KindPercent, description: "Users returning next day", icon: "target"},
		{label: "Day 7 Retention", current: 42.1, previous: 41.36, kind: analytics.KindPercent, description: "Users active after 1 week", icon: "calendar"},
		{label: "Day 30 Retention", current: 28.7, previous: 28.03, kind: analytics.KindPercent, description: "Users active after 1 month", icon: "trending-up"},
		{label: "Cohort Size (This Week)", current: 8432, previous: 7508, kind: analytics.KindCount, description: "New users this week", icon: "users"},
	})
}

func (p *Provider) FeatureMetrics() ([]analytics.MetricPoint, error) {
	return buildMetrics([]metricDef{
		{label: "Total Feature Events", current: 2400000, previous: 2030457, kind: analytics.KindCompact, description: "this week", icon: "activity"},
		{label: "Feature Adoption Rate", current: 64.3, previous: 61.18, kind: analytics.KindPercent, description: "users trying new features", icon: "trending-up"},
		{label: "Power Users", current: 12847, previous: 11797, kind: analytics.KindCount, description: "using 5+ features daily", icon: "zap"},
		{label: "Feature Discovery", current: 3.2, previous: 2.8, kind: analytics.KindDecimal, description: "avg features per user", icon: "users"},
	})
}

func (p *Provider) TopPages() []PageStat {
	return []PageStat{
		{Path: "/dashboard", Views: 145234, AvgTimeSec: 204, BounceRate: 28},
		{Path: "/analytics", Views: 98432, AvgTimeSec: 312, BounceRate: 22},
		{Path: "/reports", Views: 76543, AvgTimeSec: 278, BounceRate: 31},
		{Path: "/settings", Views: 54321, AvgTimeSec: 135, BounceRate: 45},
		{Path: "/profile", Views: 43210, AvgTimeSec: 112, BounceRate: 52},
	}
}

func (p *Provider) FunnelStages() ([]analytics.FunnelStage, error) {
	raw := []struct {
		name  string
		users int
	}{
		{"Discovered Feature", 47234},
		{"Clicked to Try", 38921},
		{"First Use", 32109},
		{"Second Use", 24876},
		{"Regular User (5+ uses)", 18432},
		{"Power User (Daily)", 12847},
	}

	stages := make([]analytics.FunnelStage, 0, len(raw))
	for i, r := range raw {
		s, err := analytics.NewFunnelStage(r.name, r.users, i)
		if err != nil {
			return nil, err
		}
		stages = append(stages, s)
	}
	return stages, nil
}

// Cohorts returns the four weekly signup cohorts; newer cohorts have fewer observed weeks
func (p *Provider) Cohorts() ([]analytics.CohortRow, error) {
	raw := []struct {
		size   int
		weekly map[int]float64
	}{
		{8432, map[int]float64{0: 100, 1: 68, 2: 52, 3: 42, 4: 36, 8: 28, 12: 22}},
		{7891, map[int]float64{0: 100, 1: 71, 2: 55, 3: 45, 4: 38, 8: 30}},
		{9234, map[int]float64{0: 100, 1: 69, 2: 53, 3: 43, 4: 37}},
		{8765, map[int]float64{0: 100, 1: 72, 2: 56, 3: 46}},
	}

	ranges := analytics.WeeklyRanges(CohortStart, len(raw))
	rows := make([]analytics.CohortRow, 0, len(raw))
	for i, r := range raw {
		row, err := analytics.NewCohortRow(analytics.CohortLabel(i+1, ranges[i]), r.size, r.weekly)
		if err != nil {
			return nil, fmt.Errorf("cohort fixture %d: %w", i+1, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (p *Provider) RetentionCurve() []RetentionPoint {
	return []RetentionPoint{
		{0, 100}, {1, 68.4}, {3, 52.1}, {7, 42.1}, {14, 35.8},
		{21, 31.2}, {30, 28.7}, {60, 22.4}, {90, 18.9},
	}
}

func (p *Provider) CohortComparison() []ComparisonPoint {
	return []ComparisonPoint{
		{0, 100, 100},
		{1, 68.4, 65.2},
		{3, 52.1, 48.3},
		{7, 42.1, 38.9},
		{14, 35.8, 32.1},
		{21, 31.2, 27.8},
		{30, 28.7, 24.3},
	}
}

func (p *Provider) RetentionInsights() []Insight {
	return []Insight{
		{Kind: "success", Text: "Recent cohorts show 15% improvement in week 1 retention compared to 3 months ago. New onboarding flow appears to be working."},
		{Kind: "info", Text: "Enterprise tier users have 2.3x higher 30-day retention (64%) compared to free tier (28%)."},
		{Kind: "warning", Text: "Significant retention drop between Day 1 (68%) and Day 3 (52%). Consider implementing Day 2-3 engagement campaigns."},
	}
}

func (p *Provider) TopFeatures() []FeatureStat {
	return []FeatureStat{
		{Name: "Dashboard View", ShortName: "Dashboard", Usage: 145234, PreviousUsage: 129327, Users: 42341},
		{Name: "Search", ShortName: "Search", Usage: 98432, PreviousUsage: 90554, Users: 38921},
		{Name: "Export Data", ShortName: "Export", Usage: 76543, PreviousUsage: 66443, Users: 28432},
		{Name: "Create Report", ShortName: "Reports", Usage: 54321, PreviousUsage: 44380, Users: 19876},
		{Name: "Share Content", ShortName: "Share", Usage: 43210, PreviousUsage: 40459, Users: 15234},
		{Name: "Collaboration", ShortName: "Collab", Usage: 32109, PreviousUsage: 27005, Users: 12098},
	}
}

func (p *Provider) UserSegments() []analytics.SeriesPoint {
	return []analytics.SeriesPoint{
		{Label: "Free", Value: 45234},
		{Label: "Pro", Value: 28492},
		{Label: "Enterprise", Value: 12876},
	}
}

func (p *Provider) Regions() []analytics.SeriesPoint {
	return []analytics.SeriesPoint{
		{Label: "North America", Value: 38},
		{Label: "Europe", Value: 28},
		{Label: "Asia Pacific", Value: 22},
		{Label: "Latin America", Value: 12},
	}
}

func (p *Provider) ExperimentSummary() ExperimentSummary {
	return ExperimentSummary{
		Active:              8,
		ActivePrevious:      6,
		Completed:           47,
		Significant:         32,
		SuccessRatePrevious: 64.73,
	}
}

func (p *Provider) Experiments() []Experiment {
	return []Experiment{
		{Name: "New Onboarding Flow", Status: "running", Metric: "Activation Rate", Kind: analytics.KindPercent, Control: 42.3, Treatment: 48.7, Confidence: 95, Significant: true},
		{Name: "Dashboard Redesign", Status: "running", Metric: "Session Duration", Kind: analytics.KindDuration, Control: 504, Treatment: 552, Confidence: 89, Significant: false},
		{Name: "Email Notification Timing", Status: "running", Metric: "Click-through Rate", Kind: analytics.KindPercent, Control: 12.4, Treatment: 14.8, Confidence: 98, Significant: true},
	}
}

func (p *Provider) CompletedTests() []CompletedTest {
	return []CompletedTest{
		{Name: "Onboarding v2", Lift: 15.1, Significant: true},
		{Name: "Email Timing", Lift: 19.4, Significant: true},
		{Name: "CTA Color", Lift: 8.2, Significant: true},
		{Name: "Dashboard", Lift: 9.5, Significant: false},
		{Name: "Pricing Page", Lift: -2.3, Significant: false},
		{Name: "Search UI", Lift: 12.7, Significant: true},
	}
}

func (p *Provider) StatisticalTests() []StatisticalTest {
	return []StatisticalTest{
		{
			Name:           "T-Test: New UI vs Old UI",
			Type:           "Independent Samples T-Test",
			Metric:         "Session Duration",
			Result:         "Significant",
			PValue:         pValue(0.0023),
			Interpretation: "New UI shows significantly longer session duration (580s vs 520s). Users are more engaged with the new interface.",
			Recommendation: "Roll out new UI to all users",
			Status:         "success",
		},
		{
			Name:           "Chi-Square: Feature Distribution",
			Type:           "Chi-Square Goodness of Fit",
			Metric:         "Feature Usage Pattern",
			Result:         "Significant",
			PValue:         pValue(0.0089),
			Interpretation: "Observed feature usage differs significantly from expected uniform distribution. Users show strong preference for certain features.",
			Recommendation: "Prioritize top 3 features in UI",
			Status:         "success",
		},
		{
			Name:           "Bootstrap CI: Retention Rate",
			Type:           "Bootstrap Confidence Interval",
			Metric:         "30-Day Retention",
			Result:         "95% CI: [26.2%, 31.4%]",
			Interpretation: "With 95% confidence, true retention rate is between 26.2% and 31.4%. Point estimate: 28.7%.",
			Recommendation: "Target 35% retention in Q2",
			Status:         "info",
		},
		{
			Name:           "Conversion Test: Checkout Flow",
			Type:           "Proportion Z-Test",
			Metric:         "Conversion Rate",
			Result:         "Not Significant",
			PValue:         pValue(0.142),
			Interpretation: "New checkout flow shows 3.2% improvement but not statistically significant. Need more data or larger effect size.",
			Recommendation: "Continue test for 2 more weeks",
			Status:         "warning",
		},
	}
}

func pValue(v float64) *float64 {
	return &v
}
