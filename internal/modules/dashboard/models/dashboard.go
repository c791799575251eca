package models

import (
	"github.com/MuhamadAgungGumelar/product-insight-dashboard-be/internal/core/analytics"
	"github.com/MuhamadAgungGumelar/product-insight-dashboard-be/internal/core/realtime"
)

// PageLink is one entry of the dashboard navigation
type PageLink struct {
	Name string `json:"name"`
	Href string `json:"href"`
	API  string `json:"api"`
	Icon string `json:"icon"`
}

// Insight is a short finding rendered as a bullet
type Insight struct {
	Kind string `json:"kind"` // success, info, warning
	Text string `json:"text"`
}

// OverviewPage is the landing page
type OverviewPage struct {
	Metrics          []analytics.StatCard `json:"metrics"`
	Realtime         realtime.Snapshot    `json:"realtime"`
	DailyActiveUsers analytics.ChartData  `json:"daily_active_users"`
	DAUAxisTicks     []string             `json:"dau_axis_ticks"`
	SessionsByHour   analytics.ChartData  `json:"sessions_by_hour"`
}

// TopPageRow is one row of the most visited pages list
type TopPageRow struct {
	Rank           int                   `json:"rank"`
	Path           string                `json:"path"`
	Views          int                   `json:"views"`
	ViewsDisplay   string                `json:"views_display"`
	AvgTimeSec     int                   `json:"avg_time_sec"`
	AvgTimeDisplay string                `json:"avg_time_display"`
	BounceRate     analytics.NullPercent `json:"bounce_rate"`
	BounceDisplay  string                `json:"bounce_display"`
}

// SegmentRow is one subscription tier with its user count and share
type SegmentRow struct {
	Name         string                `json:"name"`
	Users        int                   `json:"users"`
	UsersDisplay string                `json:"users_display"`
	Share        analytics.NullPercent `json:"share"`
	ShareDisplay string                `json:"share_display"`
	Color        string                `json:"color"`
}

// RegionShare is one region of the geographic distribution
type RegionShare struct {
	Name    string                `json:"name"`
	Percent analytics.NullPercent `json:"percent"`
	Display string                `json:"display"`
	Color   string                `json:"color"`
}

type EngagementPage struct {
	Metrics           []analytics.StatCard   `json:"metrics"`
	SessionTrend      analytics.ChartData    `json:"session_trend"`
	ActiveUsersByHour analytics.ChartData    `json:"active_users_by_hour"`
	Segments          analytics.PieChartData `json:"segments"`
	SegmentRows       []SegmentRow           `json:"segment_rows"`
	Regions           []RegionShare          `json:"regions"`
	TopPages          []TopPageRow           `json:"top_pages"`
}

type RetentionPage struct {
	Metrics    []analytics.StatCard `json:"metrics"`
	Curve      analytics.ChartData  `json:"curve"`
	Comparison analytics.ChartData  `json:"comparison"`
	Cohorts    analytics.CohortGrid `json:"cohorts"`
	Insights   []Insight            `json:"insights"`
}

// FunnelView is the adoption funnel with its derived insights
type FunnelView struct {
	Steps             []analytics.FunnelStep `json:"steps"`
	OverallConversion analytics.NullPercent  `json:"overall_conversion"`
	OverallDisplay    string                 `json:"overall_display"`
	BiggestDropoff    *analytics.FunnelStep  `json:"biggest_dropoff"`
	Insights          []string               `json:"insights"`
}

// FeatureRow is one row of the top features table
type FeatureRow struct {
	Rank            int                   `json:"rank"`
	Name            string                `json:"name"`
	Usage           int                   `json:"usage"`
	UsageDisplay    string                `json:"usage_display"`
	Users           int                   `json:"users"`
	UsersDisplay    string                `json:"users_display"`
	Growth          analytics.Delta       `json:"growth"`
	GrowthDisplay   string                `json:"growth_display"`
	Adoption        analytics.NullPercent `json:"adoption"`
	AdoptionDisplay string                `json:"adoption_display"`
}

type FeaturesPage struct {
	Metrics     []analytics.StatCard `json:"metrics"`
	DailyUsage  analytics.ChartData  `json:"daily_usage"`
	Comparison  analytics.ChartData  `json:"comparison"`
	Funnel      FunnelView           `json:"funnel"`
	TopFeatures []FeatureRow         `json:"top_features"`
}

// ExperimentRow is a running A/B test with its computed lift
type ExperimentRow struct {
	Name              string          `json:"name"`
	Status            string          `json:"status"`
	Metric            string          `json:"metric"`
	Control           float64         `json:"control"`
	ControlDisplay    string          `json:"control_display"`
	Treatment         float64         `json:"treatment"`
	TreatmentDisplay  string          `json:"treatment_display"`
	Lift              analytics.Delta `json:"lift"`
	LiftDisplay       string          `json:"lift_display"`
	Confidence        int             `json:"confidence"`
	ConfidenceDisplay string          `json:"confidence_display"`
	Significant       bool            `json:"significant"`
}

// LiftBar is one bar of the completed tests chart
type LiftBar struct {
	Name        string  `json:"name"`
	Lift        float64 `json:"lift"`
	Display     string  `json:"display"`
	Significant bool    `json:"significant"`
	Color       string  `json:"color"`
}

// StatTestRow is a static statistical test write-up
type StatTestRow struct {
	Name           string   `json:"name"`
	Type           string   `json:"type"`
	Metric         string   `json:"metric"`
	Result         string   `json:"result"`
	PValue         *float64 `json:"p_value"`
	PValueDisplay  string   `json:"p_value_display"`
	Interpretation string   `json:"interpretation"`
	Recommendation string   `json:"recommendation"`
	Status         string   `json:"status"`
}

// TestingSummary holds the experiment totals
type TestingSummary struct {
	Completed         int                   `json:"completed"`
	Significant       int                   `json:"significant"`
	Failed            int                   `json:"failed"`
	SuccessRate       analytics.NullPercent `json:"success_rate"`
	FailedShare       analytics.NullPercent `json:"failed_share"`
	ActiveExperiments int                   `json:"active_experiments"`
	ActiveChange      int                   `json:"active_experiments_change"`
}

type TestingPage struct {
	Metrics          []analytics.StatCard `json:"metrics"`
	Summary          TestingSummary       `json:"summary"`
	ActiveTests      []ExperimentRow      `json:"active_tests"`
	LiftChart        analytics.ChartData  `json:"lift_chart"`
	LiftBars         []LiftBar            `json:"lift_bars"`
	StatisticalTests []StatTestRow        `json:"statistical_tests"`
}
