package services

import (
	"fmt"
	"strconv"

	"github.com/MuhamadAgungGumelar/product-insight-dashboard-be/internal/core/analytics"
	"github.com/MuhamadAgungGumelar/product-insight-dashboard-be/internal/core/fixtures"
	"github.com/MuhamadAgungGumelar/product-insight-dashboard-be/internal/core/realtime"
	"github.com/MuhamadAgungGumelar/product-insight-dashboard-be/internal/modules/dashboard/models"
)

// Source supplies the raw dashboard series. *fixtures.Provider is the only implementation today.
type Source interface {
	OverviewMetrics() ([]analytics.MetricPoint, error)
	EngagementMetrics() ([]analytics.MetricPoint, error)
	RetentionMetrics() ([]analytics.MetricPoint, error)
	FeatureMetrics() ([]analytics.MetricPoint, error)

	DailyActiveUsers() []analytics.SeriesPoint
	SessionsByHour() []analytics.SeriesPoint
	SessionTrend() []fixtures.SessionDay
	ActiveUsersByHour() []analytics.SeriesPoint
	FeatureDailyUsage() ([]string, []analytics.NamedSeries)

	TopPages() []fixtures.PageStat
	UserSegments() []analytics.SeriesPoint
	Regions() []analytics.SeriesPoint

	Cohorts() ([]analytics.CohortRow, error)
	RetentionCurve() []fixtures.RetentionPoint
	CohortComparison() []fixtures.ComparisonPoint
	RetentionInsights() []fixtures.Insight

	FunnelStages() ([]analytics.FunnelStage, error)
	TopFeatures() []fixtures.FeatureStat

	ExperimentSummary() fixtures.ExperimentSummary
	Experiments() []fixtures.Experiment
	CompletedTests() []fixtures.CompletedTest
	StatisticalTests() []fixtures.StatisticalTest
}

// Snapshotter reads the live counters
type Snapshotter interface {
	Snapshot() realtime.Snapshot
}

// Chart palette
const (
	colorBlue   = "#3B82F6"
	colorGreen  = "#22C55E"
	colorOrange = "#F97316"
	colorPurple = "#A855F7"
	colorMuted  = "#9CA3AF"
)

var palette = []string{colorBlue, colorGreen, colorOrange, colorPurple}

// first-use conversion target shown in the funnel insights
const firstUseTarget = 60.0

type DashboardService struct {
	source Source
	live   Snapshotter
}

func NewDashboardService(source Source, live Snapshotter) *DashboardService {
	return &DashboardService{source: source, live: live}
}

// Pages returns the dashboard navigation
func (s *DashboardService) Pages() []models.PageLink {
	return []models.PageLink{
		{Name: "Overview", Href: "/dashboard", API: "/api/dashboard/overview", Icon: "activity"},
		{Name: "User Engagement", Href: "/dashboard/engagement", API: "/api/dashboard/engagement", Icon: "users"},
		{Name: "Retention Analysis", Href: "/dashboard/retention", API: "/api/dashboard/retention", Icon: "trending-up"},
		{Name: "Feature Usage", Href: "/dashboard/features", API: "/api/dashboard/features", Icon: "bar-chart-3"},
		{Name: "Hypothesis Testing", Href: "/dashboard/testing", API: "/api/dashboard/testing", Icon: "test-tube"},
	}
}

// Realtime returns the live counters, zero values when no ticker is wired
func (s *DashboardService) Realtime() realtime.Snapshot {
	if s.live == nil {
		return realtime.Snapshot{}
	}
	return s.live.Snapshot()
}

func (s *DashboardService) Overview() (*models.OverviewPage, error) {
	metrics, err := s.source.OverviewMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to load overview metrics: %w", err)
	}

	dau := analytics.ToLineChartData("Users", s.source.DailyActiveUsers())
	dau.Data[0].Color = colorBlue

	sessions := analytics.ToBarChartData("Sessions", s.source.SessionsByHour())
	sessions.Data[0].Color = colorGreen

	return &models.OverviewPage{
		Metrics:          analytics.ToStatCards(metrics),
		Realtime:         s.Realtime(),
		DailyActiveUsers: dau,
		DAUAxisTicks:     axisTicks(dau.Data[0].Values),
		SessionsByHour:   sessions,
	}, nil
}

func (s *DashboardService) Engagement() (*models.EngagementPage, error) {
	metrics, err := s.source.EngagementMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to load engagement metrics: %w", err)
	}

	trend := s.source.SessionTrend()
	labels := make([]string, 0, len(trend))
	counts := make([]float64, 0, len(trend))
	durations := make([]float64, 0, len(trend))
	for _, d := range trend {
		labels = append(labels, d.Label)
		counts = append(counts, float64(d.Sessions))
		durations = append(durations, float64(d.AvgDurationSec))
	}
	sessionTrend := analytics.ToMultiLineChartData(labels, []analytics.NamedSeries{
		{Name: "Sessions", Values: counts, Color: colorBlue},
		{Name: "Avg Duration (s)", Values: durations, Color: colorPurple},
	})
	sessionTrend.Type = "area"

	active := analytics.ToBarChartData("Active Users", s.source.ActiveUsersByHour())
	active.Data[0].Color = colorGreen

	segments := s.source.UserSegments()
	pie := analytics.ToPieChartData(segments, colors(len(segments)))
	pie.Type = "donut"

	segmentRows := make([]models.SegmentRow, 0, len(segments))
	for i, seg := range segments {
		segmentRows = append(segmentRows, models.SegmentRow{
			Name:         seg.Label,
			Users:        int(seg.Value),
			UsersDisplay: analytics.FormatCount(int64(seg.Value)),
			Share:        pie.Shares[i],
			ShareDisplay: pie.Shares[i].String(),
			Color:        pie.Colors[i],
		})
	}

	regions := make([]models.RegionShare, 0)
	for i, r := range s.source.Regions() {
		regions = append(regions, models.RegionShare{
			Name:    r.Label,
			Percent: analytics.Percent(r.Value),
			Display: analytics.FormatPercentN(r.Value, 0),
			Color:   palette[i%len(palette)],
		})
	}

	pages := make([]models.TopPageRow, 0)
	for i, p := range s.source.TopPages() {
		bounce := analytics.Percent(p.BounceRate)
		pages = append(pages, models.TopPageRow{
			Rank:           i + 1,
			Path:           p.Path,
			Views:          p.Views,
			ViewsDisplay:   analytics.FormatCount(int64(p.Views)),
			AvgTimeSec:     p.AvgTimeSec,
			AvgTimeDisplay: analytics.FormatDuration(int64(p.AvgTimeSec)),
			BounceRate:     bounce,
			BounceDisplay:  analytics.FormatPercentN(p.BounceRate, 0),
		})
	}

	return &models.EngagementPage{
		Metrics:           analytics.ToStatCards(metrics),
		SessionTrend:      sessionTrend,
		ActiveUsersByHour: active,
		Segments:          pie,
		SegmentRows:       segmentRows,
		Regions:           regions,
		TopPages:          pages,
	}, nil
}

func (s *DashboardService) Retention() (*models.RetentionPage, error) {
	metrics, err := s.source.RetentionMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to load retention metrics: %w", err)
	}

	cohorts, err := s.source.Cohorts()
	if err != nil {
		return nil, fmt.Errorf("failed to load cohorts: %w", err)
	}

	curvePoints := make([]analytics.SeriesPoint, 0)
	for _, p := range s.source.RetentionCurve() {
		curvePoints = append(curvePoints, analytics.SeriesPoint{Label: strconv.Itoa(p.Day), Value: p.Rate})
	}
	curve := analytics.ToLineChartData("Retention Rate", curvePoints)
	curve.Data[0].Color = colorBlue

	comparison := s.source.CohortComparison()
	labels := make([]string, 0, len(comparison))
	current := make([]float64, 0, len(comparison))
	previous := make([]float64, 0, len(comparison))
	for _, p := range comparison {
		labels = append(labels, strconv.Itoa(p.Day))
		current = append(current, p.Current)
		previous = append(previous, p.Previous)
	}

	insights := make([]models.Insight, 0)
	for _, in := range s.source.RetentionInsights() {
		insights = append(insights, models.Insight{Kind: in.Kind, Text: in.Text})
	}

	return &models.RetentionPage{
		Metrics: analytics.ToStatCards(metrics),
		Curve:   curve,
		Comparison: analytics.ToMultiLineChartData(labels, []analytics.NamedSeries{
			{Name: "Current Cohort", Values: current, Color: colorGreen},
			{Name: "Previous Cohort", Values: previous, Color: colorOrange},
		}),
		Cohorts:  analytics.ProjectCohorts(cohorts, analytics.DefaultWeekOffsets),
		Insights: insights,
	}, nil
}

func (s *DashboardService) Features() (*models.FeaturesPage, error) {
	metrics, err := s.source.FeatureMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to load feature metrics: %w", err)
	}

	stages, err := s.source.FunnelStages()
	if err != nil {
		return nil, fmt.Errorf("failed to load funnel: %w", err)
	}

	labels, series := s.source.FeatureDailyUsage()

	features := s.source.TopFeatures()
	usage := make([]analytics.SeriesPoint, 0, len(features))
	rows := make([]models.FeatureRow, 0, len(features))
	for i, f := range features {
		usage = append(usage, analytics.SeriesPoint{Label: f.ShortName, Value: float64(f.Usage)})

		growth := analytics.ComputeDelta(float64(f.Usage), float64(f.PreviousUsage))
		adoption := analytics.Percent(float64(f.Users) / float64(fixtures.AdoptionBase) * 100)
		rows = append(rows, models.FeatureRow{
			Rank:            i + 1,
			Name:            f.Name,
			Usage:           f.Usage,
			UsageDisplay:    analytics.FormatCount(int64(f.Usage)),
			Users:           f.Users,
			UsersDisplay:    analytics.FormatCount(int64(f.Users)),
			Growth:          growth,
			GrowthDisplay:   growth.String(),
			Adoption:        adoption,
			AdoptionDisplay: adoption.String(),
		})
	}

	comparison := analytics.ToBarChartData("Usage", usage)
	comparison.Data[0].Color = colorBlue

	return &models.FeaturesPage{
		Metrics:     analytics.ToStatCards(metrics),
		DailyUsage:  analytics.ToMultiLineChartData(labels, series),
		Comparison:  comparison,
		Funnel:      buildFunnel(stages),
		TopFeatures: rows,
	}, nil
}

func buildFunnel(stages []analytics.FunnelStage) models.FunnelView {
	steps := analytics.ComputeFunnel(stages)
	overall := analytics.OverallConversion(steps)

	view := models.FunnelView{
		Steps:             steps,
		OverallConversion: overall,
		OverallDisplay:    overall.String(),
		Insights:          []string{},
	}

	// stage 2 is the first real use of the feature
	if len(steps) > 2 && steps[2].OfTop.Valid {
		firstUse := steps[2].OfTop
		comparison := "above"
		if firstUse.Rounded() < firstUseTarget {
			comparison = "below"
		}
		view.Insights = append(view.Insights, fmt.Sprintf(
			"Conversion from discovery to first use: %s (%s target of %s)",
			firstUse.String(), comparison, analytics.FormatPercentN(firstUseTarget, 0)))
	}

	// a valid drop-off never sits at index 0
	if i, ok := analytics.BiggestDropoff(steps); ok {
		biggest := steps[i]
		view.BiggestDropoff = &biggest
		view.Insights = append(view.Insights, fmt.Sprintf(
			"Biggest drop-off: %s to %s (%s)", steps[i-1].Name, biggest.Name, biggest.DropoffDisplay))
	}

	if overall.Valid && len(steps) > 1 {
		view.Insights = append(view.Insights, fmt.Sprintf(
			"%s conversion: %s of %s users reach this stage",
			steps[len(steps)-1].Name, overall.String(), steps[0].Name))
	}

	return view
}

func (s *DashboardService) Testing() (*models.TestingPage, error) {
	summary := s.source.ExperimentSummary()

	failed := summary.Completed - summary.Significant
	successRate := analytics.NullPercent{}
	failedShare := analytics.NullPercent{}
	if summary.Completed > 0 {
		successRate = analytics.Percent(float64(summary.Significant) / float64(summary.Completed) * 100)
		failedShare = analytics.Percent(float64(failed) / float64(summary.Completed) * 100)
	}

	active, err := analytics.NewMetricPoint("Active Experiments", float64(summary.Active), float64(summary.ActivePrevious), analytics.KindCount)
	if err != nil {
		return nil, fmt.Errorf("failed to build experiment metrics: %w", err)
	}
	rate, err := analytics.NewMetricPoint("Success Rate", successRate.Value, summary.SuccessRatePrevious, analytics.KindPercent)
	if err != nil {
		return nil, fmt.Errorf("failed to build experiment metrics: %w", err)
	}

	cards := []analytics.StatCard{
		analytics.ToStatCard(active, "running tests"),
		countCard("Completed Tests", summary.Completed, fmt.Sprintf("%d significant", summary.Significant), "all time"),
		analytics.ToStatCard(rate, "tests showing improvement"),
		countCard("Failed Tests", failed, failedShare.String(), "no significant impact"),
	}

	rows := make([]models.ExperimentRow, 0)
	for _, e := range s.source.Experiments() {
		lift := analytics.ComputeLift(e.Control, e.Treatment)
		rows = append(rows, models.ExperimentRow{
			Name:              e.Name,
			Status:            e.Status,
			Metric:            e.Metric,
			Control:           e.Control,
			ControlDisplay:    analytics.FormatValue(e.Control, e.Kind),
			Treatment:         e.Treatment,
			TreatmentDisplay:  analytics.FormatValue(e.Treatment, e.Kind),
			Lift:              lift,
			LiftDisplay:       lift.String(),
			Confidence:        e.Confidence,
			ConfidenceDisplay: analytics.FormatPercentN(float64(e.Confidence), 0),
			Significant:       e.Significant,
		})
	}

	completed := s.source.CompletedTests()
	bars := make([]models.LiftBar, 0, len(completed))
	points := make([]analytics.SeriesPoint, 0, len(completed))
	for _, t := range completed {
		color := colorMuted
		if t.Significant {
			color = colorGreen
		}
		bars = append(bars, models.LiftBar{
			Name:        t.Name,
			Lift:        t.Lift,
			Display:     analytics.FormatSignedPercent(t.Lift),
			Significant: t.Significant,
			Color:       color,
		})
		points = append(points, analytics.SeriesPoint{Label: t.Name, Value: t.Lift})
	}

	tests := make([]models.StatTestRow, 0)
	for _, t := range s.source.StatisticalTests() {
		display := analytics.NotAvailable
		if t.PValue != nil {
			display = analytics.FormatPValue(*t.PValue)
		}
		tests = append(tests, models.StatTestRow{
			Name:           t.Name,
			Type:           t.Type,
			Metric:         t.Metric,
			Result:         t.Result,
			PValue:         t.PValue,
			PValueDisplay:  display,
			Interpretation: t.Interpretation,
			Recommendation: t.Recommendation,
			Status:         t.Status,
		})
	}

	return &models.TestingPage{
		Metrics: cards,
		Summary: models.TestingSummary{
			Completed:         summary.Completed,
			Significant:       summary.Significant,
			Failed:            failed,
			SuccessRate:       successRate,
			FailedShare:       failedShare,
			ActiveExperiments: summary.Active,
			ActiveChange:      summary.Active - summary.ActivePrevious,
		},
		ActiveTests:      rows,
		LiftChart:        analytics.ToBarChartData("Lift %", points),
		LiftBars:         bars,
		StatisticalTests: tests,
	}, nil
}

// countCard is a card without a baseline; the change slot carries a caption instead of a delta
func countCard(title string, value int, caption, label string) analytics.StatCard {
	return analytics.StatCard{
		Title:         title,
		Value:         analytics.FormatCount(int64(value)),
		Change:        analytics.Delta{Trend: analytics.TrendNeutral},
		ChangeDisplay: caption,
		ChangeLabel:   label,
		Trend:         analytics.TrendNeutral,
		Sentiment:     analytics.SentimentNeutral,
	}
}

// colors cycles the palette over n slices
func colors(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = palette[i%len(palette)]
	}
	return out
}

// axisTicks renders five evenly spaced y-axis ticks in thousands
func axisTicks(values []float64) []string {
	if len(values) == 0 {
		return []string{}
	}
	lo, hi := values[0], values[0]
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	ticks := make([]string, 0, 5)
	for i := 0; i < 5; i++ {
		ticks = append(ticks, analytics.FormatAxisThousands(lo+(hi-lo)*float64(i)/4))
	}
	return ticks
}
