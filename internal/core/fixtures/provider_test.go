package fixtures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuhamadAgungGumelar/product-insight-dashboard-be/internal/core/analytics"
)

func TestProvider_SameSeedSameSeries(t *testing.T) {
	a := New(42)
	b := New(42)

	assert.Equal(t, a.DailyActiveUsers(), b.DailyActiveUsers())
	assert.Equal(t, a.SessionTrend(), b.SessionTrend())

	la, sa := a.FeatureDailyUsage()
	lb, sb := b.FeatureDailyUsage()
	assert.Equal(t, la, lb)
	assert.Equal(t, sa, sb)
}

func TestProvider_CallOrderIndependent(t *testing.T) {
	a := New(7)
	first := a.SessionsByHour()

	b := New(7)
	b.DailyActiveUsers()
	b.ActiveUsersByHour()
	assert.Equal(t, first, b.SessionsByHour())
}

func TestProvider_DifferentSeeds(t *testing.T) {
	assert.NotEqual(t, New(1).DailyActiveUsers(), New(2).DailyActiveUsers())
}

func TestProvider_SeriesRanges(t *testing.T) {
	p := New(DefaultSeed)

	dau := p.DailyActiveUsers()
	require.Len(t, dau, 30)
	for i, pt := range dau {
		assert.GreaterOrEqual(t, pt.Value, 40000+float64(i)*200)
		assert.Less(t, pt.Value, 55000+float64(i)*200)
	}
	assert.Equal(t, "Day 1", dau[0].Label)

	sessions := p.SessionsByHour()
	require.Len(t, sessions, 24)
	for _, pt := range sessions {
		assert.GreaterOrEqual(t, pt.Value, 1000.0)
		assert.Less(t, pt.Value, 3000.0)
	}

	for _, d := range p.SessionTrend() {
		assert.GreaterOrEqual(t, d.AvgDurationSec, 480)
		assert.Less(t, d.AvgDurationSec, 600)
	}

	labels, series := p.FeatureDailyUsage()
	assert.Len(t, labels, 30)
	require.Len(t, series, 4)
	assert.Equal(t, "Dashboard", series[0].Name)
	for _, s := range series {
		assert.Len(t, s.Values, 30)
	}
}

func TestProvider_CohortsHoldObservedPrefix(t *testing.T) {
	rows, err := New(DefaultSeed).Cohorts()
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, "Week 1 (Jan 1-7)", rows[0].Label)
	assert.Equal(t, "Week 4 (Jan 22-28)", rows[3].Label)
	for _, row := range rows {
		assert.True(t, analytics.ObservedPrefix(row, analytics.DefaultWeekOffsets), row.Label)
	}
}

func TestProvider_FunnelMatchesDisplayedShares(t *testing.T) {
	stages, err := New(DefaultSeed).FunnelStages()
	require.NoError(t, err)

	steps := analytics.ComputeFunnel(stages)
	want := []float64{100, 82.4, 68.0, 52.7, 39.0, 27.2}
	for i, s := range steps {
		assert.Equal(t, want[i], s.OfTop.Rounded(), s.Name)
	}
	assert.Equal(t, AdoptionBase, stages[0].UserCount)
}

func TestProvider_MetricsReproduceDisplayedChanges(t *testing.T) {
	p := New(DefaultSeed)

	overview, err := p.OverviewMetrics()
	require.NoError(t, err)
	engagement, err := p.EngagementMetrics()
	require.NoError(t, err)
	retention, err := p.RetentionMetrics()
	require.NoError(t, err)
	features, err := p.FeatureMetrics()
	require.NoError(t, err)

	tests := []struct {
		metrics []analytics.MetricPoint
		want    []string
	}{
		{overview, []string{"+12.3%", "+8.7%", "-2.1%", "+15.4%"}},
		{engagement, []string{"+8.3%", "-2.1%", "-5.2%", "+0.0%"}},
		{retention, []string{"+3.2%", "+1.8%", "+2.4%", "+12.3%"}},
		{features, []string{"+18.2%", "+5.1%", "+8.9%", "+14.3%"}},
	}
	for _, tt := range tests {
		require.Len(t, tt.metrics, len(tt.want))
		for i, m := range tt.metrics {
			assert.Equal(t, tt.want[i], analytics.ComputeDelta(m.CurrentValue, m.PreviousValue).String(), m.Label)
		}
	}

	assert.Equal(t, analytics.LowerIsBetter, engagement[2].Polarity)
}

func TestProvider_TopFeatureGrowth(t *testing.T) {
	want := []string{"+12.3%", "+8.7%", "+15.2%", "+22.4%", "+6.8%", "+18.9%"}
	for i, f := range New(DefaultSeed).TopFeatures() {
		assert.Equal(t, want[i], analytics.ComputeDelta(float64(f.Usage), float64(f.PreviousUsage)).String(), f.Name)
	}
}
