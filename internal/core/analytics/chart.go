package analytics

// ToLineChartData converts a labelled series to line chart format
func ToLineChartData(name string, points []SeriesPoint) ChartData {
	labels, values := splitPoints(points)
	return ChartData{
		Type:   "line",
		Labels: labels,
		Data: []ChartSeries{
			{
				Name:   name,
				Values: values,
			},
		},
	}
}

// ToMultiLineChartData converts aligned series to multi-line chart format.
// Series keep the order they are given in.
func ToMultiLineChartData(labels []string, series []NamedSeries) ChartData {
	if len(labels) == 0 {
		return ChartData{Type: "line", Labels: []string{}, Data: []ChartSeries{}}
	}

	data := make([]ChartSeries, 0, len(series))
	for _, s := range series {
		values := make([]float64, len(labels))
		copy(values, s.Values)
		data = append(data, ChartSeries{
			Name:   s.Name,
			Values: values,
			Color:  s.Color,
		})
	}

	return ChartData{
		Type:   "line",
		Labels: append([]string(nil), labels...),
		Data:   data,
	}
}

// ToAreaChartData is a line chart rendered filled
func ToAreaChartData(name string, points []SeriesPoint) ChartData {
	chart := ToLineChartData(name, points)
	chart.Type = "area"
	return chart
}

// ToBarChartData converts a labelled series to bar chart format
func ToBarChartData(name string, points []SeriesPoint) ChartData {
	labels, values := splitPoints(points)
	return ChartData{
		Type:   "bar",
		Labels: labels,
		Data: []ChartSeries{
			{
				Name:   name,
				Values: values,
			},
		},
	}
}

// ToPieChartData converts a labelled series to pie chart format with each slice's share of the total
func ToPieChartData(points []SeriesPoint, colors []string) PieChartData {
	labels, values := splitPoints(points)

	var total float64
	for _, v := range values {
		total += v
	}

	shares := make([]NullPercent, len(values))
	for i, v := range values {
		if total != 0 {
			shares[i] = Percent(v / total * 100)
		}
	}

	return PieChartData{
		Type:   "pie",
		Labels: labels,
		Values: values,
		Shares: shares,
		Colors: colors,
	}
}

// ToStatCard builds a display card from a metric and its baseline
func ToStatCard(m MetricPoint, changeLabel string) StatCard {
	delta := ComputeDelta(m.CurrentValue, m.PreviousValue)
	return StatCard{
		Title:         m.Label,
		Value:         FormatValue(m.CurrentValue, m.Kind),
		Unit:          m.Unit,
		Change:        delta,
		ChangeDisplay: delta.String(),
		ChangeLabel:   changeLabel,
		Trend:         delta.Trend,
		Sentiment:     delta.Sentiment(m.Polarity),
		Icon:          m.Icon,
	}
}

// ToStatCards converts metrics to stat cards in order.
// Each card uses its metric's Description as change label.
func ToStatCards(metrics []MetricPoint) []StatCard {
	cards := make([]StatCard, 0, len(metrics))
	for _, m := range metrics {
		cards = append(cards, ToStatCard(m, m.Description))
	}
	return cards
}

func splitPoints(points []SeriesPoint) ([]string, []float64) {
	labels := make([]string, len(points))
	values := make([]float64, len(points))
	for i, p := range points {
		labels[i] = p.Label
		values[i] = p.Value
	}
	return labels, values
}
