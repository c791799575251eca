package services

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/MuhamadAgungGumelar/product-insight-dashboard-be/internal/core/analytics"
	"github.com/MuhamadAgungGumelar/product-insight-dashboard-be/internal/core/export"
	"github.com/MuhamadAgungGumelar/product-insight-dashboard-be/internal/core/fixtures"
)

type countingExports map[string]int

func (c countingExports) IncExport(table, format string) {
	c[table+"/"+format]++
}

func newTestExportService(counter ExportCounter) *ExportService {
	svc := NewExportService(fixtures.New(fixtures.DefaultSeed), export.NewService(), counter)
	svc.now = func() time.Time { return time.Date(2025, 1, 28, 9, 0, 0, 0, time.UTC) }
	return svc
}

func TestExportService_CohortData(t *testing.T) {
	data, err := newTestExportService(nil).Data(TableCohorts)
	require.NoError(t, err)

	assert.Equal(t, "Cohort Retention", data.Title)
	assert.Equal(t, []string{"Cohort", "Size", "Week 0", "Week 1", "Week 2", "Week 3", "Week 4", "Week 8", "Week 12"}, data.Headers)
	require.Len(t, data.Rows, 4)
	require.Len(t, data.CellFills, 4)

	assert.Equal(t, "8,432", data.Rows[0][1])
	assert.Equal(t, "100.0%", data.Rows[0][2])
	assert.Equal(t, analytics.BandHealthy.Tint(), data.FillAt(0, 2))
	assert.Equal(t, analytics.BandRisk.Tint(), data.FillAt(0, 8))
	assert.Equal(t, "", data.FillAt(0, 0))

	// newest cohort has not reached week 4 yet
	assert.Equal(t, analytics.MissingCell, data.Rows[3][6])
	assert.Equal(t, analytics.BandNoData.Tint(), data.FillAt(3, 6))

	assert.Equal(t, "20250128", data.Metadata["Seed"])
	assert.Equal(t, "2025-01-28T09:00:00Z", data.Metadata["Generated"])
	assert.Equal(t, analytics.BandHealthy.Label(), data.Metadata["Band healthy"])
}

func TestExportService_FunnelData(t *testing.T) {
	data, err := newTestExportService(nil).Data(TableFunnel)
	require.NoError(t, err)

	require.Len(t, data.Rows, 6)
	assert.Equal(t, []interface{}{"Discovered Feature", "47,234", analytics.NotAvailable, "100.0%"}, data.Rows[0])
	assert.Equal(t, "27.2%", data.Metadata["Overall conversion"])
	assert.Equal(t, "Power User (Daily) (30.3%)", data.Metadata["Biggest drop-off"])
}

func TestExportService_FeatureData(t *testing.T) {
	data, err := newTestExportService(nil).Data(TableFeatures)
	require.NoError(t, err)

	require.Len(t, data.Rows, 6)
	assert.Equal(t, []interface{}{1, "Dashboard View", "145,234", "42,341", "+12.3%", "89.6%"}, data.Rows[0])
}

func TestExportService_UnknownTable(t *testing.T) {
	_, err := newTestExportService(nil).Export("sessions", export.FormatCSV)
	assert.ErrorIs(t, err, ErrUnknownTable)
}

func TestExportService_UnsupportedFormat(t *testing.T) {
	counter := countingExports{}
	_, err := newTestExportService(counter).Export(TableFunnel, export.ExportFormat("docx"))
	assert.ErrorIs(t, err, export.ErrUnsupportedFormat)
	assert.Empty(t, counter)
}

func TestExportService_Export(t *testing.T) {
	counter := countingExports{}
	svc := newTestExportService(counter)

	tests := []struct {
		table       string
		format      export.ExportFormat
		contentType string
		fileName    string
	}{
		{TableCohorts, export.FormatExcel, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "cohorts.xlsx"},
		{TableFunnel, export.FormatPDF, "application/pdf", "funnel.pdf"},
		{TableFeatures, export.FormatCSV, "text/csv; charset=utf-8", "features.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.table, func(t *testing.T) {
			file, err := svc.Export(tt.table, tt.format)
			require.NoError(t, err)
			assert.NotEmpty(t, file.Body)
			assert.Equal(t, tt.contentType, file.ContentType)
			assert.Equal(t, tt.fileName, file.FileName)
		})
	}

	assert.Equal(t, 1, counter["cohorts/excel"])
	assert.Equal(t, 1, counter["funnel/pdf"])
	assert.Equal(t, 1, counter["features/csv"])
}

func TestExportService_ExportTo(t *testing.T) {
	counter := countingExports{}
	svc := newTestExportService(counter)

	var buf bytes.Buffer
	name, err := svc.ExportTo(&buf, TableFeatures, export.FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "features.csv", name)
	assert.True(t, strings.HasPrefix(buf.String(), "Rank,Feature,Usage,Users,Growth,Adoption\n"))
	assert.Equal(t, 1, counter["features/csv"])

	buf.Reset()
	_, err = svc.ExportTo(&buf, "sessions", export.FormatCSV)
	assert.ErrorIs(t, err, ErrUnknownTable)
	_, err = svc.ExportTo(&buf, TableFunnel, export.ExportFormat("docx"))
	assert.ErrorIs(t, err, export.ErrUnsupportedFormat)
	assert.Len(t, counter, 1)
}

func TestExportService_CSVContent(t *testing.T) {
	file, err := newTestExportService(nil).Export(TableFeatures, export.FormatCSV)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(file.Body)), "\n")
	assert.Equal(t, "Rank,Feature,Usage,Users,Growth,Adoption", lines[0])
	assert.Equal(t, `1,Dashboard View,"145,234","42,341",+12.3%,89.6%`, lines[1])
}

func TestExportService_ExcelCohortCells(t *testing.T) {
	file, err := newTestExportService(nil).Export(TableCohorts, export.FormatExcel)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(file.Body))
	require.NoError(t, err)
	defer f.Close()

	sheet := f.GetSheetName(0)
	v, err := f.GetCellValue(sheet, "A4")
	require.NoError(t, err)
	assert.Equal(t, "Cohort", v)

	v, err = f.GetCellValue(sheet, "C5")
	require.NoError(t, err)
	assert.Equal(t, "100.0%", v)
}
