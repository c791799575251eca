package services

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/MuhamadAgungGumelar/product-insight-dashboard-be/internal/core/analytics"
	"github.com/MuhamadAgungGumelar/product-insight-dashboard-be/internal/core/export"
	"github.com/MuhamadAgungGumelar/product-insight-dashboard-be/internal/core/fixtures"
)

var ErrUnknownTable = errors.New("unknown export table")

const (
	TableCohorts  = "cohorts"
	TableFunnel   = "funnel"
	TableFeatures = "features"
)

// ExportCounter counts finished exports
type ExportCounter interface {
	IncExport(table, format string)
}

// ExportFile is a rendered export ready for download
type ExportFile struct {
	Body        []byte
	ContentType string
	FileName    string
}

type ExportService struct {
	source   Source
	exporter *export.Service
	counter  ExportCounter
	now      func() time.Time
}

func NewExportService(source Source, exporter *export.Service, counter ExportCounter) *ExportService {
	return &ExportService{
		source:   source,
		exporter: exporter,
		counter:  counter,
		now:      time.Now,
	}
}

// Tables lists the exportable table names
func (s *ExportService) Tables() []string {
	return []string{TableCohorts, TableFunnel, TableFeatures}
}

// lookupTable maps a requested name to its table constant. Callers may pass
// strings backed by reused request buffers, so only the constant is retained.
func (s *ExportService) lookupTable(name string) (string, bool) {
	for _, table := range s.Tables() {
		if table == name {
			return table, true
		}
	}
	return "", false
}

// Export renders one dashboard table in the given format
func (s *ExportService) Export(name string, format export.ExportFormat) (*ExportFile, error) {
	table, data, err := s.prepare(name)
	if err != nil {
		return nil, err
	}

	body, contentType, err := s.exporter.Export(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to export %s: %w", table, err)
	}
	s.count(table, format)

	return &ExportFile{
		Body:        body,
		ContentType: contentType,
		FileName:    s.exporter.FileName(table, format),
	}, nil
}

// ExportTo streams one dashboard table to w and returns its download name
func (s *ExportService) ExportTo(w io.Writer, name string, format export.ExportFormat) (string, error) {
	table, data, err := s.prepare(name)
	if err != nil {
		return "", err
	}

	if err := s.exporter.ExportToWriter(data, format, w); err != nil {
		return "", fmt.Errorf("failed to export %s: %w", table, err)
	}
	s.count(table, format)

	return s.exporter.FileName(table, format), nil
}

func (s *ExportService) prepare(name string) (string, *export.ExportData, error) {
	table, ok := s.lookupTable(name)
	if !ok {
		return "", nil, fmt.Errorf("%w: %q", ErrUnknownTable, name)
	}
	data, err := s.Data(table)
	if err != nil {
		return "", nil, err
	}
	return table, data, nil
}

func (s *ExportService) count(table string, format export.ExportFormat) {
	if s.counter != nil {
		s.counter.IncExport(table, string(format))
	}
}

// Data builds the export table without rendering it
func (s *ExportService) Data(table string) (*export.ExportData, error) {
	var (
		data *export.ExportData
		err  error
	)

	switch table {
	case TableCohorts:
		data, err = s.cohortData()
	case TableFunnel:
		data, err = s.funnelData()
	case TableFeatures:
		data = s.featureData()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTable, table)
	}
	if err != nil {
		return nil, err
	}

	data.Author = "Product Insight Dashboard"
	data.CreatedAt = s.now()
	if data.Metadata == nil {
		data.Metadata = map[string]string{}
	}
	data.Metadata["Generated"] = data.CreatedAt.UTC().Format(time.RFC3339)
	if seeded, ok := s.source.(interface{ Seed() int64 }); ok {
		data.Metadata["Seed"] = strconv.FormatInt(seeded.Seed(), 10)
	}
	return data, nil
}

func (s *ExportService) cohortData() (*export.ExportData, error) {
	cohorts, err := s.source.Cohorts()
	if err != nil {
		return nil, fmt.Errorf("failed to load cohorts: %w", err)
	}
	grid := analytics.ProjectCohorts(cohorts, analytics.DefaultWeekOffsets)

	table := &export.TableData{Headers: append([]string{"Cohort", "Size"}, grid.Headers...)}
	fills := make([][]string, 0, len(grid.Rows))
	for _, row := range grid.Rows {
		values := []interface{}{row.Cohort, row.SizeDisplay}
		rowFills := []string{"", ""}
		for _, cell := range row.Cells {
			values = append(values, cell.Display)
			rowFills = append(rowFills, cell.Band.Tint())
		}
		table.Rows = append(table.Rows, values)
		fills = append(fills, rowFills)
	}

	data := table.ToExportData("Cohort Retention")
	data.Description = "Weekly retention by signup cohort"
	data.Style.Orientation = "landscape"
	data.CellFills = fills
	data.Metadata = map[string]string{}
	for _, entry := range grid.Legend {
		data.Metadata["Band "+string(entry.Band)] = entry.Label
	}
	return data, nil
}

func (s *ExportService) funnelData() (*export.ExportData, error) {
	stages, err := s.source.FunnelStages()
	if err != nil {
		return nil, fmt.Errorf("failed to load funnel: %w", err)
	}
	view := buildFunnel(stages)

	table := &export.TableData{Headers: []string{"Stage", "Users", "Drop-off", "% of Top"}}
	for _, step := range view.Steps {
		table.Rows = append(table.Rows, []interface{}{
			step.Name, step.UsersDisplay, step.DropoffDisplay, step.OfTopDisplay,
		})
	}

	data := table.ToExportData("Feature Adoption Funnel")
	data.Description = "Users reaching each adoption stage"
	data.Metadata = map[string]string{"Overall conversion": view.OverallDisplay}
	if view.BiggestDropoff != nil {
		data.Metadata["Biggest drop-off"] = view.BiggestDropoff.Name + " (" + view.BiggestDropoff.DropoffDisplay + ")"
	}
	return data, nil
}

func (s *ExportService) featureData() *export.ExportData {
	features := s.source.TopFeatures()

	table := &export.TableData{Headers: []string{"Rank", "Feature", "Usage", "Users", "Growth", "Adoption"}}
	for i, f := range features {
		growth := analytics.ComputeDelta(float64(f.Usage), float64(f.PreviousUsage))
		adoption := analytics.Percent(float64(f.Users) / float64(fixtures.AdoptionBase) * 100)
		table.Rows = append(table.Rows, []interface{}{
			i + 1,
			f.Name,
			analytics.FormatCount(int64(f.Usage)),
			analytics.FormatCount(int64(f.Users)),
			growth.String(),
			adoption.String(),
		})
	}

	data := table.ToExportData("Top Features")
	data.Description = "Most used features this week"
	return data
}
