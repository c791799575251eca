package export

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Service provides high-level export functionality
type Service struct {
	exporters map[ExportFormat]Exporter
}

func NewService() *Service {
	return &Service{
		exporters: map[ExportFormat]Exporter{
			FormatPDF:   NewPDFExporter(),
			FormatExcel: NewExcelExporter(),
			FormatCSV:   NewCSVExporter(),
		},
	}
}

func (s *Service) exporter(format ExportFormat) (Exporter, error) {
	exporter, ok := s.exporters[format]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	return exporter, nil
}

// Export renders data in the given format and returns the bytes with their content type
func (s *Service) Export(data *ExportData, format ExportFormat) ([]byte, string, error) {
	exporter, err := s.exporter(format)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	if err := exporter.Export(data, &buf); err != nil {
		return nil, "", fmt.Errorf("%s export failed: %w", format, err)
	}

	return buf.Bytes(), exporter.GetContentType(), nil
}

// ExportToWriter streams the export to a writer
func (s *Service) ExportToWriter(data *ExportData, format ExportFormat, writer io.Writer) error {
	exporter, err := s.exporter(format)
	if err != nil {
		return err
	}
	if err := exporter.Export(data, writer); err != nil {
		return fmt.Errorf("%s export failed: %w", format, err)
	}
	return nil
}

// GetContentType returns the content type for the given format
func (s *Service) GetContentType(format ExportFormat) string {
	if exporter, err := s.exporter(format); err == nil {
		return exporter.GetContentType()
	}
	return "application/octet-stream"
}

// GetFileExtension returns the file extension for the given format
func (s *Service) GetFileExtension(format ExportFormat) string {
	if exporter, err := s.exporter(format); err == nil {
		return exporter.GetFileExtension()
	}
	return ".bin"
}

// FileName builds a download name such as "cohorts.xlsx"
func (s *Service) FileName(base string, format ExportFormat) string {
	base = strings.TrimSpace(base)
	if base == "" {
		base = "export"
	}
	return base + s.GetFileExtension(format)
}
