package export

import (
	"encoding/csv"
	"fmt"
	"io"
)

// CSVExporter writes the header and rows as plain CSV; titles, fills and metadata are dropped
type CSVExporter struct{}

func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

func (c *CSVExporter) Export(data *ExportData, writer io.Writer) error {
	w := csv.NewWriter(writer)

	if len(data.Headers) > 0 {
		if err := w.Write(data.Headers); err != nil {
			return fmt.Errorf("failed to write CSV header: %w", err)
		}
	}

	record := make([]string, 0, len(data.Headers))
	for _, row := range data.Rows {
		record = record[:0]
		for _, value := range row {
			record = append(record, fmt.Sprintf("%v", value))
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

func (c *CSVExporter) GetContentType() string {
	return "text/csv; charset=utf-8"
}

func (c *CSVExporter) GetFileExtension() string {
	return ".csv"
}
