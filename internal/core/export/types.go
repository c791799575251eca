package export

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

// ExportFormat represents the export file format
type ExportFormat string

const (
	FormatPDF   ExportFormat = "pdf"
	FormatExcel ExportFormat = "excel"
	FormatCSV   ExportFormat = "csv"
)

var ErrUnsupportedFormat = errors.New("unsupported export format")

// ParseFormat accepts excel|xlsx|pdf|csv, case-insensitive
func ParseFormat(s string) (ExportFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "excel", "xlsx":
		return FormatExcel, nil
	case "pdf":
		return FormatPDF, nil
	case "csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// Exporter is the interface for all export formats
type Exporter interface {
	Export(data *ExportData, writer io.Writer) error
	GetContentType() string
	GetFileExtension() string
}

// ExportData represents a table to be exported
type ExportData struct {
	Title       string
	Description string
	Author      string
	CreatedAt   time.Time

	Headers []string
	Rows    [][]interface{}

	// CellFills holds an optional hex background per cell, parallel to Rows.
	// An empty string keeps the row style.
	CellFills [][]string

	// Metadata is printed as key/value lines below the table, sorted by key
	Metadata map[string]string

	Style ExportStyle
}

// FillAt returns the fill of a cell or "" when none is set
func (d *ExportData) FillAt(row, col int) string {
	if row >= len(d.CellFills) || col >= len(d.CellFills[row]) {
		return ""
	}
	return d.CellFills[row][col]
}

// ExportStyle defines styling options for exports
type ExportStyle struct {
	// PDF specific
	Orientation string // "portrait" or "landscape"
	PageSize    string // "A4", "Letter", etc.

	HeaderBold    bool
	HeaderBgColor string // Hex color
	AlternateRows bool
	RowBgColor1   string // Hex color for odd rows
	RowBgColor2   string // Hex color for even rows

	FontFamily string
	FontSize   float64

	// Excel specific
	FreezeHeader bool
	AutoFilter   bool
	ColumnWidths map[int]float64 // Column index -> width
}

// DefaultStyle returns default export styling
func DefaultStyle() ExportStyle {
	return ExportStyle{
		Orientation:   "portrait",
		PageSize:      "A4",
		HeaderBold:    true,
		HeaderBgColor: "#4472C4",
		AlternateRows: true,
		RowBgColor1:   "#FFFFFF",
		RowBgColor2:   "#F2F2F2",
		FontFamily:    "Arial",
		FontSize:      10,
		FreezeHeader:  true,
		AutoFilter:    true,
		ColumnWidths:  make(map[int]float64),
	}
}

// TableData is a convenience struct for simple table exports
type TableData struct {
	Headers []string
	Rows    [][]interface{}
}

// ToExportData converts TableData to ExportData with defaults
func (t *TableData) ToExportData(title string) *ExportData {
	return &ExportData{
		Title:     title,
		CreatedAt: time.Now(),
		Headers:   t.Headers,
		Rows:      t.Rows,
		Style:     DefaultStyle(),
	}
}
