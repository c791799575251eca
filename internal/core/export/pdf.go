package export

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/jung-kurt/gofpdf"
)

var ErrNoHeaders = errors.New("no headers provided")

// PDFExporter implements PDF export using gofpdf
type PDFExporter struct {
	orientation string
	pageSize    string
}

func NewPDFExporter() *PDFExporter {
	return &PDFExporter{
		orientation: "P",
		pageSize:    "A4",
	}
}

// Export renders data as a single table document
func (p *PDFExporter) Export(data *ExportData, writer io.Writer) error {
	if len(data.Headers) == 0 {
		return ErrNoHeaders
	}

	orientation := p.orientation
	if data.Style.Orientation == "landscape" {
		orientation = "L"
	}

	pageSize := data.Style.PageSize
	if pageSize == "" {
		pageSize = p.pageSize
	}

	fontSize := data.Style.FontSize
	if fontSize == 0 {
		fontSize = 10
	}

	// core fonts only; custom families fall back to Arial
	const fontFamily = "Arial"

	pdf := gofpdf.New(orientation, "mm", pageSize, "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(false, 15)
	pdf.AddPage()
	pdf.SetFont(fontFamily, "", fontSize)

	if data.Title != "" {
		pdf.SetFont(fontFamily, "B", 16)
		pdf.Cell(0, 10, tr(data.Title))
		pdf.Ln(12)
	}

	if data.Description != "" {
		pdf.SetFont(fontFamily, "", fontSize)
		pdf.MultiCell(0, 5, tr(data.Description), "", "", false)
		pdf.Ln(8)
	}

	if !data.CreatedAt.IsZero() {
		pdf.SetFont(fontFamily, "I", 8)
		line := fmt.Sprintf("Generated: %s", data.CreatedAt.Format("2006-01-02 15:04:05"))
		if data.Author != "" {
			line += fmt.Sprintf(" | Author: %s", data.Author)
		}
		pdf.Cell(0, 5, tr(line))
		pdf.Ln(10)
	}

	pageWidth, pageHeight := pdf.GetPageSize()
	leftMargin, _, rightMargin, bottomMargin := pdf.GetMargins()
	colWidth := (pageWidth - leftMargin - rightMargin) / float64(len(data.Headers))

	drawHeader := func() {
		pdf.SetFont(fontFamily, "B", fontSize)
		fill := data.Style.HeaderBgColor != ""
		if fill {
			r, g, b := hexToRGB(data.Style.HeaderBgColor)
			pdf.SetFillColor(r, g, b)
			pdf.SetTextColor(255, 255, 255)
		}
		for _, header := range data.Headers {
			pdf.CellFormat(colWidth, 7, tr(header), "1", 0, "C", fill, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont(fontFamily, "", fontSize)
	}

	drawHeader()

	for rowIdx, row := range data.Rows {
		if pdf.GetY()+6 > pageHeight-bottomMargin {
			pdf.AddPage()
			drawHeader()
		}

		rowBg := data.Style.RowBgColor1
		if data.Style.AlternateRows && rowIdx%2 == 1 {
			rowBg = data.Style.RowBgColor2
		}

		for colIdx, value := range row {
			bg := data.FillAt(rowIdx, colIdx)
			if bg == "" {
				bg = rowBg
			}
			fill := bg != ""
			if fill {
				r, g, b := hexToRGB(bg)
				pdf.SetFillColor(r, g, b)
			}

			align := "R"
			if colIdx == 0 {
				align = "L"
			}
			pdf.CellFormat(colWidth, 6, tr(fmt.Sprintf("%v", value)), "1", 0, align, fill, 0, "")
		}
		pdf.Ln(-1)
	}

	if len(data.Metadata) > 0 {
		pdf.Ln(4)
		pdf.SetFont(fontFamily, "I", 8)
		for _, key := range sortedKeys(data.Metadata) {
			pdf.Cell(0, 4, tr(fmt.Sprintf("%s: %s", key, data.Metadata[key])))
			pdf.Ln(4)
		}
	}

	if err := pdf.Output(writer); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}

	return nil
}

func (p *PDFExporter) GetContentType() string {
	return "application/pdf"
}

func (p *PDFExporter) GetFileExtension() string {
	return ".pdf"
}

// hexToRGB converts "#RRGGBB" to RGB values; anything else is white
func hexToRGB(hex string) (int, int, int) {
	hex = stripHashFromColor(hex)
	if len(hex) != 6 {
		return 255, 255, 255
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 255, 255, 255
	}
	return int(v>>16&0xFF), int(v>>8&0xFF), int(v&0xFF)
}
