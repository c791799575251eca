package export

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// ExcelExporter implements Excel export using excelize
type ExcelExporter struct {
	sheetName string
}

func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{
		sheetName: "Report",
	}
}

// Export writes data as a single-sheet workbook
func (e *ExcelExporter) Export(data *ExportData, writer io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", e.sheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	rowIndex := 1
	if data.Title != "" {
		f.SetCellValue(e.sheetName, cellName(1, rowIndex), data.Title)
		titleStyle, _ := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{
				Bold:   true,
				Size:   14,
				Family: data.Style.FontFamily,
			},
		})
		f.SetCellStyle(e.sheetName, cellName(1, rowIndex), cellName(1, rowIndex), titleStyle)
		rowIndex++

		if data.Description != "" {
			f.SetCellValue(e.sheetName, cellName(1, rowIndex), data.Description)
			rowIndex++
		}
		rowIndex++ // blank row
	}

	headerStyle, err := e.createHeaderStyle(f, data.Style)
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	headerRow := rowIndex
	for colIndex, header := range data.Headers {
		cell := cellName(colIndex+1, rowIndex)
		f.SetCellValue(e.sheetName, cell, header)
		f.SetCellStyle(e.sheetName, cell, cell, headerStyle)

		if width, ok := data.Style.ColumnWidths[colIndex]; ok {
			colName := columnNumberToName(colIndex + 1)
			f.SetColWidth(e.sheetName, colName, colName, width)
		}
	}
	rowIndex++

	rowColors := []string{data.Style.RowBgColor1, data.Style.RowBgColor1}
	if data.Style.AlternateRows {
		rowColors[1] = data.Style.RowBgColor2
	}

	// one style per distinct background
	styles := map[string]int{}
	styleFor := func(bg string) (int, error) {
		if id, ok := styles[bg]; ok {
			return id, nil
		}
		id, err := e.createRowStyle(f, data.Style, bg)
		if err != nil {
			return 0, err
		}
		styles[bg] = id
		return id, nil
	}

	for rowIdx, row := range data.Rows {
		for colIndex, value := range row {
			cell := cellName(colIndex+1, rowIndex)
			f.SetCellValue(e.sheetName, cell, value)

			bg := data.FillAt(rowIdx, colIndex)
			if bg == "" {
				bg = rowColors[rowIdx%2]
			}
			style, err := styleFor(bg)
			if err != nil {
				return fmt.Errorf("failed to create cell style: %w", err)
			}
			f.SetCellStyle(e.sheetName, cell, cell, style)
		}
		rowIndex++
	}

	if data.Style.FreezeHeader {
		f.SetPanes(e.sheetName, &excelize.Panes{
			Freeze:      true,
			XSplit:      0,
			YSplit:      headerRow,
			TopLeftCell: cellName(1, headerRow+1),
			ActivePane:  "bottomLeft",
		})
	}

	if data.Style.AutoFilter && len(data.Headers) > 0 {
		lastRow := headerRow + len(data.Rows)
		ref := fmt.Sprintf("%s:%s", cellName(1, headerRow), cellName(len(data.Headers), lastRow))
		f.AutoFilter(e.sheetName, ref, nil)
	}

	if len(data.Metadata) > 0 {
		rowIndex++
		for _, key := range sortedKeys(data.Metadata) {
			f.SetCellValue(e.sheetName, cellName(1, rowIndex), key)
			f.SetCellValue(e.sheetName, cellName(2, rowIndex), data.Metadata[key])
			rowIndex++
		}
	}

	if err := f.Write(writer); err != nil {
		return fmt.Errorf("failed to write Excel file: %w", err)
	}

	return nil
}

func (e *ExcelExporter) GetContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (e *ExcelExporter) GetFileExtension() string {
	return ".xlsx"
}

func (e *ExcelExporter) createHeaderStyle(f *excelize.File, style ExportStyle) (int, error) {
	headerStyle := &excelize.Style{
		Font: &excelize.Font{
			Bold:   style.HeaderBold,
			Size:   style.FontSize,
			Family: style.FontFamily,
			Color:  "FFFFFF",
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Pattern: 1,
			Color:   []string{stripHashFromColor(style.HeaderBgColor)},
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	}

	return f.NewStyle(headerStyle)
}

// createRowStyle creates a cell style with the given background; white means no fill
func (e *ExcelExporter) createRowStyle(f *excelize.File, style ExportStyle, bgColor string) (int, error) {
	rowStyle := &excelize.Style{
		Font: &excelize.Font{
			Size:   style.FontSize,
			Family: style.FontFamily,
		},
	}

	if bgColor != "" && bgColor != "#FFFFFF" {
		rowStyle.Fill = excelize.Fill{
			Type:    "pattern",
			Pattern: 1,
			Color:   []string{stripHashFromColor(bgColor)},
		}
	}

	return f.NewStyle(rowStyle)
}

func cellName(col, row int) string {
	return columnNumberToName(col) + strconv.Itoa(row)
}

// columnNumberToName converts column number to Excel column name (1 -> A, 27 -> AA)
func columnNumberToName(col int) string {
	name := ""
	for col > 0 {
		col--
		name = string(rune('A'+(col%26))) + name
		col /= 26
	}
	return name
}

func stripHashFromColor(color string) string {
	if len(color) > 0 && color[0] == '#' {
		return color[1:]
	}
	return color
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
