package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/ftw-report/internal/report"
)

// SheetName is the worksheet holding the report.
const SheetName = "Informe"

// RenderXLSX returns a workbook with one Campo/Valor sheet, same rows as the PDF.
func RenderXLSX(r report.Record) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("xlsx sheet: %w", err)
	}

	headStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"1E40AF"}},
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx style: %w", err)
	}
	labelStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsx style: %w", err)
	}
	wrapStyle, err := f.NewStyle(&excelize.Style{Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"}})
	if err != nil {
		return nil, fmt.Errorf("xlsx style: %w", err)
	}

	_ = f.SetCellValue(SheetName, "A1", "Campo")
	_ = f.SetCellValue(SheetName, "B1", "Valor")
	_ = f.SetCellStyle(SheetName, "A1", "B1", headStyle)

	row := 2
	for _, fld := range pdfRows(r) {
		a, _ := excelize.CoordinatesToCellName(1, row)
		b, _ := excelize.CoordinatesToCellName(2, row)
		_ = f.SetCellValue(SheetName, a, fld.Label)
		_ = f.SetCellValue(SheetName, b, fld.Value)
		_ = f.SetCellStyle(SheetName, a, a, labelStyle)
		_ = f.SetCellStyle(SheetName, b, b, wrapStyle)
		row++
	}

	_ = f.SetColWidth(SheetName, "A", "A", 24)
	_ = f.SetColWidth(SheetName, "B", "B", 80)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}
