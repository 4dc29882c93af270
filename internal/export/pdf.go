package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/joseph-ayodele/ftw-report/internal/report"
)

// A4 portrait layout, millimetres.
const (
	pageH       = 297.0
	margin      = 14.0
	tableTop    = 30.0
	cellPad     = 2.0
	lineH       = 5.0
	labelColW   = 50.0
	valueColW   = 132.0
	fontSize    = 10.0
	titleSize   = 18.0
	titleBaseY  = 22.0
	pdfFontName = "Helvetica"
)

var headerFill = [3]int{30, 64, 175}

// pdfRows drops fields without a value.
func pdfRows(r report.Record) []report.Field {
	var rows []report.Field
	for _, f := range r.Fields() {
		if strings.TrimSpace(f.Value) != "" {
			rows = append(rows, f)
		}
	}
	return rows
}

type pdfTable struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

// RenderPDF lays the report out as a titled two-column grid, paginating as needed
// and repeating the header row on every page.
func RenderPDF(r report.Record) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(Title, true)
	pdf.SetCreator("ftw-report", true)
	t := &pdfTable{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}

	pdf.AddPage()
	pdf.SetFont(pdfFontName, "", titleSize)
	pdf.Text(margin, titleBaseY, t.tr(Title))
	pdf.SetY(tableTop)
	t.header()

	for _, f := range pdfRows(r) {
		t.row(f.Label, f.Value, false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf write: %w", err)
	}
	return buf.Bytes(), nil
}

func (t *pdfTable) header() {
	t.row("Campo", "Valor", true)
}

func (t *pdfTable) newPage() {
	t.pdf.AddPage()
	t.pdf.SetY(margin)
	t.header()
}

// row draws one table row. Rows taller than the space left continue on the next
// page; short rows are moved whole.
func (t *pdfTable) row(label, value string, header bool) {
	labelStyle, valueStyle := "B", ""
	if header {
		valueStyle = "B"
	}
	labelLines := t.split(label, labelColW, labelStyle)
	valueLines := t.split(value, valueColW, valueStyle)

	for {
		n := max(len(labelLines), len(valueLines), 1)
		fit := int((pageH - margin - t.pdf.GetY() - 2*cellPad) / lineH)
		if !header && fit < min(n, 3) {
			t.newPage()
			continue
		}
		take := min(n, fit)
		if header {
			take = n
		}
		t.cells(headOf(labelLines, take), headOf(valueLines, take), take, labelStyle, valueStyle, header)
		labelLines, valueLines = tailOf(labelLines, take), tailOf(valueLines, take)
		if len(labelLines) == 0 && len(valueLines) == 0 {
			return
		}
		t.newPage()
	}
}

func (t *pdfTable) cells(labelLines, valueLines []string, n int, labelStyle, valueStyle string, header bool) {
	pdf := t.pdf
	h := float64(n)*lineH + 2*cellPad
	y := pdf.GetY()

	style := "D"
	pdf.SetDrawColor(200, 200, 200)
	if header {
		pdf.SetFillColor(headerFill[0], headerFill[1], headerFill[2])
		pdf.SetTextColor(255, 255, 255)
		style = "FD"
	} else {
		pdf.SetTextColor(0, 0, 0)
	}
	pdf.Rect(margin, y, labelColW, h, style)
	pdf.Rect(margin+labelColW, y, valueColW, h, style)

	pdf.SetFont(pdfFontName, labelStyle, fontSize)
	t.lines(labelLines, margin, y, labelColW)
	pdf.SetFont(pdfFontName, valueStyle, fontSize)
	t.lines(valueLines, margin+labelColW, y, valueColW)

	pdf.SetXY(margin, y+h)
}

func headOf(lines []string, n int) []string {
	if n > len(lines) {
		n = len(lines)
	}
	return lines[:n]
}

func tailOf(lines []string, n int) []string {
	if n > len(lines) {
		n = len(lines)
	}
	return lines[n:]
}

func (t *pdfTable) lines(lines []string, x, y, w float64) {
	for i, line := range lines {
		t.pdf.SetXY(x+cellPad, y+cellPad+float64(i)*lineH)
		t.pdf.CellFormat(w-2*cellPad, lineH, t.tr(line), "", 0, "L", false, 0, "")
	}
}

// split wraps s to the column width in the given style. The core fonts only cover
// Latin-1, so other runes are replaced before measuring.
func (t *pdfTable) split(s string, w float64, style string) []string {
	t.pdf.SetFont(pdfFontName, style, fontSize)
	s = strings.Map(func(r rune) rune {
		if r > 0xFF {
			return '?'
		}
		return r
	}, s)
	return t.pdf.SplitText(s, w-2*cellPad)
}
