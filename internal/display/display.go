// Package display renders a report for the terminal.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/joseph-ayodele/ftw-report/internal/report"
)

// Missing is shown in place of empty values.
const Missing = "N/A"

const title = "Informe del Formulario"

// Rows returns label/value pairs with empty values replaced by Missing.
func Rows(r report.Record) [][]string {
	fields := r.Fields()
	rows := make([][]string, 0, len(fields))
	for _, f := range fields {
		v := strings.TrimSpace(f.Value)
		if v == "" {
			v = Missing
		}
		rows = append(rows, []string{f.Label, v})
	}
	return rows
}

// Render writes the report as a two-column table.
func Render(w io.Writer, r report.Record) error {
	if _, err := fmt.Fprintf(w, "%s (%s)\n", title, r.Mode); err != nil {
		return err
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Campo", "Valor"})
	table.SetAutoWrapText(true)
	table.SetColWidth(70)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.AppendBulk(Rows(r))
	table.Render()
	return nil
}
