package export

import (
	"fmt"
	"strings"

	"github.com/joseph-ayodele/ftw-report/internal/report"
)

// Title heads every rendered report.
const Title = "Informe del Formulario"

// Text renders the clipboard block: the title, then one "Label: value" line per field.
func Text(r report.Record) string {
	var b strings.Builder
	b.WriteString(Title)
	for _, f := range r.Fields() {
		b.WriteByte('\n')
		b.WriteString(strings.TrimRight(f.Label+": "+f.Value, " "))
	}
	return b.String()
}

// ParseText reads a block produced by Text back into its fields.
func ParseText(s string) ([]report.Field, error) {
	lines := strings.Split(strings.TrimSpace(strings.ReplaceAll(s, "\r\n", "\n")), "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != Title {
		return nil, fmt.Errorf("parse text: missing %q heading", Title)
	}
	fields := make([]report.Field, 0, len(lines)-1)
	for i, line := range lines[1:] {
		label, value, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("parse text: line %d has no label: %q", i+2, line)
		}
		fields = append(fields, report.Field{
			Label: strings.TrimSpace(label),
			Value: strings.TrimSpace(value),
		})
	}
	return fields, nil
}
