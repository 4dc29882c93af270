package export

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/ftw-report/constants"
	"github.com/joseph-ayodele/ftw-report/internal/report"
)

func appointmentRecord() report.Record {
	replaced := "LOPEZ MARIA, 27-11111111-4, LICENCIA"
	return report.Record{
		Mode:                constants.ModeAppointment,
		ExpedienteID:        "E.E. - 34142629 - 2025 - ESC200866",
		Establishment:       "E.N.S. 2 EN L.VIVAS M. ACOSTA",
		Phone:               "49317981",
		Delegation:          "III",
		Division:            "3511",
		TaxID:               "27-30111222-4",
		Role:                "No se consigna rol por error de integracion",
		FullName:            "GOMEZ ANA LAURA",
		ReviewStatus:        "4",
		EffectiveDate:       "03/03/2025",
		PositionDescription: "PROFESOR DE EDUCACIÓN MEDIA, EDUCACIÓN TECNOLÓGICA, 2.00 hs, 2° 1° Turno Tarde",
		ReplacedPerson:      &replaced,
	}
}

func cessationRecord() report.Record {
	r := appointmentRecord()
	reason := "Presentación reemplazado"
	r.Mode = constants.ModeCessation
	r.ReplacedPerson = nil
	r.CessationReason = &reason
	r.EffectiveDate = "30/06/2025"
	return r
}

func TestText_ModeLabels(t *testing.T) {
	app := Text(appointmentRecord())
	if !strings.HasPrefix(app, "Informe del Formulario\nNº de Expediente: E.E. - 34142629 - 2025 - ESC200866\n") {
		t.Fatalf("unexpected heading:\n%s", app)
	}
	if !strings.Contains(app, "\nFecha de alta: 03/03/2025\n") || !strings.HasSuffix(app, "\nReemplaza a: LOPEZ MARIA, 27-11111111-4, LICENCIA") {
		t.Fatalf("appointment labels wrong:\n%s", app)
	}

	ces := Text(cessationRecord())
	if !strings.Contains(ces, "\nFecha de Cese: 30/06/2025\n") || !strings.HasSuffix(ces, "\nMotivo de Cese: Presentación reemplazado") {
		t.Fatalf("cessation labels wrong:\n%s", ces)
	}
}

func TestText_RoundTrip(t *testing.T) {
	for _, rec := range []report.Record{appointmentRecord(), cessationRecord()} {
		fields, err := ParseText(Text(rec))
		if err != nil {
			t.Fatalf("ParseText() error = %v", err)
		}
		want := rec.Fields()
		if len(fields) != len(want) {
			t.Fatalf("ParseText() = %d fields, want %d", len(fields), len(want))
		}
		for i := range want {
			if fields[i] != want[i] {
				t.Errorf("field %d = %+v, want %+v", i, fields[i], want[i])
			}
		}
	}
}

func TestParseText_Rejects(t *testing.T) {
	if _, err := ParseText("Otro texto\nCUIL: 1"); err == nil {
		t.Fatal("expected error for missing heading")
	}
	if _, err := ParseText("Informe del Formulario\nsin separador"); err == nil {
		t.Fatal("expected error for unlabelled line")
	}
}

type recordingClipboard struct {
	text string
	err  error
}

func (c *recordingClipboard) WriteAll(text string) error {
	c.text = text
	return c.err
}

func TestService_Copy(t *testing.T) {
	cb := &recordingClipboard{}
	text, err := NewService(cb, nil).Copy(appointmentRecord())
	if err != nil {
		t.Fatalf("Copy() error = %v", err)
	}
	if cb.text != text || !strings.HasPrefix(text, Title) {
		t.Fatalf("clipboard = %q", cb.text)
	}

	cb = &recordingClipboard{err: ErrClipboardUnavailable}
	if _, err := NewService(cb, nil).Copy(appointmentRecord()); !errors.Is(err, ErrClipboardUnavailable) {
		t.Fatalf("Copy() error = %v", err)
	}
}

func TestPDFRows_OmitsEmpty(t *testing.T) {
	rec := appointmentRecord()
	rec.Phone = ""
	empty := ""
	rec.ReplacedPerson = &empty

	rows := pdfRows(rec)
	if len(rows) != 10 {
		t.Fatalf("rows = %d, want 10", len(rows))
	}
	for _, r := range rows {
		if r.Label == report.LabelPhone || r.Label == report.LabelReplacedPerson {
			t.Errorf("empty row %q kept", r.Label)
		}
	}
}

func TestRenderPDF(t *testing.T) {
	b, err := RenderPDF(appointmentRecord())
	if err != nil {
		t.Fatalf("RenderPDF() error = %v", err)
	}
	n, err := api.PageCount(bytes.NewReader(b), nil)
	if err != nil {
		t.Fatalf("PageCount() error = %v", err)
	}
	if n != 1 {
		t.Fatalf("pages = %d, want 1", n)
	}
}

func TestRenderPDF_Paginates(t *testing.T) {
	rec := cessationRecord()
	long := strings.Repeat("MOTIVO EXTENSO DEL CESE ", 600)
	rec.CessationReason = &long
	rec.PositionDescription = "CARGO 中文 ✓"

	b, err := RenderPDF(rec)
	if err != nil {
		t.Fatalf("RenderPDF() error = %v", err)
	}
	n, err := api.PageCount(bytes.NewReader(b), nil)
	if err != nil {
		t.Fatalf("PageCount() error = %v", err)
	}
	if n < 2 {
		t.Fatalf("pages = %d, want a multi-page document", n)
	}
}

func TestRenderXLSX(t *testing.T) {
	b, err := RenderXLSX(cessationRecord())
	if err != nil {
		t.Fatalf("RenderXLSX() error = %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}
	if len(rows) != 13 {
		t.Fatalf("rows = %d, want header + 12", len(rows))
	}
	if rows[0][0] != "Campo" || rows[0][1] != "Valor" {
		t.Errorf("header = %v", rows[0])
	}
	last := rows[len(rows)-1]
	if last[0] != "Motivo de Cese" || last[1] != "Presentación reemplazado" {
		t.Errorf("last row = %v", last)
	}
}

func TestService_Export(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	svc := NewService(&recordingClipboard{}, nil)

	for _, format := range []string{FormatPDF, FormatXLSX} {
		path, err := svc.Export(appointmentRecord(), format, dir)
		if err != nil {
			t.Fatalf("Export(%s) error = %v", format, err)
		}
		if filepath.Base(path) != "Informe-GOMEZ_ANA_LAURA-27-30111222-4."+format {
			t.Errorf("Export(%s) path = %q", format, path)
		}
		if st, err := os.Stat(path); err != nil || st.Size() == 0 {
			t.Errorf("Export(%s) wrote nothing: %v", format, err)
		}
	}

	if _, err := svc.Export(appointmentRecord(), "docx", dir); err == nil {
		t.Fatal("expected unsupported format error")
	}
}
