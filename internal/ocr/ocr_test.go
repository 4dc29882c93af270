package ocr

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-pdf/fpdf"
	"github.com/joseph-ayodele/ftw-report/constants"
)

type fakeRunner struct {
	outputs map[string]string
	fail    map[string]bool
	calls   []string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.calls = append(f.calls, name)
	if f.fail[name] {
		return nil, []byte(name + " failed"), errors.New("exit status 1")
	}
	if name == "pdftoppm" {
		prefix := args[len(args)-1]
		for _, n := range []string{"-1.png", "-2.png"} {
			if err := os.WriteFile(prefix+n, []byte("png"), 0o600); err != nil {
				return nil, nil, err
			}
		}
	}
	return []byte(f.outputs[name]), nil, nil
}

const formText = `MINISTERIO DE EDUCACION
4. TOMA DE POSESION     Numero de Expediente: E.E. - 34142629 - 2025 - ESC200866
DOCENTE PROPUESTO   CUIL: 27-30111222-4`

func writePDF(t *testing.T, pages int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ftw.pdf")
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 12)
	for i := 0; i < pages; i++ {
		pdf.AddPage()
		pdf.Cell(40, 10, "FTW")
	}
	if err := pdf.OutputFileAndClose(path); err != nil {
		t.Fatalf("OutputFileAndClose() error = %v", err)
	}
	return path
}

func TestExtract_Text(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ftw.txt")
	if err := os.WriteFile(path, []byte("linea\t1   con  espacios\r\n\n\n\nlinea 2  "), 0o600); err != nil {
		t.Fatal(err)
	}
	res, err := NewExtractor(Config{}, nil).Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if res.Text != "linea 1 con espacios\n\nlinea 2" {
		t.Fatalf("Text = %q", res.Text)
	}
	if res.SourceType != constants.TXT || res.Method != "text" {
		t.Fatalf("SourceType/Method = %s/%s", res.SourceType, res.Method)
	}
}

func TestExtract_PDFTextLayer(t *testing.T) {
	path := writePDF(t, 2)
	fr := &fakeRunner{outputs: map[string]string{"pdftotext": formText + "\f"}}

	res, err := NewExtractor(Config{}, nil).WithRunner(fr).Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if res.Method != "pdf-text" {
		t.Fatalf("Method = %q", res.Method)
	}
	if res.Pages != 2 {
		t.Fatalf("Pages = %d, want 2", res.Pages)
	}
	if len(res.Warnings) != 0 {
		t.Fatalf("Warnings = %v", res.Warnings)
	}
	if !strings.Contains(res.Text, "E.E. - 34142629 - 2025 - ESC200866") {
		t.Fatalf("Text = %q", res.Text)
	}
}

func TestExtract_PDFFallsBackToOCR(t *testing.T) {
	path := writePDF(t, 1)
	fr := &fakeRunner{outputs: map[string]string{
		"pdftotext": "  ",
		"tesseract": formText + "\n-----\n",
	}}

	res, err := NewExtractor(Config{}, nil).WithRunner(fr).Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if res.Method != "pdf-ocr" {
		t.Fatalf("Method = %q", res.Method)
	}
	if strings.Contains(res.Text, "-----") {
		t.Fatalf("box noise not removed: %q", res.Text)
	}
	if strings.Count(res.Text, "DOCENTE PROPUESTO") != 2 {
		t.Fatalf("expected text from both rendered pages: %q", res.Text)
	}
	var pageWarn bool
	for _, w := range res.Warnings {
		if strings.Contains(w, "expected 2 pages, got 1") {
			pageWarn = true
		}
	}
	if !pageWarn {
		t.Fatalf("Warnings = %v, want page-count warning", res.Warnings)
	}
}

func TestExtract_Image(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ftw.png")
	fr := &fakeRunner{outputs: map[string]string{"tesseract": formText}}

	res, err := NewExtractor(Config{TesseractLang: "spa+eng"}, nil).WithRunner(fr).Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if res.Method != "image-ocr" || res.Language != "spa+eng" {
		t.Fatalf("Method/Language = %s/%s", res.Method, res.Language)
	}
}

func TestExtract_ImageTesseractFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ftw.jpg")
	fr := &fakeRunner{fail: map[string]bool{"tesseract": true}}

	_, err := NewExtractor(Config{}, nil).WithRunner(fr).Extract(context.Background(), path)
	if err == nil || !strings.Contains(err.Error(), "tesseract") {
		t.Fatalf("Extract() error = %v", err)
	}
}

func TestExtract_Unsupported(t *testing.T) {
	if _, err := NewExtractor(Config{}, nil).Extract(context.Background(), "form.docx"); err == nil {
		t.Fatal("expected unsupported extension error")
	}
}

func TestNormalize_KeepsDigits(t *testing.T) {
	in := "CUIL:  20-01234567-8\nFECHA 01/03/2025"
	if got := Normalize(in); got != "CUIL: 20-01234567-8\nFECHA 01/03/2025" {
		t.Fatalf("Normalize() = %q", got)
	}
}
