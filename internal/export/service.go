package export

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joseph-ayodele/ftw-report/internal/report"
)

// Formats accepted by Service.Export.
const (
	FormatPDF  = "pdf"
	FormatXLSX = "xlsx"
)

// Service copies and exports the current report.
type Service struct {
	clipboard Clipboard
	logger    *slog.Logger
}

func NewService(cb Clipboard, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if cb == nil {
		cb = SystemClipboard{}
	}
	return &Service{clipboard: cb, logger: logger}
}

// Copy writes the report text to the clipboard and returns it.
func (s *Service) Copy(r report.Record) (string, error) {
	text := Text(r)
	if err := s.clipboard.WriteAll(text); err != nil {
		s.logger.Error("export.copy.failed", "error", err)
		return text, fmt.Errorf("copy: %w", err)
	}
	s.logger.Info("export.copy.ok", "bytes", len(text))
	return text, nil
}

// FileName returns the export file name for format.
func FileName(r report.Record, format string) string {
	return r.FileStem() + "." + format
}

// Export renders r as format into dir and returns the written path.
func (s *Service) Export(r report.Record, format, dir string) (string, error) {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatPDF:
		data, err = RenderPDF(r)
	case FormatXLSX:
		data, err = RenderXLSX(r)
	default:
		return "", fmt.Errorf("unsupported export format %q", format)
	}
	if err != nil {
		return "", err
	}

	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(dir, FileName(r, format))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", format, err)
	}
	s.logger.Info("export.write.ok", "format", format, "path", path, "bytes", len(data))
	return path, nil
}
