package processor

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/joseph-ayodele/ftw-report/constants"
	"github.com/joseph-ayodele/ftw-report/internal/common"
	"github.com/joseph-ayodele/ftw-report/internal/extract"
)

type TextStage struct {
	TextExtractor extract.TextExtractor
	Logger        *slog.Logger
}

func NewTextStage(tx extract.TextExtractor, logger *slog.Logger) *TextStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &TextStage{TextExtractor: tx, Logger: logger}
}

// Run turns an input file into form text. Unsupported extensions are rejected up front.
func (s *TextStage) Run(ctx context.Context, path string) (extract.TextExtractionResult, error) {
	if constants.MapExtToFormat(filepath.Ext(path)) == "" {
		return extract.TextExtractionResult{}, common.NewAppError(common.CodeInvalidInput,
			fmt.Sprintf("formato no soportado: %s", filepath.Ext(path)), common.ErrInvalidInput)
	}

	res, err := s.TextExtractor.Extract(ctx, path)
	if err != nil {
		s.Logger.Error("pipeline.text.failed", "path", path, "error", err)
		return res, fmt.Errorf("extract text: %w", err)
	}
	s.Logger.Info("pipeline.text.ok",
		"path", path,
		"method", res.Method,
		"pages", res.Pages,
		"chars", len(res.Text),
	)
	return res, nil
}
