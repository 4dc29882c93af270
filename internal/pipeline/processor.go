package processor

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/ftw-report/internal/common"
	"github.com/joseph-ayodele/ftw-report/internal/report"
	"github.com/joseph-ayodele/ftw-report/internal/repository"
)

// Processor coordinates text extraction, the oracle call and report assembly.
// Sessions is optional; when set, every successful analysis replaces the current report.
type Processor struct {
	Logger   *slog.Logger
	Text     *TextStage
	Parse    *ParseStage
	Sessions repository.SessionRepository
}

func NewProcessor(logger *slog.Logger, text *TextStage, parse *ParseStage, sessions repository.SessionRepository) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, Text: text, Parse: parse, Sessions: sessions}
}

// Analyze turns form text into a report. Any failure yields the single
// processing-failed error and no record.
func (p *Processor) Analyze(ctx context.Context, text string) (report.Record, error) {
	return p.analyze(ctx, text, "")
}

// AnalyzeFile extracts the text of path and analyzes it.
func (p *Processor) AnalyzeFile(ctx context.Context, path string) (report.Record, error) {
	ctx = common.WithSource(ctx, path)
	res, err := p.Text.Run(ctx, path)
	if err != nil {
		return report.Record{}, err
	}
	return p.analyze(ctx, res.Text, path)
}

func (p *Processor) analyze(ctx context.Context, text, source string) (report.Record, error) {
	reqID := uuid.New()
	ctx = common.WithRequestID(ctx, reqID.String())
	start := time.Now()

	rec, err := p.Parse.Run(ctx, text)
	if err != nil {
		p.Logger.Error("pipeline.analyze.failed",
			"req_id", reqID,
			"source", source,
			"error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return report.Record{}, common.ProcessingFailed(err)
	}

	if p.Sessions != nil {
		if err := p.Sessions.Save(ctx, repository.Session{
			RequestID: reqID,
			Source:    source,
			Strategy:  string(p.Parse.Strategy),
			Record:    rec,
		}); err != nil {
			p.Logger.Error("pipeline.analyze.save_failed", "req_id", reqID, "error", err)
			return report.Record{}, common.WrapError(err, "save session")
		}
	}

	p.Logger.Info("pipeline.analyze.ok",
		"req_id", reqID,
		"source", source,
		"mode", rec.Mode,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return rec, nil
}
