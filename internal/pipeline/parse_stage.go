package processor

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joseph-ayodele/ftw-report/internal/common"
	"github.com/joseph-ayodele/ftw-report/internal/llm"
	"github.com/joseph-ayodele/ftw-report/internal/report"
)

type ParseStage struct {
	Logger    *slog.Logger
	Strategy  llm.Strategy
	Timeout   time.Duration
	Extractor llm.FieldExtractor
	Assembler *report.Assembler
}

func NewParseStage(logger *slog.Logger, strategy llm.Strategy, timeout time.Duration, fe llm.FieldExtractor, asm *report.Assembler) *ParseStage {
	if logger == nil {
		logger = slog.Default()
	}
	if strategy != llm.StrategyDirective {
		strategy = llm.StrategyRules
	}
	return &ParseStage{
		Logger:    logger,
		Strategy:  strategy,
		Timeout:   timeout,
		Extractor: fe,
		Assembler: asm,
	}
}

// Run sends the form text to the oracle once and assembles the report from its answer.
func (p *ParseStage) Run(ctx context.Context, text string) (report.Record, error) {
	if strings.TrimSpace(text) == "" {
		return report.Record{}, fmt.Errorf("empty document text: %w", common.ErrInvalidInput)
	}

	req := llm.BuildExtractRequest(text, p.Strategy)
	p.Logger.Info("pipeline.parse.start",
		"req_id", common.RequestIDFromContext(ctx),
		"source", common.SourceFromContext(ctx),
		"strategy", req.Strategy,
		"schema", req.SchemaName,
		"text_len", len(text),
	)

	callCtx, cancel := common.WithTimeout(ctx, p.Timeout)
	defer cancel()
	raw, err := p.Extractor.ExtractFields(callCtx, req)
	if err != nil {
		return report.Record{}, fmt.Errorf("oracle: %w", err)
	}

	var rec report.Record
	if req.Strategy == llm.StrategyDirective {
		rec, err = p.Assembler.Assemble(raw)
	} else {
		rec, err = p.Assembler.AssembleSource(raw)
	}
	if err != nil {
		return report.Record{}, err
	}

	p.Logger.Info("pipeline.parse.ok",
		"req_id", common.RequestIDFromContext(ctx),
		"mode", rec.Mode,
		"expediente", rec.ExpedienteID,
		"review_status", rec.ReviewStatus,
	)
	return rec, nil
}
