package main

import (
	"context"
	"fmt"
	"time"

	"github.com/joseph-ayodele/ftw-report/internal/extract"
	"github.com/joseph-ayodele/ftw-report/internal/ocr"
	"github.com/joseph-ayodele/ftw-report/internal/report"
	"github.com/joseph-ayodele/ftw-report/internal/repository"
)

func newTextExtractor() extract.TextExtractor {
	x := ocr.NewExtractor(ocr.Config{
		Pdftotext:     cfg.OCR.Pdftotext,
		Pdftoppm:      cfg.OCR.Pdftoppm,
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.TesseractLang,
		TessdataDir:   cfg.OCR.TessdataDir,
		DPI:           cfg.OCR.DPI,
	}, logger)
	return extract.NewOCRAdapter(x, logger)
}

func organization() report.Organization {
	return report.Organization{
		Establishment: cfg.Organization.Establishment,
		Phone:         cfg.Organization.Phone,
		Delegation:    cfg.Organization.Delegation,
		Division:      cfg.Organization.Division,
	}
}

// openSessions opens the session store; call the returned func when done.
func openSessions(ctx context.Context) (repository.SessionRepository, func(), error) {
	db, err := repository.Open(ctx, repository.Config{Path: cfg.Session.Path}, logger)
	if err != nil {
		return nil, nil, err
	}
	if err := repository.HealthCheck(ctx, db, 5*time.Second, logger); err != nil {
		repository.Close(db, logger)
		return nil, nil, fmt.Errorf("session store health check: %w", err)
	}
	return repository.NewSessionRepository(db, logger), func() { repository.Close(db, logger) }, nil
}

// currentRecord loads the report held in the session store.
func currentRecord(ctx context.Context) (report.Record, error) {
	sessions, closeFn, err := openSessions(ctx)
	if err != nil {
		return report.Record{}, err
	}
	defer closeFn()

	s, err := sessions.Current(ctx)
	if err != nil {
		return report.Record{}, err
	}
	return s.Record, nil
}
