package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/ftw-report/constants"
	"github.com/joseph-ayodele/ftw-report/internal/common"
	"github.com/joseph-ayodele/ftw-report/internal/report"
)

func openTestDB(t *testing.T) SessionRepository {
	t.Helper()
	ctx := context.Background()
	db, err := Open(ctx, Config{Path: filepath.Join(t.TempDir(), "nested", "session.db")}, nil)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { Close(db, nil) })
	if err := HealthCheck(ctx, db, 0, nil); err != nil {
		t.Fatalf("HealthCheck() error = %v", err)
	}
	return NewSessionRepository(db, nil)
}

func TestSessionRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := openTestDB(t)

	if _, err := repo.Current(ctx); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("Current() on empty store error = %v, want ErrNotFound", err)
	}

	replaced := "LOPEZ MARIA, LICENCIA"
	first := Session{
		RequestID: uuid.New(),
		Source:    "ftw-1.pdf",
		Strategy:  "rules",
		Record: report.Record{
			Mode:           constants.ModeAppointment,
			ExpedienteID:   "E.E. - 1",
			FullName:       "GOMEZ ANA",
			ReplacedPerson: &replaced,
		},
	}
	if err := repo.Save(ctx, first); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	reason := "RENUNCIA"
	second := Session{
		Source: "ftw-2.pdf",
		Record: report.Record{
			Mode:            constants.ModeCessation,
			ExpedienteID:    "E.E. - 2",
			FullName:        "PEREZ JUAN",
			CessationReason: &reason,
		},
	}
	if err := repo.Save(ctx, second); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := repo.Current(ctx)
	if err != nil {
		t.Fatalf("Current() error = %v", err)
	}
	if got.Source != "ftw-2.pdf" || got.Record.ExpedienteID != "E.E. - 2" {
		t.Fatalf("Current() = %+v, want the second session", got)
	}
	if got.Record.ReplacedPerson != nil || got.Record.CessationReason == nil || *got.Record.CessationReason != "RENUNCIA" {
		t.Fatalf("record optionals not replaced wholesale: %+v", got.Record)
	}
	if got.RequestID == uuid.Nil || got.CreatedAt.IsZero() {
		t.Fatalf("defaults not filled: %+v", got)
	}

	if err := repo.Reset(ctx); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if _, err := repo.Current(ctx); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("Current() after Reset error = %v, want ErrNotFound", err)
	}
}
