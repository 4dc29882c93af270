package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/ftw-report/internal/common"
	"github.com/joseph-ayodele/ftw-report/internal/report"
)

// Session is the report currently held for the user.
type Session struct {
	RequestID uuid.UUID
	Source    string
	Strategy  string
	Record    report.Record
	CreatedAt time.Time
}

// SessionRepository holds at most one report; Save replaces it wholesale.
type SessionRepository interface {
	Save(ctx context.Context, s Session) error
	Current(ctx context.Context) (Session, error)
	Reset(ctx context.Context) error
}

type sessionRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewSessionRepository(db *sql.DB, logger *slog.Logger) SessionRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &sessionRepository{db: db, logger: logger}
}

func (r *sessionRepository) Save(ctx context.Context, s Session) error {
	body, err := json.Marshal(s.Record)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	if s.RequestID == uuid.Nil {
		s.RequestID = uuid.New()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO current_report (id, request_id, source, strategy, record_json, created_at)
		VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			request_id = excluded.request_id,
			source = excluded.source,
			strategy = excluded.strategy,
			record_json = excluded.record_json,
			created_at = excluded.created_at`,
		s.RequestID.String(), s.Source, s.Strategy, string(body), s.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		r.logger.Error("session.save.failed", "request_id", s.RequestID, "error", err)
		return fmt.Errorf("save session: %w", err)
	}
	r.logger.Debug("session.save.ok", "request_id", s.RequestID, "mode", s.Record.Mode)
	return nil
}

func (r *sessionRepository) Current(ctx context.Context) (Session, error) {
	var (
		s                          Session
		reqID, body, createdAtText string
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT request_id, source, strategy, record_json, created_at FROM current_report WHERE id = 1`,
	).Scan(&reqID, &s.Source, &s.Strategy, &body, &createdAtText)
	if errors.Is(err, sql.ErrNoRows) {
		return Session{}, common.ErrNotFound
	}
	if err != nil {
		return Session{}, fmt.Errorf("load session: %w", err)
	}

	if s.RequestID, err = uuid.Parse(reqID); err != nil {
		return Session{}, fmt.Errorf("parse request id: %w", err)
	}
	if s.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAtText); err != nil {
		return Session{}, fmt.Errorf("parse created_at: %w", err)
	}
	if err := json.Unmarshal([]byte(body), &s.Record); err != nil {
		return Session{}, fmt.Errorf("decode record: %w", err)
	}
	return s, nil
}

func (r *sessionRepository) Reset(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM current_report`); err != nil {
		return fmt.Errorf("reset session: %w", err)
	}
	r.logger.Debug("session.reset.ok")
	return nil
}
