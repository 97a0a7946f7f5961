package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/yigit/schooldash/internal/app/models"
	"github.com/yigit/schooldash/internal/pkg/apperrors"
	"github.com/yigit/schooldash/internal/pkg/logger"
)

const sessionsTable = "dashboard_sessions"

var sessionColumns = []string{
	"id", "token", "user_id", "email", "role", "school_id",
	"flash_kind", "flash_message", "flash_expires_at",
	"created_at", "expires_at",
}

// DBTX is the subset of pgxpool.Pool the store needs.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresStore keeps sessions in the dashboard_sessions table so they survive
// restarts and can be shared by several dashboard instances.
type PostgresStore struct {
	db  DBTX
	sb  squirrel.StatementBuilderType
	now func() time.Time
}

// NewPostgresStore creates a store on top of a pool (or any DBTX).
func NewPostgresStore(db DBTX) *PostgresStore {
	return &PostgresStore{
		db:  db,
		sb:  squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		now: time.Now,
	}
}

// Get loads a session that has not expired.
func (p *PostgresStore) Get(ctx context.Context, id string) (*Session, error) {
	sql, args, err := p.sb.Select(sessionColumns...).
		From(sessionsTable).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Gt{"expires_at": p.now()}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get session SQL")
		return nil, fmt.Errorf("failed to build get session query: %w", err)
	}

	var (
		s                       Session
		role                    string
		schoolID                *string
		flashKind, flashMessage *string
		flashExpiresAt          *time.Time
	)
	err = p.db.QueryRow(ctx, sql, args...).Scan(
		&s.ID, &s.Token, &s.User.ID, &s.User.Email, &role, &schoolID,
		&flashKind, &flashMessage, &flashExpiresAt,
		&s.CreatedAt, &s.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSessionNotFound
		}
		logger.Error().Err(err).Str("sessionID", id).Msg("Error scanning session row")
		return nil, fmt.Errorf("error retrieving session: %w", err)
	}

	s.User.Role = models.RoleType(role)
	s.User.SchoolID = models.Deref(schoolID)
	if flashKind != nil && flashMessage != nil && flashExpiresAt != nil {
		s.Flash = &Flash{Kind: *flashKind, Message: *flashMessage, ExpiresAt: *flashExpiresAt}
	}
	return &s, nil
}

// Save upserts the session.
func (p *PostgresStore) Save(ctx context.Context, s *Session) error {
	sql, args, err := p.saveQuery(s)
	if err != nil {
		logger.Error().Err(err).Msg("Error building save session SQL")
		return fmt.Errorf("failed to build save session query: %w", err)
	}

	if _, err := p.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("sessionID", s.ID).Msg("Error executing save session query")
		return fmt.Errorf("error saving session: %w", err)
	}
	return nil
}

func (p *PostgresStore) saveQuery(s *Session) (string, []interface{}, error) {
	var flashKind, flashMessage *string
	var flashExpiresAt *time.Time
	if s.Flash != nil {
		flashKind, flashMessage, flashExpiresAt = &s.Flash.Kind, &s.Flash.Message, &s.Flash.ExpiresAt
	}
	var schoolID *string
	if s.User.SchoolID != "" {
		schoolID = &s.User.SchoolID
	}

	return p.sb.Insert(sessionsTable).
		Columns(sessionColumns...).
		Values(
			s.ID, s.Token, s.User.ID, s.User.Email, string(s.User.Role), schoolID,
			flashKind, flashMessage, flashExpiresAt,
			s.CreatedAt, s.ExpiresAt,
		).
		Suffix("ON CONFLICT (id) DO UPDATE SET " +
			"token = EXCLUDED.token, user_id = EXCLUDED.user_id, email = EXCLUDED.email, " +
			"role = EXCLUDED.role, school_id = EXCLUDED.school_id, " +
			"flash_kind = EXCLUDED.flash_kind, flash_message = EXCLUDED.flash_message, " +
			"flash_expires_at = EXCLUDED.flash_expires_at, expires_at = EXCLUDED.expires_at").
		ToSql()
}

// Delete removes the session; unknown IDs are ignored.
func (p *PostgresStore) Delete(ctx context.Context, id string) error {
	sql, args, err := p.sb.Delete(sessionsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete session SQL")
		return fmt.Errorf("failed to build delete session query: %w", err)
	}

	if _, err := p.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("sessionID", id).Msg("Error executing delete session query")
		return fmt.Errorf("error deleting session: %w", err)
	}
	return nil
}

// DeleteExpired drops every session expired at now.
func (p *PostgresStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	sql, args, err := p.sb.Delete(sessionsTable).
		Where(squirrel.LtOrEq{"expires_at": now}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build purge sessions query: %w", err)
	}

	tag, err := p.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("error purging sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}
