package session

import (
	"context"
	"time"

	"github.com/yigit/schooldash/internal/app/models"
)

// Flash kinds
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// Flash is a transient banner message that disappears once ExpiresAt passes.
type Flash struct {
	Kind      string
	Message   string
	ExpiresAt time.Time
}

// Active reports whether the flash should still be shown at now.
func (f *Flash) Active(now time.Time) bool {
	return f != nil && now.Before(f.ExpiresAt)
}

// Remaining is how long the flash stays visible after now.
func (f *Flash) Remaining(now time.Time) time.Duration {
	if !f.Active(now) {
		return 0
	}
	return f.ExpiresAt.Sub(now)
}

// Session is the server-side state behind one browser cookie: the bearer token the
// API issued and the account it belongs to.
type Session struct {
	ID        string
	Token     string
	User      models.User
	Flash     *Flash
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session is past its expiry at now.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Store persists sessions by ID. Get returns apperrors.ErrSessionNotFound for unknown
// or expired sessions.
type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
}

// Purger is implemented by stores that can drop expired sessions in bulk.
type Purger interface {
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
