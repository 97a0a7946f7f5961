package session

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/schooldash/internal/apiclient"
	"github.com/yigit/schooldash/internal/pkg/apperrors"
	"github.com/yigit/schooldash/internal/pkg/auth"
	"github.com/yigit/schooldash/internal/pkg/logger"
)

const (
	contextKey = "session"
	userIDKey  = "userID"
)

// Options configures a Manager.
type Options struct {
	CookieName string
	TTL        time.Duration
	FlashTTL   time.Duration
	Secure     bool
}

// Manager owns the session lifecycle: login, per-request loading, flashes and logout.
// Handlers reach the session only through the Manager and the gin context.
type Manager struct {
	store Store
	api   *apiclient.Client
	opts  Options
	log   zerolog.Logger
	now   func() time.Time
}

// NewManager creates a manager. api is the unauthenticated base client.
func NewManager(store Store, api *apiclient.Client, opts Options) *Manager {
	return &Manager{
		store: store,
		api:   api,
		opts:  opts,
		log:   logger.Component("session"),
		now:   time.Now,
	}
}

// Login authenticates against the API, persists a new session and sets its cookie.
func (m *Manager) Login(c *gin.Context, email, password string) (*Session, error) {
	resp, err := m.api.Login(c.Request.Context(), email, password)
	if err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, apperrors.ErrTokenInvalid
	}

	now := m.now()
	s := &Session{
		ID:        uuid.NewString(),
		Token:     resp.Token,
		User:      resp.User,
		CreatedAt: now,
		ExpiresAt: m.expiry(resp.Token, now),
	}
	if err := m.store.Save(c.Request.Context(), s); err != nil {
		return nil, err
	}

	m.setCookie(c, s.ID, s.ExpiresAt.Sub(now))
	Attach(c, s)
	m.log.Info().Str("userID", s.User.ID).Str("role", string(s.User.Role)).Msg("User logged in")
	return s, nil
}

// expiry is the token's exp claim, capped by the configured TTL.
func (m *Manager) expiry(token string, now time.Time) time.Time {
	limit := now.Add(m.opts.TTL)
	exp, err := auth.ExpiryOf(token)
	if err != nil {
		if !errors.Is(err, auth.ErrNoExpiry) {
			m.log.Debug().Err(err).Msg("Token expiry unreadable, using session ttl")
		}
		return limit
	}
	if exp.Before(limit) {
		return exp
	}
	return limit
}

// Logout tells the API (best effort), drops the session and clears the cookie.
func (m *Manager) Logout(c *gin.Context) {
	s, ok := FromContext(c)
	if !ok {
		m.clearCookie(c)
		return
	}
	if err := m.api.WithToken(s.Token).Logout(c.Request.Context()); err != nil {
		m.log.Debug().Err(err).Msg("API logout failed, continuing")
	}
	m.Invalidate(c)
}

// Invalidate drops the current session without calling the API, e.g. after the API
// rejected its token.
func (m *Manager) Invalidate(c *gin.Context) {
	if s, ok := FromContext(c); ok {
		if err := m.store.Delete(c.Request.Context(), s.ID); err != nil {
			m.log.Error().Err(err).Str("sessionID", s.ID).Msg("Failed to delete session")
		}
	}
	c.Set(contextKey, nil)
	m.clearCookie(c)
}

// Load is the middleware that attaches the cookie's session, if any, to the context.
func (m *Manager) Load() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(m.opts.CookieName)
		if err != nil || id == "" {
			c.Next()
			return
		}

		s, err := m.store.Get(c.Request.Context(), id)
		switch {
		case err == nil && !s.Expired(m.now()):
			Attach(c, s)
		case err == nil, errors.Is(err, apperrors.ErrSessionNotFound):
			m.clearCookie(c)
		default:
			m.log.Error().Err(err).Msg("Failed to load session")
		}
		c.Next()
	}
}

// Client returns an API client authenticated as the current session.
func (m *Manager) Client(c *gin.Context) *apiclient.Client {
	if s, ok := FromContext(c); ok {
		return m.api.WithToken(s.Token)
	}
	return m.api
}

// SetFlash stores a message for the next page rendered within FlashTTL.
func (m *Manager) SetFlash(c *gin.Context, kind, message string) {
	s, ok := FromContext(c)
	if !ok {
		return
	}
	s.Flash = &Flash{Kind: kind, Message: message, ExpiresAt: m.now().Add(m.opts.FlashTTL)}
	if err := m.store.Save(c.Request.Context(), s); err != nil {
		m.log.Error().Err(err).Msg("Failed to save flash")
	}
}

// Flash returns the current flash while it is still active and clears it, so it is
// shown on one page only.
func (m *Manager) Flash(c *gin.Context) *Flash {
	s, ok := FromContext(c)
	if !ok || !s.Flash.Active(m.now()) {
		return nil
	}
	f := s.Flash
	s.Flash = nil
	if err := m.store.Save(c.Request.Context(), s); err != nil {
		m.log.Error().Err(err).Msg("Failed to clear flash")
	}
	return f
}

// Purge periodically deletes expired sessions until ctx is done. Stores that cannot
// purge are left alone.
func (m *Manager) Purge(ctx context.Context, every time.Duration) {
	p, ok := m.store.(Purger)
	if !ok || every <= 0 {
		return
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := p.DeleteExpired(ctx, m.now())
			if err != nil {
				m.log.Error().Err(err).Msg("Failed to purge expired sessions")
				continue
			}
			if n > 0 {
				m.log.Debug().Int64("count", n).Msg("Purged expired sessions")
			}
		}
	}
}

func (m *Manager) setCookie(c *gin.Context, value string, maxAge time.Duration) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.opts.CookieName, value, int(maxAge.Seconds()), "/", "", m.opts.Secure, true)
}

func (m *Manager) clearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.opts.CookieName, "", -1, "/", "", m.opts.Secure, true)
}

// FromContext returns the request's session.
func FromContext(c *gin.Context) (*Session, bool) {
	v, ok := c.Get(contextKey)
	if !ok {
		return nil, false
	}
	s, ok := v.(*Session)
	return s, ok && s != nil
}

// Attach puts s on the request context. The user ID is also stored under "userID"
// for request logging.
func Attach(c *gin.Context, s *Session) {
	c.Set(contextKey, s)
	c.Set(userIDKey, s.User.ID)
}
