// Package controllers handles the dashboard's HTTP requests: it calls the school API
// on behalf of the session and renders the resulting pages.
package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/schooldash/internal/app/views"
	"github.com/yigit/schooldash/internal/navigation"
	"github.com/yigit/schooldash/internal/pkg/apperrors"
	"github.com/yigit/schooldash/internal/pkg/helpers"
	"github.com/yigit/schooldash/internal/session"
)

// InFlightMessage is shown when the same form is submitted again before the first
// submission finished.
const InFlightMessage = "This form is already being submitted. Please wait."

// Deps are the collaborators every controller needs.
type Deps struct {
	Sessions *session.Manager
	Guard    *session.SubmissionGuard
	Log      zerolog.Logger
	Now      func() time.Time
	PageSize int
}

type base struct {
	Deps
}

func newBase(d Deps) base {
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Guard == nil {
		d.Guard = session.NewSubmissionGuard()
	}
	if d.PageSize <= 0 {
		d.PageSize = helpers.DefaultPageSize
	}
	return base{Deps: d}
}

// layout builds the page chrome for the current request.
func (b *base) layout(c *gin.Context, title string) views.Layout {
	l := views.Layout{Title: title, Path: c.Request.URL.Path}
	if s, ok := session.FromContext(c); ok {
		user := s.User
		l.User = &user
		l.Menu = navigation.Visible(navigation.Menu, user.Role)
	}
	if f := b.Sessions.Flash(c); f != nil {
		l.Flash = &views.Flash{
			Kind:        f.Kind,
			Message:     f.Message,
			RemainingMS: f.Remaining(b.Now()).Milliseconds(),
		}
	}
	return l
}

func (b *base) render(c *gin.Context, status int, page string, data any) {
	c.HTML(status, page, data)
}

func (b *base) redirect(c *gin.Context, path string) {
	c.Redirect(http.StatusSeeOther, path)
}

// flashRedirect stores a flash and redirects to path.
func (b *base) flashRedirect(c *gin.Context, kind, message, path string) {
	b.Sessions.SetFlash(c, kind, message)
	b.redirect(c, path)
}

// sessionExpired handles an API rejection of the session's token: the session is
// dropped and the browser sent to the login page. It reports whether it responded.
func (b *base) sessionExpired(c *gin.Context, err error) bool {
	if apperrors.Classify(err) != apperrors.KindUnauthorized {
		return false
	}
	b.Log.Info().Err(err).Str("path", c.Request.URL.Path).Msg("API rejected session, signing out")
	b.Sessions.Invalidate(c)
	b.redirect(c, navigation.PathLogin)
	return true
}

// acquire takes the submission guard for formKey in the current session.
func (b *base) acquire(c *gin.Context, formKey string) (func(), error) {
	s, ok := session.FromContext(c)
	if !ok {
		return func() {}, nil
	}
	return b.Guard.Acquire(s.ID, formKey)
}

// mutationMessage is the banner text for a failed submission.
func mutationMessage(err error) string {
	if errors.Is(err, apperrors.ErrSubmissionInFlight) {
		return InFlightMessage
	}
	return apperrors.UserMessage(err, "")
}

// NotFound renders the 404 page for unknown routes.
func (b *base) NotFound(c *gin.Context) {
	b.render(c, http.StatusNotFound, views.PageError, views.ErrorPage{
		Layout:  b.layout(c, "Not found"),
		Status:  http.StatusNotFound,
		Message: "The page you are looking for does not exist.",
	})
}
