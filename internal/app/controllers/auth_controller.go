package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/yigit/schooldash/internal/app/models/dto"
	"github.com/yigit/schooldash/internal/app/views"
	"github.com/yigit/schooldash/internal/navigation"
	"github.com/yigit/schooldash/internal/pkg/apperrors"
	"github.com/yigit/schooldash/internal/pkg/validation"
	"github.com/yigit/schooldash/internal/session"
)

// AuthController handles sign in and sign out
type AuthController struct {
	base
}

// NewAuthController creates a new AuthController
func NewAuthController(d Deps) *AuthController {
	return &AuthController{base: newBase(d)}
}

// Home sends the root path to the dashboard; the gate takes it from there.
func (ac *AuthController) Home(c *gin.Context) {
	ac.redirect(c, navigation.PathDashboard)
}

// LoginPage renders the sign-in form. Signed-in users go straight to the dashboard.
func (ac *AuthController) LoginPage(c *gin.Context) {
	if _, ok := session.FromContext(c); ok {
		ac.redirect(c, navigation.PathDashboard)
		return
	}
	ac.renderLogin(c, http.StatusOK, "", "")
}

// Login handles the sign-in form
func (ac *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		ac.renderLogin(c, http.StatusUnprocessableEntity, strings.TrimSpace(req.Email), bindMessage(err))
		return
	}

	s, err := ac.Sessions.Login(c, strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		ac.Log.Warn().Err(err).Str("email", req.Email).Msg("Login failed")
		message := apperrors.UserMessage(err, "")
		if errors.Is(err, apperrors.ErrTokenInvalid) {
			message = apperrors.GenericMessage
		}
		ac.renderLogin(c, failureStatusLogin(err), req.Email, message)
		return
	}

	ac.Log.Info().Str("userID", s.User.ID).Str("role", string(s.User.Role)).Msg("User signed in")
	ac.redirect(c, navigation.PathDashboard)
}

// Logout handles POST /logout
func (ac *AuthController) Logout(c *gin.Context) {
	ac.Sessions.Logout(c)
	ac.redirect(c, navigation.PathLogin)
}

func (ac *AuthController) renderLogin(c *gin.Context, status int, email, message string) {
	ac.render(c, status, views.PageLogin, views.LoginPage{
		Layout: ac.layout(c, "Sign in"),
		Email:  email,
		Error:  message,
	})
}

func failureStatusLogin(err error) int {
	if apperrors.Classify(err) == apperrors.KindUnauthorized {
		return http.StatusUnauthorized
	}
	return failureStatus(err)
}

// bindMessage turns a form binding failure into one display message.
func bindMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return validation.Message(verrs[0].Field(), verrs[0])
	}
	return "Invalid request format"
}
