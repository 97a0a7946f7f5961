package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/schooldash/internal/app/models"
	"github.com/yigit/schooldash/internal/app/models/dto"
	"github.com/yigit/schooldash/internal/pkg/auth"
)

// Context keys set by JWTAuth.
const (
	EmailKey    = "email"
	RoleKey     = "role"
	SchoolIDKey = "schoolID"
	TokenIDKey  = "tokenID"
)

// TokenChecker reports whether a token ID has been revoked.
type TokenChecker interface {
	Revoked(tokenID string) bool
}

// AuthMiddleware authenticates bearer tokens issued by the same JWT service.
type AuthMiddleware struct {
	jwtService *auth.JWTService
	tokens     TokenChecker
}

// NewAuthMiddleware creates a new AuthMiddleware. tokens may be nil.
func NewAuthMiddleware(jwtService *auth.JWTService, tokens TokenChecker) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		tokens:     tokens,
	}
}

// JWTAuth validates the Authorization header and stores the claims in the context.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			unauthorized(c, dto.ErrorCodeUnauthorized, "Authentication required")
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				unauthorized(c, dto.ErrorCodeExpiredToken, "Token has expired")
				return
			}
			unauthorized(c, dto.ErrorCodeInvalidToken, "Invalid token")
			return
		}
		if m.tokens != nil && m.tokens.Revoked(claims.ID) {
			unauthorized(c, dto.ErrorCodeInvalidToken, "Token has been revoked")
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(EmailKey, claims.Email)
		c.Set(RoleKey, models.RoleType(claims.Role))
		c.Set(SchoolIDKey, claims.SchoolID)
		c.Set(TokenIDKey, claims.ID)
		c.Next()
	}
}

// RoleRequired only lets the listed roles through.
func (m *AuthMiddleware) RoleRequired(roles ...models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := CurrentRole(c)
		for _, r := range roles {
			if r == role {
				c.Next()
				return
			}
		}
		detail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "You do not have permission to perform this action")
		c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(detail))
	}
}

// SchoolRequired rejects tokens that are not bound to a school.
func (m *AuthMiddleware) SchoolRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(SchoolIDKey) == "" {
			detail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "This account is not linked to a school")
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(detail))
			return
		}
		c.Next()
	}
}

// CurrentRole returns the role JWTAuth stored, or "".
func CurrentRole(c *gin.Context) models.RoleType {
	v, _ := c.Get(RoleKey)
	role, _ := v.(models.RoleType)
	return role
}

func unauthorized(c *gin.Context, code dto.ErrorCode, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}
