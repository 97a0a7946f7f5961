package navigation

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/schooldash/internal/app/models"
	"github.com/yigit/schooldash/internal/pkg/logger"
	"github.com/yigit/schooldash/internal/session"
)

// Middleware redirects requests the gate does not allow.
func (g *Gate) Middleware() gin.HandlerFunc {
	log := logger.Component("navigation")
	return func(c *gin.Context) {
		var user *models.User
		if s, ok := session.FromContext(c); ok {
			user = &s.User
		}

		decision, target := g.Decide(c.Request.URL.Path, user)
		if decision == Allow {
			c.Next()
			return
		}

		log.Debug().
			Str("path", c.Request.URL.Path).
			Str("redirect", target).
			Msg("Route not allowed for session")
		c.Redirect(http.StatusSeeOther, target)
		c.Abort()
	}
}
