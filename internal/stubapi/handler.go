package stubapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/schooldash/internal/app/models/dto"
	"github.com/yigit/schooldash/internal/middleware"
	"github.com/yigit/schooldash/internal/pkg/auth"
	"github.com/yigit/schooldash/internal/pkg/helpers"
)

// Handler serves the school REST API from a Store.
type Handler struct {
	store *Store
	jwt   *auth.JWTService
	log   zerolog.Logger
	now   func() time.Time
}

// NewHandler creates a handler over store, issuing tokens with jwt.
func NewHandler(store *Store, jwt *auth.JWTService, log zerolog.Logger) *Handler {
	return &Handler{store: store, jwt: jwt, log: log, now: time.Now}
}

func (h *Handler) timestamp() string {
	return h.now().UTC().Format(time.RFC3339)
}

func newID() string {
	return uuid.NewString()
}

func schoolOf(c *gin.Context) string {
	return c.GetString(middleware.SchoolIDKey)
}

func ok(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, dto.NewSuccessResponse(data, message))
}

// list writes items, paginated when the request asks for a page or limit.
func list[T any](c *gin.Context, items []T) {
	_, hasPage := c.GetQuery("page")
	_, hasLimit := c.GetQuery("limit")
	if !hasPage && !hasLimit {
		c.JSON(http.StatusOK, dto.NewSuccessResponse(items, ""))
		return
	}
	page, limit := helpers.ParsePaginationParams(c)
	start, end := helpers.CalculateSliceIndices(page, limit, len(items))
	meta := helpers.NewPageMeta(int64(len(items)), page, limit)
	c.JSON(http.StatusOK, dto.NewListResponse(items[start:end], meta, ""))
}

// set copies an optional update value; an empty string clears the field.
func set(dst **string, src *string) {
	if src == nil {
		return
	}
	if strings.TrimSpace(*src) == "" {
		*dst = nil
		return
	}
	v := *src
	*dst = &v
}

// setRequired copies an update value onto a required field.
func setRequired(dst *string, src *string) {
	if src != nil && strings.TrimSpace(*src) != "" {
		*dst = *src
	}
}

func setInt(dst **int, src *int) {
	if src != nil {
		v := *src
		*dst = &v
	}
}

func optional(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := *s
	return &v
}
