package apiclient

import (
	"fmt"
	"net/http"

	"github.com/yigit/schooldash/internal/pkg/apperrors"
)

// APIError is a non-2xx answer from the school API.
type APIError struct {
	Status  int
	Message string
	Method  string
	Path    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.Status, e.Message)
}

// UserMessage is the server-provided text, shown to users verbatim.
func (e *APIError) UserMessage() string {
	return e.Message
}

// Unwrap maps the status onto the shared sentinel errors so callers can use errors.Is.
func (e *APIError) Unwrap() error {
	switch {
	case e.Status == http.StatusUnauthorized:
		return apperrors.ErrUnauthorized
	case e.Status == http.StatusForbidden:
		return apperrors.ErrPermissionDenied
	case e.Status == http.StatusNotFound:
		return apperrors.ErrResourceNotFound
	case e.Status == http.StatusConflict:
		return apperrors.ErrConflict
	case e.Status >= 500:
		return apperrors.ErrUpstream
	case e.Status >= 400:
		return apperrors.ErrValidationFailed
	default:
		return apperrors.ErrBadRequest
	}
}
