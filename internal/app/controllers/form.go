package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/schooldash/internal/app/forms"
	"github.com/yigit/schooldash/internal/app/views"
	"github.com/yigit/schooldash/internal/pkg/apperrors"
)

// Form actions
const (
	actionField   = "_action"
	actionRefresh = "refresh"
)

// bindForm reads a submitted form. A refresh submission (a parent select changed)
// re-applies the parent change against the value the form was rendered with, so its
// dependents are cleared. It reports whether the submission was a refresh. A body
// that cannot be parsed yields whatever values were read before the error.
func bindForm(c *gin.Context, schema forms.Schema) (forms.Values, bool, error) {
	if err := c.Request.ParseForm(); err != nil {
		return schema.Bind(c.Request.PostForm), false, err
	}
	values := schema.Bind(c.Request.PostForm)
	if c.PostForm(actionField) != actionRefresh {
		return values, false, nil
	}
	for _, f := range schema.Fields {
		if len(schema.Dependents(f.Name)) == 0 {
			continue
		}
		current := values.Get(f.Name)
		values[f.Name] = c.PostForm(views.PrevPrefix + f.Name)
		values = schema.ChangeParent(values, f.Name, current)
	}
	return values, true, nil
}

// keepImmutable restores fields that are disabled in edit mode and so never submitted.
func keepImmutable(schema forms.Schema, values, original forms.Values) {
	for _, f := range schema.Fields {
		if f.Immutable {
			values[f.Name] = original.Get(f.Name)
		}
	}
}

// failureStatus is the response status of a page re-rendered after err.
func failureStatus(err error) int {
	switch apperrors.Classify(err) {
	case apperrors.KindValidation:
		return http.StatusUnprocessableEntity
	case apperrors.KindConflict:
		return http.StatusConflict
	case apperrors.KindForbidden:
		return http.StatusForbidden
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindTransport:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
