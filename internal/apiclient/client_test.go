package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/schooldash/internal/app/models"
	"github.com/yigit/schooldash/internal/pkg/apperrors"
)

type recorded struct {
	method string
	path   string
	query  string
	auth   string
	body   map[string]interface{}
}

func newTestServer(t *testing.T, status int, response string) (*httptest.Server, *recorded) {
	t.Helper()
	rec := &recorded{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.query = r.URL.RawQuery
		rec.auth = r.Header.Get("Authorization")
		if raw, _ := io.ReadAll(r.Body); len(raw) > 0 {
			_ = json.Unmarshal(raw, &rec.body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, response)
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

func TestListDecodesEnvelopeAndMeta(t *testing.T) {
	srv, rec := newTestServer(t, http.StatusOK,
		`{"success":true,"data":[{"id":"c1","name":"Grade 5"}],"message":"ok","meta":{"page":1,"limit":25,"total":1}}`)
	c := New(srv.URL, time.Second).WithToken("tok")

	page, err := For[models.Class](c, "/classes").List(context.Background(), url.Values{"q": {"grade"}})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Grade 5", page.Items[0].Name)
	require.NotNil(t, page.Meta)
	assert.Equal(t, int64(1), page.Meta.Total)

	assert.Equal(t, http.MethodGet, rec.method)
	assert.Equal(t, "/api/v1/classes", rec.path)
	assert.Equal(t, "q=grade", rec.query)
	assert.Equal(t, "Bearer tok", rec.auth)
}

func TestNoTokenSendsNoAuthorization(t *testing.T) {
	srv, rec := newTestServer(t, http.StatusOK, `{"success":true,"data":[],"message":""}`)
	c := New(srv.URL, time.Second)

	_, err := For[models.Class](c, "/classes").List(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, rec.auth)
}

func TestUpdateSendsOnlyGivenFields(t *testing.T) {
	srv, rec := newTestServer(t, http.StatusOK, `{"success":true,"data":{"id":"s1","name":"B","maxStudents":40},"message":"updated"}`)
	c := New(srv.URL, time.Second).WithToken("tok")

	sec, err := For[models.Section](c, "/sections").Update(context.Background(), "s1", map[string]interface{}{"name": "B"})
	require.NoError(t, err)
	assert.Equal(t, "B", sec.Name)
	assert.Equal(t, http.MethodPut, rec.method)
	assert.Equal(t, "/api/v1/sections/s1", rec.path)
	assert.Equal(t, map[string]interface{}{"name": "B"}, rec.body)
}

func TestErrorStatusesMapToSentinels(t *testing.T) {
	tests := []struct {
		status   int
		sentinel error
		kind     apperrors.Kind
	}{
		{http.StatusBadRequest, apperrors.ErrValidationFailed, apperrors.KindValidation},
		{http.StatusUnauthorized, apperrors.ErrUnauthorized, apperrors.KindUnauthorized},
		{http.StatusForbidden, apperrors.ErrPermissionDenied, apperrors.KindForbidden},
		{http.StatusNotFound, apperrors.ErrResourceNotFound, apperrors.KindNotFound},
		{http.StatusConflict, apperrors.ErrConflict, apperrors.KindConflict},
		{http.StatusInternalServerError, apperrors.ErrUpstream, apperrors.KindTransport},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv, _ := newTestServer(t, tt.status, `{"success":false,"message":"Class name already exists"}`)
			c := New(srv.URL, time.Second)

			_, err := For[models.Class](c, "/classes").Create(context.Background(), map[string]string{"name": "x"})
			require.Error(t, err)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, "Class name already exists", apiErr.Message)
			assert.ErrorIs(t, err, tt.sentinel)
			assert.Equal(t, tt.kind, apperrors.Classify(err))
		})
	}
}

func TestValidationMessageIsShownVerbatim(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusUnprocessableEntity, `{"success":false,"message":"Admission number already in use"}`)
	c := New(srv.URL, time.Second)

	_, err := For[models.Student](c, "/students").Create(context.Background(), map[string]string{})
	assert.Equal(t, "Admission number already in use", apperrors.UserMessage(err, ""))
}

func TestErrorWithoutBodyFallsBackToStatusText(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusNotFound, ``)
	c := New(srv.URL, time.Second)

	_, err := For[models.Staff](c, "/staff").Get(context.Background(), "missing")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Not Found", apiErr.Message)
}

func TestGetWithEmptyDataIsNotFound(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, `{"success":true,"data":null,"message":""}`)
	c := New(srv.URL, time.Second)

	_, err := For[models.Staff](c, "/staff").Get(context.Background(), "s1")
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestTransportFailureUsesGenericMessage(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	c := New(base, time.Second)
	_, err := For[models.Class](c, "/classes").List(context.Background(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrTransport)
	assert.Equal(t, apperrors.KindTransport, apperrors.Classify(err))
	assert.Equal(t, apperrors.GenericMessage, apperrors.UserMessage(err, ""))
}

func TestMalformedBodyIsTransportError(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, `<html>oops</html>`)
	c := New(srv.URL, time.Second)

	_, err := For[models.Class](c, "/classes").List(context.Background(), nil)
	assert.ErrorIs(t, err, apperrors.ErrTransport)
}

func TestLoginAndSingletons(t *testing.T) {
	srv, rec := newTestServer(t, http.StatusOK,
		`{"success":true,"data":{"token":"jwt","user":{"id":"u1","email":"a@school.com","role":"school_admin","schoolId":"s1"}},"message":"ok"}`)
	c := New(srv.URL+"/", time.Second)

	resp, err := c.Login(context.Background(), "a@school.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "jwt", resp.Token)
	assert.Equal(t, models.RoleSchoolAdmin, resp.User.Role)
	assert.Equal(t, "/api/v1/auth/login", rec.path)
	assert.Equal(t, "a@school.com", rec.body["email"])

	_, err = c.WithToken("jwt").School().Update(context.Background(), map[string]string{"motto": "Learn"})
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/schools/me", rec.path)
	assert.Equal(t, http.MethodPut, rec.method)
}

func TestWithTokenDoesNotMutateBase(t *testing.T) {
	base := New("http://example.test", time.Second)
	scoped := base.WithToken("abc")
	assert.Empty(t, base.Token())
	assert.Equal(t, "abc", scoped.Token())
}

func TestMetricsObserveRoundTrips(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	srv, _ := newTestServer(t, http.StatusOK, `{"success":true,"data":{"id":"x","name":"A"},"message":""}`)
	c := New(srv.URL, time.Second, WithMetrics(m))

	_, err := For[models.Class](c, "/classes").Get(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.requests.WithLabelValues("GET", "/classes/:id", "200")))
}

func TestRouteLabel(t *testing.T) {
	assert.Equal(t, "/students", routeLabel("/students?classId=1"))
	assert.Equal(t, "/students/:id", routeLabel("/students/abc"))
	assert.Equal(t, "/schools/me", routeLabel("/schools/me"))
	assert.Equal(t, "/auth/login", routeLabel("/auth/login"))
	assert.Equal(t, "/", routeLabel(""))
}
