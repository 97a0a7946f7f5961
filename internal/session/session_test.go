package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/schooldash/internal/apiclient"
	"github.com/yigit/schooldash/internal/app/models"
	"github.com/yigit/schooldash/internal/pkg/apperrors"
	"github.com/yigit/schooldash/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	s := &Session{ID: "a", Token: "t", User: models.User{ID: "u1"}, ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, store.Save(ctx, s))

	got, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "t", got.Token)

	got.Token = "mutated"
	again, _ := store.Get(ctx, "a")
	assert.Equal(t, "t", again.Token, "store must hand out copies")

	require.NoError(t, store.Delete(ctx, "a"))
	_, err = store.Get(ctx, "a")
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Save(ctx, &Session{ID: "old", ExpiresAt: time.Now().Add(-time.Second)}))
	require.NoError(t, store.Save(ctx, &Session{ID: "new", ExpiresAt: time.Now().Add(time.Hour)}))

	_, err := store.Get(ctx, "old")
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)

	n, err := store.DeleteExpired(ctx, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestFlashActive(t *testing.T) {
	now := time.Now()
	f := &Flash{Kind: FlashSuccess, Message: "Saved", ExpiresAt: now.Add(3 * time.Second)}
	assert.True(t, f.Active(now))
	assert.Equal(t, 3*time.Second, f.Remaining(now))
	assert.False(t, f.Active(now.Add(3*time.Second)))

	var none *Flash
	assert.False(t, none.Active(now))
}

func TestSubmissionGuard(t *testing.T) {
	g := NewSubmissionGuard()

	release, err := g.Acquire("s1", "classes:new")
	require.NoError(t, err)

	_, err = g.Acquire("s1", "classes:new")
	assert.ErrorIs(t, err, apperrors.ErrSubmissionInFlight)

	other, err := g.Acquire("s2", "classes:new")
	require.NoError(t, err, "other sessions are independent")
	other()

	release()
	release()
	again, err := g.Acquire("s1", "classes:new")
	require.NoError(t, err)
	again()
}

func TestSubmissionGuardConcurrent(t *testing.T) {
	g := NewSubmissionGuard()
	var wg sync.WaitGroup
	var mu sync.Mutex
	acquired := 0
	start := make(chan struct{})
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if _, err := g.Acquire("s1", "form"); err == nil {
				mu.Lock()
				acquired++
				mu.Unlock()
			}
		}()
	}
	close(start)
	wg.Wait()
	assert.Equal(t, 1, acquired)
}

// loginAPI serves /api/v1/auth/login and /api/v1/auth/logout.
func loginAPI(t *testing.T, tokenTTL time.Duration) (*httptest.Server, *int) {
	t.Helper()
	jwtSvc := auth.NewJWTService(auth.JWTConfig{SecretKey: "k", AccessTokenExp: tokenTTL})
	logouts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/v1/auth/login":
			var req map[string]string
			_ = json.NewDecoder(r.Body).Decode(&req)
			if req["password"] != "secret" {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"success":false,"message":"Invalid email or password"}`))
				return
			}
			user := models.User{ID: "u1", Email: req["email"], Role: models.RoleTeacher, SchoolID: "s1"}
			token, _, _ := jwtSvc.GenerateToken(user)
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"success": true,
				"data":    map[string]interface{}{"token": token, "user": user},
			})
		case "/api/v1/auth/logout":
			logouts++
			_, _ = w.Write([]byte(`{"success":true,"message":"bye"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv, &logouts
}

func newTestManager(t *testing.T, apiURL string, ttl time.Duration) (*Manager, *MemoryStore) {
	store := NewMemoryStore()
	m := NewManager(store, apiclient.New(apiURL, time.Second), Options{
		CookieName: "sid",
		TTL:        ttl,
		FlashTTL:   3 * time.Second,
	})
	return m, store
}

func TestManagerLoginSetsCookieAndSession(t *testing.T) {
	srv, _ := loginAPI(t, time.Hour)
	m, store := newTestManager(t, srv.URL, 12*time.Hour)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/login", nil)

	s, err := m.Login(c, "t@school.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, models.RoleTeacher, s.User.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), s.ExpiresAt, 5*time.Second, "token exp caps the session")

	cookie := w.Header().Get("Set-Cookie")
	assert.True(t, strings.HasPrefix(cookie, "sid="+s.ID))
	assert.Contains(t, cookie, "HttpOnly")

	stored, err := store.Get(context.Background(), s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.Token, stored.Token)
}

func TestManagerLoginTTLCapsLongTokens(t *testing.T) {
	srv, _ := loginAPI(t, 48*time.Hour)
	m, _ := newTestManager(t, srv.URL, time.Hour)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/login", nil)

	s, err := m.Login(c, "t@school.com", "secret")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), s.ExpiresAt, 5*time.Second)
}

func TestManagerLoginRejected(t *testing.T) {
	srv, _ := loginAPI(t, time.Hour)
	m, _ := newTestManager(t, srv.URL, time.Hour)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/login", nil)

	_, err := m.Login(c, "t@school.com", "wrong")
	require.Error(t, err)
	assert.Equal(t, "Invalid email or password", apperrors.UserMessage(err, ""))
	assert.Empty(t, w.Header().Get("Set-Cookie"))
}

func TestManagerLoadFlashAndLogout(t *testing.T) {
	srv, logouts := loginAPI(t, time.Hour)
	m, store := newTestManager(t, srv.URL, time.Hour)

	router := gin.New()
	router.Use(m.Load())
	router.POST("/login", func(c *gin.Context) {
		if _, err := m.Login(c, "t@school.com", "secret"); err != nil {
			c.Status(http.StatusUnauthorized)
			return
		}
		m.SetFlash(c, FlashSuccess, "Welcome")
		c.Status(http.StatusNoContent)
	})
	router.GET("/whoami", func(c *gin.Context) {
		s, ok := FromContext(c)
		if !ok {
			c.String(http.StatusOK, "anonymous")
			return
		}
		msg := ""
		if f := m.Flash(c); f != nil {
			msg = f.Message
		}
		c.String(http.StatusOK, s.User.Email+"|"+msg+"|"+m.Client(c).Token())
	})
	router.POST("/logout", func(c *gin.Context) {
		m.Logout(c)
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
	require.Equal(t, http.StatusNoContent, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(cookies[0])
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	parts := strings.Split(w.Body.String(), "|")
	require.Len(t, parts, 3)
	assert.Equal(t, "t@school.com", parts[0])
	assert.Equal(t, "Welcome", parts[1])
	assert.NotEmpty(t, parts[2])

	req = httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(cookies[0])
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, 1, *logouts)
	_, err := store.Get(context.Background(), cookies[0].Value)
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)

	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(cookies[0])
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "anonymous", w.Body.String())
}

func TestManagerFlashExpires(t *testing.T) {
	m, store := newTestManager(t, "http://unused.test", time.Hour)
	now := time.Now()
	m.now = func() time.Time { return now }

	s := &Session{ID: "x", ExpiresAt: now.Add(time.Hour)}
	require.NoError(t, store.Save(context.Background(), s))

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Set(contextKey, s)

	m.SetFlash(c, FlashSuccess, "Class created")
	now = now.Add(3 * time.Second)
	assert.Nil(t, m.Flash(c))
}

func TestManagerFlashShownOnce(t *testing.T) {
	m, store := newTestManager(t, "http://unused.test", time.Hour)

	s := &Session{ID: "x", ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, store.Save(context.Background(), s))

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Set(contextKey, s)

	m.SetFlash(c, FlashSuccess, "Class created")
	f := m.Flash(c)
	require.NotNil(t, f)
	assert.Equal(t, "Class created", f.Message)
	assert.Nil(t, m.Flash(c))

	stored, err := store.Get(context.Background(), "x")
	require.NoError(t, err)
	assert.Nil(t, stored.Flash)
}
