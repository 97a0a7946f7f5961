package navigation

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/yigit/schooldash/internal/app/models"
	"github.com/yigit/schooldash/internal/session"
)

func labels(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Label
	}
	return out
}

func TestEntryAllows(t *testing.T) {
	open := Entry{Path: "/x"}
	assert.True(t, open.Allows(models.RoleStudent), "empty roles allow everyone")

	admin := Entry{Path: "/y", Roles: []models.RoleType{models.RoleSuperAdmin}}
	assert.True(t, admin.Allows(models.RoleSuperAdmin))
	assert.False(t, admin.Allows(models.RoleTeacher))
}

func TestVisible(t *testing.T) {
	assert.Equal(t,
		[]string{"Dashboard", "Schools", "Settings"},
		labels(Visible(Menu, models.RoleSuperAdmin)))
	assert.Equal(t,
		[]string{"Dashboard", "Students", "Classes", "Sections", "Settings"},
		labels(Visible(Menu, models.RoleTeacher)))
	assert.Equal(t,
		[]string{"Dashboard", "Students", "Staff", "Classes", "Sections", "Master Data", "Settings"},
		labels(Visible(Menu, models.RoleSchoolAdmin)))
	assert.Equal(t, []string{"Dashboard", "Settings"}, labels(Visible(Menu, models.RoleParent)))
}

func TestGateDecide(t *testing.T) {
	g := DefaultGate()
	teacher := &models.User{ID: "u", Role: models.RoleTeacher}
	admin := &models.User{ID: "a", Role: models.RoleSchoolAdmin}
	super := &models.User{ID: "s", Role: models.RoleSuperAdmin}

	tests := []struct {
		name     string
		path     string
		user     *models.User
		decision Decision
		target   string
	}{
		{"no session", "/dashboard/students", nil, RedirectLogin, PathLogin},
		{"no session on home", "/dashboard", nil, RedirectLogin, PathLogin},
		{"teacher on admin route", "/admin/schools", teacher, RedirectHome, PathDashboard},
		{"teacher on admin subroute", "/admin/schools/new", teacher, RedirectHome, PathDashboard},
		{"super admin on admin route", "/admin/schools", super, Allow, ""},
		{"teacher on students", "/dashboard/students/42/edit", teacher, Allow, ""},
		{"teacher on staff", "/dashboard/staff", teacher, RedirectHome, PathDashboard},
		{"teacher on own settings", "/dashboard/settings", teacher, Allow, ""},
		{"teacher on school settings", "/dashboard/settings/school", teacher, RedirectHome, PathDashboard},
		{"admin on school settings", "/dashboard/settings/school", admin, Allow, ""},
		{"prefix must end at a segment", "/dashboard/staffroom", teacher, Allow, ""},
		{"unlisted path", "/dashboard/unknown", teacher, Allow, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision, target := g.Decide(tt.path, tt.user)
			assert.Equal(t, tt.decision, decision)
			assert.Equal(t, tt.target, target)
		})
	}
}

func TestEntryActive(t *testing.T) {
	home := Menu[0]
	assert.True(t, home.Active("/dashboard"))
	assert.False(t, home.Active("/dashboard/students"))

	students := Entry{Path: PathStudents}
	assert.True(t, students.Active("/dashboard/students/1"))
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	run := func(user *models.User, path string) *httptest.ResponseRecorder {
		r := gin.New()
		r.Use(func(c *gin.Context) {
			if user != nil {
				session.Attach(c, &session.Session{ID: "x", User: *user})
			}
		})
		r.Use(DefaultGate().Middleware())
		r.GET("/*any", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		return w
	}

	w := run(nil, "/dashboard")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	w = run(&models.User{Role: models.RoleTeacher}, "/admin/schools")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))

	w = run(&models.User{Role: models.RoleTeacher}, "/dashboard")
	assert.Equal(t, http.StatusOK, w.Code)
}
