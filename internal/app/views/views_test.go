package views

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/schooldash/internal/app/models"
	"github.com/yigit/schooldash/internal/navigation"
)

func renderPage(t *testing.T, name string, data any) string {
	t.Helper()
	r, err := New()
	require.NoError(t, err)

	w := httptest.NewRecorder()
	require.NoError(t, r.Instance(name, data).Render(w))
	return w.Body.String()
}

func signedIn(path string) Layout {
	user := &models.User{ID: "u1", Email: "admin@school.com", Role: models.RoleSchoolAdmin, SchoolID: "s1"}
	return Layout{
		Title: "Students",
		Path:  path,
		User:  user,
		Menu:  navigation.Visible(navigation.Menu, user.Role),
	}
}

func TestLoginPageHasNoSidebar(t *testing.T) {
	body := renderPage(t, PageLogin, LoginPage{Layout: Layout{Title: "Sign in"}, Email: "a@b.c", Error: "Invalid email or password"})

	assert.Contains(t, body, `action="/login"`)
	assert.Contains(t, body, `value="a@b.c"`)
	assert.Contains(t, body, "Invalid email or password")
	assert.NotContains(t, body, "sidebar")
}

func TestLayoutMarksActiveMenuEntry(t *testing.T) {
	page := ListPage{Layout: signedIn(navigation.PathStudents + "/new"), Heading: "Students"}
	body := renderPage(t, PageList, page)

	assert.Contains(t, body, `href="/dashboard/students" class="nav-link active"`)
	assert.Contains(t, body, "admin@school.com")
	assert.Contains(t, body, "School Admin")
	assert.Contains(t, body, `action="/logout"`)
}

func TestFlashCarriesRemainingTime(t *testing.T) {
	layout := signedIn(navigation.PathDashboard)
	layout.Flash = &Flash{Kind: "success", Message: "Student created successfully.", RemainingMS: 1500}
	body := renderPage(t, PageDashboard, DashboardPage{Layout: layout, Greeting: "Welcome"})

	assert.Contains(t, body, `class="flash flash-success"`)
	assert.Contains(t, body, `data-remaining="1500"`)
	assert.Contains(t, body, "Student created successfully.")
}

func TestListRendersGroupsAndBadges(t *testing.T) {
	page := ListPage{
		Layout:  signedIn(navigation.PathSections),
		Heading: "Sections",
		Columns: []Column{{Label: "Name"}, {Label: "Status"}},
		Groups: []RowGroup{{
			Title: "Grade 5",
			Rows: []Row{{
				ID:       "sec1",
				Cells:    []Cell{{Value: "A"}, {Value: "Active", Badge: "active"}},
				EditPath: navigation.PathSections + "/sec1/edit",
			}},
		}},
		Pagination: Pagination{Page: 1, Pages: 1, Total: 1},
	}
	body := renderPage(t, PageList, page)

	assert.Contains(t, body, "Grade 5")
	assert.Contains(t, body, `class="badge badge-green"`)
	assert.Contains(t, body, `href="/dashboard/academics/sections/sec1/edit"`)
}

func TestListEmptyState(t *testing.T) {
	page := ListPage{
		Layout:     signedIn(navigation.PathSections),
		Heading:    "Sections",
		EmptyTitle: "Create a class first",
		EmptyLink:  &Link{Label: "Add class", Path: navigation.PathClasses + "/new"},
	}
	body := renderPage(t, PageList, page)

	assert.Contains(t, body, "Create a class first")
	assert.Contains(t, body, `href="/dashboard/academics/classes/new"`)
	assert.NotContains(t, body, "<table")
}

func TestFormDependentSelect(t *testing.T) {
	page := FormPage{
		Layout:      signedIn(navigation.PathStudents + "/new"),
		Heading:     "Add Student",
		Action:      navigation.PathStudents,
		SubmitLabel: "Create",
		Fields: []Field{
			{Name: "classId", Label: "Class", Control: "select", Refresh: true, Options: []Option{{Value: "c1", Label: "Grade 5", Selected: true}}},
			{Name: "sectionId", Label: "Section", Control: "select", ParentLabel: "Class"},
		},
		Hidden: map[string]string{PrevPrefix + "classId": "c1"},
	}
	body := renderPage(t, PageForm, page)

	assert.Contains(t, body, `name="classId" data-refresh`)
	assert.Contains(t, body, `<option value="c1" selected>Grade 5</option>`)
	assert.Contains(t, body, "Select class first")
	assert.Contains(t, body, `name="_prev_classId" value="c1"`)
	assert.Contains(t, body, `name="_action" value="submit"`)
}

func TestUnknownPageFallsBackToError(t *testing.T) {
	body := renderPage(t, "missing", nil)
	assert.Contains(t, body, "Unknown page missing")
}

func TestBadgeClass(t *testing.T) {
	assert.Equal(t, "badge-green", badgeClass("active"))
	assert.Equal(t, "badge-amber", badgeClass("on_leave"))
	assert.Equal(t, "badge-red", badgeClass("inactive"))
	assert.Equal(t, "badge-grey", badgeClass("graduated"))
}

func TestStaticAssetsEmbedded(t *testing.T) {
	for _, name := range []string{"app.css", "app.js"} {
		f, err := Static().Open(name)
		require.NoError(t, err, name)
		f.Close()
	}
}

func TestDetailStateHeading(t *testing.T) {
	page := DetailPage{Layout: signedIn(navigation.PathStaff + "/x"), Heading: "Staff Member", BackPath: navigation.PathStaff,
		State: StateUnavailable, StateMessage: "Something went wrong. Please try again."}
	body := renderPage(t, PageDetail, page)

	assert.Contains(t, body, "<h2>Unable to load</h2>")
	assert.NotContains(t, body, "Not found")

	page.State, page.StateMessage = StateNotFound, "Staff member not found."
	body = renderPage(t, PageDetail, page)
	assert.Contains(t, body, "<h2>Not found</h2>")
	assert.Contains(t, body, "Staff member not found.")
}
