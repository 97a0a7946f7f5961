package controllers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/yigit/schooldash/internal/apiclient"
	"github.com/yigit/schooldash/internal/app/models"
	"github.com/yigit/schooldash/internal/app/resources"
	"github.com/yigit/schooldash/internal/app/views"
	"github.com/yigit/schooldash/internal/navigation"
	"github.com/yigit/schooldash/internal/pkg/apperrors"
	"github.com/yigit/schooldash/internal/session"
)

type counter func(ctx context.Context, api *apiclient.Client) (int64, error)

func countOf[T any](apiPath string) counter {
	return func(ctx context.Context, api *apiclient.Client) (int64, error) {
		page, err := apiclient.For[T](api, apiPath).List(ctx, nil)
		if err != nil {
			return 0, err
		}
		if page.Meta != nil {
			return page.Meta.Total, nil
		}
		return int64(len(page.Items)), nil
	}
}

type statSpec struct {
	label string
	path  string
	count counter
}

var stats = []statSpec{
	{"Schools", navigation.PathSchools, countOf[models.School](resources.Schools.APIPath)},
	{"Students", navigation.PathStudents, countOf[models.Student](resources.Students.APIPath)},
	{"Staff", navigation.PathStaff, countOf[models.Staff](resources.Staff.APIPath)},
	{"Classes", navigation.PathClasses, countOf[models.Class](resources.Classes.APIPath)},
	{"Sections", navigation.PathSections, countOf[models.Section](resources.Sections.APIPath)},
}

// DashboardController renders the home page
type DashboardController struct {
	base
	gate *navigation.Gate
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(d Deps) *DashboardController {
	return &DashboardController{base: newBase(d), gate: navigation.DefaultGate()}
}

// Home handles GET /dashboard. Counts the role may see are fetched concurrently; a
// failed count is logged and shown as blank.
func (dc *DashboardController) Home(c *gin.Context) {
	s, ok := session.FromContext(c)
	if !ok {
		dc.redirect(c, navigation.PathLogin)
		return
	}
	user := s.User
	api := dc.Sessions.Client(c)

	var visible []statSpec
	for _, spec := range stats {
		if decision, _ := dc.gate.Decide(spec.path, &user); decision == navigation.Allow {
			visible = append(visible, spec)
		}
	}

	var (
		values = make([]string, len(visible))
		school string
	)
	g, ctx := errgroup.WithContext(c.Request.Context())
	for i, spec := range visible {
		g.Go(func() error {
			n, err := spec.count(ctx, api)
			if err != nil {
				if apperrors.Classify(err) == apperrors.KindUnauthorized {
					return err
				}
				dc.Log.Error().Err(err).Str("stat", spec.label).Msg("Failed to load count")
				values[i] = resources.Blank
				return nil
			}
			values[i] = strconv.FormatInt(n, 10)
			return nil
		})
	}
	if user.SchoolID != "" {
		g.Go(func() error {
			sch, err := api.School().Get(ctx)
			if err != nil {
				if apperrors.Classify(err) == apperrors.KindUnauthorized {
					return err
				}
				dc.Log.Warn().Err(err).Msg("Failed to load school")
				return nil
			}
			school = sch.Name
			return nil
		})
	}
	if err := g.Wait(); err != nil && dc.sessionExpired(c, err) {
		return
	}

	page := views.DashboardPage{
		Layout:     dc.layout(c, "Dashboard"),
		Greeting:   "Welcome, " + user.Role.Label(),
		SchoolName: school,
	}
	for i, spec := range visible {
		page.Stats = append(page.Stats, views.Stat{Label: spec.label, Value: values[i], Path: spec.path})
	}
	page.Shortcuts = dc.shortcuts(user)
	dc.render(c, http.StatusOK, views.PageDashboard, page)
}

func (dc *DashboardController) shortcuts(user models.User) []views.Link {
	candidates := []views.Link{
		{Label: "Onboard a school", Path: navigation.PathSchools + "/new"},
		{Label: "Admit a student", Path: navigation.PathStudents + "/new"},
		{Label: "Add a staff member", Path: navigation.PathStaff + "/new"},
		{Label: "Create a class", Path: navigation.PathClasses + "/new"},
		{Label: "School settings", Path: navigation.PathSchoolConfig},
	}
	var out []views.Link
	for _, l := range candidates {
		if decision, _ := dc.gate.Decide(l.Path, &user); decision == navigation.Allow {
			out = append(out, l)
		}
	}
	return out
}
