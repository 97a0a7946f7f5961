package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yigit/schooldash/internal/apiclient"
	"github.com/yigit/schooldash/internal/app/forms"
	"github.com/yigit/schooldash/internal/app/models"
	"github.com/yigit/schooldash/internal/app/resources"
	"github.com/yigit/schooldash/internal/app/views"
	"github.com/yigit/schooldash/internal/navigation"
	"github.com/yigit/schooldash/internal/pkg/apperrors"
	"github.com/yigit/schooldash/internal/pkg/helpers"
	"github.com/yigit/schooldash/internal/session"
)

// singleton describes a settings form bound to a "me" endpoint.
type singleton[T any] struct {
	heading string
	path    string
	saved   string
	api     func(*apiclient.Client) *apiclient.Singleton[T]
	schema  func(now time.Time, current T) forms.Schema
	info    func(current T) []views.DetailItem
}

var profileSettings = singleton[models.AccountProfile]{
	heading: "My Profile",
	path:    navigation.PathSettings,
	saved:   "Profile updated successfully.",
	api:     (*apiclient.Client).Account,
	schema: func(time.Time, models.AccountProfile) forms.Schema {
		return resources.AccountProfileSchema
	},
	info: func(p models.AccountProfile) []views.DetailItem {
		items := []views.DetailItem{
			{Label: "Email", Value: p.Email},
			{Label: "Role", Value: p.Role.Label()},
		}
		if id := models.Deref(p.EmployeeID); id != "" {
			items = append(items, views.DetailItem{Label: "Employee ID", Value: id})
		}
		if last := models.Deref(p.LastLogin); last != "" {
			items = append(items, views.DetailItem{Label: "Last sign in", Value: helpers.FormatDate(last)})
		}
		return items
	},
}

var schoolSettings = singleton[models.School]{
	heading: "School Profile",
	path:    navigation.PathSchoolConfig,
	saved:   "School profile updated successfully.",
	api:     (*apiclient.Client).School,
	schema: func(now time.Time, s models.School) forms.Schema {
		return withTimezone(resources.SchoolProfileSchema(now), s.Timezone)
	},
	info: func(s models.School) []views.DetailItem {
		return []views.DetailItem{
			{Label: "School code", Value: s.Code},
			{Label: "Plan", Value: models.Humanize(s.SubscriptionPlan)},
			{Label: "Subscription", Value: models.Humanize(s.SubscriptionStatus)},
		}
	},
}

// withTimezone keeps a stored timezone selectable even when it is not one of the
// offered zones.
func withTimezone(schema forms.Schema, current string) forms.Schema {
	if current == "" {
		return schema
	}
	fields := append([]forms.Field(nil), schema.Fields...)
	for i, f := range fields {
		if f.Name != "timezone" {
			continue
		}
		for _, o := range f.Options {
			if o.Value == current {
				return schema
			}
		}
		fields[i].Options = append(append([]forms.Option(nil), f.Options...), forms.Option{Value: current, Label: current})
	}
	return forms.Schema{Fields: fields}
}

// SettingsController serves the account and school profile forms
type SettingsController struct {
	base
	gate *navigation.Gate
}

// NewSettingsController creates a new SettingsController
func NewSettingsController(d Deps) *SettingsController {
	return &SettingsController{base: newBase(d), gate: navigation.DefaultGate()}
}

// Register mounts the settings routes.
func (sc *SettingsController) Register(r gin.IRouter) {
	r.GET(navigation.PathSettings, sc.Profile)
	r.POST(navigation.PathSettings, sc.UpdateProfile)
	r.GET(navigation.PathSchoolConfig, sc.School)
	r.POST(navigation.PathSchoolConfig, sc.UpdateSchool)
}

// Profile handles GET /dashboard/settings
func (sc *SettingsController) Profile(c *gin.Context) { showSingleton(sc, c, profileSettings) }

// UpdateProfile handles POST /dashboard/settings
func (sc *SettingsController) UpdateProfile(c *gin.Context) { submitSingleton(sc, c, profileSettings) }

// School handles GET /dashboard/settings/school
func (sc *SettingsController) School(c *gin.Context) { showSingleton(sc, c, schoolSettings) }

// UpdateSchool handles POST /dashboard/settings/school
func (sc *SettingsController) UpdateSchool(c *gin.Context) { submitSingleton(sc, c, schoolSettings) }

func (sc *SettingsController) tabs(c *gin.Context) []views.Tab {
	s, ok := session.FromContext(c)
	if !ok {
		return nil
	}
	var tabs []views.Tab
	for _, t := range []views.Tab{
		{Label: "Profile", Path: navigation.PathSettings},
		{Label: "School", Path: navigation.PathSchoolConfig},
	} {
		if decision, _ := sc.gate.Decide(t.Path, &s.User); decision == navigation.Allow {
			t.Active = t.Path == c.Request.URL.Path
			tabs = append(tabs, t)
		}
	}
	if len(tabs) < 2 {
		return nil
	}
	return tabs
}

func showSingleton[T any](sc *SettingsController, c *gin.Context, sf singleton[T]) {
	current, err := sf.api(sc.Sessions.Client(c)).Get(c.Request.Context())
	if err != nil {
		if sc.sessionExpired(c, err) {
			return
		}
		sc.Log.Error().Err(err).Str("form", sf.path).Msg("Failed to load settings")
		schema := sf.schema(sc.Now(), current)
		renderSingleton(sc, c, failureStatus(err), sf, current, schema, schema.Blank(), nil, apperrors.UserMessage(err, ""))
		return
	}

	schema := sf.schema(sc.Now(), current)
	values, err := schema.FromEntity(current)
	if err != nil {
		sc.Log.Error().Err(err).Str("form", sf.path).Msg("Failed to seed settings form")
		values = schema.Blank()
	}
	renderSingleton(sc, c, http.StatusOK, sf, current, schema, values, nil, "")
}

// submitSingleton validates and PUTs the fields that differ from the stored profile.
func submitSingleton[T any](sc *SettingsController, c *gin.Context, sf singleton[T]) {
	api := sf.api(sc.Sessions.Client(c))
	ctx := c.Request.Context()

	var current T
	values, _, bindErr := bindForm(c, sf.schema(sc.Now(), current))

	current, err := api.Get(ctx)
	if err != nil {
		if sc.sessionExpired(c, err) {
			return
		}
		sc.Log.Error().Err(err).Str("form", sf.path).Msg("Failed to load settings")
		renderSingleton(sc, c, failureStatus(err), sf, current, sf.schema(sc.Now(), current), values, nil, apperrors.UserMessage(err, ""))
		return
	}
	schema := sf.schema(sc.Now(), current)
	if bindErr != nil {
		sc.Log.Warn().Err(bindErr).Str("form", sf.path).Msg("Malformed form body")
		renderSingleton(sc, c, http.StatusBadRequest, sf, current, schema, values, nil, apperrors.GenericMessage)
		return
	}
	original, err := schema.FromEntity(current)
	if err != nil {
		sc.Log.Error().Err(err).Str("form", sf.path).Msg("Failed to seed settings form")
		sc.flashRedirect(c, session.FlashError, apperrors.GenericMessage, sf.path)
		return
	}

	if errs := schema.Validate(values, nil, forms.Edit); errs.Any() {
		renderSingleton(sc, c, http.StatusUnprocessableEntity, sf, current, schema, values, errs, schema.Summary(errs))
		return
	}
	payload := schema.Payload(values, original, forms.Edit)
	if len(payload) == 0 {
		sc.flashRedirect(c, session.FlashSuccess, NoChangesMessage, sf.path)
		return
	}

	release, err := sc.acquire(c, sf.path)
	if err != nil {
		renderSingleton(sc, c, http.StatusConflict, sf, current, schema, values, nil, mutationMessage(err))
		return
	}
	defer release()

	if _, err := api.Update(ctx, payload); err != nil {
		if sc.sessionExpired(c, err) {
			return
		}
		sc.Log.Warn().Err(err).Str("form", sf.path).Msg("Settings update rejected")
		renderSingleton(sc, c, failureStatus(err), sf, current, schema, values, nil, mutationMessage(err))
		return
	}
	sc.flashRedirect(c, session.FlashSuccess, sf.saved, sf.path)
}

func renderSingleton[T any](sc *SettingsController, c *gin.Context, status int, sf singleton[T], current T, schema forms.Schema, values forms.Values, errs forms.Errors, message string) {
	sc.render(c, status, views.PageForm, views.FormPage{
		Layout:      sc.layout(c, sf.heading),
		Heading:     sf.heading,
		Tabs:        sc.tabs(c),
		Action:      sf.path,
		SubmitLabel: "Save changes",
		Error:       message,
		Fields:      views.Fields(schema, values, errs, nil, forms.Edit),
		Info:        sf.info(current),
	})
}
