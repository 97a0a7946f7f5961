package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/schooldash/internal/app/controllers"
	"github.com/yigit/schooldash/internal/app/resources"
	"github.com/yigit/schooldash/internal/app/views"
	"github.com/yigit/schooldash/internal/navigation"
	"github.com/yigit/schooldash/internal/session"
)

// Registrar mounts a controller's routes on a router group.
type Registrar interface {
	Register(r gin.IRouter)
}

// Controllers groups everything SetupRouter mounts.
type Controllers struct {
	Auth      *controllers.AuthController
	Dashboard *controllers.DashboardController
	Settings  *controllers.SettingsController
	// Resources are the list/detail/form controllers for each record type.
	Resources []Registrar
}

// NewControllers builds the dashboard controllers from shared deps.
func NewControllers(d controllers.Deps) Controllers {
	masterData := resources.MasterDataTabs
	return Controllers{
		Auth:      controllers.NewAuthController(d),
		Dashboard: controllers.NewDashboardController(d),
		Settings:  controllers.NewSettingsController(d),
		Resources: []Registrar{
			controllers.NewResourceController(d, resources.Schools),
			controllers.NewResourceController(d, resources.Students),
			controllers.NewResourceController(d, resources.Staff),
			controllers.NewResourceController(d, resources.Classes),
			controllers.NewResourceController(d, resources.Sections),
			controllers.NewResourceController(d, resources.AcademicYears).WithTabs(masterData),
			controllers.NewResourceController(d, resources.Departments).WithTabs(masterData),
			controllers.NewResourceController(d, resources.Designations).WithTabs(masterData),
			controllers.NewResourceController(d, resources.Subjects).WithTabs(masterData),
		},
	}
}

// SetupRouter configures all dashboard routes
func SetupRouter(router *gin.Engine, sessions *session.Manager, gate *navigation.Gate, ctrl Controllers) {
	router.StaticFS("/static", views.Static())

	router.Use(sessions.Load())

	// --- Public routes ---
	router.GET("/", ctrl.Auth.Home)
	router.GET(navigation.PathLogin, ctrl.Auth.LoginPage)
	router.POST(navigation.PathLogin, ctrl.Auth.Login)
	router.POST("/logout", ctrl.Auth.Logout)

	// --- Gated routes ---
	// Every path below needs a session; role rules come from the navigation table.
	gated := router.Group("", gate.Middleware())
	{
		gated.GET(navigation.PathDashboard, ctrl.Dashboard.Home)

		for _, rc := range ctrl.Resources {
			rc.Register(gated)
		}

		gated.GET(navigation.PathMasterData, func(c *gin.Context) {
			c.Redirect(http.StatusSeeOther, resources.MasterDataTabs[0].Path)
		})

		ctrl.Settings.Register(gated)
	}

	router.NoRoute(ctrl.Auth.NotFound)
}
