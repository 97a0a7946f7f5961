package stubapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/schooldash/internal/app/models"
	"github.com/yigit/schooldash/internal/app/models/dto"
	"github.com/yigit/schooldash/internal/middleware"
	"github.com/yigit/schooldash/internal/pkg/auth"
)

var writers = []models.RoleType{models.RoleSchoolAdmin, models.RolePrincipal}

// NewRouter builds the gin engine serving the REST API under /api/v1.
func NewRouter(store *Store, jwt *auth.JWTService, log zerolog.Logger) *gin.Engine {
	h := NewHandler(store, jwt, log)
	authMiddleware := middleware.NewAuthMiddleware(jwt, store.Accounts)

	router := gin.New()
	router.Use(middleware.Recovery(log), middleware.RequestLogger(log))
	router.NoRoute(func(c *gin.Context) {
		detail := dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Route not found")
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(detail))
	})

	v1 := router.Group("/api/v1")
	v1.GET("/health", func(c *gin.Context) {
		ok(c, http.StatusOK, gin.H{"status": "ok"}, "")
	})

	v1.POST("/auth/login", h.Login)

	authenticated := v1.Group("", authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", h.Logout)
		authenticated.GET("/auth/me", h.Me)
		authenticated.PUT("/auth/me", h.UpdateMe)

		schools := authenticated.Group("/schools")
		schools.GET("/me", authMiddleware.SchoolRequired(), h.MySchool)
		schools.PUT("/me", authMiddleware.SchoolRequired(), authMiddleware.RoleRequired(writers...), h.UpdateMySchool)

		superAdmin := schools.Group("", authMiddleware.RoleRequired(models.RoleSuperAdmin))
		superAdmin.GET("", h.ListSchools)
		superAdmin.POST("", h.CreateSchool)

		tenant := authenticated.Group("", authMiddleware.SchoolRequired())
		canWrite := authMiddleware.RoleRequired(writers...)

		h.students().mount(tenant, "/students", canWrite)
		h.staff().mount(tenant, "/staff", canWrite)
		h.classes().mount(tenant, "/classes", canWrite)
		h.sections().mount(tenant, "/sections", canWrite)
		h.academicYears().mount(tenant, "/academic-years", canWrite)
		h.departments().mount(tenant, "/departments", canWrite)
		h.designations().mount(tenant, "/designations", canWrite)
		h.subjects().mount(tenant, "/subjects", canWrite)
	}

	return router
}
