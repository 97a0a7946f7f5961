package stubapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yigit/schooldash/internal/app/models"
	"github.com/yigit/schooldash/internal/app/models/dto"
	"github.com/yigit/schooldash/internal/middleware"
	"github.com/yigit/schooldash/internal/pkg/apperrors"
	"github.com/yigit/schooldash/internal/pkg/auth"
)

// Defaults of a newly onboarded school.
const (
	DefaultTimezone          = "Asia/Kolkata"
	DefaultAcademicYearStart = "april"
)

// ListSchools handles GET /schools.
func (h *Handler) ListSchools(c *gin.Context) {
	list(c, h.store.Schools.List("", nil))
}

// CreateSchool handles POST /schools: the school and its first school admin.
func (h *Handler) CreateSchool(c *gin.Context) {
	var req dto.CreateSchoolRequest
	if !middleware.BindJSON(c, &req) {
		return
	}
	if _, taken := h.store.Accounts.ByEmail(req.AdminEmail); taken {
		middleware.HandleAPIError(c, apperrors.NewConflictError("A user with this email already exists."))
		return
	}
	school, err := h.OnboardSchool(req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	ok(c, http.StatusCreated, school, "School created successfully")
}

// OnboardSchool stores a school and its admin account.
func (h *Handler) OnboardSchool(req dto.CreateSchoolRequest) (models.School, error) {
	school := models.School{
		ID:                 newID(),
		Name:               req.Name,
		Code:               fmt.Sprintf("SCH%04d", h.store.Schools.Count("", nil)+1),
		Email:              req.Email,
		Phone:              models.StringPtr(req.Phone),
		Address:            optional(req.Address),
		City:               models.StringPtr(req.City),
		State:              models.StringPtr(req.State),
		Country:            models.StringPtr("India"),
		Timezone:           DefaultTimezone,
		AcademicYearStart:  DefaultAcademicYearStart,
		SubscriptionPlan:   "basic",
		SubscriptionStatus: "active",
		CreatedAt:          h.timestamp(),
	}
	if err := h.store.Schools.Insert(school); err != nil {
		return models.School{}, err
	}

	hash, err := auth.HashPassword(req.AdminPassword)
	if err != nil {
		return models.School{}, fmt.Errorf("hash admin password: %w", err)
	}
	admin := Account{
		User: models.User{
			ID:       newID(),
			Email:    strings.ToLower(req.AdminEmail),
			Role:     models.RoleSchoolAdmin,
			SchoolID: school.ID,
		},
		PasswordHash: hash,
		IsActive:     true,
		CreatedAt:    school.CreatedAt,
	}
	if err := h.store.Accounts.Add(admin); err != nil {
		_ = h.store.Schools.Delete("", school.ID)
		return models.School{}, err
	}
	h.log.Info().Str("schoolID", school.ID).Str("admin", admin.User.Email).Msg("School onboarded")
	return school, nil
}

// MySchool handles GET /schools/me.
func (h *Handler) MySchool(c *gin.Context) {
	school, err := h.store.Schools.Get("", schoolOf(c))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	ok(c, http.StatusOK, school, "")
}

// UpdateMySchool handles PUT /schools/me.
func (h *Handler) UpdateMySchool(c *gin.Context) {
	var req dto.UpdateSchoolRequest
	if !middleware.BindJSON(c, &req) {
		return
	}
	if req.EstdYear != nil && *req.EstdYear > h.now().Year() {
		middleware.HandleAPIError(c, apperrors.NewValidationError("Established year cannot be in the future."))
		return
	}
	stamp := h.timestamp()
	school, err := h.store.Schools.Update("", schoolOf(c), func(s *models.School) error {
		setRequired(&s.Name, req.Name)
		setRequired(&s.Email, req.Email)
		set(&s.Phone, req.Phone)
		set(&s.Address, req.Address)
		set(&s.City, req.City)
		set(&s.State, req.State)
		set(&s.Country, req.Country)
		setRequired(&s.Timezone, req.Timezone)
		setRequired(&s.AcademicYearStart, req.AcademicYearStart)
		setInt(&s.EstdYear, req.EstdYear)
		set(&s.Board, req.Board)
		set(&s.AffiliationNo, req.AffiliationNo)
		set(&s.Website, req.Website)
		set(&s.Motto, req.Motto)
		s.UpdatedAt = &stamp
		return nil
	})
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	ok(c, http.StatusOK, school, "School profile updated successfully")
}
