package stubapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/schooldash/internal/app/models"
	"github.com/yigit/schooldash/internal/app/models/dto"
	"github.com/yigit/schooldash/internal/middleware"
	"github.com/yigit/schooldash/internal/pkg/apperrors"
	"github.com/yigit/schooldash/internal/pkg/auth"
)

// Login handles POST /auth/login.
func (h *Handler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !middleware.BindJSON(c, &req) {
		return
	}

	acc, found := h.store.Accounts.ByEmail(req.Email)
	if !found || !auth.CheckPassword(acc.PasswordHash, req.Password) {
		middleware.HandleAPIError(c, apperrors.ErrInvalidCredentials)
		return
	}
	if !acc.IsActive {
		middleware.HandleAPIError(c, apperrors.NewForbiddenError("This account has been deactivated."))
		return
	}

	token, _, err := h.jwt.GenerateToken(acc.User)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	stamp := h.timestamp()
	h.store.Accounts.Update(acc.User.ID, func(a *Account) { a.LastLogin = &stamp })

	h.log.Info().Str("userID", acc.User.ID).Msg("User logged in")
	ok(c, http.StatusOK, dto.LoginResponse{Token: token, User: acc.User}, "Login successful")
}

// Logout handles POST /auth/logout by revoking the presented token.
func (h *Handler) Logout(c *gin.Context) {
	h.store.Accounts.Revoke(c.GetString(middleware.TokenIDKey))
	ok(c, http.StatusOK, nil, "Logged out")
}

// Me handles GET /auth/me.
func (h *Handler) Me(c *gin.Context) {
	profile, err := h.profile(c.GetString(middleware.UserIDKey))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	ok(c, http.StatusOK, profile, "")
}

// UpdateMe handles PUT /auth/me. Profile fields are stored on the linked staff record.
func (h *Handler) UpdateMe(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if !middleware.BindJSON(c, &req) {
		return
	}
	acc, found := h.store.Accounts.ByID(c.GetString(middleware.UserIDKey))
	if !found {
		middleware.HandleAPIError(c, apperrors.ErrUnauthorized)
		return
	}
	if acc.StaffID == nil {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError("No staff record is linked to this account."))
		return
	}

	_, err := h.store.Staff.Update(acc.User.SchoolID, *acc.StaffID, func(s *models.Staff) error {
		setRequired(&s.FirstName, req.FirstName)
		set(&s.LastName, req.LastName)
		set(&s.Phone, req.Phone)
		set(&s.Gender, req.Gender)
		set(&s.DateOfBirth, req.DateOfBirth)
		set(&s.Address, req.Address)
		return nil
	})
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	profile, err := h.profile(acc.User.ID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	ok(c, http.StatusOK, profile, "Profile updated successfully")
}

func (h *Handler) profile(userID string) (models.AccountProfile, error) {
	acc, found := h.store.Accounts.ByID(userID)
	if !found {
		return models.AccountProfile{}, apperrors.ErrUnauthorized
	}
	p := models.AccountProfile{
		ID:        acc.User.ID,
		Email:     acc.User.Email,
		Role:      acc.User.Role,
		IsActive:  acc.IsActive,
		LastLogin: acc.LastLogin,
		CreatedAt: acc.CreatedAt,
	}
	if acc.User.SchoolID != "" {
		p.SchoolID = models.StringPtr(acc.User.SchoolID)
	}
	if acc.StaffID == nil {
		return p, nil
	}
	staff, err := h.store.Staff.Get(acc.User.SchoolID, *acc.StaffID)
	if err != nil {
		return p, nil
	}
	p.StaffID = models.StringPtr(staff.ID)
	p.FirstName = models.StringPtr(staff.FirstName)
	p.LastName = staff.LastName
	p.Phone = staff.Phone
	p.Gender = staff.Gender
	p.DateOfBirth = staff.DateOfBirth
	p.Designation = staff.Designation
	p.Department = staff.Department
	p.EmployeeID = models.StringPtr(staff.EmployeeID)
	p.JoiningDate = staff.JoiningDate
	p.Address = staff.Address
	return p, nil
}
