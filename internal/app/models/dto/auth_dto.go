package dto

import "github.com/yigit/schooldash/internal/app/models"

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email" validate:"required,email"`
	Password string `json:"password" form:"password" binding:"required" validate:"required"`
}

// LoginResponse is the data block of a successful /auth/login.
type LoginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// UpdateProfileRequest is the sparse PUT /auth/me body.
type UpdateProfileRequest struct {
	FirstName   *string `json:"firstName,omitempty" binding:"omitempty,min=1"`
	LastName    *string `json:"lastName,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Gender      *string `json:"gender,omitempty" binding:"omitempty,oneof=male female other"`
	DateOfBirth *string `json:"dateOfBirth,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Address     *string `json:"address,omitempty"`
}
