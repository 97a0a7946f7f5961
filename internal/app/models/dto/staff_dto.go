package dto

// CreateStaffRequest represents staff onboarding data
type CreateStaffRequest struct {
	EmployeeID     string  `json:"employeeId" binding:"required"`
	FirstName      string  `json:"firstName" binding:"required"`
	LastName       *string `json:"lastName,omitempty"`
	Designation    *string `json:"designation,omitempty"`
	Department     *string `json:"department,omitempty"`
	Gender         *string `json:"gender,omitempty" binding:"omitempty,oneof=male female other"`
	DateOfBirth    *string `json:"dateOfBirth,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Phone          *string `json:"phone,omitempty"`
	Email          *string `json:"email,omitempty" binding:"omitempty,email"`
	JoiningDate    *string `json:"joiningDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	EmploymentType *string `json:"employmentType,omitempty" binding:"omitempty,oneof=full_time part_time contract"`
	Salary         *string `json:"salary,omitempty" binding:"omitempty,numeric"`
	Address        *string `json:"address,omitempty"`
	Status         *string `json:"status,omitempty" binding:"omitempty,oneof=active on_leave resigned inactive"`
}

// UpdateStaffRequest is a sparse update: nil fields are left unchanged.
type UpdateStaffRequest struct {
	EmployeeID     *string `json:"employeeId,omitempty" binding:"omitempty,min=1"`
	FirstName      *string `json:"firstName,omitempty" binding:"omitempty,min=1"`
	LastName       *string `json:"lastName,omitempty"`
	Designation    *string `json:"designation,omitempty"`
	Department     *string `json:"department,omitempty"`
	Gender         *string `json:"gender,omitempty" binding:"omitempty,oneof=male female other"`
	DateOfBirth    *string `json:"dateOfBirth,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Phone          *string `json:"phone,omitempty"`
	Email          *string `json:"email,omitempty" binding:"omitempty,email"`
	JoiningDate    *string `json:"joiningDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	EmploymentType *string `json:"employmentType,omitempty" binding:"omitempty,oneof=full_time part_time contract"`
	Salary         *string `json:"salary,omitempty" binding:"omitempty,numeric"`
	Address        *string `json:"address,omitempty"`
	Status         *string `json:"status,omitempty" binding:"omitempty,oneof=active on_leave resigned inactive"`
}
