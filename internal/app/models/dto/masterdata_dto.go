package dto

// CreateAcademicYearRequest represents academic year creation data
type CreateAcademicYearRequest struct {
	Name      string `json:"name" binding:"required"`
	StartDate string `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" binding:"required,datetime=2006-01-02"`
	IsCurrent bool   `json:"isCurrent"`
}

// UpdateAcademicYearRequest represents academic year update data
type UpdateAcademicYearRequest struct {
	Name      *string `json:"name,omitempty" binding:"omitempty,min=1"`
	StartDate *string `json:"startDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	EndDate   *string `json:"endDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	IsCurrent *bool   `json:"isCurrent,omitempty"`
}

// CreateDepartmentRequest represents department creation data
type CreateDepartmentRequest struct {
	Name string  `json:"name" binding:"required"`
	Code *string `json:"code,omitempty"`
}

// UpdateDepartmentRequest represents department update data
type UpdateDepartmentRequest struct {
	Name *string `json:"name,omitempty" binding:"omitempty,min=1"`
	Code *string `json:"code,omitempty"`
}

// CreateDesignationRequest represents designation creation data
type CreateDesignationRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description,omitempty"`
}

// UpdateDesignationRequest represents designation update data
type UpdateDesignationRequest struct {
	Title       *string `json:"title,omitempty" binding:"omitempty,min=1"`
	Description *string `json:"description,omitempty"`
}

// CreateSubjectRequest represents subject creation data
type CreateSubjectRequest struct {
	Name string  `json:"name" binding:"required"`
	Code *string `json:"code,omitempty"`
	Type string  `json:"type" binding:"omitempty,oneof=theory practical both"`
}

// UpdateSubjectRequest represents subject update data
type UpdateSubjectRequest struct {
	Name *string `json:"name,omitempty" binding:"omitempty,min=1"`
	Code *string `json:"code,omitempty"`
	Type *string `json:"type,omitempty" binding:"omitempty,oneof=theory practical both"`
}
