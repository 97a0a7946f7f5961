package dto

// CreateClassRequest represents class creation data
type CreateClassRequest struct {
	Name         string `json:"name" binding:"required"`
	NumericLevel *int   `json:"numericLevel,omitempty" binding:"omitempty,min=0"`
}

// UpdateClassRequest represents class update data
type UpdateClassRequest struct {
	Name         *string `json:"name,omitempty" binding:"omitempty,min=1"`
	NumericLevel *int    `json:"numericLevel,omitempty" binding:"omitempty,min=0"`
}

// CreateSectionRequest represents section creation data
type CreateSectionRequest struct {
	ClassID        string  `json:"classId" binding:"required"`
	Name           string  `json:"name" binding:"required"`
	MaxStudents    *int    `json:"maxStudents,omitempty" binding:"omitempty,min=1"`
	ClassTeacherID *string `json:"classTeacherId,omitempty"`
}

// UpdateSectionRequest carries only the mutable section fields; the class of an
// existing section cannot change.
type UpdateSectionRequest struct {
	Name           *string `json:"name,omitempty" binding:"omitempty,min=1"`
	MaxStudents    *int    `json:"maxStudents,omitempty" binding:"omitempty,min=1"`
	ClassTeacherID *string `json:"classTeacherId,omitempty"`
}
