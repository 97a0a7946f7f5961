package dto

// CreateSchoolRequest onboards a school together with its first school admin.
type CreateSchoolRequest struct {
	Name          string  `json:"name" binding:"required,min=2"`
	Email         string  `json:"email" binding:"required,email"`
	Phone         string  `json:"phone" binding:"required,min=10"`
	Address       *string `json:"address,omitempty"`
	City          string  `json:"city" binding:"required"`
	State         string  `json:"state" binding:"required"`
	AdminEmail    string  `json:"adminEmail" binding:"required,email"`
	AdminPassword string  `json:"adminPassword" binding:"required,min=6"`
}

// UpdateSchoolRequest is the sparse PUT /schools/me body.
type UpdateSchoolRequest struct {
	Name              *string `json:"name,omitempty" binding:"omitempty,min=2"`
	Email             *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone             *string `json:"phone,omitempty"`
	Address           *string `json:"address,omitempty"`
	City              *string `json:"city,omitempty"`
	State             *string `json:"state,omitempty"`
	Country           *string `json:"country,omitempty"`
	Timezone          *string `json:"timezone,omitempty"`
	AcademicYearStart *string `json:"academicYearStart,omitempty" binding:"omitempty,oneof=january february march april may june july august september october november december"`
	EstdYear          *int    `json:"estdYear,omitempty" binding:"omitempty,min=1800"`
	Board             *string `json:"board,omitempty"`
	AffiliationNo     *string `json:"affiliationNo,omitempty"`
	Website           *string `json:"website,omitempty" binding:"omitempty,url"`
	Motto             *string `json:"motto,omitempty" binding:"omitempty,max=100"`
}
