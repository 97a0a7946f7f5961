package dto

// CreateStudentRequest represents student admission data
type CreateStudentRequest struct {
	AdmissionNumber string  `json:"admissionNumber" binding:"required"`
	FirstName       string  `json:"firstName" binding:"required"`
	LastName        *string `json:"lastName,omitempty"`
	Gender          *string `json:"gender,omitempty" binding:"omitempty,oneof=male female other"`
	DateOfBirth     *string `json:"dateOfBirth,omitempty" binding:"omitempty,datetime=2006-01-02"`
	BloodGroup      *string `json:"bloodGroup,omitempty" binding:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	AdmissionDate   *string `json:"admissionDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	ClassID         *string `json:"classId,omitempty"`
	SectionID       *string `json:"sectionId,omitempty"`
	RollNumber      *int    `json:"rollNumber,omitempty" binding:"omitempty,min=1"`
	FatherName      *string `json:"fatherName,omitempty"`
	MotherName      *string `json:"motherName,omitempty"`
	GuardianPhone   *string `json:"guardianPhone,omitempty"`
	GuardianEmail   *string `json:"guardianEmail,omitempty" binding:"omitempty,email"`
	Address         *string `json:"address,omitempty"`
	Status          *string `json:"status,omitempty" binding:"omitempty,oneof=active alumni transferred expelled"`
}

// UpdateStudentRequest is a sparse update: nil fields are left unchanged.
type UpdateStudentRequest struct {
	AdmissionNumber *string `json:"admissionNumber,omitempty" binding:"omitempty,min=1"`
	FirstName       *string `json:"firstName,omitempty" binding:"omitempty,min=1"`
	LastName        *string `json:"lastName,omitempty"`
	Gender          *string `json:"gender,omitempty" binding:"omitempty,oneof=male female other"`
	DateOfBirth     *string `json:"dateOfBirth,omitempty" binding:"omitempty,datetime=2006-01-02"`
	BloodGroup      *string `json:"bloodGroup,omitempty" binding:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	AdmissionDate   *string `json:"admissionDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	ClassID         *string `json:"classId,omitempty"`
	SectionID       *string `json:"sectionId,omitempty"`
	RollNumber      *int    `json:"rollNumber,omitempty" binding:"omitempty,min=1"`
	FatherName      *string `json:"fatherName,omitempty"`
	MotherName      *string `json:"motherName,omitempty"`
	GuardianPhone   *string `json:"guardianPhone,omitempty"`
	GuardianEmail   *string `json:"guardianEmail,omitempty" binding:"omitempty,email"`
	Address         *string `json:"address,omitempty"`
	Status          *string `json:"status,omitempty" binding:"omitempty,oneof=active alumni transferred expelled"`
}
