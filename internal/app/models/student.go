package models

// Student is a pupil enrolled in a school, optionally placed in a class and section.
type Student struct {
	ID              string        `json:"id"`
	SchoolID        string        `json:"schoolId,omitempty"`
	AdmissionNumber string        `json:"admissionNumber"`
	FirstName       string        `json:"firstName"`
	LastName        *string       `json:"lastName,omitempty"`
	Gender          *string       `json:"gender,omitempty"`
	ClassID         *string       `json:"classId,omitempty"`
	ClassName       *string       `json:"className,omitempty"`
	SectionID       *string       `json:"sectionId,omitempty"`
	SectionName     *string       `json:"sectionName,omitempty"`
	RollNumber      *int          `json:"rollNumber,omitempty"`
	GuardianPhone   *string       `json:"guardianPhone,omitempty"`
	Status          StudentStatus `json:"status"`
	PhotoURL        *string       `json:"photoUrl,omitempty"`
	CreatedAt       string        `json:"createdAt"`

	// Detail fields, present on GET /students/{id}.
	DateOfBirth   *string `json:"dateOfBirth,omitempty"`
	BloodGroup    *string `json:"bloodGroup,omitempty"`
	AdmissionDate *string `json:"admissionDate,omitempty"`
	FatherName    *string `json:"fatherName,omitempty"`
	MotherName    *string `json:"motherName,omitempty"`
	GuardianEmail *string `json:"guardianEmail,omitempty"`
	Address       *string `json:"address,omitempty"`
	UpdatedAt     *string `json:"updatedAt,omitempty"`
}

// FullName joins first and last name.
func (s Student) FullName() string {
	if last := Deref(s.LastName); last != "" {
		return s.FirstName + " " + last
	}
	return s.FirstName
}
