package models

// User is the authenticated account cached in the session.
type User struct {
	ID       string   `json:"id"`
	Email    string   `json:"email"`
	Role     RoleType `json:"role"`
	SchoolID string   `json:"schoolId,omitempty"`
}

// AccountProfile is the current user's account joined with the linked staff record,
// as served by /auth/me. Staff fields are nil when no staff record is linked.
type AccountProfile struct {
	ID        string   `json:"id"`
	Email     string   `json:"email"`
	Role      RoleType `json:"role"`
	SchoolID  *string  `json:"schoolId,omitempty"`
	IsActive  bool     `json:"isActive"`
	LastLogin *string  `json:"lastLogin,omitempty"`
	CreatedAt string   `json:"createdAt"`

	StaffID     *string `json:"staffId,omitempty"`
	FirstName   *string `json:"firstName,omitempty"`
	LastName    *string `json:"lastName,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Gender      *string `json:"gender,omitempty"`
	DateOfBirth *string `json:"dateOfBirth,omitempty"`
	Designation *string `json:"designation,omitempty"`
	Department  *string `json:"department,omitempty"`
	EmployeeID  *string `json:"employeeId,omitempty"`
	JoiningDate *string `json:"joiningDate,omitempty"`
	Address     *string `json:"address,omitempty"`
	PhotoURL    *string `json:"photoUrl,omitempty"`
}

// DisplayName is the staff name when linked, otherwise the email.
func (p AccountProfile) DisplayName() string {
	name := Deref(p.FirstName)
	if last := Deref(p.LastName); last != "" {
		name += " " + last
	}
	if name == "" {
		return p.Email
	}
	return name
}
