package models

import "strings"

// Staff is an employee of a school. Department and designation are free-text
// copies of master data titles, not foreign keys.
type Staff struct {
	ID             string      `json:"id"`
	SchoolID       string      `json:"schoolId,omitempty"`
	EmployeeID     string      `json:"employeeId"`
	FirstName      string      `json:"firstName"`
	LastName       *string     `json:"lastName,omitempty"`
	Designation    *string     `json:"designation,omitempty"`
	Department     *string     `json:"department,omitempty"`
	Gender         *string     `json:"gender,omitempty"`
	DateOfBirth    *string     `json:"dateOfBirth,omitempty"`
	Phone          *string     `json:"phone,omitempty"`
	Email          *string     `json:"email,omitempty"`
	Status         StaffStatus `json:"status"`
	JoiningDate    *string     `json:"joiningDate,omitempty"`
	EmploymentType *string     `json:"employmentType,omitempty"`
	Salary         *string     `json:"salary,omitempty"`
	Address        *string     `json:"address,omitempty"`
}

// FullName joins first and last name.
func (s Staff) FullName() string {
	if last := Deref(s.LastName); last != "" {
		return s.FirstName + " " + last
	}
	return s.FirstName
}

// Initials returns up to two upper-case initials for avatars.
func (s Staff) Initials() string {
	out := ""
	if s.FirstName != "" {
		out += string([]rune(s.FirstName)[:1])
	}
	if last := Deref(s.LastName); last != "" {
		out += string([]rune(last)[:1])
	}
	return strings.ToUpper(out)
}
