package models

import "strings"

// RoleType defines the user role type
type RoleType string

const (
	RoleSuperAdmin  RoleType = "super_admin"
	RoleSchoolAdmin RoleType = "school_admin"
	RolePrincipal   RoleType = "principal"
	RoleTeacher     RoleType = "teacher"
	RoleAccountant  RoleType = "accountant"
	RoleLibrarian   RoleType = "librarian"
	RoleParent      RoleType = "parent"
	RoleStudent     RoleType = "student"
)

// Roles lists every role the API can assign.
var Roles = []RoleType{
	RoleSuperAdmin, RoleSchoolAdmin, RolePrincipal, RoleTeacher,
	RoleAccountant, RoleLibrarian, RoleParent, RoleStudent,
}

// Valid reports whether r is a known role.
func (r RoleType) Valid() bool {
	for _, role := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Label formats the role for display, e.g. "school_admin" -> "School Admin".
func (r RoleType) Label() string {
	return Humanize(string(r))
}

// StudentStatus is the enrolment state of a student.
type StudentStatus string

const (
	StudentActive      StudentStatus = "active"
	StudentAlumni      StudentStatus = "alumni"
	StudentTransferred StudentStatus = "transferred"
	StudentExpelled    StudentStatus = "expelled"
)

// StudentStatuses is the full enumeration, in display order.
var StudentStatuses = []string{
	string(StudentActive), string(StudentAlumni), string(StudentTransferred), string(StudentExpelled),
}

// StaffStatus is the employment state of a staff member. StaffInactive is the
// state a deleted staff member is left in.
type StaffStatus string

const (
	StaffActive   StaffStatus = "active"
	StaffOnLeave  StaffStatus = "on_leave"
	StaffResigned StaffStatus = "resigned"
	StaffInactive StaffStatus = "inactive"
)

// StaffStatuses is the full enumeration, in display order.
var StaffStatuses = []string{
	string(StaffActive), string(StaffOnLeave), string(StaffResigned), string(StaffInactive),
}

var (
	Genders         = []string{"male", "female", "other"}
	BloodGroups     = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}
	EmploymentTypes = []string{"full_time", "part_time", "contract"}
	SubjectTypes    = []string{"theory", "practical", "both"}
	Months          = []string{
		"january", "february", "march", "april", "may", "june",
		"july", "august", "september", "october", "november", "december",
	}
)

// Humanize turns an enum value such as "on_leave" into "On Leave".
func Humanize(s string) string {
	parts := strings.Fields(strings.ReplaceAll(s, "_", " "))
	for i, p := range parts {
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

// Deref returns the value behind an optional string, or "".
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}

// IntPtr returns a pointer to i.
func IntPtr(i int) *int {
	return &i
}
