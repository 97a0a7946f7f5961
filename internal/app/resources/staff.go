package resources

import (
	"github.com/yigit/schooldash/internal/app/forms"
	"github.com/yigit/schooldash/internal/app/models"
	"github.com/yigit/schooldash/internal/navigation"
)

// StaffSchema is the onboarding/edit form. Department and designation are chosen
// from master data but stored as plain titles.
var StaffSchema = forms.Schema{Fields: []forms.Field{
	{Name: "firstName", Label: "First Name", Kind: forms.Text, Required: true, Placeholder: "Enter first name"},
	{Name: "lastName", Label: "Last Name", Kind: forms.Text, Placeholder: "Enter last name"},
	{Name: "employeeId", Label: "Employee ID", Kind: forms.Text, Required: true, Placeholder: "e.g., EMP001"},
	{Name: "dateOfBirth", Label: "Date of Birth", Kind: forms.Date},
	{Name: "gender", Label: "Gender", Kind: forms.Select, Options: genderOptions()},
	{Name: "phone", Label: "Phone", Kind: forms.Phone, Required: true, Placeholder: "+91 98765 43210"},
	{Name: "email", Label: "Email", Kind: forms.Email, Required: true, Placeholder: "email@school.com"},
	{Name: "department", Label: "Department", Kind: forms.Select, Source: SourceDepartments, Required: true},
	{Name: "designation", Label: "Designation", Kind: forms.Select, Source: SourceDesignations, Required: true},
	{Name: "employmentType", Label: "Employment Type", Kind: forms.Select, Options: forms.EnumOptions(models.EmploymentTypes, models.Humanize)},
	{Name: "joiningDate", Label: "Joining Date", Kind: forms.Date},
	{Name: "salary", Label: "Monthly Salary", Kind: forms.Decimal, Placeholder: "e.g., 50000"},
	{Name: "address", Label: "Full Address", Kind: forms.Textarea, Placeholder: "Enter complete address"},
	{Name: "status", Label: "Status", Kind: forms.Select, Options: forms.EnumOptions(models.StaffStatuses, models.Humanize), Default: string(models.StaffActive)},
}}

// Staff describes the staff screens. Deleting a staff member deactivates them.
var Staff = &Descriptor[models.Staff]{
	Key:      "staff",
	Singular: "Staff Member",
	Plural:   "Staff",
	APIPath:  "/staff",
	Path:     navigation.PathStaff,
	Schema:   StaffSchema,
	Columns: []Column[models.Staff]{
		{Key: "name", Label: "Name", Sortable: true, Value: func(s models.Staff) string { return s.FullName() }},
		{Key: "employeeId", Label: "Employee ID", Sortable: true, Value: func(s models.Staff) string { return s.EmployeeID }},
		{Key: "designation", Label: "Designation", Sortable: true, Value: func(s models.Staff) string { return opt(s.Designation) }},
		{Key: "department", Label: "Department", Sortable: true, Value: func(s models.Staff) string { return opt(s.Department) }},
		{Key: "phone", Label: "Phone", Value: func(s models.Staff) string { return opt(s.Phone) }},
		{Key: "status", Label: "Status", Sortable: true, Badge: true, Value: func(s models.Staff) string { return string(s.Status) }},
	},
	Detail: []DetailGroup[models.Staff]{
		{Title: "Personal Information", Items: []DetailItem[models.Staff]{
			{Label: "Date of Birth", Value: func(s models.Staff) string { return date(s.DateOfBirth) }},
			{Label: "Gender", Value: func(s models.Staff) string { return human(s.Gender) }},
			{Label: "Joining Date", Value: func(s models.Staff) string { return date(s.JoiningDate) }},
			{Label: "Employment Type", Value: func(s models.Staff) string { return human(s.EmploymentType) }},
		}},
		{Title: "Contact Details", Items: []DetailItem[models.Staff]{
			{Label: "Phone", Value: func(s models.Staff) string { return opt(s.Phone) }},
			{Label: "Email", Value: func(s models.Staff) string { return opt(s.Email) }},
			{Label: "Address", Value: func(s models.Staff) string {
				if models.Deref(s.Address) == "" {
					return "No address provided"
				}
				return *s.Address
			}},
		}},
		{Title: "Employment", Items: []DetailItem[models.Staff]{
			{Label: "Employee ID", Value: func(s models.Staff) string { return s.EmployeeID }},
			{Label: "Department", Value: func(s models.Staff) string { return opt(s.Department) }},
			{Label: "Designation", Value: func(s models.Staff) string { return opt(s.Designation) }},
			{Label: "Status", Value: func(s models.Staff) string { return models.Humanize(string(s.Status)) }},
		}},
		{Title: "Salary Information", Items: []DetailItem[models.Staff]{
			{Label: "Monthly Salary", Value: func(s models.Staff) string { return FormatSalary(s.Salary) }},
		}},
	},
	ID:    func(s models.Staff) string { return s.ID },
	Title: func(s models.Staff) string { return s.FullName() },
	Search: func(s models.Staff) string {
		return joinSearch(s.FullName(), s.EmployeeID, models.Deref(s.Department), models.Deref(s.Designation), models.Deref(s.Email))
	},
	CanCreate:     true,
	CanEdit:       true,
	CanDelete:     true,
	EmptyTitle:    "No staff members yet",
	EmptyText:     "Add your first staff member to get started.",
	DeleteWarning: "This will deactivate the staff member's user account.",
	CreatedFlash:  "Staff member added successfully.",
	UpdatedFlash:  "Staff member updated successfully.",
	DeletedFlash:  "Staff member deactivated.",
	NotFoundText:  "Staff member not found.",
}
