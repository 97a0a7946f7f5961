package resources

import (
	"github.com/yigit/schooldash/internal/app/forms"
	"github.com/yigit/schooldash/internal/app/models"
	"github.com/yigit/schooldash/internal/navigation"
)

// StudentSchema is the admission/edit form. Class and section are required and the
// section options follow the selected class.
var StudentSchema = forms.Schema{Fields: []forms.Field{
	{Name: "firstName", Label: "First Name", Kind: forms.Text, Required: true, Placeholder: "Enter first name"},
	{Name: "lastName", Label: "Last Name", Kind: forms.Text, Placeholder: "Enter last name"},
	{Name: "admissionNumber", Label: "Admission Number", Kind: forms.Text, Required: true, Placeholder: "e.g., ADM2024001"},
	{Name: "dateOfBirth", Label: "Date of Birth", Kind: forms.Date},
	{Name: "gender", Label: "Gender", Kind: forms.Select, Options: genderOptions()},
	{Name: "bloodGroup", Label: "Blood Group", Kind: forms.Select, Options: forms.EnumOptions(models.BloodGroups, func(s string) string { return s })},
	{Name: "classId", Label: "Class", Kind: forms.Select, Source: SourceClasses, Required: true},
	{Name: "sectionId", Label: "Section", Kind: forms.Select, Source: SourceSections, DependsOn: "classId", Required: true,
		RequiredMessage: "Select a section of the chosen class."},
	{Name: "rollNumber", Label: "Roll Number", Kind: forms.Number, Rules: "gte=1"},
	{Name: "admissionDate", Label: "Admission Date", Kind: forms.Date},
	{Name: "fatherName", Label: "Father's Name", Kind: forms.Text},
	{Name: "motherName", Label: "Mother's Name", Kind: forms.Text},
	{Name: "guardianPhone", Label: "Guardian Phone", Kind: forms.Phone, Required: true, Placeholder: "+91 98765 43210"},
	{Name: "guardianEmail", Label: "Guardian Email", Kind: forms.Email},
	{Name: "address", Label: "Address", Kind: forms.Textarea},
	{Name: "status", Label: "Status", Kind: forms.Select, Options: forms.EnumOptions(models.StudentStatuses, models.Humanize), Default: string(models.StudentActive)},
}}

// Students describes the student screens.
var Students = &Descriptor[models.Student]{
	Key:      "students",
	Singular: "Student",
	Plural:   "Students",
	APIPath:  "/students",
	Path:     navigation.PathStudents,
	Schema:   StudentSchema,
	Columns: []Column[models.Student]{
		{Key: "name", Label: "Name", Sortable: true, Value: func(s models.Student) string { return s.FullName() }},
		{Key: "admissionNumber", Label: "Admission No.", Sortable: true, Value: func(s models.Student) string { return s.AdmissionNumber }},
		{Key: "class", Label: "Class", Sortable: true, Value: func(s models.Student) string { return opt(s.ClassName) }},
		{Key: "section", Label: "Section", Value: func(s models.Student) string { return opt(s.SectionName) }},
		{Key: "rollNumber", Label: "Roll No.", Sortable: true, Value: func(s models.Student) string { return num(s.RollNumber) }},
		{Key: "guardianPhone", Label: "Guardian Phone", Value: func(s models.Student) string { return opt(s.GuardianPhone) }},
		{Key: "status", Label: "Status", Sortable: true, Badge: true, Value: func(s models.Student) string { return string(s.Status) }},
	},
	Detail: []DetailGroup[models.Student]{
		{Title: "Personal Information", Items: []DetailItem[models.Student]{
			{Label: "Date of Birth", Value: func(s models.Student) string { return date(s.DateOfBirth) }},
			{Label: "Gender", Value: func(s models.Student) string { return human(s.Gender) }},
			{Label: "Blood Group", Value: func(s models.Student) string { return opt(s.BloodGroup) }},
			{Label: "Admission Date", Value: func(s models.Student) string { return date(s.AdmissionDate) }},
		}},
		{Title: "Academic", Items: []DetailItem[models.Student]{
			{Label: "Admission Number", Value: func(s models.Student) string { return s.AdmissionNumber }},
			{Label: "Class", Value: func(s models.Student) string { return opt(s.ClassName) }},
			{Label: "Section", Value: func(s models.Student) string { return opt(s.SectionName) }},
			{Label: "Roll Number", Value: func(s models.Student) string { return num(s.RollNumber) }},
		}},
		{Title: "Guardian Information", Items: []DetailItem[models.Student]{
			{Label: "Father's Name", Value: func(s models.Student) string { return opt(s.FatherName) }},
			{Label: "Mother's Name", Value: func(s models.Student) string { return opt(s.MotherName) }},
			{Label: "Phone", Value: func(s models.Student) string { return opt(s.GuardianPhone) }},
			{Label: "Email", Value: func(s models.Student) string { return opt(s.GuardianEmail) }},
		}},
		{Title: "Address", Items: []DetailItem[models.Student]{
			{Label: "Address", Value: func(s models.Student) string { return opt(s.Address) }},
		}},
	},
	ID:    func(s models.Student) string { return s.ID },
	Title: func(s models.Student) string { return s.FullName() },
	Search: func(s models.Student) string {
		return joinSearch(s.FullName(), s.AdmissionNumber, models.Deref(s.ClassName), models.Deref(s.GuardianPhone))
	},
	CanCreate:     true,
	CanEdit:       true,
	CanDelete:     true,
	EmptyTitle:    "No students yet",
	EmptyText:     "Admit your first student to get started.",
	DeleteWarning: "This will permanently remove the student record.",
	CreatedFlash:  "Student admitted successfully.",
	UpdatedFlash:  "Student updated successfully.",
	DeletedFlash:  "Student deleted.",
	NotFoundText:  "Student not found.",
}
