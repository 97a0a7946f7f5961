package resources

import (
	"github.com/yigit/schooldash/internal/app/forms"
	"github.com/yigit/schooldash/internal/app/models"
	"github.com/yigit/schooldash/internal/navigation"
)

// AcademicYearSchema is the academic year form.
var AcademicYearSchema = forms.Schema{Fields: []forms.Field{
	{Name: "name", Label: "Name", Kind: forms.Text, Required: true, Placeholder: "e.g., 2024-25"},
	{Name: "startDate", Label: "Start Date", Kind: forms.Date, Required: true},
	{Name: "endDate", Label: "End Date", Kind: forms.Date, Required: true},
	{Name: "isCurrent", Label: "Current academic year", Kind: forms.Checkbox},
}}

// AcademicYears describes the academic year tab of master data.
var AcademicYears = &Descriptor[models.AcademicYear]{
	Key:      "academic-years",
	Singular: "Academic Year",
	Plural:   "Academic Years",
	APIPath:  "/academic-years",
	Path:     navigation.PathMasterData + "/academic-years",
	Schema:   AcademicYearSchema,
	Columns: []Column[models.AcademicYear]{
		{Key: "name", Label: "Name", Sortable: true, Value: func(y models.AcademicYear) string { return y.Name }},
		{Key: "startDate", Label: "Start", Sortable: true, Value: func(y models.AcademicYear) string { return date(&y.StartDate) }},
		{Key: "endDate", Label: "End", Sortable: true, Value: func(y models.AcademicYear) string { return date(&y.EndDate) }},
		{Key: "isCurrent", Label: "Current", Badge: true, Value: func(y models.AcademicYear) string {
			if y.IsCurrent {
				return "current"
			}
			return ""
		}},
	},
	ID:           func(y models.AcademicYear) string { return y.ID },
	Title:        func(y models.AcademicYear) string { return y.Name },
	Search:       func(y models.AcademicYear) string { return joinSearch(y.Name) },
	CanCreate:    true,
	CanEdit:      true,
	CanDelete:    true,
	EmptyTitle:   "No academic years",
	EmptyText:    "Add the current academic year.",
	CreatedFlash: "Academic year created.",
	UpdatedFlash: "Academic year updated.",
	DeletedFlash: "Academic year deleted.",
	NotFoundText: "Academic year not found.",
}

// DepartmentSchema is the department form.
var DepartmentSchema = forms.Schema{Fields: []forms.Field{
	{Name: "name", Label: "Name", Kind: forms.Text, Required: true, Placeholder: "e.g., Mathematics"},
	{Name: "code", Label: "Code", Kind: forms.Text, Rules: "code", Placeholder: "e.g., MATH"},
}}

// Departments describes the department tab of master data.
var Departments = &Descriptor[models.Department]{
	Key:      "departments",
	Singular: "Department",
	Plural:   "Departments",
	APIPath:  "/departments",
	Path:     navigation.PathMasterData + "/departments",
	Schema:   DepartmentSchema,
	Columns: []Column[models.Department]{
		{Key: "name", Label: "Name", Sortable: true, Value: func(d models.Department) string { return d.Name }},
		{Key: "code", Label: "Code", Sortable: true, Value: func(d models.Department) string { return opt(d.Code) }},
	},
	ID:           func(d models.Department) string { return d.ID },
	Title:        func(d models.Department) string { return d.Name },
	Search:       func(d models.Department) string { return joinSearch(d.Name, models.Deref(d.Code)) },
	CanCreate:    true,
	CanEdit:      true,
	CanDelete:    true,
	EmptyTitle:   "No departments",
	EmptyText:    "Add departments to organise staff.",
	CreatedFlash: "Department created.",
	UpdatedFlash: "Department updated.",
	DeletedFlash: "Department deleted.",
	NotFoundText: "Department not found.",
}

// DesignationSchema is the designation form.
var DesignationSchema = forms.Schema{Fields: []forms.Field{
	{Name: "title", Label: "Title", Kind: forms.Text, Required: true, Placeholder: "e.g., Senior Teacher"},
	{Name: "description", Label: "Description", Kind: forms.Textarea},
}}

// Designations describes the designation tab of master data.
var Designations = &Descriptor[models.Designation]{
	Key:      "designations",
	Singular: "Designation",
	Plural:   "Designations",
	APIPath:  "/designations",
	Path:     navigation.PathMasterData + "/designations",
	Schema:   DesignationSchema,
	Columns: []Column[models.Designation]{
		{Key: "title", Label: "Title", Sortable: true, Value: func(d models.Designation) string { return d.Title }},
		{Key: "description", Label: "Description", Value: func(d models.Designation) string { return opt(d.Description) }},
	},
	ID:           func(d models.Designation) string { return d.ID },
	Title:        func(d models.Designation) string { return d.Title },
	Search:       func(d models.Designation) string { return joinSearch(d.Title, models.Deref(d.Description)) },
	CanCreate:    true,
	CanEdit:      true,
	CanDelete:    true,
	EmptyTitle:   "No designations",
	EmptyText:    "Add job titles for staff members.",
	CreatedFlash: "Designation created.",
	UpdatedFlash: "Designation updated.",
	DeletedFlash: "Designation deleted.",
	NotFoundText: "Designation not found.",
}

// SubjectSchema is the subject form.
var SubjectSchema = forms.Schema{Fields: []forms.Field{
	{Name: "name", Label: "Name", Kind: forms.Text, Required: true, Placeholder: "e.g., Physics"},
	{Name: "code", Label: "Code", Kind: forms.Text, Rules: "code", Placeholder: "e.g., PHY"},
	{Name: "type", Label: "Type", Kind: forms.Select, Required: true, Default: "theory", Options: forms.EnumOptions(models.SubjectTypes, models.Humanize)},
}}

// Subjects describes the subject tab of master data.
var Subjects = &Descriptor[models.Subject]{
	Key:      "subjects",
	Singular: "Subject",
	Plural:   "Subjects",
	APIPath:  "/subjects",
	Path:     navigation.PathMasterData + "/subjects",
	Schema:   SubjectSchema,
	Columns: []Column[models.Subject]{
		{Key: "name", Label: "Name", Sortable: true, Value: func(s models.Subject) string { return s.Name }},
		{Key: "code", Label: "Code", Sortable: true, Value: func(s models.Subject) string { return opt(s.Code) }},
		{Key: "type", Label: "Type", Sortable: true, Badge: true, Value: func(s models.Subject) string { return s.Type }},
	},
	ID:           func(s models.Subject) string { return s.ID },
	Title:        func(s models.Subject) string { return s.Name },
	Search:       func(s models.Subject) string { return joinSearch(s.Name, models.Deref(s.Code)) },
	CanCreate:    true,
	CanEdit:      true,
	CanDelete:    true,
	EmptyTitle:   "No subjects",
	EmptyText:    "Add the subjects taught at your school.",
	CreatedFlash: "Subject created.",
	UpdatedFlash: "Subject updated.",
	DeletedFlash: "Subject deleted.",
	NotFoundText: "Subject not found.",
}

// MasterDataTab is one tab of the master data screen.
type MasterDataTab struct {
	Label string
	Path  string
}

// MasterDataTabs are the master data resources, in tab order.
var MasterDataTabs = []MasterDataTab{
	{Label: AcademicYears.Plural, Path: AcademicYears.Path},
	{Label: Departments.Plural, Path: Departments.Path},
	{Label: Designations.Plural, Path: Designations.Path},
	{Label: Subjects.Plural, Path: Subjects.Path},
}
