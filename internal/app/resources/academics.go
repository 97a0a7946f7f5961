package resources

import (
	"strconv"

	"github.com/yigit/schooldash/internal/app/forms"
	"github.com/yigit/schooldash/internal/app/models"
	"github.com/yigit/schooldash/internal/navigation"
)

// ClassSchema is the class form.
var ClassSchema = forms.Schema{Fields: []forms.Field{
	{Name: "name", Label: "Class Name", Kind: forms.Text, Required: true, RequiredMessage: "Class name is required.", Placeholder: "e.g., Grade 5"},
	{Name: "numericLevel", Label: "Numeric Level", Kind: forms.Number, Rules: "gte=0,lte=20", Placeholder: "e.g., 5",
		Help: "Used to order classes."},
}}

// Classes describes the class screens.
var Classes = &Descriptor[models.Class]{
	Key:      "classes",
	Singular: "Class",
	Plural:   "Classes",
	APIPath:  "/classes",
	Path:     navigation.PathClasses,
	Schema:   ClassSchema,
	Columns: []Column[models.Class]{
		{Key: "name", Label: "Name", Sortable: true, Value: func(c models.Class) string { return c.Name }},
		{Key: "numericLevel", Label: "Level", Sortable: true, Value: func(c models.Class) string { return num(c.NumericLevel) }},
		{Key: "createdAt", Label: "Created", Sortable: true, Value: func(c models.Class) string { return date(&c.CreatedAt) }},
	},
	ID:            func(c models.Class) string { return c.ID },
	Title:         func(c models.Class) string { return c.Name },
	Search:        func(c models.Class) string { return joinSearch(c.Name) },
	CanCreate:     true,
	CanEdit:       true,
	CanDelete:     true,
	EmptyTitle:    "No classes yet",
	EmptyText:     "Create your first class to start organising sections and students.",
	DeleteWarning: "Sections and enrolments of this class may be affected.",
	CreatedFlash:  "Class created successfully.",
	UpdatedFlash:  "Class updated successfully.",
	DeletedFlash:  "Class deleted.",
	NotFoundText:  "Class not found.",
}

// SectionSchema is the section form. A section's class is chosen on create and
// cannot change afterwards.
var SectionSchema = forms.Schema{Fields: []forms.Field{
	{Name: "classId", Label: "Class", Kind: forms.Select, Source: SourceClasses, Required: true, Immutable: true,
		RequiredMessage: "Class and section name are required."},
	{Name: "name", Label: "Section Name", Kind: forms.Text, Required: true, Placeholder: "e.g., A",
		RequiredMessage: "Class and section name are required."},
	{Name: "maxStudents", Label: "Max Students", Kind: forms.Number, Rules: "gte=1,lte=500", Default: strconv.Itoa(models.DefaultMaxStudents)},
}}

// Sections describes the section screens. The list is grouped by class and can be
// narrowed to one class with ?classId=.
var Sections = &Descriptor[models.Section]{
	Key:      "sections",
	Singular: "Section",
	Plural:   "Sections",
	APIPath:  "/sections",
	Path:     navigation.PathSections,
	Schema:   SectionSchema,
	Columns: []Column[models.Section]{
		{Key: "name", Label: "Section", Sortable: true, Value: func(s models.Section) string { return s.Name }},
		{Key: "className", Label: "Class", Sortable: true, Value: func(s models.Section) string { return str(s.ClassName) }},
		{Key: "maxStudents", Label: "Capacity", Sortable: true, Value: func(s models.Section) string { return strconv.Itoa(s.Capacity()) }},
	},
	Filter: &Filter{Param: "classId", Label: "Class", Source: SourceClasses, AllLabel: "All sections"},
	ID:     func(s models.Section) string { return s.ID },
	Title: func(s models.Section) string {
		if s.ClassName == "" {
			return "Section " + s.Name
		}
		return s.ClassName + " - Section " + s.Name
	},
	Search:           func(s models.Section) string { return joinSearch(s.Name, s.ClassName) },
	GroupBy:          func(s models.Section) string { return str(s.ClassName) },
	CanCreate:        true,
	CanEdit:          true,
	CanDelete:        true,
	EmptyTitle:       "No sections yet",
	EmptyText:        "Add your first section to a class.",
	Prerequisite:     SourceClasses,
	PrerequisiteText: "Create a class first, then add sections to it.",
	PrerequisiteLink: navigation.PathClasses + "/new",
	DeleteWarning:    "Students assigned to this section will need a new section.",
	CreatedFlash:     "Section created successfully.",
	UpdatedFlash:     "Section updated successfully.",
	DeletedFlash:     "Section deleted.",
	NotFoundText:     "Section not found.",
}
