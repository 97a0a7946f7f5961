package resources

import (
	"strconv"
	"strings"

	"github.com/yigit/schooldash/internal/app/forms"
	"github.com/yigit/schooldash/internal/app/models"
	"github.com/yigit/schooldash/internal/pkg/helpers"
)

// Blank is displayed for absent values.
const Blank = "-"

// Dynamic option sources shared by forms.
const (
	SourceClasses      = "classes"
	SourceSections     = "sections"
	SourceDepartments  = "departments"
	SourceDesignations = "designations"
)

// Column is one list-table column.
type Column[T any] struct {
	Key      string
	Label    string
	Sortable bool
	Value    func(T) string
	// Badge renders the value as a status pill.
	Badge bool
}

// DetailItem is one labelled read-only value of a detail page.
type DetailItem[T any] struct {
	Label string
	Value func(T) string
}

// DetailGroup is a titled block of detail items, e.g. "Personal Information".
type DetailGroup[T any] struct {
	Title string
	Items []DetailItem[T]
}

// Filter is a list query parameter forwarded to the API, e.g. ?classId= on sections.
type Filter struct {
	Param    string
	Label    string
	Source   string
	AllLabel string
}

// Descriptor is everything the generic list/form/detail screens need to know about
// one entity type.
type Descriptor[T any] struct {
	Key      string
	Singular string
	Plural   string
	APIPath  string
	Path     string

	Schema  forms.Schema
	Columns []Column[T]
	Detail  []DetailGroup[T]
	Filter  *Filter

	ID     func(T) string
	Title  func(T) string
	Search func(T) string
	// GroupBy, when set, splits the list into titled groups.
	GroupBy func(T) string

	CanCreate bool
	CanEdit   bool
	CanDelete bool

	EmptyTitle string
	EmptyText  string
	// Prerequisite, when set, is checked before showing the create call to action:
	// the list shows PrerequisiteText instead while the source has no options.
	Prerequisite     string
	PrerequisiteText string
	PrerequisiteLink string

	DeleteWarning string
	CreatedFlash  string
	UpdatedFlash  string
	DeletedFlash  string
	NotFoundText  string
}

// Sources lists the dynamic option sources the descriptor's form and filter use.
func (d *Descriptor[T]) Sources() []string {
	seen := map[string]bool{}
	var out []string
	add := func(s string) {
		if s != "" && !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	for _, f := range d.Schema.Fields {
		add(f.Source)
	}
	if d.Filter != nil {
		add(d.Filter.Source)
	}
	add(d.Prerequisite)
	return out
}

// HasDetail reports whether the entity has a detail page.
func (d *Descriptor[T]) HasDetail() bool {
	return len(d.Detail) > 0
}

func str(s string) string {
	if strings.TrimSpace(s) == "" {
		return Blank
	}
	return s
}

func opt(s *string) string {
	return str(models.Deref(s))
}

func date(s *string) string {
	if s == nil || *s == "" {
		return Blank
	}
	return helpers.FormatDate(*s)
}

func human(s *string) string {
	if s == nil || *s == "" {
		return Blank
	}
	return models.Humanize(*s)
}

func num(n *int) string {
	if n == nil {
		return Blank
	}
	return strconv.Itoa(*n)
}

func joinSearch(parts ...string) string {
	return strings.ToLower(strings.Join(parts, " "))
}

func genderOptions() []forms.Option {
	return forms.EnumOptions(models.Genders, models.Humanize)
}
