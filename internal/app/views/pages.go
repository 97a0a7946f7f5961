package views

import (
	"github.com/yigit/schooldash/internal/app/models"
	"github.com/yigit/schooldash/internal/navigation"
)

// Template names
const (
	PageLogin         = "login"
	PageDashboard     = "dashboard"
	PageList          = "list"
	PageForm          = "form"
	PageDetail        = "detail"
	PageConfirmDelete = "confirm_delete"
	PageError         = "error"
)

// Layout is the chrome shared by every page.
type Layout struct {
	Title string
	Path  string
	User  *models.User
	Menu  []navigation.Entry
	Flash *Flash
}

// RoleLabel formats the signed-in role for the header.
func (l Layout) RoleLabel() string {
	if l.User == nil {
		return ""
	}
	return l.User.Role.Label()
}

// Flash is a transient message. RemainingMS drives the client-side auto-hide.
type Flash struct {
	Kind        string
	Message     string
	RemainingMS int64
}

// Tab is one entry of a tab strip.
type Tab struct {
	Label  string
	Path   string
	Active bool
}

// Link is a labelled URL.
type Link struct {
	Label string
	Path  string
}

type LoginPage struct {
	Layout
	Email string
	Error string
}

// Stat is one counter tile of the dashboard home.
type Stat struct {
	Label string
	Value string
	Path  string
}

type DashboardPage struct {
	Layout
	Greeting   string
	SchoolName string
	Stats      []Stat
	Shortcuts  []Link
}

// Column is a list table header. SortPath is empty for unsortable columns.
type Column struct {
	Label    string
	SortPath string
	Sorted   string
}

type Cell struct {
	Value string
	Badge string
}

type Row struct {
	ID         string
	Cells      []Cell
	ShowPath   string
	EditPath   string
	DeletePath string
}

// RowGroup is a titled run of rows. Ungrouped lists have one group with no title.
type RowGroup struct {
	Title string
	Rows  []Row
}

type FilterView struct {
	Label    string
	Param    string
	AllLabel string
	AllPath  string
	Options  []Tab
	Selected string
}

type Pagination struct {
	Page     int
	Pages    int
	Total    int
	PrevPath string
	NextPath string
}

type ListPage struct {
	Layout
	Heading    string
	Singular   string
	Tabs       []Tab
	CreatePath string
	Query      string
	SearchPath string
	Filter     *FilterView
	Columns    []Column
	Groups     []RowGroup
	Pagination Pagination
	// APITotal is the server's pagination total, when it sent one.
	APITotal *int64

	// Empty states
	EmptyTitle string
	EmptyText  string
	EmptyLink  *Link
	NoMatches  bool
}

// HasRows reports whether any row is shown.
func (p ListPage) HasRows() bool {
	for _, g := range p.Groups {
		if len(g.Rows) > 0 {
			return true
		}
	}
	return false
}

// Option is a rendered select choice.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// Field is one rendered form control.
type Field struct {
	Name        string
	Label       string
	Control     string // input, textarea, select or checkbox
	InputType   string
	Value       string
	Checked     bool
	Required    bool
	Disabled    bool
	Placeholder string
	Help        string
	Error       string
	Options     []Option
	// Refresh marks a parent select: changing it re-renders its dependents.
	Refresh bool
	// ParentLabel is the label of a dependent select's parent.
	ParentLabel string
}

type FormPage struct {
	Layout
	Heading     string
	Tabs        []Tab
	Action      string
	CancelPath  string
	SubmitLabel string
	Error       string
	Fields      []Field
	// Hidden carries the previous parent values for dependent select refreshes.
	Hidden map[string]string
	// Info is read-only context shown above the form.
	Info []DetailItem
}

type DetailItem struct {
	Label string
	Value string
}

type DetailGroup struct {
	Title string
	Items []DetailItem
}

type DetailPage struct {
	Layout
	Heading  string
	Groups   []DetailGroup
	EditPath string
	BackPath string
	// State, when set, replaces the groups with StateMessage under that heading.
	State        string
	StateMessage string
}

// Detail page states.
const (
	StateNotFound    = "Not found"
	StateUnavailable = "Unable to load"
)

type ConfirmDeletePage struct {
	Layout
	Heading    string
	ItemTitle  string
	Warning    string
	Action     string
	CancelPath string
}

type ErrorPage struct {
	Layout
	Status  int
	Message string
}
