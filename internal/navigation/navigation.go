package navigation

import (
	"sort"
	"strings"

	"github.com/yigit/schooldash/internal/app/models"
)

// Route paths
const (
	PathLogin        = "/login"
	PathDashboard    = "/dashboard"
	PathSchools      = "/admin/schools"
	PathStudents     = "/dashboard/students"
	PathStaff        = "/dashboard/staff"
	PathClasses      = "/dashboard/academics/classes"
	PathSections     = "/dashboard/academics/sections"
	PathMasterData   = "/dashboard/master-data"
	PathSettings     = "/dashboard/settings"
	PathSchoolConfig = "/dashboard/settings/school"
)

var (
	schoolStaff  = []models.RoleType{models.RoleSchoolAdmin, models.RolePrincipal, models.RoleTeacher, models.RoleAccountant, models.RoleLibrarian}
	academics    = []models.RoleType{models.RoleSchoolAdmin, models.RolePrincipal, models.RoleTeacher}
	management   = []models.RoleType{models.RoleSchoolAdmin, models.RolePrincipal}
	staffManager = []models.RoleType{models.RoleSchoolAdmin, models.RolePrincipal, models.RoleAccountant}
)

// Entry is one menu item. An empty Roles list means every signed-in user may see it.
type Entry struct {
	Label string
	Path  string
	Icon  string
	Roles []models.RoleType
}

// Allows reports whether role may see and open the entry.
func (e Entry) Allows(role models.RoleType) bool {
	if len(e.Roles) == 0 {
		return true
	}
	for _, r := range e.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Menu is the full navigation, in display order.
var Menu = []Entry{
	{Label: "Dashboard", Path: PathDashboard, Icon: "layout-dashboard"},
	{Label: "Schools", Path: PathSchools, Icon: "school", Roles: []models.RoleType{models.RoleSuperAdmin}},
	{Label: "Students", Path: PathStudents, Icon: "graduation-cap", Roles: schoolStaff},
	{Label: "Staff", Path: PathStaff, Icon: "users", Roles: staffManager},
	{Label: "Classes", Path: PathClasses, Icon: "book-open", Roles: academics},
	{Label: "Sections", Path: PathSections, Icon: "layers", Roles: academics},
	{Label: "Master Data", Path: PathMasterData, Icon: "database", Roles: management},
	{Label: "Settings", Path: PathSettings, Icon: "settings"},
}

// Restricted are access rules for routes that have no menu entry of their own.
var Restricted = []Entry{
	{Path: PathSchoolConfig, Roles: management},
}

// Visible filters entries down to those role may see.
func Visible(entries []Entry, role models.RoleType) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Allows(role) {
			out = append(out, e)
		}
	}
	return out
}

// Active reports whether path belongs to the entry. The dashboard home only matches itself.
func (e Entry) Active(path string) bool {
	if e.Path == PathDashboard {
		return path == e.Path
	}
	return matches(e.Path, path)
}

func matches(prefix, path string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

// Decision is the outcome of a gate check.
type Decision int

const (
	Allow Decision = iota
	RedirectLogin
	RedirectHome
)

// Gate decides access to routes from the cached user. It is a convenience for
// the UI only; the API enforces authorization on every call.
type Gate struct {
	rules []Entry
}

// NewGate builds a gate from access rules. The most specific (longest) path wins.
func NewGate(rules ...[]Entry) *Gate {
	var all []Entry
	for _, r := range rules {
		all = append(all, r...)
	}
	sort.SliceStable(all, func(i, j int) bool {
		return len(all[i].Path) > len(all[j].Path)
	})
	return &Gate{rules: all}
}

// DefaultGate guards the menu routes plus Restricted.
func DefaultGate() *Gate {
	return NewGate(Menu, Restricted)
}

// Decide returns where a request for path should go. user is nil without a session.
func (g *Gate) Decide(path string, user *models.User) (Decision, string) {
	if user == nil {
		return RedirectLogin, PathLogin
	}
	for _, rule := range g.rules {
		if !matches(rule.Path, path) {
			continue
		}
		if rule.Allows(user.Role) {
			return Allow, ""
		}
		return RedirectHome, PathDashboard
	}
	return Allow, ""
}
