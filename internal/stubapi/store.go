package stubapi

import (
	"strings"
	"sync"

	"github.com/yigit/schooldash/internal/app/models"
	"github.com/yigit/schooldash/internal/pkg/apperrors"
)

// Account is a user that can sign in, with its bcrypt password hash. StaffID links the
// account to the staff record its profile fields live on.
type Account struct {
	User         models.User
	PasswordHash string
	IsActive     bool
	LastLogin    *string
	CreatedAt    string
	StaffID      *string
}

// Accounts holds the users and the IDs of revoked tokens.
type Accounts struct {
	mu      sync.RWMutex
	byID    map[string]*Account
	revoked map[string]struct{}
}

func newAccounts() *Accounts {
	return &Accounts{byID: make(map[string]*Account), revoked: make(map[string]struct{})}
}

// Add stores a new account. Emails are unique, case-insensitively.
func (a *Accounts) Add(acc Account) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, existing := range a.byID {
		if strings.EqualFold(existing.User.Email, acc.User.Email) {
			return apperrors.NewConflictError("A user with this email already exists.")
		}
	}
	a.byID[acc.User.ID] = &acc
	return nil
}

// ByEmail finds an account by email.
func (a *Accounts) ByEmail(email string) (Account, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	for _, acc := range a.byID {
		if strings.EqualFold(acc.User.Email, email) {
			return *acc, true
		}
	}
	return Account{}, false
}

// ByID finds an account by user ID.
func (a *Accounts) ByID(id string) (Account, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	acc, ok := a.byID[id]
	if !ok {
		return Account{}, false
	}
	return *acc, true
}

// Update applies fn to the stored account.
func (a *Accounts) Update(id string, fn func(*Account)) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	acc, ok := a.byID[id]
	if ok {
		fn(acc)
	}
	return ok
}

// SetActiveByStaff activates or deactivates the account linked to a staff record.
func (a *Accounts) SetActiveByStaff(staffID string, active bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, acc := range a.byID {
		if acc.StaffID != nil && *acc.StaffID == staffID {
			acc.IsActive = active
		}
	}
}

// Revoke marks a token ID as no longer valid.
func (a *Accounts) Revoke(tokenID string) {
	if tokenID == "" {
		return
	}
	a.mu.Lock()
	a.revoked[tokenID] = struct{}{}
	a.mu.Unlock()
}

// Revoked implements middleware.TokenChecker.
func (a *Accounts) Revoked(tokenID string) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	_, ok := a.revoked[tokenID]
	return ok
}

// Store is the whole in-memory backend state.
type Store struct {
	Accounts      *Accounts
	Schools       *Repository[models.School]
	Students      *Repository[models.Student]
	Staff         *Repository[models.Staff]
	Classes       *Repository[models.Class]
	Sections      *Repository[models.Section]
	AcademicYears *Repository[models.AcademicYear]
	Departments   *Repository[models.Department]
	Designations  *Repository[models.Designation]
	Subjects      *Repository[models.Subject]
}

// NewStore creates an empty backend.
func NewStore() *Store {
	return &Store{
		Accounts: newAccounts(),
		Schools: NewRepository("School",
			func(s models.School) string { return s.ID },
			func(models.School) string { return "" }).
			Unique(func(a, b models.School) bool { return strings.EqualFold(a.Email, b.Email) },
				func(s models.School) string { return "A school with email " + s.Email + " already exists." }),
		Students: NewRepository("Student",
			func(s models.Student) string { return s.ID },
			func(s models.Student) string { return s.SchoolID }).
			Unique(func(a, b models.Student) bool { return strings.EqualFold(a.AdmissionNumber, b.AdmissionNumber) },
				func(s models.Student) string { return "Admission number " + s.AdmissionNumber + " is already in use." }),
		Staff: NewRepository("Staff member",
			func(s models.Staff) string { return s.ID },
			func(s models.Staff) string { return s.SchoolID }).
			Unique(func(a, b models.Staff) bool { return strings.EqualFold(a.EmployeeID, b.EmployeeID) },
				func(s models.Staff) string { return "Employee ID " + s.EmployeeID + " is already in use." }),
		Classes: NewRepository("Class",
			func(c models.Class) string { return c.ID },
			func(c models.Class) string { return c.SchoolID }).
			Unique(func(a, b models.Class) bool { return strings.EqualFold(a.Name, b.Name) },
				func(c models.Class) string { return "A class named " + c.Name + " already exists." }),
		Sections: NewRepository("Section",
			func(s models.Section) string { return s.ID },
			func(s models.Section) string { return s.SchoolID }).
			Unique(func(a, b models.Section) bool { return a.ClassID == b.ClassID && strings.EqualFold(a.Name, b.Name) },
				func(s models.Section) string { return "Section " + s.Name + " already exists in this class." }),
		AcademicYears: NewRepository("Academic year",
			func(y models.AcademicYear) string { return y.ID },
			func(y models.AcademicYear) string { return y.SchoolID }).
			Unique(func(a, b models.AcademicYear) bool { return a.Name == b.Name },
				func(y models.AcademicYear) string { return "Academic year " + y.Name + " already exists." }),
		Departments: NewRepository("Department",
			func(d models.Department) string { return d.ID },
			func(d models.Department) string { return d.SchoolID }).
			Unique(func(a, b models.Department) bool { return strings.EqualFold(a.Name, b.Name) },
				func(d models.Department) string { return "Department " + d.Name + " already exists." }),
		Designations: NewRepository("Designation",
			func(d models.Designation) string { return d.ID },
			func(d models.Designation) string { return d.SchoolID }).
			Unique(func(a, b models.Designation) bool { return strings.EqualFold(a.Title, b.Title) },
				func(d models.Designation) string { return "Designation " + d.Title + " already exists." }),
		Subjects: NewRepository("Subject",
			func(s models.Subject) string { return s.ID },
			func(s models.Subject) string { return s.SchoolID }).
			Unique(func(a, b models.Subject) bool { return strings.EqualFold(a.Name, b.Name) },
				func(s models.Subject) string { return "Subject " + s.Name + " already exists." }),
	}
}
