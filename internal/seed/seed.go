package seed

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/schooldash/internal/app/models"
	"github.com/yigit/schooldash/internal/app/models/dto"
	"github.com/yigit/schooldash/internal/pkg/apperrors"
	"github.com/yigit/schooldash/internal/pkg/auth"
	"github.com/yigit/schooldash/internal/stubapi"
)

// Options selects the accounts to create. The demo school is skipped when
// SchoolAdminEmail is empty.
type Options struct {
	SuperAdminEmail     string
	SuperAdminPassword  string
	SchoolAdminEmail    string
	SchoolAdminPassword string
}

// CreateDefaultData seeds the super admin and, optionally, a demo school with
// master data, classes and sections. Existing entries are left alone.
func CreateDefaultData(store *stubapi.Store, opts Options, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	if opts.SuperAdminEmail != "" {
		if err := createSuperAdmin(store, opts); err != nil && !isConflict(err) {
			lgr.Error().Err(err).Msg("Error creating super admin")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if opts.SchoolAdminEmail == "" {
		return finalErr
	}
	if _, exists := store.Accounts.ByEmail(opts.SchoolAdminEmail); exists {
		lgr.Info().Str("email", opts.SchoolAdminEmail).Msg("Demo school already seeded")
		return finalErr
	}

	h := stubapi.NewHandler(store, nil, lgr)
	school, err := h.OnboardSchool(dto.CreateSchoolRequest{
		Name:          "Greenwood Public School",
		Email:         "office@greenwood.edu",
		Phone:         "+91 98765 43210",
		City:          "Bengaluru",
		State:         "Karnataka",
		AdminEmail:    opts.SchoolAdminEmail,
		AdminPassword: opts.SchoolAdminPassword,
	})
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating demo school")
		return errors.Join(finalErr, err)
	}

	if err := createMasterData(store, school.ID); err != nil {
		lgr.Error().Err(err).Msg("Error creating master data")
		finalErr = errors.Join(finalErr, err)
	}
	if err := createAcademics(store, school.ID); err != nil {
		lgr.Error().Err(err).Msg("Error creating classes and sections")
		finalErr = errors.Join(finalErr, err)
	}
	if err := linkAdminStaff(store, school.ID, opts.SchoolAdminEmail); err != nil {
		lgr.Error().Err(err).Msg("Error linking school admin staff record")
		finalErr = errors.Join(finalErr, err)
	}

	lgr.Info().Str("schoolID", school.ID).Str("admin", opts.SchoolAdminEmail).Msg("Demo school seeded")
	return finalErr
}

func createSuperAdmin(store *stubapi.Store, opts Options) error {
	hash, err := auth.HashPassword(opts.SuperAdminPassword)
	if err != nil {
		return fmt.Errorf("hash super admin password: %w", err)
	}
	return store.Accounts.Add(stubapi.Account{
		User: models.User{
			ID:    uuid.NewString(),
			Email: strings.ToLower(opts.SuperAdminEmail),
			Role:  models.RoleSuperAdmin,
		},
		PasswordHash: hash,
		IsActive:     true,
		CreatedAt:    now(),
	})
}

func createMasterData(store *stubapi.Store, schoolID string) error {
	var errs error
	for _, d := range []struct{ name, code string }{
		{"Mathematics", "MATH"}, {"Science", "SCI"}, {"Languages", "LANG"}, {"Administration", "ADMIN"},
	} {
		errs = errors.Join(errs, store.Departments.Insert(models.Department{
			ID: uuid.NewString(), SchoolID: schoolID, Name: d.name, Code: models.StringPtr(d.code),
		}))
	}
	for _, title := range []string{"Principal", "Senior Teacher", "Teacher", "Accountant", "Librarian"} {
		errs = errors.Join(errs, store.Designations.Insert(models.Designation{
			ID: uuid.NewString(), SchoolID: schoolID, Title: title,
		}))
	}
	for _, s := range []struct{ name, code, kind string }{
		{"Mathematics", "MATH", "theory"}, {"Physics", "PHY", "both"}, {"English", "ENG", "theory"},
	} {
		errs = errors.Join(errs, store.Subjects.Insert(models.Subject{
			ID: uuid.NewString(), SchoolID: schoolID, Name: s.name, Code: models.StringPtr(s.code), Type: s.kind,
		}))
	}

	year := time.Now().Year()
	errs = errors.Join(errs, store.AcademicYears.Insert(models.AcademicYear{
		ID:        uuid.NewString(),
		SchoolID:  schoolID,
		Name:      fmt.Sprintf("%d-%02d", year, (year+1)%100),
		StartDate: fmt.Sprintf("%d-04-01", year),
		EndDate:   fmt.Sprintf("%d-03-31", year+1),
		IsCurrent: true,
	}))
	return errs
}

func createAcademics(store *stubapi.Store, schoolID string) error {
	var errs error
	for level := 1; level <= 5; level++ {
		class := models.Class{
			ID:           uuid.NewString(),
			SchoolID:     schoolID,
			Name:         fmt.Sprintf("Grade %d", level),
			NumericLevel: models.IntPtr(level),
			CreatedAt:    now(),
		}
		if err := store.Classes.Insert(class); err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		for _, name := range []string{"A", "B"} {
			errs = errors.Join(errs, store.Sections.Insert(models.Section{
				ID:          uuid.NewString(),
				SchoolID:    schoolID,
				ClassID:     class.ID,
				Name:        name,
				MaxStudents: models.IntPtr(models.DefaultMaxStudents),
				CreatedAt:   now(),
			}))
		}
	}
	return errs
}

// linkAdminStaff gives the school admin a staff record so the account profile is editable.
func linkAdminStaff(store *stubapi.Store, schoolID, email string) error {
	acc, ok := store.Accounts.ByEmail(email)
	if !ok {
		return apperrors.NewResourceNotFoundError("school admin account not found")
	}
	staff := models.Staff{
		ID:          uuid.NewString(),
		SchoolID:    schoolID,
		EmployeeID:  "EMP001",
		FirstName:   "School",
		LastName:    models.StringPtr("Admin"),
		Designation: models.StringPtr("Principal"),
		Department:  models.StringPtr("Administration"),
		Email:       models.StringPtr(acc.User.Email),
		Status:      models.StaffActive,
	}
	if err := store.Staff.Insert(staff); err != nil {
		return err
	}
	store.Accounts.Update(acc.User.ID, func(a *stubapi.Account) { a.StaffID = models.StringPtr(staff.ID) })
	return nil
}

func isConflict(err error) bool {
	return errors.Is(err, apperrors.ErrConflict)
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
