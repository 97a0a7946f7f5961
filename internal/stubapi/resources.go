package stubapi

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/schooldash/internal/app/models"
	"github.com/yigit/schooldash/internal/app/models/dto"
	"github.com/yigit/schooldash/internal/pkg/apperrors"
)

func queryMatch(c *gin.Context, param, value string) bool {
	want := c.Query(param)
	return want == "" || want == value
}

func (h *Handler) students() *collection[models.Student, dto.CreateStudentRequest, dto.UpdateStudentRequest] {
	return &collection[models.Student, dto.CreateStudentRequest, dto.UpdateStudentRequest]{
		repo: h.store.Students,
		build: func(c *gin.Context, schoolID string, req dto.CreateStudentRequest) (models.Student, error) {
			s := models.Student{
				ID:              newID(),
				SchoolID:        schoolID,
				AdmissionNumber: req.AdmissionNumber,
				FirstName:       req.FirstName,
				LastName:        optional(req.LastName),
				Gender:          optional(req.Gender),
				ClassID:         optional(req.ClassID),
				SectionID:       optional(req.SectionID),
				RollNumber:      req.RollNumber,
				GuardianPhone:   optional(req.GuardianPhone),
				Status:          models.StudentActive,
				CreatedAt:       h.timestamp(),
				DateOfBirth:     optional(req.DateOfBirth),
				BloodGroup:      optional(req.BloodGroup),
				AdmissionDate:   optional(req.AdmissionDate),
				FatherName:      optional(req.FatherName),
				MotherName:      optional(req.MotherName),
				GuardianEmail:   optional(req.GuardianEmail),
				Address:         optional(req.Address),
			}
			if req.Status != nil {
				s.Status = models.StudentStatus(*req.Status)
			}
			return s, h.checkPlacement(schoolID, s.ClassID, s.SectionID)
		},
		apply: func(c *gin.Context, s *models.Student, req dto.UpdateStudentRequest) error {
			setRequired(&s.AdmissionNumber, req.AdmissionNumber)
			setRequired(&s.FirstName, req.FirstName)
			set(&s.LastName, req.LastName)
			set(&s.Gender, req.Gender)
			set(&s.DateOfBirth, req.DateOfBirth)
			set(&s.BloodGroup, req.BloodGroup)
			set(&s.AdmissionDate, req.AdmissionDate)
			set(&s.ClassID, req.ClassID)
			set(&s.SectionID, req.SectionID)
			setInt(&s.RollNumber, req.RollNumber)
			set(&s.FatherName, req.FatherName)
			set(&s.MotherName, req.MotherName)
			set(&s.GuardianPhone, req.GuardianPhone)
			set(&s.GuardianEmail, req.GuardianEmail)
			set(&s.Address, req.Address)
			if req.Status != nil {
				s.Status = models.StudentStatus(*req.Status)
			}
			stamp := h.timestamp()
			s.UpdatedAt = &stamp
			return h.checkPlacement(s.SchoolID, s.ClassID, s.SectionID)
		},
		filter: func(c *gin.Context, s models.Student) bool {
			return queryMatch(c, "classId", models.Deref(s.ClassID)) &&
				queryMatch(c, "sectionId", models.Deref(s.SectionID)) &&
				queryMatch(c, "status", string(s.Status))
		},
		view: func(s models.Student) models.Student {
			s.ClassName, s.SectionName = nil, nil
			if s.ClassID != nil {
				if class, err := h.store.Classes.Get(s.SchoolID, *s.ClassID); err == nil {
					s.ClassName = models.StringPtr(class.Name)
				}
			}
			if s.SectionID != nil {
				if section, err := h.store.Sections.Get(s.SchoolID, *s.SectionID); err == nil {
					s.SectionName = models.StringPtr(section.Name)
				}
			}
			return s
		},
		created: "Student created successfully",
		updated: "Student updated successfully",
		deleted: "Student deleted successfully",
	}
}

// checkPlacement verifies that a student's class exists and that the section, when
// given, belongs to it.
func (h *Handler) checkPlacement(schoolID string, classID, sectionID *string) error {
	if classID == nil {
		if sectionID != nil {
			return apperrors.NewValidationError("Select a class before choosing a section.")
		}
		return nil
	}
	if _, err := h.store.Classes.Get(schoolID, *classID); err != nil {
		return apperrors.NewValidationError("Selected class does not exist.")
	}
	if sectionID == nil {
		return nil
	}
	section, err := h.store.Sections.Get(schoolID, *sectionID)
	if err != nil || section.ClassID != *classID {
		return apperrors.NewValidationError("Section does not belong to the selected class.")
	}
	return nil
}

func (h *Handler) staff() *collection[models.Staff, dto.CreateStaffRequest, dto.UpdateStaffRequest] {
	return &collection[models.Staff, dto.CreateStaffRequest, dto.UpdateStaffRequest]{
		repo: h.store.Staff,
		build: func(c *gin.Context, schoolID string, req dto.CreateStaffRequest) (models.Staff, error) {
			s := models.Staff{
				ID:             newID(),
				SchoolID:       schoolID,
				EmployeeID:     req.EmployeeID,
				FirstName:      req.FirstName,
				LastName:       optional(req.LastName),
				Designation:    optional(req.Designation),
				Department:     optional(req.Department),
				Gender:         optional(req.Gender),
				DateOfBirth:    optional(req.DateOfBirth),
				Phone:          optional(req.Phone),
				Email:          optional(req.Email),
				Status:         models.StaffActive,
				JoiningDate:    optional(req.JoiningDate),
				EmploymentType: optional(req.EmploymentType),
				Salary:         optional(req.Salary),
				Address:        optional(req.Address),
			}
			if req.Status != nil {
				s.Status = models.StaffStatus(*req.Status)
			}
			return s, nil
		},
		apply: func(c *gin.Context, s *models.Staff, req dto.UpdateStaffRequest) error {
			setRequired(&s.EmployeeID, req.EmployeeID)
			setRequired(&s.FirstName, req.FirstName)
			set(&s.LastName, req.LastName)
			set(&s.Designation, req.Designation)
			set(&s.Department, req.Department)
			set(&s.Gender, req.Gender)
			set(&s.DateOfBirth, req.DateOfBirth)
			set(&s.Phone, req.Phone)
			set(&s.Email, req.Email)
			set(&s.JoiningDate, req.JoiningDate)
			set(&s.EmploymentType, req.EmploymentType)
			set(&s.Salary, req.Salary)
			set(&s.Address, req.Address)
			if req.Status != nil {
				s.Status = models.StaffStatus(*req.Status)
			}
			return nil
		},
		filter: func(c *gin.Context, s models.Staff) bool {
			return queryMatch(c, "status", string(s.Status)) &&
				queryMatch(c, "department", models.Deref(s.Department))
		},
		// Staff are never removed: deleting deactivates the record and its login.
		remove: func(c *gin.Context, schoolID, id string) error {
			_, err := h.store.Staff.Update(schoolID, id, func(s *models.Staff) error {
				s.Status = models.StaffInactive
				return nil
			})
			if err == nil {
				h.store.Accounts.SetActiveByStaff(id, false)
			}
			return err
		},
		created: "Staff member created successfully",
		updated: "Staff member updated successfully",
		deleted: "Staff member deactivated successfully",
	}
}

func (h *Handler) classes() *collection[models.Class, dto.CreateClassRequest, dto.UpdateClassRequest] {
	return &collection[models.Class, dto.CreateClassRequest, dto.UpdateClassRequest]{
		repo: h.store.Classes,
		build: func(c *gin.Context, schoolID string, req dto.CreateClassRequest) (models.Class, error) {
			return models.Class{
				ID:           newID(),
				SchoolID:     schoolID,
				Name:         req.Name,
				NumericLevel: req.NumericLevel,
				CreatedAt:    h.timestamp(),
			}, nil
		},
		apply: func(c *gin.Context, class *models.Class, req dto.UpdateClassRequest) error {
			setRequired(&class.Name, req.Name)
			setInt(&class.NumericLevel, req.NumericLevel)
			return nil
		},
		remove: func(c *gin.Context, schoolID, id string) error {
			if _, err := h.store.Classes.Get(schoolID, id); err != nil {
				return err
			}
			inClass := func(s models.Section) bool { return s.ClassID == id }
			if h.store.Sections.Count(schoolID, inClass) > 0 {
				return apperrors.NewConflictError("Cannot delete a class that still has sections. Delete its sections first.")
			}
			return h.store.Classes.Delete(schoolID, id)
		},
		created: "Class created successfully",
		updated: "Class updated successfully",
		deleted: "Class deleted successfully",
	}
}

func (h *Handler) sections() *collection[models.Section, dto.CreateSectionRequest, dto.UpdateSectionRequest] {
	return &collection[models.Section, dto.CreateSectionRequest, dto.UpdateSectionRequest]{
		repo: h.store.Sections,
		build: func(c *gin.Context, schoolID string, req dto.CreateSectionRequest) (models.Section, error) {
			if _, err := h.store.Classes.Get(schoolID, req.ClassID); err != nil {
				return models.Section{}, apperrors.NewValidationError("Selected class does not exist.")
			}
			return models.Section{
				ID:             newID(),
				SchoolID:       schoolID,
				ClassID:        req.ClassID,
				Name:           req.Name,
				MaxStudents:    req.MaxStudents,
				ClassTeacherID: optional(req.ClassTeacherID),
				CreatedAt:      h.timestamp(),
			}, nil
		},
		apply: func(c *gin.Context, s *models.Section, req dto.UpdateSectionRequest) error {
			setRequired(&s.Name, req.Name)
			setInt(&s.MaxStudents, req.MaxStudents)
			set(&s.ClassTeacherID, req.ClassTeacherID)
			return nil
		},
		filter: func(c *gin.Context, s models.Section) bool {
			return queryMatch(c, "classId", s.ClassID)
		},
		view: func(s models.Section) models.Section {
			if class, err := h.store.Classes.Get(s.SchoolID, s.ClassID); err == nil {
				s.ClassName = class.Name
			}
			return s
		},
		created: "Section created successfully",
		updated: "Section updated successfully",
		deleted: "Section deleted successfully",
	}
}

func (h *Handler) academicYears() *collection[models.AcademicYear, dto.CreateAcademicYearRequest, dto.UpdateAcademicYearRequest] {
	return &collection[models.AcademicYear, dto.CreateAcademicYearRequest, dto.UpdateAcademicYearRequest]{
		repo: h.store.AcademicYears,
		build: func(c *gin.Context, schoolID string, req dto.CreateAcademicYearRequest) (models.AcademicYear, error) {
			y := models.AcademicYear{
				ID:        newID(),
				SchoolID:  schoolID,
				Name:      req.Name,
				StartDate: req.StartDate,
				EndDate:   req.EndDate,
				IsCurrent: req.IsCurrent,
			}
			return y, checkYearRange(y)
		},
		apply: func(c *gin.Context, y *models.AcademicYear, req dto.UpdateAcademicYearRequest) error {
			setRequired(&y.Name, req.Name)
			setRequired(&y.StartDate, req.StartDate)
			setRequired(&y.EndDate, req.EndDate)
			if req.IsCurrent != nil {
				y.IsCurrent = *req.IsCurrent
			}
			return checkYearRange(*y)
		},
		after: func(y models.AcademicYear) {
			if y.IsCurrent {
				h.makeCurrentYear(y)
			}
		},
		created: "Academic year created successfully",
		updated: "Academic year updated successfully",
		deleted: "Academic year deleted successfully",
	}
}

// checkYearRange compares ISO dates, which order lexically.
func checkYearRange(y models.AcademicYear) error {
	if y.EndDate <= y.StartDate {
		return apperrors.NewValidationError("End date must be after start date.")
	}
	return nil
}

// makeCurrentYear keeps at most one current academic year per school.
func (h *Handler) makeCurrentYear(current models.AcademicYear) {
	h.store.AcademicYears.UpdateAll(current.SchoolID, func(y *models.AcademicYear) {
		y.IsCurrent = y.ID == current.ID
	})
}

func (h *Handler) departments() *collection[models.Department, dto.CreateDepartmentRequest, dto.UpdateDepartmentRequest] {
	return &collection[models.Department, dto.CreateDepartmentRequest, dto.UpdateDepartmentRequest]{
		repo: h.store.Departments,
		build: func(c *gin.Context, schoolID string, req dto.CreateDepartmentRequest) (models.Department, error) {
			return models.Department{ID: newID(), SchoolID: schoolID, Name: req.Name, Code: optional(req.Code)}, nil
		},
		apply: func(c *gin.Context, d *models.Department, req dto.UpdateDepartmentRequest) error {
			setRequired(&d.Name, req.Name)
			set(&d.Code, req.Code)
			return nil
		},
		created: "Department created successfully",
		updated: "Department updated successfully",
		deleted: "Department deleted successfully",
	}
}

func (h *Handler) designations() *collection[models.Designation, dto.CreateDesignationRequest, dto.UpdateDesignationRequest] {
	return &collection[models.Designation, dto.CreateDesignationRequest, dto.UpdateDesignationRequest]{
		repo: h.store.Designations,
		build: func(c *gin.Context, schoolID string, req dto.CreateDesignationRequest) (models.Designation, error) {
			return models.Designation{ID: newID(), SchoolID: schoolID, Title: req.Title, Description: optional(req.Description)}, nil
		},
		apply: func(c *gin.Context, d *models.Designation, req dto.UpdateDesignationRequest) error {
			setRequired(&d.Title, req.Title)
			set(&d.Description, req.Description)
			return nil
		},
		created: "Designation created successfully",
		updated: "Designation updated successfully",
		deleted: "Designation deleted successfully",
	}
}

func (h *Handler) subjects() *collection[models.Subject, dto.CreateSubjectRequest, dto.UpdateSubjectRequest] {
	return &collection[models.Subject, dto.CreateSubjectRequest, dto.UpdateSubjectRequest]{
		repo: h.store.Subjects,
		build: func(c *gin.Context, schoolID string, req dto.CreateSubjectRequest) (models.Subject, error) {
			kind := req.Type
			if kind == "" {
				kind = "theory"
			}
			return models.Subject{ID: newID(), SchoolID: schoolID, Name: req.Name, Code: optional(req.Code), Type: kind}, nil
		},
		apply: func(c *gin.Context, s *models.Subject, req dto.UpdateSubjectRequest) error {
			setRequired(&s.Name, req.Name)
			set(&s.Code, req.Code)
			setRequired(&s.Type, req.Type)
			return nil
		},
		created: "Subject created successfully",
		updated: "Subject updated successfully",
		deleted: "Subject deleted successfully",
	}
}
