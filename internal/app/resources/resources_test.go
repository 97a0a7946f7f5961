package resources

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/schooldash/internal/app/forms"
	"github.com/yigit/schooldash/internal/app/models"
)

var classSources = forms.Sources{
	SourceClasses: {{Value: "c5", Label: "Grade 5"}, {Value: "c6", Label: "Grade 6"}},
	SourceSections: {
		{Value: "s5a", Label: "A", Parent: "c5"},
		{Value: "s5b", Label: "B", Parent: "c5"},
		{Value: "s6a", Label: "A", Parent: "c6"},
	},
	SourceDepartments:  {{Value: "Science", Label: "Science"}},
	SourceDesignations: {{Value: "Teacher", Label: "Teacher"}},
}

func TestClassPayload(t *testing.T) {
	v := ClassSchema.Blank()
	v["name"] = "Grade 5"
	v["numericLevel"] = "5"

	require.False(t, ClassSchema.Validate(v, nil, forms.Create).Any())
	assert.Equal(t, map[string]interface{}{"name": "Grade 5", "numericLevel": 5},
		ClassSchema.Payload(v, nil, forms.Create))
}

func TestClassRequiresName(t *testing.T) {
	errs := ClassSchema.Validate(ClassSchema.Blank(), nil, forms.Create)
	assert.Equal(t, "Class name is required.", errs["name"])
}

func TestSectionDefaultsAndCreatePayload(t *testing.T) {
	v := SectionSchema.Blank()
	assert.Equal(t, "40", v["maxStudents"])

	errs := SectionSchema.Validate(v, classSources, forms.Create)
	assert.Equal(t, "Class and section name are required.", SectionSchema.Summary(errs))

	v["classId"] = "c5"
	v["name"] = "A"
	require.False(t, SectionSchema.Validate(v, classSources, forms.Create).Any())
	assert.Equal(t, map[string]interface{}{"classId": "c5", "name": "A", "maxStudents": 40},
		SectionSchema.Payload(v, nil, forms.Create))
}

func TestSectionEditNameOnly(t *testing.T) {
	max := 40
	original, err := SectionSchema.FromEntity(models.Section{ID: "s1", ClassID: "c5", Name: "A", MaxStudents: &max})
	require.NoError(t, err)

	edited := original.Clone()
	edited["name"] = "B"
	require.False(t, SectionSchema.Validate(edited, classSources, forms.Edit).Any())

	p := SectionSchema.Payload(edited, original, forms.Edit)
	assert.Equal(t, map[string]interface{}{"name": "B"}, p)
	assert.NotContains(t, p, "classId")
	assert.NotContains(t, p, "maxStudents")
}

func TestStudentEditPayloadIsSparse(t *testing.T) {
	roll := 3
	original, err := StudentSchema.FromEntity(models.Student{
		ID:              "st1",
		AdmissionNumber: "ADM1",
		FirstName:       "Ada",
		ClassID:         models.StringPtr("c5"),
		SectionID:       models.StringPtr("s5a"),
		RollNumber:      &roll,
		GuardianPhone:   models.StringPtr("9876543210"),
		Status:          models.StudentActive,
	})
	require.NoError(t, err)

	edited := StudentSchema.ChangeParent(original, "classId", "c6")
	assert.Equal(t, "", edited["sectionId"], "changing class clears the section")

	errs := StudentSchema.Validate(edited, classSources, forms.Edit)
	assert.Contains(t, errs, "sectionId")

	edited["sectionId"] = "s6a"
	edited["rollNumber"] = "11"
	require.False(t, StudentSchema.Validate(edited, classSources, forms.Edit).Any())
	assert.Equal(t, map[string]interface{}{"classId": "c6", "sectionId": "s6a", "rollNumber": 11},
		StudentSchema.Payload(edited, original, forms.Edit))
}

func TestStudentRejectsUnknownStatus(t *testing.T) {
	v := StudentSchema.Blank()
	v["firstName"], v["admissionNumber"], v["guardianPhone"] = "Ada", "ADM1", "9876543210"
	v["classId"], v["sectionId"] = "c5", "s5a"
	v["status"] = "graduated"
	errs := StudentSchema.Validate(v, classSources, forms.Create)
	assert.Equal(t, "Choose a valid Status.", errs["status"])
}

func TestStaffCreatePayload(t *testing.T) {
	v := StaffSchema.Blank()
	v["firstName"] = "Ravi"
	v["employeeId"] = "EMP001"
	v["phone"] = "+91 98765 43210"
	v["email"] = "ravi@school.com"
	v["department"] = "Science"
	v["designation"] = "Teacher"
	v["salary"] = "50000"

	require.False(t, StaffSchema.Validate(v, classSources, forms.Create).Any())
	p := StaffSchema.Payload(v, nil, forms.Create)
	assert.Equal(t, "50000", p["salary"], "salary stays a decimal string")
	assert.Equal(t, "active", p["status"])
	assert.NotContains(t, p, "lastName")
}

func TestAcademicYearCheckbox(t *testing.T) {
	v := AcademicYearSchema.Blank()
	v["name"], v["startDate"], v["endDate"] = "2024-25", "2024-04-01", "2025-03-31"
	p := AcademicYearSchema.Payload(v, nil, forms.Create)
	assert.Equal(t, false, p["isCurrent"])

	original, err := AcademicYearSchema.FromEntity(models.AcademicYear{Name: "2024-25", StartDate: "2024-04-01", EndDate: "2025-03-31"})
	require.NoError(t, err)
	edited := original.Clone()
	edited["isCurrent"] = "true"
	assert.Equal(t, map[string]interface{}{"isCurrent": true}, AcademicYearSchema.Payload(edited, original, forms.Edit))
}

func TestSubjectDefaultsToTheory(t *testing.T) {
	v := SubjectSchema.Blank()
	v["name"] = "Physics"
	assert.Equal(t, map[string]interface{}{"name": "Physics", "type": "theory"}, SubjectSchema.Payload(v, nil, forms.Create))
}

func TestDepartmentCodeFormat(t *testing.T) {
	errs := DepartmentSchema.Validate(forms.Values{"name": "Maths", "code": "MA TH"}, nil, forms.Create)
	assert.Contains(t, errs, "code")
}

func TestSchoolSchemaRules(t *testing.T) {
	v := forms.Values{
		"name": "A", "email": "bad", "phone": "12345", "city": "Pune", "state": "MH",
		"adminEmail": "admin@school.com", "adminPassword": "12345",
	}
	errs := SchoolSchema.Validate(v, nil, forms.Create)
	assert.Equal(t, "School Name must be at least 2 characters.", errs["name"])
	assert.Equal(t, "Enter a valid email address.", errs["email"])
	assert.Contains(t, errs, "phone")
	assert.Equal(t, "Admin Password must be at least 6 characters.", errs["adminPassword"])
}

func TestSchoolProfileSchema(t *testing.T) {
	s := SchoolProfileSchema(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	v := s.Blank()
	assert.Equal(t, "Asia/Kolkata", v["timezone"])
	assert.Equal(t, "april", v["academicYearStart"])

	v["name"], v["email"] = "Springfield High", "office@springfield.edu"
	v["estdYear"] = "1799"
	v["website"] = "springfield"
	v["motto"] = string(make([]byte, 101))
	errs := s.Validate(v, nil, forms.Edit)
	assert.Equal(t, "Established must be at least 1800.", errs["estdYear"])
	assert.Equal(t, "Enter a valid URL.", errs["website"])
	assert.Contains(t, errs, "motto")

	v["estdYear"] = "2027"
	assert.Equal(t, "Established must be at most 2026.", s.Validate(v, nil, forms.Edit)["estdYear"])
}

func TestDescriptorSources(t *testing.T) {
	assert.Equal(t, []string{SourceClasses, SourceSections}, Students.Sources())
	assert.Equal(t, []string{SourceClasses}, Sections.Sources())
	assert.Equal(t, []string{SourceDepartments, SourceDesignations}, Staff.Sources())
	assert.Empty(t, Classes.Sources())
	assert.True(t, Staff.HasDetail())
	assert.False(t, Classes.HasDetail())
}

func TestFormatSalary(t *testing.T) {
	assert.Equal(t, Blank, FormatSalary(nil))
	assert.Equal(t, "₹500", FormatSalary(models.StringPtr("500")))
	assert.Equal(t, "₹50,000", FormatSalary(models.StringPtr("50000")))
	assert.Equal(t, "₹12,34,567.5", FormatSalary(models.StringPtr("1234567.50")))
	assert.Equal(t, "n/a", FormatSalary(models.StringPtr("n/a")))
}
