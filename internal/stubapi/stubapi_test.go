package stubapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/schooldash/internal/app/models"
	"github.com/yigit/schooldash/internal/app/models/dto"
	"github.com/yigit/schooldash/internal/pkg/auth"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Meta    *dto.PageMeta   `json:"meta"`
}

type testAPI struct {
	t      *testing.T
	store  *Store
	router *gin.Engine
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := NewStore()
	jwt := auth.NewJWTService(auth.JWTConfig{SecretKey: "test", AccessTokenExp: time.Hour, TokenIssuer: "stub"})
	return &testAPI{t: t, store: store, router: NewRouter(store, jwt, zerolog.Nop())}
}

// school onboards a school and returns a token of its admin.
func (a *testAPI) school(name, adminEmail string) string {
	a.t.Helper()
	h := NewHandler(a.store, nil, zerolog.Nop())
	_, err := h.OnboardSchool(dto.CreateSchoolRequest{
		Name: name, Email: adminEmail + ".office", Phone: "9876543210", City: "Pune", State: "MH",
		AdminEmail: adminEmail, AdminPassword: "secret123",
	})
	require.NoError(a.t, err)
	return a.login(adminEmail, "secret123")
}

func (a *testAPI) login(email, password string) string {
	a.t.Helper()
	rec, env := a.do(http.MethodPost, "/api/v1/auth/login", "", map[string]string{"email": email, "password": password})
	require.Equal(a.t, http.StatusOK, rec.Code, env.Message)
	var resp dto.LoginResponse
	require.NoError(a.t, json.Unmarshal(env.Data, &resp))
	return resp.Token
}

func (a *testAPI) do(method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	a.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)

	var env envelope
	require.NoError(a.t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec, env
}

func decode[T any](t *testing.T, env envelope) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out
}

func TestCreatedClassAppearsInList(t *testing.T) {
	api := newTestAPI(t)
	token := api.school("Greenwood", "admin@greenwood.edu")

	rec, env := api.do(http.MethodPost, "/api/v1/classes", token, map[string]interface{}{"name": "Grade 5", "numericLevel": 5})
	require.Equal(t, http.StatusCreated, rec.Code, env.Message)
	created := decode[models.Class](t, env)
	assert.NotEmpty(t, created.ID)

	rec, env = api.do(http.MethodGet, "/api/v1/classes", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	classes := decode[[]models.Class](t, env)
	require.Len(t, classes, 1)
	assert.Equal(t, "Grade 5", classes[0].Name)
	assert.Equal(t, 5, *classes[0].NumericLevel)
}

func TestDuplicateClassNameConflicts(t *testing.T) {
	api := newTestAPI(t)
	token := api.school("Greenwood", "admin@greenwood.edu")

	api.do(http.MethodPost, "/api/v1/classes", token, map[string]string{"name": "Grade 5"})
	rec, env := api.do(http.MethodPost, "/api/v1/classes", token, map[string]string{"name": "grade 5"})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "A class named grade 5 already exists.", env.Message)
}

func TestSectionSparseUpdateKeepsCapacity(t *testing.T) {
	api := newTestAPI(t)
	token := api.school("Greenwood", "admin@greenwood.edu")

	_, env := api.do(http.MethodPost, "/api/v1/classes", token, map[string]string{"name": "Grade 5"})
	class := decode[models.Class](t, env)
	_, env = api.do(http.MethodPost, "/api/v1/sections", token, map[string]interface{}{"classId": class.ID, "name": "A", "maxStudents": 30})
	section := decode[models.Section](t, env)
	assert.Equal(t, "Grade 5", section.ClassName)

	rec, env := api.do(http.MethodPut, "/api/v1/sections/"+section.ID, token, map[string]string{"name": "B"})
	require.Equal(t, http.StatusOK, rec.Code, env.Message)
	updated := decode[models.Section](t, env)
	assert.Equal(t, "B", updated.Name)
	assert.Equal(t, 30, updated.Capacity())
	assert.Equal(t, class.ID, updated.ClassID)
}

func TestSectionsFilterByClass(t *testing.T) {
	api := newTestAPI(t)
	token := api.school("Greenwood", "admin@greenwood.edu")

	_, env := api.do(http.MethodPost, "/api/v1/classes", token, map[string]string{"name": "Grade 1"})
	one := decode[models.Class](t, env)
	_, env = api.do(http.MethodPost, "/api/v1/classes", token, map[string]string{"name": "Grade 2"})
	two := decode[models.Class](t, env)
	api.do(http.MethodPost, "/api/v1/sections", token, map[string]string{"classId": one.ID, "name": "A"})
	api.do(http.MethodPost, "/api/v1/sections", token, map[string]string{"classId": two.ID, "name": "A"})

	_, env = api.do(http.MethodGet, "/api/v1/sections?classId="+two.ID, token, nil)
	sections := decode[[]models.Section](t, env)
	require.Len(t, sections, 1)
	assert.Equal(t, "Grade 2", sections[0].ClassName)
}

func TestClassWithSectionsCannotBeDeleted(t *testing.T) {
	api := newTestAPI(t)
	token := api.school("Greenwood", "admin@greenwood.edu")

	_, env := api.do(http.MethodPost, "/api/v1/classes", token, map[string]string{"name": "Grade 1"})
	class := decode[models.Class](t, env)
	api.do(http.MethodPost, "/api/v1/sections", token, map[string]string{"classId": class.ID, "name": "A"})

	rec, env := api.do(http.MethodDelete, "/api/v1/classes/"+class.ID, token, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, env.Message, "still has sections")
}

func TestStaffDeleteDeactivates(t *testing.T) {
	api := newTestAPI(t)
	token := api.school("Greenwood", "admin@greenwood.edu")

	_, env := api.do(http.MethodPost, "/api/v1/staff", token, map[string]string{
		"employeeId": "EMP010", "firstName": "Asha", "email": "asha@greenwood.edu",
	})
	staff := decode[models.Staff](t, env)
	assert.Equal(t, models.StaffActive, staff.Status)

	rec, _ := api.do(http.MethodDelete, "/api/v1/staff/"+staff.ID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	_, env = api.do(http.MethodGet, "/api/v1/staff/"+staff.ID, token, nil)
	assert.Equal(t, models.StaffInactive, decode[models.Staff](t, env).Status)
}

func TestStudentSectionMustBelongToClass(t *testing.T) {
	api := newTestAPI(t)
	token := api.school("Greenwood", "admin@greenwood.edu")

	_, env := api.do(http.MethodPost, "/api/v1/classes", token, map[string]string{"name": "Grade 1"})
	one := decode[models.Class](t, env)
	_, env = api.do(http.MethodPost, "/api/v1/classes", token, map[string]string{"name": "Grade 2"})
	two := decode[models.Class](t, env)
	_, env = api.do(http.MethodPost, "/api/v1/sections", token, map[string]string{"classId": two.ID, "name": "A"})
	section := decode[models.Section](t, env)

	rec, env := api.do(http.MethodPost, "/api/v1/students", token, map[string]string{
		"admissionNumber": "ADM1", "firstName": "Ravi", "classId": one.ID, "sectionId": section.ID,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Section does not belong to the selected class.", env.Message)

	rec, env = api.do(http.MethodPost, "/api/v1/students", token, map[string]string{
		"admissionNumber": "ADM1", "firstName": "Ravi", "classId": two.ID, "sectionId": section.ID,
	})
	require.Equal(t, http.StatusCreated, rec.Code, env.Message)
	student := decode[models.Student](t, env)
	assert.Equal(t, "Grade 2", models.Deref(student.ClassName))
	assert.Equal(t, "A", models.Deref(student.SectionName))
}

func TestTenantsAreIsolated(t *testing.T) {
	api := newTestAPI(t)
	first := api.school("Greenwood", "admin@greenwood.edu")
	second := api.school("Riverside", "admin@riverside.edu")

	_, env := api.do(http.MethodPost, "/api/v1/classes", first, map[string]string{"name": "Grade 1"})
	class := decode[models.Class](t, env)

	rec, _ := api.do(http.MethodGet, "/api/v1/classes/"+class.ID, second, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	_, env = api.do(http.MethodGet, "/api/v1/classes", second, nil)
	assert.Empty(t, decode[[]models.Class](t, env))
}

func TestLoginAndLogout(t *testing.T) {
	api := newTestAPI(t)
	token := api.school("Greenwood", "admin@greenwood.edu")

	rec, env := api.do(http.MethodPost, "/api/v1/auth/login", "", map[string]string{"email": "admin@greenwood.edu", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid email or password", env.Message)

	rec, env = api.do(http.MethodGet, "/api/v1/auth/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	profile := decode[models.AccountProfile](t, env)
	assert.Equal(t, models.RoleSchoolAdmin, profile.Role)

	rec, _ = api.do(http.MethodPost, "/api/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = api.do(http.MethodGet, "/api/v1/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWritesRequireManagementRole(t *testing.T) {
	api := newTestAPI(t)
	api.school("Greenwood", "admin@greenwood.edu")
	admin, _ := api.store.Accounts.ByEmail("admin@greenwood.edu")

	hash, err := auth.HashPassword("teach123")
	require.NoError(t, err)
	require.NoError(t, api.store.Accounts.Add(Account{
		User:         models.User{ID: "teacher-1", Email: "teacher@greenwood.edu", Role: models.RoleTeacher, SchoolID: admin.User.SchoolID},
		PasswordHash: hash,
		IsActive:     true,
	}))
	token := api.login("teacher@greenwood.edu", "teach123")

	rec, _ := api.do(http.MethodGet, "/api/v1/classes", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env := api.do(http.MethodPost, "/api/v1/classes", token, map[string]string{"name": "Grade 1"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.NotEmpty(t, env.Message)
}

func TestOnlySuperAdminManagesSchools(t *testing.T) {
	api := newTestAPI(t)
	token := api.school("Greenwood", "admin@greenwood.edu")

	rec, _ := api.do(http.MethodGet, "/api/v1/schools", token, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, env := api.do(http.MethodGet, "/api/v1/schools/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	school := decode[models.School](t, env)
	assert.Equal(t, DefaultTimezone, school.Timezone)
	assert.Equal(t, "SCH0001", school.Code)
}

func TestMissingFieldIsReported(t *testing.T) {
	api := newTestAPI(t)
	token := api.school("Greenwood", "admin@greenwood.edu")

	rec, env := api.do(http.MethodPost, "/api/v1/classes", token, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Name is required.", env.Message)
}

func TestListPagination(t *testing.T) {
	api := newTestAPI(t)
	token := api.school("Greenwood", "admin@greenwood.edu")
	for _, name := range []string{"Maths", "Science", "Arts"} {
		api.do(http.MethodPost, "/api/v1/departments", token, map[string]string{"name": name})
	}

	_, env := api.do(http.MethodGet, "/api/v1/departments?page=2&limit=2", token, nil)
	require.NotNil(t, env.Meta)
	assert.Equal(t, int64(3), env.Meta.Total)
	departments := decode[[]models.Department](t, env)
	require.Len(t, departments, 1)
	assert.Equal(t, "Arts", departments[0].Name)
}
