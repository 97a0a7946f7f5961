package forms

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var studentLike = Schema{Fields: []Field{
	{Name: "firstName", Label: "First Name", Kind: Text, Required: true},
	{Name: "email", Label: "Email", Kind: Email},
	{Name: "rollNumber", Label: "Roll Number", Kind: Number, Rules: "gte=1"},
	{Name: "classId", Label: "Class", Kind: Select, Source: "classes"},
	{Name: "sectionId", Label: "Section", Kind: Select, Source: "sections", DependsOn: "classId"},
	{Name: "gender", Label: "Gender", Kind: Select, Options: []Option{{Value: "male"}, {Value: "female"}}},
	{Name: "joined", Label: "Joined", Kind: Date},
	{Name: "active", Label: "Active", Kind: Checkbox},
	{Name: "code", Label: "Code", Kind: Text, Immutable: true},
}}

var sources = Sources{
	"classes": {{Value: "c1", Label: "Grade 1"}, {Value: "c2", Label: "Grade 2"}},
	"sections": {
		{Value: "s1", Label: "A", Parent: "c1"},
		{Value: "s2", Label: "B", Parent: "c1"},
		{Value: "s3", Label: "A", Parent: "c2"},
	},
}

func TestBlankUsesDefaults(t *testing.T) {
	s := Schema{Fields: []Field{
		{Name: "maxStudents", Kind: Number, Default: "40"},
		{Name: "name"},
		{Name: "isCurrent", Kind: Checkbox},
	}}
	assert.Equal(t, Values{"maxStudents": "40", "name": "", "isCurrent": "false"}, s.Blank())
}

func TestBindTrimsAndNormalisesCheckboxes(t *testing.T) {
	v := studentLike.Bind(url.Values{"firstName": {"  Ada "}, "active": {"on"}})
	assert.Equal(t, "Ada", v["firstName"])
	assert.Equal(t, "true", v["active"])

	v = studentLike.Bind(url.Values{})
	assert.Equal(t, "false", v["active"])
}

func TestFromEntity(t *testing.T) {
	type entity struct {
		FirstName  string  `json:"firstName"`
		RollNumber *int    `json:"rollNumber,omitempty"`
		ClassID    *string `json:"classId,omitempty"`
		Joined     string  `json:"joined"`
		Active     bool    `json:"active"`
	}
	roll := 7
	v, err := studentLike.FromEntity(entity{FirstName: "Ada", RollNumber: &roll, Joined: "2024-06-01T00:00:00Z", Active: true})
	require.NoError(t, err)
	assert.Equal(t, "Ada", v["firstName"])
	assert.Equal(t, "7", v["rollNumber"])
	assert.Equal(t, "", v["classId"])
	assert.Equal(t, "2024-06-01", v["joined"])
	assert.Equal(t, "true", v["active"])
}

func TestValidate(t *testing.T) {
	v := Values{
		"firstName":  "",
		"email":      "not-an-email",
		"rollNumber": "0",
		"classId":    "c1",
		"sectionId":  "s3",
		"gender":     "robot",
		"joined":     "2024-02-30",
		"active":     "false",
	}
	errs := studentLike.Validate(v, sources, Create)
	assert.Equal(t, "First Name is required.", errs["firstName"])
	assert.Equal(t, "Enter a valid email address.", errs["email"])
	assert.Equal(t, "Roll Number must be at least 1.", errs["rollNumber"])
	assert.Equal(t, "Choose a valid Section.", errs["sectionId"], "section must belong to the selected class")
	assert.Equal(t, "Choose a valid Gender.", errs["gender"])
	assert.Equal(t, "Joined must be a valid date.", errs["joined"])
	assert.Equal(t, "First Name is required.", studentLike.Summary(errs))

	ok := Values{"firstName": "Ada", "classId": "c1", "sectionId": "s2", "rollNumber": "3", "active": "true"}
	assert.False(t, studentLike.Validate(ok, sources, Create).Any())
}

func TestValidateRequiredMessageOverride(t *testing.T) {
	s := Schema{Fields: []Field{{Name: "name", Label: "Name", Required: true, RequiredMessage: "Class name is required."}}}
	errs := s.Validate(Values{"name": ""}, nil, Create)
	assert.Equal(t, "Class name is required.", errs["name"])
}

func TestValidateNumberFormat(t *testing.T) {
	errs := studentLike.Validate(Values{"firstName": "A", "rollNumber": "seven"}, sources, Create)
	assert.Equal(t, "Roll Number must be a whole number.", errs["rollNumber"])
}

func TestPayloadCreateSendsNonEmptyTyped(t *testing.T) {
	v := Values{"firstName": "Ada", "email": "", "rollNumber": "12", "classId": "c1", "sectionId": "", "active": "false", "code": "X1"}
	p := studentLike.Payload(v, nil, Create)
	assert.Equal(t, map[string]interface{}{
		"firstName":  "Ada",
		"rollNumber": 12,
		"classId":    "c1",
		"active":     false,
		"code":       "X1",
	}, p)
}

func TestPayloadEditSendsOnlyChangedFields(t *testing.T) {
	original := Values{"firstName": "Ada", "email": "a@x.io", "rollNumber": "12", "classId": "c1", "sectionId": "s1", "active": "true", "code": "X1"}
	edited := original.Clone()
	edited["firstName"] = "Grace"
	edited["email"] = ""
	edited["active"] = "false"
	edited["code"] = "X2"

	p := studentLike.Payload(edited, original, Edit)
	assert.Equal(t, map[string]interface{}{"firstName": "Grace", "active": false}, p)
}

func TestPayloadEditUnchangedIsEmpty(t *testing.T) {
	original := Values{"firstName": "Ada", "active": "false"}
	assert.Empty(t, studentLike.Payload(original.Clone(), original, Edit))
}

func TestFilterOptions(t *testing.T) {
	opts := FilterOptions(sources["sections"], "c1")
	require.Len(t, opts, 2)
	for _, o := range opts {
		assert.Equal(t, "c1", o.Parent)
	}
	assert.Empty(t, FilterOptions(sources["sections"], ""))
	assert.Empty(t, FilterOptions(sources["sections"], "c9"))
}

func TestChangeParentClearsDependent(t *testing.T) {
	v := Values{"classId": "c1", "sectionId": "s2"}

	changed := studentLike.ChangeParent(v, "classId", "c2")
	assert.Equal(t, "c2", changed["classId"])
	assert.Equal(t, "", changed["sectionId"])
	assert.Equal(t, "s2", v["sectionId"], "input values are not mutated")

	opts := OptionsFor(studentLike.Fields[4], changed, sources)
	require.Len(t, opts, 1)
	assert.Equal(t, "s3", opts[0].Value)

	same := studentLike.ChangeParent(v, "classId", "c1")
	assert.Equal(t, "s2", same["sectionId"], "re-selecting the same class keeps the section")
}

func TestChangeParentTransitive(t *testing.T) {
	s := Schema{Fields: []Field{
		{Name: "a", Kind: Select},
		{Name: "b", Kind: Select, DependsOn: "a"},
		{Name: "c", Kind: Select, DependsOn: "b"},
	}}
	out := s.ChangeParent(Values{"a": "1", "b": "2", "c": "3"}, "a", "9")
	assert.Equal(t, Values{"a": "9", "b": "", "c": ""}, out)
}

func TestKindInputType(t *testing.T) {
	assert.Equal(t, "number", Number.InputType())
	assert.Equal(t, "date", Date.InputType())
	assert.Equal(t, "text", Select.InputType())
	assert.Equal(t, "tel", Phone.InputType())
}
