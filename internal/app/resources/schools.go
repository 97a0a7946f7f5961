package resources

import (
	"github.com/yigit/schooldash/internal/app/forms"
	"github.com/yigit/schooldash/internal/app/models"
	"github.com/yigit/schooldash/internal/navigation"
)

// SchoolSchema onboards a school and its first school admin.
var SchoolSchema = forms.Schema{Fields: []forms.Field{
	{Name: "name", Label: "School Name", Kind: forms.Text, Required: true, Rules: "min=2", Placeholder: "e.g., Delhi Public School"},
	{Name: "email", Label: "School Email", Kind: forms.Email, Required: true, Placeholder: "contact@school.edu"},
	{Name: "phone", Label: "Phone", Kind: forms.Phone, Required: true, Rules: "min=10"},
	{Name: "address", Label: "Address", Kind: forms.Textarea},
	{Name: "city", Label: "City", Kind: forms.Text, Required: true},
	{Name: "state", Label: "State", Kind: forms.Text, Required: true},
	{Name: "adminEmail", Label: "Admin Email", Kind: forms.Email, Required: true, Help: "The school admin signs in with this email."},
	{Name: "adminPassword", Label: "Admin Password", Kind: forms.Password, Required: true, Rules: "min=6"},
}}

// Schools describes the super-admin school list. Schools are only created here;
// each school manages its own profile through settings.
var Schools = &Descriptor[models.School]{
	Key:      "schools",
	Singular: "School",
	Plural:   "Schools",
	APIPath:  "/schools",
	Path:     navigation.PathSchools,
	Schema:   SchoolSchema,
	Columns: []Column[models.School]{
		{Key: "name", Label: "Name", Sortable: true, Value: func(s models.School) string { return s.Name }},
		{Key: "code", Label: "Code", Sortable: true, Value: func(s models.School) string { return str(s.Code) }},
		{Key: "city", Label: "City", Sortable: true, Value: func(s models.School) string { return opt(s.City) }},
		{Key: "email", Label: "Email", Value: func(s models.School) string { return s.Email }},
		{Key: "subscriptionPlan", Label: "Plan", Sortable: true, Value: func(s models.School) string { return human(&s.SubscriptionPlan) }},
		{Key: "subscriptionStatus", Label: "Status", Sortable: true, Badge: true, Value: func(s models.School) string { return s.SubscriptionStatus }},
	},
	ID:    func(s models.School) string { return s.ID },
	Title: func(s models.School) string { return s.Name },
	Search: func(s models.School) string {
		return joinSearch(s.Name, s.Code, s.Email, models.Deref(s.City), models.Deref(s.State))
	},
	CanCreate:    true,
	EmptyTitle:   "No schools yet",
	EmptyText:    "Onboard the first school on the platform.",
	CreatedFlash: "School created successfully.",
	NotFoundText: "School not found.",
}
