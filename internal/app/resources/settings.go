package resources

import (
	"strconv"
	"time"

	"github.com/yigit/schooldash/internal/app/forms"
	"github.com/yigit/schooldash/internal/app/models"
)

// Timezones offered on the school profile.
var Timezones = []string{
	"Asia/Kolkata", "Asia/Dubai", "Asia/Singapore", "Asia/Karachi", "Asia/Dhaka",
	"Asia/Kathmandu", "Africa/Nairobi", "Europe/London", "America/New_York", "UTC",
}

// SchoolProfileSchema is the /schools/me form.
func SchoolProfileSchema(now time.Time) forms.Schema {
	return forms.Schema{Fields: []forms.Field{
		{Name: "name", Label: "School Name", Kind: forms.Text, Required: true, Rules: "min=2"},
		{Name: "email", Label: "Email", Kind: forms.Email, Required: true},
		{Name: "phone", Label: "Phone", Kind: forms.Phone},
		{Name: "address", Label: "Address", Kind: forms.Textarea},
		{Name: "city", Label: "City", Kind: forms.Text},
		{Name: "state", Label: "State", Kind: forms.Text},
		{Name: "country", Label: "Country", Kind: forms.Text},
		{Name: "timezone", Label: "Timezone", Kind: forms.Select, Default: "Asia/Kolkata",
			Options: forms.EnumOptions(Timezones, func(s string) string { return s })},
		{Name: "academicYearStart", Label: "Academic Year Starts In", Kind: forms.Select, Default: "april",
			Options: forms.EnumOptions(models.Months, models.Humanize)},
		{Name: "estdYear", Label: "Established", Kind: forms.Number,
			Rules: "gte=1800,lte=" + strconv.Itoa(now.Year())},
		{Name: "board", Label: "Board", Kind: forms.Text, Placeholder: "e.g., CBSE"},
		{Name: "affiliationNo", Label: "Affiliation Number", Kind: forms.Text},
		{Name: "website", Label: "Website", Kind: forms.URL, Placeholder: "https://"},
		{Name: "motto", Label: "Motto", Kind: forms.Text, Rules: "max=100"},
	}}
}

// AccountProfileSchema is the /auth/me form.
var AccountProfileSchema = forms.Schema{Fields: []forms.Field{
	{Name: "firstName", Label: "First Name", Kind: forms.Text},
	{Name: "lastName", Label: "Last Name", Kind: forms.Text},
	{Name: "phone", Label: "Phone", Kind: forms.Phone},
	{Name: "gender", Label: "Gender", Kind: forms.Select, Options: genderOptions()},
	{Name: "dateOfBirth", Label: "Date of Birth", Kind: forms.Date},
	{Name: "address", Label: "Address", Kind: forms.Textarea},
}}
