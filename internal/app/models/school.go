package models

// School is a tenant of the platform. Users other than super admins belong to exactly one.
type School struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Code               string  `json:"code"`
	Email              string  `json:"email"`
	Phone              *string `json:"phone,omitempty"`
	Address            *string `json:"address,omitempty"`
	City               *string `json:"city,omitempty"`
	State              *string `json:"state,omitempty"`
	Country            *string `json:"country,omitempty"`
	Timezone           string  `json:"timezone"`
	AcademicYearStart  string  `json:"academicYearStart"`
	EstdYear           *int    `json:"estdYear,omitempty"`
	Board              *string `json:"board,omitempty"`
	AffiliationNo      *string `json:"affiliationNo,omitempty"`
	Website            *string `json:"website,omitempty"`
	Motto              *string `json:"motto,omitempty"`
	LogoURL            *string `json:"logoUrl,omitempty"`
	SubscriptionPlan   string  `json:"subscriptionPlan"`
	SubscriptionStatus string  `json:"subscriptionStatus"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          *string `json:"updatedAt,omitempty"`
}
