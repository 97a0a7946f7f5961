package models

// AcademicYear is a school year; at most one is current per school.
type AcademicYear struct {
	ID        string `json:"id"`
	SchoolID  string `json:"schoolId,omitempty"`
	Name      string `json:"name"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	IsCurrent bool   `json:"isCurrent"`
}

// Department groups staff, e.g. "Mathematics".
type Department struct {
	ID       string  `json:"id"`
	SchoolID string  `json:"schoolId,omitempty"`
	Name     string  `json:"name"`
	Code     *string `json:"code,omitempty"`
}

// Designation is a staff job title, e.g. "Senior Teacher".
type Designation struct {
	ID          string  `json:"id"`
	SchoolID    string  `json:"schoolId,omitempty"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
}

// Subject is a taught subject.
type Subject struct {
	ID       string  `json:"id"`
	SchoolID string  `json:"schoolId,omitempty"`
	Name     string  `json:"name"`
	Code     *string `json:"code,omitempty"`
	Type     string  `json:"type"`
}
