package models

// Class is a grade level within a school, e.g. "Grade 5".
type Class struct {
	ID           string `json:"id"`
	SchoolID     string `json:"schoolId,omitempty"`
	Name         string `json:"name"`
	NumericLevel *int   `json:"numericLevel,omitempty"`
	CreatedAt    string `json:"createdAt"`
}

// DefaultMaxStudents is the capacity shown for a section that has none recorded.
const DefaultMaxStudents = 40

// Section divides a class; it always belongs to exactly one class.
type Section struct {
	ID             string  `json:"id"`
	SchoolID       string  `json:"schoolId,omitempty"`
	ClassID        string  `json:"classId"`
	ClassName      string  `json:"className"`
	Name           string  `json:"name"`
	MaxStudents    *int    `json:"maxStudents,omitempty"`
	ClassTeacherID *string `json:"classTeacherId,omitempty"`
	CreatedAt      string  `json:"createdAt"`
}

// Capacity returns MaxStudents or DefaultMaxStudents when unset.
func (s Section) Capacity() int {
	if s.MaxStudents == nil {
		return DefaultMaxStudents
	}
	return *s.MaxStudents
}
