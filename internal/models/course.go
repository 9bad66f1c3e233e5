package models

// Course is the minimal course record for enrollment listings.
type Course struct {
	CourseID string `json:"Course_ID"`
	Name     string `json:"Name"`
	Credit   *int64 `json:"Credit"`
}

// CourseDetail adds the course category.
type CourseDetail struct {
	CourseID string  `json:"Course_ID"`
	Name     string  `json:"Name"`
	Credit   *int64  `json:"Credit"`
	Category *string `json:"CCategory"`
}

// SectionRef identifies a section within a course.
type SectionRef struct {
	SectionID string `json:"Section_ID"`
	Semester  string `json:"Semester"`
}

// CourseWithSections groups a student's sections under their course.
type CourseWithSections struct {
	CourseID string       `json:"Course_ID"`
	Name     string       `json:"Name"`
	Credit   *int64       `json:"Credit"`
	Category *string      `json:"CCategory"`
	Sections []SectionRef `json:"Sections"`
}

// Section is a full section key belonging to a course.
type Section struct {
	SectionID string `json:"Section_ID"`
	CourseID  string `json:"Course_ID"`
	Semester  string `json:"Semester"`
}

// SectionDetail joins a section with its course metadata.
type SectionDetail struct {
	SectionID  string  `json:"Section_ID"`
	CourseID   string  `json:"Course_ID"`
	Semester   string  `json:"Semester"`
	CourseName string  `json:"Course_Name"`
	Credit     *int64  `json:"Credit"`
	Category   *string `json:"CCategory"`
}

// ScheduleItem is one enrollment-derived schedule row.
type ScheduleItem struct {
	SectionID  string `json:"Section_ID"`
	CourseName string `json:"Course_Name"`
	CourseID   string `json:"Course_ID"`
	Semester   string `json:"Semester"`
}
