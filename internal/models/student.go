package models

// EnrolledStudent is a course roster entry joined with student academics.
type EnrolledStudent struct {
	UniversityID int64    `json:"University_ID"`
	FirstName    string   `json:"First_Name"`
	LastName     string   `json:"Last_Name"`
	Email        string   `json:"Email"`
	GPA          *float64 `json:"GPA"`
	Year         *int64   `json:"Year"`
}

// ClassmateStudent is the reduced roster view exposed to fellow students.
type ClassmateStudent struct {
	UniversityID  *int64  `json:"University_ID"`
	FirstName     *string `json:"First_Name"`
	LastName      *string `json:"Last_Name"`
	Email         *string `json:"Email"`
	Major         *string `json:"Major"`
	CurrentDegree *string `json:"Current_degree"`
}
