package models

// SectionGrade is one assessment row: the grading container for a student
// within a section. Component grades are null-or-numeric; an unset
// component must never be rendered as zero.
type SectionGrade struct {
	AssessmentID    *int64   `json:"Assessment_ID"`
	SectionID       *string  `json:"Section_ID"`
	CourseID        *string  `json:"Course_ID"`
	Semester        *string  `json:"Semester"`
	QuizGrade       *float64 `json:"Quiz_Grade"`
	AssignmentGrade *float64 `json:"Assignment_Grade"`
	MidtermGrade    *float64 `json:"Midterm_Grade"`
	FinalGrade      *float64 `json:"Final_Grade"`
	Status          *string  `json:"Status"`
}

// UserGrade extends SectionGrade with enrollment dates and course rollups.
// Credits and GPA are joined by course and passed through unmodified; this
// layer performs no grade arithmetic.
type UserGrade struct {
	SectionGrade
	RegistrationDate        *string  `json:"Registration_Date"`
	PotentialWithdrawalDate *string  `json:"Potential_Withdrawal_Date"`
	CourseName              *string  `json:"Course_Name"`
	Credits                 *int64   `json:"Credits"`
	GPA                     *float64 `json:"GPA"`
}
