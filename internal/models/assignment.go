package models

// AssignmentDetail is the canonical assignment record returned by the
// resolver, regardless of which addressing scheme matched.
type AssignmentDetail struct {
	AssignmentID          *int64  `json:"AssignmentID"`
	CourseID              *string `json:"Course_ID"`
	Semester              *string `json:"Semester"`
	MaxScore              *int64  `json:"MaxScore"`
	AcceptedSpecification *string `json:"accepted_specification"`
	SubmissionDeadline    *string `json:"submission_deadline"`
	Instructions          *string `json:"instructions"`
	TaskURL               *string `json:"TaskURL"`
	CourseName            *string `json:"Course_Name"`
	StudentCount          int64   `json:"StudentCount"`
}

// AssignmentHints scopes the secondary (assessment id) lookup. Nil values
// are passed through as wildcards, never defaulted to a sentinel.
type AssignmentHints struct {
	UniversityID *int64
	SectionID    *string
	CourseID     *string
}

// SectionAssignment is the per-student assignment view for a section,
// including submission state read from the grading store.
type SectionAssignment struct {
	AssignmentID          *int64   `json:"AssignmentID"`
	CourseID              *string  `json:"Course_ID"`
	Semester              *string  `json:"Semester"`
	Instructions          *string  `json:"instructions"`
	AcceptedSpecification *string  `json:"accepted_specification"`
	SubmissionDeadline    *string  `json:"submission_deadline"`
	TaskURL               *string  `json:"TaskURL"`
	MaxScore              *int64   `json:"MaxScore"`
	AssessmentID          *int64   `json:"Assessment_ID"`
	Score                 *float64 `json:"score"`
	Status                *string  `json:"status"`
	SubmitDate            *string  `json:"SubmitDate"`
	LateFlag              *bool    `json:"late_flag_indicator"`
	AttachedFiles         *string  `json:"attached_files"`
	Comments              *string  `json:"Comments"`
	StatusDisplay         *string  `json:"status_display"`
}
