package models

// Quiz is the per-student quiz view: the quiz definition plus the
// student's completion record. completion_status is always populated,
// defaulting to "Not Taken" when no response row exists.
type Quiz struct {
	QuizID           *int64   `json:"QuizID"`
	SectionID        *string  `json:"Section_ID"`
	CourseID         *string  `json:"Course_ID"`
	Semester         *string  `json:"Semester"`
	AssessmentID     *int64   `json:"Assessment_ID"`
	GradingMethod    *string  `json:"Grading_method"`
	PassScore        *float64 `json:"pass_score"`
	TimeLimits       *string  `json:"Time_limits"`
	StartDate        *string  `json:"Start_Date"`
	EndDate          *string  `json:"End_Date"`
	Content          *string  `json:"content"`
	Types            *string  `json:"types"`
	Weight           *float64 `json:"Weight"`
	CorrectAnswer    *string  `json:"Correct_answer"`
	Questions        *string  `json:"Questions"`
	Responses        *string  `json:"Responses"`
	CompletionStatus string   `json:"completion_status"`
	Score            *float64 `json:"score"`
	StatusDisplay    *string  `json:"status_display"`
}
