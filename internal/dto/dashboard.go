package dto

// DashboardStatistics is the student statistics summary. A student with no
// underlying data gets the all-zero object, never null.
type DashboardStatistics struct {
	TotalCourses         int64   `json:"total_courses"`
	TotalAssignments     int64   `json:"total_assignments"`
	TotalQuizzes         int64   `json:"total_quizzes"`
	CompletedAssignments int64   `json:"completed_assignments"`
	CompletedQuizzes     int64   `json:"completed_quizzes"`
	AverageGrade         float64 `json:"average_grade"`
	TotalStudyHours      int64   `json:"total_study_hours"`
	ProgressPercentage   float64 `json:"progress_percentage"`
	LeaderboardRank      int64   `json:"leaderboard_rank"`
}

// UpcomingTask is one pending assignment or quiz, ordered by deadline
// upstream; the composer preserves that order.
type UpcomingTask struct {
	TaskType      *string `json:"task_type"`
	TaskID        *int64  `json:"task_id"`
	TaskTitle     *string `json:"task_title"`
	Deadline      *string `json:"deadline"`
	CourseName    *string `json:"course_name"`
	CourseID      *string `json:"course_id"`
	Semester      *string `json:"semester"`
	IsCompleted   bool    `json:"is_completed"`
	CurrentStatus *string `json:"current_status"`
}

// LeaderboardEntry is pre-ranked upstream; rank order is preserved as-is.
type LeaderboardEntry struct {
	Rank      int64   `json:"rank"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Courses   int64   `json:"course"`
	Hours     int64   `json:"hour"`
	Points    float64 `json:"point"`
	Trend     *string `json:"trend"`
}

// ActivityPoint is one month of study/exam activity for the chart.
type ActivityPoint struct {
	Month *string `json:"month"`
	Study int64   `json:"Study"`
	Exams int64   `json:"Exams"`
}

// GradeComponent summarises per-course component grades for the dashboard
// chart; missing components render as zero here by contract (chart axis),
// unlike the grade views which keep nulls.
type GradeComponent struct {
	CourseName      *string `json:"course_name"`
	CourseID        *string `json:"course_id"`
	Semester        *string `json:"semester"`
	FinalGrade      float64 `json:"final_grade"`
	MidtermGrade    float64 `json:"midterm_grade"`
	QuizGrade       float64 `json:"quiz_grade"`
	AssignmentGrade float64 `json:"assignment_grade"`
}
