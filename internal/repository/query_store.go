package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/lms-go-api/pkg/rowcodec"
)

// Query identifiers for the read-model registry. Each maps to a set-returning
// function in the database; the wrapping SELECT is the only SQL this layer
// knows about, so column order is owned entirely by the function definitions.
const (
	QueryAssignmentByID         = "assignment_by_id"
	QueryAssignmentByAssessment = "assignment_by_assessment"
	QueryUserGrades             = "user_grades"
	QueryUserCourseGrades       = "user_course_grades"
	QueryUserSectionGrades      = "user_section_grades"
	QueryStudentCourses         = "student_courses"
	QueryCoursesWithSections    = "student_courses_with_sections"
	QueryStudentCourseSections  = "student_course_sections"
	QueryCourseDetail           = "course_detail"
	QuerySectionDetail          = "section_detail"
	QueryCourseStudents         = "course_students"
	QuerySectionStudents        = "section_students"
	QueryStudentsByCourse       = "students_by_course"
	QueryCourseQuizzes          = "course_quizzes"
	QuerySectionQuizzes         = "section_quizzes"
	QuerySectionAssignments     = "section_assignments"
	QueryUserSchedule           = "user_schedule"
	QueryDashboardStatistics    = "dashboard_statistics"
	QueryUpcomingTasks          = "upcoming_tasks"
	QueryLeaderboard            = "leaderboard"
	QueryActivityChart          = "activity_chart"
	QueryGradeComponents        = "grade_components"
	QueryRecordSubmission       = "record_submission"
)

var queryRegistry = map[string]string{
	QueryAssignmentByID:         "SELECT * FROM get_assignment_by_id($1)",
	QueryAssignmentByAssessment: "SELECT * FROM get_assignment_by_assessment($1, $2, $3, $4)",
	QueryUserGrades:             "SELECT * FROM get_student_all_grades($1)",
	QueryUserCourseGrades:       "SELECT * FROM get_student_course_grades($1, $2)",
	QueryUserSectionGrades:      "SELECT * FROM get_student_section_grades($1, $2, $3, $4)",
	QueryStudentCourses:         "SELECT * FROM get_student_courses($1)",
	QueryCoursesWithSections:    "SELECT * FROM get_student_courses_with_sections($1)",
	QueryStudentCourseSections:  "SELECT * FROM get_student_course_sections($1, $2)",
	QueryCourseDetail:           "SELECT * FROM get_student_course_detail($1, $2)",
	QuerySectionDetail:          "SELECT * FROM get_student_section_detail($1, $2, $3)",
	QueryCourseStudents:         "SELECT * FROM get_student_course_students($1)",
	QuerySectionStudents:        "SELECT * FROM get_student_section_students($1, $2, $3)",
	QueryStudentsByCourse: `SELECT u.university_id, u.first_name, u.last_name, u.email, s.gpa, s.year
        FROM students s
        JOIN users u ON u.university_id = s.university_id
        JOIN enrollments e ON e.university_id = s.university_id
        JOIN sections sec ON sec.section_id = e.section_id
        WHERE sec.course_id = $1`,
	QueryCourseQuizzes:      "SELECT * FROM get_student_course_quizzes($1, $2)",
	QuerySectionQuizzes:     "SELECT * FROM get_student_section_quizzes($1, $2, $3, $4)",
	QuerySectionAssignments: "SELECT * FROM get_student_section_assignments($1, $2, $3, $4)",
	QueryUserSchedule: `SELECT DISTINCT s.section_id, c.name, c.course_id, s.semester
        FROM assessments a
        JOIN sections s ON s.section_id = a.section_id AND s.course_id = a.course_id AND s.semester = a.semester
        JOIN courses c ON c.course_id = s.course_id
        WHERE a.university_id = $1`,
	QueryDashboardStatistics:    "SELECT * FROM get_dashboard_statistics($1)",
	QueryUpcomingTasks:          "SELECT * FROM get_upcoming_tasks($1, $2)",
	QueryLeaderboard:            "SELECT * FROM get_leaderboard($1)",
	QueryActivityChart:          "SELECT * FROM get_activity_chart($1, $2)",
	QueryGradeComponents:        "SELECT * FROM get_grade_components($1)",
	QueryRecordSubmission:       "SELECT record_submission($1, $2, $3, $4)",
}

// QueryObserver receives per-query latency samples.
type QueryObserver interface {
	ObserveDBQuery(query string, duration time.Duration)
}

// QueryStore executes registered read-model queries and returns raw
// positional rows. Decoding into records happens in the callers via
// rowcodec schemas; this layer guarantees only that rows come back in
// database order.
type QueryStore struct {
	db       *sqlx.DB
	observer QueryObserver
}

// NewQueryStore constructs a QueryStore. observer may be nil.
func NewQueryStore(db *sqlx.DB, observer QueryObserver) *QueryStore {
	return &QueryStore{db: db, observer: observer}
}

// FetchOne runs a registered query and returns its first row, or a nil row
// with nil error when the result set is empty. Callers distinguish a miss
// from a failure by the error value alone.
func (s *QueryStore) FetchOne(ctx context.Context, queryID string, args ...interface{}) (rowcodec.Row, error) {
	sqlText, err := s.lookup(queryID)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	rows, err := s.db.QueryxContext(ctx, sqlText, args...)
	s.observe(queryID, start)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", queryID, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("query %s: %w", queryID, err)
		}
		return nil, nil
	}
	values, err := rows.SliceScan()
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", queryID, err)
	}
	return rowcodec.Row(values), nil
}

// FetchAll runs a registered query and returns every row in database order.
// An empty result set yields an empty slice, not an error.
func (s *QueryStore) FetchAll(ctx context.Context, queryID string, args ...interface{}) ([]rowcodec.Row, error) {
	sqlText, err := s.lookup(queryID)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	rows, err := s.db.QueryxContext(ctx, sqlText, args...)
	s.observe(queryID, start)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", queryID, err)
	}
	defer rows.Close()

	result := make([]rowcodec.Row, 0, 16)
	for rows.Next() {
		values, err := rows.SliceScan()
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", queryID, err)
		}
		result = append(result, rowcodec.Row(values))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query %s: %w", queryID, err)
	}
	return result, nil
}

// Exec runs a registered query for its side effects, discarding any rows.
func (s *QueryStore) Exec(ctx context.Context, queryID string, args ...interface{}) error {
	sqlText, err := s.lookup(queryID)
	if err != nil {
		return err
	}
	start := time.Now()
	_, err = s.db.ExecContext(ctx, sqlText, args...)
	s.observe(queryID, start)
	if err != nil {
		return fmt.Errorf("exec %s: %w", queryID, err)
	}
	return nil
}

func (s *QueryStore) lookup(queryID string) (string, error) {
	sqlText, ok := queryRegistry[queryID]
	if !ok {
		return "", fmt.Errorf("unknown query %q", queryID)
	}
	return sqlText, nil
}

func (s *QueryStore) observe(queryID string, start time.Time) {
	if s.observer != nil {
		s.observer.ObserveDBQuery(queryID, time.Since(start))
	}
}
