package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/lms-go-api/internal/models"
)

func newAssignmentRepoMock(t *testing.T) (*AssignmentRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	repo := NewAssignmentRepository(NewQueryStore(sqlx.NewDb(db, "sqlmock"), nil))
	return repo, mock, func() { db.Close() }
}

func TestAssignmentRepositoryFindByIDFullRow(t *testing.T) {
	repo, mock, cleanup := newAssignmentRepoMock(t)
	defer cleanup()

	deadline := time.Date(2026, 3, 15, 23, 59, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"assignment_id", "course_id", "semester", "max_score", "accepted_specification", "submission_deadline", "instructions", "task_url", "course_name", "student_count"}).
		AddRow(int64(10), "CS101", "Fall2026", int64(100), ".pdf,.zip", deadline, "Solve all tasks", "https://tasks.example/10", "Intro to CS", int64(34))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM get_assignment_by_id($1)")).
		WithArgs(int64(10)).
		WillReturnRows(rows)

	detail, err := repo.FindByID(context.Background(), 10)
	require.NoError(t, err)
	require.NotNil(t, detail)
	require.Equal(t, int64(10), *detail.AssignmentID)
	require.Equal(t, "CS101", *detail.CourseID)
	require.Equal(t, "2026-03-15 23:59:00", *detail.SubmissionDeadline)
	require.Equal(t, int64(34), detail.StudentCount)
	require.NoError(t, mock.ExpectationsWereMet())
}

// Older rows predate the task_url/course_name/student_count columns; the
// decoder must default them instead of failing.
func TestAssignmentRepositoryFindByIDShortRow(t *testing.T) {
	repo, mock, cleanup := newAssignmentRepoMock(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"assignment_id", "course_id", "semester", "max_score", "accepted_specification", "submission_deadline", "instructions"}).
		AddRow(int64(11), "CS102", "Fall2026", int64(50), nil, nil, "Short answer")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM get_assignment_by_id($1)")).
		WithArgs(int64(11)).
		WillReturnRows(rows)

	detail, err := repo.FindByID(context.Background(), 11)
	require.NoError(t, err)
	require.NotNil(t, detail)
	require.Nil(t, detail.TaskURL)
	require.Nil(t, detail.CourseName)
	require.Equal(t, int64(0), detail.StudentCount)
	require.Nil(t, detail.SubmissionDeadline)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignmentRepositoryFindByIDMiss(t *testing.T) {
	repo, mock, cleanup := newAssignmentRepoMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM get_assignment_by_id($1)")).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"assignment_id"}))

	detail, err := repo.FindByID(context.Background(), 404)
	require.NoError(t, err)
	require.Nil(t, detail)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignmentRepositoryFindByAssessmentNilHintsAreWildcards(t *testing.T) {
	repo, mock, cleanup := newAssignmentRepoMock(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"assignment_id", "course_id", "semester", "max_score", "accepted_specification", "submission_deadline", "instructions"}).
		AddRow(int64(7), "CS103", "Spring2026", int64(20), nil, nil, nil)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM get_assignment_by_assessment($1, $2, $3, $4)")).
		WithArgs(int64(99), nil, nil, nil).
		WillReturnRows(rows)

	detail, err := repo.FindByAssessment(context.Background(), 99, models.AssignmentHints{})
	require.NoError(t, err)
	require.NotNil(t, detail)
	require.Equal(t, int64(7), *detail.AssignmentID)
	require.NoError(t, mock.ExpectationsWereMet())
}
