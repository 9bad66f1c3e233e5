package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func newGradeRepoMock(t *testing.T) (*GradeRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	repo := NewGradeRepository(NewQueryStore(sqlx.NewDb(db, "sqlmock"), nil))
	return repo, mock, func() { db.Close() }
}

// A stored zero and a missing grade are different facts and must survive
// the round trip as 0.0 and null respectively.
func TestGradeRepositoryUserGradesKeepsNullsAndZeros(t *testing.T) {
	repo, mock, cleanup := newGradeRepoMock(t)
	defer cleanup()

	registered := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"assessment_id", "section_id", "course_id", "semester",
		"quiz_grade", "assignment_grade", "midterm_grade", "final_grade",
		"status", "registration_date", "potential_withdrawal_date",
		"course_name", "credits", "gpa",
	}).
		AddRow(int64(1), "S1", "CS101", "Fall2026", float64(0), nil, float64(88.5), nil, "Enrolled", registered, nil, "Intro to CS", int64(3), float64(3.4)).
		AddRow(int64(2), "S2", "CS102", "Fall2026", nil, nil, nil, nil, nil, nil, nil, "Data Structures", nil, nil)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM get_student_all_grades($1)")).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	grades, err := repo.UserGrades(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, grades, 2)

	first := grades[0]
	require.NotNil(t, first.QuizGrade)
	require.Equal(t, 0.0, *first.QuizGrade)
	require.Nil(t, first.AssignmentGrade)
	require.Equal(t, 88.5, *first.MidtermGrade)
	require.Equal(t, "2026-01-10 09:00:00", *first.RegistrationDate)
	require.Nil(t, first.PotentialWithdrawalDate)

	second := grades[1]
	require.Nil(t, second.QuizGrade)
	require.Nil(t, second.FinalGrade)
	require.Nil(t, second.Status)
	require.Nil(t, second.GPA)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGradeRepositorySectionGradesMiss(t *testing.T) {
	repo, mock, cleanup := newGradeRepoMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM get_student_section_grades($1, $2, $3, $4)")).
		WithArgs(int64(1), "S1", "CS101", "Fall2026").
		WillReturnRows(sqlmock.NewRows([]string{"assessment_id"}))

	grade, err := repo.SectionGrades(context.Background(), 1, "S1", "CS101", "Fall2026")
	require.NoError(t, err)
	require.Nil(t, grade)
	require.NoError(t, mock.ExpectationsWereMet())
}
