package repository

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func newStudentRepoMock(t *testing.T) (*StudentRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	repo := NewStudentRepository(NewQueryStore(sqlx.NewDb(db, "sqlmock"), nil))
	return repo, mock, func() { db.Close() }
}

func TestStudentRepositoryCoursesWithSectionsGroupsInFirstSeenOrder(t *testing.T) {
	repo, mock, cleanup := newStudentRepoMock(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"course_id", "name", "credit", "category", "section_id", "semester"}).
		AddRow("CS101", "Intro to CS", int64(3), "Core", "S1", "Fall2026").
		AddRow("MA201", "Calculus II", int64(4), "Core", "S7", "Fall2026").
		AddRow("CS101", "Intro to CS", int64(3), "Core", "S2", "Spring2027")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM get_student_courses_with_sections($1)")).
		WithArgs(int64(5)).
		WillReturnRows(rows)

	courses, err := repo.CoursesWithSections(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, courses, 2)
	require.Equal(t, "CS101", courses[0].CourseID)
	require.Len(t, courses[0].Sections, 2)
	require.Equal(t, "S1", courses[0].Sections[0].SectionID)
	require.Equal(t, "S2", courses[0].Sections[1].SectionID)
	require.Equal(t, "MA201", courses[1].CourseID)
	require.Len(t, courses[1].Sections, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryCourseDetailMiss(t *testing.T) {
	repo, mock, cleanup := newStudentRepoMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM get_student_course_detail($1, $2)")).
		WithArgs(int64(5), "CS999").
		WillReturnRows(sqlmock.NewRows([]string{"course_id"}))

	detail, err := repo.CourseDetail(context.Background(), 5, "CS999")
	require.NoError(t, err)
	require.Nil(t, detail)
	require.NoError(t, mock.ExpectationsWereMet())
}
