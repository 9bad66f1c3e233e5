package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/lms-go-api/internal/models"
)

type stubGradeReader struct {
	userGrades   []models.UserGrade
	courseGrades []models.SectionGrade
	sectionGrade *models.SectionGrade
	err          error
}

func (s *stubGradeReader) UserGrades(ctx context.Context, universityID int64) ([]models.UserGrade, error) {
	return s.userGrades, s.err
}

func (s *stubGradeReader) CourseGrades(ctx context.Context, universityID int64, courseID string) ([]models.SectionGrade, error) {
	return s.courseGrades, s.err
}

func (s *stubGradeReader) SectionGrades(ctx context.Context, universityID int64, sectionID, courseID, semester string) (*models.SectionGrade, error) {
	return s.sectionGrade, s.err
}

// A quiz grade stored as zero and an assignment grade never entered must
// come out the far end as 0.0 and null respectively.
func TestUserGradesPreservesNullsEndToEnd(t *testing.T) {
	zero := 0.0
	final := 91.5
	reader := &stubGradeReader{userGrades: []models.UserGrade{
		{
			SectionGrade: models.SectionGrade{
				SectionID: strPtr("S1"),
				QuizGrade: &zero,
			},
		},
		{
			SectionGrade: models.SectionGrade{
				SectionID:  strPtr("S2"),
				FinalGrade: &final,
			},
		},
	}}
	svc := NewGradeService(reader, zap.NewNop())

	grades, err := svc.UserGrades(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, grades, 2)

	require.NotNil(t, grades[0].QuizGrade)
	assert.Equal(t, 0.0, *grades[0].QuizGrade)
	assert.Nil(t, grades[0].AssignmentGrade)
	assert.Nil(t, grades[0].FinalGrade)

	assert.Nil(t, grades[1].QuizGrade)
	require.NotNil(t, grades[1].FinalGrade)
	assert.Equal(t, 91.5, *grades[1].FinalGrade)
}

func TestUserGradesEmptyIsNotAnError(t *testing.T) {
	svc := NewGradeService(&stubGradeReader{}, zap.NewNop())
	grades, err := svc.UserGrades(context.Background(), 42)
	require.NoError(t, err)
	assert.Empty(t, grades)
}

func TestSectionGradesNullShellEchoesIdentifiers(t *testing.T) {
	svc := NewGradeService(&stubGradeReader{}, zap.NewNop())

	grade, err := svc.SectionGrades(context.Background(), 1, "S9", "CS105", "Fall2026")
	require.NoError(t, err)
	require.NotNil(t, grade.SectionID)
	assert.Equal(t, "S9", *grade.SectionID)
	assert.Equal(t, "CS105", *grade.CourseID)
	assert.Equal(t, "Fall2026", *grade.Semester)
	assert.Nil(t, grade.AssessmentID)
	assert.Nil(t, grade.QuizGrade)
	assert.Nil(t, grade.AssignmentGrade)
	assert.Nil(t, grade.MidtermGrade)
	assert.Nil(t, grade.FinalGrade)
	assert.Nil(t, grade.Status)
}

func TestSectionGradesPassThrough(t *testing.T) {
	quiz := 70.0
	reader := &stubGradeReader{sectionGrade: &models.SectionGrade{
		AssessmentID: intPtr(3),
		SectionID:    strPtr("S1"),
		QuizGrade:    &quiz,
	}}
	svc := NewGradeService(reader, zap.NewNop())

	grade, err := svc.SectionGrades(context.Background(), 1, "S1", "CS101", "Fall2026")
	require.NoError(t, err)
	assert.Equal(t, int64(3), *grade.AssessmentID)
	assert.Equal(t, 70.0, *grade.QuizGrade)
}
