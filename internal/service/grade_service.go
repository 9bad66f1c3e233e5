package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/lms-go-api/internal/models"
)

type gradeReader interface {
	UserGrades(ctx context.Context, universityID int64) ([]models.UserGrade, error)
	CourseGrades(ctx context.Context, universityID int64, courseID string) ([]models.SectionGrade, error)
	SectionGrades(ctx context.Context, universityID int64, sectionID, courseID, semester string) (*models.SectionGrade, error)
}

// GradeService exposes the grade views. It performs no grade arithmetic:
// every numeric value is passed through exactly as stored, and a missing
// component is a null, never a zero.
type GradeService struct {
	grades gradeReader
	logger *zap.Logger
}

// NewGradeService constructs a GradeService.
func NewGradeService(grades gradeReader, logger *zap.Logger) *GradeService {
	return &GradeService{grades: grades, logger: logger}
}

// UserGrades returns every assessment row for a student. A student with
// no assessments gets an empty list, not an error.
func (s *GradeService) UserGrades(ctx context.Context, universityID int64) ([]models.UserGrade, error) {
	grades, err := s.grades.UserGrades(ctx, universityID)
	if err != nil {
		return nil, wrapReadError(err, "list user grades")
	}
	return grades, nil
}

// CourseGrades returns the student's assessment rows within one course.
func (s *GradeService) CourseGrades(ctx context.Context, universityID int64, courseID string) ([]models.SectionGrade, error) {
	grades, err := s.grades.CourseGrades(ctx, universityID, courseID)
	if err != nil {
		return nil, wrapReadError(err, "list course grades")
	}
	return grades, nil
}

// SectionGrades returns the student's assessment row for a section. A
// student with no assessment there gets the null shell: the identifiers
// echo the request, every grade component stays null.
func (s *GradeService) SectionGrades(ctx context.Context, universityID int64, sectionID, courseID, semester string) (models.SectionGrade, error) {
	grade, err := s.grades.SectionGrades(ctx, universityID, sectionID, courseID, semester)
	if err != nil {
		return models.SectionGrade{}, wrapReadError(err, "get section grades")
	}
	if grade == nil {
		return models.SectionGrade{
			SectionID: &sectionID,
			CourseID:  &courseID,
			Semester:  &semester,
		}, nil
	}
	return *grade, nil
}
