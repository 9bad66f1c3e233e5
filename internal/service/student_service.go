package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/lms-go-api/internal/models"
	"github.com/noah-isme/lms-go-api/internal/repository"
	appErrors "github.com/noah-isme/lms-go-api/pkg/errors"
)

type enrollmentReader interface {
	Courses(ctx context.Context, universityID int64) ([]models.Course, error)
	CoursesWithSections(ctx context.Context, universityID int64) ([]models.CourseWithSections, error)
	CourseDetail(ctx context.Context, universityID int64, courseID string) (*models.CourseDetail, error)
	SectionDetail(ctx context.Context, universityID int64, sectionID, courseID string) (*models.SectionDetail, error)
	CourseSections(ctx context.Context, universityID int64, courseID string) ([]models.Section, error)
	CourseClassmates(ctx context.Context, courseID string) ([]models.ClassmateStudent, error)
	SectionClassmates(ctx context.Context, sectionID, courseID, semester string) ([]models.ClassmateStudent, error)
	EnrolledByCourse(ctx context.Context, courseID string) ([]models.EnrolledStudent, error)
}

type quizReader interface {
	CourseQuizzes(ctx context.Context, universityID int64, courseID string) ([]repository.QuizRow, error)
	SectionQuizzes(ctx context.Context, universityID int64, sectionID, courseID, semester string) ([]repository.QuizRow, error)
}

// StudentService serves the enrollment-scoped course, section, roster and
// quiz views for the student area.
type StudentService struct {
	enrollments enrollmentReader
	quizzes     quizReader
	logger      *zap.Logger
}

// NewStudentService constructs a StudentService.
func NewStudentService(enrollments enrollmentReader, quizzes quizReader, logger *zap.Logger) *StudentService {
	return &StudentService{enrollments: enrollments, quizzes: quizzes, logger: logger}
}

// Courses lists the courses a student is enrolled in.
func (s *StudentService) Courses(ctx context.Context, universityID int64) ([]models.Course, error) {
	courses, err := s.enrollments.Courses(ctx, universityID)
	if err != nil {
		return nil, wrapReadError(err, "list student courses")
	}
	return courses, nil
}

// CoursesWithSections lists enrollment grouped as courses over sections.
func (s *StudentService) CoursesWithSections(ctx context.Context, universityID int64) ([]models.CourseWithSections, error) {
	courses, err := s.enrollments.CoursesWithSections(ctx, universityID)
	if err != nil {
		return nil, wrapReadError(err, "list courses with sections")
	}
	return courses, nil
}

// CourseDetail returns the course header for an enrolled student.
func (s *StudentService) CourseDetail(ctx context.Context, universityID int64, courseID string) (*models.CourseDetail, error) {
	detail, err := s.enrollments.CourseDetail(ctx, universityID, courseID)
	if err != nil {
		return nil, wrapReadError(err, "get course detail")
	}
	if detail == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "Course not found or student not enrolled")
	}
	return detail, nil
}

// SectionDetail returns the joined section/course header.
func (s *StudentService) SectionDetail(ctx context.Context, universityID int64, sectionID, courseID string) (*models.SectionDetail, error) {
	detail, err := s.enrollments.SectionDetail(ctx, universityID, sectionID, courseID)
	if err != nil {
		return nil, wrapReadError(err, "get section detail")
	}
	if detail == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "Section not found or student not enrolled")
	}
	return detail, nil
}

// CourseSections lists the sections of a course the student is enrolled in.
func (s *StudentService) CourseSections(ctx context.Context, universityID int64, courseID string) ([]models.Section, error) {
	sections, err := s.enrollments.CourseSections(ctx, universityID, courseID)
	if err != nil {
		return nil, wrapReadError(err, "list course sections")
	}
	return sections, nil
}

// CourseClassmates lists the reduced roster of a course.
func (s *StudentService) CourseClassmates(ctx context.Context, courseID string) ([]models.ClassmateStudent, error) {
	students, err := s.enrollments.CourseClassmates(ctx, courseID)
	if err != nil {
		return nil, wrapReadError(err, "list course classmates")
	}
	return students, nil
}

// SectionClassmates lists the reduced roster of a section.
func (s *StudentService) SectionClassmates(ctx context.Context, sectionID, courseID, semester string) ([]models.ClassmateStudent, error) {
	students, err := s.enrollments.SectionClassmates(ctx, sectionID, courseID, semester)
	if err != nil {
		return nil, wrapReadError(err, "list section classmates")
	}
	return students, nil
}

// EnrolledByCourse lists a course roster joined with student academics.
func (s *StudentService) EnrolledByCourse(ctx context.Context, courseID string) ([]models.EnrolledStudent, error) {
	students, err := s.enrollments.EnrolledByCourse(ctx, courseID)
	if err != nil {
		return nil, wrapReadError(err, "list enrolled students")
	}
	return students, nil
}

// CourseQuizzes lists a student's quizzes across a course with completion
// state derived for every row.
func (s *StudentService) CourseQuizzes(ctx context.Context, universityID int64, courseID string) ([]models.Quiz, error) {
	rows, err := s.quizzes.CourseQuizzes(ctx, universityID, courseID)
	if err != nil {
		return nil, wrapReadError(err, "list course quizzes")
	}
	return deriveQuizzes(rows), nil
}

// SectionQuizzes lists a student's quizzes within one section.
func (s *StudentService) SectionQuizzes(ctx context.Context, universityID int64, sectionID, courseID, semester string) ([]models.Quiz, error) {
	rows, err := s.quizzes.SectionQuizzes(ctx, universityID, sectionID, courseID, semester)
	if err != nil {
		return nil, wrapReadError(err, "list section quizzes")
	}
	return deriveQuizzes(rows), nil
}

func deriveQuizzes(rows []repository.QuizRow) []models.Quiz {
	quizzes := make([]models.Quiz, 0, len(rows))
	for _, row := range rows {
		derived := DeriveQuizStatus(QuizStatusInput{
			Completion:  row.Completion,
			Display:     row.StatusDisplay,
			HasResponse: row.Completion != nil || row.Responses != nil || row.Score != nil,
			Score:       row.Score,
			PassScore:   row.PassScore,
		})
		quiz := row.Quiz
		quiz.CompletionStatus = derived.Completion
		quiz.StatusDisplay = &derived.Display
		quizzes = append(quizzes, quiz)
	}
	return quizzes
}
