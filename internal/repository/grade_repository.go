package repository

import (
	"context"

	"github.com/noah-isme/lms-go-api/internal/models"
	"github.com/noah-isme/lms-go-api/pkg/rowcodec"
)

// Component grades are decoded as nullable floats on purpose: a stored
// zero stays 0.0 and a missing grade stays null, and the two are never
// folded together anywhere downstream.
var sectionGradeSchema = rowcodec.NewSchema(
	rowcodec.Int("assessment_id"),
	rowcodec.String("section_id"),
	rowcodec.String("course_id"),
	rowcodec.String("semester"),
	rowcodec.Float("quiz_grade"),
	rowcodec.Float("assignment_grade"),
	rowcodec.Float("midterm_grade"),
	rowcodec.Float("final_grade"),
	rowcodec.String("status"),
)

var userGradeSchema = rowcodec.NewSchema(
	rowcodec.Int("assessment_id"),
	rowcodec.String("section_id"),
	rowcodec.String("course_id"),
	rowcodec.String("semester"),
	rowcodec.Float("quiz_grade"),
	rowcodec.Float("assignment_grade"),
	rowcodec.Float("midterm_grade"),
	rowcodec.Float("final_grade"),
	rowcodec.String("status"),
	rowcodec.Time("registration_date"),
	rowcodec.Time("potential_withdrawal_date"),
	rowcodec.String("course_name"),
	rowcodec.Int("credits"),
	rowcodec.Float("gpa"),
)

// GradeRepository reads assessment grades through the query store.
type GradeRepository struct {
	store *QueryStore
}

// NewGradeRepository constructs a GradeRepository.
func NewGradeRepository(store *QueryStore) *GradeRepository {
	return &GradeRepository{store: store}
}

// UserGrades returns every assessment row for a student across all
// sections, with enrollment dates and course rollups joined in.
func (r *GradeRepository) UserGrades(ctx context.Context, universityID int64) ([]models.UserGrade, error) {
	rows, err := r.store.FetchAll(ctx, QueryUserGrades, universityID)
	if err != nil {
		return nil, err
	}
	grades := make([]models.UserGrade, 0, len(rows))
	for _, row := range rows {
		rec, err := rowcodec.Decode(userGradeSchema, row)
		if err != nil {
			return nil, err
		}
		grades = append(grades, models.UserGrade{
			SectionGrade:            sectionGradeFromRecord(rec),
			RegistrationDate:        rec.TimeString("registration_date"),
			PotentialWithdrawalDate: rec.TimeString("potential_withdrawal_date"),
			CourseName:              rec.Str("course_name"),
			Credits:                 rec.Int("credits"),
			GPA:                     rec.Float("gpa"),
		})
	}
	return grades, nil
}

// CourseGrades returns the student's assessment rows within one course.
func (r *GradeRepository) CourseGrades(ctx context.Context, universityID int64, courseID string) ([]models.SectionGrade, error) {
	rows, err := r.store.FetchAll(ctx, QueryUserCourseGrades, universityID, courseID)
	if err != nil {
		return nil, err
	}
	grades := make([]models.SectionGrade, 0, len(rows))
	for _, row := range rows {
		rec, err := rowcodec.Decode(sectionGradeSchema, row)
		if err != nil {
			return nil, err
		}
		grades = append(grades, sectionGradeFromRecord(rec))
	}
	return grades, nil
}

// SectionGrades returns the student's single assessment row for a section,
// or nil when the student has no assessment there.
func (r *GradeRepository) SectionGrades(ctx context.Context, universityID int64, sectionID, courseID, semester string) (*models.SectionGrade, error) {
	row, err := r.store.FetchOne(ctx, QueryUserSectionGrades, universityID, sectionID, courseID, semester)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}
	rec, err := rowcodec.Decode(sectionGradeSchema, row)
	if err != nil {
		return nil, err
	}
	grade := sectionGradeFromRecord(rec)
	return &grade, nil
}

func sectionGradeFromRecord(rec rowcodec.Record) models.SectionGrade {
	return models.SectionGrade{
		AssessmentID:    rec.Int("assessment_id"),
		SectionID:       rec.Str("section_id"),
		CourseID:        rec.Str("course_id"),
		Semester:        rec.Str("semester"),
		QuizGrade:       rec.Float("quiz_grade"),
		AssignmentGrade: rec.Float("assignment_grade"),
		MidtermGrade:    rec.Float("midterm_grade"),
		FinalGrade:      rec.Float("final_grade"),
		Status:          rec.Str("status"),
	}
}
