package repository

import (
	"context"

	"github.com/noah-isme/lms-go-api/internal/models"
	"github.com/noah-isme/lms-go-api/pkg/rowcodec"
)

var quizSchema = rowcodec.NewSchema(
	rowcodec.Int("quiz_id"),
	rowcodec.String("section_id"),
	rowcodec.String("course_id"),
	rowcodec.String("semester"),
	rowcodec.Int("assessment_id"),
	rowcodec.String("grading_method"),
	rowcodec.Float("pass_score"),
	rowcodec.String("time_limits"),
	rowcodec.Time("start_date"),
	rowcodec.Time("end_date"),
	rowcodec.String("content"),
	rowcodec.String("types"),
	rowcodec.Float("weight"),
	rowcodec.String("correct_answer"),
	rowcodec.String("questions"),
	rowcodec.String("responses"),
	rowcodec.String("completion_status"),
	rowcodec.Float("score"),
	rowcodec.String("status_display"),
)

// QuizRow carries the per-student quiz view plus the raw upstream
// completion value. The deriver fills the model's CompletionStatus; the
// raw value lets it tell "no response row" apart from a recorded status.
type QuizRow struct {
	models.Quiz
	Completion *string
}

// QuizRepository reads quiz views through the query store.
type QuizRepository struct {
	store *QueryStore
}

// NewQuizRepository constructs a QuizRepository.
func NewQuizRepository(store *QueryStore) *QuizRepository {
	return &QuizRepository{store: store}
}

// CourseQuizzes lists the quizzes a student can see across a course.
func (r *QuizRepository) CourseQuizzes(ctx context.Context, universityID int64, courseID string) ([]QuizRow, error) {
	rows, err := r.store.FetchAll(ctx, QueryCourseQuizzes, universityID, courseID)
	if err != nil {
		return nil, err
	}
	return decodeQuizzes(rows)
}

// SectionQuizzes lists the quizzes a student can see within one section.
func (r *QuizRepository) SectionQuizzes(ctx context.Context, universityID int64, sectionID, courseID, semester string) ([]QuizRow, error) {
	rows, err := r.store.FetchAll(ctx, QuerySectionQuizzes, universityID, sectionID, courseID, semester)
	if err != nil {
		return nil, err
	}
	return decodeQuizzes(rows)
}

func decodeQuizzes(rows []rowcodec.Row) ([]QuizRow, error) {
	result := make([]QuizRow, 0, len(rows))
	for _, row := range rows {
		rec, err := rowcodec.Decode(quizSchema, row)
		if err != nil {
			return nil, err
		}
		result = append(result, QuizRow{
			Quiz: models.Quiz{
				QuizID:        rec.Int("quiz_id"),
				SectionID:     rec.Str("section_id"),
				CourseID:      rec.Str("course_id"),
				Semester:      rec.Str("semester"),
				AssessmentID:  rec.Int("assessment_id"),
				GradingMethod: rec.Str("grading_method"),
				PassScore:     rec.Float("pass_score"),
				TimeLimits:    rec.Str("time_limits"),
				StartDate:     rec.TimeString("start_date"),
				EndDate:       rec.TimeString("end_date"),
				Content:       rec.Str("content"),
				Types:         rec.Str("types"),
				Weight:        rec.Float("weight"),
				CorrectAnswer: rec.Str("correct_answer"),
				Questions:     rec.Str("questions"),
				Responses:     rec.Str("responses"),
				Score:         rec.Float("score"),
				StatusDisplay: rec.Str("status_display"),
			},
			Completion: rec.Str("completion_status"),
		})
	}
	return result, nil
}
