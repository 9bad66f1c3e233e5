package repository

import (
	"context"
	"time"

	"github.com/noah-isme/lms-go-api/internal/models"
	"github.com/noah-isme/lms-go-api/pkg/rowcodec"
)

// assignmentSchema covers both assignment lookups; the two database
// functions return the same column order. The tail columns arrived in a
// later migration and older rows may omit them.
var assignmentSchema = rowcodec.NewSchema(
	rowcodec.Int("assignment_id"),
	rowcodec.String("course_id"),
	rowcodec.String("semester"),
	rowcodec.Int("max_score"),
	rowcodec.String("accepted_specification"),
	rowcodec.Time("submission_deadline"),
	rowcodec.String("instructions"),
	rowcodec.String("task_url").Opt(),
	rowcodec.String("course_name").Opt(),
	rowcodec.Count("student_count").Opt(),
)

// sectionAssignmentSchema is the per-student section listing: assignment
// definition joined left with the student's submission record.
var sectionAssignmentSchema = rowcodec.NewSchema(
	rowcodec.Int("assignment_id"),
	rowcodec.String("course_id"),
	rowcodec.String("semester"),
	rowcodec.String("instructions"),
	rowcodec.String("accepted_specification"),
	rowcodec.Time("submission_deadline"),
	rowcodec.String("task_url").Opt(),
	rowcodec.Int("max_score").Opt(),
	rowcodec.Int("assessment_id").Opt(),
	rowcodec.Float("score").Opt(),
	rowcodec.String("status").Opt(),
	rowcodec.Time("submit_date").Opt(),
	rowcodec.Bool("late_flag").Opt(),
	rowcodec.String("attached_files").Opt(),
	rowcodec.String("comments").Opt(),
	rowcodec.String("status_display").Opt(),
)

// AssignmentRow carries a section assignment plus the decoded timestamps
// the status deriver needs. The wire model keeps only string forms.
type AssignmentRow struct {
	models.SectionAssignment
	DeadlineAt  *time.Time
	SubmittedAt *time.Time
}

// AssignmentRepository reads assignment records through the query store.
type AssignmentRepository struct {
	store *QueryStore
}

// NewAssignmentRepository constructs an AssignmentRepository.
func NewAssignmentRepository(store *QueryStore) *AssignmentRepository {
	return &AssignmentRepository{store: store}
}

// FindByID looks an assignment up by its primary identifier. A nil result
// with nil error is a conclusive miss.
func (r *AssignmentRepository) FindByID(ctx context.Context, id int64) (*models.AssignmentDetail, error) {
	row, err := r.store.FetchOne(ctx, QueryAssignmentByID, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}
	return decodeAssignment(row)
}

// FindByAssessment looks an assignment up by assessment identifier, scoped
// by whatever hints the caller has. Nil hints pass through as NULL so the
// database treats them as wildcards.
func (r *AssignmentRepository) FindByAssessment(ctx context.Context, id int64, hints models.AssignmentHints) (*models.AssignmentDetail, error) {
	row, err := r.store.FetchOne(ctx, QueryAssignmentByAssessment, id, hints.UniversityID, hints.SectionID, hints.CourseID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}
	return decodeAssignment(row)
}

// SectionAssignments lists the assignments of one section for one student,
// preserving database order.
func (r *AssignmentRepository) SectionAssignments(ctx context.Context, universityID int64, sectionID, courseID, semester string) ([]AssignmentRow, error) {
	rows, err := r.store.FetchAll(ctx, QuerySectionAssignments, universityID, sectionID, courseID, semester)
	if err != nil {
		return nil, err
	}
	result := make([]AssignmentRow, 0, len(rows))
	for _, row := range rows {
		rec, err := rowcodec.Decode(sectionAssignmentSchema, row)
		if err != nil {
			return nil, err
		}
		result = append(result, AssignmentRow{
			SectionAssignment: models.SectionAssignment{
				AssignmentID:          rec.Int("assignment_id"),
				CourseID:              rec.Str("course_id"),
				Semester:              rec.Str("semester"),
				Instructions:          rec.Str("instructions"),
				AcceptedSpecification: rec.Str("accepted_specification"),
				SubmissionDeadline:    rec.TimeString("submission_deadline"),
				TaskURL:               rec.Str("task_url"),
				MaxScore:              rec.Int("max_score"),
				AssessmentID:          rec.Int("assessment_id"),
				Score:                 rec.Float("score"),
				Status:                rec.Str("status"),
				SubmitDate:            rec.TimeString("submit_date"),
				LateFlag:              rec.Bool("late_flag"),
				AttachedFiles:         rec.Str("attached_files"),
				Comments:              rec.Str("comments"),
				StatusDisplay:         rec.Str("status_display"),
			},
			DeadlineAt:  rec.Time("submission_deadline"),
			SubmittedAt: rec.Time("submit_date"),
		})
	}
	return result, nil
}

func decodeAssignment(row rowcodec.Row) (*models.AssignmentDetail, error) {
	rec, err := rowcodec.Decode(assignmentSchema, row)
	if err != nil {
		return nil, err
	}
	return &models.AssignmentDetail{
		AssignmentID:          rec.Int("assignment_id"),
		CourseID:              rec.Str("course_id"),
		Semester:              rec.Str("semester"),
		MaxScore:              rec.Int("max_score"),
		AcceptedSpecification: rec.Str("accepted_specification"),
		SubmissionDeadline:    rec.TimeString("submission_deadline"),
		Instructions:          rec.Str("instructions"),
		TaskURL:               rec.Str("task_url"),
		CourseName:            rec.Str("course_name"),
		StudentCount:          rec.Count("student_count"),
	}, nil
}
