package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/noah-isme/lms-go-api/internal/models"
	"github.com/noah-isme/lms-go-api/internal/repository"
	appErrors "github.com/noah-isme/lms-go-api/pkg/errors"
	"github.com/noah-isme/lms-go-api/pkg/rowcodec"
)

type assignmentReader interface {
	FindByID(ctx context.Context, id int64) (*models.AssignmentDetail, error)
	FindByAssessment(ctx context.Context, id int64, hints models.AssignmentHints) (*models.AssignmentDetail, error)
	SectionAssignments(ctx context.Context, universityID int64, sectionID, courseID, semester string) ([]repository.AssignmentRow, error)
}

// ResolvedBy tags which addressing scheme matched an assignment lookup.
type ResolvedBy string

const (
	ResolvedByPrimary   ResolvedBy = "assignment_id"
	ResolvedBySecondary ResolvedBy = "assessment_id"
)

// AssignmentService resolves assignments across their two addressing
// schemes and shapes the per-student section views.
type AssignmentService struct {
	assignments assignmentReader
	logger      *zap.Logger
}

// NewAssignmentService constructs an AssignmentService.
func NewAssignmentService(assignments assignmentReader, logger *zap.Logger) *AssignmentService {
	return &AssignmentService{assignments: assignments, logger: logger}
}

// Resolve looks an identifier up first as an assignment id, then as an
// assessment id scoped by the hints. The secondary lookup runs only after
// the primary one concludes with a real miss: a failed primary lookup is
// an error, never a fallthrough, so the two schemes cannot shadow each
// other on transient faults.
func (s *AssignmentService) Resolve(ctx context.Context, id int64, hints models.AssignmentHints) (*models.AssignmentDetail, ResolvedBy, error) {
	detail, err := s.assignments.FindByID(ctx, id)
	if err != nil {
		return nil, "", wrapReadError(err, "resolve assignment")
	}
	if detail != nil {
		return detail, ResolvedByPrimary, nil
	}

	detail, err = s.assignments.FindByAssessment(ctx, id, hints)
	if err != nil {
		return nil, "", wrapReadError(err, "resolve assignment by assessment")
	}
	if detail != nil {
		s.logger.Debug("assignment resolved via assessment id", zap.Int64("id", id))
		return detail, ResolvedBySecondary, nil
	}

	return nil, "", appErrors.Clone(appErrors.ErrNotFound, "Assignment not found")
}

// SectionAssignments lists one student's assignments in a section with the
// submission state derived for every row.
func (s *AssignmentService) SectionAssignments(ctx context.Context, universityID int64, sectionID, courseID, semester string) ([]models.SectionAssignment, error) {
	rows, err := s.assignments.SectionAssignments(ctx, universityID, sectionID, courseID, semester)
	if err != nil {
		return nil, wrapReadError(err, "list section assignments")
	}
	assignments := make([]models.SectionAssignment, 0, len(rows))
	for _, row := range rows {
		derived := DeriveAssignmentStatus(AssignmentStatusInput{
			Status:      row.Status,
			Display:     row.StatusDisplay,
			LateFlag:    row.LateFlag,
			SubmittedAt: row.SubmittedAt,
			Deadline:    row.DeadlineAt,
		})
		view := row.SectionAssignment
		view.Status = &derived.Status
		view.LateFlag = derived.Late
		view.StatusDisplay = &derived.Display
		assignments = append(assignments, view)
	}
	return assignments, nil
}

// wrapReadError classifies repository failures: structurally broken rows
// surface as MALFORMED_ROW, everything else as an internal error.
func wrapReadError(err error, msg string) error {
	var malformed *rowcodec.MalformedRowError
	if errors.As(err, &malformed) {
		return appErrors.Wrap(err, appErrors.ErrMalformedRow.Code, appErrors.ErrMalformedRow.Status, fmt.Sprintf("%s: %s", msg, malformed.Error()))
	}
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, msg)
}
