package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/lms-go-api/internal/dto"
	"github.com/noah-isme/lms-go-api/internal/models"
	appErrors "github.com/noah-isme/lms-go-api/pkg/errors"
	"github.com/noah-isme/lms-go-api/pkg/rowcodec"
)

type submissionWriter interface {
	Record(ctx context.Context, assignmentID, universityID int64, fileURL, comments *string) error
}

type assignmentResolver interface {
	Resolve(ctx context.Context, id int64, hints models.AssignmentHints) (*models.AssignmentDetail, ResolvedBy, error)
}

type blobStorage interface {
	SaveStream(filename string, r io.Reader) (string, error)
}

// SubmissionService stores submission files and records the submission
// against the resolved assignment.
type SubmissionService struct {
	submissions submissionWriter
	assignments assignmentResolver
	storage     blobStorage
	logger      *zap.Logger
	now         func() time.Time
}

// NewSubmissionService constructs a SubmissionService.
func NewSubmissionService(submissions submissionWriter, assignments assignmentResolver, storage blobStorage, logger *zap.Logger) *SubmissionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SubmissionService{
		submissions: submissions,
		assignments: assignments,
		storage:     storage,
		logger:      logger,
		now:         time.Now,
	}
}

// SubmitRequest carries one assignment submission.
type SubmitRequest struct {
	AssignmentID int64
	UniversityID int64
	Filename     string
	File         io.Reader
	Comments     *string
	Hints        models.AssignmentHints
}

// Submit resolves the assignment, stores the uploaded file if one was
// provided and records the submission. The stored file URL is opaque to
// the grading views.
func (s *SubmissionService) Submit(ctx context.Context, req SubmitRequest) (*dto.SubmitAssignmentResponse, error) {
	detail, _, err := s.assignments.Resolve(ctx, req.AssignmentID, req.Hints)
	if err != nil {
		return nil, err
	}

	var fileURL *string
	if req.File != nil {
		name := fmt.Sprintf("%d_%d_%s%s", req.AssignmentID, req.UniversityID, uuid.NewString(), filepath.Ext(req.Filename))
		relPath, err := s.storage.SaveStream(name, req.File)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store submission file")
		}
		fileURL = &relPath
	}

	assignmentID := req.AssignmentID
	if detail.AssignmentID != nil {
		assignmentID = *detail.AssignmentID
	}

	if err := s.submissions.Record(ctx, assignmentID, req.UniversityID, fileURL, req.Comments); err != nil {
		return nil, wrapReadError(err, "record submission")
	}

	return &dto.SubmitAssignmentResponse{
		AssignmentID: assignmentID,
		UniversityID: req.UniversityID,
		Status:       StatusSubmitted,
		SubmitDate:   s.now().UTC().Format(rowcodec.TimeLayout),
		AttachedFile: fileURL,
		Comments:     req.Comments,
	}, nil
}
