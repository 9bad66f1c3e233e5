package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/lms-go-api/internal/models"
	"github.com/noah-isme/lms-go-api/internal/repository"
	appErrors "github.com/noah-isme/lms-go-api/pkg/errors"
	"github.com/noah-isme/lms-go-api/pkg/rowcodec"
)

type stubAssignmentReader struct {
	byID            *models.AssignmentDetail
	byIDErr         error
	byAssessment    *models.AssignmentDetail
	byAssessmentErr error

	byAssessmentCalled bool
	seenHints          models.AssignmentHints
	rows               []repository.AssignmentRow
}

func (s *stubAssignmentReader) FindByID(ctx context.Context, id int64) (*models.AssignmentDetail, error) {
	return s.byID, s.byIDErr
}

func (s *stubAssignmentReader) FindByAssessment(ctx context.Context, id int64, hints models.AssignmentHints) (*models.AssignmentDetail, error) {
	s.byAssessmentCalled = true
	s.seenHints = hints
	return s.byAssessment, s.byAssessmentErr
}

func (s *stubAssignmentReader) SectionAssignments(ctx context.Context, universityID int64, sectionID, courseID, semester string) ([]repository.AssignmentRow, error) {
	return s.rows, nil
}

func intPtr(i int64) *int64 { return &i }

func TestResolvePrimaryWinsWithoutSecondaryLookup(t *testing.T) {
	reader := &stubAssignmentReader{
		byID: &models.AssignmentDetail{AssignmentID: intPtr(10)},
		// a matching assessment also exists; it must never be consulted
		byAssessment: &models.AssignmentDetail{AssignmentID: intPtr(99)},
	}
	svc := NewAssignmentService(reader, zap.NewNop())

	detail, by, err := svc.Resolve(context.Background(), 10, models.AssignmentHints{})
	require.NoError(t, err)
	assert.Equal(t, int64(10), *detail.AssignmentID)
	assert.Equal(t, ResolvedByPrimary, by)
	assert.False(t, reader.byAssessmentCalled)
}

func TestResolveFallsThroughOnConclusiveMiss(t *testing.T) {
	hints := models.AssignmentHints{UniversityID: intPtr(1), CourseID: strPtr("CS101")}
	reader := &stubAssignmentReader{
		byAssessment: &models.AssignmentDetail{AssignmentID: intPtr(77)},
	}
	svc := NewAssignmentService(reader, zap.NewNop())

	detail, by, err := svc.Resolve(context.Background(), 77, hints)
	require.NoError(t, err)
	assert.Equal(t, int64(77), *detail.AssignmentID)
	assert.Equal(t, ResolvedBySecondary, by)
	assert.Equal(t, hints, reader.seenHints)
}

// A failed primary lookup is an error, never a silent fallthrough into
// the assessment scheme.
func TestResolvePrimaryErrorDoesNotFallThrough(t *testing.T) {
	reader := &stubAssignmentReader{
		byIDErr:      errors.New("connection reset"),
		byAssessment: &models.AssignmentDetail{AssignmentID: intPtr(5)},
	}
	svc := NewAssignmentService(reader, zap.NewNop())

	_, _, err := svc.Resolve(context.Background(), 5, models.AssignmentHints{})
	require.Error(t, err)
	assert.False(t, reader.byAssessmentCalled)
}

func TestResolveNotFoundAfterBothSchemes(t *testing.T) {
	reader := &stubAssignmentReader{}
	svc := NewAssignmentService(reader, zap.NewNop())

	_, _, err := svc.Resolve(context.Background(), 404, models.AssignmentHints{})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
	assert.True(t, reader.byAssessmentCalled)
}

func TestResolveMalformedRowSurfacesAsMalformed(t *testing.T) {
	reader := &stubAssignmentReader{
		byIDErr: &rowcodec.MalformedRowError{Field: "semester", Have: 2, Want: 7},
	}
	svc := NewAssignmentService(reader, zap.NewNop())

	_, _, err := svc.Resolve(context.Background(), 3, models.AssignmentHints{})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrMalformedRow.Code, appErr.Code)
	assert.False(t, reader.byAssessmentCalled)
}
