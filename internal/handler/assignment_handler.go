package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/lms-go-api/internal/dto"
	"github.com/noah-isme/lms-go-api/internal/models"
	"github.com/noah-isme/lms-go-api/internal/service"
	appErrors "github.com/noah-isme/lms-go-api/pkg/errors"
	"github.com/noah-isme/lms-go-api/pkg/response"
)

type assignmentService interface {
	Resolve(ctx context.Context, id int64, hints models.AssignmentHints) (*models.AssignmentDetail, service.ResolvedBy, error)
}

type submissionService interface {
	Submit(ctx context.Context, req service.SubmitRequest) (*dto.SubmitAssignmentResponse, error)
}

// AssignmentHandler exposes assignment lookup and submission endpoints.
type AssignmentHandler struct {
	assignments assignmentService
	submissions submissionService
}

// NewAssignmentHandler constructs an AssignmentHandler.
func NewAssignmentHandler(assignments assignmentService, submissions submissionService) *AssignmentHandler {
	return &AssignmentHandler{assignments: assignments, submissions: submissions}
}

// Get godoc
// @Summary Get assignment details by assignment or assessment id
// @Tags Assignments
// @Produce json
// @Param id path int true "Assignment or assessment id"
// @Param university_id query int false "Scope hint"
// @Param section_id query string false "Scope hint"
// @Param course_id query string false "Scope hint"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /assignments/{id} [get]
func (h *AssignmentHandler) Get(c *gin.Context) {
	id, err := pathInt64(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	hints := models.AssignmentHints{
		UniversityID: optionalInt64(c, "university_id"),
		SectionID:    optionalStr(c, "section_id"),
		CourseID:     optionalStr(c, "course_id"),
	}

	detail, resolvedBy, err := h.assignments.Resolve(c.Request.Context(), id, hints)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, detail, map[string]interface{}{"resolved_by": string(resolvedBy)})
}

// Submit godoc
// @Summary Submit an assignment
// @Tags Assignments
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Assignment or assessment id"
// @Param university_id formData int true "Student university id"
// @Param file formData file false "Submission file"
// @Param comments formData string false "Comments"
// @Success 201 {object} response.Envelope
// @Router /assignments/{id}/submit [post]
func (h *AssignmentHandler) Submit(c *gin.Context) {
	id, err := pathInt64(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	claims, ok := currentClaims(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	universityID := claims.UniversityID

	req := service.SubmitRequest{
		AssignmentID: id,
		UniversityID: universityID,
		Hints: models.AssignmentHints{
			UniversityID: &universityID,
		},
	}

	if comments := c.PostForm("comments"); comments != "" {
		req.Comments = &comments
	}

	if fileHeader, err := c.FormFile("file"); err == nil && fileHeader != nil {
		file, err := fileHeader.Open()
		if err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "unreadable submission file"))
			return
		}
		defer file.Close()
		req.File = file
		req.Filename = fileHeader.Filename
	}

	result, err := h.submissions.Submit(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}
