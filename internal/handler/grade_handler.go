package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/lms-go-api/internal/models"
	"github.com/noah-isme/lms-go-api/pkg/response"
)

type gradeService interface {
	UserGrades(ctx context.Context, universityID int64) ([]models.UserGrade, error)
}

// GradeHandler exposes the cross-section grade view.
type GradeHandler struct {
	grades gradeService
}

// NewGradeHandler constructs a GradeHandler.
func NewGradeHandler(grades gradeService) *GradeHandler {
	return &GradeHandler{grades: grades}
}

// UserGrades godoc
// @Summary All grades for a student across sections
// @Tags Grades
// @Produce json
// @Param user_id path int true "University id"
// @Success 200 {object} response.Envelope
// @Router /grades/user/{user_id} [get]
func (h *GradeHandler) UserGrades(c *gin.Context) {
	universityID, err := pathInt64(c, "user_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	grades, err := h.grades.UserGrades(c.Request.Context(), universityID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, grades)
}
