package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/lms-go-api/internal/models"
	"github.com/noah-isme/lms-go-api/pkg/response"
)

type scheduleService interface {
	ForUser(ctx context.Context, universityID int64) ([]models.ScheduleItem, error)
}

// ScheduleHandler exposes the enrollment-derived schedule view.
type ScheduleHandler struct {
	schedules scheduleService
}

// NewScheduleHandler constructs a ScheduleHandler.
func NewScheduleHandler(schedules scheduleService) *ScheduleHandler {
	return &ScheduleHandler{schedules: schedules}
}

// UserSchedule godoc
// @Summary Schedule for a student
// @Tags Schedule
// @Produce json
// @Param user_id path int true "University id"
// @Success 200 {object} response.Envelope
// @Router /schedule/user/{user_id} [get]
func (h *ScheduleHandler) UserSchedule(c *gin.Context) {
	universityID, err := pathInt64(c, "user_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	items, err := h.schedules.ForUser(c.Request.Context(), universityID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}
