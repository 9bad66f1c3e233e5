package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/lms-go-api/internal/models"
)

type scheduleReader interface {
	ForUser(ctx context.Context, universityID int64) ([]models.ScheduleItem, error)
}

// ScheduleService serves the enrollment-derived schedule view.
type ScheduleService struct {
	schedules scheduleReader
	logger    *zap.Logger
}

// NewScheduleService constructs a ScheduleService.
func NewScheduleService(schedules scheduleReader, logger *zap.Logger) *ScheduleService {
	return &ScheduleService{schedules: schedules, logger: logger}
}

// ForUser lists the distinct sections a student is assessed in.
func (s *ScheduleService) ForUser(ctx context.Context, universityID int64) ([]models.ScheduleItem, error) {
	items, err := s.schedules.ForUser(ctx, universityID)
	if err != nil {
		return nil, wrapReadError(err, "get user schedule")
	}
	return items, nil
}
