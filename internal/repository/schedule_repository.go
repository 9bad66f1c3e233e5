package repository

import (
	"context"

	"github.com/noah-isme/lms-go-api/internal/models"
	"github.com/noah-isme/lms-go-api/pkg/rowcodec"
)

var scheduleSchema = rowcodec.NewSchema(
	rowcodec.String("section_id"),
	rowcodec.String("course_name"),
	rowcodec.String("course_id"),
	rowcodec.String("semester"),
)

// ScheduleRepository derives a student's schedule from enrollment rows.
type ScheduleRepository struct {
	store *QueryStore
}

// NewScheduleRepository constructs a ScheduleRepository.
func NewScheduleRepository(store *QueryStore) *ScheduleRepository {
	return &ScheduleRepository{store: store}
}

// ForUser lists the distinct sections a student is assessed in.
func (r *ScheduleRepository) ForUser(ctx context.Context, universityID int64) ([]models.ScheduleItem, error) {
	rows, err := r.store.FetchAll(ctx, QueryUserSchedule, universityID)
	if err != nil {
		return nil, err
	}
	items := make([]models.ScheduleItem, 0, len(rows))
	for _, row := range rows {
		rec, err := rowcodec.Decode(scheduleSchema, row)
		if err != nil {
			return nil, err
		}
		items = append(items, models.ScheduleItem{
			SectionID:  derefString(rec.Str("section_id")),
			CourseName: derefString(rec.Str("course_name")),
			CourseID:   derefString(rec.Str("course_id")),
			Semester:   derefString(rec.Str("semester")),
		})
	}
	return items, nil
}
