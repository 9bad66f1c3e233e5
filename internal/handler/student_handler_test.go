package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/lms-go-api/internal/dto"
	"github.com/noah-isme/lms-go-api/internal/models"
)

type fakeDashboardSrv struct {
	stats    *dto.DashboardStatistics
	statsHit bool
	statsErr error
	tasks    []dto.UpcomingTask
	lastTask struct {
		universityID int64
		daysAhead    int
	}
}

func (f *fakeDashboardSrv) Statistics(context.Context, int64) (*dto.DashboardStatistics, bool, error) {
	return f.stats, f.statsHit, f.statsErr
}

func (f *fakeDashboardSrv) UpcomingTasks(_ context.Context, universityID int64, daysAhead int) ([]dto.UpcomingTask, bool, error) {
	f.lastTask.universityID = universityID
	f.lastTask.daysAhead = daysAhead
	return f.tasks, false, nil
}

func (f *fakeDashboardSrv) Leaderboard(context.Context, int) ([]dto.LeaderboardEntry, bool, error) {
	return nil, false, nil
}

func (f *fakeDashboardSrv) ActivityChart(context.Context, int64, int) ([]dto.ActivityPoint, bool, error) {
	return nil, false, nil
}

func (f *fakeDashboardSrv) GradeComponents(context.Context, int64) ([]dto.GradeComponent, bool, error) {
	return nil, false, nil
}

type fakeScopedGradeSrv struct {
	sectionGrade models.SectionGrade
	lastSection  struct {
		universityID                  int64
		sectionID, courseID, semester string
	}
}

func (f *fakeScopedGradeSrv) CourseGrades(context.Context, int64, string) ([]models.SectionGrade, error) {
	return nil, nil
}

func (f *fakeScopedGradeSrv) SectionGrades(_ context.Context, universityID int64, sectionID, courseID, semester string) (models.SectionGrade, error) {
	f.lastSection.universityID = universityID
	f.lastSection.sectionID = sectionID
	f.lastSection.courseID = courseID
	f.lastSection.semester = semester
	return f.sectionGrade, nil
}

func TestStudentHandlerStatisticsRequiresUniversityID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewStudentHandler(nil, &fakeDashboardSrv{}, nil, nil)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/students/dashboard/statistics", nil)

	handler.DashboardStatistics(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var envelope responseEnvelope
	_ = json.Unmarshal(rec.Body.Bytes(), &envelope)
	assert.Equal(t, "MISSING_PARAMETER", envelope.Error["code"])
}

func TestStudentHandlerStatisticsCacheHitMeta(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewStudentHandler(nil, &fakeDashboardSrv{
		stats:    &dto.DashboardStatistics{TotalCourses: 4},
		statsHit: true,
	}, nil, nil)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/students/dashboard/statistics?university_id=1", nil)

	handler.DashboardStatistics(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	var envelope responseEnvelope
	_ = json.Unmarshal(rec.Body.Bytes(), &envelope)
	assert.Equal(t, true, envelope.Meta["cache_hit"])
	assert.Equal(t, float64(4), envelope.Data["total_courses"])
}

func TestStudentHandlerUpcomingTasksPassesHorizon(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := &fakeDashboardSrv{}
	handler := NewStudentHandler(nil, service, nil, nil)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/students/dashboard/upcoming-tasks?university_id=7&days_ahead=14", nil)

	handler.UpcomingTasks(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), service.lastTask.universityID)
	assert.Equal(t, 14, service.lastTask.daysAhead)
}

func TestStudentHandlerSectionGradesNullComponents(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sectionID := "S1"
	courseID := "CS101"
	semester := "Fall23"
	service := &fakeScopedGradeSrv{
		sectionGrade: models.SectionGrade{
			SectionID: &sectionID,
			CourseID:  &courseID,
			Semester:  &semester,
		},
	}
	handler := NewStudentHandler(nil, nil, service, nil)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/students/section/S1/CS101/Fall23/grades?university_id=42", nil)
	c.Params = gin.Params{
		{Key: "section_id", Value: sectionID},
		{Key: "course_id", Value: courseID},
		{Key: "semester", Value: semester},
	}

	handler.SectionGrades(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), service.lastSection.universityID)
	assert.Equal(t, sectionID, service.lastSection.sectionID)

	var envelope responseEnvelope
	_ = json.Unmarshal(rec.Body.Bytes(), &envelope)
	assert.Equal(t, courseID, envelope.Data["Course_ID"])
	assert.Nil(t, envelope.Data["Quiz_Grade"])
	assert.Nil(t, envelope.Data["Final_Grade"])
}

type responseEnvelope struct {
	Data  map[string]interface{} `json:"data"`
	Error map[string]interface{} `json:"error"`
	Meta  map[string]interface{} `json:"meta"`
}
