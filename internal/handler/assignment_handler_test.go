package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/lms-go-api/internal/models"
	"github.com/noah-isme/lms-go-api/internal/service"
)

type fakeAssignmentSrv struct {
	detail     *models.AssignmentDetail
	resolvedBy service.ResolvedBy
	err        error
	lastID     int64
	lastHints  models.AssignmentHints
}

func (f *fakeAssignmentSrv) Resolve(_ context.Context, id int64, hints models.AssignmentHints) (*models.AssignmentDetail, service.ResolvedBy, error) {
	f.lastID = id
	f.lastHints = hints
	return f.detail, f.resolvedBy, f.err
}

func TestAssignmentHandlerGetInvalidID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewAssignmentHandler(&fakeAssignmentSrv{}, nil)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/assignments/abc", nil)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	handler.Get(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAssignmentHandlerGetForwardsHints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	assignmentID := int64(9)
	service := &fakeAssignmentSrv{
		detail:     &models.AssignmentDetail{AssignmentID: &assignmentID},
		resolvedBy: "assessment_id",
	}
	handler := NewAssignmentHandler(service, nil)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/assignments/9?university_id=3&section_id=S1&course_id=CS101", nil)
	c.Params = gin.Params{{Key: "id", Value: "9"}}

	handler.Get(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(9), service.lastID)
	if assert.NotNil(t, service.lastHints.UniversityID) {
		assert.Equal(t, int64(3), *service.lastHints.UniversityID)
	}
	if assert.NotNil(t, service.lastHints.SectionID) {
		assert.Equal(t, "S1", *service.lastHints.SectionID)
	}

	var envelope responseEnvelope
	_ = json.Unmarshal(rec.Body.Bytes(), &envelope)
	assert.Equal(t, "assessment_id", envelope.Meta["resolved_by"])
}
