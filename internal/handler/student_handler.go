package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/lms-go-api/internal/dto"
	"github.com/noah-isme/lms-go-api/internal/middleware"
	"github.com/noah-isme/lms-go-api/internal/models"
	"github.com/noah-isme/lms-go-api/pkg/response"
)

type studentCourseService interface {
	Courses(ctx context.Context, universityID int64) ([]models.Course, error)
	CoursesWithSections(ctx context.Context, universityID int64) ([]models.CourseWithSections, error)
	CourseDetail(ctx context.Context, universityID int64, courseID string) (*models.CourseDetail, error)
	SectionDetail(ctx context.Context, universityID int64, sectionID, courseID string) (*models.SectionDetail, error)
	CourseSections(ctx context.Context, universityID int64, courseID string) ([]models.Section, error)
	CourseClassmates(ctx context.Context, courseID string) ([]models.ClassmateStudent, error)
	SectionClassmates(ctx context.Context, sectionID, courseID, semester string) ([]models.ClassmateStudent, error)
	EnrolledByCourse(ctx context.Context, courseID string) ([]models.EnrolledStudent, error)
	CourseQuizzes(ctx context.Context, universityID int64, courseID string) ([]models.Quiz, error)
	SectionQuizzes(ctx context.Context, universityID int64, sectionID, courseID, semester string) ([]models.Quiz, error)
}

type dashboardPanelService interface {
	Statistics(ctx context.Context, universityID int64) (*dto.DashboardStatistics, bool, error)
	UpcomingTasks(ctx context.Context, universityID int64, daysAhead int) ([]dto.UpcomingTask, bool, error)
	Leaderboard(ctx context.Context, topN int) ([]dto.LeaderboardEntry, bool, error)
	ActivityChart(ctx context.Context, universityID int64, monthsBack int) ([]dto.ActivityPoint, bool, error)
	GradeComponents(ctx context.Context, universityID int64) ([]dto.GradeComponent, bool, error)
}

type scopedGradeService interface {
	CourseGrades(ctx context.Context, universityID int64, courseID string) ([]models.SectionGrade, error)
	SectionGrades(ctx context.Context, universityID int64, sectionID, courseID, semester string) (models.SectionGrade, error)
}

type sectionAssignmentService interface {
	SectionAssignments(ctx context.Context, universityID int64, sectionID, courseID, semester string) ([]models.SectionAssignment, error)
}

// StudentHandler exposes the student area: dashboard panels plus the
// enrollment-scoped course and section views.
type StudentHandler struct {
	students    studentCourseService
	dashboards  dashboardPanelService
	grades      scopedGradeService
	assignments sectionAssignmentService
}

// NewStudentHandler constructs a StudentHandler.
func NewStudentHandler(students studentCourseService, dashboards dashboardPanelService, grades scopedGradeService, assignments sectionAssignmentService) *StudentHandler {
	return &StudentHandler{
		students:    students,
		dashboards:  dashboards,
		grades:      grades,
		assignments: assignments,
	}
}

// DashboardStatistics godoc
// @Summary Dashboard summary counters
// @Tags Dashboard
// @Produce json
// @Param university_id query int true "University id"
// @Success 200 {object} response.Envelope
// @Router /students/dashboard/statistics [get]
func (h *StudentHandler) DashboardStatistics(c *gin.Context) {
	universityID, err := requireUniversityID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	stats, cacheHit, err := h.dashboards.Statistics(c.Request.Context(), universityID)
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, cacheHit)
	response.JSON(c, http.StatusOK, stats, middleware.ExtractMeta(c))
}

// UpcomingTasks godoc
// @Summary Pending tasks inside the deadline horizon
// @Tags Dashboard
// @Produce json
// @Param university_id query int true "University id"
// @Param days_ahead query int false "Deadline horizon in days"
// @Success 200 {object} response.Envelope
// @Router /students/dashboard/upcoming-tasks [get]
func (h *StudentHandler) UpcomingTasks(c *gin.Context) {
	universityID, err := requireUniversityID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	daysAhead := queryIntDefault(c, "days_ahead", 0)
	tasks, cacheHit, err := h.dashboards.UpcomingTasks(c.Request.Context(), universityID, daysAhead)
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, cacheHit)
	response.JSON(c, http.StatusOK, tasks, middleware.ExtractMeta(c))
}

// Leaderboard godoc
// @Summary Top students by points
// @Tags Dashboard
// @Produce json
// @Param top_n query int false "Number of entries"
// @Success 200 {object} response.Envelope
// @Router /students/dashboard/leaderboard [get]
func (h *StudentHandler) Leaderboard(c *gin.Context) {
	topN := queryIntDefault(c, "top_n", 0)
	entries, cacheHit, err := h.dashboards.Leaderboard(c.Request.Context(), topN)
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, cacheHit)
	response.JSON(c, http.StatusOK, entries, middleware.ExtractMeta(c))
}

// ActivityChart godoc
// @Summary Monthly study and exam activity
// @Tags Dashboard
// @Produce json
// @Param university_id query int true "University id"
// @Param months_back query int false "Number of months"
// @Success 200 {object} response.Envelope
// @Router /students/dashboard/activity-chart [get]
func (h *StudentHandler) ActivityChart(c *gin.Context) {
	universityID, err := requireUniversityID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	monthsBack := queryIntDefault(c, "months_back", 0)
	points, cacheHit, err := h.dashboards.ActivityChart(c.Request.Context(), universityID, monthsBack)
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, cacheHit)
	response.JSON(c, http.StatusOK, points, middleware.ExtractMeta(c))
}

// GradeComponents godoc
// @Summary Per-course component grades for the dashboard chart
// @Tags Dashboard
// @Produce json
// @Param university_id query int true "University id"
// @Success 200 {object} response.Envelope
// @Router /students/dashboard/grade-components [get]
func (h *StudentHandler) GradeComponents(c *gin.Context) {
	universityID, err := requireUniversityID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	components, cacheHit, err := h.dashboards.GradeComponents(c.Request.Context(), universityID)
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, cacheHit)
	response.JSON(c, http.StatusOK, components, middleware.ExtractMeta(c))
}

// Courses godoc
// @Summary Courses a student is enrolled in
// @Tags Students
// @Produce json
// @Param university_id query int true "University id"
// @Success 200 {object} response.Envelope
// @Router /students/courses [get]
func (h *StudentHandler) Courses(c *gin.Context) {
	universityID, err := requireUniversityID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	courses, err := h.students.Courses(c.Request.Context(), universityID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, courses)
}

// CoursesWithSections godoc
// @Summary Enrollment grouped as courses over sections
// @Tags Students
// @Produce json
// @Param university_id query int true "University id"
// @Success 200 {object} response.Envelope
// @Router /students/courses/with-sections [get]
func (h *StudentHandler) CoursesWithSections(c *gin.Context) {
	universityID, err := requireUniversityID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	courses, err := h.students.CoursesWithSections(c.Request.Context(), universityID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, courses)
}

// CourseDetail godoc
// @Summary Course header for an enrolled student
// @Tags Students
// @Produce json
// @Param course_id path string true "Course id"
// @Param university_id query int true "University id"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /students/course/{course_id}/detail [get]
func (h *StudentHandler) CourseDetail(c *gin.Context) {
	universityID, err := requireUniversityID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	detail, err := h.students.CourseDetail(c.Request.Context(), universityID, c.Param("course_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, detail)
}

// CourseSections godoc
// @Summary Sections of a course the student is enrolled in
// @Tags Students
// @Produce json
// @Param course_id path string true "Course id"
// @Param university_id query int true "University id"
// @Success 200 {object} response.Envelope
// @Router /students/course/{course_id}/sections [get]
func (h *StudentHandler) CourseSections(c *gin.Context) {
	universityID, err := requireUniversityID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	sections, err := h.students.CourseSections(c.Request.Context(), universityID, c.Param("course_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, sections)
}

// CourseQuizzes godoc
// @Summary Student quizzes across a course
// @Tags Students
// @Produce json
// @Param course_id path string true "Course id"
// @Param university_id query int true "University id"
// @Success 200 {object} response.Envelope
// @Router /students/course/{course_id}/quizzes [get]
func (h *StudentHandler) CourseQuizzes(c *gin.Context) {
	universityID, err := requireUniversityID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	quizzes, err := h.students.CourseQuizzes(c.Request.Context(), universityID, c.Param("course_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, quizzes)
}

// CourseGrades godoc
// @Summary Student grade rows within one course
// @Tags Students
// @Produce json
// @Param course_id path string true "Course id"
// @Param university_id query int true "University id"
// @Success 200 {object} response.Envelope
// @Router /students/course/{course_id}/grades [get]
func (h *StudentHandler) CourseGrades(c *gin.Context) {
	universityID, err := requireUniversityID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	grades, err := h.grades.CourseGrades(c.Request.Context(), universityID, c.Param("course_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, grades)
}

// CourseClassmates godoc
// @Summary Reduced roster of a course
// @Tags Students
// @Produce json
// @Param course_id path string true "Course id"
// @Success 200 {object} response.Envelope
// @Router /students/course/{course_id}/students [get]
func (h *StudentHandler) CourseClassmates(c *gin.Context) {
	students, err := h.students.CourseClassmates(c.Request.Context(), c.Param("course_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, students)
}

// EnrolledByCourse godoc
// @Summary Course roster joined with student academics
// @Tags Students
// @Produce json
// @Param course_id path string true "Course id"
// @Success 200 {object} response.Envelope
// @Router /students/course/{course_id} [get]
func (h *StudentHandler) EnrolledByCourse(c *gin.Context) {
	students, err := h.students.EnrolledByCourse(c.Request.Context(), c.Param("course_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, students)
}

// SectionDetail godoc
// @Summary Joined section and course header
// @Tags Students
// @Produce json
// @Param section_id path string true "Section id"
// @Param course_id path string true "Course id"
// @Param university_id query int true "University id"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /students/section/{section_id}/{course_id}/detail [get]
func (h *StudentHandler) SectionDetail(c *gin.Context) {
	universityID, err := requireUniversityID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	detail, err := h.students.SectionDetail(c.Request.Context(), universityID, c.Param("section_id"), c.Param("course_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, detail)
}

// SectionQuizzes godoc
// @Summary Student quizzes within one section
// @Tags Students
// @Produce json
// @Param section_id path string true "Section id"
// @Param course_id path string true "Course id"
// @Param semester path string true "Semester"
// @Param university_id query int true "University id"
// @Success 200 {object} response.Envelope
// @Router /students/section/{section_id}/{course_id}/{semester}/quizzes [get]
func (h *StudentHandler) SectionQuizzes(c *gin.Context) {
	universityID, err := requireUniversityID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	quizzes, err := h.students.SectionQuizzes(c.Request.Context(), universityID, c.Param("section_id"), c.Param("course_id"), c.Param("semester"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, quizzes)
}

// SectionAssignments godoc
// @Summary Student assignments within one section
// @Tags Students
// @Produce json
// @Param section_id path string true "Section id"
// @Param course_id path string true "Course id"
// @Param semester path string true "Semester"
// @Param university_id query int true "University id"
// @Success 200 {object} response.Envelope
// @Router /students/section/{section_id}/{course_id}/{semester}/assignments [get]
func (h *StudentHandler) SectionAssignments(c *gin.Context) {
	universityID, err := requireUniversityID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	assignments, err := h.assignments.SectionAssignments(c.Request.Context(), universityID, c.Param("section_id"), c.Param("course_id"), c.Param("semester"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, assignments)
}

// SectionGrades godoc
// @Summary Student grade row for one section
// @Tags Students
// @Produce json
// @Param section_id path string true "Section id"
// @Param course_id path string true "Course id"
// @Param semester path string true "Semester"
// @Param university_id query int true "University id"
// @Success 200 {object} response.Envelope
// @Router /students/section/{section_id}/{course_id}/{semester}/grades [get]
func (h *StudentHandler) SectionGrades(c *gin.Context) {
	universityID, err := requireUniversityID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	grade, err := h.grades.SectionGrades(c.Request.Context(), universityID, c.Param("section_id"), c.Param("course_id"), c.Param("semester"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, grade)
}

// SectionClassmates godoc
// @Summary Reduced roster of a section
// @Tags Students
// @Produce json
// @Param section_id path string true "Section id"
// @Param course_id path string true "Course id"
// @Param semester path string true "Semester"
// @Success 200 {object} response.Envelope
// @Router /students/section/{section_id}/{course_id}/{semester}/students [get]
func (h *StudentHandler) SectionClassmates(c *gin.Context) {
	students, err := h.students.SectionClassmates(c.Request.Context(), c.Param("section_id"), c.Param("course_id"), c.Param("semester"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, students)
}
