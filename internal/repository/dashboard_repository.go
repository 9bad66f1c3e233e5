package repository

import (
	"context"

	"github.com/noah-isme/lms-go-api/internal/dto"
	"github.com/noah-isme/lms-go-api/pkg/rowcodec"
)

var statisticsSchema = rowcodec.NewSchema(
	rowcodec.Count("total_courses"),
	rowcodec.Count("total_assignments"),
	rowcodec.Count("total_quizzes"),
	rowcodec.Count("completed_assignments"),
	rowcodec.Count("completed_quizzes"),
	rowcodec.Float("average_grade"),
	rowcodec.Count("total_study_hours"),
	rowcodec.Float("progress_percentage"),
	rowcodec.Count("leaderboard_rank"),
)

var upcomingTaskSchema = rowcodec.NewSchema(
	rowcodec.String("task_type"),
	rowcodec.Int("task_id"),
	rowcodec.String("task_title"),
	rowcodec.Time("deadline"),
	rowcodec.String("course_name"),
	rowcodec.String("course_id"),
	rowcodec.String("semester"),
	rowcodec.Bool("is_completed"),
	rowcodec.String("current_status"),
)

var leaderboardSchema = rowcodec.NewSchema(
	rowcodec.Count("rank"),
	rowcodec.String("first_name"),
	rowcodec.String("last_name"),
	rowcodec.Count("courses"),
	rowcodec.Count("hours"),
	rowcodec.Float("points"),
	rowcodec.String("trend"),
)

var activitySchema = rowcodec.NewSchema(
	rowcodec.String("month"),
	rowcodec.Count("study"),
	rowcodec.Count("exams"),
)

var gradeComponentSchema = rowcodec.NewSchema(
	rowcodec.String("course_name"),
	rowcodec.String("course_id"),
	rowcodec.String("semester"),
	rowcodec.Float("final_grade"),
	rowcodec.Float("midterm_grade"),
	rowcodec.Float("quiz_grade"),
	rowcodec.Float("assignment_grade"),
)

// DashboardRepository reads the pre-aggregated dashboard projections. All
// ordering (deadline, rank, month) is owned upstream and passed through.
type DashboardRepository struct {
	store *QueryStore
}

// NewDashboardRepository constructs a DashboardRepository.
func NewDashboardRepository(store *QueryStore) *DashboardRepository {
	return &DashboardRepository{store: store}
}

// Statistics returns the student's summary counters, or nil when the
// student has no aggregate row yet.
func (r *DashboardRepository) Statistics(ctx context.Context, universityID int64) (*dto.DashboardStatistics, error) {
	row, err := r.store.FetchOne(ctx, QueryDashboardStatistics, universityID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}
	rec, err := rowcodec.Decode(statisticsSchema, row)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardStatistics{
		TotalCourses:         rec.Count("total_courses"),
		TotalAssignments:     rec.Count("total_assignments"),
		TotalQuizzes:         rec.Count("total_quizzes"),
		CompletedAssignments: rec.Count("completed_assignments"),
		CompletedQuizzes:     rec.Count("completed_quizzes"),
		AverageGrade:         derefFloat(rec.Float("average_grade")),
		TotalStudyHours:      rec.Count("total_study_hours"),
		ProgressPercentage:   derefFloat(rec.Float("progress_percentage")),
		LeaderboardRank:      rec.Count("leaderboard_rank"),
	}, nil
}

// UpcomingTasks lists pending assignments and quizzes due within the
// given horizon, in upstream deadline order.
func (r *DashboardRepository) UpcomingTasks(ctx context.Context, universityID int64, daysAhead int) ([]dto.UpcomingTask, error) {
	rows, err := r.store.FetchAll(ctx, QueryUpcomingTasks, universityID, daysAhead)
	if err != nil {
		return nil, err
	}
	tasks := make([]dto.UpcomingTask, 0, len(rows))
	for _, row := range rows {
		rec, err := rowcodec.Decode(upcomingTaskSchema, row)
		if err != nil {
			return nil, err
		}
		completed := false
		if b := rec.Bool("is_completed"); b != nil {
			completed = *b
		}
		tasks = append(tasks, dto.UpcomingTask{
			TaskType:      rec.Str("task_type"),
			TaskID:        rec.Int("task_id"),
			TaskTitle:     rec.Str("task_title"),
			Deadline:      rec.TimeString("deadline"),
			CourseName:    rec.Str("course_name"),
			CourseID:      rec.Str("course_id"),
			Semester:      rec.Str("semester"),
			IsCompleted:   completed,
			CurrentStatus: rec.Str("current_status"),
		})
	}
	return tasks, nil
}

// Leaderboard returns the top n students in upstream rank order.
func (r *DashboardRepository) Leaderboard(ctx context.Context, topN int) ([]dto.LeaderboardEntry, error) {
	rows, err := r.store.FetchAll(ctx, QueryLeaderboard, topN)
	if err != nil {
		return nil, err
	}
	entries := make([]dto.LeaderboardEntry, 0, len(rows))
	for _, row := range rows {
		rec, err := rowcodec.Decode(leaderboardSchema, row)
		if err != nil {
			return nil, err
		}
		entries = append(entries, dto.LeaderboardEntry{
			Rank:      rec.Count("rank"),
			FirstName: rec.Str("first_name"),
			LastName:  rec.Str("last_name"),
			Courses:   rec.Count("courses"),
			Hours:     rec.Count("hours"),
			Points:    derefFloat(rec.Float("points")),
			Trend:     rec.Str("trend"),
		})
	}
	return entries, nil
}

// ActivityChart returns monthly study/exam activity, oldest first.
func (r *DashboardRepository) ActivityChart(ctx context.Context, universityID int64, monthsBack int) ([]dto.ActivityPoint, error) {
	rows, err := r.store.FetchAll(ctx, QueryActivityChart, universityID, monthsBack)
	if err != nil {
		return nil, err
	}
	points := make([]dto.ActivityPoint, 0, len(rows))
	for _, row := range rows {
		rec, err := rowcodec.Decode(activitySchema, row)
		if err != nil {
			return nil, err
		}
		points = append(points, dto.ActivityPoint{
			Month: rec.Str("month"),
			Study: rec.Count("study"),
			Exams: rec.Count("exams"),
		})
	}
	return points, nil
}

// GradeComponents returns per-course component grades for the chart.
// Missing components flatten to zero here; the grade views keep nulls.
func (r *DashboardRepository) GradeComponents(ctx context.Context, universityID int64) ([]dto.GradeComponent, error) {
	rows, err := r.store.FetchAll(ctx, QueryGradeComponents, universityID)
	if err != nil {
		return nil, err
	}
	components := make([]dto.GradeComponent, 0, len(rows))
	for _, row := range rows {
		rec, err := rowcodec.Decode(gradeComponentSchema, row)
		if err != nil {
			return nil, err
		}
		components = append(components, dto.GradeComponent{
			CourseName:      rec.Str("course_name"),
			CourseID:        rec.Str("course_id"),
			Semester:        rec.Str("semester"),
			FinalGrade:      derefFloat(rec.Float("final_grade")),
			MidtermGrade:    derefFloat(rec.Float("midterm_grade")),
			QuizGrade:       derefFloat(rec.Float("quiz_grade")),
			AssignmentGrade: derefFloat(rec.Float("assignment_grade")),
		})
	}
	return components, nil
}

func derefFloat(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
