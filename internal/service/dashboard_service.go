package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/lms-go-api/internal/dto"
)

type dashboardReader interface {
	Statistics(ctx context.Context, universityID int64) (*dto.DashboardStatistics, error)
	UpcomingTasks(ctx context.Context, universityID int64, daysAhead int) ([]dto.UpcomingTask, error)
	Leaderboard(ctx context.Context, topN int) ([]dto.LeaderboardEntry, error)
	ActivityChart(ctx context.Context, universityID int64, monthsBack int) ([]dto.ActivityPoint, error)
	GradeComponents(ctx context.Context, universityID int64) ([]dto.GradeComponent, error)
}

// DashboardServiceConfig tunes dashboard behaviour.
type DashboardServiceConfig struct {
	CacheTTL          time.Duration
	DefaultDaysAhead  int
	DefaultTopN       int
	DefaultMonthsBack int
}

// DashboardService composes the student dashboard panels. Each panel is a
// pass-through of one upstream projection: fallbacks are fixed zero-value
// shapes and upstream ordering is never re-sorted here. The cache sits in
// front of composition and changes no payloads.
type DashboardService struct {
	dashboards dashboardReader
	cache      *CacheService
	logger     *zap.Logger
	cfg        DashboardServiceConfig
}

// NewDashboardService constructs a DashboardService with sane defaults.
func NewDashboardService(dashboards dashboardReader, cache *CacheService, logger *zap.Logger, cfg DashboardServiceConfig) *DashboardService {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 5 * time.Minute
	}
	if cfg.DefaultDaysAhead <= 0 {
		cfg.DefaultDaysAhead = 7
	}
	if cfg.DefaultTopN <= 0 {
		cfg.DefaultTopN = 10
	}
	if cfg.DefaultMonthsBack <= 0 {
		cfg.DefaultMonthsBack = 5
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{dashboards: dashboards, cache: cache, logger: logger, cfg: cfg}
}

// Statistics returns the student's summary counters. A student with no
// aggregate row gets the all-zero object rather than a 404.
func (s *DashboardService) Statistics(ctx context.Context, universityID int64) (*dto.DashboardStatistics, bool, error) {
	key := fmt.Sprintf("dash:stats:%d", universityID)
	var cached dto.DashboardStatistics
	if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
		return &cached, true, nil
	}

	stats, err := s.dashboards.Statistics(ctx, universityID)
	if err != nil {
		return nil, false, wrapReadError(err, "get dashboard statistics")
	}
	if stats == nil {
		stats = &dto.DashboardStatistics{}
	}
	s.persist(ctx, key, stats)
	return stats, false, nil
}

// UpcomingTasks lists pending tasks within the horizon, in upstream
// deadline order.
func (s *DashboardService) UpcomingTasks(ctx context.Context, universityID int64, daysAhead int) ([]dto.UpcomingTask, bool, error) {
	if daysAhead <= 0 {
		daysAhead = s.cfg.DefaultDaysAhead
	}
	key := fmt.Sprintf("dash:tasks:%d:%d", universityID, daysAhead)
	var cached []dto.UpcomingTask
	if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
		return cached, true, nil
	}

	tasks, err := s.dashboards.UpcomingTasks(ctx, universityID, daysAhead)
	if err != nil {
		return nil, false, wrapReadError(err, "get upcoming tasks")
	}
	s.persist(ctx, key, tasks)
	return tasks, false, nil
}

// Leaderboard returns the top n students in upstream rank order.
func (s *DashboardService) Leaderboard(ctx context.Context, topN int) ([]dto.LeaderboardEntry, bool, error) {
	if topN <= 0 {
		topN = s.cfg.DefaultTopN
	}
	key := fmt.Sprintf("dash:leaderboard:%d", topN)
	var cached []dto.LeaderboardEntry
	if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
		return cached, true, nil
	}

	entries, err := s.dashboards.Leaderboard(ctx, topN)
	if err != nil {
		return nil, false, wrapReadError(err, "get leaderboard")
	}
	s.persist(ctx, key, entries)
	return entries, false, nil
}

// ActivityChart returns monthly activity points in upstream order.
func (s *DashboardService) ActivityChart(ctx context.Context, universityID int64, monthsBack int) ([]dto.ActivityPoint, bool, error) {
	if monthsBack <= 0 {
		monthsBack = s.cfg.DefaultMonthsBack
	}
	key := fmt.Sprintf("dash:activity:%d:%d", universityID, monthsBack)
	var cached []dto.ActivityPoint
	if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
		return cached, true, nil
	}

	points, err := s.dashboards.ActivityChart(ctx, universityID, monthsBack)
	if err != nil {
		return nil, false, wrapReadError(err, "get activity chart")
	}
	s.persist(ctx, key, points)
	return points, false, nil
}

// GradeComponents returns per-course component grades for the chart.
func (s *DashboardService) GradeComponents(ctx context.Context, universityID int64) ([]dto.GradeComponent, bool, error) {
	key := fmt.Sprintf("dash:components:%d", universityID)
	var cached []dto.GradeComponent
	if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
		return cached, true, nil
	}

	components, err := s.dashboards.GradeComponents(ctx, universityID)
	if err != nil {
		return nil, false, wrapReadError(err, "get grade components")
	}
	s.persist(ctx, key, components)
	return components, false, nil
}

func (s *DashboardService) persist(ctx context.Context, key string, value interface{}) {
	if err := s.cache.Set(ctx, key, value, s.cfg.CacheTTL); err != nil {
		s.logger.Warn("dashboard cache write failed", zap.String("key", key), zap.Error(err))
	}
}
