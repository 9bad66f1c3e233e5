package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/lms-go-api/internal/dto"
)

type stubDashboardReader struct {
	stats      *dto.DashboardStatistics
	tasks      []dto.UpcomingTask
	entries    []dto.LeaderboardEntry
	points     []dto.ActivityPoint
	components []dto.GradeComponent

	seenDaysAhead  int
	seenTopN       int
	seenMonthsBack int
}

func (s *stubDashboardReader) Statistics(ctx context.Context, universityID int64) (*dto.DashboardStatistics, error) {
	return s.stats, nil
}

func (s *stubDashboardReader) UpcomingTasks(ctx context.Context, universityID int64, daysAhead int) ([]dto.UpcomingTask, error) {
	s.seenDaysAhead = daysAhead
	return s.tasks, nil
}

func (s *stubDashboardReader) Leaderboard(ctx context.Context, topN int) ([]dto.LeaderboardEntry, error) {
	s.seenTopN = topN
	return s.entries, nil
}

func (s *stubDashboardReader) ActivityChart(ctx context.Context, universityID int64, monthsBack int) ([]dto.ActivityPoint, error) {
	s.seenMonthsBack = monthsBack
	return s.points, nil
}

func (s *stubDashboardReader) GradeComponents(ctx context.Context, universityID int64) ([]dto.GradeComponent, error) {
	return s.components, nil
}

func newDashboardService(reader *stubDashboardReader) *DashboardService {
	return NewDashboardService(reader, nil, zap.NewNop(), DashboardServiceConfig{})
}

func TestDashboardStatisticsZeroFallback(t *testing.T) {
	svc := newDashboardService(&stubDashboardReader{})

	stats, hit, err := svc.Statistics(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, hit)
	require.NotNil(t, stats)
	assert.Equal(t, dto.DashboardStatistics{}, *stats)
}

func TestDashboardStatisticsPassThrough(t *testing.T) {
	reader := &stubDashboardReader{stats: &dto.DashboardStatistics{TotalCourses: 4, AverageGrade: 87.25, LeaderboardRank: 3}}
	svc := newDashboardService(reader)

	stats, _, err := svc.Statistics(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalCourses)
	assert.Equal(t, 87.25, stats.AverageGrade)
	assert.Equal(t, int64(3), stats.LeaderboardRank)
}

func TestDashboardDefaultsApplied(t *testing.T) {
	reader := &stubDashboardReader{}
	svc := newDashboardService(reader)

	_, _, err := svc.UpcomingTasks(context.Background(), 1, 0)
	require.NoError(t, err)
	assert.Equal(t, 7, reader.seenDaysAhead)

	_, _, err = svc.Leaderboard(context.Background(), -1)
	require.NoError(t, err)
	assert.Equal(t, 10, reader.seenTopN)

	_, _, err = svc.ActivityChart(context.Background(), 1, 0)
	require.NoError(t, err)
	assert.Equal(t, 5, reader.seenMonthsBack)
}

func TestDashboardLeaderboardPreservesUpstreamOrder(t *testing.T) {
	// deliberately not sorted by points; rank order is upstream's call
	reader := &stubDashboardReader{entries: []dto.LeaderboardEntry{
		{Rank: 1, Points: 50},
		{Rank: 2, Points: 90},
		{Rank: 3, Points: 70},
	}}
	svc := newDashboardService(reader)

	entries, _, err := svc.Leaderboard(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, int64(1), entries[0].Rank)
	assert.Equal(t, int64(2), entries[1].Rank)
	assert.Equal(t, int64(3), entries[2].Rank)
}
