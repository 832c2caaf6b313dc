package service

import (
	"testing"
	"time"

	"github.com/skghosh/socialdev-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStatsStore struct {
	since      time.Time
	chartLimit int
}

func (s *fakeStatsStore) CountEvents() (int64, error) { return 12, nil }
func (s *fakeStatsStore) CountUsers() (int64, error)  { return 7, nil }

func (s *fakeStatsStore) EarningsSince(since time.Time) (float64, int64, error) {
	s.since = since
	return 150.5, 9, nil
}

func (s *fakeStatsStore) EarningsByDay(since time.Time, limit int) ([]models.EarningsByDate, error) {
	s.chartLimit = limit
	return []models.EarningsByDate{{Name: "2026-08-30", Amount: 150.5}}, nil
}

func (s *fakeStatsStore) EventCountByCategory() ([]models.CategoryStat, error) {
	return []models.CategoryStat{{Name: "cleanup", Value: 8}, {Name: "donation", Value: 4}}, nil
}

func TestGetAdminStatsAssemblesRollups(t *testing.T) {
	store := &fakeStatsStore{}
	svc := NewStatsService(store)

	stats, err := svc.GetAdminStats(30)
	require.NoError(t, err)

	assert.Equal(t, int64(12), stats.TotalEvents)
	assert.Equal(t, int64(7), stats.TotalUsers)
	assert.Equal(t, int64(9), stats.TotalJoined)
	assert.Equal(t, 150.5, stats.TotalEarnings)
	assert.Len(t, stats.ChartData, 1)
	assert.Len(t, stats.CategoryStats, 2)
	assert.Equal(t, 10, store.chartLimit)

	// 30-day window, give or take scheduling slack.
	expected := time.Now().AddDate(0, 0, -30)
	assert.WithinDuration(t, expected, store.since, time.Minute)
}

func TestGetAdminStatsDefaultWindow(t *testing.T) {
	store := &fakeStatsStore{}
	svc := NewStatsService(store)

	_, err := svc.GetAdminStats(0)
	require.NoError(t, err)

	expected := time.Now().AddDate(0, 0, -7)
	assert.WithinDuration(t, expected, store.since, time.Minute)
}
