package service

import (
	"time"

	"github.com/skghosh/socialdev-backend/internal/models"
)

const (
	defaultStatsWindowDays = 7
	chartBucketLimit       = 10
)

type StatsService struct {
	statsRepo StatsStore
}

func NewStatsService(statsRepo StatsStore) *StatsService {
	return &StatsService{
		statsRepo: statsRepo,
	}
}

// GetAdminStats assembles the dashboard rollups. Everything here is a read;
// the earnings figures are windowed to the last `days` days.
func (s *StatsService) GetAdminStats(days int) (*models.AdminStats, error) {
	if days <= 0 {
		days = defaultStatsWindowDays
	}
	since := time.Now().AddDate(0, 0, -days)

	totalEvents, err := s.statsRepo.CountEvents()
	if err != nil {
		return nil, err
	}

	totalUsers, err := s.statsRepo.CountUsers()
	if err != nil {
		return nil, err
	}

	totalEarnings, totalJoined, err := s.statsRepo.EarningsSince(since)
	if err != nil {
		return nil, err
	}

	chartData, err := s.statsRepo.EarningsByDay(since, chartBucketLimit)
	if err != nil {
		return nil, err
	}

	categoryStats, err := s.statsRepo.EventCountByCategory()
	if err != nil {
		return nil, err
	}

	return &models.AdminStats{
		TotalEvents:   totalEvents,
		TotalUsers:    totalUsers,
		TotalJoined:   totalJoined,
		TotalEarnings: totalEarnings,
		ChartData:     chartData,
		CategoryStats: categoryStats,
	}, nil
}
