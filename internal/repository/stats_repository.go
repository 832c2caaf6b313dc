package repository

import (
	"time"

	"github.com/skghosh/socialdev-backend/internal/models"
	"gorm.io/gorm"
)

type StatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) CountEvents() (int64, error) {
	var count int64
	err := r.db.Model(&models.Event{}).Count(&count).Error
	return count, err
}

func (r *StatsRepository) CountUsers() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Count(&count).Error
	return count, err
}

// EarningsSince sums paid contributions and counts joins within the window.
func (r *StatsRepository) EarningsSince(since time.Time) (float64, int64, error) {
	var row struct {
		TotalEarnings float64
		TotalJoined   int64
	}
	err := r.db.Model(&models.JoinRecord{}).
		Where("joined_date >= ?", since).
		Select("COALESCE(SUM(amount), 0) AS total_earnings, COUNT(*) AS total_joined").
		Scan(&row).Error
	return row.TotalEarnings, row.TotalJoined, err
}

// EarningsByDay groups contributions into daily buckets for the chart,
// oldest bucket first.
func (r *StatsRepository) EarningsByDay(since time.Time, limit int) ([]models.EarningsByDate, error) {
	var rows []models.EarningsByDate
	err := r.db.Model(&models.JoinRecord{}).
		Where("joined_date >= ?", since).
		Select("to_char(joined_date, 'YYYY-MM-DD') AS name, SUM(amount) AS amount").
		Group("name").
		Order("name ASC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *StatsRepository) EventCountByCategory() ([]models.CategoryStat, error) {
	var rows []models.CategoryStat
	err := r.db.Model(&models.Event{}).
		Select("category AS name, COUNT(*) AS value").
		Group("category").
		Order("value DESC").
		Scan(&rows).Error
	return rows, err
}
