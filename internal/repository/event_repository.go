package repository

import (
	"time"

	"github.com/skghosh/socialdev-backend/internal/models"
	"gorm.io/gorm"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(event *models.Event) (*models.Event, error) {
	result := r.db.Create(event)
	if result.Error != nil {
		return nil, result.Error
	}
	return event, nil
}

func (r *EventRepository) GetByID(id uint) (*models.Event, error) {
	var event models.Event
	err := r.db.First(&event, id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// GetUpcoming returns active events dated now or later, optionally narrowed
// by exact category and a case-insensitive name search, soonest first.
func (r *EventRepository) GetUpcoming(filter models.EventFilter, now time.Time) ([]models.Event, error) {
	query := r.db.Where("event_date >= ?", now).
		Where("status = ?", models.EventStatusActive)

	if filter.Category != "" && filter.Category != "all" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		query = query.Where("event_name ILIKE ?", "%"+filter.Search+"%")
	}

	var events []models.Event
	err := query.Order("event_date ASC").Find(&events).Error
	return events, err
}

func (r *EventRepository) GetByOrganizer(email string) ([]models.Event, error) {
	var events []models.Event
	err := r.db.Where("organizer_email = ?", email).
		Order("posted_at DESC").
		Find(&events).Error
	return events, err
}

func (r *EventRepository) GetAll() ([]models.Event, error) {
	var events []models.Event
	err := r.db.Order("posted_at DESC").Find(&events).Error
	return events, err
}

func (r *EventRepository) Update(event *models.Event) error {
	return r.db.Save(event).Error
}

// DeleteWithJoins removes an event and all of its join records in a single
// transaction, so a cascade can never be left half done.
func (r *EventRepository) DeleteWithJoins(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Event{}, id).Error; err != nil {
			return err
		}
		return tx.Where("event_id = ?", id).Delete(&models.JoinRecord{}).Error
	})
}
