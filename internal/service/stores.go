package service

import (
	"time"

	"github.com/skghosh/socialdev-backend/internal/models"
)

// Store interfaces the services depend on. The gorm-backed repositories in
// internal/repository satisfy them; tests swap in in-memory fakes.

type UserStore interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	GetByID(id uint) (*models.User, error)
	EmailExists(email string) (bool, error)
	GetAll() ([]models.User, error)
	Update(user *models.User) error
}

type EventStore interface {
	Create(event *models.Event) (*models.Event, error)
	GetByID(id uint) (*models.Event, error)
	GetUpcoming(filter models.EventFilter, now time.Time) ([]models.Event, error)
	GetByOrganizer(email string) ([]models.Event, error)
	GetAll() ([]models.Event, error)
	Update(event *models.Event) error
	DeleteWithJoins(id uint) error
}

type JoinStore interface {
	Create(record *models.JoinRecord) error
	GetByID(id uint) (*models.JoinRecord, error)
	GetByEventAndEmail(eventID uint, email string) (*models.JoinRecord, error)
	GetByUserEmail(email string) ([]models.JoinRecord, error)
	GetRecent(limit int) ([]models.JoinRecord, error)
	GetAll() ([]models.JoinRecord, error)
	GetDonations() ([]models.JoinRecord, error)
	UpdateStatus(id uint, status string) error
	Delete(id uint) error
}

type StatsStore interface {
	CountEvents() (int64, error)
	CountUsers() (int64, error)
	EarningsSince(since time.Time) (float64, int64, error)
	EarningsByDay(since time.Time, limit int) ([]models.EarningsByDate, error)
	EventCountByCategory() ([]models.CategoryStat, error)
}

// PaymentGateway is the external payment processor boundary.
type PaymentGateway interface {
	CreatePaymentIntent(amountCents int64) (string, error)
}

// Emailer sends transactional mail; sends are fire-and-forget.
type Emailer interface {
	SendWelcomeEmail(to, displayName string) error
}
