package models

import (
	"time"
)

const (
	EventStatusActive    = "active"
	EventStatusCancelled = "cancelled"
)

type Event struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	EventName      string    `json:"event_name" gorm:"not null"`
	Category       string    `json:"category" gorm:"not null;index"`
	Location       string    `json:"location"`
	Description    string    `json:"description"`
	Image          string    `json:"image"`
	EventDate      time.Time `json:"event_date" gorm:"not null;index"`
	OrganizerEmail string    `json:"organizer_email" gorm:"not null;index"`
	Participants   int       `json:"participants" gorm:"not null;default:0"`
	Status         string    `json:"status" gorm:"not null;default:'active'"`
	PostedAt       time.Time `json:"posted_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type EventRequest struct {
	EventName   string    `json:"event_name" validate:"required"`
	Category    string    `json:"category" validate:"required,event_category"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Image       string    `json:"image" validate:"omitempty,url"`
	EventDate   time.Time `json:"event_date" validate:"required"`
}

type UpdateEventRequest struct {
	EventName   *string    `json:"event_name"`
	Category    *string    `json:"category"`
	Location    *string    `json:"location"`
	Description *string    `json:"description"`
	Image       *string    `json:"image"`
	EventDate   *time.Time `json:"event_date"`
}

// EventFilter narrows the upcoming-events listing. Category "all" (or empty)
// means no category filter; Search matches the event name case-insensitively.
type EventFilter struct {
	Category string
	Search   string
}

// EventSummary is the slice of event fields attached to a joined-event
// record when the parent event still exists.
type EventSummary struct {
	ID        uint      `json:"id"`
	EventName string    `json:"event_name"`
	Category  string    `json:"category"`
	Location  string    `json:"location"`
	EventDate time.Time `json:"event_date"`
}
