package models

import (
	"time"
)

const (
	JoinStatusPending = "pending"
	JoinStatusSuccess = "success"

	// Sentinel transaction ids for joins with no real payment behind them.
	TransactionFree      = "free"
	TransactionOrganizer = "free/organizer"
)

// JoinRecord is one user's participation in one event. The composite unique
// index is what makes concurrent duplicate joins impossible.
type JoinRecord struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	EventID       uint      `json:"event_id" gorm:"not null;uniqueIndex:idx_event_user"`
	UserEmail     string    `json:"user_email" gorm:"not null;uniqueIndex:idx_event_user"`
	UserName      string    `json:"user_name"`
	Amount        float64   `json:"amount" gorm:"not null;default:0"`
	TransactionID string    `json:"transaction_id"`
	Status        string    `json:"status" gorm:"not null;default:'success'"`
	JoinedDate    time.Time `json:"joined_date"`
}

type JoinEventRequest struct {
	EventID       uint    `json:"event_id" validate:"required"`
	UserName      string  `json:"user_name"`
	Amount        float64 `json:"amount" validate:"gte=0"`
	TransactionID string  `json:"transaction_id"`
}

// JoinedEventResponse enriches a join record with its event's details.
// Event is nil when the reference dangles (parent event deleted).
type JoinedEventResponse struct {
	JoinRecord
	Event *EventSummary `json:"event,omitempty"`
}

type MembershipResponse struct {
	IsJoined bool `json:"isJoined"`
}

type UpdateJoinStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending success"`
}
