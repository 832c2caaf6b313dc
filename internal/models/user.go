package models

import (
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	StatusActive    = "active"
	StatusSuspended = "suspended"
)

type User struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Email       string    `json:"email" gorm:"unique;not null"`
	DisplayName string    `json:"display_name" gorm:"not null"`
	Password    string    `json:"-"` // empty for externally provisioned accounts
	Role        string    `json:"role" gorm:"not null;default:'user'"`
	Status      string    `json:"status" gorm:"not null;default:'active'"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Principal is the verified identity attached to a request after the
// bearer token has been checked and the stored role/status resolved.
type Principal struct {
	UserID uint
	Email  string
	Role   string
	Status string
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

type UpsertUserRequest struct {
	Email       string `json:"email" validate:"required,email"`
	DisplayName string `json:"display_name" validate:"required"`
}

type UserRoleResponse struct {
	Role   string `json:"role"`
	Status string `json:"status"`
}

type UpdateUserStatusRequest struct {
	Status *string `json:"status" validate:"omitempty,oneof=active suspended"`
	Role   *string `json:"role" validate:"omitempty,oneof=user admin"`
}
