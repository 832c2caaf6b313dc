package service

import (
	"github.com/skghosh/socialdev-backend/internal/models"
)

// CanModify is the single ownership rule for event mutation: admins may
// touch any event, everyone else only their own.
func CanModify(principal models.Principal, event *models.Event) bool {
	if principal.IsAdmin() {
		return true
	}
	return event.OrganizerEmail == principal.Email
}
