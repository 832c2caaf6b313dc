package service

import (
	"errors"
	"time"

	"github.com/skghosh/socialdev-backend/internal/models"
	"gorm.io/gorm"
)

type EventService struct {
	eventRepo   EventStore
	userRepo    UserStore
	joinService *JoinService
}

func NewEventService(eventRepo EventStore, userRepo UserStore, joinService *JoinService) *EventService {
	return &EventService{
		eventRepo:   eventRepo,
		userRepo:    userRepo,
		joinService: joinService,
	}
}

// CreateEvent inserts the event and seats the organizer. The status check
// reads the stored user, not the token, so a suspension takes effect on the
// very next request.
func (s *EventService) CreateEvent(principal models.Principal, req models.EventRequest) (*models.Event, error) {
	displayName := principal.Email
	user, err := s.userRepo.GetByEmail(principal.Email)
	if err == nil {
		if user.Status == models.StatusSuspended {
			return nil, ErrSuspended
		}
		displayName = user.DisplayName
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	event := &models.Event{
		EventName:      req.EventName,
		Category:       req.Category,
		Location:       req.Location,
		Description:    req.Description,
		Image:          req.Image,
		EventDate:      req.EventDate,
		OrganizerEmail: principal.Email,
		Participants:   0,
		Status:         models.EventStatusActive,
		PostedAt:       time.Now(),
	}

	created, err := s.eventRepo.Create(event)
	if err != nil {
		return nil, err
	}

	if err := s.joinService.AutoJoinOrganizer(created, displayName); err != nil {
		return nil, err
	}

	return s.eventRepo.GetByID(created.ID)
}

func (s *EventService) GetUpcomingEvents(filter models.EventFilter) ([]models.Event, error) {
	return s.eventRepo.GetUpcoming(filter, time.Now())
}

func (s *EventService) GetEvent(id uint) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return event, nil
}

// GetOrganizerEvents is self-or-admin scoped.
func (s *EventService) GetOrganizerEvents(email string, principal models.Principal) ([]models.Event, error) {
	if email != principal.Email && !principal.IsAdmin() {
		return nil, ErrForbidden
	}
	return s.eventRepo.GetByOrganizer(email)
}

// GetManagedEvents returns everything for admins and the caller's own
// events for everyone else.
func (s *EventService) GetManagedEvents(principal models.Principal) ([]models.Event, error) {
	if principal.IsAdmin() {
		return s.eventRepo.GetAll()
	}
	return s.eventRepo.GetByOrganizer(principal.Email)
}

// UpdateEvent loads first so a missing event is NotFound and a foreign one
// is Forbidden, instead of the two collapsing into a single 403.
func (s *EventService) UpdateEvent(id uint, principal models.Principal, req models.UpdateEventRequest) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !CanModify(principal, event) {
		return nil, ErrForbidden
	}

	if req.EventName != nil {
		event.EventName = *req.EventName
	}
	if req.Category != nil {
		event.Category = *req.Category
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Image != nil {
		event.Image = *req.Image
	}
	if req.EventDate != nil {
		event.EventDate = *req.EventDate
	}

	if err := s.eventRepo.Update(event); err != nil {
		return nil, err
	}

	return event, nil
}

// DeleteEvent removes the event and cascades to its join records.
func (s *EventService) DeleteEvent(id uint, principal models.Principal) error {
	event, err := s.eventRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if !CanModify(principal, event) {
		return ErrForbidden
	}

	return s.eventRepo.DeleteWithJoins(id)
}
