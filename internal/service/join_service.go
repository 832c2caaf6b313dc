package service

import (
	"errors"
	"time"

	"github.com/skghosh/socialdev-backend/internal/models"
	"gorm.io/gorm"
)

type JoinService struct {
	joinRepo  JoinStore
	eventRepo EventStore
}

func NewJoinService(joinRepo JoinStore, eventRepo EventStore) *JoinService {
	return &JoinService{
		joinRepo:  joinRepo,
		eventRepo: eventRepo,
	}
}

// JoinEvent records the principal's participation. The pre-check gives the
// common duplicate a friendly early answer; the unique index behind
// JoinStore.Create is what actually guarantees at-most-one join per
// (event, user) when requests race.
func (s *JoinService) JoinEvent(principal models.Principal, req models.JoinEventRequest) (*models.JoinRecord, error) {
	if req.Amount < 0 {
		return nil, ErrInvalidAmount
	}

	if _, err := s.eventRepo.GetByID(req.EventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if _, err := s.joinRepo.GetByEventAndEmail(req.EventID, principal.Email); err == nil {
		return nil, ErrAlreadyJoined
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	transactionID := req.TransactionID
	if transactionID == "" {
		transactionID = models.TransactionFree
	}

	record := &models.JoinRecord{
		EventID:       req.EventID,
		UserEmail:     principal.Email,
		UserName:      req.UserName,
		Amount:        req.Amount,
		TransactionID: transactionID,
		Status:        models.JoinStatusSuccess,
		JoinedDate:    time.Now(),
	}

	if err := s.joinRepo.Create(record); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyJoined
		}
		return nil, err
	}

	return record, nil
}

// AutoJoinOrganizer seats the organizer in their own event right after
// creation, with the organizer sentinel transaction id.
func (s *JoinService) AutoJoinOrganizer(event *models.Event, displayName string) error {
	record := &models.JoinRecord{
		EventID:       event.ID,
		UserEmail:     event.OrganizerEmail,
		UserName:      displayName,
		Amount:        0,
		TransactionID: models.TransactionOrganizer,
		Status:        models.JoinStatusSuccess,
		JoinedDate:    time.Now(),
	}

	err := s.joinRepo.Create(record)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}

// GetJoinedEvents lists a user's join records, each enriched with the
// event's details. A record whose event has been deleted is still returned,
// just without the event block.
func (s *JoinService) GetJoinedEvents(email string, principal models.Principal) ([]models.JoinedEventResponse, error) {
	if email != principal.Email && !principal.IsAdmin() {
		return nil, ErrForbidden
	}

	records, err := s.joinRepo.GetByUserEmail(email)
	if err != nil {
		return nil, err
	}

	responses := make([]models.JoinedEventResponse, 0, len(records))
	for _, record := range records {
		resp := models.JoinedEventResponse{JoinRecord: record}

		event, err := s.eventRepo.GetByID(record.EventID)
		if err == nil {
			resp.Event = &models.EventSummary{
				ID:        event.ID,
				EventName: event.EventName,
				Category:  event.Category,
				Location:  event.Location,
				EventDate: event.EventDate,
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		responses = append(responses, resp)
	}

	return responses, nil
}

func (s *JoinService) CheckMembership(eventID uint, email string) (bool, error) {
	_, err := s.joinRepo.GetByEventAndEmail(eventID, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *JoinService) GetRecentJoins(limit int) ([]models.JoinRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.joinRepo.GetRecent(limit)
}

func (s *JoinService) GetAllJoins() ([]models.JoinRecord, error) {
	return s.joinRepo.GetAll()
}

func (s *JoinService) GetDonations() ([]models.JoinRecord, error) {
	return s.joinRepo.GetDonations()
}

func (s *JoinService) UpdateJoinStatus(id uint, status string) error {
	err := s.joinRepo.UpdateStatus(id, status)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *JoinService) DeleteJoin(id uint) error {
	err := s.joinRepo.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
