package service

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/skghosh/socialdev-backend/internal/models"
	"gorm.io/gorm"
)

// In-memory store fakes sharing one lock, mimicking the contracts of the
// gorm repositories (including ErrDuplicatedKey from the composite unique
// index on join records).

type fakeDB struct {
	mu       sync.Mutex
	users    map[uint]*models.User
	events   map[uint]*models.Event
	joins    map[uint]*models.JoinRecord
	userSeq  uint
	eventSeq uint
	joinSeq  uint
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		users:  make(map[uint]*models.User),
		events: make(map[uint]*models.Event),
		joins:  make(map[uint]*models.JoinRecord),
	}
}

func newFakeStores() (*fakeDB, *fakeUserStore, *fakeEventStore, *fakeJoinStore) {
	db := newFakeDB()
	return db, &fakeUserStore{db: db}, &fakeEventStore{db: db}, &fakeJoinStore{db: db}
}

type fakeUserStore struct {
	db *fakeDB
}

func (s *fakeUserStore) Create(user *models.User) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	for _, u := range s.db.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	s.db.userSeq++
	user.ID = s.db.userSeq
	user.CreatedAt = time.Now()
	cp := *user
	s.db.users[user.ID] = &cp
	return nil
}

func (s *fakeUserStore) GetByEmail(email string) (*models.User, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	for _, u := range s.db.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeUserStore) GetByID(id uint) (*models.User, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	u, ok := s.db.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *fakeUserStore) EmailExists(email string) (bool, error) {
	_, err := s.GetByEmail(email)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (s *fakeUserStore) GetAll() ([]models.User, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	var users []models.User
	for _, u := range s.db.users {
		users = append(users, *u)
	}
	return users, nil
}

func (s *fakeUserStore) Update(user *models.User) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if _, ok := s.db.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *user
	s.db.users[user.ID] = &cp
	return nil
}

type fakeEventStore struct {
	db *fakeDB
}

func (s *fakeEventStore) Create(event *models.Event) (*models.Event, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	s.db.eventSeq++
	event.ID = s.db.eventSeq
	cp := *event
	s.db.events[event.ID] = &cp
	return event, nil
}

func (s *fakeEventStore) GetByID(id uint) (*models.Event, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	e, ok := s.db.events[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *e
	return &cp, nil
}

func (s *fakeEventStore) GetUpcoming(filter models.EventFilter, now time.Time) ([]models.Event, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	var events []models.Event
	for _, e := range s.db.events {
		if e.EventDate.Before(now) || e.Status != models.EventStatusActive {
			continue
		}
		if filter.Category != "" && filter.Category != "all" && e.Category != filter.Category {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(e.EventName), strings.ToLower(filter.Search)) {
			continue
		}
		events = append(events, *e)
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].EventDate.Before(events[j].EventDate)
	})
	return events, nil
}

func (s *fakeEventStore) GetByOrganizer(email string) ([]models.Event, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	var events []models.Event
	for _, e := range s.db.events {
		if e.OrganizerEmail == email {
			events = append(events, *e)
		}
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].PostedAt.After(events[j].PostedAt)
	})
	return events, nil
}

func (s *fakeEventStore) GetAll() ([]models.Event, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	var events []models.Event
	for _, e := range s.db.events {
		events = append(events, *e)
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].PostedAt.After(events[j].PostedAt)
	})
	return events, nil
}

func (s *fakeEventStore) Update(event *models.Event) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if _, ok := s.db.events[event.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *event
	s.db.events[event.ID] = &cp
	return nil
}

func (s *fakeEventStore) DeleteWithJoins(id uint) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	delete(s.db.events, id)
	for joinID, j := range s.db.joins {
		if j.EventID == id {
			delete(s.db.joins, joinID)
		}
	}
	return nil
}

type fakeJoinStore struct {
	db *fakeDB
}

func (s *fakeJoinStore) Create(record *models.JoinRecord) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	for _, j := range s.db.joins {
		if j.EventID == record.EventID && j.UserEmail == record.UserEmail {
			return gorm.ErrDuplicatedKey
		}
	}
	s.db.joinSeq++
	record.ID = s.db.joinSeq
	cp := *record
	s.db.joins[record.ID] = &cp
	if e, ok := s.db.events[record.EventID]; ok {
		e.Participants++
	}
	return nil
}

func (s *fakeJoinStore) GetByID(id uint) (*models.JoinRecord, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	j, ok := s.db.joins[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *j
	return &cp, nil
}

func (s *fakeJoinStore) GetByEventAndEmail(eventID uint, email string) (*models.JoinRecord, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	for _, j := range s.db.joins {
		if j.EventID == eventID && j.UserEmail == email {
			cp := *j
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeJoinStore) GetByUserEmail(email string) ([]models.JoinRecord, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	var records []models.JoinRecord
	for _, j := range s.db.joins {
		if j.UserEmail == email {
			records = append(records, *j)
		}
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].JoinedDate.After(records[j].JoinedDate)
	})
	return records, nil
}

func (s *fakeJoinStore) GetRecent(limit int) ([]models.JoinRecord, error) {
	all, _ := s.GetAll()
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (s *fakeJoinStore) GetAll() ([]models.JoinRecord, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	var records []models.JoinRecord
	for _, j := range s.db.joins {
		records = append(records, *j)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].JoinedDate.After(records[j].JoinedDate)
	})
	return records, nil
}

func (s *fakeJoinStore) GetDonations() ([]models.JoinRecord, error) {
	all, _ := s.GetAll()
	var donations []models.JoinRecord
	for _, j := range all {
		if j.Amount > 0 {
			donations = append(donations, j)
		}
	}
	return donations, nil
}

func (s *fakeJoinStore) UpdateStatus(id uint, status string) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	j, ok := s.db.joins[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	j.Status = status
	return nil
}

func (s *fakeJoinStore) Delete(id uint) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	j, ok := s.db.joins[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.db.joins, id)
	if e, ok := s.db.events[j.EventID]; ok && e.Participants > 0 {
		e.Participants--
	}
	return nil
}
