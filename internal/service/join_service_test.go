package service

import (
	"sync"
	"testing"
	"time"

	"github.com/skghosh/socialdev-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedEvent(t *testing.T, events EventStore, email string) *models.Event {
	t.Helper()
	event, err := events.Create(&models.Event{
		EventName:      "Community Health Camp",
		Category:       "healthcare",
		EventDate:      time.Now().Add(24 * time.Hour),
		OrganizerEmail: email,
		Status:         models.EventStatusActive,
		PostedAt:       time.Now(),
	})
	require.NoError(t, err)
	return event
}

func TestJoinEventDefaultsAndIncrement(t *testing.T) {
	_, _, events, joins := newFakeStores()
	svc := NewJoinService(joins, events)
	event := seedEvent(t, events, "org@example.com")

	principal := models.Principal{Email: "user@example.com", Role: models.RoleUser, Status: models.StatusActive}

	record, err := svc.JoinEvent(principal, models.JoinEventRequest{EventID: event.ID, UserName: "User"})
	require.NoError(t, err)
	assert.Equal(t, models.TransactionFree, record.TransactionID, "free join gets the sentinel transaction id")
	assert.Zero(t, record.Amount)
	assert.Equal(t, models.JoinStatusSuccess, record.Status)

	after, err := events.GetByID(event.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, after.Participants)
}

func TestJoinEventConflictLeavesCounterAlone(t *testing.T) {
	_, _, events, joins := newFakeStores()
	svc := NewJoinService(joins, events)
	event := seedEvent(t, events, "org@example.com")

	principal := models.Principal{Email: "user@example.com"}

	_, err := svc.JoinEvent(principal, models.JoinEventRequest{EventID: event.ID})
	require.NoError(t, err)

	_, err = svc.JoinEvent(principal, models.JoinEventRequest{EventID: event.ID})
	assert.ErrorIs(t, err, ErrAlreadyJoined)

	after, err := events.GetByID(event.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, after.Participants, "rejected duplicate must not touch the counter")
}

func TestJoinEventUnknownEvent(t *testing.T) {
	_, _, events, joins := newFakeStores()
	svc := NewJoinService(joins, events)

	_, err := svc.JoinEvent(models.Principal{Email: "user@example.com"}, models.JoinEventRequest{EventID: 42})
	assert.ErrorIs(t, err, ErrNotFound)
}

// Concurrent joins for the same (event, user) must produce exactly one
// record: the unique-key contract, not the pre-check, is what holds.
func TestConcurrentJoinsSingleRecord(t *testing.T) {
	db, _, events, joins := newFakeStores()
	svc := NewJoinService(joins, events)
	event := seedEvent(t, events, "org@example.com")

	principal := models.Principal{Email: "racer@example.com"}

	const attempts = 32
	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.JoinEvent(principal, models.JoinEventRequest{EventID: event.ID})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var successes, conflicts int
	for err := range results {
		switch {
		case err == nil:
			successes++
		default:
			require.ErrorIs(t, err, ErrAlreadyJoined)
			conflicts++
		}
	}

	assert.Equal(t, 1, successes)
	assert.Equal(t, attempts-1, conflicts)
	assert.Len(t, db.joins, 1)

	after, err := events.GetByID(event.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, after.Participants)
}

func TestCounterMatchesJoinCount(t *testing.T) {
	_, _, events, joins := newFakeStores()
	svc := NewJoinService(joins, events)
	event := seedEvent(t, events, "org@example.com")

	const n = 5
	for i := 0; i < n; i++ {
		principal := models.Principal{Email: string(rune('a'+i)) + "@example.com"}
		_, err := svc.JoinEvent(principal, models.JoinEventRequest{EventID: event.ID})
		require.NoError(t, err)
	}

	after, err := events.GetByID(event.ID)
	require.NoError(t, err)
	assert.Equal(t, n, after.Participants)
}

func TestGetJoinedEventsEnrichmentToleratesDanglingReference(t *testing.T) {
	_, _, events, joins := newFakeStores()
	svc := NewJoinService(joins, events)

	live := seedEvent(t, events, "org@example.com")
	principal := models.Principal{Email: "user@example.com"}

	_, err := svc.JoinEvent(principal, models.JoinEventRequest{EventID: live.ID})
	require.NoError(t, err)

	// Simulate an orphaned record left behind by a failed cascade.
	require.NoError(t, joins.Create(&models.JoinRecord{
		EventID:    9999,
		UserEmail:  principal.Email,
		JoinedDate: time.Now().Add(-time.Hour),
	}))

	joined, err := svc.GetJoinedEvents(principal.Email, principal)
	require.NoError(t, err)
	require.Len(t, joined, 2)

	assert.NotNil(t, joined[0].Event)
	assert.Equal(t, live.EventName, joined[0].Event.EventName)
	assert.Nil(t, joined[1].Event, "dangling reference comes back without event details")
}

func TestGetJoinedEventsIsSelfOnly(t *testing.T) {
	_, _, events, joins := newFakeStores()
	svc := NewJoinService(joins, events)

	me := models.Principal{Email: "me@example.com"}
	admin := models.Principal{Email: "admin@example.com", Role: models.RoleAdmin}

	_, err := svc.GetJoinedEvents("someone-else@example.com", me)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.GetJoinedEvents("someone-else@example.com", admin)
	assert.NoError(t, err)
}

func TestModerationUpdateAndDelete(t *testing.T) {
	_, _, events, joins := newFakeStores()
	svc := NewJoinService(joins, events)
	event := seedEvent(t, events, "org@example.com")

	record, err := svc.JoinEvent(models.Principal{Email: "user@example.com"}, models.JoinEventRequest{EventID: event.ID, Amount: 25})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateJoinStatus(record.ID, models.JoinStatusPending))
	got, err := joins.GetByID(record.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JoinStatusPending, got.Status)

	require.NoError(t, svc.DeleteJoin(record.ID))
	after, err := events.GetByID(event.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, after.Participants, "moderated delete returns the seat")

	assert.ErrorIs(t, svc.DeleteJoin(record.ID), ErrNotFound)
	assert.ErrorIs(t, svc.UpdateJoinStatus(record.ID, models.JoinStatusSuccess), ErrNotFound)
}

func TestDonationsListsOnlyPaidJoins(t *testing.T) {
	_, _, events, joins := newFakeStores()
	svc := NewJoinService(joins, events)
	event := seedEvent(t, events, "org@example.com")

	_, err := svc.JoinEvent(models.Principal{Email: "free@example.com"}, models.JoinEventRequest{EventID: event.ID})
	require.NoError(t, err)
	_, err = svc.JoinEvent(models.Principal{Email: "paid@example.com"}, models.JoinEventRequest{EventID: event.ID, Amount: 50, TransactionID: "pi_123"})
	require.NoError(t, err)

	donations, err := svc.GetDonations()
	require.NoError(t, err)
	require.Len(t, donations, 1)
	assert.Equal(t, "paid@example.com", donations[0].UserEmail)
	assert.Equal(t, "pi_123", donations[0].TransactionID)
}
