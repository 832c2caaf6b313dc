package service

import (
	"sync"
	"testing"

	"github.com/skghosh/socialdev-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingEmailer struct {
	mu   sync.Mutex
	sent []string
}

func (e *recordingEmailer) SendWelcomeEmail(to, displayName string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sent = append(e.sent, to)
	return nil
}

func TestRegisterAndLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	_, users, _, _ := newFakeStores()
	emailer := &recordingEmailer{}
	svc := NewAuthService(users, emailer, zap.NewNop().Sugar())

	resp, err := svc.Register(models.RegisterRequest{
		DisplayName: "A",
		Email:       "a@example.com",
		Password:    "hunter22",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, models.RoleUser, resp.User.Role)
	assert.Equal(t, models.StatusActive, resp.User.Status)

	// Same email again is a conflict.
	_, err = svc.Register(models.RegisterRequest{
		DisplayName: "A2",
		Email:       "a@example.com",
		Password:    "hunter23",
	})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	login, err := svc.Login(models.LoginRequest{Email: "a@example.com", Password: "hunter22"})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)

	_, err = svc.Login(models.LoginRequest{Email: "a@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrBadCredential)

	_, err = svc.Login(models.LoginRequest{Email: "nobody@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, ErrBadCredential)
}

func TestLoginRejectsPasswordlessAccounts(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	_, users, _, _ := newFakeStores()
	userSvc := NewUserService(users)
	_, _, err := userSvc.UpsertUser(models.UpsertUserRequest{Email: "ext@example.com", DisplayName: "Ext"})
	require.NoError(t, err)

	svc := NewAuthService(users, &recordingEmailer{}, zap.NewNop().Sugar())
	_, err = svc.Login(models.LoginRequest{Email: "ext@example.com", Password: "anything"})
	assert.ErrorIs(t, err, ErrBadCredential)
}
