package service

import (
	"errors"

	"github.com/skghosh/socialdev-backend/internal/models"
	"github.com/skghosh/socialdev-backend/pkg/bcrypt"
	jwtPkg "github.com/skghosh/socialdev-backend/pkg/jwt"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AuthService struct {
	userRepo UserStore
	emailer  Emailer
	logger   *zap.SugaredLogger
}

func NewAuthService(userRepo UserStore, emailer Emailer, logger *zap.SugaredLogger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		emailer:  emailer,
		logger:   logger,
	}
}

func (s *AuthService) Register(req models.RegisterRequest) (*models.AuthResponse, error) {
	exists, err := s.userRepo.EmailExists(req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyExists
	}

	hashedPassword, err := bcrypt.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		DisplayName: req.DisplayName,
		Email:       req.Email,
		Password:    hashedPassword,
		Role:        models.RoleUser,
		Status:      models.StatusActive,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyExists
		}
		return nil, err
	}

	go func() {
		if err := s.emailer.SendWelcomeEmail(user.Email, user.DisplayName); err != nil {
			s.logger.Warnw("welcome email failed", "email", user.Email, "error", err)
		}
	}()

	token, err := jwtPkg.GenerateToken(user.Email, user.ID)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}

func (s *AuthService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		return nil, ErrBadCredential
	}

	// Accounts provisioned through the upsert route have no password and
	// cannot use password login.
	if user.Password == "" {
		return nil, ErrBadCredential
	}

	if err := bcrypt.ComparePassword(user.Password, req.Password); err != nil {
		return nil, ErrBadCredential
	}

	token, err := jwtPkg.GenerateToken(user.Email, user.ID)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}
