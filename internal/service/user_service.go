package service

import (
	"errors"

	"github.com/skghosh/socialdev-backend/internal/models"
	"gorm.io/gorm"
)

type UserService struct {
	userRepo UserStore
}

func NewUserService(userRepo UserStore) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// UpsertUser creates a user on first sign-in. A second call with the same
// email is a no-op; the stored user is returned with created=false.
func (s *UserService) UpsertUser(req models.UpsertUserRequest) (*models.User, bool, error) {
	existing, err := s.userRepo.GetByEmail(req.Email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	user := &models.User{
		Email:       req.Email,
		DisplayName: req.DisplayName,
		Role:        models.RoleUser,
		Status:      models.StatusActive,
	}

	if err := s.userRepo.Create(user); err != nil {
		// Lost a race with a concurrent first sign-in; the row exists now.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			existing, getErr := s.userRepo.GetByEmail(req.Email)
			if getErr != nil {
				return nil, false, getErr
			}
			return existing, false, nil
		}
		return nil, false, err
	}

	return user, true, nil
}

// GetRole resolves a principal's stored role and status. Unknown emails
// fall back to a plain active user.
func (s *UserService) GetRole(email string) (models.UserRoleResponse, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.UserRoleResponse{
				Role:   models.RoleUser,
				Status: models.StatusActive,
			}, nil
		}
		return models.UserRoleResponse{}, err
	}

	return models.UserRoleResponse{
		Role:   user.Role,
		Status: user.Status,
	}, nil
}

func (s *UserService) GetUserByEmail(email string) (*models.User, error) {
	return s.userRepo.GetByEmail(email)
}

func (s *UserService) GetAllUsers() ([]models.User, error) {
	return s.userRepo.GetAll()
}

// UpdateUserStatus is the admin moderation hook: change status, role, or both.
func (s *UserService) UpdateUserStatus(id uint, req models.UpdateUserStatusRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Status != nil {
		user.Status = *req.Status
	}
	if req.Role != nil {
		user.Role = *req.Role
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	return user, nil
}
