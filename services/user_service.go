package services

import (
	"errors"
	"strings"

	"github.com/DonAdhyatma/fe-final-project/entity"
	"github.com/DonAdhyatma/fe-final-project/repository"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidRole       = errors.New("role must be admin or cashier")
	ErrInvalidUserStatus = errors.New("status must be active or inactive")
)

// UserService is the admin side of account management.
type UserService struct {
	Repo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{Repo: repo}
}

func (s *UserService) List(search string, page, limit int) ([]entity.User, int64, error) {
	return s.Repo.List(search, page, limit)
}

func (s *UserService) Get(id uint) (*entity.User, error) {
	return s.Repo.FindByID(id)
}

func (s *UserService) Create(username, email, password, role string) (*entity.User, error) {
	if !validRole(role) {
		return nil, ErrInvalidRole
	}
	username = strings.ToLower(strings.TrimSpace(username))

	count, err := s.Repo.CountByUsername(username)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUsernameTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Username: username,
		Email:    strings.ToLower(strings.TrimSpace(email)),
		Password: string(hashed),
		Role:     role,
		Status:   entity.UserStatusActive,
	}
	if err := s.Repo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Update(id uint, email string) (*entity.User, error) {
	updates := map[string]any{}
	if email != "" {
		updates["email"] = strings.ToLower(strings.TrimSpace(email))
	}
	if len(updates) > 0 {
		if err := s.Repo.Update(id, updates); err != nil {
			return nil, err
		}
	}
	return s.Repo.FindByID(id)
}

func (s *UserService) Delete(id uint) error {
	return s.Repo.Delete(id)
}

func (s *UserService) UpdateStatus(id uint, status string) error {
	if status != entity.UserStatusActive && status != entity.UserStatusInactive {
		return ErrInvalidUserStatus
	}
	return s.Repo.Update(id, map[string]any{"status": status})
}

func (s *UserService) ChangeRole(id uint, role string) error {
	if !validRole(role) {
		return ErrInvalidRole
	}
	return s.Repo.Update(id, map[string]any{"role": role})
}

func validRole(role string) bool {
	return role == entity.RoleAdmin || role == entity.RoleCashier
}
