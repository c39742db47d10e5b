package services

import (
	"context"
	"strings"

	"recipe-app/dto"
	"recipe-app/models"
	"recipe-app/repositories"
)

type IUserService interface {
	CreateUser(ctx context.Context, email string, password string, opts ...UserOption) (*models.User, error)
	CreateSuperuser(ctx context.Context, email string, password string) (*models.User, error)
	CheckPassword(user *models.User, password string) bool
	UpdateUser(ctx context.Context, user *models.User, input dto.UpdateUserInput) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
}

// UserOption sets optional fields on a user before it is stored.
type UserOption func(*models.User)

func WithName(name string) UserOption {
	return func(u *models.User) {
		u.Name = name
	}
}

func withSuperuser() UserOption {
	return func(u *models.User) {
		u.IsStaff = true
		u.IsSuperuser = true
	}
}

type UserService struct {
	repository repositories.IUserRepository
	hasher     PasswordHasher
}

func NewUserService(repository repositories.IUserRepository, hasher PasswordHasher) IUserService {
	return &UserService{repository: repository, hasher: hasher}
}

// NormalizeEmail はメールアドレス全体を小文字化する
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *UserService) CreateUser(ctx context.Context, email string, password string, opts ...UserOption) (*models.User, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, models.ErrEmailRequired
	}

	hashedPassword, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    email,
		Password: hashedPassword,
		IsActive: true,
	}
	for _, opt := range opts {
		opt(user)
	}

	if err := s.repository.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) CreateSuperuser(ctx context.Context, email string, password string) (*models.User, error) {
	return s.CreateUser(ctx, email, password, withSuperuser())
}

func (s *UserService) CheckPassword(user *models.User, password string) bool {
	if user == nil {
		return false
	}
	return s.hasher.Verify(password, user.Password)
}

func (s *UserService) UpdateUser(ctx context.Context, user *models.User, input dto.UpdateUserInput) (*models.User, error) {
	if input.Email != nil {
		email := NormalizeEmail(*input.Email)
		if email == "" {
			return nil, models.ErrEmailRequired
		}
		user.Email = email
	}
	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Password != nil {
		hashedPassword, err := s.hasher.Hash(*input.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashedPassword
	}

	if err := s.repository.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) FindAll(ctx context.Context) ([]models.User, error) {
	return s.repository.FindAll(ctx)
}
