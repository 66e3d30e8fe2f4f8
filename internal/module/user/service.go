package user

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/estateops/backoffice/internal/domain"
)

// Service defines the business operations for operator accounts.
type Service interface {
	ListUsers(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.User], error)
	GetUser(ctx context.Context, id uint) (*domain.User, error)
	CreateUser(ctx context.Context, req CreateUserRequest) (*domain.User, error)
	UpdateUser(ctx context.Context, id uint, req UpdateUserRequest) (*domain.User, error)
	SetStatus(ctx context.Context, id uint, status int) error
	DeleteUser(ctx context.Context, id uint) error
	DeleteUserPermanently(ctx context.Context, id uint) error
	RestoreUser(ctx context.Context, id uint) error
}

type userService struct {
	repo domain.UserRepository
}

// NewService creates a user Service.
func NewService(repo domain.UserRepository) Service {
	return &userService{repo: repo}
}

func (s *userService) ListUsers(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.User], error) {
	return s.repo.List(ctx, req)
}

func (s *userService) GetUser(ctx context.Context, id uint) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *userService) CreateUser(ctx context.Context, req CreateUserRequest) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.NewAppError(domain.CodeInternal, "failed to hash password", err)
	}

	record := &domain.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// UpdateUser applies a partial update covering only the supplied fields.
// A supplied password is re-hashed before it is written.
func (s *userService) UpdateUser(ctx context.Context, id uint, req UpdateUserRequest) (*domain.User, error) {
	fields := domain.Fields{}
	if req.Name != nil {
		fields["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		fields["email"] = strings.TrimSpace(*req.Email)
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, domain.NewAppError(domain.CodeInternal, "failed to hash password", err)
		}
		fields["password_hash"] = string(hash)
	}

	if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *userService) SetStatus(ctx context.Context, id uint, status int) error {
	return s.repo.UpdateFields(ctx, id, domain.Fields{"status": status})
}

func (s *userService) DeleteUser(ctx context.Context, id uint) error {
	return s.repo.SoftDelete(ctx, id)
}

func (s *userService) DeleteUserPermanently(ctx context.Context, id uint) error {
	return s.repo.HardDelete(ctx, id)
}

func (s *userService) RestoreUser(ctx context.Context, id uint) error {
	return s.repo.Restore(ctx, id)
}
