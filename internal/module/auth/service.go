package auth

import (
	"context"
	"net/mail"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"github.com/simp-lee/jwt"

	"github.com/estateops/backoffice/internal/domain"
)

// Service defines the authentication operations.
type Service interface {
	Login(ctx context.Context, email, password string) (*TokenResponse, error)
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
}

type authService struct {
	jwtSvc      jwt.Service
	userRepo    domain.UserRepository
	tokenExpiry time.Duration
}

// NewService creates an auth Service issuing tokens with the given expiry.
func NewService(jwtSvc jwt.Service, userRepo domain.UserRepository, tokenExpiry time.Duration) Service {
	return &authService{
		jwtSvc:      jwtSvc,
		userRepo:    userRepo,
		tokenExpiry: tokenExpiry,
	}
}

// Login checks the operator's credentials and returns a signed token. A
// missing account and a wrong password both come back as the same
// unauthorized error so the response does not leak which emails exist.
func (s *authService) Login(ctx context.Context, email, password string) (*TokenResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrUnauthorized
	}
	return s.issueToken(user.ID)
}

func (s *authService) issueToken(userID uint) (*TokenResponse, error) {
	subject := strconv.FormatUint(uint64(userID), 10)

	token, err := s.jwtSvc.GenerateToken(subject, nil, s.tokenExpiry)
	if err != nil {
		return nil, domain.NewAppError(domain.CodeInternal, "failed to generate token", err)
	}

	// Read the expiry back off the token itself so the response matches
	// what the middleware will enforce.
	parsed, err := s.jwtSvc.ParseToken(token)
	if err != nil {
		return nil, domain.NewAppError(domain.CodeInternal, "failed to parse generated token", err)
	}

	return &TokenResponse{
		Token:     token,
		ExpiresAt: parsed.ExpiresAt.Unix(),
	}, nil
}

// Register creates an operator account. Gin binding already validated the
// request shape; validateRegisterInput re-checks here so the service is safe
// to call from other entry points.
func (s *authService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if err := validateRegisterInput(name, email, password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.NewAppError(domain.CodeInternal, "failed to hash password", err)
	}

	user := domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func validateRegisterInput(name, email, password string) error {
	if n := utf8.RuneCountInString(strings.TrimSpace(name)); n == 0 {
		return domain.NewAppError(domain.CodeValidation, "name is required", nil)
	} else if n > 100 {
		return domain.NewAppError(domain.CodeValidation, "name must not exceed 100 characters", nil)
	}

	email = strings.TrimSpace(email)
	if email == "" {
		return domain.NewAppError(domain.CodeValidation, "email is required", nil)
	}
	// mail.ParseAddress accepts display names and comments; a bare address
	// must round-trip unchanged.
	if addr, err := mail.ParseAddress(email); err != nil || addr.Name != "" || addr.Address != email {
		return domain.NewAppError(domain.CodeValidation, "email must be a valid email address", nil)
	}

	// bcrypt truncates at 72 bytes, so longer passwords are rejected
	// rather than silently shortened.
	if len(password) < 8 {
		return domain.NewAppError(domain.CodeValidation, "password must be at least 8 characters", nil)
	}
	if len(password) > 72 {
		return domain.NewAppError(domain.CodeValidation, "password must not exceed 72 characters", nil)
	}
	return nil
}
