package user

import (
	"context"

	"gorm.io/gorm"

	"github.com/estateops/backoffice/internal/crud"
	"github.com/estateops/backoffice/internal/domain"
)

// resource configures the generic query core for the users table.
var resource = crud.Resource{
	Name:         "User",
	DefaultSort:  "created_at DESC",
	SortFields:   []string{"id", "name", "email", "created_at", "updated_at"},
	FilterFields: []string{"name", "email"},
	SearchFields: []string{"name", "email"},
	UniqueFields: []string{"email"},
}

type userRepository struct {
	*crud.Repository[domain.User]
}

// NewUserRepository creates a UserRepository backed by the generic query core.
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &userRepository{crud.New[domain.User](db, resource)}
}

// GetByEmail retrieves a user by email address.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.GetBy(ctx, "email", email)
}
