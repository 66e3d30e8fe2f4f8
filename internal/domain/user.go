package domain

import "context"

// User represents a back-office operator account.
type User struct {
	BaseModel
	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255" json:"-"`
}

// UserRepository defines the data access interface for users.
type UserRepository interface {
	Repository[User]
	GetByEmail(ctx context.Context, email string) (*User, error)
}
