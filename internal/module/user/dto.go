package user

// CreateUserRequest represents the input for creating an operator account.
type CreateUserRequest struct {
	Name     string `json:"name" form:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,min=8,max=72"`
}

// UpdateUserRequest represents a partial update. Nil fields are left
// untouched in the database.
type UpdateUserRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=2,max=100"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=8,max=72"`
}

// StatusRequest sets the soft-delete status flag.
type StatusRequest struct {
	Status *int `json:"status" binding:"required,oneof=0 1"`
}
