package city

// CreateCityRequest represents the input for creating a new city. Slug is
// optional; when omitted it is derived from the name.
type CreateCityRequest struct {
	Name      string `json:"name" form:"name" binding:"required,min=2,max=150"`
	Slug      string `json:"slug" form:"slug" binding:"omitempty,max=180"`
	State     string `json:"state" form:"state" binding:"omitempty,max=100"`
	CountryID uint   `json:"country_id" form:"country_id"`
}

// UpdateCityRequest represents a partial update. Nil fields are left
// untouched in the database.
type UpdateCityRequest struct {
	Name      *string `json:"name" form:"name" binding:"omitempty,min=2,max=150"`
	Slug      *string `json:"slug" form:"slug" binding:"omitempty,max=180"`
	State     *string `json:"state" form:"state" binding:"omitempty,max=100"`
	CountryID *uint   `json:"country_id" form:"country_id"`
}

// StatusRequest sets the soft-delete status flag.
type StatusRequest struct {
	Status *int `json:"status" binding:"required,oneof=0 1"`
}

// BulkIDsRequest carries the target ids of a bulk operation.
type BulkIDsRequest struct {
	IDs []uint `json:"ids" binding:"required,min=1,dive,gt=0"`
}

// BulkStatusRequest sets the status flag on a batch of ids.
type BulkStatusRequest struct {
	IDs    []uint `json:"ids" binding:"required,min=1,dive,gt=0"`
	Status *int   `json:"status" binding:"required,oneof=0 1"`
}
