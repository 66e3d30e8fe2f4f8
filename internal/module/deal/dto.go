package deal

// CreateDealRequest represents the input for creating a new deal.
type CreateDealRequest struct {
	Title         string  `json:"title" binding:"required,min=2,max=200"`
	ContactID     uint    `json:"contact_id" binding:"required,gt=0"`
	Amount        float64 `json:"amount" binding:"omitempty,gte=0"`
	Stage         string  `json:"stage" binding:"omitempty,oneof=open negotiation won lost"`
	ExpectedClose string  `json:"expected_close" binding:"omitempty,datetime=2006-01-02"`
	Notes         string  `json:"notes"`
}

// UpdateDealRequest represents a partial update. Nil fields are left
// untouched in the database.
type UpdateDealRequest struct {
	Title         *string  `json:"title" binding:"omitempty,min=2,max=200"`
	ContactID     *uint    `json:"contact_id" binding:"omitempty,gt=0"`
	Amount        *float64 `json:"amount" binding:"omitempty,gte=0"`
	ExpectedClose *string  `json:"expected_close" binding:"omitempty,datetime=2006-01-02"`
	Notes         *string  `json:"notes"`
}

// StageRequest moves a deal to another pipeline stage.
type StageRequest struct {
	Stage string `json:"stage" binding:"required,oneof=open negotiation won lost"`
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

// BulkStageRequest moves a batch of deals to another pipeline stage.
type BulkStageRequest struct {
	IDs   []uint `json:"ids" binding:"required,min=1,dive,gt=0"`
	Stage string `json:"stage" binding:"required,oneof=open negotiation won lost"`
}
