package contact

// CreateContactRequest represents the input for creating a new contact.
// At least one identifying field among name, email, and phone is required;
// the handler-level binding cannot express that, so the service enforces it.
type CreateContactRequest struct {
	Name   string `json:"name" form:"name" binding:"omitempty,max=150"`
	Email  string `json:"email" form:"email" binding:"omitempty,email,max=255"`
	Phone  string `json:"phone" form:"phone" binding:"omitempty,max=30"`
	Cuid   string `json:"cuid" form:"cuid" binding:"omitempty,max=40"`
	CityID uint   `json:"city_id" form:"city_id"`
	Source string `json:"source" form:"source" binding:"omitempty,max=100"`
	Notes  string `json:"notes" form:"notes"`
}

// UpdateContactRequest represents a partial update. Nil fields are left
// untouched in the database.
type UpdateContactRequest struct {
	Name   *string `json:"name" binding:"omitempty,max=150"`
	Email  *string `json:"email" binding:"omitempty,email,max=255"`
	Phone  *string `json:"phone" binding:"omitempty,max=30"`
	CityID *uint   `json:"city_id"`
	Source *string `json:"source" binding:"omitempty,max=100"`
	Notes  *string `json:"notes"`
}

// StatusRequest sets the soft-delete status flag.
type StatusRequest struct {
	Status *int `json:"status" binding:"required,oneof=0 1"`
}

// LeadStatusRequest moves a contact to another workflow stage.
type LeadStatusRequest struct {
	LeadStatus *int `json:"lead_status" binding:"required,min=1,max=5"`
}

// AssignRequest assigns a contact to an operator.
type AssignRequest struct {
	AssignedTo *uint `json:"assigned_to" binding:"required"`
}

// ConvertRequest turns a contact into a deal.
type ConvertRequest struct {
	Title  string  `json:"title" binding:"required,min=2,max=200"`
	Amount float64 `json:"amount" binding:"omitempty,gte=0"`
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

// BulkLeadStatusRequest moves a batch of contacts to another workflow stage.
type BulkLeadStatusRequest struct {
	IDs        []uint `json:"ids" binding:"required,min=1,dive,gt=0"`
	LeadStatus *int   `json:"lead_status" binding:"required,min=1,max=5"`
}
