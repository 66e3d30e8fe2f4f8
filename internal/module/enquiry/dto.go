package enquiry

// CreateEnquiryRequest represents a public enquiry submission.
type CreateEnquiryRequest struct {
	Name        string `json:"name" form:"name" binding:"required,min=2,max=150"`
	Email       string `json:"email" form:"email" binding:"omitempty,email,max=255"`
	Phone       string `json:"phone" form:"phone" binding:"omitempty,max=30"`
	Subject     string `json:"subject" form:"subject" binding:"omitempty,max=200"`
	Message     string `json:"message" form:"message" binding:"required"`
	PropertyRef string `json:"property_ref" form:"property_ref" binding:"omitempty,max=100"`
	CityID      uint   `json:"city_id" form:"city_id"`
}

// UpdateEnquiryRequest represents a partial update. Nil fields are left
// untouched in the database.
type UpdateEnquiryRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=150"`
	Email       *string `json:"email" binding:"omitempty,email,max=255"`
	Phone       *string `json:"phone" binding:"omitempty,max=30"`
	Subject     *string `json:"subject" binding:"omitempty,max=200"`
	Message     *string `json:"message"`
	PropertyRef *string `json:"property_ref" binding:"omitempty,max=100"`
	CityID      *uint   `json:"city_id"`
}

// StatusRequest sets the soft-delete status flag.
type StatusRequest struct {
	Status *int `json:"status" binding:"required,oneof=0 1"`
}

// LeadStatusRequest moves an enquiry to another workflow stage.
type LeadStatusRequest struct {
	LeadStatus *int `json:"lead_status" binding:"required,min=1,max=5"`
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
