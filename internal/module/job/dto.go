package job

// CreateJobRequest represents the input for creating a job posting.
type CreateJobRequest struct {
	Title       string `json:"title" form:"title" binding:"required,min=2,max=200"`
	Slug        string `json:"slug" form:"slug" binding:"omitempty,max=220"`
	Department  string `json:"department" form:"department" binding:"omitempty,max=100"`
	Location    string `json:"location" form:"location" binding:"omitempty,max=150"`
	Description string `json:"description" form:"description"`
	Vacancies   int    `json:"vacancies" form:"vacancies" binding:"omitempty,gte=1"`
}

// UpdateJobRequest represents a partial update. Nil fields are left
// untouched in the database.
type UpdateJobRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=2,max=200"`
	Slug        *string `json:"slug" binding:"omitempty,max=220"`
	Department  *string `json:"department" binding:"omitempty,max=100"`
	Location    *string `json:"location" binding:"omitempty,max=150"`
	Description *string `json:"description"`
	Vacancies   *int    `json:"vacancies" binding:"omitempty,gte=1"`
}

// ApplyRequest is a public application against a job posting. The resume is
// carried as a multipart file alongside these fields.
type ApplyRequest struct {
	Name      string `json:"name" form:"name" binding:"required,min=2,max=150"`
	Email     string `json:"email" form:"email" binding:"required,email,max=255"`
	Phone     string `json:"phone" form:"phone" binding:"omitempty,max=30"`
	CoverNote string `json:"cover_note" form:"cover_note"`
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
