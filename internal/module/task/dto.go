package task

// CreateTaskRequest represents the input for creating a task.
type CreateTaskRequest struct {
	Title       string `json:"title" binding:"required,min=2,max=200"`
	Description string `json:"description"`
	DueDate     string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	Priority    string `json:"priority" binding:"omitempty,oneof=low medium high"`
	AssignedTo  uint   `json:"assigned_to"`
}

// UpdateTaskRequest represents a partial update. Nil fields are left
// untouched in the database.
type UpdateTaskRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=2,max=200"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=low medium high"`
	AssignedTo  *uint   `json:"assigned_to"`
}

// AssignRequest assigns a task to an operator.
type AssignRequest struct {
	AssignedTo *uint `json:"assigned_to" binding:"required"`
}

// DoneRequest marks a task done or reopens it.
type DoneRequest struct {
	Done *bool `json:"done" binding:"required"`
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

// BulkDoneRequest marks a batch of tasks done or reopens them.
type BulkDoneRequest struct {
	IDs  []uint `json:"ids" binding:"required,min=1,dive,gt=0"`
	Done *bool  `json:"done" binding:"required"`
}
