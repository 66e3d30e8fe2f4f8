package domain

// Task priorities.
const (
	TaskPriorityLow    = "low"
	TaskPriorityMedium = "medium"
	TaskPriorityHigh   = "high"
)

// Task represents a back-office work item. DueDate is kept as a plain date
// string, matching the historical schema.
type Task struct {
	BaseModel
	Title       string `gorm:"size:200;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	DueDate     string `gorm:"size:10" json:"due_date"`
	Priority    string `gorm:"size:10;not null;default:medium;index" json:"priority"`
	AssignedTo  uint   `gorm:"index" json:"assigned_to"`
	Done        bool   `gorm:"not null;default:false" json:"done"`
}

// TaskRepository defines the data access interface for tasks.
type TaskRepository interface {
	Repository[Task]
}
