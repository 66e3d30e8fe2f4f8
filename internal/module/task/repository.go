package task

import (
	"gorm.io/gorm"

	"github.com/estateops/backoffice/internal/crud"
	"github.com/estateops/backoffice/internal/domain"
)

// resource configures the generic query core for the tasks table.
var resource = crud.Resource{
	Name:             "Task",
	DefaultSort:      "created_at DESC",
	SortFields:       []string{"id", "title", "due_date", "priority", "assigned_to", "done", "created_at", "updated_at"},
	FilterFields:     []string{"priority", "assigned_to", "done"},
	SearchFields:     []string{"title", "description"},
	StatsGroupColumn: "priority",
}

type taskRepository struct {
	*crud.Repository[domain.Task]
}

// NewTaskRepository creates a TaskRepository backed by the generic query core.
func NewTaskRepository(db *gorm.DB) domain.TaskRepository {
	return &taskRepository{crud.New[domain.Task](db, resource)}
}
