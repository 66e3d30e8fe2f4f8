package task

import (
	"context"
	"strings"

	"github.com/estateops/backoffice/internal/domain"
)

// Service defines the business operations for tasks.
type Service interface {
	ListTasks(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Task], error)
	GetTask(ctx context.Context, id uint) (*domain.Task, error)
	CreateTask(ctx context.Context, req CreateTaskRequest) (*domain.Task, error)
	UpdateTask(ctx context.Context, id uint, req UpdateTaskRequest) (*domain.Task, error)
	Assign(ctx context.Context, id uint, assignedTo uint) error
	SetDone(ctx context.Context, id uint, done bool) error
	SetStatus(ctx context.Context, id uint, status int) error
	DeleteTask(ctx context.Context, id uint) error
	DeleteTaskPermanently(ctx context.Context, id uint) error
	RestoreTask(ctx context.Context, id uint) error
	BulkStatus(ctx context.Context, ids []uint, status int) (int64, error)
	BulkDone(ctx context.Context, ids []uint, done bool) (int64, error)
	BulkDelete(ctx context.Context, ids []uint) (int64, error)
	BulkDeletePermanently(ctx context.Context, ids []uint) (int64, error)
	Stats(ctx context.Context) (*domain.Stats, error)
}

type taskService struct {
	repo domain.TaskRepository
}

// NewService creates a task Service.
func NewService(repo domain.TaskRepository) Service {
	return &taskService{repo: repo}
}

func (s *taskService) ListTasks(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Task], error) {
	return s.repo.List(ctx, req)
}

func (s *taskService) GetTask(ctx context.Context, id uint) (*domain.Task, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *taskService) CreateTask(ctx context.Context, req CreateTaskRequest) (*domain.Task, error) {
	priority := req.Priority
	if priority == "" {
		priority = domain.TaskPriorityMedium
	}
	record := &domain.Task{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		DueDate:     req.DueDate,
		Priority:    priority,
		AssignedTo:  req.AssignedTo,
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// UpdateTask applies a partial update covering only the supplied fields.
func (s *taskService) UpdateTask(ctx context.Context, id uint, req UpdateTaskRequest) (*domain.Task, error) {
	fields := domain.Fields{}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, domain.NewAppError(domain.CodeValidation, "title cannot be empty", nil)
		}
		fields["title"] = title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.DueDate != nil {
		fields["due_date"] = *req.DueDate
	}
	if req.Priority != nil {
		fields["priority"] = *req.Priority
	}
	if req.AssignedTo != nil {
		fields["assigned_to"] = *req.AssignedTo
	}

	if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *taskService) Assign(ctx context.Context, id uint, assignedTo uint) error {
	return s.repo.UpdateFields(ctx, id, domain.Fields{"assigned_to": assignedTo})
}

func (s *taskService) SetDone(ctx context.Context, id uint, done bool) error {
	return s.repo.UpdateFields(ctx, id, domain.Fields{"done": done})
}

func (s *taskService) SetStatus(ctx context.Context, id uint, status int) error {
	return s.repo.UpdateFields(ctx, id, domain.Fields{"status": status})
}

func (s *taskService) DeleteTask(ctx context.Context, id uint) error {
	return s.repo.SoftDelete(ctx, id)
}

func (s *taskService) DeleteTaskPermanently(ctx context.Context, id uint) error {
	return s.repo.HardDelete(ctx, id)
}

func (s *taskService) RestoreTask(ctx context.Context, id uint) error {
	return s.repo.Restore(ctx, id)
}

func (s *taskService) BulkStatus(ctx context.Context, ids []uint, status int) (int64, error) {
	return s.repo.BulkUpdate(ctx, ids, domain.Fields{"status": status})
}

func (s *taskService) BulkDone(ctx context.Context, ids []uint, done bool) (int64, error) {
	return s.repo.BulkUpdate(ctx, ids, domain.Fields{"done": done})
}

func (s *taskService) BulkDelete(ctx context.Context, ids []uint) (int64, error) {
	return s.repo.BulkSoftDelete(ctx, ids)
}

func (s *taskService) BulkDeletePermanently(ctx context.Context, ids []uint) (int64, error) {
	return s.repo.BulkHardDelete(ctx, ids)
}

func (s *taskService) Stats(ctx context.Context) (*domain.Stats, error) {
	return s.repo.Stats(ctx)
}
