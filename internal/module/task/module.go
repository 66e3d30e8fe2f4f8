package task

import "github.com/gin-gonic/gin"

// TaskModule implements the app.Module interface for the task domain.
type TaskModule struct {
	handler *TaskHandler
}

// NewModule creates a new TaskModule with the given handler.
// Panics if h is nil.
func NewModule(h *TaskHandler) *TaskModule {
	if h == nil {
		panic("task.NewModule: handler must not be nil")
	}
	return &TaskModule{handler: h}
}

// RegisterRoutes registers task routes. The whole surface is admin-only.
func (m *TaskModule) RegisterRoutes(public, admin *gin.RouterGroup) {
	admin.GET("/tasks", m.handler.List)
	admin.GET("/tasks/stats", m.handler.Stats)
	admin.GET("/tasks/:id", m.handler.Get)
	admin.POST("/tasks", m.handler.Create)
	admin.PUT("/tasks/:id", m.handler.Update)
	admin.PATCH("/tasks/:id/assign", m.handler.Assign)
	admin.PATCH("/tasks/:id/done", m.handler.SetDone)
	admin.PATCH("/tasks/:id/status", m.handler.SetStatus)
	admin.PATCH("/tasks/:id/restore", m.handler.Restore)
	admin.DELETE("/tasks/:id", m.handler.Delete)
	admin.DELETE("/tasks/:id/permanent", m.handler.DeletePermanent)
	admin.POST("/tasks/bulk/status", m.handler.BulkStatus)
	admin.POST("/tasks/bulk/done", m.handler.BulkDone)
	admin.POST("/tasks/bulk/delete", m.handler.BulkDelete)
	admin.POST("/tasks/bulk/delete/permanent", m.handler.BulkDeletePermanent)
}
