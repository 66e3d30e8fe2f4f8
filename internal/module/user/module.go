package user

import "github.com/gin-gonic/gin"

// UserModule implements the app.Module interface for operator accounts.
type UserModule struct {
	handler *UserHandler
}

// NewModule creates a new UserModule with the given handler.
// Panics if h is nil.
func NewModule(h *UserHandler) *UserModule {
	if h == nil {
		panic("user.NewModule: handler must not be nil")
	}
	return &UserModule{handler: h}
}

// RegisterRoutes registers user routes. Account management is admin-only.
func (m *UserModule) RegisterRoutes(public, admin *gin.RouterGroup) {
	admin.GET("/users", m.handler.List)
	admin.GET("/users/:id", m.handler.Get)
	admin.POST("/users", m.handler.Create)
	admin.PUT("/users/:id", m.handler.Update)
	admin.PATCH("/users/:id/status", m.handler.SetStatus)
	admin.PATCH("/users/:id/restore", m.handler.Restore)
	admin.DELETE("/users/:id", m.handler.Delete)
	admin.DELETE("/users/:id/permanent", m.handler.DeletePermanent)
}
