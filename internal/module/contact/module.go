package contact

import "github.com/gin-gonic/gin"

// ContactModule implements the app.Module interface for the contact domain.
type ContactModule struct {
	handler *ContactHandler
}

// NewModule creates a new ContactModule with the given handler.
// Panics if h is nil.
func NewModule(h *ContactHandler) *ContactModule {
	if h == nil {
		panic("contact.NewModule: handler must not be nil")
	}
	return &ContactModule{handler: h}
}

// RegisterRoutes registers contact routes. Lead data is admin-only.
func (m *ContactModule) RegisterRoutes(public, admin *gin.RouterGroup) {
	admin.GET("/contacts", m.handler.List)
	admin.GET("/contacts/stats", m.handler.Stats)
	admin.GET("/contacts/cuid/:cuid", m.handler.GetByCuid)
	admin.GET("/contacts/:id", m.handler.Get)
	admin.POST("/contacts", m.handler.Create)
	admin.PUT("/contacts/:id", m.handler.Update)
	admin.PATCH("/contacts/:id/status", m.handler.SetStatus)
	admin.PATCH("/contacts/:id/lead-status", m.handler.SetLeadStatus)
	admin.PATCH("/contacts/:id/assign", m.handler.Assign)
	admin.PATCH("/contacts/:id/restore", m.handler.Restore)
	admin.POST("/contacts/:id/convert", m.handler.Convert)
	admin.DELETE("/contacts/:id", m.handler.Delete)
	admin.DELETE("/contacts/:id/permanent", m.handler.DeletePermanent)
	admin.POST("/contacts/bulk/status", m.handler.BulkStatus)
	admin.POST("/contacts/bulk/lead-status", m.handler.BulkLeadStatus)
	admin.POST("/contacts/bulk/delete", m.handler.BulkDelete)
	admin.POST("/contacts/bulk/delete/permanent", m.handler.BulkDeletePermanent)
}
