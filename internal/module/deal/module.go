package deal

import "github.com/gin-gonic/gin"

// DealModule implements the app.Module interface for the deal domain.
type DealModule struct {
	handler *DealHandler
}

// NewModule creates a new DealModule with the given handler.
// Panics if h is nil.
func NewModule(h *DealHandler) *DealModule {
	if h == nil {
		panic("deal.NewModule: handler must not be nil")
	}
	return &DealModule{handler: h}
}

// RegisterRoutes registers deal routes. The whole surface is admin-only.
func (m *DealModule) RegisterRoutes(public, admin *gin.RouterGroup) {
	admin.GET("/deals", m.handler.List)
	admin.GET("/deals/stats", m.handler.Stats)
	admin.GET("/deals/:id", m.handler.Get)
	admin.POST("/deals", m.handler.Create)
	admin.PUT("/deals/:id", m.handler.Update)
	admin.PATCH("/deals/:id/stage", m.handler.SetStage)
	admin.PATCH("/deals/:id/status", m.handler.SetStatus)
	admin.PATCH("/deals/:id/restore", m.handler.Restore)
	admin.DELETE("/deals/:id", m.handler.Delete)
	admin.DELETE("/deals/:id/permanent", m.handler.DeletePermanent)
	admin.POST("/deals/bulk/status", m.handler.BulkStatus)
	admin.POST("/deals/bulk/stage", m.handler.BulkStage)
	admin.POST("/deals/bulk/delete", m.handler.BulkDelete)
	admin.POST("/deals/bulk/delete/permanent", m.handler.BulkDeletePermanent)
}
