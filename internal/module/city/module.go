package city

import "github.com/gin-gonic/gin"

// CityModule implements the app.Module interface for the city domain.
type CityModule struct {
	handler *CityHandler
}

// NewModule creates a new CityModule with the given handler.
// Panics if h is nil.
func NewModule(h *CityHandler) *CityModule {
	if h == nil {
		panic("city.NewModule: handler must not be nil")
	}
	return &CityModule{handler: h}
}

// RegisterRoutes registers city routes. List and detail reads are public
// (they feed the website); everything that mutates is admin-only.
func (m *CityModule) RegisterRoutes(public, admin *gin.RouterGroup) {
	public.GET("/cities", m.handler.List)
	public.GET("/cities/slug/:slug", m.handler.GetBySlug)

	admin.GET("/cities/stats", m.handler.Stats)
	admin.GET("/cities/:id", m.handler.Get)
	admin.POST("/cities", m.handler.Create)
	admin.PUT("/cities/:id", m.handler.Update)
	admin.PATCH("/cities/:id/status", m.handler.SetStatus)
	admin.PATCH("/cities/:id/restore", m.handler.Restore)
	admin.DELETE("/cities/:id", m.handler.Delete)
	admin.DELETE("/cities/:id/permanent", m.handler.DeletePermanent)
	admin.POST("/cities/bulk/status", m.handler.BulkStatus)
	admin.POST("/cities/bulk/delete", m.handler.BulkDelete)
	admin.POST("/cities/bulk/delete/permanent", m.handler.BulkDeletePermanent)
}
