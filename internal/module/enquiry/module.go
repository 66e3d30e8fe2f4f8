package enquiry

import "github.com/gin-gonic/gin"

// EnquiryModule implements the app.Module interface for the enquiry domain.
type EnquiryModule struct {
	handler *EnquiryHandler
}

// NewModule creates a new EnquiryModule with the given handler.
// Panics if h is nil.
func NewModule(h *EnquiryHandler) *EnquiryModule {
	if h == nil {
		panic("enquiry.NewModule: handler must not be nil")
	}
	return &EnquiryModule{handler: h}
}

// RegisterRoutes registers enquiry routes. Submission is public so the
// website contact form can post without credentials; everything else is
// admin-only.
func (m *EnquiryModule) RegisterRoutes(public, admin *gin.RouterGroup) {
	public.POST("/enquiries", m.handler.Create)

	admin.GET("/enquiries", m.handler.List)
	admin.GET("/enquiries/stats", m.handler.Stats)
	admin.GET("/enquiries/:id", m.handler.Get)
	admin.PUT("/enquiries/:id", m.handler.Update)
	admin.PATCH("/enquiries/:id/status", m.handler.SetStatus)
	admin.PATCH("/enquiries/:id/lead-status", m.handler.SetLeadStatus)
	admin.PATCH("/enquiries/:id/restore", m.handler.Restore)
	admin.DELETE("/enquiries/:id", m.handler.Delete)
	admin.DELETE("/enquiries/:id/permanent", m.handler.DeletePermanent)
	admin.POST("/enquiries/bulk/status", m.handler.BulkStatus)
	admin.POST("/enquiries/bulk/delete", m.handler.BulkDelete)
	admin.POST("/enquiries/bulk/delete/permanent", m.handler.BulkDeletePermanent)
}
