package job

import "github.com/gin-gonic/gin"

// JobModule implements the app.Module interface for job postings and
// their applications.
type JobModule struct {
	handler *JobHandler
}

// NewModule creates a new JobModule with the given handler.
// Panics if h is nil.
func NewModule(h *JobHandler) *JobModule {
	if h == nil {
		panic("job.NewModule: handler must not be nil")
	}
	return &JobModule{handler: h}
}

// RegisterRoutes registers job routes. Listings, detail reads, and
// application submission are public; posting management and application
// review are admin-only.
func (m *JobModule) RegisterRoutes(public, admin *gin.RouterGroup) {
	public.GET("/jobs", m.handler.List)
	public.GET("/jobs/slug/:slug", m.handler.GetBySlug)
	public.POST("/jobs/:id/apply", m.handler.Apply)

	admin.GET("/jobs/stats", m.handler.Stats)
	admin.GET("/jobs/:id", m.handler.Get)
	admin.POST("/jobs", m.handler.Create)
	admin.PUT("/jobs/:id", m.handler.Update)
	admin.PATCH("/jobs/:id/status", m.handler.SetStatus)
	admin.PATCH("/jobs/:id/restore", m.handler.Restore)
	admin.DELETE("/jobs/:id", m.handler.Delete)
	admin.DELETE("/jobs/:id/permanent", m.handler.DeletePermanent)
	admin.POST("/jobs/bulk/status", m.handler.BulkStatus)
	admin.POST("/jobs/bulk/delete", m.handler.BulkDelete)
	admin.POST("/jobs/bulk/delete/permanent", m.handler.BulkDeletePermanent)

	admin.GET("/job-applications", m.handler.ListApplications)
	admin.GET("/job-applications/stats", m.handler.ApplicationStats)
	admin.GET("/job-applications/:id", m.handler.GetApplication)
	admin.PATCH("/job-applications/:id/restore", m.handler.RestoreApplication)
	admin.DELETE("/job-applications/:id", m.handler.DeleteApplication)
	admin.DELETE("/job-applications/:id/permanent", m.handler.DeleteApplicationPermanent)
	admin.POST("/job-applications/bulk/delete", m.handler.BulkDeleteApplications)
}
