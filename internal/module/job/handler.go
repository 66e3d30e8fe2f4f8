package job

import (
	"mime/multipart"

	"github.com/gin-gonic/gin"

	"github.com/estateops/backoffice/internal/domain"
	"github.com/estateops/backoffice/internal/pkg"
)

// FileSaver stores a multipart upload and returns the stored filename.
type FileSaver interface {
	Save(fh *multipart.FileHeader) (string, error)
}

// JobHandler handles REST API requests for job postings and applications.
type JobHandler struct {
	svc     Service
	uploads FileSaver
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(svc Service, uploads FileSaver) *JobHandler {
	return &JobHandler{svc: svc, uploads: uploads}
}

// List handles GET /api/v1/jobs.
func (h *JobHandler) List(c *gin.Context) {
	result, err := h.svc.ListJobs(c.Request.Context(), pkg.ParsePageRequest(c))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.List(c, result)
}

// Get handles GET /api/v1/jobs/:id.
func (h *JobHandler) Get(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	record, err := h.svc.GetJob(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, record)
}

// GetBySlug handles GET /api/v1/jobs/slug/:slug.
func (h *JobHandler) GetBySlug(c *gin.Context) {
	record, err := h.svc.GetJobBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, record)
}

// Create handles POST /api/v1/jobs.
func (h *JobHandler) Create(c *gin.Context) {
	var req CreateJobRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	record, err := h.svc.CreateJob(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Created(c, record)
}

// Update handles PUT /api/v1/jobs/:id.
func (h *JobHandler) Update(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req UpdateJobRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	record, err := h.svc.UpdateJob(c.Request.Context(), id, req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, record)
}

// SetStatus handles PATCH /api/v1/jobs/:id/status.
func (h *JobHandler) SetStatus(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req StatusRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	if err := h.svc.SetStatus(c.Request.Context(), id, *req.Status); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Message(c, "status updated")
}

// Restore handles PATCH /api/v1/jobs/:id/restore.
func (h *JobHandler) Restore(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.RestoreJob(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Message(c, "job restored")
}

// Delete handles DELETE /api/v1/jobs/:id (soft delete).
func (h *JobHandler) Delete(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.DeleteJob(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Message(c, "job deleted")
}

// DeletePermanent handles DELETE /api/v1/jobs/:id/permanent.
func (h *JobHandler) DeletePermanent(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.DeleteJobPermanently(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Message(c, "job permanently deleted")
}

// BulkStatus handles POST /api/v1/jobs/bulk/status.
func (h *JobHandler) BulkStatus(c *gin.Context) {
	var req BulkStatusRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	affected, err := h.svc.BulkStatus(c.Request.Context(), req.IDs, *req.Status)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, gin.H{"affected": affected})
}

// BulkDelete handles POST /api/v1/jobs/bulk/delete.
func (h *JobHandler) BulkDelete(c *gin.Context) {
	var req BulkIDsRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	affected, err := h.svc.BulkDelete(c.Request.Context(), req.IDs)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, gin.H{"affected": affected})
}

// BulkDeletePermanent handles POST /api/v1/jobs/bulk/delete/permanent.
func (h *JobHandler) BulkDeletePermanent(c *gin.Context) {
	var req BulkIDsRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	affected, err := h.svc.BulkDeletePermanently(c.Request.Context(), req.IDs)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, gin.H{"affected": affected})
}

// Stats handles GET /api/v1/jobs/stats.
func (h *JobHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, stats)
}

// Apply handles POST /api/v1/jobs/:id/apply. Accepts a multipart form with
// an optional "resume" file.
func (h *JobHandler) Apply(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req ApplyRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	resume, ok := h.storedUpload(c, "resume")
	if !ok {
		return
	}

	record, err := h.svc.Apply(c.Request.Context(), id, req, resume)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Created(c, record)
}

// ListApplications handles GET /api/v1/job-applications.
func (h *JobHandler) ListApplications(c *gin.Context) {
	result, err := h.svc.ListApplications(c.Request.Context(), pkg.ParsePageRequest(c))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.List(c, result)
}

// GetApplication handles GET /api/v1/job-applications/:id.
func (h *JobHandler) GetApplication(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	record, err := h.svc.GetApplication(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, record)
}

// DeleteApplication handles DELETE /api/v1/job-applications/:id (soft delete).
func (h *JobHandler) DeleteApplication(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.DeleteApplication(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Message(c, "application deleted")
}

// DeleteApplicationPermanent handles DELETE /api/v1/job-applications/:id/permanent.
func (h *JobHandler) DeleteApplicationPermanent(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.DeleteApplicationPermanently(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Message(c, "application permanently deleted")
}

// RestoreApplication handles PATCH /api/v1/job-applications/:id/restore.
func (h *JobHandler) RestoreApplication(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.RestoreApplication(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Message(c, "application restored")
}

// BulkDeleteApplications handles POST /api/v1/job-applications/bulk/delete.
func (h *JobHandler) BulkDeleteApplications(c *gin.Context) {
	var req BulkIDsRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	affected, err := h.svc.BulkDeleteApplications(c.Request.Context(), req.IDs)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, gin.H{"affected": affected})
}

// ApplicationStats handles GET /api/v1/job-applications/stats.
func (h *JobHandler) ApplicationStats(c *gin.Context) {
	stats, err := h.svc.ApplicationStats(c.Request.Context())
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, stats)
}

// storedUpload saves the named multipart file when one was supplied. The
// second return is false when storing failed and a response was already sent.
func (h *JobHandler) storedUpload(c *gin.Context, field string) (string, bool) {
	fh, err := c.FormFile(field)
	if err != nil {
		// No file supplied, or not a multipart request. Not an error.
		return "", true
	}

	name, err := h.uploads.Save(fh)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeInternal, "failed to store uploaded file", err))
		return "", false
	}
	return name, true
}
