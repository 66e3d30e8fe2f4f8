package city

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

// CityHandler handles REST API requests for the city resource.
type CityHandler struct {
	svc     Service
	uploads FileSaver
}

// NewCityHandler creates a new CityHandler.
func NewCityHandler(svc Service, uploads FileSaver) *CityHandler {
	return &CityHandler{svc: svc, uploads: uploads}
}

// List handles GET /api/v1/cities.
func (h *CityHandler) List(c *gin.Context) {
	result, err := h.svc.ListCities(c.Request.Context(), pkg.ParsePageRequest(c))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.List(c, result)
}

// Get handles GET /api/v1/cities/:id.
func (h *CityHandler) Get(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	record, err := h.svc.GetCity(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, record)
}

// GetBySlug handles GET /api/v1/cities/slug/:slug.
func (h *CityHandler) GetBySlug(c *gin.Context) {
	record, err := h.svc.GetCityBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, record)
}

// Create handles POST /api/v1/cities. Accepts JSON or multipart form; a
// multipart "image" file is stored and its filename substituted into the
// image column.
func (h *CityHandler) Create(c *gin.Context) {
	var req CreateCityRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	image, ok := h.storedUpload(c, "image")
	if !ok {
		return
	}

	record, err := h.svc.CreateCity(c.Request.Context(), req, image)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Created(c, record)
}

// Update handles PUT /api/v1/cities/:id.
func (h *CityHandler) Update(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req UpdateCityRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	image, ok := h.storedUpload(c, "image")
	if !ok {
		return
	}

	record, err := h.svc.UpdateCity(c.Request.Context(), id, req, image)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, record)
}

// SetStatus handles PATCH /api/v1/cities/:id/status.
func (h *CityHandler) SetStatus(c *gin.Context) {
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

// Restore handles PATCH /api/v1/cities/:id/restore.
func (h *CityHandler) Restore(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.RestoreCity(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Message(c, "city restored")
}

// Delete handles DELETE /api/v1/cities/:id (soft delete).
func (h *CityHandler) Delete(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.DeleteCity(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Message(c, "city deleted")
}

// DeletePermanent handles DELETE /api/v1/cities/:id/permanent.
func (h *CityHandler) DeletePermanent(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.DeleteCityPermanently(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Message(c, "city permanently deleted")
}

// BulkStatus handles POST /api/v1/cities/bulk/status.
func (h *CityHandler) BulkStatus(c *gin.Context) {
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

// BulkDelete handles POST /api/v1/cities/bulk/delete.
func (h *CityHandler) BulkDelete(c *gin.Context) {
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

// BulkDeletePermanent handles POST /api/v1/cities/bulk/delete/permanent.
func (h *CityHandler) BulkDeletePermanent(c *gin.Context) {
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

// Stats handles GET /api/v1/cities/stats.
func (h *CityHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, stats)
}

// storedUpload saves the named multipart file when one was supplied. The
// second return is false when storing failed and a response was already sent.
func (h *CityHandler) storedUpload(c *gin.Context, field string) (string, bool) {
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
