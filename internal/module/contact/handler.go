package contact

import (
	"github.com/gin-gonic/gin"

	"github.com/estateops/backoffice/internal/pkg"
)

// ContactHandler handles REST API requests for the contact resource.
type ContactHandler struct {
	svc Service
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(svc Service) *ContactHandler {
	return &ContactHandler{svc: svc}
}

// List handles GET /api/v1/contacts.
func (h *ContactHandler) List(c *gin.Context) {
	result, err := h.svc.ListContacts(c.Request.Context(), pkg.ParsePageRequest(c))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.List(c, result)
}

// Get handles GET /api/v1/contacts/:id.
func (h *ContactHandler) Get(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	record, err := h.svc.GetContact(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, record)
}

// GetByCuid handles GET /api/v1/contacts/cuid/:cuid.
func (h *ContactHandler) GetByCuid(c *gin.Context) {
	record, err := h.svc.GetContactByCuid(c.Request.Context(), c.Param("cuid"))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, record)
}

// Create handles POST /api/v1/contacts.
func (h *ContactHandler) Create(c *gin.Context) {
	var req CreateContactRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	record, err := h.svc.CreateContact(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Created(c, record)
}

// Update handles PUT /api/v1/contacts/:id.
func (h *ContactHandler) Update(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req UpdateContactRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	record, err := h.svc.UpdateContact(c.Request.Context(), id, req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, record)
}

// SetStatus handles PATCH /api/v1/contacts/:id/status.
func (h *ContactHandler) SetStatus(c *gin.Context) {
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

// SetLeadStatus handles PATCH /api/v1/contacts/:id/lead-status.
func (h *ContactHandler) SetLeadStatus(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req LeadStatusRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	if err := h.svc.SetLeadStatus(c.Request.Context(), id, *req.LeadStatus); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Message(c, "lead status updated")
}

// Assign handles PATCH /api/v1/contacts/:id/assign.
func (h *ContactHandler) Assign(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req AssignRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	if err := h.svc.Assign(c.Request.Context(), id, *req.AssignedTo); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Message(c, "contact assigned")
}

// Convert handles POST /api/v1/contacts/:id/convert.
func (h *ContactHandler) Convert(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req ConvertRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	deal, err := h.svc.ConvertToDeal(c.Request.Context(), id, req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Created(c, deal)
}

// Restore handles PATCH /api/v1/contacts/:id/restore.
func (h *ContactHandler) Restore(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.RestoreContact(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Message(c, "contact restored")
}

// Delete handles DELETE /api/v1/contacts/:id (soft delete).
func (h *ContactHandler) Delete(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.DeleteContact(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Message(c, "contact deleted")
}

// DeletePermanent handles DELETE /api/v1/contacts/:id/permanent.
func (h *ContactHandler) DeletePermanent(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.DeleteContactPermanently(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Message(c, "contact permanently deleted")
}

// BulkStatus handles POST /api/v1/contacts/bulk/status.
func (h *ContactHandler) BulkStatus(c *gin.Context) {
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

// BulkLeadStatus handles POST /api/v1/contacts/bulk/lead-status.
func (h *ContactHandler) BulkLeadStatus(c *gin.Context) {
	var req BulkLeadStatusRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	affected, err := h.svc.BulkLeadStatus(c.Request.Context(), req.IDs, *req.LeadStatus)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, gin.H{"affected": affected})
}

// BulkDelete handles POST /api/v1/contacts/bulk/delete.
func (h *ContactHandler) BulkDelete(c *gin.Context) {
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

// BulkDeletePermanent handles POST /api/v1/contacts/bulk/delete/permanent.
func (h *ContactHandler) BulkDeletePermanent(c *gin.Context) {
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

// Stats handles GET /api/v1/contacts/stats.
func (h *ContactHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, stats)
}
