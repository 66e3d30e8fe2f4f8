package enquiry

import (
	"github.com/gin-gonic/gin"

	"github.com/estateops/backoffice/internal/pkg"
)

// EnquiryHandler exposes enquiry endpoints.
type EnquiryHandler struct {
	svc Service
}

// NewHandler creates an EnquiryHandler.
func NewHandler(svc Service) *EnquiryHandler {
	return &EnquiryHandler{svc: svc}
}

func (h *EnquiryHandler) List(c *gin.Context) {
	req := pkg.ParsePageRequest(c)
	result, err := h.svc.ListEnquiries(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.List(c, result)
}

func (h *EnquiryHandler) Get(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}
	record, err := h.svc.GetEnquiry(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, record)
}

func (h *EnquiryHandler) Create(c *gin.Context) {
	var req CreateEnquiryRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}
	record, err := h.svc.CreateEnquiry(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Created(c, record)
}

func (h *EnquiryHandler) Update(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}
	var req UpdateEnquiryRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}
	record, err := h.svc.UpdateEnquiry(c.Request.Context(), id, req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, record)
}

func (h *EnquiryHandler) SetStatus(c *gin.Context) {
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

func (h *EnquiryHandler) SetLeadStatus(c *gin.Context) {
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

func (h *EnquiryHandler) Delete(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}
	if err := h.svc.DeleteEnquiry(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Message(c, "enquiry deleted")
}

func (h *EnquiryHandler) DeletePermanent(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}
	if err := h.svc.DeleteEnquiryPermanently(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Message(c, "enquiry permanently deleted")
}

func (h *EnquiryHandler) Restore(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}
	if err := h.svc.RestoreEnquiry(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Message(c, "enquiry restored")
}

func (h *EnquiryHandler) BulkStatus(c *gin.Context) {
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

func (h *EnquiryHandler) BulkDelete(c *gin.Context) {
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

func (h *EnquiryHandler) BulkDeletePermanent(c *gin.Context) {
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

func (h *EnquiryHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, stats)
}
