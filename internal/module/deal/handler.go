package deal

import (
	"github.com/gin-gonic/gin"

	"github.com/estateops/backoffice/internal/pkg"
)

// DealHandler exposes deal endpoints.
type DealHandler struct {
	svc Service
}

// NewHandler creates a DealHandler.
func NewHandler(svc Service) *DealHandler {
	return &DealHandler{svc: svc}
}

func (h *DealHandler) List(c *gin.Context) {
	req := pkg.ParsePageRequest(c)
	result, err := h.svc.ListDeals(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.List(c, result)
}

func (h *DealHandler) Get(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}
	record, err := h.svc.GetDeal(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, record)
}

func (h *DealHandler) Create(c *gin.Context) {
	var req CreateDealRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}
	record, err := h.svc.CreateDeal(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Created(c, record)
}

func (h *DealHandler) Update(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}
	var req UpdateDealRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}
	record, err := h.svc.UpdateDeal(c.Request.Context(), id, req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, record)
}

func (h *DealHandler) SetStage(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}
	var req StageRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}
	if err := h.svc.SetStage(c.Request.Context(), id, req.Stage); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Message(c, "stage updated")
}

func (h *DealHandler) SetStatus(c *gin.Context) {
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

func (h *DealHandler) Delete(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}
	if err := h.svc.DeleteDeal(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Message(c, "deal deleted")
}

func (h *DealHandler) DeletePermanent(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}
	if err := h.svc.DeleteDealPermanently(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Message(c, "deal permanently deleted")
}

func (h *DealHandler) Restore(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}
	if err := h.svc.RestoreDeal(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Message(c, "deal restored")
}

func (h *DealHandler) BulkStatus(c *gin.Context) {
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

func (h *DealHandler) BulkStage(c *gin.Context) {
	var req BulkStageRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}
	affected, err := h.svc.BulkStage(c.Request.Context(), req.IDs, req.Stage)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, gin.H{"affected": affected})
}

func (h *DealHandler) BulkDelete(c *gin.Context) {
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

func (h *DealHandler) BulkDeletePermanent(c *gin.Context) {
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

func (h *DealHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, stats)
}
