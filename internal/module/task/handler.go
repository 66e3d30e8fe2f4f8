package task

import (
	"github.com/gin-gonic/gin"

	"github.com/estateops/backoffice/internal/pkg"
)

// TaskHandler exposes task endpoints.
type TaskHandler struct {
	svc Service
}

// NewHandler creates a TaskHandler.
func NewHandler(svc Service) *TaskHandler {
	return &TaskHandler{svc: svc}
}

func (h *TaskHandler) List(c *gin.Context) {
	result, err := h.svc.ListTasks(c.Request.Context(), pkg.ParsePageRequest(c))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.List(c, result)
}

func (h *TaskHandler) Get(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}
	record, err := h.svc.GetTask(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, record)
}

func (h *TaskHandler) Create(c *gin.Context) {
	var req CreateTaskRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}
	record, err := h.svc.CreateTask(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Created(c, record)
}

func (h *TaskHandler) Update(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}
	var req UpdateTaskRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}
	record, err := h.svc.UpdateTask(c.Request.Context(), id, req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, record)
}

func (h *TaskHandler) Assign(c *gin.Context) {
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
	pkg.Message(c, "task assigned")
}

func (h *TaskHandler) SetDone(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}
	var req DoneRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}
	if err := h.svc.SetDone(c.Request.Context(), id, *req.Done); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Message(c, "task updated")
}

func (h *TaskHandler) SetStatus(c *gin.Context) {
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

func (h *TaskHandler) Delete(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}
	if err := h.svc.DeleteTask(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Message(c, "task deleted")
}

func (h *TaskHandler) DeletePermanent(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}
	if err := h.svc.DeleteTaskPermanently(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Message(c, "task permanently deleted")
}

func (h *TaskHandler) Restore(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}
	if err := h.svc.RestoreTask(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Message(c, "task restored")
}

func (h *TaskHandler) BulkStatus(c *gin.Context) {
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

func (h *TaskHandler) BulkDone(c *gin.Context) {
	var req BulkDoneRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}
	affected, err := h.svc.BulkDone(c.Request.Context(), req.IDs, *req.Done)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, gin.H{"affected": affected})
}

func (h *TaskHandler) BulkDelete(c *gin.Context) {
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

func (h *TaskHandler) BulkDeletePermanent(c *gin.Context) {
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

func (h *TaskHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, stats)
}
