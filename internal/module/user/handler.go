package user

import (
	"github.com/gin-gonic/gin"

	"github.com/estateops/backoffice/internal/pkg"
)

// UserHandler handles REST API requests for operator accounts.
type UserHandler struct {
	svc Service
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc Service) *UserHandler {
	return &UserHandler{svc: svc}
}

// List handles GET /api/v1/users.
func (h *UserHandler) List(c *gin.Context) {
	result, err := h.svc.ListUsers(c.Request.Context(), pkg.ParsePageRequest(c))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.List(c, result)
}

// Get handles GET /api/v1/users/:id.
func (h *UserHandler) Get(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	record, err := h.svc.GetUser(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, record)
}

// Create handles POST /api/v1/users.
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	record, err := h.svc.CreateUser(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Created(c, record)
}

// Update handles PUT /api/v1/users/:id.
func (h *UserHandler) Update(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req UpdateUserRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	record, err := h.svc.UpdateUser(c.Request.Context(), id, req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, record)
}

// SetStatus handles PATCH /api/v1/users/:id/status.
func (h *UserHandler) SetStatus(c *gin.Context) {
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

// Restore handles PATCH /api/v1/users/:id/restore.
func (h *UserHandler) Restore(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.RestoreUser(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Message(c, "user restored")
}

// Delete handles DELETE /api/v1/users/:id (soft delete).
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.DeleteUser(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Message(c, "user deleted")
}

// DeletePermanent handles DELETE /api/v1/users/:id/permanent.
func (h *UserHandler) DeletePermanent(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.DeleteUserPermanently(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Message(c, "user permanently deleted")
}
