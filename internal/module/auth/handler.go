package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/estateops/backoffice/internal/pkg"
)

// AuthHandler handles operator login and account registration.
type AuthHandler struct {
	svc Service
}

// NewHandler creates a new AuthHandler.
func NewHandler(svc Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	tokenResp, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, tokenResp)
}

// Register handles POST /api/v1/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	user, err := h.svc.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Success: true,
		Message: "account registered successfully",
		Data: RegisterResponse{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
		},
	})
}
