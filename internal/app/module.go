package app

import "github.com/gin-gonic/gin"

// Module defines the contract for a self-registering business module.
// Each module registers its routes on the public group (no authentication)
// and the admin group (JWT-protected).
type Module interface {
	RegisterRoutes(public *gin.RouterGroup, admin *gin.RouterGroup)
}
