package pkg

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/estateops/backoffice/internal/domain"
)

// ParseIDParam reads a positive integer path parameter. A malformed or
// non-positive value is a validation error, reported before any repository
// call.
func ParseIDParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, domain.NewAppError(domain.CodeValidation, "invalid "+name, nil)
	}
	return uint(id), nil
}
