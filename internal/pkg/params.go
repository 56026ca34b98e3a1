package pkg

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hbaskar/GC-PDC/internal/domain"
)

// ParseUintParam extracts a positive integer path parameter. A missing or
// malformed value yields a validation error.
func ParseUintParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, domain.NewAppError(domain.CodeValidation, "invalid "+name+" parameter", err)
	}
	return uint(id), nil
}
