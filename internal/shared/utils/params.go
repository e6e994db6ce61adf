package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"gympoint/internal/shared/errors"
)

// ParseUintParam parses a positive numeric ID from a URL path parameter.
// entityName is used in error details (e.g., "student", "registration").
func ParseUintParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}

	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || value == 0 {
		return 0, errors.NewValidationError(
			fmt.Sprintf("invalid %s ID", entityName),
			fmt.Sprintf("%q is not a positive integer", raw),
		)
	}

	return uint(value), nil
}
