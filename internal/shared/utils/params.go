package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/stealthycommerce/stealthy/internal/shared/errors"
)

// ParseUintParam parses a positive numeric id from a URL path parameter.
// entityName is used in error messages (e.g., "order", "product").
func ParseUintParam(c *gin.Context, paramName, entityName string) (uint, error) {
	return parseUint(c.Param(paramName), entityName)
}

// ParseUintQuery parses a positive numeric id from a query parameter.
func ParseUintQuery(c *gin.Context, key, entityName string) (uint, error) {
	return parseUint(c.Query(key), entityName)
}

func parseUint(raw, entityName string) (uint, error) {
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return 0, errors.NewValidationError("invalid " + entityName + " ID")
	}
	return uint(n), nil
}

// ParseBoolQuery parses a boolean query parameter, returning def when absent or malformed.
func ParseBoolQuery(c *gin.Context, key string, def bool) bool {
	if v, err := strconv.ParseBool(c.Query(key)); err == nil {
		return v
	}
	return def
}
