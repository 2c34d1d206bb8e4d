package httputil

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/stockroom-app/inventory/internal/httperrors"
)

// ParseID parses the path parameter as a resource ID.
//
// If the parameter is not a valid unsigned integer, a 400 with the
// message is sent and the error is returned.
func ParseID(c *gin.Context, param, message string) (uint, error) {
	parsed, err := strconv.ParseUint(c.Param(param), 10, strconv.IntSize)
	if err != nil {
		httperrors.New(c, http.StatusBadRequest, message)
		return 0, err
	}

	return uint(parsed), nil
}
