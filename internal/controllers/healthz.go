package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stockroom-app/inventory/internal/httperrors"
)

// GetHealthz responds with 204 if the database is reachable.
func (co Controller) GetHealthz(c *gin.Context) {
	sqlDB, err := co.DB.DB()
	if err != nil {
		httperrors.Internal(c, err, "The database cannot be accessed.")
		return
	}

	err = sqlDB.PingContext(c.Request.Context())
	if err != nil {
		httperrors.Internal(c, err, "The database cannot be accessed.")
		return
	}

	c.Status(http.StatusNoContent)
}

// GetVersion responds with the version of the application.
func (co Controller) GetVersion(c *gin.Context) {
	c.String(http.StatusOK, co.Version)
}
