package v1

import (
	ff_uuid "github.com/finflow/backend/internal/uuid"
	"github.com/gin-gonic/gin"
)

type URIID struct {
	ID ff_uuid.UUID `uri:"id" binding:"required"` // The ID of the resource
}

// baseURL constructs the base URL of the instance from the request,
// honoring the headers a reverse proxy sets.
func baseURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.Header.Get("x-forwarded-proto") == "https" || c.Request.TLS != nil {
		scheme = "https"
	}

	host := c.Request.Host
	if forwarded := c.Request.Header.Get("x-forwarded-host"); forwarded != "" {
		host = forwarded
	}

	return scheme + "://" + host
}
