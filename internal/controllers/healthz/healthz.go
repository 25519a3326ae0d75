// Package healthz implements the health check endpoint.
package healthz

import (
	"net/http"

	"github.com/finflow/backend/internal/httperror"
	"github.com/finflow/backend/internal/httputil"
	"github.com/finflow/backend/internal/keyvalue"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the health check routes with the RouterGroup
// that is passed.
func RegisterRoutes(r *gin.RouterGroup, store keyvalue.Store) {
	r.OPTIONS("", Options)
	r.GET("", Get(store))
}

// Options returns the allowed HTTP verbs.
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// Get returns 204 when the storage backend is reachable and 500 with an
// error otherwise.
func Get(store keyvalue.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.Ping(); err != nil {
			c.JSON(http.StatusInternalServerError, httperror.New(err))
			return
		}

		c.Status(http.StatusNoContent)
	}
}
