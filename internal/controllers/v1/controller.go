// Package v1 implements the v1 REST API on top of the ledger.
//
// Handlers validate user input and translate between HTTP and ledger
// operations. Every business rule they check is also enforced in the
// ledger itself, the API layer only adds friendlier error messages.
package v1

import (
	"github.com/finflow/backend/internal/httputil"
	"github.com/finflow/backend/internal/ledger"
	"github.com/gin-gonic/gin"
)

// Controller holds the ledger all v1 handlers operate on.
type Controller struct {
	ledger *ledger.Ledger
}

// NewController returns a Controller for the ledger.
func NewController(l *ledger.Ledger) Controller {
	return Controller{ledger: l}
}

// RegisterRoutes registers all v1 routes with the RouterGroup that is
// passed.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.GET("", co.GetRoot)
		r.DELETE("", co.Cleanup)
		r.OPTIONS("", httputil.OptionsGetDelete)
	}

	co.registerTransactionRoutes(r.Group("/transactions"))
	co.registerAccountRoutes(r.Group("/accounts"))
	co.registerCategoryRoutes(r.Group("/categories"))
	co.registerTransferRoutes(r.Group("/transfers"))

	// Reports
	{
		r.OPTIONS("/cashflow", httputil.OptionsGet)
		r.GET("/cashflow", co.GetCashFlow)

		r.OPTIONS("/aggregates", httputil.OptionsGet)
		r.GET("/aggregates", co.GetAggregates)

		r.OPTIONS("/export", httputil.OptionsGet)
		r.GET("/export", co.GetExport)
	}
}
