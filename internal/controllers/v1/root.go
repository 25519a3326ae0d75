package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type RootResponse struct {
	Links RootLinks `json:"links"` // Links for the v1 API
}

type RootLinks struct {
	Accounts     string `json:"accounts" example:"https://example.com/v1/accounts"`         // URL of Account collection endpoint
	Aggregates   string `json:"aggregates" example:"https://example.com/v1/aggregates"`     // URL of the aggregates endpoint
	CashFlow     string `json:"cashflow" example:"https://example.com/v1/cashflow"`         // URL of the cash-flow report endpoint
	Categories   string `json:"categories" example:"https://example.com/v1/categories"`     // URL of Category collection endpoint
	Export       string `json:"export" example:"https://example.com/v1/export"`             // URL of the export endpoint
	Transactions string `json:"transactions" example:"https://example.com/v1/transactions"` // URL of Transaction collection endpoint
	Transfers    string `json:"transfers" example:"https://example.com/v1/transfers"`       // URL of Transfer collection endpoint
}

// GetRoot returns the link list for v1.
func (co Controller) GetRoot(c *gin.Context) {
	url := baseURL(c)

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Accounts:     url + "/v1/accounts",
			Aggregates:   url + "/v1/aggregates",
			CashFlow:     url + "/v1/cashflow",
			Categories:   url + "/v1/categories",
			Export:       url + "/v1/export",
			Transactions: url + "/v1/transactions",
			Transfers:    url + "/v1/transfers",
		},
	})
}

// Cleanup permanently deletes all resources. The query parameter confirm
// must have the value "yes-please-delete-everything".
func (co Controller) Cleanup(c *gin.Context) {
	var params struct {
		Confirm string `form:"confirm"`
	}

	err := c.Bind(&params)
	if err != nil || params.Confirm != "yes-please-delete-everything" {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errCleanupConfirmation.Error(),
		})
		return
	}

	co.ledger.DeleteAll()
	c.JSON(http.StatusNoContent, nil)
}
