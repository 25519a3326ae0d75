package v1

import (
	"fmt"

	"github.com/finflow/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type TransferLinks struct {
	Self string `json:"self" example:"https://example.com/v1/transfers/9b00b4a2-b8b2-4a7f-9a6b-4e96fa7ed061"` // The transfer itself
}

type Transfer struct {
	models.Transfer
	Links TransferLinks `json:"links"`
}

func newTransfer(c *gin.Context, model models.Transfer) Transfer {
	return Transfer{
		Transfer: model,
		Links: TransferLinks{
			Self: fmt.Sprintf("%s/v1/transfers/%s", baseURL(c), model.ID),
		},
	}
}

type TransferResponse struct {
	Data  *Transfer `json:"data"`                                                          // Data for the Transfer
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TransferListResponse struct {
	Data  []Transfer `json:"data"`                                                          // List of Transfers
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
