package v1

import (
	"net/http"

	"github.com/finflow/backend/internal/httputil"
	"github.com/finflow/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// registerTransferRoutes registers the routes for transfers with the
// RouterGroup that is passed. Transfers are append-only, there are no
// update or delete routes.
func (co Controller) registerTransferRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetTransfers)
		r.POST("", co.CreateTransfer)
	}

	// Transfer with ID
	{
		r.OPTIONS("/:id", co.OptionsTransferDetail)
		r.GET("/:id", co.GetTransfer)
	}
}

func (co Controller) OptionsTransferDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if _, ok := co.ledger.Transfer(uri.ID.UUID); !ok {
		c.JSON(status(errNotFound), httpError{Error: errNotFound.Error()})
		return
	}

	httputil.OptionsGet(c)
}

// CreateTransfer moves money between two accounts. The source must hold
// at least the transferred amount; both balances change atomically.
func (co Controller) CreateTransfer(c *gin.Context) {
	var editable models.TransferEditable

	err := httputil.BindData(c, &editable)
	if err == nil {
		err = validateTransactionAmount(editable.Amount)
	}
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransferResponse{Error: &e})
		return
	}

	transfer, err := co.ledger.TransferMoney(editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransferResponse{Error: &e})
		return
	}

	data := newTransfer(c, transfer)
	c.JSON(http.StatusCreated, TransferResponse{Data: &data})
}

// GetTransfers returns all transfer records.
func (co Controller) GetTransfers(c *gin.Context) {
	data := make([]Transfer, 0)
	for _, transfer := range co.ledger.Transfers() {
		data = append(data, newTransfer(c, transfer))
	}

	c.JSON(http.StatusOK, TransferListResponse{Data: data})
}

// GetTransfer returns a specific transfer.
func (co Controller) GetTransfer(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(status(err), TransferResponse{Error: &e})
		return
	}

	transfer, ok := co.ledger.Transfer(uri.ID.UUID)
	if !ok {
		e := errNotFound.Error()
		c.JSON(status(errNotFound), TransferResponse{Error: &e})
		return
	}

	data := newTransfer(c, transfer)
	c.JSON(http.StatusOK, TransferResponse{Data: &data})
}
