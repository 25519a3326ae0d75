package models

import (
	"github.com/finflow/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transfer records money moved between two accounts. Transfers are
// append-only: they are never updated or deleted after creation.
type Transfer struct {
	DefaultModel
	TransferEditable
}

type TransferEditable struct {
	FromAccountID uuid.UUID       `json:"fromAccountId" binding:"required" example:"fd81dc45-a3a2-468e-a6fa-b2618f30aa45"` // Source account
	ToAccountID   uuid.UUID       `json:"toAccountId" binding:"required" example:"8e16b456-a719-48ce-9fec-e115cfa7cbcc"`   // Destination account
	Amount        decimal.Decimal `json:"amount" example:"50"`                                                             // Unsigned, positive amount
	Date          types.Day       `json:"date" example:"2026-01-15"`                                                       // Calendar date of the transfer
}

// NewTransfer returns a Transfer with a fresh ID for the editable fields.
func NewTransfer(editable TransferEditable) Transfer {
	return Transfer{
		DefaultModel:     newDefaultModel(),
		TransferEditable: editable,
	}
}
