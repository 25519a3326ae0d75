// Package models defines the resources of the finflow ledger.
package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultModel is the base model for all resources.
type DefaultModel struct {
	ID        uuid.UUID `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"` // UUID for the resource
	CreatedAt time.Time `json:"createdAt" example:"2022-04-02T19:28:44.491514Z"`   // Time the resource was created
	UpdatedAt time.Time `json:"updatedAt" example:"2022-04-17T20:14:01.048145Z"`   // Last time the resource was updated
}

// newDefaultModel returns a DefaultModel with a fresh UUID and timestamps.
func newDefaultModel() DefaultModel {
	now := time.Now().In(time.UTC)
	return DefaultModel{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch updates the UpdatedAt timestamp.
func (m *DefaultModel) Touch() {
	m.UpdatedAt = time.Now().In(time.UTC)
}
