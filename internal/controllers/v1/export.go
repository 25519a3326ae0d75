package v1

import (
	"net/http"
	"time"

	"github.com/finflow/backend/internal/ledger"
	"github.com/gin-gonic/gin"
)

type ExportResponse struct {
	Version      string            `json:"version"`      // The version of the backend the export was made with
	Data         ledger.ExportData `json:"data"`         // The exported data
	CreationTime time.Time         `json:"creationTime"` // Time the export was created
	Clacks       string            `json:"clacks"`       // This will always have the value "GNU Terry Pratchett"
}

var backendVersion = "0.0.0"

// SetVersion sets the version reported in exports and on /version.
func SetVersion(version string) {
	backendVersion = version
}

// GetExport returns the full ledger state. Importing it into a fresh
// instance reproduces identical collections.
func (co Controller) GetExport(c *gin.Context) {
	c.JSON(http.StatusOK, ExportResponse{
		Version:      backendVersion,
		Data:         co.ledger.Export(),
		CreationTime: time.Now(),
		Clacks:       "GNU Terry Pratchett",
	})
}
