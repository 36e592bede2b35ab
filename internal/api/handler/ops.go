package handler

import (
	"net/http"

	"github.com/civicalnyc/civicalnyc/internal/api/models"
	"github.com/civicalnyc/civicalnyc/internal/api/response"
)

// OpsHandler serves operational endpoints.
type OpsHandler struct {
	version string
}

// NewOpsHandler creates an ops handler.
func NewOpsHandler(version string) *OpsHandler {
	return &OpsHandler{version: version}
}

// HealthCheck handles GET /v1/ops/health.
func (h *OpsHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, http.StatusOK, models.HealthResponse{
		Status:  "healthy",
		Version: h.version,
	})
}
