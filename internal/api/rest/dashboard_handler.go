package rest

import (
	"net/http"

	"ecolithswap-backend/internal/service"
)

// DashboardHandler serves aggregate summaries for customers and admins.
type DashboardHandler struct {
	dashboards service.DashboardService
}

func NewDashboardHandler(dashboards service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboards: dashboards}
}

func (h *DashboardHandler) UserSummary(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFrom(r.Context())
	summary, err := h.dashboards.UserSummary(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *DashboardHandler) AdminSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.dashboards.AdminSummary(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
