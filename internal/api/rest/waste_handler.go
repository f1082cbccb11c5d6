package rest

import (
	"net/http"

	"ecolithswap-backend/internal/domain"
	"ecolithswap-backend/internal/service"
)

// WasteHandler serves plastic waste submission and verification endpoints.
type WasteHandler struct {
	waste service.WasteService
}

func NewWasteHandler(waste service.WasteService) *WasteHandler {
	return &WasteHandler{waste: waste}
}

func (h *WasteHandler) Submit(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFrom(r.Context())
	var req submitWasteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	log, err := h.waste.SubmitWaste(r.Context(), claims.UserID, req.StationID, domain.WasteType(req.WasteType), req.WeightKg)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, log)
}

func (h *WasteHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFrom(r.Context())
	page, pageSize := pagination(r)

	logs, total, err := h.waste.ListByUser(r.Context(), claims.UserID, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pagedResponse{Items: logs, Total: total, Page: page})
}

func (h *WasteHandler) ListUnverified(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	logs, total, err := h.waste.ListUnverified(r.Context(), page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pagedResponse{Items: logs, Total: total, Page: page})
}

func (h *WasteHandler) Verify(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFrom(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	log, err := h.waste.VerifyWaste(r.Context(), id, claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, log)
}
