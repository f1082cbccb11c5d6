package rest

import (
	"net/http"

	"ecolithswap-backend/internal/domain"
	"ecolithswap-backend/internal/service"
)

// BatteryHandler serves fleet management endpoints.
type BatteryHandler struct {
	batteries service.BatteryService
}

func NewBatteryHandler(batteries service.BatteryService) *BatteryHandler {
	return &BatteryHandler{batteries: batteries}
}

func (h *BatteryHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req batteryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	battery := batteryFromRequest(&req)
	if err := h.batteries.AddBattery(r.Context(), battery); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, battery)
}

func (h *BatteryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	battery, err := h.batteries.GetBattery(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, battery)
}

func (h *BatteryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req batteryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	battery := batteryFromRequest(&req)
	battery.ID = id
	if err := h.batteries.UpdateBattery(r.Context(), battery); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, battery)
}

func (h *BatteryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.batteries.DeleteBattery(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UpdateStatus is the station-side endpoint for charge and status updates.
func (h *BatteryHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req batteryStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := h.batteries.UpdateBatteryStatus(r.Context(), id, req.Status, req.ChargePercentage); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *BatteryHandler) ListByStation(w http.ResponseWriter, r *http.Request) {
	stationID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	batteries, err := h.batteries.ListByStation(r.Context(), stationID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, batteries)
}

func (h *BatteryHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	status := r.URL.Query().Get("status")
	batteries, total, err := h.batteries.ListBatteries(r.Context(), status, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pagedResponse{Items: batteries, Total: total, Page: page})
}

func batteryFromRequest(req *batteryRequest) *domain.Battery {
	return &domain.Battery{
		SerialNumber:     req.SerialNumber,
		Model:            req.Model,
		Status:           req.Status,
		Health:           req.Health,
		ChargePercentage: req.ChargePercentage,
		CurrentStationID: req.CurrentStationID,
	}
}
