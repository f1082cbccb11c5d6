package rest

import (
	"net/http"
	"strconv"

	"ecolithswap-backend/internal/domain"
	"ecolithswap-backend/internal/service"
)

// StationHandler serves the station catalog, including public discovery
// endpoints and admin management.
type StationHandler struct {
	stations service.StationService
}

func NewStationHandler(stations service.StationService) *StationHandler {
	return &StationHandler{stations: stations}
}

func (h *StationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req stationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	station := stationFromRequest(&req)
	if err := h.stations.CreateStation(r.Context(), station); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, station)
}

func (h *StationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	station, err := h.stations.GetStation(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, station)
}

func (h *StationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req stationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	station := stationFromRequest(&req)
	station.ID = id
	if err := h.stations.UpdateStation(r.Context(), station); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, station)
}

func (h *StationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.stations.DeleteStation(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *StationHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	stations, total, err := h.stations.ListStations(r.Context(), page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pagedResponse{Items: stations, Total: total, Page: page})
}

// Nearby returns active stations within radius_km of lat/lng, closest first.
func (h *StationHandler) Nearby(w http.ResponseWriter, r *http.Request) {
	lat, okLat := queryFloat(r, "lat")
	lng, okLng := queryFloat(r, "lng")
	if !okLat || !okLng {
		writeError(w, domain.Validationf("lat and lng query parameters are required"))
		return
	}

	radiusKm := 5.0
	if v, ok := queryFloat(r, "radius_km"); ok && v > 0 {
		radiusKm = v
	}
	limit := 20
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 && v <= 100 {
		limit = v
	}

	results, err := h.stations.NearbyStations(r.Context(), lat, lng, radiusKm, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}

func (h *StationHandler) SetMaintenance(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req setMaintenanceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := h.stations.SetMaintenance(r.Context(), id, req.Maintenance); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func stationFromRequest(req *stationRequest) *domain.Station {
	station := &domain.Station{
		Name:       req.Name,
		Address:    req.Address,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		Type:       req.Type,
		TotalSlots: req.TotalSlots,
		IsActive:   true,
	}
	if req.IsActive != nil {
		station.IsActive = *req.IsActive
	}
	return station
}
