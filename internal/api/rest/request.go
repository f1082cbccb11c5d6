package rest

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"ecolithswap-backend/internal/domain"
)

// decodeJSON reads the request body into dst, rejecting malformed payloads
// as validation errors.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.Validationf("malformed request body")
	}
	return nil
}

// pathID parses the named path variable as a positive int32.
func pathID(r *http.Request, name string) (int32, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, domain.Validationf("invalid %s %q", name, raw)
	}
	return int32(id), nil
}

// pagination reads page/page_size query params with sane bounds.
func pagination(r *http.Request) (page, pageSize int32) {
	page, pageSize = 1, 20
	if v, err := strconv.ParseInt(r.URL.Query().Get("page"), 10, 32); err == nil && v > 0 {
		page = int32(v)
	}
	if v, err := strconv.ParseInt(r.URL.Query().Get("page_size"), 10, 32); err == nil && v > 0 && v <= 100 {
		pageSize = int32(v)
	}
	return page, pageSize
}

func queryFloat(r *http.Request, name string) (float64, bool) {
	v, err := strconv.ParseFloat(r.URL.Query().Get(name), 64)
	return v, err == nil
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone_number"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type authResponse struct {
	User         *domain.User `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

type tokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type updateProfileRequest struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone_number"`
}

type setActiveRequest struct {
	Active bool `json:"active"`
}

type stationRequest struct {
	Name       string             `json:"name"`
	Address    string             `json:"address"`
	Latitude   float64            `json:"latitude"`
	Longitude  float64            `json:"longitude"`
	Type       domain.StationType `json:"station_type"`
	TotalSlots int32              `json:"total_slots"`
	IsActive   *bool              `json:"is_active,omitempty"`
}

type setMaintenanceRequest struct {
	Maintenance bool `json:"maintenance_mode"`
}

type batteryRequest struct {
	SerialNumber     string               `json:"serial_number"`
	Model            string               `json:"model"`
	Status           domain.BatteryStatus `json:"status"`
	Health           domain.BatteryHealth `json:"health_status"`
	ChargePercentage int32                `json:"charge_percentage"`
	CurrentStationID *int32               `json:"current_station_id"`
}

type batteryStatusRequest struct {
	Status           domain.BatteryStatus `json:"status"`
	ChargePercentage int32                `json:"charge_percentage"`
}

type startRentalRequest struct {
	BatteryID       int32 `json:"battery_id"`
	PickupStationID int32 `json:"pickup_station_id"`
}

type endRentalRequest struct {
	ReturnStationID int32 `json:"return_station_id"`
}

type submitWasteRequest struct {
	StationID int32   `json:"station_id"`
	WasteType string  `json:"waste_type"`
	WeightKg  float64 `json:"weight_kg"`
}

type createPaymentRequest struct {
	RentalID *int32               `json:"rental_id,omitempty"`
	Amount   float64              `json:"amount"`
	Method   domain.PaymentMethod `json:"payment_method"`
}

type paymentStatusRequest struct {
	Status       domain.PaymentStatus `json:"status"`
	MpesaReceipt *string              `json:"mpesa_receipt,omitempty"`
}
