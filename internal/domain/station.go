package domain

import "time"

type StationType string

const (
	StationTypeSwap   StationType = "swap"
	StationTypeCharge StationType = "charge"
	StationTypeBoth   StationType = "both"
)

func (t StationType) Valid() bool {
	switch t {
	case StationTypeSwap, StationTypeCharge, StationTypeBoth:
		return true
	}
	return false
}

type Station struct {
	ID        int32       `json:"id"`
	Name      string      `json:"name"`
	Address   string      `json:"address"`
	Latitude  float64     `json:"latitude"`
	Longitude float64     `json:"longitude"`
	Type      StationType `json:"station_type"`
	TotalSlots int32      `json:"total_slots"`
	// AvailableBatteries is a derived count of batteries with status
	// "available" at this station. It is refreshed by the reconciliation
	// job, not maintained per-write.
	AvailableBatteries int32     `json:"available_batteries"`
	IsActive           bool      `json:"is_active"`
	MaintenanceMode    bool      `json:"maintenance_mode"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// AcceptsReturns reports whether the station can currently receive a battery.
func (s *Station) AcceptsReturns() bool {
	return s.IsActive && !s.MaintenanceMode
}

// StationDistance pairs a station with its distance from a query point.
type StationDistance struct {
	Station    Station `json:"station"`
	DistanceKm float64 `json:"distance_km"`
}
