package domain

import "time"

type BatteryStatus string

const (
	BatteryStatusAvailable   BatteryStatus = "available"
	BatteryStatusRented      BatteryStatus = "rented"
	BatteryStatusCharging    BatteryStatus = "charging"
	BatteryStatusMaintenance BatteryStatus = "maintenance"
	BatteryStatusRetired     BatteryStatus = "retired"
)

func (s BatteryStatus) Valid() bool {
	switch s {
	case BatteryStatusAvailable, BatteryStatusRented, BatteryStatusCharging,
		BatteryStatusMaintenance, BatteryStatusRetired:
		return true
	}
	return false
}

type BatteryHealth string

const (
	BatteryHealthExcellent BatteryHealth = "excellent"
	BatteryHealthGood      BatteryHealth = "good"
	BatteryHealthFair      BatteryHealth = "fair"
	BatteryHealthPoor      BatteryHealth = "poor"
	BatteryHealthCritical  BatteryHealth = "critical"
)

func (h BatteryHealth) Valid() bool {
	switch h {
	case BatteryHealthExcellent, BatteryHealthGood, BatteryHealthFair,
		BatteryHealthPoor, BatteryHealthCritical:
		return true
	}
	return false
}

// MinRentalCharge is the lowest charge percentage at which a battery may
// start a rental.
const MinRentalCharge = 20

type Battery struct {
	ID               int32         `json:"id"`
	SerialNumber     string        `json:"serial_number"`
	Model            string        `json:"model"`
	Status           BatteryStatus `json:"status"`
	Health           BatteryHealth `json:"health_status"`
	ChargePercentage int32         `json:"charge_percentage"`
	CycleCount       int32         `json:"cycle_count"`
	CurrentStationID *int32        `json:"current_station_id"` // nil while rented
	CurrentRentalID  *int32        `json:"current_rental_id"`  // nil unless rented
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

// EligibleForRental reports whether the battery may begin a new rental:
// it must be available, hold at least MinRentalCharge percent, and not be
// in poor health. Critical batteries never reach "available" status, so
// only "poor" is screened here.
func (b *Battery) EligibleForRental() bool {
	return b.Status == BatteryStatusAvailable &&
		b.ChargePercentage >= MinRentalCharge &&
		b.Health != BatteryHealthPoor
}
