package domain

import "time"

type RentalStatus string

const (
	RentalStatusActive    RentalStatus = "active"
	RentalStatusCompleted RentalStatus = "completed"
	RentalStatusCancelled RentalStatus = "cancelled"
	RentalStatusOverdue   RentalStatus = "overdue"
)

type RentalPaymentStatus string

const (
	RentalPaymentPending   RentalPaymentStatus = "pending"
	RentalPaymentCompleted RentalPaymentStatus = "completed"
	RentalPaymentFailed    RentalPaymentStatus = "failed"
	RentalPaymentRefunded  RentalPaymentStatus = "refunded"
)

type Rental struct {
	ID              int32  `json:"id"`
	UserID          int32  `json:"user_id"`
	BatteryID       int32  `json:"battery_id"`
	PickupStationID int32  `json:"pickup_station_id"`
	ReturnStationID *int32 `json:"return_station_id,omitempty"`
	StartTime       time.Time  `json:"start_time"`
	EndTime         *time.Time `json:"end_time,omitempty"`
	// Rate snapshot fields, captured at rental start. Cost calculation
	// uses these, not live station rates.
	HourlyRate float64  `json:"hourly_rate"`
	BaseCost   float64  `json:"base_cost"`
	TotalCost  *float64 `json:"total_cost,omitempty"` // set when the rental closes

	Status        RentalStatus        `json:"status"`
	PaymentStatus RentalPaymentStatus `json:"payment_status"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// Open reports whether the rental can still transition. Overdue rentals
// remain open: the battery is still out.
func (r *Rental) Open() bool {
	return r.Status == RentalStatusActive || r.Status == RentalStatusOverdue
}
